package repositories

import (
	"context"
	"errors"
	"fmt"

	"family-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type installmentPlanRepository struct {
	db *gorm.DB
}

// NewInstallmentPlanRepository creates a new installment plan repository
func NewInstallmentPlanRepository(db *gorm.DB) InstallmentPlanRepositoryInterface {
	return &installmentPlanRepository{db: db}
}

func (r *installmentPlanRepository) Create(ctx context.Context, plan *models.InstallmentPlan) error {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create installment plan: %w", err)
	}
	return nil
}

func (r *installmentPlanRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID, scope models.LifecycleScope) (*models.InstallmentPlan, error) {
	var plan models.InstallmentPlan
	query := applyLifecycleScope(r.db.WithContext(ctx), scope).
		Where("id = ? AND owner_id = ?", id, ownerID)

	if err := query.First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get installment plan: %w", err)
	}
	return &plan, nil
}

func (r *installmentPlanRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, includeCompleted bool) ([]models.InstallmentPlan, error) {
	var plans []models.InstallmentPlan

	query := applyLifecycleScope(r.db.WithContext(ctx), models.OnlyActive).
		Where("owner_id = ?", ownerID)
	if !includeCompleted {
		query = query.Where("is_completed = ?", false)
	}

	if err := query.Order("first_payment_date ASC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list installment plans: %w", err)
	}
	return plans, nil
}

func (r *installmentPlanRepository) Update(ctx context.Context, plan *models.InstallmentPlan) error {
	result := r.db.WithContext(ctx).
		Model(plan).
		Where("owner_id = ?", plan.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(plan)
	if result.Error != nil {
		return fmt.Errorf("failed to update installment plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *installmentPlanRepository) SetLifecycle(ctx context.Context, ownerID, id uuid.UUID, lifecycle models.Lifecycle) error {
	result := r.db.WithContext(ctx).
		Model(&models.InstallmentPlan{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(lifecycleColumns(lifecycle))
	if result.Error != nil {
		return fmt.Errorf("failed to update installment plan lifecycle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
