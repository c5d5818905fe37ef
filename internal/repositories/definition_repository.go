package repositories

import (
	"context"
	"errors"
	"fmt"

	"family-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type definitionRepository struct {
	db *gorm.DB
}

// NewDefinitionRepository creates a new recurring definition repository
func NewDefinitionRepository(db *gorm.DB) DefinitionRepositoryInterface {
	return &definitionRepository{db: db}
}

func (r *definitionRepository) Create(ctx context.Context, def *models.RecurringDefinition) error {
	if err := r.db.WithContext(ctx).Create(def).Error; err != nil {
		return fmt.Errorf("failed to create recurring definition: %w", err)
	}
	return nil
}

func (r *definitionRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID, scope models.LifecycleScope) (*models.RecurringDefinition, error) {
	var def models.RecurringDefinition
	query := applyLifecycleScope(r.db.WithContext(ctx), scope).
		Where("id = ? AND owner_id = ?", id, ownerID)

	if err := query.First(&def).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDefinitionNotFound
		}
		return nil, fmt.Errorf("failed to get recurring definition: %w", err)
	}
	return &def, nil
}

func (r *definitionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, flow models.Flow, activeOnly bool) ([]models.RecurringDefinition, error) {
	var defs []models.RecurringDefinition

	query := applyLifecycleScope(r.db.WithContext(ctx), models.OnlyActive).
		Where("owner_id = ?", ownerID)
	if flow != "" {
		query = query.Where("flow = ?", flow)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("start_date ASC, created_at ASC").Find(&defs).Error; err != nil {
		return nil, fmt.Errorf("failed to list recurring definitions: %w", err)
	}
	return defs, nil
}

// Update writes the full definition state; concurrent edits resolve as last write wins.
func (r *definitionRepository) Update(ctx context.Context, def *models.RecurringDefinition) error {
	result := r.db.WithContext(ctx).
		Model(def).
		Where("owner_id = ?", def.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(def)
	if result.Error != nil {
		return fmt.Errorf("failed to update recurring definition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDefinitionNotFound
	}
	return nil
}

func (r *definitionRepository) SetLifecycle(ctx context.Context, ownerID, id uuid.UUID, lifecycle models.Lifecycle) error {
	result := r.db.WithContext(ctx).
		Model(&models.RecurringDefinition{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(lifecycleColumns(lifecycle))
	if result.Error != nil {
		return fmt.Errorf("failed to update recurring definition lifecycle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDefinitionNotFound
	}
	return nil
}
