package repositories

import (
	"context"
	"errors"
	"fmt"

	"family-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type budgetAllocationRepository struct {
	db *gorm.DB
}

// NewBudgetAllocationRepository creates a new budget allocation repository
func NewBudgetAllocationRepository(db *gorm.DB) BudgetAllocationRepositoryInterface {
	return &budgetAllocationRepository{db: db}
}

func (r *budgetAllocationRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.BudgetAllocation, error) {
	var allocation models.BudgetAllocation
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&allocation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to get budget allocation: %w", err)
	}
	return &allocation, nil
}

// FindSlot looks a slot up without an owner filter so callers can tell a
// foreign slot apart from an empty one.
func (r *budgetAllocationRepository) FindSlot(ctx context.Context, profileID, subcategoryID uuid.UUID, year, month int) (*models.BudgetAllocation, error) {
	var allocation models.BudgetAllocation
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND subcategory_id = ? AND year = ? AND month = ?", profileID, subcategoryID, year, month).
		First(&allocation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to find budget allocation: %w", err)
	}
	return &allocation, nil
}

func (r *budgetAllocationRepository) ListForPeriod(ctx context.Context, ownerID, profileID uuid.UUID, year, month int) ([]models.BudgetAllocation, error) {
	var allocations []models.BudgetAllocation
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND profile_id = ? AND year = ? AND month = ?", ownerID, profileID, year, month).
		Order("created_at ASC").
		Find(&allocations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list budget allocations: %w", err)
	}
	return allocations, nil
}

func (r *budgetAllocationRepository) Create(ctx context.Context, allocation *models.BudgetAllocation) error {
	if err := r.db.WithContext(ctx).Create(allocation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to create budget allocation: %w", err)
	}
	return nil
}

func (r *budgetAllocationRepository) Update(ctx context.Context, allocation *models.BudgetAllocation) error {
	result := r.db.WithContext(ctx).
		Model(allocation).
		Where("owner_id = ?", allocation.OwnerID).
		Select("allocated_amount", "updated_at").
		Updates(allocation)
	if result.Error != nil {
		return fmt.Errorf("failed to update budget allocation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAllocationNotFound
	}
	return nil
}
