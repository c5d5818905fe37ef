package repositories

import (
	"context"
	"errors"

	"family-ledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDefinitionNotFound = errors.New("recurring definition not found")
	ErrPlanNotFound       = errors.New("installment plan not found")
	ErrInstanceNotFound   = errors.New("transaction instance not found")
	ErrAllocationNotFound = errors.New("budget allocation not found")
	ErrDuplicateInstance  = errors.New("an active instance already exists for this parent and date")
	ErrDuplicateSlot      = errors.New("a budget allocation already exists for this period")
)

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a store backed by db.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Definitions() DefinitionRepositoryInterface {
	return NewDefinitionRepository(s.db)
}

func (s *gormStore) InstallmentPlans() InstallmentPlanRepositoryInterface {
	return NewInstallmentPlanRepository(s.db)
}

func (s *gormStore) Instances() InstanceRepositoryInterface {
	return NewInstanceRepository(s.db)
}

func (s *gormStore) Allocations() BudgetAllocationRepositoryInterface {
	return NewBudgetAllocationRepository(s.db)
}

// WithinTransaction runs fn against a store bound to one transaction. Calls
// made on an already transactional store nest as savepoints.
func (s *gormStore) WithinTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func applyLifecycleScope(db *gorm.DB, scope models.LifecycleScope) *gorm.DB {
	switch scope {
	case models.OnlyActive:
		return db.Where("lifecycle_state = ?", models.LifecycleActive)
	case models.OnlyArchived:
		return db.Where("lifecycle_state = ?", models.LifecycleArchived)
	default:
		return db
	}
}

func lifecycleColumns(l models.Lifecycle) map[string]interface{} {
	return map[string]interface{}{
		"lifecycle_state": l.State,
		"archived_at":     l.ArchivedAt,
	}
}
