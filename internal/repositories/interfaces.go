package repositories

import (
	"context"
	"time"

	"family-ledger/internal/models"

	"github.com/google/uuid"
)

// DefinitionRepositoryInterface stores recurring definitions. Every lookup is
// scoped to an owner; a foreign id behaves exactly like a missing one.
type DefinitionRepositoryInterface interface {
	Create(ctx context.Context, def *models.RecurringDefinition) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID, scope models.LifecycleScope) (*models.RecurringDefinition, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, flow models.Flow, activeOnly bool) ([]models.RecurringDefinition, error)
	Update(ctx context.Context, def *models.RecurringDefinition) error
	SetLifecycle(ctx context.Context, ownerID, id uuid.UUID, lifecycle models.Lifecycle) error
}

// InstallmentPlanRepositoryInterface stores installment plans.
type InstallmentPlanRepositoryInterface interface {
	Create(ctx context.Context, plan *models.InstallmentPlan) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID, scope models.LifecycleScope) (*models.InstallmentPlan, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, includeCompleted bool) ([]models.InstallmentPlan, error)
	Update(ctx context.Context, plan *models.InstallmentPlan) error
	SetLifecycle(ctx context.Context, ownerID, id uuid.UUID, lifecycle models.Lifecycle) error
}

// InstanceRepositoryInterface stores transaction instances and answers the
// filter, bulk lifecycle and aggregation queries the engine needs.
type InstanceRepositoryInterface interface {
	Create(ctx context.Context, instance *models.TransactionInstance) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.TransactionInstance, error)
	Find(ctx context.Context, filter models.InstanceFilter) ([]models.TransactionInstance, error)
	Count(ctx context.Context, filter models.InstanceFilter) (int64, error)
	ActiveDatesForParent(ctx context.Context, ownerID, parentID uuid.UUID) (map[string]struct{}, error)
	Update(ctx context.Context, instance *models.TransactionInstance) error
	ArchiveByFilter(ctx context.Context, filter models.InstanceFilter, at time.Time) (int64, error)
	RestoreArchivedAt(ctx context.Context, ownerID, parentID uuid.UUID, archivedAt time.Time) (int64, error)
	PropagateToUnprocessed(ctx context.Context, ownerID, parentID uuid.UUID, fields InstanceFields) (int64, error)
	SummarizeChildren(ctx context.Context, ownerID, parentID uuid.UUID) (*models.ChildSummary, error)
	SumProcessedExpensesBySubcategory(ctx context.Context, ownerID uuid.UUID, year int, month time.Month) ([]models.SubcategorySpend, error)
}

// BudgetAllocationRepositoryInterface stores monthly budget allocations.
type BudgetAllocationRepositoryInterface interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.BudgetAllocation, error)
	FindSlot(ctx context.Context, profileID, subcategoryID uuid.UUID, year, month int) (*models.BudgetAllocation, error)
	ListForPeriod(ctx context.Context, ownerID, profileID uuid.UUID, year, month int) ([]models.BudgetAllocation, error)
	Create(ctx context.Context, allocation *models.BudgetAllocation) error
	Update(ctx context.Context, allocation *models.BudgetAllocation) error
}

// Store groups the repositories so that a unit of work can run them all inside
// one database transaction.
type Store interface {
	Definitions() DefinitionRepositoryInterface
	InstallmentPlans() InstallmentPlanRepositoryInterface
	Instances() InstanceRepositoryInterface
	Allocations() BudgetAllocationRepositoryInterface
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}
