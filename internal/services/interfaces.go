package services

import (
	"context"
	"time"

	"family-ledger/internal/models"
	"family-ledger/internal/repositories"
	"family-ledger/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstanceMaterializerInterface turns expanded occurrences into persisted
// instances. Every method takes the store to write through so callers can run
// it inside their own transaction.
type InstanceMaterializerInterface interface {
	Materialize(ctx context.Context, store repositories.Store, seed models.InstanceSeed, occurrences []schedule.Occurrence) ([]models.TransactionInstance, error)
	MaterializeDefinition(ctx context.Context, store repositories.Store, def *models.RecurringDefinition) ([]models.TransactionInstance, error)
	MaterializePlan(ctx context.Context, store repositories.Store, plan *models.InstallmentPlan) ([]models.TransactionInstance, error)
}

// DefinitionServiceInterface manages the lifecycle of recurring definitions
type DefinitionServiceInterface interface {
	CreateDefinition(ctx context.Context, ownerID uuid.UUID, input DefinitionInput) (*models.RecurringDefinition, error)
	GetDefinition(ctx context.Context, ownerID, id uuid.UUID) (*models.RecurringDefinition, error)
	ListDefinitions(ctx context.Context, ownerID uuid.UUID, flow models.Flow, activeOnly bool) ([]models.RecurringDefinition, error)
	ListDefinitionInstances(ctx context.Context, ownerID, id uuid.UUID, processed *bool) ([]models.TransactionInstance, error)
	UpdateDefinition(ctx context.Context, ownerID, id uuid.UUID, input DefinitionUpdate) (*models.RecurringDefinition, error)
	DeleteDefinition(ctx context.Context, ownerID, id uuid.UUID, opts DeleteOptions) error
	RestoreDefinition(ctx context.Context, ownerID, id uuid.UUID) (*models.RecurringDefinition, error)
}

// ReconciliationServiceInterface keeps a definition consistent with its
// remaining instances and runs parent-plus-children cascades.
type ReconciliationServiceInterface interface {
	Covers(flow models.Flow) bool
	ReconcileAfterDelete(ctx context.Context, store repositories.Store, ownerID, definitionID uuid.UUID) error
	ReconcileAfterEdit(ctx context.Context, store repositories.Store, ownerID, definitionID uuid.UUID) error
	DeleteAllInstancesAndParent(ctx context.Context, ownerID uuid.UUID, origin models.Origin) error
	RestoreAllInstancesAndParent(ctx context.Context, ownerID uuid.UUID, origin models.Origin) error
}

// InstanceServiceInterface handles individual transaction instances
type InstanceServiceInterface interface {
	CreateSingle(ctx context.Context, ownerID uuid.UUID, input SingleInstanceInput) (*models.TransactionInstance, error)
	GetInstance(ctx context.Context, ownerID, id uuid.UUID) (*models.TransactionInstance, error)
	ListInstances(ctx context.Context, filter models.InstanceFilter) ([]models.TransactionInstance, int64, error)
	UpdateInstance(ctx context.Context, ownerID, id uuid.UUID, input InstanceUpdate) (*models.TransactionInstance, error)
	MarkInstanceProcessed(ctx context.Context, ownerID, id uuid.UUID) (*models.TransactionInstance, error)
	DeleteInstance(ctx context.Context, ownerID, id uuid.UUID, scope DeleteScope) error
}

// InstallmentServiceInterface manages installment plans
type InstallmentServiceInterface interface {
	CreatePlan(ctx context.Context, ownerID uuid.UUID, input PlanInput) (*models.InstallmentPlan, error)
	GetPlan(ctx context.Context, ownerID, id uuid.UUID) (*models.InstallmentPlan, error)
	ListPlans(ctx context.Context, ownerID uuid.UUID, includeCompleted bool) ([]models.InstallmentPlan, error)
	UpdatePlan(ctx context.Context, ownerID, id uuid.UUID, input PlanUpdate) (*models.InstallmentPlan, error)
	DeletePlan(ctx context.Context, ownerID, id uuid.UUID) error
	RestorePlan(ctx context.Context, ownerID, id uuid.UUID) (*models.InstallmentPlan, error)
}

// BudgetServiceInterface derives spent and remaining figures for allocations
type BudgetServiceInterface interface {
	GetBudgetStatus(ctx context.Context, ownerID, allocationID uuid.UUID) (*models.BudgetStatus, error)
	GetPeriodStatus(ctx context.Context, ownerID, profileID uuid.UUID, year, month int) ([]models.BudgetStatus, error)
	UpsertAllocation(ctx context.Context, ownerID uuid.UUID, input AllocationInput) (*models.BudgetAllocation, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogInstancesMaterialized(ctx context.Context, parentID uuid.UUID, kind models.InstanceKind, created, skipped int)
	LogDefinitionStateChange(ctx context.Context, definitionID uuid.UUID, oldState, newState models.DefinitionState)
	LogDefinitionReconciled(ctx context.Context, definitionID uuid.UUID, remaining int64, state models.DefinitionState)
	LogCascadeArchived(ctx context.Context, parentID uuid.UUID, kind models.InstanceKind, instances int64)
	LogCascadeRestored(ctx context.Context, parentID uuid.UUID, kind models.InstanceKind, instances int64)
	LogInstanceProcessed(ctx context.Context, instanceID uuid.UUID, origin models.Origin)
	LogBudgetStatusComputed(ctx context.Context, allocationID uuid.UUID, spent, percentage decimal.Decimal)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}
