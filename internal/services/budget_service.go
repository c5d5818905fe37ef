package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"family-ledger/internal/models"
	"family-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// budgetService implements BudgetServiceInterface
type budgetService struct {
	store   repositories.Store
	metrics MetricsRecorderInterface
	audit   AuditLoggerInterface
	logger  *slog.Logger
}

// NewBudgetService creates the budget aggregator
func NewBudgetService(store repositories.Store, metrics MetricsRecorderInterface, audit AuditLoggerInterface, logger *slog.Logger) BudgetServiceInterface {
	return &budgetService{
		store:   store,
		metrics: metrics,
		audit:   audit,
		logger:  logger,
	}
}

// ComputeStatus sums the instances that count towards allocation and derives
// its status.
func ComputeStatus(allocation *models.BudgetAllocation, instances []models.TransactionInstance) models.BudgetStatus {
	spent := decimal.Zero
	for i := range instances {
		if instances[i].CountsTowardsBudget(allocation.SubcategoryID, allocation.Year, time.Month(allocation.Month)) {
			spent = spent.Add(instances[i].Amount)
		}
	}
	return StatusFromSpent(allocation, spent)
}

// StatusFromSpent derives remaining and percentage from an already summed
// spend. With nothing allocated any spend counts as 100 percent.
func StatusFromSpent(allocation *models.BudgetAllocation, spent decimal.Decimal) models.BudgetStatus {
	allocated := allocation.AllocatedAmount

	var percentage decimal.Decimal
	switch {
	case allocated.IsPositive():
		percentage = spent.Div(allocated).Mul(hundred).Round(2)
	case spent.IsPositive():
		percentage = hundred
	default:
		percentage = decimal.Zero
	}

	return models.BudgetStatus{
		AllocationID:  allocation.ID,
		ProfileID:     allocation.ProfileID,
		SubcategoryID: allocation.SubcategoryID,
		Year:          allocation.Year,
		Month:         allocation.Month,
		Allocated:     allocated,
		Spent:         spent,
		Remaining:     allocated.Sub(spent),
		Percentage:    percentage,
	}
}

func (s *budgetService) GetBudgetStatus(ctx context.Context, ownerID, allocationID uuid.UUID) (*models.BudgetStatus, error) {
	started := time.Now()
	defer s.recordComputation(started)

	allocation, err := s.store.Allocations().GetByID(ctx, ownerID, allocationID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	spend, err := s.spendBySubcategory(ctx, ownerID, allocation.Year, allocation.Month)
	if err != nil {
		return nil, err
	}

	status := StatusFromSpent(allocation, spend[allocation.SubcategoryID])
	s.audit.LogBudgetStatusComputed(ctx, allocation.ID, status.Spent, status.Percentage)
	return &status, nil
}

// GetPeriodStatus computes the status of every allocation of a profile for one
// month with a single grouped aggregation.
func (s *budgetService) GetPeriodStatus(ctx context.Context, ownerID, profileID uuid.UUID, year, month int) ([]models.BudgetStatus, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, models.ErrInvalidPeriod
	}

	started := time.Now()
	defer s.recordComputation(started)

	allocations, err := s.store.Allocations().ListForPeriod(ctx, ownerID, profileID, year, month)
	if err != nil {
		return nil, err
	}
	if len(allocations) == 0 {
		return []models.BudgetStatus{}, nil
	}

	spend, err := s.spendBySubcategory(ctx, ownerID, year, month)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.BudgetStatus, 0, len(allocations))
	for i := range allocations {
		statuses = append(statuses, StatusFromSpent(&allocations[i], spend[allocations[i].SubcategoryID]))
	}

	s.logger.DebugContext(ctx, "period budget status computed",
		"profile_id", profileID,
		"year", year,
		"month", month,
		"allocations", len(statuses),
	)
	return statuses, nil
}

func (s *budgetService) spendBySubcategory(ctx context.Context, ownerID uuid.UUID, year, month int) (map[uuid.UUID]decimal.Decimal, error) {
	rows, err := s.store.Instances().SumProcessedExpensesBySubcategory(ctx, ownerID, year, time.Month(month))
	if err != nil {
		return nil, err
	}

	spend := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		spend[row.SubcategoryID] = row.TotalAmount
	}
	return spend, nil
}

func (s *budgetService) recordComputation(started time.Time) {
	s.metrics.IncrementCounter(MetricBudgetStatus, nil)
	s.metrics.RecordProcessingTime(MetricBudgetStatus, time.Since(started))
}

// UpsertAllocation creates the allocation for a (profile, subcategory, month)
// slot or replaces the amount of the existing one. A slot held by another
// owner is reported as not found.
func (s *budgetService) UpsertAllocation(ctx context.Context, ownerID uuid.UUID, input AllocationInput) (*models.BudgetAllocation, error) {
	existing, err := s.store.Allocations().FindSlot(ctx, input.ProfileID, input.SubcategoryID, input.Year, input.Month)
	switch {
	case err == nil:
		if existing.OwnerID != ownerID {
			return nil, ErrNotFoundOrForbidden
		}
		existing.AllocatedAmount = input.AllocatedAmount
		if err := existing.Validate(); err != nil {
			return nil, err
		}
		if err := s.store.Allocations().Update(ctx, existing); err != nil {
			return nil, translateRepoError(err)
		}
		return existing, nil
	case !errors.Is(err, repositories.ErrAllocationNotFound):
		return nil, err
	}

	allocation := &models.BudgetAllocation{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		ProfileID:       input.ProfileID,
		SubcategoryID:   input.SubcategoryID,
		Year:            input.Year,
		Month:           input.Month,
		AllocatedAmount: input.AllocatedAmount,
	}
	if err := allocation.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Allocations().Create(ctx, allocation); err != nil {
		return nil, translateRepoError(err)
	}

	s.logger.InfoContext(ctx, "budget allocation created",
		"allocation_id", allocation.ID,
		"subcategory_id", allocation.SubcategoryID,
		"year", allocation.Year,
		"month", allocation.Month,
	)
	return allocation, nil
}
