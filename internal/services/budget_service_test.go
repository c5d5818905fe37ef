package services

import (
	"context"
	"testing"
	"time"

	"family-ledger/internal/config"
	"family-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestStatusFromSpent_ZeroDivisionPolicy(t *testing.T) {
	testCases := []struct {
		name       string
		allocated  string
		spent      string
		percentage string
		remaining  string
	}{
		{"nothing allocated but spent", "0", "50", "100", "-50"},
		{"nothing allocated nothing spent", "0", "0", "0", "0"},
		{"quarter spent", "200", "50", "25", "150"},
		{"overspent", "200", "300", "150", "-100"},
		{"repeating fraction", "300", "100", "33.33", "200"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			allocation := &models.BudgetAllocation{
				ID:              uuid.New(),
				AllocatedAmount: decimal.RequireFromString(tc.allocated),
			}

			status := StatusFromSpent(allocation, decimal.RequireFromString(tc.spent))

			assert.True(t, status.Percentage.Equal(decimal.RequireFromString(tc.percentage)), "percentage %s", status.Percentage)
			assert.True(t, status.Remaining.Equal(decimal.RequireFromString(tc.remaining)), "remaining %s", status.Remaining)
			assert.Equal(t, allocation.ID, status.AllocationID)
		})
	}
}

func TestComputeStatus_CountsOnlyProcessedExpensesInPeriod(t *testing.T) {
	owner := uuid.New()
	subcategory := uuid.New()
	other := uuid.New()
	allocation := &models.BudgetAllocation{
		ID:              uuid.New(),
		OwnerID:         owner,
		SubcategoryID:   subcategory,
		Year:            2024,
		Month:           3,
		AllocatedAmount: decimal.RequireFromString("200.00"),
	}

	instance := func(flow models.Flow, sub uuid.UUID, amount, date string, processed bool) models.TransactionInstance {
		i := models.NewSingleInstance(owner, flow, uuid.New(), &sub, decimal.RequireFromString(amount), models.MustParseDate(date))
		i.IsProcessed = processed
		return *i
	}

	archived := instance(models.FlowExpense, subcategory, "70.00", "2024-03-12", true)
	archived.Lifecycle = archived.Lifecycle.Archive(time.Now())

	instances := []models.TransactionInstance{
		instance(models.FlowExpense, subcategory, "30.00", "2024-03-01", true),
		instance(models.FlowExpense, subcategory, "20.00", "2024-03-31", true),
		instance(models.FlowExpense, subcategory, "15.00", "2024-03-15", false),
		instance(models.FlowIncome, subcategory, "500.00", "2024-03-10", true),
		instance(models.FlowExpense, other, "40.00", "2024-03-10", true),
		instance(models.FlowExpense, subcategory, "25.00", "2024-04-01", true),
		archived,
	}

	status := ComputeStatus(allocation, instances)

	assert.True(t, status.Spent.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, status.Remaining.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, status.Percentage.Equal(decimal.RequireFromString("25.00")))
}

type BudgetServiceTestSuite struct {
	suite.Suite
	engine      *testEngine
	ctx         context.Context
	owner       uuid.UUID
	profile     uuid.UUID
	subcategory uuid.UUID
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.engine = newTestEngine(s.T(), config.ScheduleConfig{})
	s.ctx = context.Background()
	s.owner = uuid.New()
	s.profile = uuid.New()
	s.subcategory = uuid.New()
}

func (s *BudgetServiceTestSuite) spend(subcategory uuid.UUID, amount, date string) {
	_, err := s.engine.instances.CreateSingle(s.ctx, s.owner, SingleInstanceInput{
		Flow:          models.FlowExpense,
		CategoryID:    uuid.New(),
		SubcategoryID: &subcategory,
		Amount:        decimal.RequireFromString(amount),
		Date:          models.MustParseDate(date),
	})
	s.Require().NoError(err)
}

func (s *BudgetServiceTestSuite) allocate(subcategory uuid.UUID, amount string) *models.BudgetAllocation {
	allocation, err := s.engine.budgets.UpsertAllocation(s.ctx, s.owner, AllocationInput{
		ProfileID:       s.profile,
		SubcategoryID:   subcategory,
		Year:            2024,
		Month:           3,
		AllocatedAmount: decimal.RequireFromString(amount),
	})
	s.Require().NoError(err)
	return allocation
}

func (s *BudgetServiceTestSuite) TestGetBudgetStatus_SumsProcessedExpenses() {
	allocation := s.allocate(s.subcategory, "200.00")

	s.spend(s.subcategory, "30.00", "2024-03-01")
	s.spend(s.subcategory, "20.00", "2024-03-31")
	s.spend(s.subcategory, "99.00", "2024-04-01")
	s.spend(uuid.New(), "12.00", "2024-03-05")

	_, err := s.engine.definitions.CreateDefinition(s.ctx, s.owner, DefinitionInput{
		Flow:          models.FlowExpense,
		CategoryID:    uuid.New(),
		SubcategoryID: &s.subcategory,
		Amount:        decimal.RequireFromString("45.00"),
		Frequency:     models.FrequencyMonthly,
		Interval:      1,
		StartDate:     models.MustParseDate("2024-03-02"),
		Occurrences:   intPtr(1),
	})
	s.Require().NoError(err)

	status, err := s.engine.budgets.GetBudgetStatus(s.ctx, s.owner, allocation.ID)
	s.Require().NoError(err)

	s.True(status.Allocated.Equal(decimal.RequireFromString("200.00")))
	s.True(status.Spent.Equal(decimal.RequireFromString("50.00")), "spent %s", status.Spent)
	s.True(status.Remaining.Equal(decimal.RequireFromString("150.00")))
	s.True(status.Percentage.Equal(decimal.RequireFromString("25.00")))
	s.Equal(2024, status.Year)
	s.Equal(3, status.Month)
}

func (s *BudgetServiceTestSuite) TestGetBudgetStatus_ForeignOwnerLooksMissing() {
	allocation := s.allocate(s.subcategory, "200.00")

	_, err := s.engine.budgets.GetBudgetStatus(s.ctx, uuid.New(), allocation.ID)
	s.ErrorIs(err, ErrNotFoundOrForbidden)
}

func (s *BudgetServiceTestSuite) TestGetPeriodStatus_OneRowPerAllocation() {
	groceries := s.allocate(s.subcategory, "100.00")
	unplanned := uuid.New()
	zero := s.allocate(unplanned, "0")
	idle := s.allocate(uuid.New(), "80.00")

	s.spend(s.subcategory, "10.10", "2024-03-03")
	s.spend(s.subcategory, "10.20", "2024-03-04")
	s.spend(unplanned, "5.00", "2024-03-09")

	statuses, err := s.engine.budgets.GetPeriodStatus(s.ctx, s.owner, s.profile, 2024, 3)
	s.Require().NoError(err)
	s.Require().Len(statuses, 3)

	byAllocation := make(map[uuid.UUID]models.BudgetStatus, len(statuses))
	for _, status := range statuses {
		byAllocation[status.AllocationID] = status
	}

	s.True(byAllocation[groceries.ID].Spent.Equal(decimal.RequireFromString("20.30")))
	s.True(byAllocation[groceries.ID].Percentage.Equal(decimal.RequireFromString("20.30")))
	s.True(byAllocation[zero.ID].Percentage.Equal(decimal.NewFromInt(100)))
	s.True(byAllocation[idle.ID].Spent.IsZero())
	s.True(byAllocation[idle.ID].Percentage.IsZero())
}

func (s *BudgetServiceTestSuite) TestGetPeriodStatus_EmptyAndInvalidPeriods() {
	statuses, err := s.engine.budgets.GetPeriodStatus(s.ctx, s.owner, s.profile, 2024, 5)
	s.Require().NoError(err)
	s.Empty(statuses)

	_, err = s.engine.budgets.GetPeriodStatus(s.ctx, s.owner, s.profile, 2024, 13)
	s.ErrorIs(err, models.ErrInvalidPeriod)
}

func (s *BudgetServiceTestSuite) TestUpsertAllocation_ReplacesAmountInSameSlot() {
	first := s.allocate(s.subcategory, "100.00")
	second := s.allocate(s.subcategory, "150.00")

	s.Equal(first.ID, second.ID)
	s.True(second.AllocatedAmount.Equal(decimal.RequireFromString("150.00")))

	statuses, err := s.engine.budgets.GetPeriodStatus(s.ctx, s.owner, s.profile, 2024, 3)
	s.Require().NoError(err)
	s.Require().Len(statuses, 1)
	s.True(statuses[0].Allocated.Equal(decimal.RequireFromString("150.00")))
}

func (s *BudgetServiceTestSuite) TestUpsertAllocation_ForeignSlotLooksMissing() {
	s.allocate(s.subcategory, "100.00")

	_, err := s.engine.budgets.UpsertAllocation(s.ctx, uuid.New(), AllocationInput{
		ProfileID:       s.profile,
		SubcategoryID:   s.subcategory,
		Year:            2024,
		Month:           3,
		AllocatedAmount: decimal.RequireFromString("1.00"),
	})
	s.ErrorIs(err, ErrNotFoundOrForbidden)
}

func (s *BudgetServiceTestSuite) TestUpsertAllocation_Validates() {
	_, err := s.engine.budgets.UpsertAllocation(s.ctx, s.owner, AllocationInput{
		ProfileID:       s.profile,
		SubcategoryID:   s.subcategory,
		Year:            2024,
		Month:           0,
		AllocatedAmount: decimal.RequireFromString("1.00"),
	})
	s.ErrorIs(err, models.ErrInvalidPeriod)

	_, err = s.engine.budgets.UpsertAllocation(s.ctx, s.owner, AllocationInput{
		ProfileID:       s.profile,
		SubcategoryID:   s.subcategory,
		Year:            2024,
		Month:           3,
		AllocatedAmount: decimal.RequireFromString("-1.00"),
	})
	s.ErrorIs(err, models.ErrInvalidAmount)
}
