package repositories

import (
	"context"
	"testing"
	"time"

	"family-ledger/internal/database"
	"family-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestDefinitionRepository(t *testing.T) {
	suite.Run(t, new(DefinitionRepositorySuite))
}

type DefinitionRepositorySuite struct {
	suite.Suite
	db    *database.DB
	repo  DefinitionRepositoryInterface
	ctx   context.Context
	owner uuid.UUID
}

func (s *DefinitionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewDefinitionRepository(s.db.DB)
	s.ctx = context.Background()
	s.owner = uuid.New()
}

func newTestDefinition(owner uuid.UUID) *models.RecurringDefinition {
	return &models.RecurringDefinition{
		OwnerID:     owner,
		Flow:        models.FlowIncome,
		CategoryID:  uuid.New(),
		Description: gofakeit.Sentence(3),
		Amount:      decimal.NewFromInt(int64(gofakeit.Number(10, 5000))),
		Frequency:   models.FrequencyMonthly,
		Interval:    1,
		StartDate:   models.MustParseDate("2024-01-31"),
		IsActive:    true,
	}
}

func (s *DefinitionRepositorySuite) TestCreate_AssignsDefaults() {
	def := newTestDefinition(s.owner)
	def.Interval = 0

	s.Require().NoError(s.repo.Create(s.ctx, def))
	s.NotEqual(uuid.Nil, def.ID)
	s.Equal(1, def.Interval)
	s.Equal(models.LifecycleActive, def.Lifecycle.State)
	s.NotZero(def.CreatedAt)
}

func (s *DefinitionRepositorySuite) TestCreate_RejectsInvalidDefinition() {
	def := newTestDefinition(s.owner)
	occurrences := 3
	def.EndDate = models.MustParseDate("2024-12-31").Ptr()
	def.Occurrences = &occurrences

	err := s.repo.Create(s.ctx, def)
	s.Require().Error(err)
	s.ErrorIs(err, models.ErrConflictingEndCondition)
}

func (s *DefinitionRepositorySuite) TestGetByID_RoundTripsDates() {
	def := newTestDefinition(s.owner)
	def.EndDate = models.MustParseDate("2024-06-30").Ptr()
	def.NextDueDate = models.MustParseDate("2024-02-29").Ptr()
	s.Require().NoError(s.repo.Create(s.ctx, def))

	found, err := s.repo.GetByID(s.ctx, s.owner, def.ID, models.OnlyActive)
	s.Require().NoError(err)
	s.Equal("2024-01-31", found.StartDate.String())
	s.Require().NotNil(found.EndDate)
	s.Equal("2024-06-30", found.EndDate.String())
	s.Require().NotNil(found.NextDueDate)
	s.Equal("2024-02-29", found.NextDueDate.String())
	s.Nil(found.Occurrences)
	s.True(def.Amount.Equal(found.Amount))
}

func (s *DefinitionRepositorySuite) TestGetByID_ForeignOwnerLooksMissing() {
	def := newTestDefinition(s.owner)
	s.Require().NoError(s.repo.Create(s.ctx, def))

	_, err := s.repo.GetByID(s.ctx, uuid.New(), def.ID, models.OnlyActive)
	s.ErrorIs(err, ErrDefinitionNotFound)

	_, err = s.repo.GetByID(s.ctx, s.owner, uuid.New(), models.OnlyActive)
	s.ErrorIs(err, ErrDefinitionNotFound)
}

func (s *DefinitionRepositorySuite) TestSetLifecycle_HidesArchived() {
	def := newTestDefinition(s.owner)
	s.Require().NoError(s.repo.Create(s.ctx, def))

	at := time.Date(2024, 3, 1, 10, 30, 0, 123456789, time.UTC)
	s.Require().NoError(s.repo.SetLifecycle(s.ctx, s.owner, def.ID, def.Lifecycle.Archive(at)))

	_, err := s.repo.GetByID(s.ctx, s.owner, def.ID, models.OnlyActive)
	s.ErrorIs(err, ErrDefinitionNotFound)

	archived, err := s.repo.GetByID(s.ctx, s.owner, def.ID, models.OnlyArchived)
	s.Require().NoError(err)
	s.True(archived.Lifecycle.IsArchived())
	s.Require().NotNil(archived.Lifecycle.ArchivedAt)
	s.True(models.ArchiveTimestamp(at).Equal(*archived.Lifecycle.ArchivedAt))

	s.Require().NoError(s.repo.SetLifecycle(s.ctx, s.owner, def.ID, models.ActiveLifecycle()))
	restored, err := s.repo.GetByID(s.ctx, s.owner, def.ID, models.OnlyActive)
	s.Require().NoError(err)
	s.Nil(restored.Lifecycle.ArchivedAt)
}

func (s *DefinitionRepositorySuite) TestSetLifecycle_ForeignOwner() {
	def := newTestDefinition(s.owner)
	s.Require().NoError(s.repo.Create(s.ctx, def))

	err := s.repo.SetLifecycle(s.ctx, uuid.New(), def.ID, def.Lifecycle.Archive(time.Now()))
	s.ErrorIs(err, ErrDefinitionNotFound)
}

func (s *DefinitionRepositorySuite) TestUpdate_ClearsNullableFields() {
	def := newTestDefinition(s.owner)
	def.NextDueDate = models.MustParseDate("2024-02-29").Ptr()
	s.Require().NoError(s.repo.Create(s.ctx, def))

	def.MarkExhausted()
	def.Description = "salary"
	s.Require().NoError(s.repo.Update(s.ctx, def))

	found, err := s.repo.GetByID(s.ctx, s.owner, def.ID, models.OnlyActive)
	s.Require().NoError(err)
	s.False(found.IsActive)
	s.Nil(found.NextDueDate)
	s.Equal("salary", found.Description)
}

func (s *DefinitionRepositorySuite) TestUpdate_ForeignOwnerIsRejected() {
	def := newTestDefinition(s.owner)
	s.Require().NoError(s.repo.Create(s.ctx, def))

	intruder := *def
	intruder.OwnerID = uuid.New()
	intruder.Description = "hijacked"
	s.ErrorIs(s.repo.Update(s.ctx, &intruder), ErrDefinitionNotFound)

	found, err := s.repo.GetByID(s.ctx, s.owner, def.ID, models.OnlyActive)
	s.Require().NoError(err)
	s.Equal(def.Description, found.Description)
}

func (s *DefinitionRepositorySuite) TestListByOwner_Filters() {
	income := newTestDefinition(s.owner)
	s.Require().NoError(s.repo.Create(s.ctx, income))

	expense := newTestDefinition(s.owner)
	expense.Flow = models.FlowExpense
	s.Require().NoError(s.repo.Create(s.ctx, expense))

	inactive := newTestDefinition(s.owner)
	s.Require().NoError(s.repo.Create(s.ctx, inactive))
	inactive.IsActive = false
	s.Require().NoError(s.repo.Update(s.ctx, inactive))

	s.Require().NoError(s.repo.Create(s.ctx, newTestDefinition(uuid.New())))

	all, err := s.repo.ListByOwner(s.ctx, s.owner, "", false)
	s.Require().NoError(err)
	s.Len(all, 3)

	incomeOnly, err := s.repo.ListByOwner(s.ctx, s.owner, models.FlowIncome, false)
	s.Require().NoError(err)
	s.Len(incomeOnly, 2)

	activeIncome, err := s.repo.ListByOwner(s.ctx, s.owner, models.FlowIncome, true)
	s.Require().NoError(err)
	s.Require().Len(activeIncome, 1)
	s.Equal(income.ID, activeIncome[0].ID)
}
