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

func TestInstallmentPlanRepository(t *testing.T) {
	suite.Run(t, new(InstallmentPlanRepositorySuite))
}

type InstallmentPlanRepositorySuite struct {
	suite.Suite
	db    *database.DB
	repo  InstallmentPlanRepositoryInterface
	ctx   context.Context
	owner uuid.UUID
}

func (s *InstallmentPlanRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewInstallmentPlanRepository(s.db.DB)
	s.ctx = context.Background()
	s.owner = uuid.New()
}

func newTestPlan(owner uuid.UUID, firstPayment string) *models.InstallmentPlan {
	return &models.InstallmentPlan{
		OwnerID:              owner,
		CategoryID:           uuid.New(),
		Description:          gofakeit.ProductName(),
		PaymentMethod:        gofakeit.CreditCardType(),
		TotalAmount:          decimal.RequireFromString("100.00"),
		NumberOfInstallments: 3,
		FirstPaymentDate:     models.MustParseDate(firstPayment),
	}
}

func (s *InstallmentPlanRepositorySuite) TestCreate_DerivesDefaults() {
	plan := newTestPlan(s.owner, "2024-01-31")

	s.Require().NoError(s.repo.Create(s.ctx, plan))
	s.NotEqual(uuid.Nil, plan.ID)
	s.Equal(models.FlowExpense, plan.Flow)
	s.Equal("33.33", plan.InstallmentAmount.StringFixed(2))
	s.Equal(models.LifecycleActive, plan.Lifecycle.State)
}

func (s *InstallmentPlanRepositorySuite) TestCreate_RejectsSingleInstallment() {
	plan := newTestPlan(s.owner, "2024-01-31")
	plan.NumberOfInstallments = 1

	s.ErrorIs(s.repo.Create(s.ctx, plan), models.ErrInvalidInstallmentCount)
}

func (s *InstallmentPlanRepositorySuite) TestGetByID_ScopedToOwner() {
	plan := newTestPlan(s.owner, "2024-01-31")
	s.Require().NoError(s.repo.Create(s.ctx, plan))

	found, err := s.repo.GetByID(s.ctx, s.owner, plan.ID, models.OnlyActive)
	s.Require().NoError(err)
	s.Equal("2024-01-31", found.FirstPaymentDate.String())
	s.True(plan.TotalAmount.Equal(found.TotalAmount))

	_, err = s.repo.GetByID(s.ctx, uuid.New(), plan.ID, models.OnlyActive)
	s.ErrorIs(err, ErrPlanNotFound)
}

func (s *InstallmentPlanRepositorySuite) TestListByOwner_FiltersCompletedAndArchived() {
	open := newTestPlan(s.owner, "2024-03-01")
	earlier := newTestPlan(s.owner, "2024-01-01")
	completed := newTestPlan(s.owner, "2024-02-01")
	archived := newTestPlan(s.owner, "2024-04-01")
	foreign := newTestPlan(uuid.New(), "2024-01-01")
	for _, p := range []*models.InstallmentPlan{open, earlier, completed, archived, foreign} {
		s.Require().NoError(s.repo.Create(s.ctx, p))
	}

	completed.IsCompleted = true
	s.Require().NoError(s.repo.Update(s.ctx, completed))
	s.Require().NoError(s.repo.SetLifecycle(s.ctx, s.owner, archived.ID, archived.Lifecycle.Archive(time.Now())))

	pending, err := s.repo.ListByOwner(s.ctx, s.owner, false)
	s.Require().NoError(err)
	s.Require().Len(pending, 2)
	s.Equal(earlier.ID, pending[0].ID)
	s.Equal(open.ID, pending[1].ID)

	all, err := s.repo.ListByOwner(s.ctx, s.owner, true)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *InstallmentPlanRepositorySuite) TestUpdate_ForeignOwnerLooksMissing() {
	plan := newTestPlan(s.owner, "2024-01-31")
	s.Require().NoError(s.repo.Create(s.ctx, plan))

	plan.OwnerID = uuid.New()
	plan.Description = "renamed"

	s.ErrorIs(s.repo.Update(s.ctx, plan), ErrPlanNotFound)
}

func (s *InstallmentPlanRepositorySuite) TestSetLifecycle_ArchiveAndRestore() {
	plan := newTestPlan(s.owner, "2024-01-31")
	s.Require().NoError(s.repo.Create(s.ctx, plan))

	s.Require().NoError(s.repo.SetLifecycle(s.ctx, s.owner, plan.ID, plan.Lifecycle.Archive(time.Now())))
	_, err := s.repo.GetByID(s.ctx, s.owner, plan.ID, models.OnlyActive)
	s.ErrorIs(err, ErrPlanNotFound)

	s.Require().NoError(s.repo.SetLifecycle(s.ctx, s.owner, plan.ID, models.ActiveLifecycle()))
	restored, err := s.repo.GetByID(s.ctx, s.owner, plan.ID, models.OnlyActive)
	s.Require().NoError(err)
	s.False(restored.Lifecycle.IsArchived())

	s.ErrorIs(s.repo.SetLifecycle(s.ctx, uuid.New(), plan.ID, models.ActiveLifecycle()), ErrPlanNotFound)
}
