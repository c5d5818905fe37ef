package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"family-ledger/internal/database"
	"family-ledger/internal/models"
	"family-ledger/internal/repositories"
	"family-ledger/internal/schedule"
	"family-ledger/internal/services"
	"family-ledger/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MaterializerTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	store        repositories.Store
	metrics      *service_mocks.MockMetricsRecorderInterface
	audit        *service_mocks.MockAuditLoggerInterface
	logger       *slog.Logger
	materializer services.InstanceMaterializerInterface
	owner        uuid.UUID
}

func TestMaterializerSuite(t *testing.T) {
	suite.Run(t, new(MaterializerTestSuite))
}

func (s *MaterializerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.store = repositories.NewStore(database.SetupTestDB(s.T()).DB)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.materializer = services.NewInstanceMaterializer(24, s.metrics, s.audit, s.logger)
	s.owner = uuid.New()
}

func (s *MaterializerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MaterializerTestSuite) seed(parent uuid.UUID) models.InstanceSeed {
	return models.InstanceSeed{
		OwnerID:     s.owner,
		Flow:        models.FlowExpense,
		CategoryID:  uuid.New(),
		Description: gofakeit.Sentence(3),
		Origin:      models.RecurringOrigin(parent),
	}
}

func (s *MaterializerTestSuite) occurrences(dates ...string) []schedule.Occurrence {
	out := make([]schedule.Occurrence, len(dates))
	for i, d := range dates {
		out[i] = schedule.Occurrence{Date: models.MustParseDate(d), Amount: decimal.NewFromInt(25)}
	}
	return out
}

func (s *MaterializerTestSuite) TestMaterialize_SecondPassCreatesNothing() {
	parent := uuid.New()
	seed := s.seed(parent)
	occurrences := s.occurrences("2024-05-01", "2024-06-01", "2024-07-01")

	s.metrics.EXPECT().IncrementCounter(services.MetricInstancesMaterialized, gomock.Any()).Times(3)
	s.metrics.EXPECT().IncrementCounter(services.MetricInstancesSkipped, gomock.Any()).Times(3)
	s.audit.EXPECT().LogInstancesMaterialized(gomock.Any(), parent, models.KindRecurring, 3, 0).Times(1)
	s.audit.EXPECT().LogInstancesMaterialized(gomock.Any(), parent, models.KindRecurring, 0, 3).Times(1)

	created, err := s.materializer.Materialize(s.ctx, s.store, seed, occurrences)
	s.Require().NoError(err)
	s.Len(created, 3)

	created, err = s.materializer.Materialize(s.ctx, s.store, seed, occurrences)
	s.Require().NoError(err)
	s.Empty(created)

	count, err := s.store.Instances().Count(s.ctx, models.InstanceFilter{OwnerID: s.owner, ParentID: &parent})
	s.Require().NoError(err)
	s.Equal(int64(3), count)
}

func (s *MaterializerTestSuite) TestMaterialize_CollapsesRepeatedDates() {
	parent := uuid.New()

	s.metrics.EXPECT().IncrementCounter(services.MetricInstancesMaterialized, gomock.Any()).Times(2)
	s.metrics.EXPECT().IncrementCounter(services.MetricInstancesSkipped, gomock.Any()).Times(1)
	s.audit.EXPECT().LogInstancesMaterialized(gomock.Any(), parent, models.KindRecurring, 2, 1)

	created, err := s.materializer.Materialize(s.ctx, s.store, s.seed(parent), s.occurrences("2024-05-01", "2024-05-01", "2024-05-02"))
	s.Require().NoError(err)
	s.Len(created, 2)
}

func (s *MaterializerTestSuite) TestMaterialize_RejectsSingleOrigin() {
	seed := s.seed(uuid.New())
	seed.Origin = models.SingleOrigin()

	_, err := s.materializer.Materialize(s.ctx, s.store, seed, s.occurrences("2024-05-01"))
	s.ErrorIs(err, models.ErrInvalidOrigin)
}

func (s *MaterializerTestSuite) TestMaterializePlan_RecordsDuration() {
	plan := &models.InstallmentPlan{
		ID:                   uuid.New(),
		OwnerID:              s.owner,
		Flow:                 models.FlowExpense,
		CategoryID:           uuid.New(),
		TotalAmount:          decimal.RequireFromString("100.00"),
		NumberOfInstallments: 3,
		FirstPaymentDate:     models.MustParseDate("2024-01-31"),
	}

	s.metrics.EXPECT().IncrementCounter(services.MetricInstancesMaterialized, map[string]string{"kind": string(models.KindInstallment)}).Times(3)
	s.metrics.EXPECT().RecordProcessingTime(services.MetricMaterialization, gomock.Any()).Times(1)
	s.audit.EXPECT().LogInstancesMaterialized(gomock.Any(), plan.ID, models.KindInstallment, 3, 0)

	created, err := s.materializer.MaterializePlan(s.ctx, s.store, plan)
	s.Require().NoError(err)
	s.Require().Len(created, 3)
	s.Equal("33.34", created[2].Amount.StringFixed(2))
}

func (s *MaterializerTestSuite) TestMaterializePlan_CountBeyondHardCap() {
	plan := &models.InstallmentPlan{
		ID:                   uuid.New(),
		OwnerID:              s.owner,
		Flow:                 models.FlowExpense,
		CategoryID:           uuid.New(),
		TotalAmount:          decimal.RequireFromString("2500.00"),
		NumberOfInstallments: 25,
		FirstPaymentDate:     models.MustParseDate("2024-01-31"),
	}

	s.metrics.EXPECT().RecordProcessingTime(services.MetricMaterialization, gomock.Any()).Times(1)

	_, err := s.materializer.MaterializePlan(s.ctx, s.store, plan)
	s.ErrorIs(err, models.ErrInvalidInstallmentCount)
}

func (s *MaterializerTestSuite) TestCreatePlan_RollsBackWhenMaterializationFails() {
	materializer := service_mocks.NewMockInstanceMaterializerInterface(s.ctrl)
	reconciliation := service_mocks.NewMockReconciliationServiceInterface(s.ctrl)
	installments := services.NewInstallmentService(s.store, materializer, reconciliation, s.metrics, s.audit, s.logger)

	boom := errors.New("disk full")
	materializer.EXPECT().MaterializePlan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	plan, err := installments.CreatePlan(s.ctx, s.owner, services.PlanInput{
		CategoryID:           uuid.New(),
		TotalAmount:          decimal.RequireFromString("300.00"),
		NumberOfInstallments: 3,
		FirstPaymentDate:     models.MustParseDate("2024-01-31"),
	})
	s.ErrorIs(err, boom)
	s.Nil(plan)

	plans, err := installments.ListPlans(s.ctx, s.owner, true)
	s.Require().NoError(err)
	s.Empty(plans)
}

func (s *MaterializerTestSuite) TestRestorePlan_DelegatesToReconciliation() {
	materializer := service_mocks.NewMockInstanceMaterializerInterface(s.ctrl)
	reconciliation := service_mocks.NewMockReconciliationServiceInterface(s.ctrl)
	installments := services.NewInstallmentService(s.store, materializer, reconciliation, s.metrics, s.audit, s.logger)

	planID := uuid.New()
	reconciliation.EXPECT().
		RestoreAllInstancesAndParent(gomock.Any(), s.owner, models.InstallmentOrigin(planID)).
		Return(services.ErrNotArchived)

	_, err := installments.RestorePlan(s.ctx, s.owner, planID)
	s.ErrorIs(err, services.ErrNotArchived)
}
