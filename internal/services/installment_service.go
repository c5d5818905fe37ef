package services

import (
	"context"
	"log/slog"
	"time"

	"family-ledger/internal/models"
	"family-ledger/internal/repositories"

	"github.com/google/uuid"
)

// installmentService implements InstallmentServiceInterface
type installmentService struct {
	store          repositories.Store
	materializer   InstanceMaterializerInterface
	reconciliation ReconciliationServiceInterface
	metrics        MetricsRecorderInterface
	audit          AuditLoggerInterface
	logger         *slog.Logger
}

// NewInstallmentService creates the installment plan service
func NewInstallmentService(
	store repositories.Store,
	materializer InstanceMaterializerInterface,
	reconciliation ReconciliationServiceInterface,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
	logger *slog.Logger,
) InstallmentServiceInterface {
	return &installmentService{
		store:          store,
		materializer:   materializer,
		reconciliation: reconciliation,
		metrics:        metrics,
		audit:          audit,
		logger:         logger,
	}
}

// CreatePlan stores a plan and all of its installments in one transaction.
func (s *installmentService) CreatePlan(ctx context.Context, ownerID uuid.UUID, input PlanInput) (*models.InstallmentPlan, error) {
	flow := input.Flow
	if flow == "" {
		flow = models.FlowExpense
	}

	plan := &models.InstallmentPlan{
		ID:                   uuid.New(),
		OwnerID:              ownerID,
		Flow:                 flow,
		CategoryID:           input.CategoryID,
		SubcategoryID:        input.SubcategoryID,
		Description:          input.Description,
		PaymentMethod:        input.PaymentMethod,
		TotalAmount:          input.TotalAmount,
		NumberOfInstallments: input.NumberOfInstallments,
		FirstPaymentDate:     input.FirstPaymentDate,
		Lifecycle:            models.ActiveLifecycle(),
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	plan.InstallmentAmount = models.RegularInstallment(plan.TotalAmount, plan.NumberOfInstallments)

	var created int
	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		if err := tx.InstallmentPlans().Create(ctx, plan); err != nil {
			return err
		}
		instances, err := s.materializer.MaterializePlan(ctx, tx, plan)
		if err != nil {
			return err
		}
		created = len(instances)
		return nil
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	s.logger.InfoContext(ctx, "installment plan created",
		"plan_id", plan.ID,
		"installments", created,
		"installment_amount", plan.InstallmentAmount.StringFixed(2),
	)

	return plan, nil
}

func (s *installmentService) GetPlan(ctx context.Context, ownerID, id uuid.UUID) (*models.InstallmentPlan, error) {
	plan, err := s.store.InstallmentPlans().GetByID(ctx, ownerID, id, models.OnlyActive)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return plan, nil
}

func (s *installmentService) ListPlans(ctx context.Context, ownerID uuid.UUID, includeCompleted bool) ([]models.InstallmentPlan, error) {
	return s.store.InstallmentPlans().ListByOwner(ctx, ownerID, includeCompleted)
}

// UpdatePlan changes description, payment method, category and the completion
// flag. Total and count may be sent back unchanged but never altered.
func (s *installmentService) UpdatePlan(ctx context.Context, ownerID, id uuid.UUID, input PlanUpdate) (*models.InstallmentPlan, error) {
	var result *models.InstallmentPlan

	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		plan, err := tx.InstallmentPlans().GetByID(ctx, ownerID, id, models.OnlyActive)
		if err != nil {
			return err
		}

		if input.TotalAmount != nil && !input.TotalAmount.Equal(plan.TotalAmount) {
			return ErrImmutablePlanField
		}
		if input.NumberOfInstallments != nil && *input.NumberOfInstallments != plan.NumberOfInstallments {
			return ErrImmutablePlanField
		}

		if input.Description != nil {
			plan.Description = *input.Description
		}
		if input.PaymentMethod != nil {
			plan.PaymentMethod = *input.PaymentMethod
		}
		if input.CategoryID != nil {
			plan.CategoryID = *input.CategoryID
		}
		if input.SubcategoryID != nil {
			plan.SubcategoryID = input.SubcategoryID
		}
		if input.IsCompleted != nil {
			plan.IsCompleted = *input.IsCompleted
		}

		if err := plan.Validate(); err != nil {
			return err
		}
		if err := tx.InstallmentPlans().Update(ctx, plan); err != nil {
			return err
		}

		if input.Propagate {
			if _, err := tx.Instances().PropagateToUnprocessed(ctx, ownerID, plan.ID, repositories.InstanceFields{
				Description:   &plan.Description,
				PaymentMethod: &plan.PaymentMethod,
				CategoryID:    &plan.CategoryID,
				SubcategoryID: plan.SubcategoryID,
			}); err != nil {
				return err
			}
		}

		result = plan
		return nil
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	return result, nil
}

// DeletePlan archives the plan and its unprocessed installments; paid
// installments stay for reporting.
func (s *installmentService) DeletePlan(ctx context.Context, ownerID, id uuid.UUID) error {
	at := models.ArchiveTimestamp(time.Now())
	var archived int64

	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		plan, err := tx.InstallmentPlans().GetByID(ctx, ownerID, id, models.OnlyActive)
		if err != nil {
			return err
		}

		archived, err = archiveUnprocessed(ctx, tx, ownerID, plan.ID, at)
		if err != nil {
			return err
		}

		return tx.InstallmentPlans().SetLifecycle(ctx, ownerID, plan.ID, plan.Lifecycle.Archive(at))
	})
	if err != nil {
		return translateRepoError(err)
	}

	s.metrics.IncrementCounter(MetricCascade, map[string]string{"operation": "archive", "kind": string(models.KindInstallment)})
	s.audit.LogCascadeArchived(ctx, id, models.KindInstallment, archived)
	return nil
}

func (s *installmentService) RestorePlan(ctx context.Context, ownerID, id uuid.UUID) (*models.InstallmentPlan, error) {
	if err := s.reconciliation.RestoreAllInstancesAndParent(ctx, ownerID, models.InstallmentOrigin(id)); err != nil {
		return nil, err
	}
	return s.GetPlan(ctx, ownerID, id)
}
