package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"family-ledger/internal/models"
	"family-ledger/internal/repositories"

	"github.com/google/uuid"
)

// instanceService implements InstanceServiceInterface
type instanceService struct {
	store          repositories.Store
	reconciliation ReconciliationServiceInterface
	metrics        MetricsRecorderInterface
	audit          AuditLoggerInterface
	logger         *slog.Logger
}

// NewInstanceService creates the transaction instance service
func NewInstanceService(
	store repositories.Store,
	reconciliation ReconciliationServiceInterface,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
	logger *slog.Logger,
) InstanceServiceInterface {
	return &instanceService{
		store:          store,
		reconciliation: reconciliation,
		metrics:        metrics,
		audit:          audit,
		logger:         logger,
	}
}

// CreateSingle records a one-off transaction. Money has already moved, so it
// is stored processed.
func (s *instanceService) CreateSingle(ctx context.Context, ownerID uuid.UUID, input SingleInstanceInput) (*models.TransactionInstance, error) {
	instance := models.NewSingleInstance(ownerID, input.Flow, input.CategoryID, input.SubcategoryID, input.Amount, input.Date)
	instance.Description = input.Description
	instance.PaymentMethod = input.PaymentMethod

	if err := instance.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Instances().Create(ctx, instance); err != nil {
		return nil, translateRepoError(err)
	}
	return instance, nil
}

func (s *instanceService) GetInstance(ctx context.Context, ownerID, id uuid.UUID) (*models.TransactionInstance, error) {
	instance, err := s.store.Instances().GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return instance, nil
}

// ListInstances returns one page of instances and the total matching count.
func (s *instanceService) ListInstances(ctx context.Context, filter models.InstanceFilter) ([]models.TransactionInstance, int64, error) {
	if filter.OwnerID == uuid.Nil {
		return nil, 0, models.ErrMissingOwner
	}

	instances, err := s.store.Instances().Find(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.store.Instances().Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return instances, total, nil
}

// UpdateInstance edits one instance. Installment amounts and dates are fixed by
// the plan. Editing a recurring instance reconciles its definition.
func (s *instanceService) UpdateInstance(ctx context.Context, ownerID, id uuid.UUID, input InstanceUpdate) (*models.TransactionInstance, error) {
	var result *models.TransactionInstance

	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		instance, err := tx.Instances().GetByID(ctx, ownerID, id)
		if err != nil {
			return err
		}

		if instance.Origin.IsInstallment() && input.changesAmountOrDate() {
			return ErrImmutablePlanField
		}

		applyInstanceUpdate(instance, input)
		if err := instance.Validate(); err != nil {
			return err
		}

		if err := tx.Instances().Update(ctx, instance); err != nil {
			return err
		}

		if parentID, ok := instance.Origin.Parent(); ok && instance.Origin.IsRecurring() {
			if err := s.reconciliation.ReconcileAfterEdit(ctx, tx, ownerID, parentID); err != nil {
				return err
			}
		}

		result = instance
		return nil
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	return result, nil
}

func applyInstanceUpdate(instance *models.TransactionInstance, input InstanceUpdate) {
	if input.Amount != nil {
		instance.Amount = *input.Amount
	}
	if input.Date != nil {
		instance.Date = *input.Date
	}
	if input.Description != nil {
		instance.Description = *input.Description
	}
	if input.PaymentMethod != nil {
		instance.PaymentMethod = *input.PaymentMethod
	}
	if input.CategoryID != nil {
		instance.CategoryID = *input.CategoryID
	}
	if input.SubcategoryID != nil {
		instance.SubcategoryID = input.SubcategoryID
	}
}

// MarkInstanceProcessed records that the money of an instance has moved. It is
// idempotent. Processing the last open installment completes the plan.
func (s *instanceService) MarkInstanceProcessed(ctx context.Context, ownerID, id uuid.UUID) (*models.TransactionInstance, error) {
	var (
		result  *models.TransactionInstance
		changed bool
	)

	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		instance, err := tx.Instances().GetByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		result = instance

		if changed = instance.MarkProcessed(time.Now()); !changed {
			return nil
		}
		if err := tx.Instances().Update(ctx, instance); err != nil {
			return err
		}

		if planID, ok := instance.Origin.Parent(); ok && instance.Origin.IsInstallment() {
			return s.completePlanIfSettled(ctx, tx, ownerID, planID)
		}
		return nil
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	if changed {
		s.metrics.IncrementCounter(MetricInstanceProcessed, map[string]string{"kind": string(result.Origin.Kind)})
		s.audit.LogInstanceProcessed(ctx, result.ID, result.Origin)
	}
	return result, nil
}

func (s *instanceService) completePlanIfSettled(ctx context.Context, tx repositories.Store, ownerID, planID uuid.UUID) error {
	unprocessed := false
	open, err := tx.Instances().Count(ctx, models.InstanceFilter{
		OwnerID:   ownerID,
		ParentID:  &planID,
		Processed: &unprocessed,
	})
	if err != nil {
		return err
	}
	if open > 0 {
		return nil
	}

	plan, err := tx.InstallmentPlans().GetByID(ctx, ownerID, planID, models.OnlyActive)
	if err != nil {
		// an archived plan keeps its processed history but is not completed again
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil
		}
		return err
	}
	if plan.IsCompleted {
		return nil
	}

	plan.IsCompleted = true
	if err := tx.InstallmentPlans().Update(ctx, plan); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "installment plan completed", "plan_id", plan.ID)
	return nil
}

// DeleteInstance archives an instance. With DeleteScopeAll a generated
// instance takes its whole series and parent with it. A single installment
// cannot be removed on its own.
func (s *instanceService) DeleteInstance(ctx context.Context, ownerID, id uuid.UUID, scope DeleteScope) error {
	instance, err := s.store.Instances().GetByID(ctx, ownerID, id)
	if err != nil {
		return translateRepoError(err)
	}

	if scope == "" {
		scope = DeleteScopeOccurrence
	}

	switch {
	case scope != DeleteScopeAll && scope != DeleteScopeOccurrence:
		return ErrInvalidDeleteScope
	case instance.Origin.IsSingle():
		return translateRepoError(archiveInstance(ctx, s.store, instance, time.Now()))
	case scope == DeleteScopeAll:
		return s.reconciliation.DeleteAllInstancesAndParent(ctx, ownerID, instance.Origin)
	case instance.Origin.IsInstallment():
		return ErrInstallmentOccurrenceDelete
	}

	parentID, _ := instance.Origin.Parent()
	err = s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		if err := archiveInstance(ctx, tx, instance, time.Now()); err != nil {
			return err
		}
		return s.reconciliation.ReconcileAfterDelete(ctx, tx, ownerID, parentID)
	})
	return translateRepoError(err)
}
