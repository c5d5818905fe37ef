package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"family-ledger/internal/config"
	"family-ledger/internal/models"
	"family-ledger/internal/repositories"

	"github.com/google/uuid"
)

type reconciliationService struct {
	store             repositories.Store
	reconcileExpenses bool
	metrics           MetricsRecorderInterface
	audit             AuditLoggerInterface
	logger            *slog.Logger
}

// NewReconciliationService creates the reconciliation service. Income
// definitions are always reconciled; expense definitions only when the
// schedule config enables it.
func NewReconciliationService(
	store repositories.Store,
	cfg config.ScheduleConfig,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
	logger *slog.Logger,
) ReconciliationServiceInterface {
	return &reconciliationService{
		store:             store,
		reconcileExpenses: cfg.ReconcileExpenses,
		metrics:           metrics,
		audit:             audit,
		logger:            logger,
	}
}

func (s *reconciliationService) Covers(flow models.Flow) bool {
	return flow == models.FlowIncome || (flow == models.FlowExpense && s.reconcileExpenses)
}

// ReconcileAfterDelete realigns a definition with its remaining instances after
// one of them was archived. With no instance left the definition goes inactive;
// otherwise start and end follow the remaining dates and an occurrences cap
// shrinks to the remaining count.
func (s *reconciliationService) ReconcileAfterDelete(ctx context.Context, store repositories.Store, ownerID, definitionID uuid.UUID) error {
	return s.reconcile(ctx, store, ownerID, definitionID, true)
}

// ReconcileAfterEdit realigns start and end dates after an instance changed.
func (s *reconciliationService) ReconcileAfterEdit(ctx context.Context, store repositories.Store, ownerID, definitionID uuid.UUID) error {
	return s.reconcile(ctx, store, ownerID, definitionID, false)
}

func (s *reconciliationService) reconcile(ctx context.Context, store repositories.Store, ownerID, definitionID uuid.UUID, shrinkCount bool) error {
	def, err := store.Definitions().GetByID(ctx, ownerID, definitionID, models.OnlyActive)
	if errors.Is(err, repositories.ErrDefinitionNotFound) {
		// processed instances outlive an archived definition
		return nil
	}
	if err != nil {
		return err
	}
	if !s.Covers(def.Flow) {
		return nil
	}

	summary, err := store.Instances().SummarizeChildren(ctx, ownerID, definitionID)
	if err != nil {
		return err
	}

	previous := def.State()
	applySummary(def, summary, shrinkCount)

	if err := store.Definitions().Update(ctx, def); err != nil {
		return translateRepoError(err)
	}

	trigger := "edit"
	if shrinkCount {
		trigger = "delete"
	}
	s.metrics.IncrementCounter(MetricDefinitionReconciled, map[string]string{"trigger": trigger})
	s.audit.LogDefinitionReconciled(ctx, def.ID, summary.Count, def.State())
	if previous != def.State() {
		s.audit.LogDefinitionStateChange(ctx, def.ID, previous, def.State())
	}

	return nil
}

func applySummary(def *models.RecurringDefinition, summary *models.ChildSummary, shrinkCount bool) {
	if summary.Count == 0 {
		if shrinkCount {
			def.MarkExhausted()
		}
		return
	}

	def.StartDate = *summary.MinDate
	if def.IsDateBounded() {
		def.EndDate = summary.MaxDate
	}
	if shrinkCount && def.Occurrences != nil {
		remaining := int(summary.Count)
		def.Occurrences = &remaining
	}

	if def.NextDueDate == nil {
		return
	}
	if def.EndDate != nil && def.NextDueDate.After(*def.EndDate) {
		def.MarkExhausted()
	}
	if def.Occurrences != nil && summary.Count >= int64(*def.Occurrences) {
		def.MarkExhausted()
	}
}

// DeleteAllInstancesAndParent archives the parent of origin together with
// every active instance it produced, processed ones included, in one
// transaction stamped with one timestamp.
func (s *reconciliationService) DeleteAllInstancesAndParent(ctx context.Context, ownerID uuid.UUID, origin models.Origin) error {
	parentID, ok := origin.Parent()
	if !ok {
		return models.ErrInvalidOrigin
	}

	at := models.ArchiveTimestamp(time.Now())
	var archived int64

	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		if err := archiveParent(ctx, tx, ownerID, origin, at); err != nil {
			return err
		}

		count, err := tx.Instances().ArchiveByFilter(ctx, models.InstanceFilter{
			OwnerID:  ownerID,
			ParentID: &parentID,
		}, at)
		if err != nil {
			return err
		}
		archived = count
		return nil
	})
	if err != nil {
		return translateRepoError(err)
	}

	s.metrics.IncrementCounter(MetricCascade, map[string]string{"operation": "archive", "kind": string(origin.Kind)})
	s.audit.LogCascadeArchived(ctx, parentID, origin.Kind, archived)
	return nil
}

// RestoreAllInstancesAndParent reverses a cascade: the parent becomes active
// again together with the instances archived in the same cascade. Instances
// archived separately stay archived.
func (s *reconciliationService) RestoreAllInstancesAndParent(ctx context.Context, ownerID uuid.UUID, origin models.Origin) error {
	parentID, ok := origin.Parent()
	if !ok {
		return models.ErrInvalidOrigin
	}

	var restored int64
	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		lifecycle, err := parentLifecycle(ctx, tx, ownerID, origin)
		if err != nil {
			return err
		}
		if !lifecycle.IsArchived() || lifecycle.ArchivedAt == nil {
			return ErrNotArchived
		}

		count, err := tx.Instances().RestoreArchivedAt(ctx, ownerID, parentID, *lifecycle.ArchivedAt)
		if err != nil {
			return err
		}
		restored = count

		return setParentLifecycle(ctx, tx, ownerID, origin, lifecycle.Restore())
	})
	if err != nil {
		return translateRepoError(err)
	}

	s.metrics.IncrementCounter(MetricCascade, map[string]string{"operation": "restore", "kind": string(origin.Kind)})
	s.audit.LogCascadeRestored(ctx, parentID, origin.Kind, restored)
	return nil
}

// archiveParent archives the definition or plan behind origin. It fails with
// the not-found sentinel when the parent is missing, foreign or already archived.
func archiveParent(ctx context.Context, store repositories.Store, ownerID uuid.UUID, origin models.Origin, at time.Time) error {
	lifecycle, err := parentLifecycle(ctx, store, ownerID, origin)
	if err != nil {
		return err
	}
	if lifecycle.IsArchived() {
		return ErrNotFoundOrForbidden
	}
	return setParentLifecycle(ctx, store, ownerID, origin, lifecycle.Archive(at))
}

func parentLifecycle(ctx context.Context, store repositories.Store, ownerID uuid.UUID, origin models.Origin) (models.Lifecycle, error) {
	parentID, _ := origin.Parent()

	switch origin.Kind {
	case models.KindRecurring:
		def, err := store.Definitions().GetByID(ctx, ownerID, parentID, models.AnyLifecycle)
		if err != nil {
			return models.Lifecycle{}, err
		}
		return def.Lifecycle, nil
	case models.KindInstallment:
		plan, err := store.InstallmentPlans().GetByID(ctx, ownerID, parentID, models.AnyLifecycle)
		if err != nil {
			return models.Lifecycle{}, err
		}
		return plan.Lifecycle, nil
	default:
		return models.Lifecycle{}, models.ErrInvalidOrigin
	}
}

func setParentLifecycle(ctx context.Context, store repositories.Store, ownerID uuid.UUID, origin models.Origin, lifecycle models.Lifecycle) error {
	parentID, _ := origin.Parent()

	switch origin.Kind {
	case models.KindRecurring:
		return store.Definitions().SetLifecycle(ctx, ownerID, parentID, lifecycle)
	case models.KindInstallment:
		return store.InstallmentPlans().SetLifecycle(ctx, ownerID, parentID, lifecycle)
	default:
		return models.ErrInvalidOrigin
	}
}

// archiveUnprocessed archives the parent's unprocessed active instances with at.
func archiveUnprocessed(ctx context.Context, store repositories.Store, ownerID, parentID uuid.UUID, at time.Time) (int64, error) {
	unprocessed := false
	count, err := store.Instances().ArchiveByFilter(ctx, models.InstanceFilter{
		OwnerID:   ownerID,
		ParentID:  &parentID,
		Processed: &unprocessed,
	}, at)
	if err != nil {
		return 0, fmt.Errorf("failed to archive unprocessed instances: %w", err)
	}
	return count, nil
}

// archiveInstance archives a single active instance. Only the lifecycle
// columns are written, so a concurrent edit of the row survives.
func archiveInstance(ctx context.Context, store repositories.Store, instance *models.TransactionInstance, at time.Time) error {
	archived, err := store.Instances().ArchiveByFilter(ctx, models.InstanceFilter{
		OwnerID: instance.OwnerID,
		ID:      &instance.ID,
	}, at)
	if err != nil {
		return err
	}
	if archived == 0 {
		return ErrNotFoundOrForbidden
	}
	instance.Lifecycle = instance.Lifecycle.Archive(at)
	return nil
}
