package services

import (
	"context"
	"log/slog"
	"time"

	"family-ledger/internal/models"
	"family-ledger/internal/repositories"

	"github.com/google/uuid"
)

// definitionService implements DefinitionServiceInterface
type definitionService struct {
	store          repositories.Store
	materializer   InstanceMaterializerInterface
	reconciliation ReconciliationServiceInterface
	metrics        MetricsRecorderInterface
	audit          AuditLoggerInterface
	logger         *slog.Logger
}

// NewDefinitionService creates the recurring definition lifecycle manager
func NewDefinitionService(
	store repositories.Store,
	materializer InstanceMaterializerInterface,
	reconciliation ReconciliationServiceInterface,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
	logger *slog.Logger,
) DefinitionServiceInterface {
	return &definitionService{
		store:          store,
		materializer:   materializer,
		reconciliation: reconciliation,
		metrics:        metrics,
		audit:          audit,
		logger:         logger,
	}
}

// CreateDefinition stores a new definition and materializes its schedule up to
// the hard cap in the same transaction.
func (s *definitionService) CreateDefinition(ctx context.Context, ownerID uuid.UUID, input DefinitionInput) (*models.RecurringDefinition, error) {
	interval := input.Interval
	if interval == 0 {
		interval = 1
	}

	def := &models.RecurringDefinition{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Flow:          input.Flow,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		Amount:        input.Amount,
		Frequency:     input.Frequency,
		Interval:      interval,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Occurrences:   input.Occurrences,
		IsActive:      true,
		Lifecycle:     models.ActiveLifecycle(),
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	var created int
	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		if err := tx.Definitions().Create(ctx, def); err != nil {
			return err
		}
		instances, err := s.materializer.MaterializeDefinition(ctx, tx, def)
		if err != nil {
			return err
		}
		created = len(instances)
		return nil
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	s.logger.InfoContext(ctx, "recurring definition created",
		"definition_id", def.ID,
		"flow", def.Flow,
		"frequency", def.Frequency,
		"instances", created,
		"state", def.State(),
	)

	return def, nil
}

func (s *definitionService) GetDefinition(ctx context.Context, ownerID, id uuid.UUID) (*models.RecurringDefinition, error) {
	def, err := s.store.Definitions().GetByID(ctx, ownerID, id, models.OnlyActive)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return def, nil
}

func (s *definitionService) ListDefinitions(ctx context.Context, ownerID uuid.UUID, flow models.Flow, activeOnly bool) ([]models.RecurringDefinition, error) {
	defs, err := s.store.Definitions().ListByOwner(ctx, ownerID, flow, activeOnly)
	if err != nil {
		return nil, err
	}

	if activeOnly {
		s.metrics.RecordGauge(MetricActiveDefinitions, float64(len(defs)), nil)
	}
	return defs, nil
}

func (s *definitionService) ListDefinitionInstances(ctx context.Context, ownerID, id uuid.UUID, processed *bool) ([]models.TransactionInstance, error) {
	if _, err := s.GetDefinition(ctx, ownerID, id); err != nil {
		return nil, err
	}

	return s.store.Instances().Find(ctx, models.InstanceFilter{
		OwnerID:   ownerID,
		ParentID:  &id,
		Processed: processed,
	})
}

// UpdateDefinition applies a partial update and moves the definition through
// its states. Only an explicit isActive changes whether it is active.
//   - schedule change: unprocessed instances are archived at once, whether
//     or not the definition stays active; processed instances are never
//     touched
//   - inactive result: nextDueDate cleared, nothing materialized
//   - active after a schedule change or reactivation: the schedule is
//     materialized again from startDate
//   - anything else: plain field update
func (s *definitionService) UpdateDefinition(ctx context.Context, ownerID, id uuid.UUID, input DefinitionUpdate) (*models.RecurringDefinition, error) {
	var result *models.RecurringDefinition

	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		def, err := tx.Definitions().GetByID(ctx, ownerID, id, models.OnlyActive)
		if err != nil {
			return err
		}

		previous := def.State()
		wasActive := def.IsActive

		scheduleChanged, err := applyDefinitionUpdate(def, input)
		if err != nil {
			return err
		}

		wantActive := wasActive
		if input.IsActive != nil {
			wantActive = *input.IsActive
		}

		if scheduleChanged {
			archived, err := archiveUnprocessed(ctx, tx, ownerID, def.ID, time.Now())
			if err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "schedule changed, unprocessed instances archived",
				"definition_id", def.ID,
				"archived", archived,
				"active", wantActive,
			)
		}

		switch {
		case !wantActive:
			def.IsActive = false
			def.NextDueDate = nil
			if err := tx.Definitions().Update(ctx, def); err != nil {
				return err
			}
		case scheduleChanged || !wasActive:
			if _, err := s.materializer.MaterializeDefinition(ctx, tx, def); err != nil {
				return err
			}
		default:
			if err := tx.Definitions().Update(ctx, def); err != nil {
				return err
			}
		}

		if input.Propagate {
			changed, err := tx.Instances().PropagateToUnprocessed(ctx, ownerID, def.ID, repositories.InstanceFields{
				Description:   &def.Description,
				PaymentMethod: &def.PaymentMethod,
				CategoryID:    &def.CategoryID,
				SubcategoryID: def.SubcategoryID,
			})
			if err != nil {
				return err
			}
			s.logger.DebugContext(ctx, "definition fields propagated", "definition_id", def.ID, "instances", changed)
		}

		if previous != def.State() {
			s.audit.LogDefinitionStateChange(ctx, def.ID, previous, def.State())
		}

		result = def
		return nil
	})
	if err != nil {
		return nil, translateRepoError(err)
	}

	return result, nil
}

// applyDefinitionUpdate copies input onto def and reports whether a
// schedule-defining field (amount, frequency, interval, start date, end
// condition) changed.
func applyDefinitionUpdate(def *models.RecurringDefinition, input DefinitionUpdate) (bool, error) {
	if (input.EndDate != nil && input.ClearEndDate) || (input.Occurrences != nil && input.ClearOccurrences) {
		return false, models.ErrConflictingEndCondition
	}

	changed := false

	if input.CategoryID != nil {
		def.CategoryID = *input.CategoryID
	}
	if input.SubcategoryID != nil {
		def.SubcategoryID = input.SubcategoryID
	}
	if input.Description != nil {
		def.Description = *input.Description
	}
	if input.PaymentMethod != nil {
		def.PaymentMethod = *input.PaymentMethod
	}

	if input.Amount != nil && !input.Amount.Equal(def.Amount) {
		def.Amount = *input.Amount
		changed = true
	}
	if input.Frequency != nil && *input.Frequency != def.Frequency {
		def.Frequency = *input.Frequency
		changed = true
	}
	if input.Interval != nil && *input.Interval != def.Interval {
		def.Interval = *input.Interval
		changed = true
	}
	if input.StartDate != nil && !input.StartDate.Equal(def.StartDate) {
		def.StartDate = *input.StartDate
		changed = true
	}

	if input.ClearEndDate && def.EndDate != nil {
		def.EndDate = nil
		changed = true
	}
	if input.EndDate != nil && (def.EndDate == nil || !input.EndDate.Equal(*def.EndDate)) {
		def.EndDate = input.EndDate
		changed = true
	}
	if input.ClearOccurrences && def.Occurrences != nil {
		def.Occurrences = nil
		changed = true
	}
	if input.Occurrences != nil && (def.Occurrences == nil || *input.Occurrences != *def.Occurrences) {
		occurrences := *input.Occurrences
		def.Occurrences = &occurrences
		changed = true
	}

	if err := def.Validate(); err != nil {
		return false, err
	}
	return changed, nil
}

// DeleteDefinition removes either the whole series or one occurrence. The
// whole series archives the definition with its unprocessed instances and
// keeps processed history; one occurrence archives that instance and
// reconciles the definition.
func (s *definitionService) DeleteDefinition(ctx context.Context, ownerID, id uuid.UUID, opts DeleteOptions) error {
	switch opts.Scope {
	case DeleteScopeAll, "":
		return s.archiveSeries(ctx, ownerID, id)
	case DeleteScopeOccurrence:
		if opts.InstanceID == nil {
			return ErrMissingInstanceID
		}
		return s.archiveOccurrence(ctx, ownerID, id, *opts.InstanceID)
	default:
		return ErrInvalidDeleteScope
	}
}

func (s *definitionService) archiveSeries(ctx context.Context, ownerID, id uuid.UUID) error {
	at := models.ArchiveTimestamp(time.Now())
	var archived int64

	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		def, err := tx.Definitions().GetByID(ctx, ownerID, id, models.OnlyActive)
		if err != nil {
			return err
		}

		archived, err = archiveUnprocessed(ctx, tx, ownerID, def.ID, at)
		if err != nil {
			return err
		}

		return tx.Definitions().SetLifecycle(ctx, ownerID, def.ID, def.Lifecycle.Archive(at))
	})
	if err != nil {
		return translateRepoError(err)
	}

	s.metrics.IncrementCounter(MetricCascade, map[string]string{"operation": "archive", "kind": string(models.KindRecurring)})
	s.audit.LogCascadeArchived(ctx, id, models.KindRecurring, archived)
	return nil
}

func (s *definitionService) archiveOccurrence(ctx context.Context, ownerID, id, instanceID uuid.UUID) error {
	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		def, err := tx.Definitions().GetByID(ctx, ownerID, id, models.OnlyActive)
		if err != nil {
			return err
		}

		instance, err := tx.Instances().GetByID(ctx, ownerID, instanceID)
		if err != nil {
			return err
		}
		if parentID, ok := instance.Origin.Parent(); !ok || !instance.Origin.IsRecurring() || parentID != def.ID {
			return ErrInstanceNotInDefinition
		}

		if err := archiveInstance(ctx, tx, instance, time.Now()); err != nil {
			return err
		}
		return s.reconciliation.ReconcileAfterDelete(ctx, tx, ownerID, def.ID)
	})
	return translateRepoError(err)
}

// RestoreDefinition brings back a definition archived by DeleteDefinition
// together with the instances archived alongside it.
func (s *definitionService) RestoreDefinition(ctx context.Context, ownerID, id uuid.UUID) (*models.RecurringDefinition, error) {
	if err := s.reconciliation.RestoreAllInstancesAndParent(ctx, ownerID, models.RecurringOrigin(id)); err != nil {
		return nil, err
	}
	return s.GetDefinition(ctx, ownerID, id)
}
