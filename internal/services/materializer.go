package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"family-ledger/internal/models"
	"family-ledger/internal/repositories"
	"family-ledger/internal/schedule"
)

type instanceMaterializer struct {
	hardCap int
	metrics MetricsRecorderInterface
	audit   AuditLoggerInterface
	logger  *slog.Logger
}

// NewInstanceMaterializer creates a materializer expanding at most hardCap
// occurrences per pass.
func NewInstanceMaterializer(hardCap int, metrics MetricsRecorderInterface, audit AuditLoggerInterface, logger *slog.Logger) InstanceMaterializerInterface {
	return &instanceMaterializer{
		hardCap: hardCap,
		metrics: metrics,
		audit:   audit,
		logger:  logger,
	}
}

// Materialize creates one instance per occurrence that has no active instance
// for the same parent and date yet. Running it twice with the same input
// creates nothing the second time.
func (m *instanceMaterializer) Materialize(ctx context.Context, store repositories.Store, seed models.InstanceSeed, occurrences []schedule.Occurrence) ([]models.TransactionInstance, error) {
	parentID, ok := seed.Origin.Parent()
	if !ok {
		return nil, models.ErrInvalidOrigin
	}

	existing, err := store.Instances().ActiveDatesForParent(ctx, seed.OwnerID, parentID)
	if err != nil {
		return nil, err
	}

	created := make([]models.TransactionInstance, 0, len(occurrences))
	skipped := 0
	tags := map[string]string{"kind": string(seed.Origin.Kind)}

	for _, occ := range occurrences {
		key := occ.Date.String()
		if _, found := existing[key]; found {
			skipped++
			m.metrics.IncrementCounter(MetricInstancesSkipped, tags)
			continue
		}

		// The unique index rejects a row a concurrent pass created after existing was read.
		instance := seed.NewInstance(occ.Date, occ.Amount)
		if err := store.Instances().Create(ctx, instance); err != nil {
			return nil, translateRepoError(err)
		}

		existing[key] = struct{}{}
		created = append(created, *instance)
		m.metrics.IncrementCounter(MetricInstancesMaterialized, tags)
	}

	m.audit.LogInstancesMaterialized(ctx, parentID, seed.Origin.Kind, len(created), skipped)
	return created, nil
}

// MaterializeDefinition expands def from its start date, persists the missing
// instances and moves nextDueDate forward. A schedule with nothing left leaves
// the definition inactive.
func (m *instanceMaterializer) MaterializeDefinition(ctx context.Context, store repositories.Store, def *models.RecurringDefinition) ([]models.TransactionInstance, error) {
	started := time.Now()
	defer func() {
		m.metrics.RecordProcessingTime(MetricMaterialization, time.Since(started))
	}()

	rule := schedule.RuleFor(def)
	dates, err := schedule.Expand(rule, m.hardCap)
	if err != nil {
		return nil, err
	}

	created, err := m.Materialize(ctx, store, def.Seed(), schedule.Recurring(dates, def.Amount))
	if err != nil {
		return nil, err
	}

	next, err := schedule.NextDue(rule, dates)
	if err != nil {
		return nil, err
	}

	def.IsActive = true
	def.NextDueDate = next
	if next == nil {
		def.MarkExhausted()
	}

	if err := store.Definitions().Update(ctx, def); err != nil {
		return nil, fmt.Errorf("failed to record next due date: %w", translateRepoError(err))
	}

	if len(dates) == m.hardCap && next != nil {
		m.logger.InfoContext(ctx, "schedule expansion stopped at hard cap",
			"definition_id", def.ID,
			"hard_cap", m.hardCap,
			"next_due_date", next.String(),
		)
	}

	return created, nil
}

// MaterializePlan persists the installments of plan that are not stored yet.
func (m *instanceMaterializer) MaterializePlan(ctx context.Context, store repositories.Store, plan *models.InstallmentPlan) ([]models.TransactionInstance, error) {
	started := time.Now()
	defer func() {
		m.metrics.RecordProcessingTime(MetricMaterialization, time.Since(started))
	}()

	occurrences, err := schedule.Installments(plan.FirstPaymentDate, plan.TotalAmount, plan.NumberOfInstallments, m.hardCap)
	if err != nil {
		return nil, err
	}

	created, err := m.Materialize(ctx, store, plan.Seed(), occurrences)
	if err != nil {
		if errors.Is(err, ErrDuplicateInstance) {
			m.logger.WarnContext(ctx, "concurrent installment materialization rejected", "plan_id", plan.ID)
		}
		return nil, err
	}

	return created, nil
}
