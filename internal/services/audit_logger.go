package services

import (
	"context"
	"log/slog"
	"time"

	"family-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context whose audit events carry id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogInstancesMaterialized(ctx context.Context, parentID uuid.UUID, kind models.InstanceKind, created, skipped int) {
	al.logger.InfoContext(ctx, "instances materialized",
		slog.String("event_type", "instances_materialized"),
		slog.String("parent_id", parentID.String()),
		slog.String("kind", string(kind)),
		slog.Int("created", created),
		slog.Int("skipped", skipped),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogDefinitionStateChange(ctx context.Context, definitionID uuid.UUID, oldState, newState models.DefinitionState) {
	al.logger.InfoContext(ctx, "definition state change",
		slog.String("event_type", "definition_state_changed"),
		slog.String("definition_id", definitionID.String()),
		slog.String("old_state", string(oldState)),
		slog.String("new_state", string(newState)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogDefinitionReconciled(ctx context.Context, definitionID uuid.UUID, remaining int64, state models.DefinitionState) {
	al.logger.InfoContext(ctx, "definition reconciled",
		slog.String("event_type", "definition_reconciled"),
		slog.String("definition_id", definitionID.String()),
		slog.Int64("remaining_instances", remaining),
		slog.String("state", string(state)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCascadeArchived(ctx context.Context, parentID uuid.UUID, kind models.InstanceKind, instances int64) {
	al.logger.InfoContext(ctx, "cascade archived",
		slog.String("event_type", "cascade_archived"),
		slog.String("parent_id", parentID.String()),
		slog.String("kind", string(kind)),
		slog.Int64("instances", instances),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCascadeRestored(ctx context.Context, parentID uuid.UUID, kind models.InstanceKind, instances int64) {
	al.logger.InfoContext(ctx, "cascade restored",
		slog.String("event_type", "cascade_restored"),
		slog.String("parent_id", parentID.String()),
		slog.String("kind", string(kind)),
		slog.Int64("instances", instances),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogInstanceProcessed(ctx context.Context, instanceID uuid.UUID, origin models.Origin) {
	attrs := []slog.Attr{
		slog.String("event_type", "instance_processed"),
		slog.String("instance_id", instanceID.String()),
		slog.String("kind", string(origin.Kind)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	}

	if parentID, ok := origin.Parent(); ok {
		attrs = append(attrs, slog.String("parent_id", parentID.String()))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "instance processed", attrs...)
}

func (al *AuditLogger) LogBudgetStatusComputed(ctx context.Context, allocationID uuid.UUID, spent, percentage decimal.Decimal) {
	al.logger.DebugContext(ctx, "budget status computed",
		slog.String("event_type", "budget_status_computed"),
		slog.String("allocation_id", allocationID.String()),
		slog.String("spent", spent.StringFixed(2)),
		slog.String("percentage", percentage.StringFixed(2)),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// CorrelationID returns the id attached by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
