package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"family-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AuditLoggerTestSuite struct {
	suite.Suite
	buf   *bytes.Buffer
	audit AuditLoggerInterface
}

func TestAuditLoggerSuite(t *testing.T) {
	suite.Run(t, new(AuditLoggerTestSuite))
}

func (s *AuditLoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.audit = NewAuditLogger(logger)
}

func (s *AuditLoggerTestSuite) lastEntry() map[string]interface{} {
	lines := bytes.Split(bytes.TrimSpace(s.buf.Bytes()), []byte("\n"))
	s.Require().NotEmpty(lines)

	var entry map[string]interface{}
	s.Require().NoError(json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func (s *AuditLoggerTestSuite) TestCorrelationIDIsAttached() {
	ctx := WithCorrelationID(context.Background(), "req-123")
	parentID := uuid.New()

	s.audit.LogInstancesMaterialized(ctx, parentID, models.KindRecurring, 3, 1)

	entry := s.lastEntry()
	s.Equal("instances_materialized", entry["event_type"])
	s.Equal("req-123", entry["correlation_id"])
	s.Equal(parentID.String(), entry["parent_id"])
	s.Equal(float64(3), entry["created"])
	s.Equal(float64(1), entry["skipped"])
}

func (s *AuditLoggerTestSuite) TestMissingCorrelationIDIsEmpty() {
	s.audit.LogCascadeArchived(context.Background(), uuid.New(), models.KindInstallment, 4)

	entry := s.lastEntry()
	s.Equal("cascade_archived", entry["event_type"])
	s.Equal("", entry["correlation_id"])
	s.Equal(string(models.KindInstallment), entry["kind"])
}

func (s *AuditLoggerTestSuite) TestDefinitionStateChange() {
	s.audit.LogDefinitionStateChange(context.Background(), uuid.New(), models.DefinitionActiveScheduled, models.DefinitionInactive)

	entry := s.lastEntry()
	s.Equal("definition_state_changed", entry["event_type"])
	s.Equal(string(models.DefinitionActiveScheduled), entry["old_state"])
	s.Equal(string(models.DefinitionInactive), entry["new_state"])
}

func (s *AuditLoggerTestSuite) TestInstanceProcessedCarriesParent() {
	planID := uuid.New()
	s.audit.LogInstanceProcessed(context.Background(), uuid.New(), models.InstallmentOrigin(planID))
	s.Equal(planID.String(), s.lastEntry()["parent_id"])

	s.audit.LogInstanceProcessed(context.Background(), uuid.New(), models.SingleOrigin())
	_, hasParent := s.lastEntry()["parent_id"]
	s.False(hasParent)
}

func (s *AuditLoggerTestSuite) TestBudgetStatusComputed() {
	s.audit.LogBudgetStatusComputed(context.Background(), uuid.New(), decimal.RequireFromString("50"), decimal.RequireFromString("25"))

	entry := s.lastEntry()
	s.Equal("budget_status_computed", entry["event_type"])
	s.Equal("50.00", entry["spent"])
	s.Equal("25.00", entry["percentage"])
}
