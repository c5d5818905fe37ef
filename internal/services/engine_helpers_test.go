package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"family-ledger/internal/config"
	"family-ledger/internal/database"
	"family-ledger/internal/models"
	"family-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// testEngine wires every service against one in-memory database.
type testEngine struct {
	store          repositories.Store
	materializer   InstanceMaterializerInterface
	reconciliation ReconciliationServiceInterface
	definitions    DefinitionServiceInterface
	instances      InstanceServiceInterface
	installments   InstallmentServiceInterface
	budgets        BudgetServiceInterface
}

func newTestEngine(t *testing.T, cfg config.ScheduleConfig) *testEngine {
	t.Helper()

	if cfg.HardCap == 0 {
		cfg.HardCap = config.DefaultHardCap
	}

	db := database.SetupTestDB(t)
	store := repositories.NewStore(db.DB)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	audit := NewAuditLogger(logger)

	materializer := NewInstanceMaterializer(cfg.HardCap, metrics, audit, logger)
	reconciliation := NewReconciliationService(store, cfg, metrics, audit, logger)

	return &testEngine{
		store:          store,
		materializer:   materializer,
		reconciliation: reconciliation,
		definitions:    NewDefinitionService(store, materializer, reconciliation, metrics, audit, logger),
		instances:      NewInstanceService(store, reconciliation, metrics, audit, logger),
		installments:   NewInstallmentService(store, materializer, reconciliation, metrics, audit, logger),
		budgets:        NewBudgetService(store, metrics, audit, logger),
	}
}

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func datePtr(s string) *models.Date {
	d := models.MustParseDate(s)
	return &d
}

func dateStrings(instances []models.TransactionInstance) []string {
	out := make([]string, len(instances))
	for i := range instances {
		out[i] = instances[i].Date.String()
	}
	return out
}

// activeChildren lists the active instances of parent ordered by date.
func (e *testEngine) activeChildren(t *testing.T, owner, parent uuid.UUID) []models.TransactionInstance {
	t.Helper()

	instances, err := e.store.Instances().Find(context.Background(), models.InstanceFilter{
		OwnerID:  owner,
		ParentID: &parent,
	})
	require.NoError(t, err)
	return instances
}

func (e *testEngine) storedDefinition(t *testing.T, owner, id uuid.UUID) *models.RecurringDefinition {
	t.Helper()

	def, err := e.store.Definitions().GetByID(context.Background(), owner, id, models.AnyLifecycle)
	require.NoError(t, err)
	return def
}
