package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"family-ledger/internal/config"
	"family-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig(logger.Warn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.IsSQLite() {
		// sqlite serializes writers; one connection keeps transactions from stepping on each other.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.RecurringDefinition{},
		&models.InstallmentPlan{},
		&models.TransactionInstance{},
		&models.BudgetAllocation{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the database answers within ctx.
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Driver names the dialect in use, as reported by /health.
func (db *DB) Driver() string {
	return db.DB.Dialector.Name()
}

// requiredIndexes back storage-level invariants; failing to create one is fatal.
var requiredIndexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS uq_transaction_instances_parent_date ON transaction_instances(parent_id, date) WHERE lifecycle_state = 'active'",
	"CREATE UNIQUE INDEX IF NOT EXISTS uq_budget_allocations_period ON budget_allocations(profile_id, subcategory_id, year, month)",
}

var queryIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_transaction_instances_period ON transaction_instances(owner_id, flow, is_processed, date) WHERE lifecycle_state = 'active'",
	"CREATE INDEX IF NOT EXISTS idx_transaction_instances_parent ON transaction_instances(parent_id, is_processed)",
	"CREATE INDEX IF NOT EXISTS idx_transaction_instances_archived_at ON transaction_instances(archived_at) WHERE archived_at IS NOT NULL",
	"CREATE INDEX IF NOT EXISTS idx_recurring_definitions_owner_active ON recurring_definitions(owner_id, is_active)",
	"CREATE INDEX IF NOT EXISTS idx_installment_plans_owner ON installment_plans(owner_id, is_completed)",
	"CREATE INDEX IF NOT EXISTS idx_budget_allocations_owner_period ON budget_allocations(owner_id, year, month)",
}

func (db *DB) CreateIndexes() error {
	for _, query := range requiredIndexes {
		if err := db.DB.Exec(query).Error; err != nil {
			return fmt.Errorf("failed to create index %q: %w", query, err)
		}
	}

	for _, query := range queryIndexes {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Optional index not created", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize connects, brings the schema up to date and creates indexes.
// Postgres uses the embedded migrations when enabled and falls back to
// AutoMigrate; sqlite always uses AutoMigrate.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	migrated := false
	if !cfg.Database.IsSQLite() {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		migrated, err = RunMigrationsIfEnabled(ctx, sqlDB, cfg.Migrations)
		if err != nil {
			slog.Warn("Migration runner failed, falling back to AutoMigrate", "error", err)
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		return nil, err
	}

	slog.Info("Database ready", "driver", db.Driver(), "migrated", migrated)

	return db, nil
}
