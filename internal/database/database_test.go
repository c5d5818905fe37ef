package database

import (
	"context"
	"testing"
	"time"

	"family-ledger/internal/config"
	"family-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRecurringInstance(parent uuid.UUID, owner uuid.UUID, date models.Date) *models.TransactionInstance {
	seed := models.InstanceSeed{
		OwnerID:    owner,
		Flow:       models.FlowExpense,
		CategoryID: uuid.New(),
		Origin:     models.RecurringOrigin(parent),
	}
	return seed.NewInstance(date, decimal.RequireFromString("12.50"))
}

func TestSetupTestDB_EnforcesOneActiveInstancePerParentDate(t *testing.T) {
	db := SetupTestDB(t)
	owner := uuid.New()
	parent := uuid.New()
	date := models.NewDate(2024, time.January, 15)

	first := newRecurringInstance(parent, owner, date)
	require.NoError(t, db.Create(first).Error)

	duplicate := newRecurringInstance(parent, owner, date)
	err := db.Create(duplicate).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	archived := first.Lifecycle.Archive(time.Now())
	require.NoError(t, db.Model(first).Select("lifecycle_state", "archived_at").
		Updates(map[string]interface{}{"lifecycle_state": archived.State, "archived_at": archived.ArchivedAt}).Error)

	replacement := newRecurringInstance(parent, owner, date)
	assert.NoError(t, db.Create(replacement).Error, "archived rows must not block a new active row")
}

func TestSetupTestDB_DateRoundTrip(t *testing.T) {
	db := SetupTestDB(t)
	owner := uuid.New()
	inst := newRecurringInstance(uuid.New(), owner, models.NewDate(2024, time.February, 29))
	require.NoError(t, db.Create(inst).Error)

	var loaded models.TransactionInstance
	require.NoError(t, db.First(&loaded, "id = ?", inst.ID).Error)

	assert.Equal(t, "2024-02-29", loaded.Date.String())
	assert.Equal(t, "12.50", loaded.Amount.StringFixed(2))
	assert.True(t, loaded.Origin.IsRecurring())
	assert.Equal(t, models.LifecycleActive, loaded.Lifecycle.State)

	var count int64
	require.NoError(t, db.Model(&models.TransactionInstance{}).
		Where("date >= ? AND date < ?", models.NewDate(2024, time.February, 1), models.NewDate(2024, time.March, 1)).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNew_SQLiteAndUnsupportedDriver(t *testing.T) {
	db, err := New(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	assert.NoError(t, db.Ping(context.Background()))
	assert.Equal(t, "sqlite", db.Driver())
	assert.NoError(t, db.Close())

	_, err = New(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
