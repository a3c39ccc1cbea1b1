package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yukikurage/assignment-tracker/internal/config"
	"github.com/yukikurage/assignment-tracker/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     ":memory:",
		LogLevel: "silent",
	}, zap.NewNop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, Migrate(db, zap.NewNop()))
	return db
}

func TestDialector_SelectsDriver(t *testing.T) {
	cases := map[string]string{
		config.DriverSQLite:   "sqlite",
		config.DriverMySQL:    "mysql",
		config.DriverPostgres: "postgres",
	}

	for driver, name := range cases {
		t.Run(driver, func(t *testing.T) {
			d, err := Dialector(config.DatabaseConfig{Driver: driver, Path: "app.db"})
			require.NoError(t, err)
			assert.Equal(t, name, d.Name())
		})
	}
}

func TestDialector_UnknownDriver(t *testing.T) {
	_, err := Dialector(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, LogLevel("silent"))
	assert.Equal(t, logger.Error, LogLevel("ERROR"))
	assert.Equal(t, logger.Info, LogLevel("debug"))
	assert.Equal(t, logger.Warn, LogLevel(""))
}

func TestSeed_EmptyStore(t *testing.T) {
	db := openTestDB(t)

	seeded, err := Seed(db, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, seeded)

	var users []models.User
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 2)

	assert.Equal(t, "admin@test.com", users[0].Email)
	assert.Equal(t, "123", users[0].Password)
	require.NotNil(t, users[0].Phone)
	assert.Equal(t, "123", *users[0].Phone)

	assert.Equal(t, "user@test.com", users[1].Email)
	assert.Equal(t, "123", users[1].Password)
	require.NotNil(t, users[1].Phone)
	assert.Equal(t, "456", *users[1].Phone)
}

func TestSeed_Idempotent(t *testing.T) {
	db := openTestDB(t)

	_, err := Seed(db, zap.NewNop())
	require.NoError(t, err)

	seeded, err := Seed(db, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, seeded)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSeed_SkipsNonEmptyTable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.User{Email: "someone@test.com", Password: "pw"}).Error)

	seeded, err := Seed(db, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, seeded)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"users", "assignments", "messages", "assignment_assignees"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
