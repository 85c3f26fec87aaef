package db

import (
	"testing"

	"github.com/ilyamazurenko/Dance-partner-app/config"
	"github.com/ilyamazurenko/Dance-partner-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := New(&config.Config{
		App: config.AppConfig{LogLevel: "error"},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			DSN:    "file:" + t.Name() + "?mode=memory&cache=shared",
		},
	})
	require.NoError(t, err)

	return db
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "dance_app.db?_foreign_keys=on", SQLiteDSN("dance_app.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", SQLiteDSN("file:x?mode=memory"))
	assert.Equal(t, "x.db?_fk=1", SQLiteDSN("x.db?_fk=1"))
}

func TestSeedStylesRunsOnce(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedStyles(db))

	// Removing a seeded style must not bring it back on the next run
	require.NoError(t, db.Where("name = ?", "Waltz").Delete(&model.DanceStyle{}).Error)
	require.NoError(t, SeedStyles(db))

	var count int64
	db.Model(&model.DanceStyle{}).Count(&count)
	assert.Equal(t, int64(len(starterStyles)-1), count)

	var migrations int64
	db.Model(&model.Migration{}).Where("name = ?", seedStylesMigration).Count(&migrations)
	assert.Equal(t, int64(1), migrations)
}

func TestSeedStylesKeepsExistingStyles(t *testing.T) {
	db := newTestDB(t)

	custom := "our own salsa"
	require.NoError(t, db.Create(&model.DanceStyle{Name: "Salsa", Description: &custom}).Error)
	require.NoError(t, SeedStyles(db))

	var salsa model.DanceStyle
	require.NoError(t, db.Where("name = ?", "Salsa").First(&salsa).Error)
	require.NotNil(t, salsa.Description)
	assert.Equal(t, custom, *salsa.Description)
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := New(&config.Config{Database: config.DatabaseConfig{Driver: "mysql", DSN: "x"}})
	assert.Error(t, err)
}
