package database

import (
	"testing"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "postgres from discrete fields",
			config: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432", User: "pizza",
				Password: "secret", Name: "orders", SSLMode: "disable",
			},
			expected: "host=db user=pizza password=secret dbname=orders port=5432 sslmode=disable",
		},
		{
			name:     "postgres URL wins over fields",
			config:   DatabaseConfig{Driver: "postgresql", URL: "postgres://u:p@db:5432/orders", Host: "ignored"},
			expected: "postgres://u:p@db:5432/orders",
		},
		{
			name:     "sqlite gets locking parameters",
			config:   DatabaseConfig{Driver: "sqlite", Path: "pizza.sqlite"},
			expected: "pizza.sqlite?_busy_timeout=5000&_txlock=immediate&_foreign_keys=on",
		},
		{
			name:     "sqlite keeps existing query",
			config:   DatabaseConfig{Driver: "sqlite", Path: "file:pizza.db?cache=shared"},
			expected: "file:pizza.db?cache=shared&_busy_timeout=5000&_txlock=immediate&_foreign_keys=on",
		},
		{
			name:     "in-memory sqlite untouched",
			config:   DatabaseConfig{Path: ":memory:"},
			expected: ":memory:",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestStringRedactsPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Seed(db, 20))
	require.NoError(t, Seed(db, 20))

	var pizzas, extras, ingredients int64
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.Extra{}).Count(&extras)
	db.Model(&models.Ingredient{}).Count(&ingredients)
	assert.Equal(t, int64(4), pizzas)
	assert.Equal(t, int64(10), extras)
	assert.Equal(t, int64(12), ingredients)

	var margherita models.Pizza
	require.NoError(t, db.Preload("Ingredients").Where("name = ?", "Margherita").First(&margherita).Error)
	assert.Len(t, margherita.Ingredients, 4)
	assert.Equal(t, 20, margherita.QuantityInStock)
	assert.True(t, margherita.IsAvailable)
	assert.Equal(t, "12.99", margherita.BasePrice.StringFixed(2))
}

func TestSeedWithoutStockLeavesItemsUnavailable(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Seed(db, 0))

	var available int64
	db.Model(&models.Extra{}).Where("is_available = ?", true).Count(&available)
	assert.Zero(t, available)
}
