package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/domain"
)

// The same model set has to migrate on sqlite, which the tests run
// against; postgres-only column defaults in the gorm tags would break
// that.
func TestAutoMigrateOnSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{
		"users",
		"customers",
		"sales_persons",
		"tailors",
		"configurations",
		"projects",
		"rooms",
		"windows",
		"quotation_sequences",
	} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

// The SQL migrations create sales_persons and quotation_sequences, so the
// parsed model names have to match them rather than gorm's pluralization.
func TestModelTableNamesMatchMigrations(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	for model, want := range map[interface{ TableName() string }]string{
		domain.SalesPerson{}:       "sales_persons",
		domain.QuotationSequence{}: "quotation_sequences",
	} {
		stmt := &gorm.Statement{DB: db}
		require.NoError(t, stmt.Parse(model))
		assert.Equal(t, want, stmt.Schema.Table)
	}
}
