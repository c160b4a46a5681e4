package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/10igma/spacetrader-web/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory database that is closed with the test
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err, "open test database")
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
