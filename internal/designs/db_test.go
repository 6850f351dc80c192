package designs

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/angelmondragon/invitation-backend/pkg/migrate"
)

// openTestDB returns a private in-memory catalog with the shipped seed applied.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:designs_%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	dir := filepath.Join("..", "..", "pkg", "migrate", "migrations")
	require.NoError(t, migrate.Run(context.Background(), sqlDB, "sqlite3", dir, "up"))
	return conn
}
