package migrate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/angelmondragon/invitation-backend/pkg/migrate"
)

func TestMigrationsApplyAndSeedCatalog(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file:migrate_up?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrate.Run(context.Background(), sqlDB, "sqlite3", "migrations", "up"))

	var signature, standard, gallery int64
	require.NoError(t, conn.Table("designs").Where("collection = ?", "signature").Count(&signature).Error)
	require.NoError(t, conn.Table("designs").Where("collection = ?", "standard").Count(&standard).Error)
	require.NoError(t, conn.Table("gallery_items").Count(&gallery).Error)
	assert.Equal(t, int64(8), signature)
	assert.Equal(t, int64(6), standard)
	assert.Equal(t, int64(6), gallery)

	var name string
	require.NoError(t, conn.Table("designs").Select("name").Where("id = ?", "s01").Scan(&name).Error)
	assert.Equal(t, "화이트 린넨", name)

	require.NoError(t, migrate.Run(context.Background(), sqlDB, "sqlite3", "migrations", "down-to", "0"))
	assert.False(t, conn.Migrator().HasTable("designs"))
}

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	require.NoError(t, migrate.ValidateDir("migrations"))
}

func TestValidateDirRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, migrate.ValidateDir(dir), "empty dir")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "create_things.sql"), []byte("-- +goose Up\n-- +goose Down\n"), 0o644))
	assert.Error(t, migrate.ValidateDir(dir), "missing version prefix")

	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20260101000000_only_up.sql"), []byte("-- +goose Up\n"), 0o644))
	assert.Error(t, migrate.ValidateDir(dir), "missing down section")
}

func TestCreateSQLMigrationWritesTemplate(t *testing.T) {
	dir := t.TempDir()
	path, err := migrate.CreateSQLMigration(dir, "Add Inquiry Index!")
	require.NoError(t, err)
	assert.Regexp(t, `\d{14}_add_inquiry_index\.sql$`, path)

	require.NoError(t, migrate.ValidateDir(dir))

	_, err = migrate.CreateSQLMigration(dir, "!!!")
	assert.Error(t, err)
}
