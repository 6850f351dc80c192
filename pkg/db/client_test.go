package db

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/angelmondragon/invitation-backend/pkg/config"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
)

type noteRow struct {
	ID    int
	Title string
}

func TestNewOpensSQLite(t *testing.T) {
	client, err := New(context.Background(), config.DBConfig{
		Driver:       config.DBDriverSQLite,
		DSN:          "file:dbclient?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(context.Background()))
	var one int
	require.NoError(t, client.DB().Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestNewRequiresDSN(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{}, nil)
	assert.Error(t, err)
}

func TestDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", Dialect(config.DBConfig{Driver: "SQLite"}))
	assert.Equal(t, "postgres", Dialect(config.DBConfig{Driver: "postgres"}))
}

func TestQueryLoggerReportsFailuresNotMisses(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Format: logger.FormatJSON, Output: buf})
	conn, err := gorm.Open(sqlite.Open("file:querylog?mode=memory&cache=shared"), &gorm.Config{
		Logger: newQueryLogger(logg, time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&noteRow{}))

	var row noteRow
	err = conn.First(&row, 42).Error
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NotContains(t, buf.String(), "db.query_failed")

	require.Error(t, conn.Exec("SELECT * FROM missing_table").Error)
	assert.Contains(t, buf.String(), "db.query_failed")
	assert.Contains(t, buf.String(), "missing_table")
}

func TestQueryLoggerFlagsSlowStatements(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Format: logger.FormatJSON, Output: buf})
	q := newQueryLogger(logg, time.Millisecond)

	q.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT * FROM designs", 12
	}, nil)
	out := buf.String()
	assert.Contains(t, out, "db.query_slow")
	assert.True(t, strings.Contains(out, `"rows":12`), out)
}

func TestSilentQueryLoggerWithoutLogger(t *testing.T) {
	q := newQueryLogger(nil, time.Millisecond)
	assert.NotPanics(t, func() {
		q.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	})
}
