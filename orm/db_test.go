package orm_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	_ "modernc.org/sqlite"

	"github.com/mickamy/entitymap/orm"
)

func openSQLite(t *testing.T) *orm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return orm.New(sqlDB, orm.SQLite)
}

func TestDBExecContext(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)
	assert.Equal(t, orm.SQLite, db.Dialect())
	assert.NotNil(t, db.Raw())

	_, err := db.ExecContext(t.Context(), `CREATE TABLE "t" ("id" INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
}

func TestDBDebug(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	db := openSQLite(t)
	debug := db.Debug(orm.ZapLogger(zap.New(core)))

	query := `CREATE TABLE "t" ("id" INTEGER PRIMARY KEY)`
	_, err := debug.ExecContext(t.Context(), query)
	require.NoError(t, err)

	entries := logs.FilterMessage("exec").All()
	require.Len(t, entries, 1)
	assert.Equal(t, query, entries[0].ContextMap()["query"])

	// The original DB does not log.
	_, err = db.ExecContext(t.Context(), `DROP TABLE "t"`)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())
}
