package orm

import (
	"reflect"
	"time"
)

// Dialect abstracts schema differences between database engines.
type Dialect interface {
	// Name identifies the dialect, e.g. "mysql".
	Name() string

	// QuoteIdent quotes an identifier (table name, column name) to safely
	// handle SQL reserved words. MySQL uses backticks; PostgreSQL and
	// SQLite use double quotes.
	QuoteIdent(name string) string

	// ColumnType returns the SQL type for a field of Go type t. Pointer
	// types map to the type of their element.
	ColumnType(t reflect.Type, autoIncrement bool) string

	// AutoIncrementClause is appended after PRIMARY KEY for auto-increment
	// keys. Empty for dialects that express it in the column type.
	AutoIncrementClause() string
}

// MySQL is the Dialect for MySQL / MariaDB.
var MySQL Dialect = mysqlDialect{}

// PostgreSQL is the Dialect for PostgreSQL.
var PostgreSQL Dialect = postgresDialect{}

// SQLite is the Dialect for SQLite.
var SQLite Dialect = sqliteDialect{}

var timeType = reflect.TypeOf(time.Time{})

type mysqlDialect struct{}

func (mysqlDialect) Name() string                  { return "mysql" }
func (mysqlDialect) QuoteIdent(name string) string { return "`" + name + "`" }
func (mysqlDialect) AutoIncrementClause() string   { return " AUTO_INCREMENT" }

func (mysqlDialect) ColumnType(t reflect.Type, _ bool) string {
	t = deref(t)
	if t == timeType {
		return "DATETIME(6)"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "BOOLEAN"
	case reflect.Int8, reflect.Uint8:
		return "TINYINT"
	case reflect.Int16, reflect.Uint16:
		return "SMALLINT"
	case reflect.Int32, reflect.Uint32:
		return "INT"
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return "BIGINT"
	case reflect.Float32:
		return "FLOAT"
	case reflect.Float64:
		return "DOUBLE"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return "BLOB"
		}
	}
	return "VARCHAR(255)"
}

type postgresDialect struct{}

func (postgresDialect) Name() string                  { return "postgres" }
func (postgresDialect) QuoteIdent(name string) string { return `"` + name + `"` }
func (postgresDialect) AutoIncrementClause() string   { return "" }

func (postgresDialect) ColumnType(t reflect.Type, autoIncrement bool) string {
	t = deref(t)
	if t == timeType {
		return "TIMESTAMPTZ"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "BOOLEAN"
	case reflect.Int8, reflect.Uint8, reflect.Int16, reflect.Uint16:
		return "SMALLINT"
	case reflect.Int32, reflect.Uint32:
		if autoIncrement {
			return "SERIAL"
		}
		return "INTEGER"
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		if autoIncrement {
			return "BIGSERIAL"
		}
		return "BIGINT"
	case reflect.Float32:
		return "REAL"
	case reflect.Float64:
		return "DOUBLE PRECISION"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return "BYTEA"
		}
	}
	return "VARCHAR(255)"
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string                  { return "sqlite" }
func (sqliteDialect) QuoteIdent(name string) string { return `"` + name + `"` }
func (sqliteDialect) AutoIncrementClause() string   { return " AUTOINCREMENT" }

// ColumnType returns SQLite type affinities. AUTOINCREMENT is only valid on
// an INTEGER PRIMARY KEY, which every integer kind maps to.
func (sqliteDialect) ColumnType(t reflect.Type, _ bool) string {
	t = deref(t)
	if t == timeType {
		return "DATETIME"
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "INTEGER"
	case reflect.Float32, reflect.Float64:
		return "REAL"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return "BLOB"
		}
	}
	return "TEXT"
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
