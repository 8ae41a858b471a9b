// Package ddl renders and executes schema statements for entity structs
// from the column metadata extracted by package orm.
package ddl

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/mickamy/entitymap/orm"
)

// CreateTable returns a CREATE TABLE statement for cols. Columns appear in
// declaration order; non-pointer columns are NOT NULL.
func CreateTable(cols *orm.Columns, d orm.Dialect) string {
	all := cols.All()
	defs := make([]string, len(all))
	for i, c := range all {
		defs[i] = columnDef(c, d)
	}
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		d.QuoteIdent(cols.Table()),
		strings.Join(defs, ", "),
	)
}

// DropTable returns a DROP TABLE statement for cols.
func DropTable(cols *orm.Columns, d orm.Dialect) string {
	return "DROP TABLE IF EXISTS " + d.QuoteIdent(cols.Table())
}

func columnDef(c orm.Column, d orm.Dialect) string {
	var b strings.Builder
	b.WriteString(d.QuoteIdent(c.Name()))
	b.WriteByte(' ')
	b.WriteString(d.ColumnType(c.Type(), c.IsAutoIncrement()))

	switch {
	case c.IsPrimaryKey():
		b.WriteString(" PRIMARY KEY")
		if c.IsAutoIncrement() {
			b.WriteString(d.AutoIncrementClause())
		}
	case !c.IsNullable():
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

// Create executes CREATE TABLE for each entity. An entity is a struct
// value, a pointer to one, or a reflect.Type.
func Create(ctx context.Context, db orm.Execer, entities ...any) error {
	return execAll(ctx, db, CreateTable, entities)
}

// Drop executes DROP TABLE for each entity, in the given order.
func Drop(ctx context.Context, db orm.Execer, entities ...any) error {
	return execAll(ctx, db, DropTable, entities)
}

func execAll(
	ctx context.Context, db orm.Execer, render func(*orm.Columns, orm.Dialect) string, entities []any,
) error {
	for _, e := range entities {
		cols, err := columnsOf(e)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, render(cols, db.Dialect())); err != nil {
			return fmt.Errorf("ddl: table %s: %w", cols.Table(), err)
		}
	}
	return nil
}

func columnsOf(e any) (*orm.Columns, error) {
	if t, ok := e.(reflect.Type); ok {
		return orm.NewColumns(t) //nolint:wrapcheck // pass through
	}
	return orm.NewColumns(reflect.TypeOf(e)) //nolint:wrapcheck // pass through
}
