package orm

import "reflect"

// Column describes one struct field mapped to a table column.
// A Column obtained from ColumnsWithValue also carries the field's value.
type Column struct {
	name          string
	field         string
	index         int
	typ           reflect.Type
	primaryKey    bool
	autoIncrement bool

	value any
	bound bool
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Field returns the Go struct field name.
func (c Column) Field() string { return c.field }

// Type returns the Go type of the field.
func (c Column) Type() reflect.Type { return c.typ }

func (c Column) IsPrimaryKey() bool    { return c.primaryKey }
func (c Column) IsAutoIncrement() bool { return c.autoIncrement }

// IsNullable reports whether the field can hold no value (pointer field).
func (c Column) IsNullable() bool { return c.typ.Kind() == reflect.Pointer }

// Value returns the bound field value, or nil for metadata-only columns.
func (c Column) Value() any { return c.value }

// HasValue reports whether the column was bound to an instance.
func (c Column) HasValue() bool { return c.bound }

// QualifiedName returns "<table>.<column>".
func (c Column) QualifiedName(table string) string {
	return table + "." + c.name
}

func (c Column) bind(v reflect.Value) Column {
	c.value = v.Field(c.index).Interface()
	c.bound = true
	return c
}
