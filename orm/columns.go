package orm

import (
	"fmt"
	"reflect"
)

// Columns is the ordered column set of an entity type. Columns follow field
// declaration order; transient (`db:"-"`), unexported and embedded fields
// are left out. A Columns value is immutable.
type Columns struct {
	table string
	cols  []Column
	pk    int
}

// ColumnsOf extracts column metadata for entity type T.
func ColumnsOf[T any]() (*Columns, error) {
	return NewColumns(reflect.TypeFor[T]())
}

// NewColumns extracts column metadata for t, which must be a struct type
// (or pointer to one) embedding Entity with exactly one primaryKey field.
func NewColumns(t reflect.Type) (*Columns, error) {
	st, err := structType(t)
	if err != nil {
		return nil, err
	}
	if _, ok := markerField(st); !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntityMarkerMissing, st)
	}

	cs := &Columns{table: resolveTableName(st), pk: -1}
	for i := range st.NumField() {
		f := st.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		tag, err := ParseTag(f.Name, f.Tag)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st, err)
		}
		if tag.Skip {
			continue
		}
		if tag.PrimaryKey {
			if cs.pk >= 0 {
				return nil, fmt.Errorf("%w: %s: %s and %s",
					ErrMultiplePrimaryKeys, st, cs.cols[cs.pk].field, f.Name)
			}
			cs.pk = len(cs.cols)
		}
		cs.cols = append(cs.cols, Column{
			name:          tag.Column,
			field:         f.Name,
			index:         i,
			typ:           f.Type,
			primaryKey:    tag.PrimaryKey,
			autoIncrement: tag.AutoIncrement,
		})
	}
	if cs.pk < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPrimaryKeyMissing, st)
	}
	return cs, nil
}

// ColumnsWithValue extracts column metadata for the type of entity and
// binds every column to the corresponding field value of entity.
// entity may be a struct or a non-nil pointer to one.
func ColumnsWithValue(entity any) (*Columns, error) {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: nil %s", ErrNotStruct, v.Type())
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: nil", ErrNotStruct)
	}

	cs, err := NewColumns(v.Type())
	if err != nil {
		return nil, err
	}
	for i := range cs.cols {
		cs.cols[i] = cs.cols[i].bind(v)
	}
	return cs, nil
}

// Table returns the resolved table name.
func (cs *Columns) Table() string { return cs.table }

// Len returns the number of columns including the primary key.
func (cs *Columns) Len() int { return len(cs.cols) }

// All returns every column, primary key included, in declaration order.
func (cs *Columns) All() []Column {
	return append([]Column(nil), cs.cols...)
}

// Names returns the non-key column names in declaration order.
func (cs *Columns) Names() []string {
	names, _ := cs.Pairs(false)
	return names
}

// Values returns the bound non-key values in declaration order.
// Values of an unbound Columns are all nil.
func (cs *Columns) Values() []any {
	_, values := cs.Pairs(false)
	return values
}

// ValuesMap returns the bound non-key values keyed by column name.
func (cs *Columns) ValuesMap() map[string]any {
	m := make(map[string]any, len(cs.cols))
	for _, c := range cs.cols {
		if !c.primaryKey {
			m[c.name] = c.value
		}
	}
	return m
}

// Pairs returns column names and their values. When includesPK is false
// the primary key column is excluded (for INSERT with auto-increment).
func (cs *Columns) Pairs(includesPK bool) (columns []string, values []any) {
	columns = make([]string, 0, len(cs.cols))
	values = make([]any, 0, len(cs.cols))
	for _, c := range cs.cols {
		if c.primaryKey && !includesPK {
			continue
		}
		columns = append(columns, c.name)
		values = append(values, c.value)
	}
	return columns, values
}

// PKColumn returns the primary key column.
func (cs *Columns) PKColumn() Column { return cs.cols[cs.pk] }

// PKColumnName returns the table-qualified primary key column, e.g. "users.id".
func (cs *Columns) PKColumnName() string {
	return cs.PKColumn().QualifiedName(cs.table)
}

// QuotedPKColumnName returns the table-qualified primary key column quoted
// for d, e.g. `"users"."id"` for PostgreSQL.
func (cs *Columns) QuotedPKColumnName(d Dialect) string {
	return d.QuoteIdent(cs.table) + "." + d.QuoteIdent(cs.PKColumn().name)
}
