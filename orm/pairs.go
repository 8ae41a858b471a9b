package orm

// ColumnValueFunc extracts column names and their values from a *T.
// When includesPK is false the primary key column is excluded (for INSERT
// with auto-increment). entitymap generates one per entity; Reflect builds
// one at run time.
type ColumnValueFunc[T any] func(t *T, includesPK bool) (columns []string, values []any)

// Reflect returns a reflection-backed ColumnValueFunc for entity type T.
// Metadata errors are reported once, up front.
func Reflect[T any]() (ColumnValueFunc[T], error) {
	if _, err := ColumnsOf[T](); err != nil {
		return nil, err
	}
	return func(t *T, includesPK bool) ([]string, []any) {
		cs, err := ColumnsWithValue(t)
		if err != nil {
			// T was validated above; t must be non-nil.
			panic(err)
		}
		return cs.Pairs(includesPK)
	}, nil
}
