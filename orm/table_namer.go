package orm

import (
	"reflect"
	"strings"

	"github.com/mickamy/entitymap/internal/naming"
)

// TableNamer can be implemented by entity structs to override the table
// name from the Entity tag or the one derived from the type name.
type TableNamer interface {
	TableName() string
}

// ResolveTableName returns the table name for type T. It does not require
// T to embed Entity.
func ResolveTableName[T any]() string {
	return resolveTableName(reflect.TypeFor[T]())
}

// resolveTableName picks, in order: TableNamer (value or pointer receiver),
// the name part of the db tag on the embedded Entity, then the pluralised snake_case type name.
func resolveTableName(t reflect.Type) string {
	if tn, ok := reflect.New(t).Interface().(TableNamer); ok {
		if name := tn.TableName(); name != "" {
			return name
		}
	}
	if t.Kind() == reflect.Struct {
		if f, ok := markerField(t); ok {
			name, _, _ := strings.Cut(f.Tag.Get(tagKey), ",")
			if name = strings.TrimSpace(name); name != "" && name != "-" {
				return name
			}
		}
	}
	return naming.TableName(t.Name())
}
