package orm

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mickamy/entitymap/internal/naming"
)

// Entity marks a struct as persistable. Embed it anonymously; the db tag
// on the embedded field optionally names the table:
//
//	type Person struct {
//		orm.Entity `db:"users"`
//		ID   int64  `db:"id,primaryKey,autoIncrement"`
//		Name string `db:"nick_name"`
//	}
type Entity struct{}

var entityType = reflect.TypeOf(Entity{})

const (
	tagKey = "db"

	optPrimaryKey    = "primaryKey"
	optAutoIncrement = "autoIncrement"
)

// Tag is the parsed form of a `db:"column,option,..."` struct tag.
type Tag struct {
	Column        string
	Skip          bool
	PrimaryKey    bool
	AutoIncrement bool
}

// ParseTag parses the db tag of the field named field. A missing tag or an
// empty column part yields the snake_case field name; "-" marks the field
// transient.
func ParseTag(field string, tag reflect.StructTag) (Tag, error) {
	var t Tag
	raw, ok := tag.Lookup(tagKey)
	if !ok {
		t.Column = naming.CamelToSnake(field)
		return t, nil
	}
	if raw == "-" {
		t.Skip = true
		return t, nil
	}

	parts := strings.Split(raw, ",")
	t.Column = strings.TrimSpace(parts[0])
	if t.Column == "" {
		t.Column = naming.CamelToSnake(field)
	}
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case optPrimaryKey:
			t.PrimaryKey = true
		case optAutoIncrement:
			t.AutoIncrement = true
		case "":
		default:
			return Tag{}, fmt.Errorf("%w: field %s: unknown option %q", ErrInvalidTag, field, opt)
		}
	}
	return t, nil
}

// markerField returns the embedded Entity field of t, if any.
func markerField(t reflect.Type) (reflect.StructField, bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Anonymous && f.Type == entityType {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// structType dereferences pointers and reports whether t names a struct.
func structType(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrNotStruct)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}
	return t, nil
}
