package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/mickamy/entitymap/orm"
)

const ormImport = "github.com/mickamy/entitymap/orm"

// FieldInfo holds parsed metadata for one struct field.
type FieldInfo struct {
	Name          string // Go field name, e.g. "ID"
	Column        string // DB column name, e.g. "nick_name"
	GoType        string // Go type as string, e.g. "int", "*time.Time"
	PrimaryKey    bool
	AutoIncrement bool
}

// StructInfo holds parsed metadata for one entity struct.
type StructInfo struct {
	Name    string      // Go struct name, e.g. "Person"
	Package string      // Package name, e.g. "model"
	Fields  []FieldInfo // columns in declaration order
}

// PrimaryKeyField returns the primary key field, or an error if none or
// multiple are defined.
func (s *StructInfo) PrimaryKeyField() (*FieldInfo, error) {
	var pk *FieldInfo
	for i := range s.Fields {
		if s.Fields[i].PrimaryKey {
			if pk != nil {
				return nil, fmt.Errorf("%w: %s: %s and %s", orm.ErrMultiplePrimaryKeys, s.Name, pk.Name, s.Fields[i].Name)
			}
			pk = &s.Fields[i]
		}
	}
	if pk == nil {
		return nil, fmt.Errorf("%w: %s", orm.ErrPrimaryKeyMissing, s.Name)
	}
	return pk, nil
}

// Parse reads the Go file at path and returns StructInfo for every struct
// that embeds orm.Entity, in source order.
func Parse(filePath string) ([]*StructInfo, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	ormName, ok := importName(file, ormImport)
	if !ok {
		return nil, nil
	}

	pkg := file.Name.Name
	var infos []*StructInfo
	var parseErr error

	ast.Inspect(file, func(n ast.Node) bool {
		if parseErr != nil {
			return false
		}
		ts, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		st, ok := ts.Type.(*ast.StructType)
		if !ok || !embedsEntity(st, ormName) {
			return true
		}

		fields, err := parseStructFields(st)
		if err != nil {
			parseErr = fmt.Errorf("%s: %w", ts.Name.Name, err)
			return false
		}
		infos = append(infos, &StructInfo{
			Name:    ts.Name.Name,
			Package: pkg,
			Fields:  fields,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return infos, nil
}

// importName returns the local name under which path is imported.
func importName(file *ast.File, path string) (string, bool) {
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil || p != path {
			continue
		}
		if imp.Name != nil {
			return imp.Name.Name, true
		}
		return path[strings.LastIndex(path, "/")+1:], true
	}
	return "", false
}

func embedsEntity(st *ast.StructType, ormName string) bool {
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		sel, ok := field.Type.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Entity" {
			continue
		}
		if x, ok := sel.X.(*ast.Ident); ok && x.Name == ormName {
			return true
		}
	}
	return false
}

// parseStructFields extracts column fields from an AST struct type.
func parseStructFields(st *ast.StructType) ([]FieldInfo, error) {
	fields := make([]FieldInfo, 0, len(st.Fields.List))
	for _, field := range st.Fields.List {
		fis, err := parseField(field)
		if err != nil {
			return nil, err
		}
		fields = append(fields, fis...)
	}
	return fields, nil
}

// parseField returns one FieldInfo per name declared by field, so that
// "First, Last string" yields two columns. Embedded, unexported and
// transient fields yield none.
func parseField(field *ast.Field) ([]FieldInfo, error) {
	if len(field.Names) == 0 {
		return nil, nil // embedded field, skip
	}

	var tag reflect.StructTag
	if field.Tag != nil {
		tag = reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
	}
	goType := typeToString(field.Type)

	var fields []FieldInfo
	for _, ident := range field.Names {
		if !ident.IsExported() {
			continue
		}
		t, err := orm.ParseTag(ident.Name, tag)
		if err != nil {
			return nil, err //nolint:wrapcheck // pass through
		}
		if t.Skip {
			continue
		}
		fields = append(fields, FieldInfo{
			Name:          ident.Name,
			Column:        t.Column,
			GoType:        goType,
			PrimaryKey:    t.PrimaryKey,
			AutoIncrement: t.AutoIncrement,
		})
	}
	return fields, nil
}

func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeToString(t.Elt)
		}
		return fmt.Sprintf("[%s]%s", typeToString(t.Len), typeToString(t.Elt))
	case *ast.BasicLit:
		return t.Value
	default:
		return fmt.Sprintf("%T", expr)
	}
}
