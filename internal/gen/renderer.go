package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strconv"
	"text/template"
)

// Render generates the Go source code for a single StructInfo.
// The returned bytes are formatted by gofmt.
func Render(info *StructInfo) ([]byte, error) {
	return RenderFile([]*StructInfo{info})
}

// RenderFile generates a single Go source file for all given StructInfos,
// which must share a package. The returned bytes are formatted by gofmt.
func RenderFile(infos []*StructInfo) ([]byte, error) {
	if len(infos) == 0 {
		return nil, errors.New("no structs to render")
	}

	structs := make([]templateData, 0, len(infos))
	for _, info := range infos {
		if info.Package != infos[0].Package {
			return nil, fmt.Errorf("mixed packages: %s and %s", infos[0].Package, info.Package)
		}
		pk, err := info.PrimaryKeyField()
		if err != nil {
			return nil, err
		}
		structs = append(structs, templateData{
			TypeName: info.Name,
			PK:       pk,
			Fields:   info.Fields,
		})
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, fileTemplateData{Package: infos[0].Package, Structs: structs}); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return src, nil
}

type fileTemplateData struct {
	Package string
	Structs []templateData
}

type templateData struct {
	TypeName string
	PK       *FieldInfo
	Fields   []FieldInfo
}

func (d templateData) NonPKFields() []FieldInfo {
	var fields []FieldInfo
	for _, f := range d.Fields {
		if !f.PrimaryKey {
			fields = append(fields, f)
		}
	}
	return fields
}

var funcMap = template.FuncMap{
	"quote": strconv.Quote,
}

var fileTmpl = template.Must(template.New("gen").Funcs(funcMap).Parse(fileTemplate))

const fileTemplate = `// Code generated by entitymap; DO NOT EDIT.
package {{.Package}}

import "github.com/mickamy/entitymap/orm"
{{range .Structs}}
// {{.TypeName}}Table returns the table name of {{.TypeName}}.
func {{.TypeName}}Table() string {
	return orm.ResolveTableName[{{.TypeName}}]()
}

// {{.TypeName}}PK is the primary key column of {{.TypeName}}.
const {{.TypeName}}PK = {{quote .PK.Column}}

// {{.TypeName}}Columns lists the columns of {{.TypeName}} in declaration order.
var {{.TypeName}}Columns = []string{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{quote $f.Column}}{{end -}} }

// {{.TypeName}}ColumnValuePairs returns the column names and values of v.
// When includesPK is false the primary key column is excluded.
func {{.TypeName}}ColumnValuePairs(v *{{.TypeName}}, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{quote $f.Column}}{{end -}} },
			[]any{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}v.{{$f.Name}}{{end -}} }
	}
	return []string{ {{- range $i, $f := .NonPKFields}}{{if $i}}, {{end}}{{quote $f.Column}}{{end -}} },
		[]any{ {{- range $i, $f := .NonPKFields}}{{if $i}}, {{end}}v.{{$f.Name}}{{end -}} }
}

var _ orm.ColumnValueFunc[{{.TypeName}}] = {{.TypeName}}ColumnValuePairs
{{end}}`
