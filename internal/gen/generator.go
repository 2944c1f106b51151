// Package gen turns analyzed struct models into Go source files containing
// one lens constructor per exported field.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"lens-generator/internal/analyze"
)

// lensImportPath is the import path of the core optics package the
// generated constructors are built on.
const lensImportPath = "lens-generator/lens"

// Config holds configuration for one generation target.
type Config struct {
	// PackageName is the package name of the generated files.
	PackageName string
	// SourcePkgPath is the import path of the package the structs live in.
	SourcePkgPath string
	// SamePackage is true when the generated files live in the structs'
	// own package, so source types need no package qualifier or import.
	SamePackage bool
	// GenerateComments enables doc comments on generated constructors.
	GenerateComments bool
}

// DefaultConfig returns the default generator configuration for a source
// package.
func DefaultConfig(pkgName, pkgPath string) Config {
	return Config{
		PackageName:      pkgName,
		SourcePkgPath:    pkgPath,
		SamePackage:      true,
		GenerateComments: true,
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "person_lenses.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator generates lens constructor files for analyzed structs.
type Generator struct {
	config Config
	names  *nameAllocator
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config: config,
		names:  newNameAllocator(),
	}
}

// Generate emits one file per struct, each containing a lens constructor
// for every exported field that is not opted out and whose type can be
// written as a Go type expression.
func (g *Generator) Generate(structs []*analyze.TypeInfo) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, st := range structs {
		file, err := g.generateStruct(st)
		if err != nil {
			return nil, fmt.Errorf("generating lenses for %s: %w", st.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateStruct builds and formats the lens file for a single struct.
func (g *Generator) generateStruct(st *analyze.TypeInfo) (*GeneratedFile, error) {
	imports := newImportSet()
	imports.add(lensImportPath)

	sourceType, err := g.typeString(st, imports)
	if err != nil {
		return nil, err
	}

	data := &templateData{
		PackageName:      g.config.PackageName,
		GenerateComments: g.config.GenerateComments,
	}

	for i := range st.Fields {
		field := &st.Fields[i]

		if field.Skip() {
			data.Skipped = append(data.Skipped, field.Name+" (lens:\"-\")")
			continue
		}

		focusType, err := g.typeString(field.Type, imports)
		if err != nil {
			data.Skipped = append(data.Skipped, fmt.Sprintf("%s (%v)", field.Name, err))
			continue
		}

		data.Lenses = append(data.Lenses, lensData{
			FuncName:   g.names.claim(st.ID.Name + field.LensName()),
			FieldName:  field.Name,
			FieldIndex: field.Index,
			SourceType: sourceType,
			FocusType:  focusType,
			TypeID:     st.ID.String(),
		})
	}

	data.Imports = imports.sorted()

	var buf bytes.Buffer
	if err := lensFileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := g.filename(st)

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Hand back the raw output so the caller can inspect what broke.
		return &GeneratedFile{Filename: filename, Content: buf.Bytes()},
			fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// filename returns the deterministic file name for a struct's lens file.
func (g *Generator) filename(st *analyze.TypeInfo) string {
	return camelToSnake(st.ID.Name) + "_lenses.go"
}

// camelToSnake converts "PacketHeader" to "packet_header".
func camelToSnake(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r - 'A' + 'a')
		} else {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// templateData holds all data needed for the lens file template.
type templateData struct {
	PackageName      string
	Imports          []importSpec
	Lenses           []lensData
	Skipped          []string
	GenerateComments bool
}

// lensData represents one generated lens constructor.
type lensData struct {
	FuncName   string
	FieldName  string
	FieldIndex int
	SourceType string
	FocusType  string
	TypeID     string
}

// importSpec is a single import line in a generated file.
type importSpec struct {
	Path      string
	Qualifier string
	Aliased   bool // true when Qualifier differs from the path base
}

var lensFileTemplate = template.Must(template.New("lenses").Parse(`// Code generated by lens-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}import (
{{range .Imports}}	{{if .Aliased}}{{.Qualifier}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{- if .Skipped}}
// Fields without lenses:
{{range .Skipped}}//   - {{.}}
{{end}}
{{- end}}
{{range .Lenses}}
{{if $.GenerateComments}}// {{.FuncName}} focuses the {{.FieldName}} field of {{.TypeID}}.
{{end}}func {{.FuncName}}() lens.Lens[{{.SourceType}}, {{.FocusType}}] {
	return lens.Field({{.FieldIndex}}, func(s *{{.SourceType}}) *{{.FocusType}} { return &s.{{.FieldName}} })
}
{{end}}`))

// sorted returns the import specs ordered by path, the lens package first
// since generated files always need it.
func (s *importSet) sorted() []importSpec {
	specs := make([]importSpec, 0, len(s.byPath))
	for path, qualifier := range s.byPath {
		specs = append(specs, importSpec{
			Path:      path,
			Qualifier: qualifier,
			Aliased:   qualifier != pathBase(path),
		})
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}
