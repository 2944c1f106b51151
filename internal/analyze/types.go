package analyze

import (
	"reflect"
)

//go:generate go tool stringer -type=TypeKind -trimprefix=TypeKind

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "lens-generator/examples/contact"
	Name    string // e.g., "Person"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type as seen by the lens generator.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindArray             // array of another type
	TypeKindMap               // map from key type to element type
	TypeKindAlias             // named type wrapping a basic type
	TypeKindExternal          // named non-struct type (interfaces, time.Time, ...)
)

// TypeInfo describes a Go type reachable from an analyzed struct.
type TypeInfo struct {
	ID       TypeID      // Identifier (empty for unnamed types like *T or []T)
	Kind     TypeKind    // Kind of type
	ElemType *TypeInfo   // For pointers, slices, arrays, and maps, the element type
	KeyType  *TypeInfo   // For maps, the key type
	ArrayLen int64       // For arrays, the declared length
	Fields   []FieldInfo // For structs, the exported fields
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// FieldInfo describes a struct field eligible for lens generation.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Declaration index in the struct
}

// LensName returns the name the generated lens constructor should carry for
// this field: the `lens` tag value when present, otherwise the field name.
// A tag value of "-" requests no lens at all; callers check Skip first.
func (f *FieldInfo) LensName() string {
	if tag := f.Tag.Get("lens"); tag != "" && tag != "-" {
		return tag
	}

	return f.Name
}

// Skip returns true if the field opted out of lens generation via a
// `lens:"-"` tag.
func (f *FieldInfo) Skip() bool {
	return f.Tag.Get("lens") == "-"
}

// TypeGraph holds all analyzed types from the loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package, in scope order
}
