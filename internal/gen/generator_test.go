package gen

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens-generator/internal/analyze"
)

func basicType(name string) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		ID:   analyze.TypeID{Name: name},
		Kind: analyze.TypeKindBasic,
	}
}

func namedStruct(pkgPath, name string, fields ...analyze.FieldInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		ID:     analyze.TypeID{PkgPath: pkgPath, Name: name},
		Kind:   analyze.TypeKindStruct,
		Fields: fields,
	}
}

func personType() *analyze.TypeInfo {
	return namedStruct("lens-generator/examples/contact", "Person",
		analyze.FieldInfo{Name: "Name", Exported: true, Index: 0, Type: basicType("string")},
		analyze.FieldInfo{Name: "Age", Exported: true, Index: 1, Type: basicType("int")},
		analyze.FieldInfo{Name: "Address", Exported: true, Index: 2, Type: namedStruct("lens-generator/examples/contact", "Address")},
	)
}

func TestGenerate_SamePackage(t *testing.T) {
	g := NewGenerator(DefaultConfig("contact", "lens-generator/examples/contact"))

	files, err := g.Generate([]*analyze.TypeInfo{personType()})
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "person_lenses.go", files[0].Filename)

	content := string(files[0].Content)
	assert.Contains(t, content, "// Code generated by lens-generator. DO NOT EDIT.")
	assert.Contains(t, content, "package contact")
	assert.Contains(t, content, `"lens-generator/lens"`)
	assert.Contains(t, content, "func PersonName() lens.Lens[Person, string] {")
	assert.Contains(t, content, `lens.Field(0, func(s *Person) *string { return &s.Name })`)
	assert.Contains(t, content, "func PersonAge() lens.Lens[Person, int] {")
	assert.Contains(t, content, "func PersonAddress() lens.Lens[Person, Address] {")
	assert.Contains(t, content, `lens.Field(2, func(s *Person) *Address { return &s.Address })`)

	// Same-package generation must not import the source package.
	assert.NotContains(t, content, `"lens-generator/examples/contact"`)
}

func TestGenerate_CrossPackage(t *testing.T) {
	g := NewGenerator(Config{
		PackageName:      "contactlens",
		SourcePkgPath:    "lens-generator/examples/contact",
		SamePackage:      false,
		GenerateComments: true,
	})

	files, err := g.Generate([]*analyze.TypeInfo{personType()})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)
	assert.Contains(t, content, "package contactlens")
	assert.Contains(t, content, `"lens-generator/examples/contact"`)
	assert.Contains(t, content, "func PersonName() lens.Lens[contact.Person, string] {")
	assert.Contains(t, content, `func(s *contact.Person) *contact.Address { return &s.Address }`)
}

func TestGenerate_SkipsTaggedAndUnsupportedFields(t *testing.T) {
	st := namedStruct("example/app", "Handler",
		analyze.FieldInfo{Name: "Name", Exported: true, Index: 0, Type: basicType("string")},
		analyze.FieldInfo{
			Name: "Secret", Exported: true, Index: 1, Type: basicType("string"),
			Tag: reflect.StructTag(`lens:"-"`),
		},
		analyze.FieldInfo{
			Name: "Callback", Exported: true, Index: 2,
			Type: &analyze.TypeInfo{Kind: analyze.TypeKindUnknown},
		},
	)

	g := NewGenerator(DefaultConfig("app", "example/app"))

	files, err := g.Generate([]*analyze.TypeInfo{st})
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, "func HandlerName()")
	assert.NotContains(t, content, "HandlerSecret")
	assert.NotContains(t, content, "HandlerCallback")
	assert.Contains(t, content, "// Fields without lenses:")
	assert.Contains(t, content, `Secret (lens:"-")`)
	assert.Contains(t, content, "Callback (unsupported field type)")
}

func TestGenerate_LensNameTag(t *testing.T) {
	st := namedStruct("example/app", "Account",
		analyze.FieldInfo{
			Name: "ID", Exported: true, Index: 0, Type: basicType("int64"),
			Tag: reflect.StructTag(`lens:"Identifier"`),
		},
	)

	g := NewGenerator(DefaultConfig("app", "example/app"))

	files, err := g.Generate([]*analyze.TypeInfo{st})
	require.NoError(t, err)
	assert.Contains(t, string(files[0].Content), "func AccountIdentifier()")
}

func TestGenerate_ConstructorNameCollision(t *testing.T) {
	outer := namedStruct("example/app", "Person",
		analyze.FieldInfo{Name: "AddressCity", Exported: true, Index: 0, Type: basicType("string")},
	)
	nested := namedStruct("example/app", "PersonAddress",
		analyze.FieldInfo{Name: "City", Exported: true, Index: 0, Type: basicType("string")},
	)

	g := NewGenerator(DefaultConfig("app", "example/app"))

	files, err := g.Generate([]*analyze.TypeInfo{outer, nested})
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Contains(t, string(files[0].Content), "func PersonAddressCity()")
	assert.Contains(t, string(files[1].Content), "func PersonAddressCity2()")
}

func TestGenerate_CompoundFocusTypes(t *testing.T) {
	st := namedStruct("example/app", "Packet",
		analyze.FieldInfo{Name: "Data", Exported: true, Index: 0, Type: &analyze.TypeInfo{
			Kind:     analyze.TypeKindSlice,
			ElemType: basicType("byte"),
		}},
		analyze.FieldInfo{Name: "Labels", Exported: true, Index: 1, Type: &analyze.TypeInfo{
			Kind:     analyze.TypeKindMap,
			KeyType:  basicType("string"),
			ElemType: basicType("string"),
		}},
		analyze.FieldInfo{Name: "Next", Exported: true, Index: 2, Type: &analyze.TypeInfo{
			Kind:     analyze.TypeKindPointer,
			ElemType: namedStruct("example/app", "Packet"),
		}},
		analyze.FieldInfo{Name: "Window", Exported: true, Index: 3, Type: &analyze.TypeInfo{
			Kind:     analyze.TypeKindArray,
			ArrayLen: 4,
			ElemType: basicType("uint16"),
		}},
	)

	g := NewGenerator(DefaultConfig("app", "example/app"))

	files, err := g.Generate([]*analyze.TypeInfo{st})
	require.NoError(t, err)

	content := string(files[0].Content)
	assert.Contains(t, content, "lens.Lens[Packet, []byte]")
	assert.Contains(t, content, "lens.Lens[Packet, map[string]string]")
	assert.Contains(t, content, "lens.Lens[Packet, *Packet]")
	assert.Contains(t, content, "lens.Lens[Packet, [4]uint16]")
}

func TestFilename(t *testing.T) {
	g := NewGenerator(DefaultConfig("app", "example/app"))

	assert.Equal(t, "person_lenses.go", g.filename(namedStruct("example/app", "Person")))
	assert.Equal(t, "packet_header_lenses.go", g.filename(namedStruct("example/app", "PacketHeader")))
}

func TestImportQualifierCollision(t *testing.T) {
	imports := newImportSet()

	first := imports.add("example/store")
	second := imports.add("other/store")
	again := imports.add("example/store")

	assert.Equal(t, "store", first)
	assert.Equal(t, "store2", second)
	assert.Equal(t, first, again)

	specs := imports.sorted()
	require.Len(t, specs, 2)
	assert.False(t, specs[0].Aliased)
	assert.True(t, specs[1].Aliased)
	assert.Equal(t, "store2", specs[1].Qualifier)
}
