package gen

import (
	"errors"
	"strconv"

	"lens-generator/internal/analyze"
	"lens-generator/internal/common"
)

// errUnsupportedType marks field types that cannot be written as a Go type
// expression in a generated file (funcs, channels, anonymous structs).
var errUnsupportedType = errors.New("unsupported field type")

// typeString renders a TypeInfo as a Go type expression valid inside the
// generated package, registering any package imports it needs.
func (g *Generator) typeString(info *analyze.TypeInfo, imports *importSet) (string, error) {
	if info.IsNamed() {
		// Universe types (error) and basic types have no package path.
		if info.ID.PkgPath == "" {
			return info.ID.Name, nil
		}

		// Types from the generated package itself need no qualifier.
		if g.config.SamePackage && info.ID.PkgPath == g.config.SourcePkgPath {
			return info.ID.Name, nil
		}

		return imports.add(info.ID.PkgPath) + "." + info.ID.Name, nil
	}

	switch info.Kind {
	case analyze.TypeKindPointer:
		elem, err := g.typeString(info.ElemType, imports)
		if err != nil {
			return "", err
		}
		return "*" + elem, nil

	case analyze.TypeKindSlice:
		elem, err := g.typeString(info.ElemType, imports)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil

	case analyze.TypeKindArray:
		elem, err := g.typeString(info.ElemType, imports)
		if err != nil {
			return "", err
		}
		return "[" + strconv.FormatInt(info.ArrayLen, 10) + "]" + elem, nil

	case analyze.TypeKindMap:
		key, err := g.typeString(info.KeyType, imports)
		if err != nil {
			return "", err
		}
		elem, err := g.typeString(info.ElemType, imports)
		if err != nil {
			return "", err
		}
		return "map[" + key + "]" + elem, nil

	default:
		return "", errUnsupportedType
	}
}

// importSet tracks the imports a generated file needs and assigns each
// package path a unique qualifier.
type importSet struct {
	byPath      map[string]string   // path -> qualifier
	byQualifier map[string]struct{} // taken qualifiers
}

func newImportSet() *importSet {
	return &importSet{
		byPath:      make(map[string]string),
		byQualifier: make(map[string]struct{}),
	}
}

// add registers a package path and returns its qualifier. Qualifier
// collisions between distinct paths get a numeric suffix.
func (s *importSet) add(path string) string {
	if qualifier, ok := s.byPath[path]; ok {
		return qualifier
	}

	qualifier := pathBase(path)
	if _, taken := s.byQualifier[qualifier]; taken {
		qualifier = nextFree(qualifier, s.byQualifier)
	}

	s.byPath[path] = qualifier
	s.byQualifier[qualifier] = struct{}{}

	return qualifier
}

func pathBase(path string) string {
	return common.PkgAlias(path)
}
