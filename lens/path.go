package lens

import (
	"strconv"
	"strings"
)

// PathElement is a single step in a Path, identified by a numeric id.
// For lenses over struct fields the id is the field index; for slice
// element lenses it is the element index.
type PathElement struct {
	ID uint64
}

// Path describes the location of a lens focus relative to its whole, as a
// sequence of element ids. It is purely descriptive: no lens operation
// dispatches through it.
type Path struct {
	Elements []PathElement
}

// NewPath returns a Path with a single element.
func NewPath(id uint64) Path {
	return Path{Elements: []PathElement{{ID: id}}}
}

// PathOf returns a Path built from the given element ids in order.
func PathOf(ids ...uint64) Path {
	elements := make([]PathElement, len(ids))
	for i, id := range ids {
		elements[i] = PathElement{ID: id}
	}

	return Path{Elements: elements}
}

// Concat returns the concatenation of two paths.
func Concat(lhs, rhs Path) Path {
	elements := make([]PathElement, 0, len(lhs.Elements)+len(rhs.Elements))
	elements = append(elements, lhs.Elements...)
	elements = append(elements, rhs.Elements...)

	return Path{Elements: elements}
}

// Equal reports whether two paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p.Elements) != len(other.Elements) {
		return false
	}

	for i, elem := range p.Elements {
		if elem != other.Elements[i] {
			return false
		}
	}

	return true
}

// String renders the path as "[1, 2, 3]".
func (p Path) String() string {
	parts := make([]string, len(p.Elements))
	for i, elem := range p.Elements {
		parts[i] = strconv.FormatUint(elem.ID, 10)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
