package lens

// Lens focuses on a single value of type A nested inside a whole of type S.
// It is an immutable descriptor built from a get and a set function: Get
// reads the focus, Set returns a new whole with the focus replaced and
// every other field carried over from the input. A Lens holds no state
// about any particular S and may be reused freely.
type Lens[S, A any] struct {
	get  func(S) A
	set  func(S, A) S
	ref  func(*S) *A // set when built from a pointer accessor
	path Path
}

// New creates a lens from explicit get and set functions. The set function
// must replace only the focus and leave all sibling fields unchanged.
func New[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Field creates a lens over a struct field from a pointer accessor. The id
// is the field index within the struct and becomes the lens path. Set
// copies the whole and writes the new focus through the accessor, so
// siblings are preserved by the copy itself.
//
// Generated lens constructors use this form:
//
//	func PersonName() lens.Lens[Person, string] {
//		return lens.Field(0, func(p *Person) *string { return &p.Name })
//	}
func Field[S, A any](id uint64, ref func(*S) *A) Lens[S, A] {
	return Lens[S, A]{
		get: func(s S) A { return *ref(&s) },
		set: func(s S, a A) S {
			*ref(&s) = a
			return s
		},
		ref:  ref,
		path: NewPath(id),
	}
}

// Identity creates a lens whose focus is the whole itself. It is the
// neutral element of composition.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a new whole with the focused value replaced. The input is
// not modified.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify returns a new whole with the focus replaced by fn applied to its
// current value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// Path returns the element-id path this lens addresses. Lenses built with
// New or Identity carry an empty path.
func (l Lens[S, A]) Path() Path {
	return l.path
}

// Compose chains an outer Lens[S, A] with an inner Lens[A, B] into a
// Lens[S, B]. Reads delegate through outer then inner; writes read the
// current outer focus, apply the inner set, and write the result back
// through the outer set, rebuilding each ancestor along the way. Paths
// concatenate. Composition is associative.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	composed := Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
		path: Concat(outer.path, inner.path),
	}

	// When both operands are pointer-accessor lenses the composite can
	// write through a single copy of the whole instead of rebuilding each
	// level separately.
	if outer.ref != nil && inner.ref != nil {
		ref := func(s *S) *B { return inner.ref(outer.ref(s)) }
		composed.get = func(s S) B { return *ref(&s) }
		composed.set = func(s S, b B) S {
			*ref(&s) = b
			return s
		}
		composed.ref = ref
	}

	return composed
}

// Compose3 chains three lenses end to end.
func Compose3[S, A, B, C any](first Lens[S, A], second Lens[A, B], third Lens[B, C]) Lens[S, C] {
	return Compose(Compose(first, second), third)
}

// SliceIndex creates a lens over the element at the given index of a
// slice. Set copies the slice before replacing the element, so the input
// slice is never aliased. The index must be in range, as with plain
// indexing.
func SliceIndex[T any](index int) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T { return s[index] },
		set: func(s []T, v T) []T {
			result := make([]T, len(s))
			copy(result, s)
			result[index] = v
			return result
		},
		path: NewPath(uint64(index)),
	}
}

// MapKey creates a lens over the value stored under key. Get returns the
// zero value when the key is absent; Set copies the map before inserting,
// so the input map is never aliased. MapKey lenses carry an empty path.
func MapKey[K comparable, V any](key K) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		get: func(m map[K]V) V { return m[key] },
		set: func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m))
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	}
}
