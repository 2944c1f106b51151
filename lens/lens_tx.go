package lens

// Integer constrains lens foci that support increment and decrement.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bool constrains lens foci that support negation.
type Bool interface {
	~bool
}

// SetTx returns a transform that replaces the focus of l with a value
// computed from the whole.
func SetTx[S, A any](l Lens[S, A], fn func(S) A) Transform[S] {
	return Transform[S]{apply: func(s S) S {
		return l.set(s, fn(s))
	}}
}

// ModTx returns a transform that replaces the focus of l with fn applied
// to its current value.
func ModTx[S, A any](l Lens[S, A], fn func(A) A) Transform[S] {
	return Transform[S]{apply: func(s S) S {
		return l.set(s, fn(l.get(s)))
	}}
}

// IncrementTx returns a transform that adds one to the integer focus of l.
func IncrementTx[S any, A Integer](l Lens[S, A]) Transform[S] {
	return Transform[S]{apply: func(s S) S {
		return l.set(s, l.get(s)+1)
	}}
}

// DecrementTx returns a transform that subtracts one from the integer
// focus of l.
func DecrementTx[S any, A Integer](l Lens[S, A]) Transform[S] {
	return Transform[S]{apply: func(s S) S {
		return l.set(s, l.get(s)-1)
	}}
}

// NotTx returns a transform that negates the boolean focus of l.
func NotTx[S any, A Bool](l Lens[S, A]) Transform[S] {
	return Transform[S]{apply: func(s S) S {
		return l.set(s, !l.get(s))
	}}
}
