package lens

// Transform is a reusable whole-to-whole update over S. Like Lens it is a
// stateless descriptor: Apply is a pure function and the same transform
// may be applied to any number of independent values. The zero value is
// the identity transform.
type Transform[S any] struct {
	apply func(S) S
}

// Apply runs the transform and returns the updated whole.
func (t Transform[S]) Apply(source S) S {
	if t.apply == nil {
		return source
	}

	return t.apply(source)
}

// IdentityTx returns the transform that passes its input through
// unchanged. It is the neutral element of ComposeTx.
func IdentityTx[S any]() Transform[S] {
	return Transform[S]{}
}

// FnTx lifts a plain function into a Transform.
func FnTx[S any](fn func(S) S) Transform[S] {
	return Transform[S]{apply: fn}
}

// ComposeTx chains transforms into one, applied in argument order:
// ComposeTx(t1, t2, t3).Apply(s) == t3.Apply(t2.Apply(t1.Apply(s))).
// Composition is associative but not commutative.
func ComposeTx[S any](txs ...Transform[S]) Transform[S] {
	chain := make([]Transform[S], len(txs))
	copy(chain, txs)

	return Transform[S]{apply: func(s S) S {
		for _, tx := range chain {
			s = tx.Apply(s)
		}

		return s
	}}
}
