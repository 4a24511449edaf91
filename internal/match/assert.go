package match

// Assert is the entry point of every comparison, including each recursive
// step. If Matches fails, the comparison strategy is picked by the shape of
// expected and delegated to the host. Returns the host's verdict.
func Assert(actual, expected any, p Params) bool {
	actual = untypedNil(actual)
	expected = untypedNil(expected)
	shape := ShapeOf(expected)

	if matches(actual, shape, p) {
		return true
	}

	f := newFailure(p, leafActual(actual, shape))

	switch s := shape.(type) {
	case TypeClass:
		return p.host.BeA(f.mismatch(VerbBeA, s), s.Type)
	case Pattern:
		return p.host.Match(f.mismatch(VerbMatch, s.Regexp), s.Regexp)
	}

	return p.host.Equal(f.mismatch(VerbEq, expected))
}
