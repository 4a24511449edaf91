package match

import (
	"k8s.io/klog/v2"
)

// Matches reports whether actual structurally matches expected.
//
// Ignored paths always match. Sequences and mappings also report a match:
// instead of comparing them here, every child of the expected container is
// asserted separately through Assert, so each nested mismatch is reported to
// the host on its own. Scalars, patterns and type classes never match here;
// they are compared by Assert.
func Matches(actual, expected any, p Params) bool {
	return matches(actual, ShapeOf(expected), p)
}

func matches(actual any, shape Shape, p Params) bool {
	if p.Ignored() {
		klog.V(6).InfoS("Deep match path ignored", "path", p.Path().String())
		return true
	}

	switch s := shape.(type) {
	case Sequence:
		sequenceMatches(actual, s, p)
		return true
	case Mapping:
		mappingMatches(actual, s, p)
		return true
	case Pattern, TypeClass, Scalar:
		return false
	}

	return false
}

// Expected elements beyond the actual sequence are compared against nil.
// Actual elements beyond the expected sequence are never inspected.
func sequenceMatches(actual any, expected Sequence, p Params) {
	p, ok := enter(expected, p)
	if !ok {
		return
	}

	for i := 0; i < expected.Len(); i += 1 {
		childLevelAssert(lookupIndex(actual, i), expected.Elem(i), p.WithExtendedPath(Index(i)))
	}
}

// Keys missing from actual are compared against nil. Keys present only in
// actual are never inspected.
func mappingMatches(actual any, expected Mapping, p Params) {
	p, ok := enter(expected, p)
	if !ok {
		return
	}

	for _, e := range expected.entries {
		childLevelAssert(lookupKey(actual, e.key, e.name), e.value, p.WithExtendedPath(Key(e.name)))
	}
}

func childLevelAssert(actual, expected any, p Params) {
	klog.V(6).InfoS("Deep match descend", "path", p.Path().String())
	Assert(actual, expected, p)
}

type container interface {
	identity() (identity, bool)
}

// enter guards the descent into an expected container against cycles and
// runaway depth. Refusals are reported to the host as a failure.
func enter(c container, p Params) (Params, bool) {
	if len(p.Path()) >= p.maxDepth {
		p.host.Fail(guardErrorf(p.Path(), "maximum depth %d exceeded", p.maxDepth))
		return p, false
	}

	id, ok := c.identity()
	if !ok {
		return p, true
	}

	if p.ancestors.contains(id) {
		p.host.Fail(guardErrorf(p.Path(), "%s refers to one of its parents", id.typ))
		return p, false
	}

	return p.withAncestor(id), true
}
