package match

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a map key / struct field name or a
// sequence index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

func Key(key string) Segment {
	return Segment{key: key}
}

func Index(index int) Segment {
	return Segment{index: index, isIndex: true}
}

// SegmentOf converts a loosely typed path element into a Segment. Integers
// become indices, everything else a key.
func SegmentOf(v any) Segment {
	switch s := v.(type) {
	case Segment:
		return s
	case int:
		return Index(s)
	case int8:
		return Index(int(s))
	case int16:
		return Index(int(s))
	case int32:
		return Index(int(s))
	case int64:
		return Index(int(s))
	case uint:
		return Index(int(s))
	case uint8:
		return Index(int(s))
	case uint16:
		return Index(int(s))
	case uint32:
		return Index(int(s))
	case uint64:
		return Index(int(s))
	case string:
		return Key(s)
	}

	return Key(fmt.Sprint(v))
}

func (s Segment) IsIndex() bool {
	return s.isIndex
}

func (s Segment) Index() int {
	return s.index
}

func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}

	return s.key
}

// Path locates a node inside the expected structure relative to the root of
// the top-level call.
type Path []Segment

// NewPath builds a path from string and integer elements.
func NewPath(elems ...any) Path {
	p := make(Path, len(elems))

	for i, e := range elems {
		p[i] = SegmentOf(e)
	}

	return p
}

// Append returns a new path. The receiver's backing array is never shared
// with the result.
func (p Path) Append(s Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, s)
}

// Equal compares segments by their string form so that Index(2) and Key("2")
// are the same step.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i].String() != other[i].String() {
			return false
		}
	}

	return true
}

func (p Path) String() string {
	parts := make([]string, len(p))

	for i := range p {
		parts[i] = p[i].String()
	}

	return strings.Join(parts, ".")
}

func containsPath(paths []Path, p Path) bool {
	for _, candidate := range paths {
		if candidate.Equal(p) {
			return true
		}
	}

	return false
}
