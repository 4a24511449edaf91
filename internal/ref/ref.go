package ref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/koskimas/deepmatch/internal/match"
)

// Parse parses a dotted path reference like `b.c.2.d` into a match.Path.
// Numeric segments become indices. A literal dot inside a key is written
// as `\.`. The empty reference is the root path.
func Parse(ref string) (match.Path, error) {
	path := make(match.Path, 0)

	if ref == "" {
		return path, nil
	}

	if err := parse(ref, &path); err != nil {
		return nil, fmt.Errorf(`failed to parse path reference "%s": %w`, ref, err)
	}

	return path, nil
}

// ParseAll parses every reference in `refs`.
func ParseAll(refs []string) ([]match.Path, error) {
	paths := make([]match.Path, 0, len(refs))

	for _, r := range refs {
		p, err := Parse(r)
		if err != nil {
			return nil, err
		}

		paths = append(paths, p)
	}

	return paths, nil
}

func parse(ref string, path *match.Path) error {
	dot := indexUnescapedDot(ref)

	var refPart string
	if dot != -1 {
		refPart = ref[0:dot]
	} else {
		refPart = ref
	}

	if refPart == "" {
		if len(*path) > 0 {
			return fmt.Errorf(`empty segment after "%s"`, (*path)[len(*path)-1])
		}

		return fmt.Errorf(`empty first segment`)
	}

	*path = append(*path, toSegment(strings.ReplaceAll(refPart, `\.`, ".")))

	if dot != -1 {
		return parse(ref[dot+1:], path)
	}

	return nil
}

// Format is the inverse of Parse.
func Format(path match.Path) string {
	parts := make([]string, len(path))

	for i := range path {
		parts[i] = strings.ReplaceAll(path[i].String(), ".", `\.`)
	}

	return strings.Join(parts, ".")
}

func toSegment(part string) match.Segment {
	if i, err := strconv.Atoi(part); err == nil && i >= 0 {
		return match.Index(i)
	}

	return match.Key(part)
}

func indexUnescapedDot(ref string) int {
	for i := 0; i < len(ref); i += 1 {
		switch ref[i] {
		case '\\':
			i += 1
		case '.':
			return i
		}
	}

	return -1
}
