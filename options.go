package deepmatch

import (
	"github.com/koskimas/deepmatch/internal/match"
	"github.com/koskimas/deepmatch/internal/ref"
)

type Option func(o *options)

type options struct {
	ignore   []match.Path
	extra    string
	maxDepth int
}

// Ignore skips the subtree at the path made of `segments`. Strings are keys
// and integers are sequence indices. Only the exact path is skipped.
func Ignore(segments ...any) Option {
	return func(o *options) {
		o.ignore = append(o.ignore, match.NewPath(segments...))
	}
}

// IgnorePath is like Ignore but takes a dotted reference such as `b.c.2`. It
// panics if the reference is malformed.
func IgnorePath(dotted string) Option {
	p, err := ref.Parse(dotted)
	if err != nil {
		panic(err)
	}

	return func(o *options) {
		o.ignore = append(o.ignore, p)
	}
}

// ExtraMessage is prepended to every failure message.
func ExtraMessage(text string) Option {
	return func(o *options) {
		o.extra = text
	}
}

// MaxDepth limits how deep the expected structure may be. Deeper branches
// fail instead of being compared.
func MaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

func newOptions(opts []Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) params(host match.Host) match.Params {
	return match.NewParams(host,
		match.WithIgnore(o.ignore...),
		match.WithExtraMessage(o.extra),
		match.WithMaxDepth(o.maxDepth),
	)
}
