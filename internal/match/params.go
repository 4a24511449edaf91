package match

const DefaultMaxDepth = 256

// Params carries the traversal state of one recursive comparison call. Values
// are never mutated after construction; every descent derives a new one with
// WithExtendedPath.
type Params struct {
	path      Path
	ignore    []Path
	host      Host
	extra     string
	maxDepth  int
	ancestors *ancestor
}

type ParamsOption func(p *Params)

func WithIgnore(paths ...Path) ParamsOption {
	return func(p *Params) {
		p.ignore = append(p.ignore, paths...)
	}
}

func WithExtraMessage(text string) ParamsOption {
	return func(p *Params) {
		p.extra = text
	}
}

func WithMaxDepth(depth int) ParamsOption {
	return func(p *Params) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// NewParams creates the root parameters of a top-level call. The path is
// empty.
func NewParams(host Host, opts ...ParamsOption) Params {
	p := Params{
		path:     Path{},
		ignore:   make([]Path, 0),
		host:     host,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(&p)
	}

	return p
}

func (p Params) Path() Path {
	return p.path
}

func (p Params) Host() Host {
	return p.host
}

func (p Params) Extra() string {
	return p.extra
}

func (p Params) Ignored() bool {
	return containsPath(p.ignore, p.path)
}

// WithExtendedPath returns a copy of the receiver whose path has `s` appended.
func (p Params) WithExtendedPath(s Segment) Params {
	p.path = p.path.Append(s)
	return p
}

func (p Params) withAncestor(id identity) Params {
	p.ancestors = &ancestor{id: id, parent: p.ancestors}
	return p
}

// ancestor is a node of the persistent chain of expected containers entered
// on the current branch. Siblings share the parent part of the chain.
type ancestor struct {
	id     identity
	parent *ancestor
}

func (a *ancestor) contains(id identity) bool {
	for n := a; n != nil; n = n.parent {
		if n.id == id {
			return true
		}
	}

	return false
}
