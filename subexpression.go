package superexpressive

import (
	"github.com/sirupsen/logrus"

	"github.com/coregx/superexpressive/syntax"
)

// SubexpressionOption configures how Subexpression merges its source.
type SubexpressionOption func(*mergeOptions)

type mergeOptions struct {
	namespace       string
	mergeFlags      bool
	keepStartAndEnd bool
}

// WithNamespace prefixes every named capture and named backreference of the
// source with ns.
func WithNamespace(ns string) SubexpressionOption {
	return func(o *mergeOptions) { o.namespace = ns }
}

// MergeFlags ORs the source's flags into the expression. The encoding modes
// (ASCII, Unicode, Locale) of both must agree. By default the source's flags
// are ignored.
func MergeFlags() SubexpressionOption {
	return func(o *mergeOptions) { o.mergeFlags = true }
}

// KeepStartAndEnd keeps the source's StartOfInput and EndOfInput anchors. By
// default they are dropped. Kept anchors are subject to Config.StrictAnchors.
func KeepStartAndEnd() SubexpressionOption {
	return func(o *mergeOptions) { o.keepStartAndEnd = true }
}

// Subexpression embeds the finished expression src at the current position.
//
// Backreferences of src are renumbered to account for the capture groups
// already defined, its capture groups are added to the expression's count and
// its named groups to the expression's names. The embedded content behaves as
// a single element, so a preceding quantifier applies to all of it:
//
//	word := superexpressive.New().Literal("hello").AnyChar().Literal("world")
//	se := superexpressive.New().OneOrMore().Subexpression(word)
//	// se.String() == `(?:hello.world)+`
func (e Expression) Subexpression(src Expression, opts ...SubexpressionOption) Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if src.err != nil {
		return e.fail(src.err)
	}
	src = src.init()
	if len(src.stack) != 0 {
		top := src.stack[len(src.stack)-1]
		return e.fail(syntax.Errorf(syntax.ErrIncompleteSubexpression, "subexpression",
			"cannot use an unfinished expression, try adding an End call to match the %s on the subexpression", top.Op))
	}

	var o mergeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if d := syntax.Depth(src.root); len(e.stack)+1+d > e.cfg.MaxDepth {
		return e.fail(syntax.Errorf(syntax.ErrTooDeep, "subexpression",
			"subexpression of depth %d exceeds depth limit %d", d, e.cfg.MaxDepth))
	}

	m := &merger{
		opts:   o,
		strict: e.cfg.StrictAnchors,
		offset: e.captures,
		names:  e.names,
	}
	if m.strict && o.keepStartAndEnd {
		m.start = syntax.Contains(e.root, syntax.OpStartOfInput)
		m.end = syntax.Contains(e.root, syntax.OpEndOfInput)
	}
	merged, err := m.rewrite(src.root)
	if err != nil {
		return e.fail(err)
	}

	if o.mergeFlags {
		flags, err := e.flags.Merge(src.flags)
		if err != nil {
			return e.fail(err)
		}
		e.flags = flags
	}

	sub := syntax.New(syntax.OpSubexpression)
	sub.Sub = merged.Sub

	next := e.push("subexpression", sub).End()
	if next.err != nil {
		return next
	}
	next.captures += m.added
	if len(m.newNames) > 0 {
		next.names = m.names
	}
	next.log().WithFields(logrus.Fields{
		"op":        "subexpression",
		"depth":     len(next.stack),
		"captures":  next.captures,
		"namespace": o.namespace,
	}).Debug("merge")
	return next
}

// merger rewrites a finished tree for insertion into another expression.
type merger struct {
	opts   mergeOptions
	strict bool
	offset int // capture groups defined before the insertion point

	added    int
	names    map[string]struct{}
	newNames []string
	start    bool
	end      bool
}

// rewrite returns n adapted to its new host, or n itself when nothing below
// it changes.
func (m *merger) rewrite(n *syntax.Node) (*syntax.Node, error) {
	switch n.Op {
	case syntax.OpBackreference:
		if m.offset == 0 {
			return n, nil
		}
		return syntax.Backreference(n.Index + m.offset)

	case syntax.OpNamedBackreference:
		if m.opts.namespace == "" {
			return n, nil
		}
		return syntax.NamedBackreference(m.opts.namespace + n.Name)

	case syntax.OpStartOfInput:
		if !m.opts.keepStartAndEnd {
			return syntax.New(syntax.OpNoop), nil
		}
		if m.strict {
			if m.start {
				return nil, syntax.Errorf(syntax.ErrAnchorConflict, "subexpression",
					"the parent regex already has a defined start of input, drop the subexpression anchors to merge anyway")
			}
			if m.end {
				return nil, syntax.Errorf(syntax.ErrAnchorConflict, "subexpression",
					"the parent regex already has a defined end of input, drop the subexpression anchors to merge anyway")
			}
		}
		m.start = true
		return n, nil

	case syntax.OpEndOfInput:
		if !m.opts.keepStartAndEnd {
			return syntax.New(syntax.OpNoop), nil
		}
		if m.strict && m.end {
			return nil, syntax.Errorf(syntax.ErrAnchorConflict, "subexpression",
				"the parent regex already has a defined end of input, drop the subexpression anchors to merge anyway")
		}
		m.end = true
		return n, nil

	case syntax.OpCapture:
		m.added++
		return m.rebuild(syntax.New(syntax.OpCapture), n)

	case syntax.OpNamedCapture:
		m.added++
		return m.namedCapture(n)
	}

	out := n
	for _, child := range n.Sub {
		c, err := m.rewrite(child)
		if err != nil {
			return nil, err
		}
		if c != child {
			if out, err = out.ReplaceChild(child, c); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func (m *merger) namedCapture(n *syntax.Node) (*syntax.Node, error) {
	name := m.opts.namespace + n.Name
	if _, dup := m.names[name]; dup {
		return nil, syntax.Errorf(syntax.ErrDuplicateName, "subexpression",
			"cannot use %q again for a capture group", name)
	}
	out, err := syntax.NamedCapture(name)
	if err != nil {
		return nil, err
	}
	names := make(map[string]struct{}, len(m.names)+1)
	for k := range m.names {
		names[k] = struct{}{}
	}
	names[name] = struct{}{}
	m.names = names
	m.newNames = append(m.newNames, name)
	return m.rebuild(out, n)
}

// rebuild adds the rewritten children of n to the fresh node out. A capture
// group node may occur only once per tree, so merging one source twice must
// not share them.
func (m *merger) rebuild(out, n *syntax.Node) (*syntax.Node, error) {
	for _, child := range n.Sub {
		c, err := m.rewrite(child)
		if err != nil {
			return nil, err
		}
		out, err = out.AddChild(c)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
