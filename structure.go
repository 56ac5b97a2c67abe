package superexpressive

import (
	"github.com/coregx/superexpressive/syntax"
)

// AnyOf opens an alternation: each element added before the matching End is
// one alternative. Single characters, ranges and character sets among them
// are fused into one character class.
func (e Expression) AnyOf() Expression { return e.fixed(syntax.OpAnyOf) }

// Group opens a non-capturing group: `(?:...)`
func (e Expression) Group() Expression { return e.fixed(syntax.OpGroup) }

// AssertAhead opens a positive lookahead: `(?=...)`
func (e Expression) AssertAhead() Expression { return e.fixed(syntax.OpAssertAhead) }

// AssertNotAhead opens a negative lookahead: `(?!...)`
func (e Expression) AssertNotAhead() Expression { return e.fixed(syntax.OpAssertNotAhead) }

// Capture opens a numbered capture group. Groups are numbered from 1 in the
// order they are opened, named groups included.
func (e Expression) Capture() Expression {
	if e.err != nil {
		return e
	}
	next := e.fixed(syntax.OpCapture)
	if next.err == nil {
		next.captures++
	}
	return next
}

// NamedCapture opens a capture group called name. The name must start with a
// letter, contain only letters, digits and underscores, and be unused.
func (e Expression) NamedCapture(name string) Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if _, dup := e.names[name]; dup {
		return e.fail(syntax.Errorf(syntax.ErrDuplicateName, "named_capture",
			"cannot use %q again for a capture group", name))
	}
	n, err := syntax.NamedCapture(name)
	if err != nil {
		return e.fail(err)
	}
	next := e.push("named_capture", n)
	if next.err == nil {
		next.names = e.withName(name)
		next.captures++
	}
	return next
}

// Backreference matches the text last captured by group index. The group
// must already have been closed.
func (e Expression) Backreference(index int) Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if index < 1 || index > e.captures {
		return e.fail(syntax.Errorf(syntax.ErrMissingGroup, "backreference",
			"invalid index %d, there are %d capture groups on this expression", index, e.captures))
	}
	if e.isOpen(index, "") {
		return e.fail(syntax.Errorf(syntax.ErrOpenGroup, "backreference",
			"capture group %d has not been ended yet", index))
	}
	n, err := syntax.Backreference(index)
	return e.leaf("backreference", n, err)
}

// NamedBackreference matches the text last captured by the group called
// name, which must already exist and be closed.
func (e Expression) NamedBackreference(name string) Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if _, ok := e.names[name]; !ok {
		return e.fail(syntax.Errorf(syntax.ErrMissingGroup, "named_backreference",
			"no capture group called %q exists (create one with NamedCapture)", name))
	}
	if e.isOpen(0, name) {
		return e.fail(syntax.Errorf(syntax.ErrOpenGroup, "named_backreference",
			"capture group %q has not been ended yet", name))
	}
	n, err := syntax.NamedBackreference(name)
	return e.leaf("named_backreference", n, err)
}

// isOpen reports whether the capture group numbered index, or called name,
// is still on the stack. Everything pushed after a group was opened is
// inside it, so an open group's number follows from the groups it holds.
func (e Expression) isOpen(index int, name string) bool {
	for _, n := range e.stack {
		if n.Op != syntax.OpCapture && n.Op != syntax.OpNamedCapture {
			continue
		}
		if name != "" && n.Name == name {
			return true
		}
		if index > 0 && e.captures-len(syntax.Groups(n))+1 == index {
			return true
		}
	}
	return false
}

// quantify opens q around the next element. Quantifiers do not stack: to
// quantify a quantified element wrap it in a Group first.
func (e Expression) quantify(q *syntax.Node, err error) Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if err != nil {
		return e.fail(err)
	}
	if cur := e.current(); cur.Op.IsQuantifier() {
		return e.fail(syntax.Errorf(syntax.ErrAlreadyQuantified, q.Op.String(),
			"cannot quantify with %s because it is already being quantified with %s", q.Op, cur.Op))
	}
	return e.push(q.Op.String(), q)
}

// Optional makes the next element optional: `?`
func (e Expression) Optional() Expression {
	return e.quantify(syntax.New(syntax.OpOptional), nil)
}

// ZeroOrMore repeats the next element any number of times: `*`
func (e Expression) ZeroOrMore() Expression {
	return e.quantify(syntax.New(syntax.OpZeroOrMore), nil)
}

// ZeroOrMoreLazy is the lazy form of ZeroOrMore: `*?`
func (e Expression) ZeroOrMoreLazy() Expression {
	return e.quantify(syntax.New(syntax.OpZeroOrMoreLazy), nil)
}

// OneOrMore repeats the next element at least once: `+`
func (e Expression) OneOrMore() Expression {
	return e.quantify(syntax.New(syntax.OpOneOrMore), nil)
}

// OneOrMoreLazy is the lazy form of OneOrMore: `+?`
func (e Expression) OneOrMoreLazy() Expression {
	return e.quantify(syntax.New(syntax.OpOneOrMoreLazy), nil)
}

// Exactly repeats the next element exactly times times: `{n}`
func (e Expression) Exactly(times int) Expression {
	return e.quantify(syntax.Repeat(syntax.OpExactly, times))
}

// AtLeast repeats the next element times times or more: `{n,}`
func (e Expression) AtLeast(times int) Expression {
	return e.quantify(syntax.Repeat(syntax.OpAtLeast, times))
}

// Between repeats the next element from low to high times: `{low,high}`
func (e Expression) Between(low, high int) Expression {
	return e.quantify(syntax.Between(low, high, false))
}

// BetweenLazy is the lazy form of Between: `{low,high}?`
func (e Expression) BetweenLazy(low, high int) Expression {
	return e.quantify(syntax.Between(low, high, true))
}

// StartOfInput matches at the start of the input, or of each line with
// LineByLine: `^`
//
// With Config.StrictAnchors it fails if the expression already has a start of
// input, or already has an end of input.
func (e Expression) StartOfInput() Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if e.cfg.StrictAnchors {
		if syntax.Contains(e.root, syntax.OpStartOfInput) {
			return e.fail(syntax.Errorf(syntax.ErrAnchorConflict, "start_of_input",
				"this expression already has a defined start of input"))
		}
		if syntax.Contains(e.root, syntax.OpEndOfInput) {
			return e.fail(syntax.Errorf(syntax.ErrAnchorConflict, "start_of_input",
				"cannot define the start of input after the end of input"))
		}
	}
	return e.fixed(syntax.OpStartOfInput)
}

// EndOfInput matches at the end of the input, or of each line with
// LineByLine: `$`
//
// With Config.StrictAnchors it fails if the expression already has an end of
// input.
func (e Expression) EndOfInput() Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if e.cfg.StrictAnchors && syntax.Contains(e.root, syntax.OpEndOfInput) {
		return e.fail(syntax.Errorf(syntax.ErrAnchorConflict, "end_of_input",
			"this expression already has a defined end of input"))
	}
	return e.fixed(syntax.OpEndOfInput)
}
