package literal

import (
	"unicode/utf8"

	"github.com/coregx/superexpressive/syntax"
)

// ExtractorConfig bounds extraction. Alternations and small classes
// multiply the number of candidate literals, so both the count and the length
// of literals are capped.
//
// Example:
//
//	config := literal.DefaultConfig()
//	config.MaxClassSize = 4 // do not expand [0-9]
//	seq := literal.New(config).ExtractRequired(expr.Root())
type ExtractorConfig struct {
	// MaxLiterals caps the number of alternatives in a Seq. Past it the
	// alternation or class contributes nothing.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen caps the length of a literal in bytes. Longer literals
	// are cut, which keeps them required but not complete.
	// Default: 64
	MaxLiteralLen int

	// MaxClassSize is the largest character set or range expanded into one
	// literal per character: [abc] gives "a", "b", "c", [a-z] gives nothing.
	// Default: 10
	MaxClassSize int
}

// DefaultConfig returns the limits used by Compile.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor computes required literals of expression trees.
//
// Example:
//
//	// hello.(?:world|there)
//	seq := literal.New(literal.DefaultConfig()).ExtractRequired(root)
//	// seq = ["hello"...]
type Extractor struct {
	config ExtractorConfig
}

// New returns an Extractor using config.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// facts describes what is known about the text a node consumes.
//
// exact, when set, lists every string the node can match. required, when
// set, holds literals at least one of which occurs in every match.
type facts struct {
	exact    *Seq
	required *Seq
}

// best returns the more selective of a node's exact and required literals,
// or nil if it has none that are worth searching for.
func (f facts) best() *Seq {
	if f.exact != nil && f.exact.MinLen() > 0 {
		if f.required == nil || f.exact.MinLen() >= f.required.MinLen() {
			return f.exact
		}
	}
	if f.required != nil && f.required.MinLen() > 0 {
		return f.required
	}
	return nil
}

// ExtractRequired returns literals such that every match of the tree rooted
// at n contains at least one of them. Literals are marked Complete when they
// are the whole match. The result is empty if nothing useful is known.
//
// Handles these node kinds:
//   - String, Char and single character escapes: itself
//   - concatenations (root, groups, captures): adjacent exact parts are
//     joined, the most selective part wins
//   - AnyOf: union over every alternative, fused characters included
//   - quantifiers with a minimum of at least one: the element's literals
//   - anchors, boundaries and lookaheads: the empty string
//   - everything else (classes, backreferences, optional parts): unknown
func (e *Extractor) ExtractRequired(n *syntax.Node) *Seq {
	if n == nil {
		return NewSeq()
	}
	seq := e.facts(n).best()
	if seq == nil {
		return NewSeq()
	}
	if seq.maxLen() > e.config.MaxLiteralLen {
		seq = truncate(seq, e.config.MaxLiteralLen)
	} else {
		seq = NewSeq(append([]Literal(nil), seq.literals...)...)
	}
	seq.Minimize()
	return seq
}

func (e *Extractor) facts(n *syntax.Node) facts {
	switch n.Op {
	case syntax.OpString:
		return exactly(n.Text)

	case syntax.OpChar, syntax.OpHex, syntax.OpUnicode,
		syntax.OpNewline, syntax.OpCarriageReturn, syntax.OpTab, syntax.OpNullByte,
		syntax.OpBell, syntax.OpBackspace, syntax.OpFormFeed, syntax.OpVerticalTab,
		syntax.OpBackslash:
		r, _ := n.Rune()
		return exactly(string(r))

	case syntax.OpAnyOfChars:
		if utf8.RuneCountInString(n.Text) > e.config.MaxClassSize {
			return facts{}
		}
		return facts{exact: e.chars(n.Text)}

	case syntax.OpRange:
		if int(n.Hi-n.Lo)+1 > e.config.MaxClassSize {
			return facts{}
		}
		lits := make([]Literal, 0, n.Hi-n.Lo+1)
		for r := n.Lo; r <= n.Hi; r++ {
			lits = append(lits, NewLiteral([]byte(string(r)), true))
		}
		return facts{exact: NewSeq(lits...)}

	case syntax.OpNoop, syntax.OpStartOfInput, syntax.OpEndOfInput,
		syntax.OpStartOfString, syntax.OpEndOfString,
		syntax.OpWordBoundary, syntax.OpNonWordBoundary,
		syntax.OpAssertAhead, syntax.OpAssertNotAhead:
		// Zero-width: the surrounding text is consumed contiguously.
		return exactly("")

	case syntax.OpRoot, syntax.OpSubexpression, syntax.OpGroup,
		syntax.OpCapture, syntax.OpNamedCapture:
		return e.concat(n.Sub)

	case syntax.OpAnyOf:
		return e.alternate(n.Sub)

	case syntax.OpExactly:
		child := e.facts(n.Child())
		f := facts{required: child.best()}
		if child.exact != nil {
			exact := NewSeq(NewLiteral(nil, true))
			for i := 0; i < n.Min && exact != nil; i++ {
				exact = cross(exact, child.exact, e.config.MaxLiterals)
				if exact != nil && exact.maxLen() > e.config.MaxLiteralLen {
					exact = nil
				}
			}
			f.exact = exact
		}
		return f

	case syntax.OpAtLeast, syntax.OpBetween, syntax.OpBetweenLazy,
		syntax.OpOneOrMore, syntax.OpOneOrMoreLazy:
		if minRepeat(n) < 1 {
			return facts{}
		}
		return facts{required: e.facts(n.Child()).best()}
	}
	return facts{}
}

func exactly(s string) facts {
	return facts{exact: NewSeq(NewLiteral([]byte(s), true))}
}

func minRepeat(n *syntax.Node) int {
	switch n.Op {
	case syntax.OpOneOrMore, syntax.OpOneOrMoreLazy:
		return 1
	}
	return n.Min
}

func (e *Extractor) chars(s string) *Seq {
	lits := make([]Literal, 0, len(s))
	for _, r := range s {
		lits = append(lits, NewLiteral([]byte(string(r)), true))
	}
	return NewSeq(lits...)
}

// concat joins runs of exact children and keeps the most selective
// candidate among the runs and the other children's required literals.
func (e *Extractor) concat(children []*syntax.Node) facts {
	var best *Seq
	consider := func(s *Seq) {
		if s == nil || s.MinLen() == 0 {
			return
		}
		if best == nil || s.MinLen() > best.MinLen() ||
			(s.MinLen() == best.MinLen() && s.Len() < best.Len()) {
			best = s
		}
	}

	empty := NewSeq(NewLiteral(nil, true))
	run := empty
	all := true
	for _, c := range children {
		f := e.facts(c)
		if f.exact != nil {
			joined := cross(run, f.exact, e.config.MaxLiterals)
			if joined != nil && joined.maxLen() <= e.config.MaxLiteralLen {
				run = joined
				continue
			}
			all = false
			consider(run)
			run = f.exact
			continue
		}
		all = false
		consider(run)
		consider(f.best())
		run = empty
	}
	consider(run)

	if all {
		return facts{exact: run, required: best}
	}
	return facts{required: markIncomplete(best)}
}

// alternate unions the alternatives of an AnyOf. The result is only known
// if every alternative contributes.
func (e *Extractor) alternate(children []*syntax.Node) facts {
	if len(children) == 0 {
		return facts{}
	}
	exact := NewSeq()
	required := NewSeq()
	for _, c := range children {
		f := e.facts(c)
		if exact != nil {
			if f.exact == nil {
				exact = nil
			} else {
				exact = union(exact, f.exact, e.config.MaxLiterals)
			}
		}
		if required != nil {
			b := f.best()
			if b == nil {
				required = nil
			} else {
				required = union(required, b, e.config.MaxLiterals)
			}
		}
		if exact == nil && required == nil {
			return facts{}
		}
	}
	return facts{exact: exact, required: required}
}

// markIncomplete returns s with every literal marked as a partial match.
func markIncomplete(s *Seq) *Seq {
	if s == nil {
		return nil
	}
	out := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		out[i] = Literal{Bytes: lit.Bytes, Complete: false}
	}
	return NewSeq(out...)
}
