// Package prefilter rejects input that cannot match before the engine runs.
//
// Every match of an expression contains at least one of its required literals
// (see package literal). Searching the input for them with a byte search is
// far cheaper than a backtracking match, so input without any of them is
// rejected up front:
//
//	required := literal.New(literal.DefaultConfig()).ExtractRequired(expr.Root())
//	if pf := prefilter.New(required, 1); pf != nil && pf.Find(input, 0) < 0 {
//	    // no match possible
//	}
//
// One literal is searched with bytes.IndexByte or bytes.Index, several with
// an Aho-Corasick automaton.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/superexpressive/literal"
)

// Prefilter finds occurrences of required literals.
type Prefilter interface {
	// Find returns the byte offset of the first literal occurrence at or
	// after start, or -1.
	Find(haystack []byte, start int) int

	// Complete reports whether an occurrence is a whole match on its own.
	Complete() bool

	// Size returns the number of literal bytes held.
	Size() int

	// String names the search strategy.
	String() string
}

// New returns the prefilter for required, or nil when the literals are too
// weak to pay off: none at all, or one shorter than minLen bytes.
func New(required *literal.Seq, minLen int) Prefilter {
	if minLen < 1 {
		minLen = 1
	}
	if required.IsEmpty() || required.MinLen() < minLen {
		return nil
	}
	if required.Len() == 1 {
		lit := required.Get(0)
		return &single{
			needle:   append([]byte(nil), lit.Bytes...),
			complete: lit.Complete,
		}
	}
	return newSet(required)
}

// single searches for one literal.
type single struct {
	needle   []byte
	complete bool
}

func (p *single) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	var i int
	if len(p.needle) == 1 {
		i = bytes.IndexByte(haystack[start:], p.needle[0])
	} else {
		i = bytes.Index(haystack[start:], p.needle)
	}
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *single) Complete() bool { return p.complete }

func (p *single) Size() int { return len(p.needle) }

func (p *single) String() string {
	if len(p.needle) == 1 {
		return "memchr"
	}
	return "memmem"
}

// set searches for several literals at once. It is never complete: the
// automaton does not report which alternative it found.
type set struct {
	auto *ahocorasick.Automaton
	size int
}

func newSet(required *literal.Seq) Prefilter {
	b := ahocorasick.NewBuilder()
	size := 0
	for i := 0; i < required.Len(); i++ {
		lit := required.Get(i)
		b.AddPattern(lit.Bytes)
		size += lit.Len()
	}
	auto, err := b.Build()
	if err != nil {
		return nil
	}
	return &set{auto: auto, size: size}
}

func (p *set) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	if m := p.auto.Find(haystack, start); m != nil {
		return m.Start
	}
	return -1
}

func (p *set) Complete() bool { return false }

func (p *set) Size() int { return p.size }

func (p *set) String() string { return "aho-corasick" }
