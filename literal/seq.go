// Package literal works out which literal text every match of an expression
// tree must contain.
//
// A Seq lists alternatives: every match contains at least one of its
// literals. An empty Seq means nothing useful is known. The result feeds
// package prefilter, which rejects input lacking all of them.
package literal

import (
	"bytes"
	"sort"
	"strconv"
)

// Literal is a UTF-8 byte string taken from an expression.
type Literal struct {
	Bytes []byte

	// Complete is set when the literal is a whole match, not just a part
	// every match contains: `abc` yields a complete "abc", `abc\d` an
	// incomplete one.
	Complete bool
}

// NewLiteral returns a Literal holding b.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

func (l Literal) String() string {
	s := strconv.Quote(string(l.Bytes))
	if l.Complete {
		return s
	}
	return s + "..."
}

// Seq is a set of alternative literals.
type Seq struct {
	literals []Literal
}

// NewSeq returns a Seq of lits. The slice is used as is.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals; a nil Seq has none.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns literal i.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether s holds no literal.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// MinLen returns the length of the shortest literal, 0 for an empty Seq.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		n = min(n, lit.Len())
	}
	return n
}

// Minimize drops literals that contain another one. Any input holding the
// longer literal holds the shorter one too, so searching for the shorter one
// alone finds the same inputs. A kept literal loses Complete when it stands
// in for a different one.
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}
	sort.SliceStable(s.literals, func(i, j int) bool {
		return s.literals[i].Len() < s.literals[j].Len()
	})

	out := s.literals[:0:0]
	for _, lit := range s.literals {
		covered := -1
		for j := range out {
			if bytes.Contains(lit.Bytes, out[j].Bytes) {
				covered = j
				break
			}
		}
		switch {
		case covered < 0:
			out = append(out, lit)
		case !lit.Complete || !bytes.Equal(lit.Bytes, out[covered].Bytes):
			out[covered].Complete = false
		}
	}
	s.literals = out
}

// cross returns every literal of a followed by every literal of b, or nil
// when there would be more than limit of them.
func cross(a, b *Seq, limit int) *Seq {
	if a.Len()*b.Len() > limit {
		return nil
	}
	out := make([]Literal, 0, a.Len()*b.Len())
	for _, x := range a.literals {
		for _, y := range b.literals {
			joined := make([]byte, 0, x.Len()+y.Len())
			joined = append(append(joined, x.Bytes...), y.Bytes...)
			out = append(out, Literal{Bytes: joined, Complete: x.Complete && y.Complete})
		}
	}
	return NewSeq(out...)
}

// union returns the literals of a and b together, or nil when there would
// be more than limit of them.
func union(a, b *Seq, limit int) *Seq {
	if a.Len()+b.Len() > limit {
		return nil
	}
	out := make([]Literal, 0, a.Len()+b.Len())
	if a != nil {
		out = append(out, a.literals...)
	}
	if b != nil {
		out = append(out, b.literals...)
	}
	return NewSeq(out...)
}

// truncate cuts literals to n bytes. A cut literal is still required but no
// longer complete.
func truncate(s *Seq, n int) *Seq {
	out := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		if lit.Len() > n {
			lit = Literal{Bytes: lit.Bytes[:n:n]}
		}
		out[i] = lit
	}
	return NewSeq(out...)
}

func (s *Seq) maxLen() int {
	n := 0
	for _, lit := range s.literals {
		n = max(n, lit.Len())
	}
	return n
}
