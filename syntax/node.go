// Package syntax defines the abstract syntax tree built by superexpressive and
// renders it to pattern text.
//
// A tree is made of *Node values. Nodes are persistent: once created they are
// never modified. AddChild and ReplaceChild return fresh nodes and share every
// untouched subtree with the original, so a tree that has been handed out stays
// valid no matter what is built from it afterwards.
//
// Every Op belongs to one of three classes:
//   - leaves hold no children (digit, literal string, backreference, anchors)
//   - multi-child containers hold an ordered child list and stay open until
//     they are explicitly ended (root, captures, groups, any-of, lookaheads)
//   - quantifiers hold exactly one child and are complete the moment it is set
//
// Children are located by identity, so a node value must not be copied and
// reused under a different pointer.
package syntax

import (
	"strconv"
)

// Op is a node kind.
type Op uint8

const (
	OpRoot Op = 1 + iota // whole-expression root
	OpNoop               // matches the empty string; replaces ignored anchors

	OpStartOfInput // ^
	OpEndOfInput   // $

	OpAnyChar         // .
	OpWhitespace      // \s
	OpNonWhitespace   // \S
	OpDigit           // \d
	OpNonDigit        // \D
	OpWord            // \w
	OpNonWord         // \W
	OpWordBoundary    // \b
	OpNonWordBoundary // \B
	OpNewline         // \n
	OpCarriageReturn  // \r
	OpTab             // \t
	OpNullByte        // \x00
	OpBell            // \a
	OpBackspace       // \b inside a character class
	OpFormFeed        // \f
	OpVerticalTab     // \v
	OpBackslash       // \\
	OpStartOfString   // \A
	OpEndOfString     // \Z

	OpHex                // \xHH; Text holds the two hex digits, Lo the rune
	OpUnicode            // \N{...}, \uXXXX or \UXXXXXXXX; Text holds the code, Lo the rune
	OpAnyOfChars         // [chars]
	OpAnythingButChars   // [^chars]
	OpAnythingButString  // (?:[^a][^b]...)
	OpAnythingButRange   // [^Lo-Hi]
	OpChar               // Lo
	OpRange              // [Lo-Hi]
	OpString             // Text
	OpBackreference      // \Index
	OpNamedBackreference // \g<Name>

	OpCapture        // (...)
	OpNamedCapture   // (?P<Name>...)
	OpGroup          // (?:...)
	OpSubexpression  // merged expression, rendered inline
	OpAnyOf          // alternation with character-class fusion
	OpAssertAhead    // (?=...)
	OpAssertNotAhead // (?!...)

	OpExactly        // {Min}
	OpAtLeast        // {Min,}
	OpBetween        // {Min,Max}
	OpBetweenLazy    // {Min,Max}?
	OpZeroOrMore     // *
	OpZeroOrMoreLazy // *?
	OpOneOrMore      // +
	OpOneOrMoreLazy  // +?
	OpOptional       // ?

	opLast = OpOptional
)

var opNames = [...]string{
	OpRoot:               "root",
	OpNoop:               "noop",
	OpStartOfInput:       "start_of_input",
	OpEndOfInput:         "end_of_input",
	OpAnyChar:            "any_char",
	OpWhitespace:         "whitespace_char",
	OpNonWhitespace:      "non_whitespace_char",
	OpDigit:              "digit",
	OpNonDigit:           "non_digit",
	OpWord:               "word",
	OpNonWord:            "non_word",
	OpWordBoundary:       "word_boundary",
	OpNonWordBoundary:    "non_word_boundary",
	OpNewline:            "newline",
	OpCarriageReturn:     "carriage_return",
	OpTab:                "tab",
	OpNullByte:           "null_byte",
	OpBell:               "ascii_bell",
	OpBackspace:          "ascii_backspace",
	OpFormFeed:           "ascii_formfeed",
	OpVerticalTab:        "ascii_vertical_tab",
	OpBackslash:          "backslash",
	OpStartOfString:      "start_of_string",
	OpEndOfString:        "end_of_string",
	OpHex:                "hex_char",
	OpUnicode:            "unicode_char",
	OpAnyOfChars:         "any_of_chars",
	OpAnythingButChars:   "anything_but_chars",
	OpAnythingButString:  "anything_but_string",
	OpAnythingButRange:   "anything_but_range",
	OpChar:               "char",
	OpRange:              "range",
	OpString:             "string",
	OpBackreference:      "backreference",
	OpNamedBackreference: "named_backreference",
	OpCapture:            "capture",
	OpNamedCapture:       "named_capture",
	OpGroup:              "group",
	OpSubexpression:      "subexpression",
	OpAnyOf:              "any_of",
	OpAssertAhead:        "assert_ahead",
	OpAssertNotAhead:     "assert_not_ahead",
	OpExactly:            "exactly",
	OpAtLeast:            "at_least",
	OpBetween:            "between",
	OpBetweenLazy:        "between_lazy",
	OpZeroOrMore:         "zero_or_more",
	OpZeroOrMoreLazy:     "zero_or_more_lazy",
	OpOneOrMore:          "one_or_more",
	OpOneOrMoreLazy:      "one_or_more_lazy",
	OpOptional:           "optional",
}

func (op Op) String() string {
	if op == 0 || op > opLast {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// IsQuantifier reports whether op takes exactly one child.
func (op Op) IsQuantifier() bool {
	return op >= OpExactly && op <= opLast
}

// IsContainer reports whether op takes an open-ended list of children.
func (op Op) IsContainer() bool {
	return op == OpRoot || (op >= OpCapture && op <= OpAssertNotAhead)
}

// IsLeaf reports whether op takes no children.
func (op Op) IsLeaf() bool {
	return !op.IsQuantifier() && !op.IsContainer()
}

// IsAnchor reports whether op is a start or end of input marker.
func (op Op) IsAnchor() bool {
	return op == OpStartOfInput || op == OpEndOfInput
}

// RequiresGroup reports whether a quantified node of this kind must be wrapped
// in a non-capturing group to keep the quantifier applying to all of it.
func (op Op) RequiresGroup() bool {
	switch op {
	case OpRoot, OpSubexpression, OpString, OpNoop:
		return true
	}
	return false
}

// Node is an element of the expression tree.
//
// Which payload fields are meaningful depends on Op; see the Op constants.
// Nodes must be treated as read-only.
type Node struct {
	Op    Op
	Text  string  // string, char set, hex or unicode code
	Name  string  // capture or backreference name
	Lo    rune    // char, unicode rune, range low bound
	Hi    rune    // range high bound
	Min   int     // repeat count or lower bound
	Max   int     // repeat upper bound
	Index int     // backreference index
	Sub   []*Node // children
}

// Complete reports whether n needs nothing more to be finished. Quantifiers
// are complete once their child is set; containers are only finished by an
// explicit end and report false.
func (n *Node) Complete() bool {
	if n.Op.IsQuantifier() {
		return len(n.Sub) == 1
	}
	return n.Op.IsLeaf()
}

// Child returns the child of a quantifier, or nil while it is unset.
func (n *Node) Child() *Node {
	if !n.Op.IsQuantifier() || len(n.Sub) == 0 {
		return nil
	}
	return n.Sub[0]
}

// AddChild returns a copy of n with child appended. It fails if n is a leaf
// or a quantifier whose child is already set.
func (n *Node) AddChild(child *Node) (*Node, error) {
	switch {
	case n.Op.IsLeaf():
		return nil, Errorf(ErrNotClosable, child.Op.String(), "%s cannot hold children", n.Op)
	case n.Op.IsQuantifier() && len(n.Sub) != 0:
		return nil, Errorf(ErrAlreadyQuantified, child.Op.String(), "%s already has a child", n.Op)
	}
	c := n.clone()
	c.Sub = make([]*Node, len(n.Sub), len(n.Sub)+1)
	copy(c.Sub, n.Sub)
	c.Sub = append(c.Sub, child)
	return c, nil
}

// ReplaceChild returns a copy of n with the child old swapped for replacement.
// old is matched by identity and must occur exactly once among the children.
func (n *Node) ReplaceChild(old, replacement *Node) (*Node, error) {
	at := -1
	for i, c := range n.Sub {
		if c != old {
			continue
		}
		if at >= 0 {
			return nil, Errorf(ErrChildNotUnique, n.Op.String(), "child %s occurs more than once", old.Op)
		}
		at = i
	}
	if at < 0 {
		return nil, Errorf(ErrChildNotUnique, n.Op.String(), "could not find %s among children", old.Op)
	}
	c := n.clone()
	c.Sub = make([]*Node, len(n.Sub))
	copy(c.Sub, n.Sub)
	c.Sub[at] = replacement
	return c, nil
}

var controlRunes = map[Op]rune{
	OpNewline:        '\n',
	OpCarriageReturn: '\r',
	OpTab:            '\t',
	OpNullByte:       0,
	OpBell:           '\a',
	OpBackspace:      '\b',
	OpFormFeed:       '\f',
	OpVerticalTab:    '\v',
	OpBackslash:      '\\',
}

// Rune returns the one character a single-character leaf matches: a Char,
// HexChar, UnicodeChar or control character escape.
func (n *Node) Rune() (rune, bool) {
	switch n.Op {
	case OpChar, OpHex, OpUnicode:
		return n.Lo, true
	}
	r, ok := controlRunes[n.Op]
	return r, ok
}

func (n *Node) clone() *Node {
	c := *n
	return &c
}
