package syntax

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// New returns a fresh node of a payload-free kind: a stateless leaf, an empty
// container or an unset unbounded quantifier. Kinds that carry a payload have
// their own constructor.
func New(op Op) *Node {
	return &Node{Op: op}
}

// String returns a literal string leaf.
func String(s string) (*Node, error) {
	if s == "" {
		return nil, Errorf(ErrInvalidLiteral, "string", "string must have at least one character")
	}
	if !utf8.ValidString(s) {
		return nil, Errorf(ErrInvalidLiteral, "string", "%q is not valid UTF-8", s)
	}
	return &Node{Op: OpString, Text: s}, nil
}

// Char returns a single character leaf. s must hold exactly one rune.
func Char(s string) (*Node, error) {
	r, err := SingleRune("char", s)
	if err != nil {
		return nil, err
	}
	return &Node{Op: OpChar, Lo: r}, nil
}

// CharCode returns a single character leaf for the code point r.
func CharCode(r rune) (*Node, error) {
	if !utf8.ValidRune(r) {
		return nil, Errorf(ErrInvalidLiteral, "char", "invalid code point %#x", r)
	}
	return &Node{Op: OpChar, Lo: r}, nil
}

// Range returns a character range leaf of kind OpRange or OpAnythingButRange.
// lo must be strictly smaller than hi.
func Range(op Op, lo, hi rune) (*Node, error) {
	if op != OpRange && op != OpAnythingButRange {
		return nil, Errorf(ErrInvalidRange, op.String(), "%s is not a range", op)
	}
	if !utf8.ValidRune(lo) {
		return nil, Errorf(ErrInvalidRange, op.String(), "invalid low code point %#x", lo)
	}
	if !utf8.ValidRune(hi) {
		return nil, Errorf(ErrInvalidRange, op.String(), "invalid high code point %#x", hi)
	}
	if lo >= hi {
		return nil, Errorf(ErrInvalidRange, op.String(),
			"low must have a smaller character value than high (low = %q, high = %q)", lo, hi)
	}
	return &Node{Op: op, Lo: lo, Hi: hi}, nil
}

// Chars returns a character-set leaf of kind OpAnyOfChars,
// OpAnythingButChars or OpAnythingButString.
func Chars(op Op, chars string) (*Node, error) {
	switch op {
	case OpAnyOfChars, OpAnythingButChars, OpAnythingButString:
	default:
		return nil, Errorf(ErrInvalidLiteral, op.String(), "%s is not a character set", op)
	}
	if chars == "" {
		return nil, Errorf(ErrInvalidLiteral, op.String(), "chars must have at least one character")
	}
	if !utf8.ValidString(chars) {
		return nil, Errorf(ErrInvalidLiteral, op.String(), "%q is not valid UTF-8", chars)
	}
	return &Node{Op: op, Text: chars}, nil
}

// Hex returns a \xHH leaf. code must be exactly two hex digits.
func Hex(code string) (*Node, error) {
	if len(code) != 2 || !isHex(code) {
		return nil, Errorf(ErrInvalidLiteral, "hex_char", "invalid hex char %q", code)
	}
	v, _ := strconv.ParseUint(code, 16, 8)
	return &Node{Op: OpHex, Text: code, Lo: rune(v)}, nil
}

// UnicodeChar returns a unicode escape leaf. code is either a Unicode
// character name, four hex digits, or five to eight hex digits naming a valid
// code point.
func UnicodeChar(code string) (*Node, error) {
	_, r, ok := unicodeForm(code)
	if !ok {
		return nil, Errorf(ErrInvalidLiteral, "unicode_char", "invalid unicode char %q", code)
	}
	return &Node{Op: OpUnicode, Text: code, Lo: r}, nil
}

// Backreference returns a leaf referring to the capture group at index.
func Backreference(index int) (*Node, error) {
	if index < 0 {
		return nil, Errorf(ErrMissingGroup, "backreference", "index must be non-negative (got %d)", index)
	}
	return &Node{Op: OpBackreference, Index: index}, nil
}

// NamedBackreference returns a leaf referring to the capture group name.
func NamedBackreference(name string) (*Node, error) {
	if err := ValidateName("named_backreference", name); err != nil {
		return nil, err
	}
	return &Node{Op: OpNamedBackreference, Name: name}, nil
}

// NamedCapture returns an empty named capture container.
func NamedCapture(name string) (*Node, error) {
	if err := ValidateName("named_capture", name); err != nil {
		return nil, err
	}
	return &Node{Op: OpNamedCapture, Name: name}, nil
}

// Repeat returns an unset counted quantifier of kind OpExactly or OpAtLeast.
// times must be positive.
func Repeat(op Op, times int) (*Node, error) {
	if op != OpExactly && op != OpAtLeast {
		return nil, Errorf(ErrInvalidRepeat, op.String(), "%s is not a counted quantifier", op)
	}
	if times <= 0 {
		return nil, Errorf(ErrInvalidRepeat, op.String(), "times must be a positive integer (got %d)", times)
	}
	return &Node{Op: op, Min: times}, nil
}

// Between returns an unset bounded quantifier. low must be non-negative and
// smaller than high.
func Between(low, high int, lazy bool) (*Node, error) {
	op := OpBetween
	if lazy {
		op = OpBetweenLazy
	}
	if low < 0 {
		return nil, Errorf(ErrInvalidRepeat, op.String(), "low must be a non-negative integer (got %d)", low)
	}
	if low >= high {
		return nil, Errorf(ErrInvalidRepeat, op.String(), "low must be less than high (low = %d, high = %d)", low, high)
	}
	return &Node{Op: op, Min: low, Max: high}, nil
}

// ValidateName checks that name can be used for a capture group: it must be
// non-empty, start with a letter and contain only letters, digits and
// underscores.
func ValidateName(op, name string) error {
	if name == "" {
		return Errorf(ErrInvalidName, op, "name must be at least one character")
	}
	for i, c := range name {
		if i == 0 && !unicode.IsLetter(c) {
			return Errorf(ErrInvalidName, op, "name %q must start with a letter", name)
		}
		if !isNameChar(c) {
			return Errorf(ErrInvalidName, op, "name %q is not valid (only letters, numbers, and underscore)", name)
		}
	}
	return nil
}

// SingleRune returns the only rune of s.
func SingleRune(op, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, Errorf(ErrInvalidLiteral, op, "%q must be a single character", s)
	}
	return r, nil
}

func isNameChar(c rune) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
