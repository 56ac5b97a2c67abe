package superexpressive

import (
	"github.com/coregx/superexpressive/syntax"
)

func (e Expression) fixed(op syntax.Op) Expression {
	return e.push(op.String(), syntax.New(op))
}

// AnyChar matches any character except newline (unless SingleLine is set): `.`
func (e Expression) AnyChar() Expression { return e.fixed(syntax.OpAnyChar) }

// WhitespaceChar matches a whitespace character: `\s`
func (e Expression) WhitespaceChar() Expression { return e.fixed(syntax.OpWhitespace) }

// NonWhitespaceChar matches anything but whitespace: `\S`
func (e Expression) NonWhitespaceChar() Expression { return e.fixed(syntax.OpNonWhitespace) }

// Digit matches a digit: `\d`
func (e Expression) Digit() Expression { return e.fixed(syntax.OpDigit) }

// NonDigit matches anything but a digit: `\D`
func (e Expression) NonDigit() Expression { return e.fixed(syntax.OpNonDigit) }

// Word matches a word character: `\w`
func (e Expression) Word() Expression { return e.fixed(syntax.OpWord) }

// NonWord matches anything but a word character: `\W`
func (e Expression) NonWord() Expression { return e.fixed(syntax.OpNonWord) }

// WordBoundary matches at a word boundary: `\b`
func (e Expression) WordBoundary() Expression { return e.fixed(syntax.OpWordBoundary) }

// NonWordBoundary matches away from word boundaries: `\B`
func (e Expression) NonWordBoundary() Expression { return e.fixed(syntax.OpNonWordBoundary) }

// Newline matches `\n`.
func (e Expression) Newline() Expression { return e.fixed(syntax.OpNewline) }

// CarriageReturn matches `\r`.
func (e Expression) CarriageReturn() Expression { return e.fixed(syntax.OpCarriageReturn) }

// Tab matches `\t`.
func (e Expression) Tab() Expression { return e.fixed(syntax.OpTab) }

// NullByte matches `\x00`.
func (e Expression) NullByte() Expression { return e.fixed(syntax.OpNullByte) }

// ASCIIBell matches `\a`.
func (e Expression) ASCIIBell() Expression { return e.fixed(syntax.OpBell) }

// ASCIIFormfeed matches `\f`.
func (e Expression) ASCIIFormfeed() Expression { return e.fixed(syntax.OpFormFeed) }

// ASCIIVerticalTab matches `\v`.
func (e Expression) ASCIIVerticalTab() Expression { return e.fixed(syntax.OpVerticalTab) }

// Backslash matches a literal backslash.
func (e Expression) Backslash() Expression { return e.fixed(syntax.OpBackslash) }

// StartOfString matches only at the very start of the input, regardless of
// LineByLine: `\A`
func (e Expression) StartOfString() Expression { return e.fixed(syntax.OpStartOfString) }

// EndOfString matches only at the very end of the input, regardless of
// LineByLine: `\Z`
func (e Expression) EndOfString() Expression { return e.fixed(syntax.OpEndOfString) }

// ASCIIBackspace matches a backspace character. Outside a class `\b` means a
// word boundary, so it may only be used directly inside AnyOf, where it joins
// the fused character class.
func (e Expression) ASCIIBackspace() Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	if e.current().Op != syntax.OpAnyOf {
		return e.fail(syntax.Errorf(syntax.ErrMisplacedElement, "ascii_backspace",
			"can only use ASCII backspace within an any_of group"))
	}
	return e.fixed(syntax.OpBackspace)
}

// HexChar matches the character with the two-digit hex code: `\xHH`
func (e Expression) HexChar(code string) Expression {
	n, err := syntax.Hex(code)
	return e.leaf("hex_char", n, err)
}

// UnicodeChar matches a character given by its Unicode name (`\N{NAME}`), by
// four hex digits (`\uXXXX`) or by five to eight hex digits (`\UXXXXXXXX`).
func (e Expression) UnicodeChar(code string) Expression {
	n, err := syntax.UnicodeChar(code)
	return e.leaf("unicode_char", n, err)
}

// AnyOfChars matches any one of the characters in chars.
func (e Expression) AnyOfChars(chars string) Expression {
	n, err := syntax.Chars(syntax.OpAnyOfChars, chars)
	return e.leaf("any_of_chars", n, err)
}

// AnythingButChars matches any character not in chars.
func (e Expression) AnythingButChars(chars string) Expression {
	n, err := syntax.Chars(syntax.OpAnythingButChars, chars)
	return e.leaf("anything_but_chars", n, err)
}

// AnythingButString matches len(s) characters, each differing from the
// character of s at the same position.
func (e Expression) AnythingButString(s string) Expression {
	n, err := syntax.Chars(syntax.OpAnythingButString, s)
	return e.leaf("anything_but_string", n, err)
}

// AnythingButRange matches any character outside low-high. Both bounds must
// be single characters and low must sort before high.
func (e Expression) AnythingButRange(low, high string) Expression {
	return e.rangeOf(syntax.OpAnythingButRange, low, high)
}

// AnythingButRangeCode is AnythingButRange with code point bounds.
func (e Expression) AnythingButRangeCode(low, high rune) Expression {
	n, err := syntax.Range(syntax.OpAnythingButRange, low, high)
	return e.leaf("anything_but_range", n, err)
}

// Range matches any character in low-high. Both bounds must be single
// characters and low must sort before high.
func (e Expression) Range(low, high string) Expression {
	return e.rangeOf(syntax.OpRange, low, high)
}

// RangeCode is Range with code point bounds.
func (e Expression) RangeCode(low, high rune) Expression {
	n, err := syntax.Range(syntax.OpRange, low, high)
	return e.leaf("range", n, err)
}

func (e Expression) rangeOf(op syntax.Op, low, high string) Expression {
	if e.err != nil {
		return e
	}
	lo, err := syntax.SingleRune(op.String(), low)
	if err != nil {
		return e.init().fail(err)
	}
	hi, err := syntax.SingleRune(op.String(), high)
	if err != nil {
		return e.init().fail(err)
	}
	n, err := syntax.Range(op, lo, hi)
	return e.leaf(op.String(), n, err)
}

// Literal matches the string s literally.
func (e Expression) Literal(s string) Expression {
	n, err := syntax.String(s)
	return e.leaf("string", n, err)
}

// Char matches the single character c literally.
func (e Expression) Char(c string) Expression {
	n, err := syntax.Char(c)
	return e.leaf("char", n, err)
}

// CharCode matches the code point r literally.
func (e Expression) CharCode(r rune) Expression {
	n, err := syntax.CharCode(r)
	return e.leaf("char", n, err)
}
