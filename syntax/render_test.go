package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tree builds a node with the given children, failing the test on error.
func tree(t *testing.T, n *Node, children ...*Node) *Node {
	t.Helper()
	for _, c := range children {
		var err error
		n, err = n.AddChild(c)
		require.NoError(t, err)
	}
	return n
}

func must(t *testing.T) func(*Node, error) *Node {
	return func(n *Node, err error) *Node {
		t.Helper()
		require.NoError(t, err)
		return n
	}
}

func TestEscape(t *testing.T) {
	tests := map[string]string{
		"hello":       "hello",
		"hello.world": `hello\.world`,
		`a\b`:         `a\\b`,
		"(x|y)*+?":    `\(x\|y\)\*\+\?`,
		"[a-z]{1}^$":  `\[a\-z\]\{1\}\^\$`,
		"#! ok":       "#! ok",
		"ünïcödé":     "ünïcödé",
		"":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Escape(in), in)
	}
}

func TestRenderFixedLeaves(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpAnyChar, `.`},
		{OpWhitespace, `\s`},
		{OpNonWhitespace, `\S`},
		{OpDigit, `\d`},
		{OpNonDigit, `\D`},
		{OpWord, `\w`},
		{OpNonWord, `\W`},
		{OpWordBoundary, `\b`},
		{OpNonWordBoundary, `\B`},
		{OpNewline, `\n`},
		{OpCarriageReturn, `\r`},
		{OpTab, `\t`},
		{OpNullByte, `\x00`},
		{OpBell, `\a`},
		{OpFormFeed, `\f`},
		{OpVerticalTab, `\v`},
		{OpBackslash, `\\`},
		{OpStartOfString, `\A`},
		{OpEndOfString, `\Z`},
		{OpStartOfInput, `^`},
		{OpEndOfInput, `$`},
		{OpNoop, ``},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.op).String())
		})
	}
}

func TestRenderPayloadLeaves(t *testing.T) {
	m := must(t)
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"any_of_chars", m(Chars(OpAnyOfChars, "aeiou.-")), `[aeiou\.\-]`},
		{"anything_but_chars", m(Chars(OpAnythingButChars, "aeiou.-")), `[^aeiou\.\-]`},
		{"anything_but_string", m(Chars(OpAnythingButString, "a.c")), `(?:[^a][^\.][^c])`},
		{"anything_but_range", m(Range(OpAnythingButRange, '0', '9')), `[^0-9]`},
		{"range", m(Range(OpRange, 'a', 'z')), `[a-z]`},
		{"string", m(String("hello")), `hello`},
		{"string_one_char", m(String("h")), `h`},
		{"char_escaped", m(Char(".")), `\.`},
		{"hex", m(Hex("7f")), `\x7f`},
		{"unicode_short", m(UnicodeChar("00e9")), `\u00e9`},
		{"unicode_long", m(UnicodeChar("0001F600")), `\U0001F600`},
		{"unicode_long_padded", m(UnicodeChar("1F600")), `\U0001F600`},
		{"unicode_named", m(UnicodeChar("LATIN SMALL LETTER A")), `\N{LATIN SMALL LETTER A}`},
		{"backreference", m(Backreference(3)), `\3`},
		{"named_backreference", m(NamedBackreference("x")), `\g<x>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestRenderQuantifiers(t *testing.T) {
	m := must(t)
	word := func() *Node { return New(OpWord) }
	tests := []struct {
		q    *Node
		want string
	}{
		{New(OpOptional), `\w?`},
		{New(OpZeroOrMore), `\w*`},
		{New(OpZeroOrMoreLazy), `\w*?`},
		{New(OpOneOrMore), `\w+`},
		{New(OpOneOrMoreLazy), `\w+?`},
		{m(Repeat(OpExactly, 4)), `\w{4}`},
		{m(Repeat(OpAtLeast, 4)), `\w{4,}`},
		{m(Between(4, 7, false)), `\w{4,7}`},
		{m(Between(4, 7, true)), `\w{4,7}?`},
	}
	for _, tt := range tests {
		t.Run(tt.q.Op.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tree(t, tt.q, word()).String())
		})
	}
}

func TestRenderQuantifiedGrouping(t *testing.T) {
	m := must(t)

	// Multi-character literals are grouped, single leaves are not.
	assert.Equal(t, `(?:hello)+`, tree(t, New(OpOneOrMore), m(String("hello"))).String())
	assert.Equal(t, `h+`, tree(t, New(OpOneOrMore), m(Char("h"))).String())

	sub := tree(t, New(OpSubexpression), m(String("hello")), New(OpAnyChar), m(String("world")))
	assert.Equal(t, `(?:hello.world)+`, tree(t, New(OpOneOrMore), sub).String())

	capture := tree(t, New(OpCapture), New(OpDigit))
	assert.Equal(t, `(\d)?`, tree(t, New(OpOptional), capture).String())

	assert.Equal(t, `(?:){2}`, tree(t, m(Repeat(OpExactly, 2)), New(OpNoop)).String())
}

func TestRenderContainers(t *testing.T) {
	m := must(t)
	body := func() []*Node {
		return []*Node{m(String("hello ")), New(OpWord), m(Char("!"))}
	}
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"capture", tree(t, New(OpCapture), body()...), `(hello \w!)`},
		{"named_capture", tree(t, m(NamedCapture("this_is_the_name")), body()...), `(?P<this_is_the_name>hello \w!)`},
		{"group", tree(t, New(OpGroup), body()...), `(?:hello \w!)`},
		{"assert_ahead", tree(t, New(OpAssertAhead), m(Range(OpRange, 'a', 'f'))), `(?=[a-f])`},
		{"assert_not_ahead", tree(t, New(OpAssertNotAhead), m(Range(OpRange, 'a', 'f'))), `(?![a-f])`},
		{"empty_group", New(OpGroup), `(?:)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestRenderAnyOfFusion(t *testing.T) {
	m := must(t)
	tests := []struct {
		name     string
		children []*Node
		want     string
	}{
		{
			"mixed",
			[]*Node{m(String("hello")), New(OpDigit), New(OpWord), m(Char(".")), m(Char("#"))},
			`(?:hello|\d|\w|[\.#])`,
		},
		{
			"only_fusable",
			[]*Node{m(Range(OpRange, 'a', 'z')), m(Range(OpRange, 'A', 'Z')), m(Range(OpRange, '0', '9')), m(Char(".")), m(Char("#"))},
			`[a-zA-Z0-9\.#]`,
		},
		{
			"fused_last",
			[]*Node{m(Range(OpRange, 'a', 'z')), m(String("XXX")), m(Chars(OpAnyOfChars, "0-9")), m(Char("#"))},
			`(?:XXX|[a-z0\-9#])`,
		},
		{
			"no_fusable",
			[]*Node{m(String("cat")), m(String("dog"))},
			`(?:cat|dog)`,
		},
		{
			"backspace",
			[]*Node{New(OpBackspace), m(Char("x"))},
			`[\bx]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tree(t, New(OpAnyOf), tt.children...).String())
		})
	}
}

func TestRenderBackreferenceDigitSeparator(t *testing.T) {
	m := must(t)
	root := tree(t, New(OpRoot),
		tree(t, New(OpCapture), New(OpDigit)),
		m(Backreference(1)),
		m(String("0")),
		m(Backreference(1)),
		m(Char("x")),
	)
	assert.Equal(t, `(\d)\1(?:)0\1x`, root.String())
}

func TestRenderBackreferenceSeparatorAcrossNodes(t *testing.T) {
	m := must(t)
	capture := tree(t, New(OpCapture), New(OpDigit))

	tests := []struct {
		name string
		root *Node
		want string
	}{
		{
			"subexpression_ends_in_backreference",
			tree(t, New(OpRoot),
				tree(t, New(OpSubexpression), capture, m(Backreference(1))),
				m(Char("5")),
			),
			`(\d)\1(?:)5`,
		},
		{
			"digit_starts_subexpression",
			tree(t, New(OpRoot),
				capture,
				m(Backreference(1)),
				tree(t, New(OpSubexpression), m(String("56"))),
			),
			`(\d)\1(?:)56`,
		},
		{
			"noop_between",
			tree(t, New(OpRoot),
				capture,
				m(Backreference(1)),
				New(OpNoop),
				tree(t, New(OpSubexpression), New(OpNoop)),
				m(Char("5")),
			),
			`(\d)\1(?:)5`,
		},
		{
			"non_digit_clears",
			tree(t, New(OpRoot),
				capture,
				m(Backreference(1)),
				New(OpNoop),
				m(Char("x")),
				m(Char("5")),
			),
			`(\d)\1x5`,
		},
		{
			"quantified_backreference",
			tree(t, New(OpRoot),
				capture,
				tree(t, New(OpOptional), m(Backreference(1))),
				m(Char("5")),
			),
			`(\d)\1?5`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.root.String())
			assert.Equal(t, "(?<1>"+tt.want[1:], Render(tt.root, DotNet, DefaultFlags))
		})
	}
}

func TestRenderDotNet(t *testing.T) {
	m := must(t)
	root := tree(t, New(OpRoot),
		tree(t, New(OpCapture), New(OpDigit)),
		tree(t, m(NamedCapture("name")), New(OpWord)),
		tree(t, New(OpCapture), New(OpAnyChar)),
		m(Backreference(2)),
		m(Backreference(3)),
		m(NamedBackreference("name")),
		New(OpEndOfString),
		m(UnicodeChar("0001F600")),
		m(UnicodeChar("LATIN SMALL LETTER A")),
		m(UnicodeChar("00e9")),
	)
	assert.Equal(t, `(\d)(?P<name>\w)(.)\2\3\g<name>\Z\U0001F600\N{LATIN SMALL LETTER A}\u00e9`,
		Render(root, Python, DefaultFlags))
	assert.Equal(t, `(?<1>\d)(?<name>\w)(?<3>.)\k<name>\3\k<name>\z😀\u0061\u00e9`,
		Render(root, DotNet, DefaultFlags))
}

func TestRenderDotNetASCII(t *testing.T) {
	root := tree(t, New(OpRoot), New(OpDigit), New(OpWord), New(OpNonWhitespace), New(OpWordBoundary))
	assert.Equal(t, `\d\w\S\b`, Render(root, DotNet, DefaultFlags))
	assert.Equal(t, `[0-9][a-zA-Z0-9_][^ \t\n\r\f\v]\b`, Render(root, DotNet, DefaultFlags.WithMode(ASCII)))
	// Python handles ASCII mode with a compile flag.
	assert.Equal(t, `\d\w\S\b`, Render(root, Python, DefaultFlags.WithMode(ASCII)))
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "python", Python.String())
	assert.Equal(t, "dotnet", DotNet.String())
	assert.Equal(t, "dialect(9)", Dialect(9).String())
}
