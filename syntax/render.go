package syntax

import (
	"strconv"
	"strings"
)

// Dialect selects the textual syntax a tree is rendered in.
type Dialect uint8

const (
	// Python renders Python re syntax: (?P<name>...), \g<name>, \Z, \N{NAME}.
	Python Dialect = iota

	// DotNet renders .NET syntax as understood by github.com/dlclark/regexp2:
	// (?<name>...), \k<name>, \z. Named and astral unicode escapes become
	// literal runes, and ASCII mode expands \d, \w and \s into explicit
	// classes because the engine has no ASCII switch for them.
	DotNet
)

func (d Dialect) String() string {
	switch d {
	case Python:
		return "python"
	case DotNet:
		return "dotnet"
	}
	return "dialect(" + strconv.Itoa(int(d)) + ")"
}

// specialChars are escaped wherever literal text is rendered, inside or
// outside a character class.
const specialChars = `\.^$|?*+()[]{}-`

// Escape returns s with every metacharacter backslash-escaped.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(specialChars, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(specialChars, s[i]) >= 0 {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// Render returns the pattern text for the tree rooted at n.
// flags only influence the DotNet dialect, where ASCII mode changes how the
// shorthand classes are written.
func Render(n *Node, d Dialect, flags Flags) string {
	p := printer{dialect: d, ascii: d == DotNet && flags.Has(ASCII)}
	if d == DotNet {
		p.groups = Groups(n)
		p.numbers = make(map[*Node]int, len(p.groups))
		for i, g := range p.groups {
			p.numbers[g] = i + 1
		}
	}
	p.node(n)
	return p.sb.String()
}

// String renders n in the Python dialect.
func (n *Node) String() string {
	return Render(n, Python, DefaultFlags)
}

type printer struct {
	sb      strings.Builder
	dialect Dialect
	ascii   bool

	// backref is set while the output ends in a numbered backreference.
	backref bool

	// DotNet only: capture groups in numbering order and their numbers.
	groups  []*Node
	numbers map[*Node]int
}

var fixedText = map[Op]string{
	OpStartOfInput:    `^`,
	OpEndOfInput:      `$`,
	OpAnyChar:         `.`,
	OpWhitespace:      `\s`,
	OpNonWhitespace:   `\S`,
	OpDigit:           `\d`,
	OpNonDigit:        `\D`,
	OpWord:            `\w`,
	OpNonWord:         `\W`,
	OpWordBoundary:    `\b`,
	OpNonWordBoundary: `\B`,
	OpNewline:         `\n`,
	OpCarriageReturn:  `\r`,
	OpTab:             `\t`,
	OpNullByte:        `\x00`,
	OpBell:            `\a`,
	OpBackspace:       `[\b]`,
	OpFormFeed:        `\f`,
	OpVerticalTab:     `\v`,
	OpBackslash:       `\\`,
	OpStartOfString:   `\A`,
	OpEndOfString:     `\Z`,
}

var asciiClasses = map[Op]string{
	OpDigit:         `[0-9]`,
	OpNonDigit:      `[^0-9]`,
	OpWord:          `[a-zA-Z0-9_]`,
	OpNonWord:       `[^a-zA-Z0-9_]`,
	OpWhitespace:    `[ \t\n\r\f\v]`,
	OpNonWhitespace: `[^ \t\n\r\f\v]`,
}

var quantifierSymbols = map[Op]string{
	OpZeroOrMore:     `*`,
	OpZeroOrMoreLazy: `*?`,
	OpOneOrMore:      `+`,
	OpOneOrMoreLazy:  `+?`,
	OpOptional:       `?`,
}

func (p *printer) node(n *Node) {
	if n == nil {
		return
	}
	switch n.Op {
	case OpRoot, OpSubexpression:
		p.seq(n.Sub)
	case OpNoop:
	case OpEndOfString:
		if p.dialect == DotNet {
			p.write(`\z`)
			return
		}
		p.write(`\Z`)
	case OpHex:
		p.write(`\x`)
		p.write(n.Text)
	case OpUnicode:
		p.unicode(n)
	case OpAnyOfChars:
		p.writeByte('[')
		p.write(Escape(n.Text))
		p.writeByte(']')
	case OpAnythingButChars:
		p.write(`[^`)
		p.write(Escape(n.Text))
		p.writeByte(']')
	case OpAnythingButString:
		p.write(`(?:`)
		for _, c := range n.Text {
			p.write(`[^`)
			p.write(Escape(string(c)))
			p.writeByte(']')
		}
		p.writeByte(')')
	case OpAnythingButRange:
		p.write(`[^`)
		p.rangeText(n)
		p.writeByte(']')
	case OpRange:
		p.writeByte('[')
		p.rangeText(n)
		p.writeByte(']')
	case OpChar:
		p.write(Escape(string(n.Lo)))
	case OpString:
		p.write(Escape(n.Text))
	case OpBackreference:
		if p.dialect == DotNet && n.Index >= 1 && n.Index <= len(p.groups) {
			if g := p.groups[n.Index-1]; g.Op == OpNamedCapture {
				p.write(`\k<` + g.Name + `>`)
				return
			}
		}
		p.writeByte('\\')
		p.write(strconv.Itoa(n.Index))
		p.backref = true
	case OpNamedBackreference:
		if p.dialect == DotNet {
			p.write(`\k<`)
		} else {
			p.write(`\g<`)
		}
		p.write(n.Name)
		p.writeByte('>')
	case OpCapture:
		// .NET numbers unnamed groups before named ones; an explicit number
		// keeps the left-to-right numbering backreferences rely on.
		if num, ok := p.numbers[n]; ok {
			p.wrap(`(?<`+strconv.Itoa(num)+`>`, n.Sub)
			return
		}
		p.wrap(`(`, n.Sub)
	case OpNamedCapture:
		if p.dialect == DotNet {
			p.wrap(`(?<`+n.Name+`>`, n.Sub)
		} else {
			p.wrap(`(?P<`+n.Name+`>`, n.Sub)
		}
	case OpGroup:
		p.wrap(`(?:`, n.Sub)
	case OpAssertAhead:
		p.wrap(`(?=`, n.Sub)
	case OpAssertNotAhead:
		p.wrap(`(?!`, n.Sub)
	case OpAnyOf:
		p.anyOf(n)
	default:
		if n.Op.IsQuantifier() {
			p.quantifier(n)
			return
		}
		if p.ascii {
			if s, ok := asciiClasses[n.Op]; ok {
				p.write(s)
				return
			}
		}
		p.write(fixedText[n.Op])
	}
}

func (p *printer) seq(children []*Node) {
	for _, c := range children {
		p.node(c)
	}
}

// write appends s to the output. Text starting with a digit right after a
// numbered backreference is separated by an empty group so the digit does
// not extend the group number; empty text leaves the output untouched.
func (p *printer) write(s string) {
	if s == "" {
		return
	}
	if p.backref {
		p.backref = false
		if s[0] >= '0' && s[0] <= '9' {
			p.sb.WriteString(`(?:)`)
		}
	}
	p.sb.WriteString(s)
}

func (p *printer) writeByte(c byte) {
	p.write(string(c))
}

func (p *printer) wrap(open string, children []*Node) {
	p.write(open)
	p.seq(children)
	p.writeByte(')')
}

// sub renders n on its own and returns the text.
func (p *printer) sub(n *Node) string {
	q := printer{dialect: p.dialect, ascii: p.ascii, groups: p.groups, numbers: p.numbers}
	q.node(n)
	return q.sb.String()
}

func (p *printer) rangeText(n *Node) {
	p.write(Escape(string(n.Lo)))
	p.writeByte('-')
	p.write(Escape(string(n.Hi)))
}

func (p *printer) unicode(n *Node) {
	kind, r, _ := unicodeForm(n.Text)
	if p.dialect == DotNet {
		if kind == unicodeShort || r <= 0xFFFF {
			p.write(`\u`)
			p.write(leftPad(strconv.FormatUint(uint64(r), 16), 4))
			return
		}
		p.write(Escape(string(r)))
		return
	}
	switch kind {
	case unicodeNamed:
		p.write(`\N{`)
		p.write(n.Text)
		p.writeByte('}')
	case unicodeShort:
		p.write(`\u`)
		p.write(n.Text)
	case unicodeLong:
		p.write(`\U`)
		p.write(leftPad(n.Text, 8))
	}
}

// anyOf renders an alternation. Single characters, ranges, explicit character
// sets and backspaces among the direct children are fused into one class
// appended as the last alternative; with no other alternatives the class is
// rendered alone.
func (p *printer) anyOf(n *Node) {
	var class strings.Builder
	alts := make([]string, 0, len(n.Sub))
	for _, c := range n.Sub {
		switch c.Op {
		case OpChar:
			class.WriteString(Escape(string(c.Lo)))
		case OpAnyOfChars:
			class.WriteString(Escape(c.Text))
		case OpRange:
			class.WriteString(Escape(string(c.Lo)))
			class.WriteByte('-')
			class.WriteString(Escape(string(c.Hi)))
		case OpBackspace:
			class.WriteString(`\b`)
		default:
			alts = append(alts, p.sub(c))
		}
	}
	if class.Len() > 0 {
		fused := "[" + class.String() + "]"
		if len(alts) == 0 {
			p.write(fused)
			return
		}
		alts = append(alts, fused)
	}
	p.write(`(?:`)
	p.write(strings.Join(alts, "|"))
	p.writeByte(')')
}

func (p *printer) quantifier(n *Node) {
	child := n.Child()
	if child != nil && child.Op.RequiresGroup() {
		p.write(`(?:`)
		p.node(child)
		p.writeByte(')')
	} else {
		p.node(child)
	}

	switch n.Op {
	case OpExactly:
		p.write("{" + strconv.Itoa(n.Min) + "}")
	case OpAtLeast:
		p.write("{" + strconv.Itoa(n.Min) + ",}")
	case OpBetween:
		p.write("{" + strconv.Itoa(n.Min) + "," + strconv.Itoa(n.Max) + "}")
	case OpBetweenLazy:
		p.write("{" + strconv.Itoa(n.Min) + "," + strconv.Itoa(n.Max) + "}?")
	default:
		p.write(quantifierSymbols[n.Op])
	}
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
