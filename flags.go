package superexpressive

import (
	"github.com/sirupsen/logrus"

	"github.com/coregx/superexpressive/syntax"
)

func (e Expression) withFlags(op string, f func(syntax.Flags) syntax.Flags) Expression {
	if e.err != nil {
		return e
	}
	e = e.init()
	e.flags = f(e.flags)
	e.log().WithFields(logrus.Fields{"op": op, "flags": e.flags.String()}).Debug("flags")
	return e
}

// AllowMultipleMatches makes Regex.Exec report every match instead of the
// first.
func (e Expression) AllowMultipleMatches() Expression {
	return e.withFlags("allow_multiple_matches", func(f syntax.Flags) syntax.Flags { return f.With(syntax.Global) })
}

// LineByLine makes StartOfInput and EndOfInput match at line boundaries.
func (e Expression) LineByLine() Expression {
	return e.withFlags("line_by_line", func(f syntax.Flags) syntax.Flags { return f.With(syntax.Multiline) })
}

// CaseInsensitive matches letters regardless of case.
func (e Expression) CaseInsensitive() Expression {
	return e.withFlags("case_insensitive", func(f syntax.Flags) syntax.Flags { return f.With(syntax.CaseInsensitive) })
}

// SingleLine lets AnyChar match newlines too.
func (e Expression) SingleLine() Expression {
	return e.withFlags("single_line", func(f syntax.Flags) syntax.Flags { return f.With(syntax.DotAll) })
}

// Unicode selects Unicode character classes, the default.
func (e Expression) Unicode() Expression {
	return e.withFlags("unicode", func(f syntax.Flags) syntax.Flags { return f.WithMode(syntax.Unicode) })
}

// ASCII restricts Digit, Word, WhitespaceChar and their negations to ASCII.
func (e Expression) ASCII() Expression {
	return e.withFlags("ascii", func(f syntax.Flags) syntax.Flags { return f.WithMode(syntax.ASCII) })
}

// Locale selects locale dependent word characters. Engines without locale
// support treat it like Unicode.
func (e Expression) Locale() Expression {
	return e.withFlags("locale", func(f syntax.Flags) syntax.Flags { return f.WithMode(syntax.Locale) })
}
