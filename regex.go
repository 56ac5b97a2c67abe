package superexpressive

import (
	"github.com/sirupsen/logrus"

	"github.com/coregx/superexpressive/engine"
	"github.com/coregx/superexpressive/literal"
	"github.com/coregx/superexpressive/prefilter"
	"github.com/coregx/superexpressive/syntax"
)

// Regex is a compiled expression.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := superexpressive.New().OneOrMore().Digit().MustCompile()
//	ok, err := re.MatchString("room 101")
//	// ok == true
type Regex struct {
	program   engine.Program
	engine    string
	pattern   string // Python dialect, as returned by String
	source    string // what the engine compiled
	flags     syntax.Flags
	names     []string
	prefilter prefilter.Prefilter
}

// Compile compiles the expression with the default engine configuration.
//
// Example:
//
//	re, err := superexpressive.New().
//	    NamedCapture("year").Exactly(4).Digit().End().
//	    Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
func (e Expression) Compile() (*Regex, error) {
	return e.CompileWithConfig(engine.DefaultConfig())
}

// MustCompile is like Compile but panics if the expression cannot be
// compiled. It is useful for expressions built at program start.
func (e Expression) MustCompile() *Regex {
	re, err := e.Compile()
	if err != nil {
		panic("superexpressive: Compile: " + err.Error())
	}
	return re
}

// CompileWithConfig compiles the expression for the regexp2 engine using
// config.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.MatchTimeout = 100 * time.Millisecond
//	re, err := se.CompileWithConfig(config)
func (e Expression) CompileWithConfig(config engine.Config) (*Regex, error) {
	return e.CompileWithEngine(engine.NewRegexp2(config), config)
}

// CompileWithEngine compiles the expression for eng. The pattern is rendered
// in the engine's dialect.
func (e Expression) CompileWithEngine(eng engine.Engine, config engine.Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e = e.init()
	source, err := e.Pattern(eng.Dialect())
	if err != nil {
		return nil, err
	}
	pattern, _ := e.Pattern(syntax.Python)

	groups := syntax.Groups(e.root)
	names := make([]string, len(groups)+1)
	for i, g := range groups {
		names[i+1] = g.Name
	}

	program, err := eng.Compile(engine.Pattern{
		Text:   source,
		Flags:  e.flags,
		Groups: names[1:],
	})
	if err != nil {
		return nil, err
	}

	re := &Regex{
		program: program,
		engine:  eng.Name(),
		pattern: pattern,
		source:  source,
		flags:   e.flags,
		names:   names,
	}
	if config.EnablePrefilter && !e.flags.Has(syntax.CaseInsensitive) {
		lc := literal.DefaultConfig()
		lc.MaxLiterals = config.MaxLiterals
		required := literal.New(lc).ExtractRequired(e.root)
		re.prefilter = prefilter.New(required, config.MinLiteralLen)
	}

	fields := logrus.Fields{
		"pattern": pattern,
		"engine":  re.engine,
		"source":  source,
	}
	if re.prefilter != nil {
		fields["prefilter"] = re.prefilter.String()
	}
	e.log().WithFields(fields).Debug("compiled")
	return re, nil
}

// rejects reports whether s cannot contain a match.
func (r *Regex) rejects(s string) bool {
	return r.prefilter != nil && r.prefilter.Find([]byte(s), 0) < 0
}

// MatchString reports whether s contains a match. An error is returned only
// if the engine gives up, e.g. on a match timeout.
func (r *Regex) MatchString(s string) (bool, error) {
	if r.rejects(s) {
		return false, nil
	}
	return r.program.MatchString(s)
}

// FindStringMatch returns the leftmost match in s, or nil if there is none.
func (r *Regex) FindStringMatch(s string) (*engine.Match, error) {
	if r.rejects(s) {
		return nil, nil
	}
	return r.program.FindStringMatch(s)
}

// FindAllStringMatch returns successive non-overlapping matches. If n >= 0,
// it returns at most n matches.
func (r *Regex) FindAllStringMatch(s string, n int) ([]*engine.Match, error) {
	if n == 0 || r.rejects(s) {
		return nil, nil
	}
	return r.program.FindAllStringMatch(s, n)
}

// FindString returns the text of the leftmost match, or "" if there is none.
func (r *Regex) FindString(s string) (string, error) {
	m, err := r.FindStringMatch(s)
	if err != nil || m == nil {
		return "", err
	}
	return m.Text(), nil
}

// FindAllString returns the text of successive non-overlapping matches. If
// n >= 0, it returns at most n matches. A nil slice means no match.
func (r *Regex) FindAllString(s string, n int) ([]string, error) {
	matches, err := r.FindAllStringMatch(s, n)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text()
	}
	return out, nil
}

// FindStringSubmatch returns the text of the leftmost match followed by the
// text of every capture group. A nil slice means no match.
func (r *Regex) FindStringSubmatch(s string) ([]string, error) {
	m, err := r.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, err
	}
	return append([]string{m.Text()}, m.Submatches()...), nil
}

// Exec runs the expression the way its flags ask for: with
// AllowMultipleMatches every match is returned, otherwise only the first.
// An empty result means no match.
func (r *Regex) Exec(s string) ([]*engine.Match, error) {
	if r.flags.Has(syntax.Global) {
		return r.FindAllStringMatch(s, -1)
	}
	m, err := r.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, err
	}
	return []*engine.Match{m}, nil
}

// String returns the pattern in Python re syntax.
func (r *Regex) String() string {
	return r.pattern
}

// Source returns the pattern as compiled by the engine.
func (r *Regex) Source() string {
	return r.source
}

// Flags returns the flags the expression was compiled with.
func (r *Regex) Flags() syntax.Flags {
	return r.flags
}

// NumSubexp returns the number of capture groups, named ones included.
func (r *Regex) NumSubexp() int {
	return len(r.names) - 1
}

// SubexpNames returns the names of the capture groups. names[0] stands for
// the whole match and, like numbered groups, is the empty string.
// The slice returned is shared and must not be modified.
//
// Example:
//
//	re := superexpressive.New().
//	    NamedCapture("year").Exactly(4).Digit().End().
//	    Char("-").
//	    Capture().Exactly(2).Digit().End().
//	    MustCompile()
//	names := re.SubexpNames()
//	// names = ["", "year", ""]
func (r *Regex) SubexpNames() []string {
	return r.names
}

// Match compiles the expression with the default configuration and runs it
// on input, see Regex.Exec. It searches: a match may start anywhere in input.
// Begin the expression with StartOfInput to only match at the start.
func (e Expression) Match(input string) ([]*engine.Match, error) {
	re, err := e.Compile()
	if err != nil {
		return nil, err
	}
	return re.Exec(input)
}
