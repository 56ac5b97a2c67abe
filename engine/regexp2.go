package engine

import (
	"github.com/dlclark/regexp2"

	"github.com/coregx/superexpressive/syntax"
)

// Regexp2 runs patterns with github.com/dlclark/regexp2, a backtracking
// engine with .NET syntax.
type Regexp2 struct {
	config Config
}

// NewRegexp2 returns a regexp2 backed engine. Only Config.MatchTimeout is
// used here.
func NewRegexp2(config Config) *Regexp2 {
	return &Regexp2{config: config}
}

// Name implements Engine.
func (e *Regexp2) Name() string { return "regexp2" }

// Dialect implements Engine.
func (e *Regexp2) Dialect() syntax.Dialect { return syntax.DotNet }

// Compile implements Engine.
//
// The Global flag has no regexp2 counterpart; callers decide between
// FindStringMatch and FindAllStringMatch. ASCII mode is expected to be
// expanded by the DotNet renderer and Locale is treated like Unicode.
func (e *Regexp2) Compile(p Pattern) (Program, error) {
	var opts regexp2.RegexOptions
	if p.Flags.Has(syntax.CaseInsensitive) {
		opts |= regexp2.IgnoreCase
	}
	if p.Flags.Has(syntax.Multiline) {
		opts |= regexp2.Multiline
	}
	if p.Flags.Has(syntax.DotAll) {
		opts |= regexp2.Singleline
	}

	re, err := regexp2.Compile(p.Text, opts)
	if err != nil {
		return nil, &CompileError{Engine: e.Name(), Pattern: p.Text, Err: err}
	}
	if e.config.MatchTimeout > 0 {
		re.MatchTimeout = e.config.MatchTimeout
	}

	groups := make([]string, len(p.Groups))
	copy(groups, p.Groups)
	return &regexp2Program{re: re, groups: groups}, nil
}

type regexp2Program struct {
	re     *regexp2.Regexp
	groups []string
}

func (p *regexp2Program) MatchString(s string) (bool, error) {
	return p.re.MatchString(s)
}

func (p *regexp2Program) FindStringMatch(s string) (*Match, error) {
	m, err := p.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, err
	}
	return p.convert(m), nil
}

func (p *regexp2Program) FindAllStringMatch(s string, n int) ([]*Match, error) {
	var out []*Match
	m, err := p.re.FindStringMatch(s)
	for m != nil && (n < 0 || len(out) < n) {
		out = append(out, p.convert(m))
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// convert maps a regexp2 match to left-to-right group numbering. Numbered
// groups are rendered with their explicit number; named groups are looked up
// by name since .NET numbers them after all unnamed ones.
func (p *regexp2Program) convert(m *regexp2.Match) *Match {
	out := &Match{Groups: make([]Group, len(p.groups)+1)}
	out.Groups[0] = Group{
		Text:    m.String(),
		Index:   m.Index,
		Length:  m.Length,
		Matched: true,
	}
	for i, name := range p.groups {
		var g *regexp2.Group
		if name == "" {
			g = m.GroupByNumber(i + 1)
		} else {
			g = m.GroupByName(name)
		}
		out.Groups[i+1] = convertGroup(name, g)
	}
	return out
}

func convertGroup(name string, g *regexp2.Group) Group {
	if g == nil || len(g.Captures) == 0 {
		return Group{Name: name, Index: -1}
	}
	return Group{
		Name:    name,
		Text:    g.String(),
		Index:   g.Index,
		Length:  g.Length,
		Matched: true,
	}
}
