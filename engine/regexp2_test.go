package engine

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/superexpressive/syntax"
)

func compile(t *testing.T, text string, flags syntax.Flags, groups ...string) Program {
	t.Helper()
	p, err := NewRegexp2(DefaultConfig()).Compile(Pattern{Text: text, Flags: flags, Groups: groups})
	require.NoError(t, err)
	return p
}

func TestRegexp2Engine(t *testing.T) {
	e := NewRegexp2(DefaultConfig())
	assert.Equal(t, "regexp2", e.Name())
	assert.Equal(t, syntax.DotNet, e.Dialect())
}

func TestRegexp2CompileError(t *testing.T) {
	_, err := NewRegexp2(DefaultConfig()).Compile(Pattern{Text: `(unclosed`})
	require.Error(t, err)

	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "regexp2", ce.Engine)
	assert.Equal(t, `(unclosed`, ce.Pattern)
	assert.NotNil(t, errors.Unwrap(err))
	assert.True(t, strings.HasPrefix(err.Error(), `regexp2: compiling pattern "(unclosed": `))
}

func TestRegexp2Flags(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		flags syntax.Flags
		input string
		want  bool
	}{
		{"case_sensitive", `abc`, syntax.DefaultFlags, "ABC", false},
		{"case_insensitive", `abc`, syntax.DefaultFlags.With(syntax.CaseInsensitive), "ABC", true},
		{"single_line_off", `a.b`, syntax.DefaultFlags, "a\nb", false},
		{"single_line_on", `a.b`, syntax.DefaultFlags.With(syntax.DotAll), "a\nb", true},
		{"multiline_off", `^b$`, syntax.DefaultFlags, "a\nb\nc", false},
		{"multiline_on", `^b$`, syntax.DefaultFlags.With(syntax.Multiline), "a\nb\nc", true},
		{"global_ignored", `b`, syntax.DefaultFlags.With(syntax.Global), "abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compile(t, tt.text, tt.flags).MatchString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegexp2GroupNumbering(t *testing.T) {
	// .NET would number (?<b>) before (?<a>) and both after the unnamed
	// group; the match is reported left to right.
	p := compile(t, `(?<b>x)(?<2>y)(?<a>z)`, syntax.DefaultFlags, "b", "", "a")
	m, err := p.FindStringMatch("--xyz--")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "xyz", m.Text())
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, 3, m.Length())
	assert.Equal(t, []string{"x", "y", "z"}, m.Submatches())

	g, ok := m.Group(1)
	require.True(t, ok)
	assert.Equal(t, Group{Name: "b", Text: "x", Index: 2, Length: 1, Matched: true}, g)
	g, ok = m.Named("a")
	require.True(t, ok)
	assert.Equal(t, 4, g.Index)

	_, ok = m.Group(4)
	assert.False(t, ok)
	_, ok = m.Group(-1)
	assert.False(t, ok)
	_, ok = m.Named("missing")
	assert.False(t, ok)
}

func TestRegexp2NoMatch(t *testing.T) {
	p := compile(t, `\d`, syntax.DefaultFlags)
	m, err := p.FindStringMatch("abc")
	require.NoError(t, err)
	assert.Nil(t, m)

	all, err := p.FindAllStringMatch("abc", -1)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRegexp2FindAll(t *testing.T) {
	p := compile(t, `(?<1>\w)\d`, syntax.DefaultFlags, "")
	all, err := p.FindAllStringMatch("a1 b2 c3 d4", -1)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "c3", all[2].Text())
	assert.Equal(t, 6, all[2].Index())
	assert.Equal(t, []string{"c"}, all[2].Submatches())

	two, err := p.FindAllStringMatch("a1 b2 c3 d4", 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestRegexp2RunePositions(t *testing.T) {
	p := compile(t, `ü(?<1>b)`, syntax.DefaultFlags, "")
	m, err := p.FindStringMatch("ääüb")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 2, m.Index())
	g, _ := m.Group(1)
	assert.Equal(t, 3, g.Index)
}

func TestRegexp2MatchTimeout(t *testing.T) {
	config := DefaultConfig()
	config.MatchTimeout = 50 * time.Millisecond
	p, err := NewRegexp2(config).Compile(Pattern{Text: `^(?:a+)+$`})
	require.NoError(t, err)

	assert.Equal(t, 50*time.Millisecond, p.(*regexp2Program).re.MatchTimeout)

	_, err = p.MatchString(strings.Repeat("a", 40) + "!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestRegexp2DefaultTimeout(t *testing.T) {
	p := compile(t, `a`, syntax.DefaultFlags)
	assert.Equal(t, regexp2.DefaultMatchTimeout, p.(*regexp2Program).re.MatchTimeout)
}

func TestRegexp2GroupsCopied(t *testing.T) {
	groups := []string{"name"}
	p, err := NewRegexp2(DefaultConfig()).Compile(Pattern{Text: `(?<name>a)`, Groups: groups})
	require.NoError(t, err)
	groups[0] = "changed"

	m, err := p.FindStringMatch("a")
	require.NoError(t, err)
	g, ok := m.Named("name")
	require.True(t, ok)
	assert.Equal(t, "a", g.Text)
}
