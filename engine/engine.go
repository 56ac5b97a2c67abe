// Package engine runs rendered patterns.
//
// Expressions never match text themselves; they render to a pattern and hand
// it to an Engine. The default engine is backed by github.com/dlclark/regexp2,
// which supports the backreferences and lookaheads Go's regexp package lacks.
package engine

import (
	"fmt"
	"time"

	"github.com/coregx/superexpressive/syntax"
)

// Pattern is a rendered expression ready for compilation.
type Pattern struct {
	// Text is the pattern in the engine's dialect.
	Text string

	// Flags are the expression's flags.
	Flags syntax.Flags

	// Groups lists the capture groups in numbering order: the name of a
	// named group, "" for a numbered one. Groups[0] is group 1.
	Groups []string
}

// Engine compiles patterns rendered in its dialect.
type Engine interface {
	// Name identifies the engine, for logging.
	Name() string

	// Dialect is the syntax patterns must be rendered in.
	Dialect() syntax.Dialect

	// Compile prepares p for matching.
	Compile(p Pattern) (Program, error)
}

// Program is a compiled pattern. Programs are safe for concurrent use.
//
// Matching fails only when the engine gives up, e.g. on a match timeout.
type Program interface {
	// MatchString reports whether s contains a match.
	MatchString(s string) (bool, error)

	// FindStringMatch returns the leftmost match in s, or nil.
	FindStringMatch(s string) (*Match, error)

	// FindAllStringMatch returns successive non-overlapping matches, at most
	// n of them unless n is negative.
	FindAllStringMatch(s string, n int) ([]*Match, error)
}

// Group is one capture group of a match. Positions count characters
// (runes), not bytes.
type Group struct {
	Name    string // "" for numbered groups
	Text    string
	Index   int
	Length  int
	Matched bool // false if the group did not take part in the match
}

// Match is the result of a successful search.
type Match struct {
	// Groups holds the whole match at index 0 and capture group i at
	// index i, numbered left to right by opening position.
	Groups []Group
}

// Text returns the matched text.
func (m *Match) Text() string {
	return m.Groups[0].Text
}

// Index returns the position where the match starts, in characters.
func (m *Match) Index() int {
	return m.Groups[0].Index
}

// Length returns the length of the match, in characters.
func (m *Match) Length() int {
	return m.Groups[0].Length
}

// Group returns capture group i, 0 being the whole match.
func (m *Match) Group(i int) (Group, bool) {
	if i < 0 || i >= len(m.Groups) {
		return Group{}, false
	}
	return m.Groups[i], true
}

// Named returns the capture group called name.
func (m *Match) Named(name string) (Group, bool) {
	for _, g := range m.Groups[1:] {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// Submatches returns the text of every capture group, "" for groups that
// did not take part.
func (m *Match) Submatches() []string {
	out := make([]string, len(m.Groups)-1)
	for i, g := range m.Groups[1:] {
		out[i] = g.Text
	}
	return out
}

// Config controls how patterns are compiled and run.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.MatchTimeout = 50 * time.Millisecond
//	re, err := expr.CompileWithConfig(config)
type Config struct {
	// MatchTimeout bounds a single match attempt. Backtracking engines can
	// take exponential time on some patterns; zero means no limit.
	// Default: 0
	MatchTimeout time.Duration

	// EnablePrefilter rejects input that lacks a literal every match needs
	// before the engine runs. It is never used with case-insensitive
	// matching.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length for prefilter literals.
	// Default: 1
	MinLiteralLen int

	// MaxLiterals limits the number of alternative prefilter literals.
	// Default: 64
	MaxLiterals int
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	return Config{
		MatchTimeout:    0,
		EnablePrefilter: true,
		MinLiteralLen:   1,
		MaxLiterals:     64,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MatchTimeout: >= 0
//   - MinLiteralLen: 1 to 64
//   - MaxLiterals: 1 to 1,000
func (c Config) Validate() error {
	if c.MatchTimeout < 0 {
		return &ConfigError{
			Field:   "MatchTimeout",
			Message: "must not be negative",
		}
	}
	if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
		return &ConfigError{
			Field:   "MinLiteralLen",
			Message: "must be between 1 and 64",
		}
	}
	if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
		return &ConfigError{
			Field:   "MaxLiterals",
			Message: "must be between 1 and 1,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "engine: invalid config: " + e.Field + ": " + e.Message
}

// CompileError represents an error rejected by the engine while compiling a
// rendered pattern.
type CompileError struct {
	Engine  string
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: compiling pattern %q: %v", e.Engine, e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
