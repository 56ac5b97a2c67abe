package syntax

import "strings"

// Flags is the set of options an expression is compiled with.
//
// ASCII, Unicode and Locale select the character-class encoding mode and are
// mutually exclusive; use WithMode to switch between them. The remaining bits
// are independent.
type Flags uint8

const (
	CaseInsensitive Flags = 1 << iota // case-insensitive matching
	Multiline                         // ^ and $ match at line boundaries
	DotAll                            // . matches newline
	Global                            // report every match, not just the first
	ASCII                             // \w, \d, \s and \b are ASCII-only
	Unicode                           // \w, \d, \s and \b follow Unicode
	Locale                            // \w and \b follow the current locale

	// EncodingModes covers the mutually exclusive encoding bits.
	EncodingModes = ASCII | Unicode | Locale

	// DefaultFlags is the flag set of a new expression.
	DefaultFlags = Unicode
)

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// With returns f with the independent bits of f2 set. Encoding bits are
// ignored; use WithMode for those.
func (f Flags) With(f2 Flags) Flags {
	return f | f2&^EncodingModes
}

// WithMode returns f with its encoding mode replaced by mode, which must be
// one of ASCII, Unicode or Locale.
func (f Flags) WithMode(mode Flags) Flags {
	return f&^EncodingModes | mode&EncodingModes
}

// Mode returns the encoding mode bits of f.
func (f Flags) Mode() Flags {
	return f & EncodingModes
}

// Merge OR-merges the independent bits of other into f. It fails with
// ErrFlagConflict when the two sets use different encoding modes.
func (f Flags) Merge(other Flags) (Flags, error) {
	if f.Mode() != other.Mode() {
		return f, Errorf(ErrFlagConflict, "subexpression",
			"subexpression flags %s and root flags %s; ignore the subexpression flags to merge anyway", other, f)
	}
	return f | other&^EncodingModes, nil
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{CaseInsensitive, "i"},
	{Multiline, "m"},
	{DotAll, "s"},
	{Global, "g"},
	{ASCII, "a"},
	{Unicode, "u"},
	{Locale, "L"},
}

// String returns the flag letters, e.g. "imu".
func (f Flags) String() string {
	var sb strings.Builder
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			sb.WriteString(fn.name)
		}
	}
	return sb.String()
}
