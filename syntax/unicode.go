package syntax

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

type unicodeKind uint8

const (
	unicodeNamed unicodeKind = iota // \N{NAME}
	unicodeShort                    // \uXXXX
	unicodeLong                     // \UXXXXXXXX
)

var (
	runeNamesOnce sync.Once
	runeNames     map[string]rune
)

// lookupRuneName resolves a Unicode character name, case-insensitively.
// The reverse table is built on first use.
func lookupRuneName(name string) (rune, bool) {
	runeNamesOnce.Do(func() {
		runeNames = make(map[string]rune, 1<<15)
		for r := rune(0); r <= unicode.MaxRune; r++ {
			if unicode.Is(unicode.Cs, r) {
				continue
			}
			n := runenames.Name(r)
			// Ranges such as CJK ideographs are reported as "<...>"
			// placeholders rather than real names.
			if n == "" || n[0] == '<' {
				continue
			}
			if _, dup := runeNames[n]; !dup {
				runeNames[n] = r
			}
		}
	})
	r, ok := runeNames[strings.ToUpper(name)]
	return r, ok
}

// unicodeForm classifies a unicode escape code. Names are tried first so that
// a name made only of hex letters still renders as a name.
func unicodeForm(code string) (unicodeKind, rune, bool) {
	if code == "" {
		return 0, 0, false
	}
	if r, ok := lookupRuneName(code); ok {
		return unicodeNamed, r, true
	}
	if !isHex(code) {
		return 0, 0, false
	}
	if len(code) == 4 {
		v, _ := strconv.ParseUint(code, 16, 32)
		return unicodeShort, rune(v), true
	}
	if len(code) > 4 && len(code) <= 8 {
		v, err := strconv.ParseUint(code, 16, 32)
		if err != nil || v > unicode.MaxRune {
			return 0, 0, false
		}
		return unicodeLong, rune(v), true
	}
	return 0, 0, false
}
