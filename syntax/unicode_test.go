package syntax

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/runenames"
)

func TestUnicodeShortCodes(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		code := fmt.Sprintf("%04x", v)
		n, err := UnicodeChar(code)
		require.NoError(t, err, code)
		assert.Equal(t, `\u`+code, n.String())
	}
}

func TestUnicodeLongCodes(t *testing.T) {
	for _, v := range []int{0, 0x41, 0xFFFF, 0x1F600, 0x10FFFF} {
		code := fmt.Sprintf("%08x", v)
		n, err := UnicodeChar(code)
		require.NoError(t, err, code)
		assert.Equal(t, `\U`+code, n.String())
		assert.Equal(t, rune(v), n.Lo)
	}
}

func TestUnicodeNames(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '€', 'é', '😀', 0x2603} {
		name := runenames.Name(r)
		n, err := UnicodeChar(name)
		require.NoError(t, err, name)
		assert.Equal(t, `\N{`+name+`}`, n.String())
		assert.Equal(t, r, n.Lo)
	}
}

func TestUnicodeNameCaseInsensitive(t *testing.T) {
	n, err := UnicodeChar("snowman")
	require.NoError(t, err)
	assert.Equal(t, rune(0x2603), n.Lo)
	assert.Equal(t, `\N{snowman}`, n.String())
}
