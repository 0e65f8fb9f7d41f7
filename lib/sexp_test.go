package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderInlineList(t *testing.T) {
	text, err := Render(List{Atom("at"), Num(2.54), Num(-1.27), Atom("0")})
	require.NoError(t, err)
	require.Equal(t, "(at 2.54 -1.27 0)\n", text)
}

func TestRenderNestedList(t *testing.T) {
	text, err := Render(List{Atom("pin_names"), List{Atom("offset"), Num(0.254)}})
	require.NoError(t, err)
	require.Equal(t, "(pin_names\n\t(offset 0.254)\n)\n", text)
}

func TestRenderEscapesQuotedStrings(t *testing.T) {
	text, err := Render(List{Atom("property"), Quoted(`say "hi" \ bye`)})
	require.NoError(t, err)
	require.Equal(t, `(property "say \"hi\" \\ bye")`+"\n", text)
}

func TestRenderRejectsControlCharacters(t *testing.T) {
	_, err := Render(List{Atom("property"), Quoted("bad\x00value")})
	require.Error(t, err)
}

func TestRenderRejectsUnsafeAtoms(t *testing.T) {
	for _, atom := range []string{"", "two words", "par(en", `quo"te`} {
		_, err := Render(List{Atom(atom)})
		require.Error(t, err, "atom %q must be rejected", atom)
	}
}

func TestRenderQuotedFieldCannotUnbalance(t *testing.T) {
	text, err := Render(List{Atom("value"), Quoted(`((((") deep`)})
	require.NoError(t, err)
	require.True(t, balanced(text), "quoted parens must not nest: %s", text)
}

/*
	counts parenthesis depth outside quoted strings
*/
func balanced(text string) bool {
	depth := 0
	quoted := false
	escaped := false
	for _, r := range text {
		switch {
		case escaped:
			escaped = false
		case quoted:
			if r == '\\' {
				escaped = true
			} else if r == '"' {
				quoted = false
			}
		case r == '"':
			quoted = true
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}

	return depth == 0 && !quoted
}

func TestBalancedHelper(t *testing.T) {
	require.True(t, balanced(`(a (b "c)"))`))
	require.False(t, balanced(`(a (b)`))
	require.False(t, balanced(strings.Repeat(")", 2)))
}
