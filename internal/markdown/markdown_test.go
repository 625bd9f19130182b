package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "Tata\\_Motors \\*up\\* \\[NSE] \\`x\\`", Escape("Tata_Motors *up* [NSE] `x`"))
	assert.Equal(t, "plain text", Escape("plain text"))
}

func TestBold(t *testing.T) {
	assert.Equal(t, "*Momentum*", Bold("Momentum"))
	assert.Equal(t, `*Acme*\_*Co Alert*`, Bold("Acme_Co Alert"))
	assert.Equal(t, `\_*Acme*\*`, Bold("_Acme*"))
	assert.Equal(t, "", Bold(""))
}

func TestBoldNeverEscapesInsideEntity(t *testing.T) {
	out := Bold("a_b*c`d[e")

	inside := false
	for i := 0; i < len(out); i++ {
		switch out[i] {
		case '\\':
			assert.False(t, inside, "escape inside bold run in %q", out)
			i++
		case '*':
			inside = !inside
		}
	}
	assert.False(t, inside, "unbalanced bold in %q", out)
}

func TestLink(t *testing.T) {
	assert.Equal(t, "[Acme_Corp](https://x.example/acme)", Link("Acme_Corp", "https://x.example/acme"))
	assert.Equal(t, "[Acme NSE](https://x.example/a%29b)", Link("Acme [NSE]", " https://x.example/a)b "))
}
