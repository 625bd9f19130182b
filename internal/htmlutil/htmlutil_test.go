package htmlutil

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionText(t *testing.T) {
	doc, err := Parse("<ul><li> Acme <b>Ltd</b>\n\t results out </li></ul>")
	require.NoError(t, err)

	assert.Equal(t, "Acme Ltd results out", SelectionText(doc.Find("li")))
}

func TestResolve(t *testing.T) {
	base, err := url.Parse("https://www.screener.in/screens/1/momentum/")
	require.NoError(t, err)

	assert.Equal(t, "https://www.screener.in/company/ACME/", Resolve(base, "/company/ACME/"))
	assert.Equal(t, "https://other.example/x", Resolve(base, "https://other.example/x"))
	assert.Equal(t, "", Resolve(base, "  "))
}
