// Package markdown writes text for Telegram's legacy Markdown parse mode.
//
// Legacy mode allows a backslash escape only outside an entity, and entities
// do not nest. Bold therefore closes and reopens around escaped characters,
// and link text is written literally.
package markdown

import "strings"

var escaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

var linkTextCleaner = strings.NewReplacer("[", "", "]", "")

var linkURLCleaner = strings.NewReplacer(")", "%29", " ", "%20")

// Escape escapes every character legacy Markdown treats as markup.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Bold renders s in bold. Markup characters in s are emitted escaped between
// bold runs, so "Acme_Co" becomes "*Acme*\_*Co*".
func Bold(s string) string {
	var sb strings.Builder
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			sb.WriteString("*")
			sb.WriteString(run.String())
			sb.WriteString("*")
			run.Reset()
		}
	}

	for _, r := range s {
		switch r {
		case '_', '*', '`', '[':
			flush()
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			run.WriteRune(r)
		}
	}
	flush()

	return sb.String()
}

// Link renders an inline link. Square brackets are dropped from text and
// characters that would end the URL early are percent-encoded.
func Link(text, url string) string {
	return "[" + linkTextCleaner.Replace(text) + "](" + linkURLCleaner.Replace(strings.TrimSpace(url)) + ")"
}
