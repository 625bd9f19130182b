package alerts

import (
	"strings"
	"unicode/utf8"

	"github.com/shanehull/screenwatch/internal/htmlutil"
)

// idPrefixLen is how much of the normalised item text goes into an identifier.
const idPrefixLen = 30

// MatchesAny reports whether any keyword occurs in text. Keywords are expected
// lower-cased; text is lower-cased here. Plain substring matching, so "loss"
// also fires on "glossary".
func MatchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FoundKeywords lists the keywords present in text, in keyword order.
func FoundKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// Normalize lower-cases text and collapses whitespace.
func Normalize(text string) string {
	return strings.ToLower(htmlutil.CollapseSpace(text))
}

// AnnouncementID identifies a dashboard item by company and the first 30
// characters of its normalised text. Two edits of the same item usually share
// the prefix; two unrelated items from one company occasionally do too.
func AnnouncementID(company, text string) string {
	return company + "_" + prefix(Normalize(text), idPrefixLen)
}

// FeedItemID identifies a news-feed item by its link.
func FeedItemID(link string) string {
	return strings.TrimSpace(link)
}

func prefix(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
