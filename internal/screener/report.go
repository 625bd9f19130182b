package screener

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shanehull/screenwatch/internal/markdown"
	"github.com/shanehull/screenwatch/internal/types"
)

const (
	messageTitle     = "📊 *Daily Market Watch*\n\n"
	sectionSeparator = "------------------\n"
)

var titleCaser = cases.Title(language.English)

// EscapeMarkdown escapes the characters Telegram's legacy Markdown treats as markup.
func EscapeMarkdown(s string) string {
	return markdown.Escape(s)
}

// ScreenName derives a display name from a screen URL: the last path segment
// with dashes as spaces, title-cased. ".../screens/123/golden-crossover/"
// becomes "Golden Crossover".
func ScreenName(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		if u.Host != "" {
			return u.Host
		}
		return rawURL
	}

	return titleCaser.String(strings.ReplaceAll(last, "-", " "))
}

// FormatError renders a source failure as a message fragment.
func FormatError(name string, err *types.SourceError) string {
	switch err.Kind {
	case types.KindAuthExpired:
		return fmt.Sprintf("❌ Cookie expired for %s. Please update SCREENER\\_COOKIE.\n", markdown.Bold(name))
	case types.KindParse:
		return fmt.Sprintf("❌ %s: %s\n", EscapeMarkdown(name), EscapeMarkdown(rootMessage(err)))
	default:
		return fmt.Sprintf("❌ Error on %s: %s\n", EscapeMarkdown(name), EscapeMarkdown(rootMessage(err)))
	}
}

func rootMessage(err *types.SourceError) string {
	if err.Err == nil {
		return err.Kind.String()
	}
	return err.Err.Error()
}

// FormatScreen renders one screen's ranked list, or its error fragment.
func FormatScreen(s types.Screen) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📂 %s\n", markdown.Bold(s.Name)))

	if s.Err != nil {
		sb.WriteString(FormatError(s.Name, s.Err))
		return sb.String()
	}

	if len(s.Stocks) == 0 {
		sb.WriteString("No stocks matched this screen today.\n\n")
		return sb.String()
	}

	for _, st := range s.Stocks {
		name := markdown.Bold(st.Name)
		if st.Link != "" {
			name = markdown.Link(st.Name, st.Link)
		}
		sb.WriteString(fmt.Sprintf("🔹 %s | ₹%s\n", name, EscapeMarkdown(st.Price)))
		sb.WriteString(fmt.Sprintf("   RSI: %s | QtrPf: %s%% | FII: %s%%\n\n", EscapeMarkdown(st.RSI), EscapeMarkdown(st.QtrProfit), EscapeMarkdown(st.FIIChange)))
	}
	return sb.String()
}

func FormatPicks(picks []Pick) string {
	if len(picks) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("🔥 *Super Picks* - found in 2+ screens\n")
	for _, p := range picks {
		sb.WriteString(fmt.Sprintf("• %s (%d screens)\n", EscapeMarkdown(p.Name), p.Count))
	}
	sb.WriteString("\n")
	return sb.String()
}

func FormatHeadlines(stock string, headlines []types.Headline) string {
	if len(headlines) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📰 %s\n", markdown.Bold("News: "+stock)))
	for _, h := range headlines {
		title := EscapeMarkdown(h.Title)
		if h.Link != "" {
			title = markdown.Link(h.Title, h.Link)
		}
		sb.WriteString(fmt.Sprintf("• %s\n", title))
	}
	return sb.String()
}

// Report holds everything one run puts into its message.
type Report struct {
	Screens []types.Screen
	Picks   []Pick

	Summary    string
	SummaryErr *types.SourceError

	TopStock    string
	Headlines   []types.Headline
	HeadlineErr *types.SourceError
}

// Body renders the screens part of the message, without the title and
// without the summary or news sections.
func (r Report) Body() string {
	var sb strings.Builder
	sb.WriteString(FormatPicks(r.Picks))
	for _, s := range r.Screens {
		sb.WriteString(FormatScreen(s))
		sb.WriteString(sectionSeparator)
	}
	return sb.String()
}

// Message renders the complete chat message.
func (r Report) Message() string {
	var sb strings.Builder
	sb.WriteString(messageTitle)
	sb.WriteString(r.Body())

	switch {
	case r.SummaryErr != nil:
		sb.WriteString(fmt.Sprintf("\n⚠️ AI summary unavailable: %s\n", EscapeMarkdown(rootMessage(r.SummaryErr))))
	case r.Summary != "":
		sb.WriteString("\n🤖 *AI Summary*\n")
		sb.WriteString(EscapeMarkdown(strings.TrimSpace(r.Summary)))
		sb.WriteString("\n")
	}

	switch {
	case r.HeadlineErr != nil:
		sb.WriteString(fmt.Sprintf("\n⚠️ News lookup for %s failed: %s\n", EscapeMarkdown(r.TopStock), EscapeMarkdown(rootMessage(r.HeadlineErr))))
	case len(r.Headlines) > 0:
		sb.WriteString("\n")
		sb.WriteString(FormatHeadlines(r.TopStock, r.Headlines))
	}

	return sb.String()
}
