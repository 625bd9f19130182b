package screener

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shanehull/screenwatch/internal/types"
)

func TestScreenName(t *testing.T) {
	assert.Equal(t, "Golden Crossover", ScreenName("https://www.screener.in/screens/123/golden-crossover/"))
	assert.Equal(t, "Value Picks", ScreenName(" https://www.screener.in/screens/9/value-picks "))
	assert.Equal(t, "www.screener.in", ScreenName("https://www.screener.in/"))
}

func TestFormatScreen(t *testing.T) {
	s := types.Screen{
		Name: "Momentum",
		Stocks: []types.Stock{
			{Name: "Acme_Corp", Link: "https://x.example/acme", Price: "100", RSI: "60", QtrProfit: "12", FIIChange: "0.5"},
			{Name: "Beta", Price: "N/A", RSI: "N/A", QtrProfit: "N/A", FIIChange: "N/A"},
		},
	}

	out := FormatScreen(s)
	assert.Contains(t, out, "📂 *Momentum*\n")
	assert.Contains(t, out, "🔹 [Acme_Corp](https://x.example/acme) | ₹100")
	assert.Contains(t, out, "RSI: 60 | QtrPf: 12% | FII: 0.5%")
	assert.Contains(t, out, "🔹 *Beta* | ₹N/A")
}

func TestFormatScreenErrors(t *testing.T) {
	auth := types.Screen{Name: "Momentum", Err: &types.SourceError{Kind: types.KindAuthExpired, Err: errors.New("expired")}}
	assert.Contains(t, FormatScreen(auth), "Cookie expired for *Momentum*.")

	underscored := types.Screen{Name: "Low_PE", Err: &types.SourceError{Kind: types.KindAuthExpired, Err: errors.New("expired")}}
	assert.Contains(t, FormatScreen(underscored), "📂 *Low*\\_*PE*\n")

	network := types.Screen{Name: "Momentum", Err: &types.SourceError{Kind: types.KindNetwork, Err: errors.New("received non-OK status code 500")}}
	assert.Contains(t, FormatScreen(network), "❌ Error on Momentum: received non-OK status code 500")
}

func TestMessageSections(t *testing.T) {
	r := Report{
		Screens:   []types.Screen{{Name: "A", Stocks: []types.Stock{{Name: "Acme", Price: "1"}}}},
		Picks:     []Pick{{Name: "Acme", Count: 2}},
		Summary:   "Momentum is broad.",
		TopStock:  "Acme",
		Headlines: []types.Headline{{Title: "Acme wins order", Link: "https://news.example/1"}},
	}

	msg := r.Message()
	assert.Contains(t, msg, "📊 *Daily Market Watch*")
	assert.Contains(t, msg, "• Acme (2 screens)")
	assert.Contains(t, msg, "🤖 *AI Summary*\nMomentum is broad.")
	assert.Contains(t, msg, "📰 *News: Acme*\n• [Acme wins order](https://news.example/1)")

	r.Summary = ""
	r.SummaryErr = &types.SourceError{Kind: types.KindDownstream, Err: errors.New("quota")}
	assert.Contains(t, r.Message(), "⚠️ AI summary unavailable: quota")
}

func TestMessageEscapesSummary(t *testing.T) {
	r := Report{
		Screens: []types.Screen{{Name: "A", Stocks: []types.Stock{{Name: "Tata_Motors", Price: "1"}}}},
		Summary: "• Tata_Motors RSI 72 *overbought\n• **Beta** steady\n",
	}

	msg := r.Message()
	assert.Contains(t, msg, "🤖 *AI Summary*\n• Tata\\_Motors RSI 72 \\*overbought\n• \\*\\*Beta\\*\\* steady\n")
	assert.NotContains(t, msg, " Tata_Motors RSI")
}
