package screener

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/shanehull/screenwatch/internal/scrape"
	"github.com/shanehull/screenwatch/internal/types"
)

type captureSender struct {
	messages []string
	err      error
}

func (c *captureSender) Send(_ context.Context, text string) error {
	c.messages = append(c.messages, text)
	return c.err
}

type stubSummarizer struct {
	input string
	err   error
}

func (s *stubSummarizer) Summarize(_ context.Context, report string) (string, error) {
	s.input = report
	if s.err != nil {
		return "", s.err
	}
	return "All quiet.", nil
}

type stubHeadlines struct {
	query string
}

func (s *stubHeadlines) Headlines(_ context.Context, query string, limit int) ([]types.Headline, error) {
	s.query = query
	return []types.Headline{{Title: "Acme bags order", Link: "https://news.example/a"}}[:min(limit, 1)], nil
}

func threeRowTable(names ...string) string {
	var sb strings.Builder
	sb.WriteString("<table><tr><th>S.No.</th><th>Name</th><th>CMP Rs.</th><th>RSI</th></tr>")
	for i, n := range names {
		sb.WriteString(fmt.Sprintf(`<tr><td>%d</td><td><a href="/company/%s/">%s</a></td><td>%d</td><td>50</td></tr>`, i+1, n, n, 100+i))
	}
	sb.WriteString("</table>")
	return sb.String()
}

func newScreensServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/screens/1/momentum/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(threeRowTable("Acme", "Beta", "Gamma")))
	})
	mux.HandleFunc("/screens/2/value-picks/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(threeRowTable("Delta", "Acme", "Epsilon")))
	})
	mux.HandleFunc("/screens/3/broken/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunFlagsSuperPick(t *testing.T) {
	srv := newScreensServer(t)
	sender := &captureSender{}
	svc := NewService(scrape.NewClient("sessionid=abc", time.Second), sender, Options{}, zaptest.NewLogger(t))

	msg, err := svc.Run(context.Background(), []string{
		srv.URL + "/screens/1/momentum/",
		srv.URL + "/screens/2/value-picks/",
	})
	require.NoError(t, err)
	require.Len(t, sender.messages, 1)
	assert.Equal(t, msg, sender.messages[0])

	assert.Equal(t, 1, strings.Count(msg, "screens)"))
	assert.Contains(t, msg, "• Acme (2 screens)")
	assert.Contains(t, msg, "📂 *Momentum*")
	assert.Contains(t, msg, "📂 *Value Picks*")
	assert.Contains(t, msg, fmt.Sprintf("[Gamma](%s/company/Gamma/)", srv.URL))
}

func TestBuildReportContinuesPastFailures(t *testing.T) {
	srv := newScreensServer(t)
	summarizer := &stubSummarizer{err: errors.New("quota exceeded")}
	headlines := &stubHeadlines{}
	svc := NewService(scrape.NewClient("", time.Second), &captureSender{}, Options{
		TopRows:    2,
		Summarizer: summarizer,
		Headlines:  headlines,
	}, zaptest.NewLogger(t))

	report := svc.BuildReport(context.Background(), []string{
		srv.URL + "/screens/3/broken/",
		" ",
		srv.URL + "/screens/1/momentum/",
	})

	require.Len(t, report.Screens, 2)
	require.NotNil(t, report.Screens[0].Err)
	assert.Equal(t, types.KindNetwork, report.Screens[0].Err.Kind)
	assert.Len(t, report.Screens[1].Stocks, 2)

	require.NotNil(t, report.SummaryErr)
	assert.Equal(t, types.KindDownstream, report.SummaryErr.Kind)
	assert.Contains(t, summarizer.input, "📂 *Momentum*")

	assert.Equal(t, "Acme", report.TopStock)
	assert.Equal(t, "Acme share", headlines.query)
	assert.Len(t, report.Headlines, 1)

	msg := report.Message()
	assert.Contains(t, msg, "❌ Error on Broken")
	assert.Contains(t, msg, "⚠️ AI summary unavailable: quota exceeded")
	assert.Contains(t, msg, "📰 *News: Acme*")
}

func TestRunReturnsSendError(t *testing.T) {
	srv := newScreensServer(t)
	sender := &captureSender{err: errors.New("bot down")}
	svc := NewService(scrape.NewClient("", time.Second), sender, Options{}, zaptest.NewLogger(t))

	msg, err := svc.Run(context.Background(), []string{srv.URL + "/screens/1/momentum/"})
	require.Error(t, err)
	assert.NotEmpty(t, msg)
}
