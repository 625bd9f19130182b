/*
Package screener turns saved stock screens into a single ranked market report.
*/
package screener

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shanehull/screenwatch/internal/types"
)

// minURLLength skips leftovers of a trailing comma or stray whitespace in the URL list.
const minURLLength = 6

type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, report string) (string, error)
}

type HeadlineSource interface {
	Headlines(ctx context.Context, query string, limit int) ([]types.Headline, error)
}

type Sender interface {
	Send(ctx context.Context, text string) error
}

// ScreenReporter receives the parsed screens before the message is sent.
type ScreenReporter interface {
	ReportScreens(screens []types.Screen)
}

type Options struct {
	TopRows       int
	HeadlineCount int
	Summarizer    Summarizer
	Headlines     HeadlineSource
	Reporter      ScreenReporter
}

type Service struct {
	fetcher Fetcher
	sender  Sender
	opts    Options
	logger  *zap.Logger
}

func NewService(fetcher Fetcher, sender Sender, opts Options, logger *zap.Logger) *Service {
	if opts.TopRows <= 0 {
		opts.TopRows = 10
	}
	if opts.HeadlineCount <= 0 {
		opts.HeadlineCount = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{fetcher: fetcher, sender: sender, opts: opts, logger: logger}
}

// ProcessScreen fetches and parses one screen. Failures are carried in the
// returned Screen rather than returned.
func (s *Service) ProcessScreen(ctx context.Context, rawURL string) types.Screen {
	rawURL = strings.TrimSpace(rawURL)
	screen := types.Screen{URL: rawURL, Name: ScreenName(rawURL)}

	body, err := s.fetcher.Get(ctx, rawURL)
	if err != nil {
		screen.Err = types.AsSourceError(rawURL, err)
		s.logger.Warn("failed to fetch screen", zap.String("screen", screen.Name), zap.Error(err))
		return screen
	}

	table, err := ParseTable(body, rawURL)
	if err != nil {
		screen.Err = types.AsSourceError(rawURL, err)
		s.logger.Warn("failed to parse screen", zap.String("screen", screen.Name), zap.Error(err))
		return screen
	}

	for i, row := range table.Rows {
		if i >= s.opts.TopRows {
			break
		}
		screen.Stocks = append(screen.Stocks, StockFromRow(row))
	}

	s.logger.Info("processed screen",
		zap.String("screen", screen.Name),
		zap.Int("rows", len(table.Rows)),
		zap.Int("shown", len(screen.Stocks)))

	return screen
}

// BuildReport processes every source in order and assembles the report.
func (s *Service) BuildReport(ctx context.Context, urls []string) Report {
	var report Report
	var allNames []string

	for _, u := range urls {
		if len(strings.TrimSpace(u)) < minURLLength {
			continue
		}
		screen := s.ProcessScreen(ctx, u)
		report.Screens = append(report.Screens, screen)
		allNames = append(allNames, screen.Names()...)
	}

	report.Picks = SuperPicks(allNames)
	if len(report.Picks) > 0 {
		s.logger.Info("found super picks", zap.Int("count", len(report.Picks)))
	}

	if s.opts.Reporter != nil {
		s.opts.Reporter.ReportScreens(report.Screens)
	}

	if s.opts.Summarizer != nil {
		summary, err := s.opts.Summarizer.Summarize(ctx, report.Body())
		if err != nil {
			report.SummaryErr = types.NewSourceError(types.KindDownstream, "ai", err)
			s.logger.Warn("AI summary failed", zap.Error(err))
		} else {
			report.Summary = summary
		}
	}

	report.TopStock = topStock(report)
	if s.opts.Headlines != nil && report.TopStock != "" {
		headlines, err := s.opts.Headlines.Headlines(ctx, report.TopStock+" share", s.opts.HeadlineCount)
		if err != nil {
			report.HeadlineErr = types.AsSourceError("news", err)
			s.logger.Warn("headline lookup failed", zap.String("stock", report.TopStock), zap.Error(err))
		} else {
			report.Headlines = headlines
		}
	}

	return report
}

// topStock is the strongest super pick, else the first row of the first
// screen that produced one.
func topStock(r Report) string {
	if len(r.Picks) > 0 {
		best := r.Picks[0]
		for _, p := range r.Picks[1:] {
			if p.Count > best.Count {
				best = p
			}
		}
		return best.Name
	}
	for _, sc := range r.Screens {
		for _, st := range sc.Stocks {
			if st.Name != NotAvailable {
				return st.Name
			}
		}
	}
	return ""
}

// Run builds the report and sends it as one message. The rendered message is
// returned even when sending fails.
func (s *Service) Run(ctx context.Context, urls []string) (string, error) {
	report := s.BuildReport(ctx, urls)
	msg := report.Message()

	if err := s.sender.Send(ctx, msg); err != nil {
		return msg, fmt.Errorf("failed to send report: %w", err)
	}
	s.logger.Info("report sent", zap.Int("screens", len(report.Screens)))
	return msg, nil
}
