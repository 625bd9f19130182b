/*
Package alerts scans the dashboard feed (and optional news-search feeds) for keyword-matching
announcements that have not been alerted before.
*/
package alerts

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shanehull/screenwatch/internal/markdown"
	"github.com/shanehull/screenwatch/internal/types"
)

type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

type HeadlineSource interface {
	Headlines(ctx context.Context, query string, limit int) ([]types.Headline, error)
}

type SeenSet interface {
	Seen(id string) bool
	Record(id string) bool
}

type Sender interface {
	Send(ctx context.Context, text string) error
}

type Options struct {
	DashboardURL string
	Keywords     []string
	// Queries are news-search terms whose feed items are checked the same way.
	Queries []string
	Feeds   HeadlineSource
}

type Service struct {
	fetcher Fetcher
	seen    SeenSet
	opts    Options
	logger  *zap.Logger
}

func NewService(fetcher Fetcher, seen SeenSet, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{fetcher: fetcher, seen: seen, opts: opts, logger: logger}
}

// admit applies the seen gate and the keyword filter, recording the id of an
// item that passes both.
func (s *Service) admit(id, text string) ([]string, bool) {
	if s.seen.Seen(id) || !MatchesAny(text, s.opts.Keywords) {
		return nil, false
	}
	s.seen.Record(id)
	return FoundKeywords(text, s.opts.Keywords), true
}

// CheckDashboard returns new alerts from the dashboard page.
func (s *Service) CheckDashboard(ctx context.Context) ([]types.Alert, error) {
	s.logger.Info("checking dashboard", zap.String("url", s.opts.DashboardURL))

	body, err := s.fetcher.Get(ctx, s.opts.DashboardURL)
	if err != nil {
		return nil, types.AsSourceError(s.opts.DashboardURL, err)
	}

	anns, err := ParseDashboard(body, s.opts.DashboardURL)
	if err != nil {
		return nil, types.AsSourceError(s.opts.DashboardURL, err)
	}

	var alerts []types.Alert
	for _, ann := range anns {
		id := AnnouncementID(ann.Company, ann.Text)
		found, ok := s.admit(id, ann.Text)
		if !ok {
			continue
		}
		alerts = append(alerts, types.Alert{
			ID:        id,
			Heading:   ann.Company + " Alert",
			Text:      ann.Text,
			Link:      ann.Link,
			LinkLabel: "View Details",
			Keywords:  found,
		})
	}

	s.logger.Info("dashboard checked", zap.Int("items", len(anns)), zap.Int("new_alerts", len(alerts)))
	return alerts, nil
}

// CheckFeeds returns new alerts from the news-search feed of every query.
// A failing query is reported and the rest are still checked.
func (s *Service) CheckFeeds(ctx context.Context) ([]types.Alert, []*types.SourceError) {
	if s.opts.Feeds == nil {
		return nil, nil
	}

	var alerts []types.Alert
	var errs []*types.SourceError
	for _, q := range s.opts.Queries {
		headlines, err := s.opts.Feeds.Headlines(ctx, q, 0)
		if err != nil {
			s.logger.Warn("feed query failed", zap.String("query", q), zap.Error(err))
			errs = append(errs, types.AsSourceError(q, err))
			continue
		}

		for _, h := range headlines {
			id := FeedItemID(h.Link)
			if id == "" {
				continue
			}
			found, ok := s.admit(id, h.Title)
			if !ok {
				continue
			}
			alerts = append(alerts, types.Alert{
				ID:        id,
				Heading:   q + " News",
				Text:      h.Title,
				Link:      h.Link,
				LinkLabel: "Read More",
				Keywords:  found,
			})
		}
	}
	return alerts, errs
}

// Check runs every configured source. Failures come back as errors next to
// whatever alerts the other sources produced.
func (s *Service) Check(ctx context.Context) ([]types.Alert, []*types.SourceError) {
	var errs []*types.SourceError

	alerts, err := s.CheckDashboard(ctx)
	if err != nil {
		s.logger.Warn("dashboard check failed", zap.Error(err))
		errs = append(errs, types.AsSourceError(s.opts.DashboardURL, err))
	}

	feedAlerts, feedErrs := s.CheckFeeds(ctx)
	alerts = append(alerts, feedAlerts...)
	errs = append(errs, feedErrs...)

	return alerts, errs
}

// Run checks every source and sends each new alert as its own message,
// followed by one message listing failures, if any. It returns the number of
// alerts sent.
func (s *Service) Run(ctx context.Context, sender Sender) int {
	alerts, errs := s.Check(ctx)

	sent := 0
	for _, a := range alerts {
		if err := sender.Send(ctx, FormatAlert(a)); err != nil {
			s.logger.Warn("failed to send alert", zap.String("id", a.ID), zap.Error(err))
			continue
		}
		sent++
	}

	if len(alerts) == 0 {
		s.logger.Info("no new relevant news found")
	} else {
		s.logger.Info("alerts sent", zap.Int("found", len(alerts)), zap.Int("sent", sent))
	}

	if len(errs) > 0 {
		if err := sender.Send(ctx, FormatErrors(errs)); err != nil {
			s.logger.Warn("failed to send error report", zap.Error(err))
		}
	}

	return sent
}

// FormatAlert renders an alert as a Markdown chat message.
func FormatAlert(a types.Alert) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📢 %s\n", markdown.Bold(a.Heading)))
	sb.WriteString(markdown.Escape(a.Text))
	if a.Link != "" {
		label := a.LinkLabel
		if label == "" {
			label = "View Details"
		}
		sb.WriteString("\n")
		sb.WriteString(markdown.Link(label, a.Link))
	}
	return sb.String()
}

// FormatErrors renders source failures as one message.
func FormatErrors(errs []*types.SourceError) string {
	var sb strings.Builder
	sb.WriteString("⚠️ *News alert problems*\n")
	for _, e := range errs {
		if e.Kind == types.KindAuthExpired {
			sb.WriteString("❌ Cookie expired! Please update SCREENER\\_COOKIE.\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("❌ %s\n", markdown.Escape(e.Error())))
	}
	return sb.String()
}
