package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shanehull/screenwatch/internal/alerts"
	"github.com/shanehull/screenwatch/internal/config"
	"github.com/shanehull/screenwatch/internal/history"
	"github.com/shanehull/screenwatch/internal/logging"
	"github.com/shanehull/screenwatch/internal/news"
	"github.com/shanehull/screenwatch/internal/notify"
	"github.com/shanehull/screenwatch/internal/scrape"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return
	}

	logger, err := logging.New("newsalert", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(false); err != nil {
		logger.Error("cannot start", zap.Error(err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, cfg, logger)
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) {
	seen := history.NewManager(cfg.SeenFile, cfg.SeenLimit, logger)
	defer func() {
		if err := seen.Save(); err != nil {
			logger.Error("failed to save seen news", zap.String("path", seen.FilePath()), zap.Error(err))
		}
	}()

	senders := []notify.Sender{notify.NewTelegramSender(cfg.Telegram, cfg.HTTPTimeout, logger)}
	if cfg.Email.Enabled {
		senders = append(senders, notify.NewEmailSender(cfg.Email, logger))
	}
	notifier := notify.NewNotifier(cfg.SendInterval, logger, senders...)

	opts := alerts.Options{
		DashboardURL: cfg.DashboardURL,
		Keywords:     cfg.Keywords,
		Queries:      cfg.NewsQueries,
	}
	if len(cfg.NewsQueries) > 0 {
		opts.Feeds = news.NewClient(cfg.NewsFeedURL, cfg.HTTPTimeout)
	}

	svc := alerts.NewService(scrape.NewClient(cfg.Cookie, cfg.HTTPTimeout), seen, opts, logger)

	sent := svc.Run(ctx, notifier)
	logger.Info("news check complete", zap.Int("alerts_sent", sent), zap.Int("seen", seen.Len()))
}
