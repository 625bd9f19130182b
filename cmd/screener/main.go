package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shanehull/screenwatch/internal/ai"
	"github.com/shanehull/screenwatch/internal/config"
	"github.com/shanehull/screenwatch/internal/logging"
	"github.com/shanehull/screenwatch/internal/news"
	"github.com/shanehull/screenwatch/internal/notify"
	"github.com/shanehull/screenwatch/internal/scrape"
	"github.com/shanehull/screenwatch/internal/screener"
)

// The process always exits 0: a scheduled run reports its problems in chat.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return
	}

	logger, err := logging.New("screener", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(true); err != nil {
		logger.Error("cannot start", zap.Error(err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, cfg, logger)
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) {
	senders := []notify.Sender{notify.NewTelegramSender(cfg.Telegram, cfg.HTTPTimeout, logger)}
	if cfg.Email.Enabled {
		senders = append(senders, notify.NewEmailSender(cfg.Email, logger))
	}
	notifier := notify.NewNotifier(cfg.SendInterval, logger, senders...)

	opts := screener.Options{
		TopRows:       cfg.TopRows,
		HeadlineCount: cfg.HeadlineCount,
		Headlines:     news.NewClient(cfg.NewsFeedURL, cfg.HTTPTimeout),
		Reporter:      notify.NewConsoleReport(os.Stdout),
	}
	if cfg.GeminiAPIKey != "" {
		opts.Summarizer = ai.NewSummarizer(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		logger.Info("GEMINI_API_KEY not set, skipping AI summary")
	}

	svc := screener.NewService(scrape.NewClient(cfg.Cookie, cfg.HTTPTimeout), notifier, opts, logger)

	logger.Info("starting screen run", zap.Int("screens", len(cfg.ScreenURLs)))
	if _, err := svc.Run(ctx, cfg.ScreenURLs); err != nil {
		logger.Error("screen run finished with errors", zap.Error(err))
		return
	}
	logger.Info("screen run complete")
}
