package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/shanehull/screenwatch/internal/config"
)

type telegramMessage struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// TelegramSender posts messages through the Bot API sendMessage method.
type TelegramSender struct {
	http   *resty.Client
	cfg    config.TelegramConfig
	logger *zap.Logger
}

func NewTelegramSender(cfg config.TelegramConfig, timeout time.Duration, logger *zap.Logger) *TelegramSender {
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.telegram.org"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeader("Content-Type", "application/json")

	return &TelegramSender{http: c, cfg: cfg, logger: logger}
}

func (t *TelegramSender) Name() string { return "telegram" }

// Send delivers text to every chat id, splitting it when it exceeds the
// message limit. A failing recipient does not stop the others.
func (t *TelegramSender) Send(ctx context.Context, text string) error {
	if t.cfg.Token == "" || len(t.cfg.ChatIDs) == 0 {
		return errors.New("telegram is not configured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(t.cfg.APIURL, "/"), t.cfg.Token)

	var errs []error
	for _, chatID := range t.cfg.ChatIDs {
		for _, chunk := range Split(text, MaxMessageLength) {
			if err := t.post(ctx, endpoint, chatID, chunk); err != nil {
				t.logger.Warn("telegram send failed", zap.String("chat_id", chatID), zap.Error(err))
				errs = append(errs, fmt.Errorf("chat %s: %w", chatID, err))
				break
			}
		}
	}
	return errors.Join(errs...)
}

func (t *TelegramSender) post(ctx context.Context, endpoint, chatID, text string) error {
	res, err := t.http.R().
		SetContext(ctx).
		SetBody(telegramMessage{
			ChatID:                chatID,
			Text:                  text,
			ParseMode:             "Markdown",
			DisableWebPagePreview: true,
		}).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("telegram responded %d: %s", res.StatusCode(), strings.TrimSpace(res.String()))
	}
	return nil
}
