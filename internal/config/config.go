/*
Package config reads runtime settings from the environment, optionally seeded from a .env file.
*/
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultKeywords are substrings that make a dashboard item worth alerting on.
var DefaultKeywords = []string{
	"result", "dividend", "split", "bonus", "buyback",
	"acquisition", "merger", "deal", "order", "profit", "fine", "penalty", "fraud", "investigation", "search", "raid", "concern",
	"disclosure", "non-compliance", "loss",
}

type TelegramConfig struct {
	Token   string
	ChatIDs []string
	APIURL  string
}

type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
	Enabled    bool
}

type Config struct {
	Telegram TelegramConfig
	Email    EmailConfig

	Cookie       string
	ScreenURLs   []string
	DashboardURL string

	GeminiAPIKey string
	GeminiModel  string

	NewsFeedURL   string
	NewsQueries   []string
	Keywords      []string
	HeadlineCount int

	SeenFile  string
	SeenLimit int
	TopRows   int

	HTTPTimeout  time.Duration
	SendInterval time.Duration
	LogLevel     string
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromViper(newViper()), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("telegram_api_url", "https://api.telegram.org")
	v.SetDefault("screener_dashboard_url", "https://www.screener.in/")
	v.SetDefault("gemini_model", "gemini-2.0-flash")
	v.SetDefault("news_feed_url", "https://news.google.com/rss/search")
	v.SetDefault("alert_keywords", strings.Join(DefaultKeywords, ","))
	v.SetDefault("headline_count", 3)
	v.SetDefault("seen_news_file", "seen_news.json")
	v.SetDefault("seen_limit", 500)
	v.SetDefault("top_rows", 10)
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("send_interval", time.Second)
	v.SetDefault("smtp_port", 587)
	v.SetDefault("log_level", "info")
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Telegram: TelegramConfig{
			Token:   v.GetString("telegram_bot_token"),
			ChatIDs: SplitList(v.GetString("telegram_chat_id")),
			APIURL:  strings.TrimRight(v.GetString("telegram_api_url"), "/"),
		},
		Email: EmailConfig{
			SMTPServer: v.GetString("smtp_server"),
			SMTPPort:   v.GetInt("smtp_port"),
			SMTPUser:   v.GetString("smtp_user"),
			SMTPPass:   v.GetString("smtp_pass"),
			ToEmail:    v.GetString("to_email"),
			FromEmail:  v.GetString("from_email"),
		},
		Cookie:        v.GetString("screener_cookie"),
		ScreenURLs:    SplitList(v.GetString("screener_url")),
		DashboardURL:  v.GetString("screener_dashboard_url"),
		GeminiAPIKey:  v.GetString("gemini_api_key"),
		GeminiModel:   v.GetString("gemini_model"),
		NewsFeedURL:   v.GetString("news_feed_url"),
		NewsQueries:   SplitList(v.GetString("news_queries")),
		Keywords:      ParseKeywords(v.GetString("alert_keywords")),
		HeadlineCount: v.GetInt("headline_count"),
		SeenFile:      v.GetString("seen_news_file"),
		SeenLimit:     v.GetInt("seen_limit"),
		TopRows:       v.GetInt("top_rows"),
		HTTPTimeout:   v.GetDuration("http_timeout"),
		SendInterval:  v.GetDuration("send_interval"),
		LogLevel:      v.GetString("log_level"),
	}

	if cfg.Email.FromEmail == "" {
		cfg.Email.FromEmail = cfg.Email.SMTPUser
	}
	cfg.Email.Enabled = cfg.Email.SMTPServer != "" && cfg.Email.SMTPUser != "" && cfg.Email.SMTPPass != "" && cfg.Email.ToEmail != ""

	return cfg
}

// Validate reports the settings a run cannot do without.
func (c *Config) Validate(needScreens bool) error {
	var missing []string
	if c.Telegram.Token == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if len(c.Telegram.ChatIDs) == 0 {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if c.Cookie == "" {
		missing = append(missing, "SCREENER_COOKIE")
	}
	if needScreens && len(c.ScreenURLs) == 0 {
		missing = append(missing, "SCREENER_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// SplitList splits a comma-separated value, trimming entries and dropping empties.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseKeywords is SplitList with lower-casing, so keywords can be matched
// against lower-cased text.
func ParseKeywords(s string) []string {
	keywords := SplitList(s)
	for i, kw := range keywords {
		keywords[i] = strings.ToLower(kw)
	}
	return keywords
}
