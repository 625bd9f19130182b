package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", " 111, 222 ,")
	t.Setenv("SCREENER_COOKIE", "sessionid=abc")
	t.Setenv("SCREENER_URL", "https://example.com/screens/1/momentum/,https://example.com/screens/2/value/")

	cfg := FromViper(newViper())

	assert.Equal(t, "tok", cfg.Telegram.Token)
	assert.Equal(t, []string{"111", "222"}, cfg.Telegram.ChatIDs)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIURL)
	assert.Len(t, cfg.ScreenURLs, 2)
	assert.Equal(t, 500, cfg.SeenLimit)
	assert.Equal(t, 10, cfg.TopRows)
	assert.Equal(t, time.Second, cfg.SendInterval)
	assert.Equal(t, DefaultKeywords, cfg.Keywords)
	assert.False(t, cfg.Email.Enabled)
	require.NoError(t, cfg.Validate(true))
}

func TestValidateListsMissing(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("SCREENER_URL", "")

	cfg := FromViper(newViper())

	err := cfg.Validate(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	assert.Contains(t, err.Error(), "SCREENER_URL")
}

func TestEmailEnabledFallsBackToUser(t *testing.T) {
	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("TO_EMAIL", "you@example.com")

	cfg := FromViper(newViper())

	assert.True(t, cfg.Email.Enabled)
	assert.Equal(t, "me@example.com", cfg.Email.FromEmail)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
}

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"dividend", "rick rule"}, ParseKeywords(" Dividend, ,Rick Rule "))
	assert.Nil(t, ParseKeywords(""))
}
