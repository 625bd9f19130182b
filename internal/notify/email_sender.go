package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
	gomail "gopkg.in/mail.v2"

	"github.com/shanehull/screenwatch/internal/config"
)

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailSender delivers a copy of each message via SMTP.
type EmailSender struct {
	cfg      config.EmailConfig
	renderer *HTMLEmailRenderer
	dialer   mailDialer
	logger   *zap.Logger
}

func NewEmailSender(cfg config.EmailConfig, logger *zap.Logger) *EmailSender {
	d := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	d.Timeout = 10 * time.Second
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailSender{cfg: cfg, renderer: NewHTMLEmailRenderer(), dialer: d, logger: logger}
}

func (s *EmailSender) Name() string { return "email" }

// Send renders text and mails it. The context is not honoured by the SMTP
// client beyond the dialer timeout.
func (s *EmailSender) Send(_ context.Context, text string) error {
	if !s.cfg.Enabled {
		return nil
	}

	msg, err := s.renderer.Render(text)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.FromEmail)
	m.SetHeader("To", s.cfg.ToEmail)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Warn("email send failed", zap.String("to", s.cfg.ToEmail), zap.String("subject", msg.Subject), zap.Error(err))
		return err
	}

	s.logger.Info("email sent", zap.String("subject", msg.Subject))
	return nil
}
