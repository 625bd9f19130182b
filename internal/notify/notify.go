/*
Package notify delivers report and alert messages to chat, email and the console.
*/
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Sender is one delivery channel.
type Sender interface {
	Name() string
	Send(ctx context.Context, text string) error
}

// Notifier fans every message out to its senders, waiting on a rate limiter
// between messages so a burst of alerts does not trip chat flood limits.
type Notifier struct {
	senders []Sender
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewNotifier paces messages at one per interval. A non-positive interval disables pacing.
func NewNotifier(interval time.Duration, logger *zap.Logger, senders ...Sender) *Notifier {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{
		senders: senders,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// Send delivers text through every sender. It fails only when no sender
// succeeded; partial failures are logged.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if len(n.senders) == 0 {
		return errors.New("no notification channels configured")
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting to send: %w", err)
	}

	var errs []error
	for _, s := range n.senders {
		if err := s.Send(ctx, text); err != nil {
			n.logger.Warn("delivery failed", zap.String("channel", s.Name()), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		n.logger.Debug("message delivered", zap.String("channel", s.Name()))
	}

	if len(errs) == len(n.senders) {
		return errors.Join(errs...)
	}
	return nil
}
