package notify

import (
	"context"
	"log"
)

// Notifier delivers best-effort email to users. Implementations must never
// be called on a request's critical path: booking services dispatch sends
// on a detached goroutine and only log failures.
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// LogNotifier writes notifications to the process log instead of sending
// them. Used in development and whenever SMTP is not configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(_ context.Context, to, subject, _ string) error {
	log.Printf("notify (log only): to=%s subject=%q", to, subject)
	return nil
}
