package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"autobuy.backend/internal/config"
	"autobuy.backend/internal/domain/entities"
	"autobuy.backend/pkg/logger"
)

// Notifier dispatches a message over one channel to one recipient.
// Dispatch is one-shot and best-effort: no retry, no delivery confirmation.
type Notifier interface {
	Send(ctx context.Context, method entities.NotificationMethod, recipient, message string) error
}

// LogNotifier stands in for real outbound mail/SMS/telegram transports and
// writes each dispatch as a structured log line.
type LogNotifier struct{}

// NewLogNotifier creates a new log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Send logs the dispatch
func (n *LogNotifier) Send(ctx context.Context, method entities.NotificationMethod, recipient, message string) error {
	logger.Info(ctx, "notification dispatched",
		zap.String("channel", string(method)),
		zap.String("recipient", recipient),
		zap.String("message", message),
	)
	return nil
}

// ModerationNotifier fans a moderation request out to the moderator over
// every channel the user has configured. Failures are logged and swallowed;
// they must never fail the calling workflow.
type ModerationNotifier struct {
	notifier Notifier
	cfg      config.ModerationConfig
}

// NewModerationNotifier creates a new moderation notifier
func NewModerationNotifier(notifier Notifier, cfg config.ModerationConfig) *ModerationNotifier {
	return &ModerationNotifier{notifier: notifier, cfg: cfg}
}

// NotifyPending announces a user awaiting moderation
func (m *ModerationNotifier) NotifyPending(ctx context.Context, user *entities.User) {
	msg := fmt.Sprintf("New moderation request: %s (%s)", user.Email, user.AccountType)

	for _, method := range user.ModeratorNotificationMethods {
		recipient := m.recipientFor(method)
		if recipient == "" {
			continue
		}
		if err := m.notifier.Send(ctx, method, recipient, msg); err != nil {
			logger.Warn(ctx, "moderator notification failed",
				zap.String("channel", string(method)),
				zap.Error(err),
			)
		}
	}
}

func (m *ModerationNotifier) recipientFor(method entities.NotificationMethod) string {
	switch method {
	case entities.NotifyEmail:
		return m.cfg.Email
	case entities.NotifySMS:
		return m.cfg.Phone
	case entities.NotifyTelegram:
		return m.cfg.Telegram
	}
	return ""
}
