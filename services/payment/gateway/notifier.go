package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/arcpay/internal/pkg/constants"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
)

// JSONPublisher is the subset of the NATS client the gateways need
type JSONPublisher interface {
	PublishJSON(subject string, message interface{}) error
}

// Notifier hands notifications to the delivery service over NATS.
// With a nil publisher it only logs, which is the "log" sink.
type Notifier struct {
	publisher  JSONPublisher
	adminEmail string
	now        func() time.Time
}

// NewNotifier creates a notifier. publisher may be nil.
func NewNotifier(publisher JSONPublisher, adminEmail string) *Notifier {
	return &Notifier{
		publisher:  publisher,
		adminEmail: adminEmail,
		now:        time.Now,
	}
}

// NotifyUser sends message to user on channel, or on the user's preferred channel when empty
func (n *Notifier) NotifyUser(ctx context.Context, user *models.User, message, channel string) error {
	if user == nil {
		return fmt.Errorf("notify user: %w", models.ErrUnknownUser)
	}
	if channel == "" {
		channel = user.Preferences.NotificationChannel
	}
	if channel == "" {
		channel = models.ChannelEmail
	}

	return n.send(ctx, constants.SubjectNotificationUser, models.Notification{
		Kind:      models.NotificationUser,
		UserID:    user.UserID,
		Channel:   channel,
		Contact:   user.Contact(channel),
		Message:   message,
		CreatedAt: n.now().UTC(),
	})
}

// NotifyAdmin emails the operations address
func (n *Notifier) NotifyAdmin(ctx context.Context, subject, body string) error {
	return n.send(ctx, constants.SubjectNotificationAdmin, models.Notification{
		Kind:      models.NotificationAdmin,
		Channel:   models.ChannelEmail,
		Contact:   n.adminEmail,
		Subject:   subject,
		Message:   body,
		CreatedAt: n.now().UTC(),
	})
}

func (n *Notifier) send(ctx context.Context, subject string, msg models.Notification) error {
	logger.InfoCtx(ctx, "Notification dispatched",
		logger.String("kind", string(msg.Kind)),
		logger.String("user_id", msg.UserID),
		logger.String("channel", msg.Channel),
		logger.String("subject", msg.Subject))

	if n.publisher == nil {
		return nil
	}
	if err := n.publisher.PublishJSON(subject, msg); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
