package notify

import (
	"context"
	"encoding/json"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
)

// QueueNotifier publishes booking notifications to RabbitMQ; the worker
// turns them into e-mails. Failures are logged, never surfaced.
type QueueNotifier struct {
	rmq    *RabbitClient
	logger Logger
}

// NewQueueNotifier creates a queue-backed notifier
func NewQueueNotifier(rmq *RabbitClient, logger Logger) *QueueNotifier {
	return &QueueNotifier{rmq: rmq, logger: logger}
}

// BookingCreated enqueues the booking's notification message.
func (n *QueueNotifier) BookingCreated(_ context.Context, b *domain.Booking) {
	msg := NewBookingMessage(b)

	body, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("Notify: failed to marshal message for %s: %v", b.BookingRef, err)
		return
	}

	if err := n.rmq.Publish(body); err != nil {
		n.logger.Error("Notify: failed to publish message for %s: %v", b.BookingRef, err)
		return
	}

	n.logger.Info("Notify: queued notifications for %s (msg=%s)", b.BookingRef, msg.ID)
}

// DirectNotifier sends both e-mails inline, used when the queue is disabled.
type DirectNotifier struct {
	mailer *Mailer
	logger Logger
}

// NewDirectNotifier creates a notifier that mails without a queue
func NewDirectNotifier(mailer *Mailer, logger Logger) *DirectNotifier {
	return &DirectNotifier{mailer: mailer, logger: logger}
}

// BookingCreated sends the operator alert and the customer confirmation.
// Each failure is logged independently; one does not stop the other.
func (n *DirectNotifier) BookingCreated(_ context.Context, b *domain.Booking) {
	msg := NewBookingMessage(b)

	if err := n.mailer.SendOperatorAlert(msg); err != nil {
		n.logger.Warn("Notify: operator alert for %s failed: %v", b.BookingRef, err)
	}
	if err := n.mailer.SendCustomerConfirmation(msg); err != nil {
		n.logger.Warn("Notify: customer confirmation for %s failed: %v", b.BookingRef, err)
	}
}

// NopNotifier is used when both the queue and SMTP are disabled.
type NopNotifier struct {
	logger Logger
}

// NewNopNotifier creates a notifier that only logs
func NewNopNotifier(logger Logger) *NopNotifier {
	return &NopNotifier{logger: logger}
}

// BookingCreated logs the booking and does nothing else.
func (n *NopNotifier) BookingCreated(_ context.Context, b *domain.Booking) {
	n.logger.Info("Notify: notifications disabled, skipping %s", b.BookingRef)
}
