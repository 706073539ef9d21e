package notify

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/pharmacy-booking/internal/config"
	"github.com/spec-kit/pharmacy-booking/internal/events"
)

// Notifier emits notifications for booking events. Delivery is stubbed to
// structured logs; the config carries the endpoints a real sender would use.
type Notifier struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// New creates the notifier.
func New(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *Notifier {
	return &Notifier{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *Notifier) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAppointmentBooked, n.handleBooked)
	n.dispatcher.Subscribe(events.EventAppointmentStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventAppointmentCancelled, n.handleCancelled)
}

func (n *Notifier) handleBooked(ctx context.Context, event events.Event) error {
	n.logger.Info("AppointmentBooked",
		zap.String("appointment_id", event.AppointmentID),
		zap.Any("payload", event.Payload))
	n.sendEmailStub(ctx, event)
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *Notifier) handleStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("AppointmentStatusChanged",
		zap.String("appointment_id", event.AppointmentID),
		zap.Any("payload", event.Payload))
	n.sendEmailStub(ctx, event)
	return nil
}

func (n *Notifier) handleCancelled(ctx context.Context, event events.Event) error {
	n.logger.Info("AppointmentCancelled",
		zap.String("appointment_id", event.AppointmentID))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *Notifier) sendEmailStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("appointment_id", event.AppointmentID),
		zap.String("event_type", string(event.Type)))
}

func (n *Notifier) sendWebhookStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("appointment_id", event.AppointmentID),
		zap.String("event_type", string(event.Type)))
}
