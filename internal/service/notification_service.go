package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/events"
)

// NotificationService logs attendance events for downstream consumers.
// Actual delivery (email, webhooks) is out of scope; the handlers are the
// seam where it would attach.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventStaffCheckedIn, n.handleCheckedIn)
	n.dispatcher.Subscribe(events.EventStaffCheckedOut, n.handleCheckedOut)
	n.dispatcher.Subscribe(events.EventPasswordChanged, n.handlePasswordChanged)
}

func (n *NotificationService) handleCheckedIn(_ context.Context, event events.Event) error {
	n.logger.Info("StaffCheckedIn", zap.Int64("staff_id", event.StaffID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleCheckedOut(_ context.Context, event events.Event) error {
	n.logger.Info("StaffCheckedOut", zap.Int64("staff_id", event.StaffID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handlePasswordChanged(_ context.Context, event events.Event) error {
	n.logger.Info("PasswordChanged", zap.Int64("staff_id", event.StaffID))
	return nil
}
