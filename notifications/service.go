package notifications

import (
	"context"
	"time"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/pkg/errors"
)

type Service interface {
	AddNotification(ctx context.Context, notification store.Notification) (string, error)
	ListNotifications(ctx context.Context, childId *string, limit int64) ([]store.Notification, error)
}

type NotificationService struct {
	Store interface {
		AddNotification(ctx context.Context, notification store.Notification) (string, error)
		ListNotifications(ctx context.Context, filter store.Filter, limit int64) ([]store.Notification, error)
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (c *NotificationService) AddNotification(ctx context.Context, notification store.Notification) (string, error) {
	if err := shared.ValidatePayload(notification); err != nil {
		return "", err
	}
	if notification.Type == "" {
		notification.Type = store.NOTIFICATION_GENERAL
	}
	if notification.CreatedAt == nil {
		now := time.Now().UTC()
		notification.CreatedAt = &now
	}
	id, err := c.Store.AddNotification(ctx, notification)
	if err != nil {
		return "", errors.Wrap(err, "failed to add notification")
	}
	return id, nil
}

func (c *NotificationService) ListNotifications(ctx context.Context, childId *string, limit int64) ([]store.Notification, error) {
	filter := store.Filter{}
	if childId != nil {
		filter["child_id"] = *childId
	}
	ns, err := c.Store.ListNotifications(ctx, filter, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}
	return ns, nil
}
