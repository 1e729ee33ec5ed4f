package messages

import (
	"context"
	"time"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/pkg/errors"
)

type Service interface {
	SendMessage(ctx context.Context, message store.Message) (string, error)
	ListMessages(ctx context.Context, childId *string, limit int64) ([]store.Message, error)
}

type MessageService struct {
	Store interface {
		AddMessage(ctx context.Context, message store.Message) (string, error)
		ListMessages(ctx context.Context, filter store.Filter, limit int64) ([]store.Message, error)
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (c *MessageService) SendMessage(ctx context.Context, message store.Message) (string, error) {
	if err := shared.ValidatePayload(message); err != nil {
		return "", err
	}
	if message.Timestamp == nil {
		now := time.Now().UTC()
		message.Timestamp = &now
	}
	id, err := c.Store.AddMessage(ctx, message)
	if err != nil {
		return "", errors.Wrap(err, "failed to send message")
	}
	return id, nil
}

func (c *MessageService) ListMessages(ctx context.Context, childId *string, limit int64) ([]store.Message, error) {
	filter := store.Filter{}
	if childId != nil {
		filter["child_id"] = *childId
	}
	msgs, err := c.Store.ListMessages(ctx, filter, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}
	return msgs, nil
}
