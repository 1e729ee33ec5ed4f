package children

import (
	"context"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/pkg/errors"
)

type Service interface {
	AddChild(ctx context.Context, child store.Child) (string, error)
	ListChildren(ctx context.Context, parentId, classId *string, limit int64) ([]store.Child, error)
}

type ChildService struct {
	Store interface {
		AddChild(ctx context.Context, child store.Child) (string, error)
		ListChildren(ctx context.Context, filter store.Filter, limit int64) ([]store.Child, error)
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (c *ChildService) AddChild(ctx context.Context, child store.Child) (string, error) {
	if err := shared.ValidatePayload(child); err != nil {
		return "", err
	}
	id, err := c.Store.AddChild(ctx, child)
	if err != nil {
		return "", errors.Wrap(err, "failed to add child")
	}
	return id, nil
}

func (c *ChildService) ListChildren(ctx context.Context, parentId, classId *string, limit int64) ([]store.Child, error) {
	filter := store.Filter{}
	if parentId != nil {
		filter["parent_id"] = *parentId
	}
	if classId != nil {
		filter["class_id"] = *classId
	}
	children, err := c.Store.ListChildren(ctx, filter, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list children")
	}
	return children, nil
}
