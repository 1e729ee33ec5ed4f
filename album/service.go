package album

import (
	"context"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/pkg/errors"
)

type Service interface {
	AddAlbumItem(ctx context.Context, item store.AlbumItem) (string, error)
	ListAlbumItems(ctx context.Context, childId, classId *string, limit int64) ([]store.AlbumItem, error)
}

type AlbumService struct {
	Store interface {
		AddAlbumItem(ctx context.Context, item store.AlbumItem) (string, error)
		ListAlbumItems(ctx context.Context, filter store.Filter, limit int64) ([]store.AlbumItem, error)
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (c *AlbumService) AddAlbumItem(ctx context.Context, item store.AlbumItem) (string, error) {
	if err := shared.ValidatePayload(item); err != nil {
		return "", err
	}
	if item.MediaType == "" {
		item.MediaType = store.MEDIA_PHOTO
	}
	id, err := c.Store.AddAlbumItem(ctx, item)
	if err != nil {
		return "", errors.Wrap(err, "failed to add album item")
	}
	return id, nil
}

func (c *AlbumService) ListAlbumItems(ctx context.Context, childId, classId *string, limit int64) ([]store.AlbumItem, error) {
	filter := store.Filter{}
	if childId != nil {
		filter["child_id"] = *childId
	}
	if classId != nil {
		filter["class_id"] = *classId
	}
	items, err := c.Store.ListAlbumItems(ctx, filter, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list album items")
	}
	return items, nil
}
