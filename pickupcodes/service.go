package pickupcodes

import (
	"context"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/pkg/errors"
)

type Service interface {
	AddPickupCode(ctx context.Context, code store.PickupCode) (string, error)
	ListPickupCodes(ctx context.Context, childId, code *string, limit int64) ([]store.PickupCode, error)
}

type PickupCodeService struct {
	Store interface {
		AddPickupCode(ctx context.Context, code store.PickupCode) (string, error)
		ListPickupCodes(ctx context.Context, filter store.Filter, limit int64) ([]store.PickupCode, error)
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (c *PickupCodeService) AddPickupCode(ctx context.Context, code store.PickupCode) (string, error) {
	if err := shared.ValidatePayload(code); err != nil {
		return "", err
	}
	id, err := c.Store.AddPickupCode(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "failed to add pickup code")
	}
	return id, nil
}

func (c *PickupCodeService) ListPickupCodes(ctx context.Context, childId, code *string, limit int64) ([]store.PickupCode, error) {
	filter := store.Filter{}
	if childId != nil {
		filter["child_id"] = *childId
	}
	if code != nil {
		filter["code"] = *code
	}
	codes, err := c.Store.ListPickupCodes(ctx, filter, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pickup codes")
	}
	return codes, nil
}
