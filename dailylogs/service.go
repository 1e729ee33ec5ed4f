package dailylogs

import (
	"context"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/pkg/errors"
)

type Service interface {
	AddDailyLog(ctx context.Context, log store.DailyLog) (string, error)
	ListDailyLogs(ctx context.Context, childId, date *string, limit int64) ([]store.DailyLog, error)
}

// One log per child per day is a convention, not enforced here.
type DailyLogService struct {
	Store interface {
		AddDailyLog(ctx context.Context, log store.DailyLog) (string, error)
		ListDailyLogs(ctx context.Context, filter store.Filter, limit int64) ([]store.DailyLog, error)
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (c *DailyLogService) AddDailyLog(ctx context.Context, log store.DailyLog) (string, error) {
	if err := shared.ValidatePayload(log); err != nil {
		return "", err
	}
	id, err := c.Store.AddDailyLog(ctx, log)
	if err != nil {
		return "", errors.Wrap(err, "failed to add daily log")
	}
	return id, nil
}

func (c *DailyLogService) ListDailyLogs(ctx context.Context, childId, date *string, limit int64) ([]store.DailyLog, error) {
	filter := store.Filter{}
	if childId != nil {
		filter["child_id"] = *childId
	}
	if date != nil {
		filter["date"] = *date
	}
	logs, err := c.Store.ListDailyLogs(ctx, filter, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily logs")
	}
	return logs, nil
}
