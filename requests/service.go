package requests

import (
	"context"
	"time"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/pkg/errors"
)

type Service interface {
	AddLeaveRequest(ctx context.Context, request store.LeaveRequest) (string, error)
	ListLeaveRequests(ctx context.Context, childId, status *string, limit int64) ([]store.LeaveRequest, error)
	ApproveLeaveRequest(ctx context.Context, requestId string, note *string) error
	RejectLeaveRequest(ctx context.Context, requestId string, note *string) error

	AddMedicineRequest(ctx context.Context, request store.MedicineRequest) (string, error)
	ListMedicineRequests(ctx context.Context, childId, status *string, limit int64) ([]store.MedicineRequest, error)
	ConfirmMedicineRequest(ctx context.Context, requestId string, teacher *string) (time.Time, error)
}

type RequestService struct {
	Store interface {
		AddLeaveRequest(ctx context.Context, request store.LeaveRequest) (string, error)
		ListLeaveRequests(ctx context.Context, filter store.Filter, limit int64) ([]store.LeaveRequest, error)
		ApproveLeaveRequest(ctx context.Context, requestId string, note *string) error
		RejectLeaveRequest(ctx context.Context, requestId string, note *string) error

		AddMedicineRequest(ctx context.Context, request store.MedicineRequest) (string, error)
		ListMedicineRequests(ctx context.Context, filter store.Filter, limit int64) ([]store.MedicineRequest, error)
		ConfirmMedicineRequest(ctx context.Context, requestId string, teacher *string) (time.Time, error)
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (c *RequestService) AddLeaveRequest(ctx context.Context, request store.LeaveRequest) (string, error) {
	if err := shared.ValidatePayload(request); err != nil {
		return "", err
	}
	if request.Status == "" {
		request.Status = store.STATUS_PENDING
	}
	id, err := c.Store.AddLeaveRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "failed to add leave request")
	}
	return id, nil
}

func (c *RequestService) ListLeaveRequests(ctx context.Context, childId, status *string, limit int64) ([]store.LeaveRequest, error) {
	reqs, err := c.Store.ListLeaveRequests(ctx, requestFilter(childId, status), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leave requests")
	}
	return reqs, nil
}

func (c *RequestService) ApproveLeaveRequest(ctx context.Context, requestId string, note *string) error {
	if err := c.Store.ApproveLeaveRequest(ctx, requestId, note); err != nil {
		return errors.Wrap(err, "failed to approve leave request")
	}
	return nil
}

func (c *RequestService) RejectLeaveRequest(ctx context.Context, requestId string, note *string) error {
	if err := c.Store.RejectLeaveRequest(ctx, requestId, note); err != nil {
		return errors.Wrap(err, "failed to reject leave request")
	}
	return nil
}

func (c *RequestService) AddMedicineRequest(ctx context.Context, request store.MedicineRequest) (string, error) {
	if err := shared.ValidatePayload(request); err != nil {
		return "", err
	}
	if request.Status == "" {
		request.Status = store.STATUS_PENDING
	}
	id, err := c.Store.AddMedicineRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "failed to add medicine request")
	}
	return id, nil
}

func (c *RequestService) ListMedicineRequests(ctx context.Context, childId, status *string, limit int64) ([]store.MedicineRequest, error) {
	reqs, err := c.Store.ListMedicineRequests(ctx, requestFilter(childId, status), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medicine requests")
	}
	return reqs, nil
}

func (c *RequestService) ConfirmMedicineRequest(ctx context.Context, requestId string, teacher *string) (time.Time, error) {
	confirmedAt, err := c.Store.ConfirmMedicineRequest(ctx, requestId, teacher)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to confirm medicine request")
	}
	return confirmedAt, nil
}

func requestFilter(childId, status *string) store.Filter {
	filter := store.Filter{}
	if childId != nil {
		filter["child_id"] = *childId
	}
	if status != nil {
		filter["status"] = *status
	}
	return filter
}
