package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) AddLeaveRequest(ctx context.Context, request LeaveRequest) (string, error) {
	return s.CreateDocument(ctx, KindLeaveRequest, request)
}

func (s *Store) ListLeaveRequests(ctx context.Context, filter Filter, limit int64) ([]LeaveRequest, error) {
	return getDocuments[LeaveRequest](ctx, s, KindLeaveRequest, filter, limit)
}

func (s *Store) ApproveLeaveRequest(ctx context.Context, requestId string, note *string) error {
	return s.updateByID(ctx, KindLeaveRequest, requestId, bson.M{
		"status":       STATUS_APPROVED,
		"teacher_note": note,
		"updated_at":   time.Now().UTC(),
	})
}

func (s *Store) RejectLeaveRequest(ctx context.Context, requestId string, note *string) error {
	return s.updateByID(ctx, KindLeaveRequest, requestId, bson.M{
		"status":       STATUS_REJECTED,
		"teacher_note": note,
		"updated_at":   time.Now().UTC(),
	})
}
