package mocks

import (
	"context"
	"time"

	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (s *MockStore) AddParent(ctx context.Context, parent store.Parent) (string, error) {
	args := s.Called(ctx, parent)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListParents(ctx context.Context, filter store.Filter, limit int64) ([]store.Parent, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.Parent), args.Error(1)
}

func (s *MockStore) AddTeacher(ctx context.Context, teacher store.Teacher) (string, error) {
	args := s.Called(ctx, teacher)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListTeachers(ctx context.Context, filter store.Filter, limit int64) ([]store.Teacher, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.Teacher), args.Error(1)
}

func (s *MockStore) AddChild(ctx context.Context, child store.Child) (string, error) {
	args := s.Called(ctx, child)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListChildren(ctx context.Context, filter store.Filter, limit int64) ([]store.Child, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.Child), args.Error(1)
}

func (s *MockStore) AddMessage(ctx context.Context, message store.Message) (string, error) {
	args := s.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListMessages(ctx context.Context, filter store.Filter, limit int64) ([]store.Message, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.Message), args.Error(1)
}

func (s *MockStore) AddDailyLog(ctx context.Context, log store.DailyLog) (string, error) {
	args := s.Called(ctx, log)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListDailyLogs(ctx context.Context, filter store.Filter, limit int64) ([]store.DailyLog, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.DailyLog), args.Error(1)
}

func (s *MockStore) AddLeaveRequest(ctx context.Context, request store.LeaveRequest) (string, error) {
	args := s.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListLeaveRequests(ctx context.Context, filter store.Filter, limit int64) ([]store.LeaveRequest, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.LeaveRequest), args.Error(1)
}

func (s *MockStore) ApproveLeaveRequest(ctx context.Context, requestId string, note *string) error {
	args := s.Called(ctx, requestId, note)
	return args.Error(0)
}

func (s *MockStore) RejectLeaveRequest(ctx context.Context, requestId string, note *string) error {
	args := s.Called(ctx, requestId, note)
	return args.Error(0)
}

func (s *MockStore) AddMedicineRequest(ctx context.Context, request store.MedicineRequest) (string, error) {
	args := s.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListMedicineRequests(ctx context.Context, filter store.Filter, limit int64) ([]store.MedicineRequest, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.MedicineRequest), args.Error(1)
}

func (s *MockStore) ConfirmMedicineRequest(ctx context.Context, requestId string, teacher *string) (time.Time, error) {
	args := s.Called(ctx, requestId, teacher)
	return args.Get(0).(time.Time), args.Error(1)
}

func (s *MockStore) AddAlbumItem(ctx context.Context, item store.AlbumItem) (string, error) {
	args := s.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListAlbumItems(ctx context.Context, filter store.Filter, limit int64) ([]store.AlbumItem, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.AlbumItem), args.Error(1)
}

func (s *MockStore) AddNotification(ctx context.Context, notification store.Notification) (string, error) {
	args := s.Called(ctx, notification)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListNotifications(ctx context.Context, filter store.Filter, limit int64) ([]store.Notification, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.Notification), args.Error(1)
}

func (s *MockStore) AddPickupCode(ctx context.Context, code store.PickupCode) (string, error) {
	args := s.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (s *MockStore) ListPickupCodes(ctx context.Context, filter store.Filter, limit int64) ([]store.PickupCode, error) {
	args := s.Called(ctx, filter, limit)
	return args.Get(0).([]store.PickupCode), args.Error(1)
}
