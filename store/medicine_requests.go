package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) AddMedicineRequest(ctx context.Context, request MedicineRequest) (string, error) {
	return s.CreateDocument(ctx, KindMedicineRequest, request)
}

func (s *Store) ListMedicineRequests(ctx context.Context, filter Filter, limit int64) ([]MedicineRequest, error) {
	return getDocuments[MedicineRequest](ctx, s, KindMedicineRequest, filter, limit)
}

// ConfirmMedicineRequest returns the confirmation time it stored.
func (s *Store) ConfirmMedicineRequest(ctx context.Context, requestId string, teacher *string) (time.Time, error) {
	now := time.Now().UTC()
	err := s.updateByID(ctx, KindMedicineRequest, requestId, bson.M{
		"status":       STATUS_CONFIRMED,
		"confirmed_at": now,
		"confirmed_by": teacher,
		"updated_at":   now,
	})
	return now, err
}
