package store

import "context"

func (s *Store) AddPickupCode(ctx context.Context, code PickupCode) (string, error) {
	return s.CreateDocument(ctx, KindPickupCode, code)
}

func (s *Store) ListPickupCodes(ctx context.Context, filter Filter, limit int64) ([]PickupCode, error) {
	return getDocuments[PickupCode](ctx, s, KindPickupCode, filter, limit)
}
