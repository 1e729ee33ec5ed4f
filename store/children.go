package store

import "context"

func (s *Store) AddChild(ctx context.Context, child Child) (string, error) {
	return s.CreateDocument(ctx, KindChild, child)
}

func (s *Store) ListChildren(ctx context.Context, filter Filter, limit int64) ([]Child, error) {
	return getDocuments[Child](ctx, s, KindChild, filter, limit)
}
