package store

import "context"

func (s *Store) AddParent(ctx context.Context, parent Parent) (string, error) {
	return s.CreateDocument(ctx, KindParent, parent)
}

func (s *Store) ListParents(ctx context.Context, filter Filter, limit int64) ([]Parent, error) {
	return getDocuments[Parent](ctx, s, KindParent, filter, limit)
}

func (s *Store) AddTeacher(ctx context.Context, teacher Teacher) (string, error) {
	return s.CreateDocument(ctx, KindTeacher, teacher)
}

func (s *Store) ListTeachers(ctx context.Context, filter Filter, limit int64) ([]Teacher, error) {
	return getDocuments[Teacher](ctx, s, KindTeacher, filter, limit)
}
