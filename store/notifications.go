package store

import "context"

func (s *Store) AddNotification(ctx context.Context, notification Notification) (string, error) {
	return s.CreateDocument(ctx, KindNotification, notification)
}

func (s *Store) ListNotifications(ctx context.Context, filter Filter, limit int64) ([]Notification, error) {
	return getDocuments[Notification](ctx, s, KindNotification, filter, limit)
}
