package store

import "context"

func (s *Store) AddMessage(ctx context.Context, message Message) (string, error) {
	return s.CreateDocument(ctx, KindMessage, message)
}

func (s *Store) ListMessages(ctx context.Context, filter Filter, limit int64) ([]Message, error) {
	return getDocuments[Message](ctx, s, KindMessage, filter, limit)
}
