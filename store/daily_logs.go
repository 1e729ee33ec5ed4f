package store

import "context"

func (s *Store) AddDailyLog(ctx context.Context, log DailyLog) (string, error) {
	return s.CreateDocument(ctx, KindDailyLog, log)
}

func (s *Store) ListDailyLogs(ctx context.Context, filter Filter, limit int64) ([]DailyLog, error) {
	return getDocuments[DailyLog](ctx, s, KindDailyLog, filter, limit)
}
