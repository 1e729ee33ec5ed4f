package store

import "context"

func (s *Store) AddAlbumItem(ctx context.Context, item AlbumItem) (string, error) {
	return s.CreateDocument(ctx, KindAlbumItem, item)
}

func (s *Store) ListAlbumItems(ctx context.Context, filter Filter, limit int64) ([]AlbumItem, error) {
	return getDocuments[AlbumItem](ctx, s, KindAlbumItem, filter, limit)
}
