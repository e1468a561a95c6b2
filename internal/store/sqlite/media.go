package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gallerysearch/internal/engine"
)

const mediaColumns = "id, display_name, bucket_id, bucket_name, date_added, size, mime_type, is_video, duration, path"

func scanMediaItem(row interface{ Scan(...any) error }) (engine.MediaItem, error) {
	var item engine.MediaItem
	err := row.Scan(&item.ID, &item.DisplayName, &item.BucketID, &item.BucketName,
		&item.DateAdded, &item.Size, &item.MimeType, &item.IsVideo, &item.Duration, &item.Path)
	return item, err
}

// AllMedia returns every indexed item, newest first.
func (s *Store) AllMedia(ctx context.Context) ([]engine.MediaItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+mediaColumns+" FROM media ORDER BY date_added DESC, id")
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []engine.MediaItem
	for rows.Next() {
		item, err := scanMediaItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetMedia returns one item by id, or nil when it does not exist.
func (s *Store) GetMedia(ctx context.Context, id string) (*engine.MediaItem, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+mediaColumns+" FROM media WHERE id = ?", id)
	item, err := scanMediaItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get media: %w", err)
	}
	return &item, nil
}

// UpsertMedia inserts an item. When the path is already indexed the stored
// metadata is refreshed and the original id is kept.
func (s *Store) UpsertMedia(ctx context.Context, item engine.MediaItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO media (id, display_name, bucket_id, bucket_name, date_added, size, mime_type, is_video, duration, path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			display_name = excluded.display_name,
			bucket_id    = excluded.bucket_id,
			bucket_name  = excluded.bucket_name,
			date_added   = excluded.date_added,
			size         = excluded.size,
			mime_type    = excluded.mime_type,
			is_video     = excluded.is_video,
			duration     = excluded.duration`,
		item.ID, item.DisplayName, item.BucketID, item.BucketName,
		item.DateAdded, item.Size, item.MimeType, item.IsVideo, item.Duration, item.Path)
	if err != nil {
		return fmt.Errorf("upsert media: %w", err)
	}
	return nil
}

// DeleteMedia removes an item; its label record goes with it.
func (s *Store) DeleteMedia(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM media WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

// MediaIDByPath returns the id of the item indexed at path, or "" when the
// path is not indexed.
func (s *Store) MediaIDByPath(ctx context.Context, path string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM media WHERE path = ?", path).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("media id by path: %w", err)
	}
	return id, nil
}
