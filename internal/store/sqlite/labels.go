package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gallerysearch/internal/engine"
)

// AllLabelRecords returns the decoded label corpus. Records that decode to
// zero pairs are still returned; the engine treats them as non-matching.
func (s *Store) AllLabelRecords(ctx context.Context) ([]engine.LabelRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT media_id, labels FROM labels ORDER BY media_id")
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	defer rows.Close()

	var records []engine.LabelRecord
	for rows.Next() {
		var mediaID, serialized string
		if err := rows.Scan(&mediaID, &serialized); err != nil {
			return nil, fmt.Errorf("scan labels: %w", err)
		}
		records = append(records, engine.LabelRecord{
			MediaID: mediaID,
			Labels:  engine.ParseLabelsWithConfidence(serialized),
		})
	}
	return records, rows.Err()
}

// LabelsForMedia returns the record for one media id, or nil when the item
// carries no labels.
func (s *Store) LabelsForMedia(ctx context.Context, mediaID string) (*engine.LabelRecord, error) {
	var serialized string
	err := s.db.QueryRowContext(ctx,
		"SELECT labels FROM labels WHERE media_id = ?", mediaID).Scan(&serialized)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("labels for media: %w", err)
	}
	return &engine.LabelRecord{
		MediaID: mediaID,
		Labels:  engine.ParseLabelsWithConfidence(serialized),
	}, nil
}

// FindLabelRecords returns records containing a decoded label whose text
// contains the substring, case-insensitively. The LIKE pre-filter narrows
// the scan; the decoded check is authoritative.
func (s *Store) FindLabelRecords(ctx context.Context, substring string) ([]engine.LabelRecord, error) {
	needle := strings.ToLower(strings.TrimSpace(substring))
	if needle == "" {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT media_id, labels FROM labels WHERE lower(labels) LIKE '%' || ? || '%' ORDER BY media_id", needle)
	if err != nil {
		return nil, fmt.Errorf("find labels: %w", err)
	}
	defer rows.Close()

	var records []engine.LabelRecord
	for rows.Next() {
		var mediaID, serialized string
		if err := rows.Scan(&mediaID, &serialized); err != nil {
			return nil, fmt.Errorf("scan labels: %w", err)
		}
		pairs := engine.ParseLabelsWithConfidence(serialized)
		for _, p := range pairs {
			if strings.Contains(strings.ToLower(p.Label), needle) {
				records = append(records, engine.LabelRecord{MediaID: mediaID, Labels: pairs})
				break
			}
		}
	}
	return records, rows.Err()
}

// SaveLabels stores the serialized label string for a media id, replacing
// any previous record.
func (s *Store) SaveLabels(ctx context.Context, mediaID, serialized string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO labels (media_id, labels) VALUES (?, ?)", mediaID, serialized)
	if err != nil {
		return fmt.Errorf("save labels: %w", err)
	}
	return nil
}
