// Package store defines the collaborator interfaces the search engine
// reads from: the media index and the label corpus.
package store

import (
	"context"

	"gallerysearch/internal/engine"
)

// MediaReader provides read access to the indexed media snapshot.
type MediaReader interface {
	// AllMedia returns every indexed image and video.
	AllMedia(ctx context.Context) ([]engine.MediaItem, error)
	// GetMedia returns one item by id, or nil when it does not exist.
	GetMedia(ctx context.Context, id string) (*engine.MediaItem, error)
	// MediaIDByPath returns the id of the item indexed at the given path,
	// or "" when the path is not indexed.
	MediaIDByPath(ctx context.Context, path string) (string, error)
}

// LabelReader provides read access to the label corpus.
type LabelReader interface {
	// AllLabelRecords returns the decoded label records for the whole corpus.
	AllLabelRecords(ctx context.Context) ([]engine.LabelRecord, error)
	// LabelsForMedia returns the record for one media id, or nil when the
	// item has no labels.
	LabelsForMedia(ctx context.Context, mediaID string) (*engine.LabelRecord, error)
	// FindLabelRecords returns records containing a label whose text
	// contains the given substring (case-insensitive).
	FindLabelRecords(ctx context.Context, substring string) ([]engine.LabelRecord, error)
}

// MediaWriter lets the scanner maintain the media index.
type MediaWriter interface {
	// UpsertMedia inserts an item or, when its path is already indexed,
	// refreshes the stored metadata keeping the original id.
	UpsertMedia(ctx context.Context, item engine.MediaItem) error
	// DeleteMedia removes an item and its labels.
	DeleteMedia(ctx context.Context, id string) error
}

// LabelWriter lets label importers attach serialized label data to media.
type LabelWriter interface {
	// SaveLabels stores the serialized "label:conf,..." string for a media id,
	// replacing any previous record.
	SaveLabels(ctx context.Context, mediaID, serialized string) error
}

// Store bundles all collaborator capabilities behind one handle.
type Store interface {
	MediaReader
	LabelReader
	MediaWriter
	LabelWriter
	Close() error
}
