// Package mock provides an in-memory store implementation for testing.
package mock

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gallerysearch/internal/engine"
	"gallerysearch/internal/store"
)

// MockStore is an in-memory implementation of store.Store
type MockStore struct {
	mu     sync.RWMutex
	media  map[string]engine.MediaItem
	labels map[string]string

	// Error injection
	AllMediaError        error
	GetMediaError        error
	AllLabelRecordsError error
	LabelsForMediaError  error
	FindLabelsError      error
	UpsertMediaError     error
	DeleteMediaError     error
	SaveLabelsError      error
}

// NewMockStore creates a new empty mock store
func NewMockStore() *MockStore {
	return &MockStore{
		media:  make(map[string]engine.MediaItem),
		labels: make(map[string]string),
	}
}

// AddMedia seeds the mock with a media item
func (m *MockStore) AddMedia(item engine.MediaItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.media[item.ID] = item
}

// SetLabels seeds the mock with a serialized label record
func (m *MockStore) SetLabels(mediaID, serialized string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labels[mediaID] = serialized
}

// AllMedia returns every seeded item, newest first
func (m *MockStore) AllMedia(ctx context.Context) ([]engine.MediaItem, error) {
	if m.AllMediaError != nil {
		return nil, m.AllMediaError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]engine.MediaItem, 0, len(m.media))
	for _, item := range m.media {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].DateAdded != items[j].DateAdded {
			return items[i].DateAdded > items[j].DateAdded
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// GetMedia returns one item by id, or nil when it does not exist
func (m *MockStore) GetMedia(ctx context.Context, id string) (*engine.MediaItem, error) {
	if m.GetMediaError != nil {
		return nil, m.GetMediaError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.media[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// MediaIDByPath returns the id of the item at path, or "" when not indexed
func (m *MockStore) MediaIDByPath(ctx context.Context, path string) (string, error) {
	if m.GetMediaError != nil {
		return "", m.GetMediaError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, item := range m.media {
		if item.Path == path {
			return id, nil
		}
	}
	return "", nil
}

// AllLabelRecords returns the decoded label corpus
func (m *MockStore) AllLabelRecords(ctx context.Context) ([]engine.LabelRecord, error) {
	if m.AllLabelRecordsError != nil {
		return nil, m.AllLabelRecordsError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.labels))
	for id := range m.labels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	records := make([]engine.LabelRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, engine.LabelRecord{
			MediaID: id,
			Labels:  engine.ParseLabelsWithConfidence(m.labels[id]),
		})
	}
	return records, nil
}

// LabelsForMedia returns the record for one media id, or nil when absent
func (m *MockStore) LabelsForMedia(ctx context.Context, mediaID string) (*engine.LabelRecord, error) {
	if m.LabelsForMediaError != nil {
		return nil, m.LabelsForMediaError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	serialized, ok := m.labels[mediaID]
	if !ok {
		return nil, nil
	}
	return &engine.LabelRecord{
		MediaID: mediaID,
		Labels:  engine.ParseLabelsWithConfidence(serialized),
	}, nil
}

// FindLabelRecords returns records with a label containing the substring
func (m *MockStore) FindLabelRecords(ctx context.Context, substring string) ([]engine.LabelRecord, error) {
	if m.FindLabelsError != nil {
		return nil, m.FindLabelsError
	}
	needle := strings.ToLower(strings.TrimSpace(substring))
	if needle == "" {
		return nil, nil
	}
	all, err := m.AllLabelRecords(ctx)
	if err != nil {
		return nil, err
	}
	var records []engine.LabelRecord
	for _, rec := range all {
		for _, p := range rec.Labels {
			if strings.Contains(strings.ToLower(p.Label), needle) {
				records = append(records, rec)
				break
			}
		}
	}
	return records, nil
}

// UpsertMedia inserts or refreshes an item, keyed by path like the real store
func (m *MockStore) UpsertMedia(ctx context.Context, item engine.MediaItem) error {
	if m.UpsertMediaError != nil {
		return m.UpsertMediaError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, existing := range m.media {
		if existing.Path == item.Path {
			item.ID = id
			m.media[id] = item
			return nil
		}
	}
	m.media[item.ID] = item
	return nil
}

// DeleteMedia removes an item and its labels
func (m *MockStore) DeleteMedia(ctx context.Context, id string) error {
	if m.DeleteMediaError != nil {
		return m.DeleteMediaError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.media, id)
	delete(m.labels, id)
	return nil
}

// SaveLabels stores the serialized label string for a media id
func (m *MockStore) SaveLabels(ctx context.Context, mediaID, serialized string) error {
	if m.SaveLabelsError != nil {
		return m.SaveLabelsError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labels[mediaID] = serialized
	return nil
}

// Close is a no-op for the in-memory store
func (m *MockStore) Close() error {
	return nil
}

// Verify interface compliance
var _ store.Store = (*MockStore)(nil)
