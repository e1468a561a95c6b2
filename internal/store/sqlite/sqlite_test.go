package sqlite

import (
	"context"
	"testing"

	"gallerysearch/internal/engine"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testItem(id, path string) engine.MediaItem {
	return engine.MediaItem{
		ID:          id,
		DisplayName: "IMG_" + id + ".jpg",
		BucketID:    "b1",
		BucketName:  "Camera",
		DateAdded:   1700000000,
		Size:        1024,
		MimeType:    "image/jpeg",
		Path:        path,
	}
}

func TestUpsertAndGetMedia(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item := testItem("m1", "/photos/IMG_m1.jpg")
	if err := s.UpsertMedia(ctx, item); err != nil {
		t.Fatalf("UpsertMedia() error = %v", err)
	}

	got, err := s.GetMedia(ctx, "m1")
	if err != nil {
		t.Fatalf("GetMedia() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetMedia() = nil, want item")
	}
	if got.DisplayName != item.DisplayName || got.Path != item.Path {
		t.Errorf("GetMedia() = %+v, want %+v", got, item)
	}
}

func TestGetMediaMissing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetMedia(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetMedia() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetMedia() = %+v, want nil", got)
	}
}

func TestUpsertKeepsIDOnPathConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := testItem("m1", "/photos/a.jpg")
	if err := s.UpsertMedia(ctx, first); err != nil {
		t.Fatalf("UpsertMedia() error = %v", err)
	}

	// rescan of the same path produces a fresh id but must not duplicate
	second := testItem("m2", "/photos/a.jpg")
	second.Size = 2048
	if err := s.UpsertMedia(ctx, second); err != nil {
		t.Fatalf("UpsertMedia() rescan error = %v", err)
	}

	all, err := s.AllMedia(ctx)
	if err != nil {
		t.Fatalf("AllMedia() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("AllMedia() returned %d items, want 1", len(all))
	}
	if all[0].ID != "m1" {
		t.Errorf("id = %q, want original id m1", all[0].ID)
	}
	if all[0].Size != 2048 {
		t.Errorf("size = %d, want refreshed 2048", all[0].Size)
	}
}

func TestAllMediaOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := testItem("old", "/photos/old.jpg")
	older.DateAdded = 1600000000
	newer := testItem("new", "/photos/new.jpg")
	newer.DateAdded = 1700000000

	for _, item := range []engine.MediaItem{older, newer} {
		if err := s.UpsertMedia(ctx, item); err != nil {
			t.Fatalf("UpsertMedia() error = %v", err)
		}
	}

	all, err := s.AllMedia(ctx)
	if err != nil {
		t.Fatalf("AllMedia() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllMedia() returned %d items, want 2", len(all))
	}
	if all[0].ID != "new" || all[1].ID != "old" {
		t.Errorf("order = [%s %s], want newest first", all[0].ID, all[1].ID)
	}
}

func TestMediaIDByPath(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpsertMedia(ctx, testItem("m1", "/photos/a.jpg")); err != nil {
		t.Fatalf("UpsertMedia() error = %v", err)
	}

	id, err := s.MediaIDByPath(ctx, "/photos/a.jpg")
	if err != nil {
		t.Fatalf("MediaIDByPath() error = %v", err)
	}
	if id != "m1" {
		t.Errorf("MediaIDByPath() = %q, want m1", id)
	}

	id, err = s.MediaIDByPath(ctx, "/photos/missing.jpg")
	if err != nil {
		t.Fatalf("MediaIDByPath() error = %v", err)
	}
	if id != "" {
		t.Errorf("MediaIDByPath() = %q, want empty", id)
	}
}

func TestSaveAndReadLabels(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpsertMedia(ctx, testItem("m1", "/photos/a.jpg")); err != nil {
		t.Fatalf("UpsertMedia() error = %v", err)
	}
	if err := s.SaveLabels(ctx, "m1", "dog:0.95,pet:0.80"); err != nil {
		t.Fatalf("SaveLabels() error = %v", err)
	}

	rec, err := s.LabelsForMedia(ctx, "m1")
	if err != nil {
		t.Fatalf("LabelsForMedia() error = %v", err)
	}
	if rec == nil {
		t.Fatal("LabelsForMedia() = nil, want record")
	}
	if len(rec.Labels) != 2 {
		t.Fatalf("decoded %d labels, want 2", len(rec.Labels))
	}
	if rec.Labels[0].Label != "dog" || rec.Labels[0].Confidence != 0.95 {
		t.Errorf("first label = %+v, want dog:0.95", rec.Labels[0])
	}
}

func TestLabelsForMediaMissing(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.LabelsForMedia(context.Background(), "nope")
	if err != nil {
		t.Fatalf("LabelsForMedia() error = %v", err)
	}
	if rec != nil {
		t.Errorf("LabelsForMedia() = %+v, want nil", rec)
	}
}

func TestSaveLabelsReplaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpsertMedia(ctx, testItem("m1", "/photos/a.jpg")); err != nil {
		t.Fatalf("UpsertMedia() error = %v", err)
	}
	if err := s.SaveLabels(ctx, "m1", "dog:0.95"); err != nil {
		t.Fatalf("SaveLabels() error = %v", err)
	}
	if err := s.SaveLabels(ctx, "m1", "cat:0.80"); err != nil {
		t.Fatalf("SaveLabels() replace error = %v", err)
	}

	rec, err := s.LabelsForMedia(ctx, "m1")
	if err != nil {
		t.Fatalf("LabelsForMedia() error = %v", err)
	}
	if len(rec.Labels) != 1 || rec.Labels[0].Label != "cat" {
		t.Errorf("labels = %+v, want single cat record", rec.Labels)
	}
}

func TestFindLabelRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed := map[string]string{
		"m1": "dog:0.95,pet:0.80",
		"m2": "hot dog:0.70",
		"m3": "cat:0.90",
	}
	for id, labels := range seed {
		if err := s.UpsertMedia(ctx, testItem(id, "/photos/"+id+".jpg")); err != nil {
			t.Fatalf("UpsertMedia() error = %v", err)
		}
		if err := s.SaveLabels(ctx, id, labels); err != nil {
			t.Fatalf("SaveLabels() error = %v", err)
		}
	}

	records, err := s.FindLabelRecords(ctx, "dog")
	if err != nil {
		t.Fatalf("FindLabelRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("FindLabelRecords() returned %d records, want 2", len(records))
	}
	if records[0].MediaID != "m1" || records[1].MediaID != "m2" {
		t.Errorf("matched = [%s %s], want [m1 m2]", records[0].MediaID, records[1].MediaID)
	}

	records, err = s.FindLabelRecords(ctx, "   ")
	if err != nil {
		t.Fatalf("FindLabelRecords() blank error = %v", err)
	}
	if records != nil {
		t.Errorf("FindLabelRecords(blank) = %v, want nil", records)
	}
}

func TestDeleteMediaCascadesLabels(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpsertMedia(ctx, testItem("m1", "/photos/a.jpg")); err != nil {
		t.Fatalf("UpsertMedia() error = %v", err)
	}
	if err := s.SaveLabels(ctx, "m1", "dog:0.95"); err != nil {
		t.Fatalf("SaveLabels() error = %v", err)
	}
	if err := s.DeleteMedia(ctx, "m1"); err != nil {
		t.Fatalf("DeleteMedia() error = %v", err)
	}

	rec, err := s.LabelsForMedia(ctx, "m1")
	if err != nil {
		t.Fatalf("LabelsForMedia() error = %v", err)
	}
	if rec != nil {
		t.Errorf("labels survived delete: %+v", rec)
	}
}
