package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"gallerysearch/internal/engine"
	"gallerysearch/internal/store/mock"
)

// seededStore creates a mock store with a small indexed library: five
// dog photos (enough to surface the animals album), one beach photo and
// one video.
func seededStore() *mock.MockStore {
	st := mock.NewMockStore()
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("dog%d", i)
		st.AddMedia(engine.MediaItem{
			ID:          id,
			DisplayName: fmt.Sprintf("IMG_%03d.jpg", i),
			BucketID:    "b-camera",
			BucketName:  "Camera",
			DateAdded:   1700000000 + int64(i),
			Size:        2 << 20,
			MimeType:    "image/jpeg",
			Path:        fmt.Sprintf("/photos/Camera/IMG_%03d.jpg", i),
		})
		st.SetLabels(id, "dog:0.95,pet:0.80")
	}
	st.AddMedia(engine.MediaItem{
		ID:          "beach1",
		DisplayName: "beach_sunset.jpg",
		BucketID:    "b-vacation",
		BucketName:  "Vacation",
		DateAdded:   1700000100,
		Size:        3 << 20,
		MimeType:    "image/jpeg",
		Path:        "/photos/Vacation/beach_sunset.jpg",
	})
	st.AddMedia(engine.MediaItem{
		ID:          "vid1",
		DisplayName: "clip.mp4",
		BucketID:    "b-camera",
		BucketName:  "Camera",
		DateAdded:   1700000200,
		Size:        50 << 20,
		MimeType:    "video/mp4",
		IsVideo:     true,
		Duration:    12000,
		Path:        "/photos/Camera/clip.mp4",
	})
	return st
}

// requestWithChiParams creates a request with chi URL parameters
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
