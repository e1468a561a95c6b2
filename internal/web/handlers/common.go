package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"gallerysearch/internal/engine"
)

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// MediaResponse represents one media item in API responses.
type MediaResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	BucketID    string `json:"bucket_id"`
	BucketName  string `json:"bucket_name"`
	DateAdded   int64  `json:"date_added"`
	Size        int64  `json:"size"`
	MimeType    string `json:"mime_type"`
	IsVideo     bool   `json:"is_video"`
	Duration    int64  `json:"duration"`
	Path        string `json:"path"`
}

func mediaToResponse(item engine.MediaItem) MediaResponse {
	return MediaResponse{
		ID:          item.ID,
		DisplayName: item.DisplayName,
		BucketID:    item.BucketID,
		BucketName:  item.BucketName,
		DateAdded:   item.DateAdded,
		Size:        item.Size,
		MimeType:    item.MimeType,
		IsVideo:     item.IsVideo,
		Duration:    item.Duration,
		Path:        item.Path,
	}
}

func mediaListToResponse(items []engine.MediaItem) []MediaResponse {
	out := make([]MediaResponse, 0, len(items))
	for _, item := range items {
		out = append(out, mediaToResponse(item))
	}
	return out
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
