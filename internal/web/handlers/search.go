package handlers

import (
	"log"
	"net/http"
	"time"

	"gallerysearch/internal/engine"
	"gallerysearch/internal/store"
)

// SearchHandler handles the combined library search endpoint.
type SearchHandler struct {
	store store.Store
	now   func() time.Time
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(st store.Store) *SearchHandler {
	return &SearchHandler{store: st, now: time.Now}
}

// AlbumMatchResponse represents a folder match in search results.
type AlbumMatchResponse struct {
	BucketID      string          `json:"bucket_id"`
	BucketName    string          `json:"bucket_name"`
	ItemCount     int             `json:"item_count"`
	MatchPriority int             `json:"match_priority"`
	Items         []MediaResponse `json:"items"`
}

// RankedResponse represents one classification match with its score.
type RankedResponse struct {
	MediaID        string        `json:"media_id"`
	Media          MediaResponse `json:"media"`
	MatchedLabel   string        `json:"matched_label"`
	Confidence     float64       `json:"confidence"`
	Score          float64       `json:"score"`
	SuppressReason string        `json:"suppress_reason,omitempty"`
}

// SearchResponse is the combined search result payload.
type SearchResponse struct {
	Query         string               `json:"query"`
	MatchedAlbums []AlbumMatchResponse `json:"matched_albums"`
	MatchedMedia  []MediaResponse      `json:"matched_media"`
	Ranked        []RankedResponse     `json:"ranked"`
}

// Search runs a library search for the q parameter. Store failures degrade
// to an empty corpus so the endpoint always answers with a valid result.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	media, err := h.store.AllMedia(r.Context())
	if err != nil {
		log.Printf("search: listing media failed: %v", err)
		media = nil
	}
	corpus, err := h.store.AllLabelRecords(r.Context())
	if err != nil {
		log.Printf("search: loading label corpus failed: %v", err)
		corpus = nil
	}

	result := engine.SearchLibrary(query, media, corpus, h.now())

	resp := SearchResponse{
		Query:         query,
		MatchedAlbums: make([]AlbumMatchResponse, 0, len(result.MatchedAlbums)),
		MatchedMedia:  mediaListToResponse(result.MatchedMedia),
		Ranked:        make([]RankedResponse, 0, len(result.Ranked)),
	}
	for _, a := range result.MatchedAlbums {
		resp.MatchedAlbums = append(resp.MatchedAlbums, AlbumMatchResponse{
			BucketID:      a.BucketID,
			BucketName:    a.BucketName,
			ItemCount:     a.ItemCount,
			MatchPriority: a.MatchPriority,
			Items:         mediaListToResponse(a.Items),
		})
	}
	for _, rr := range result.Ranked {
		resp.Ranked = append(resp.Ranked, RankedResponse{
			MediaID:        rr.MediaID,
			Media:          mediaToResponse(rr.Media),
			MatchedLabel:   rr.MatchedLabel,
			Confidence:     rr.Confidence,
			Score:          rr.Score,
			SuppressReason: rr.SuppressReason,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}
