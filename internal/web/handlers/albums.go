package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gallerysearch/internal/engine"
	"gallerysearch/internal/store"
)

// AlbumsHandler handles smart album endpoints.
type AlbumsHandler struct {
	store store.Store
}

// NewAlbumsHandler creates a new albums handler.
func NewAlbumsHandler(st store.Store) *AlbumsHandler {
	return &AlbumsHandler{store: st}
}

// SmartAlbumResponse represents a visible smart album.
type SmartAlbumResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
	ItemCount   int    `json:"item_count"`
}

// ListSmart returns the smart albums that meet the visibility threshold.
// Store failures degrade to an empty corpus, which hides every album.
func (h *AlbumsHandler) ListSmart(w http.ResponseWriter, r *http.Request) {
	corpus, err := h.store.AllLabelRecords(r.Context())
	if err != nil {
		log.Printf("albums: loading label corpus failed: %v", err)
		corpus = nil
	}

	albums := engine.EnumerateSmartAlbums(corpus)
	resp := make([]SmartAlbumResponse, 0, len(albums))
	for _, a := range albums {
		resp = append(resp, SmartAlbumResponse{
			ID:          a.ID,
			DisplayName: a.DisplayName,
			Icon:        a.Icon,
			ItemCount:   a.ItemCount,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetSmartMedia returns the members of one smart album, in corpus order.
func (h *AlbumsHandler) GetSmartMedia(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	known := false
	for _, def := range engine.SmartAlbumDefinitions() {
		if def.ID == id {
			known = true
			break
		}
	}
	if !known {
		respondError(w, http.StatusNotFound, "smart album not found")
		return
	}

	corpus, err := h.store.AllLabelRecords(r.Context())
	if err != nil {
		log.Printf("albums: loading label corpus failed: %v", err)
		corpus = nil
	}
	media, err := h.store.AllMedia(r.Context())
	if err != nil {
		log.Printf("albums: listing media failed: %v", err)
		media = nil
	}

	items := engine.MaterializeSmartAlbum(id, corpus, media)
	respondJSON(w, http.StatusOK, mediaListToResponse(items))
}
