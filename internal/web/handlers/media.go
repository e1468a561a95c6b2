package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gallerysearch/internal/constants"
	"gallerysearch/internal/store"
)

// MediaHandler handles media index endpoints.
type MediaHandler struct {
	store store.Store
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(st store.Store) *MediaHandler {
	return &MediaHandler{store: st}
}

// List returns indexed items, newest first. The count parameter caps the
// page size; it defaults to constants.DefaultMediaCount.
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	count := constants.DefaultMediaCount
	if s := r.URL.Query().Get("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "invalid count parameter")
			return
		}
		count = n
	}

	items, err := h.store.AllMedia(r.Context())
	if err != nil {
		log.Printf("media: listing failed: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list media")
		return
	}
	if len(items) > count {
		items = items[:count]
	}
	respondJSON(w, http.StatusOK, mediaListToResponse(items))
}

// Get returns one media item by id.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.store.GetMedia(r.Context(), id)
	if err != nil {
		log.Printf("media: get %s failed: %v", sanitizeForLog(id), err)
		respondError(w, http.StatusInternalServerError, "failed to load media")
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "media not found")
		return
	}
	respondJSON(w, http.StatusOK, mediaToResponse(*item))
}

// GetLabels returns the decoded label record for one media item. Items
// without labels yield an empty list.
func (h *MediaHandler) GetLabels(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.store.GetMedia(r.Context(), id)
	if err != nil {
		log.Printf("media: get %s failed: %v", sanitizeForLog(id), err)
		respondError(w, http.StatusInternalServerError, "failed to load media")
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "media not found")
		return
	}

	rec, err := h.store.LabelsForMedia(r.Context(), id)
	if err != nil {
		log.Printf("media: labels for %s failed: %v", sanitizeForLog(id), err)
		respondError(w, http.StatusInternalServerError, "failed to load labels")
		return
	}

	resp := LabelRecordResponse{MediaID: id, Labels: make([]LabelPairResponse, 0)}
	if rec != nil {
		resp = labelRecordToResponse(*rec)
	}
	respondJSON(w, http.StatusOK, resp)
}
