package handlers

import (
	"log"
	"net/http"

	"gallerysearch/internal/engine"
	"gallerysearch/internal/store"
)

// LabelsHandler handles label corpus endpoints.
type LabelsHandler struct {
	store store.Store
}

// NewLabelsHandler creates a new labels handler.
func NewLabelsHandler(st store.Store) *LabelsHandler {
	return &LabelsHandler{store: st}
}

// LabelPairResponse is one decoded label with its confidence.
type LabelPairResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// LabelRecordResponse is the label record of one media item.
type LabelRecordResponse struct {
	MediaID string              `json:"media_id"`
	Labels  []LabelPairResponse `json:"labels"`
}

func labelRecordToResponse(rec engine.LabelRecord) LabelRecordResponse {
	resp := LabelRecordResponse{
		MediaID: rec.MediaID,
		Labels:  make([]LabelPairResponse, 0, len(rec.Labels)),
	}
	for _, p := range rec.Labels {
		resp.Labels = append(resp.Labels, LabelPairResponse{
			Label:      p.Label,
			Confidence: p.Confidence,
		})
	}
	return resp
}

// Find returns records with a label containing the q substring. Without q
// the whole corpus is returned.
func (h *LabelsHandler) Find(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var records []engine.LabelRecord
	var err error
	if query == "" {
		records, err = h.store.AllLabelRecords(r.Context())
	} else {
		records, err = h.store.FindLabelRecords(r.Context(), query)
	}
	if err != nil {
		log.Printf("labels: lookup %q failed: %v", sanitizeForLog(query), err)
		records = nil
	}

	resp := make([]LabelRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, labelRecordToResponse(rec))
	}
	respondJSON(w, http.StatusOK, resp)
}
