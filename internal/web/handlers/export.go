package handlers

import (
	"log"
	"net/http"

	"github.com/kozaktomas/photo-gallery/internal/export"
	"github.com/kozaktomas/photo-gallery/internal/search"
)

// ExportHandler streams full search results as CSV.
type ExportHandler struct {
	sessions *search.Holder
}

// NewExportHandler creates a CSV export handler.
func NewExportHandler(sessions *search.Holder) *ExportHandler {
	return &ExportHandler{sessions: sessions}
}

// Get handles GET /api/v1/export.csv. It takes the same query parameters
// as the search endpoint and streams every matching record, unpaginated,
// in the engine's sorted order.
func (h *ExportHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Current()
	query := search.ParseQuery(session.Registry, r.URL.Query())
	result := search.Execute(session, query)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="gallery-export.csv"`)

	if err := export.Write(w, result.Records, nil); err != nil {
		// Headers are gone by now; all we can do is log.
		log.Printf("csv export failed: %v", err)
	}
}
