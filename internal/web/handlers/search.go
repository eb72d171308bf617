package handlers

import (
	"net/http"

	"github.com/kozaktomas/photo-gallery/internal/feed"
	"github.com/kozaktomas/photo-gallery/internal/search"
)

const maxPageSize = 500

// SearchHandler executes the search pipeline for API clients.
type SearchHandler struct {
	sessions *search.Holder
	pageSize int
}

// NewSearchHandler creates a search handler with a default page size.
func NewSearchHandler(sessions *search.Holder, pageSize int) *SearchHandler {
	if pageSize < 1 {
		pageSize = 100
	}
	return &SearchHandler{sessions: sessions, pageSize: pageSize}
}

// searchResponse is the wire shape of one search execution plus the page
// of records the client asked for. Pagination is rendering pacing only:
// the full sequence is filtered, grouped and sorted before slicing.
type searchResponse struct {
	View      *search.View   `json:"view"`
	DateRange string         `json:"date_range,omitempty"`
	Sort      string         `json:"sort"`
	Seed      int64          `json:"seed,omitempty"`
	Total     int            `json:"total"`
	Page      int            `json:"page"`
	PageSize  int            `json:"page_size"`
	Records   []*feed.Record `json:"records"`
}

// Search handles GET /api/v1/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Current()
	query := search.ParseQuery(session.Registry, r.URL.Query())
	result := search.Execute(session, query)

	page := intParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := intParam(r, "page_size", h.pageSize)
	if pageSize < 1 {
		pageSize = h.pageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	start := (page - 1) * pageSize
	if start > len(result.Records) {
		start = len(result.Records)
	}
	end := start + pageSize
	if end > len(result.Records) {
		end = len(result.Records)
	}

	respondJSON(w, http.StatusOK, searchResponse{
		View:      result.View,
		DateRange: result.DateRange,
		Sort:      result.Sort,
		Seed:      result.Seed,
		Total:     len(result.Records),
		Page:      page,
		PageSize:  pageSize,
		Records:   result.Records[start:end],
	})
}
