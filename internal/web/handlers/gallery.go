package handlers

import (
	"net/http"

	"github.com/kozaktomas/photo-gallery/internal/config"
	"github.com/kozaktomas/photo-gallery/internal/feed"
	"github.com/kozaktomas/photo-gallery/internal/search"
)

// GalleryHandler serves feed metadata and the searchable field catalog.
type GalleryHandler struct {
	sessions *search.Holder
	cfg      *config.Config
}

// NewGalleryHandler creates a gallery metadata handler.
func NewGalleryHandler(sessions *search.Holder, cfg *config.Config) *GalleryHandler {
	return &GalleryHandler{sessions: sessions, cfg: cfg}
}

type galleryResponse struct {
	Title        string              `json:"title"`
	GeneratedAt  string              `json:"generated_at"`
	VersionLabel string              `json:"version_label"`
	ExtraHeader  *feed.ExtraHeader   `json:"extra_header,omitempty"`
	Counts       map[string]int      `json:"counts"`
	IconPresets  []config.IconPreset `json:"icon_presets"`
}

// Get handles GET /api/v1/gallery.
func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Current()
	f := session.Feed
	respondJSON(w, http.StatusOK, galleryResponse{
		Title:        f.Title,
		GeneratedAt:  f.GeneratedAt,
		VersionLabel: f.VersionLabel,
		ExtraHeader:  f.ExtraHeader,
		Counts: map[string]int{
			"media":  len(f.Media),
			"events": len(f.Events),
			"tags":   len(f.Tags),
			"years":  len(f.Years),
		},
		IconPresets: h.cfg.Icons.Presets,
	})
}

// Fields handles GET /api/v1/fields: the full registry, so the front-end
// can build the query-by-example UI without hardcoding the catalog.
func (h *GalleryHandler) Fields(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Current()
	respondJSON(w, http.StatusOK, map[string]any{
		"fields":      session.Registry.Fields,
		"group_modes": search.GroupModes(),
	})
}
