package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ShareHandler stores query strings under short ids so a slideshow (seed
// included) can be moved to a second device via a link or QR code. The
// store is in-memory only; share links are a convenience, not durable
// state.
type ShareHandler struct {
	mu    sync.RWMutex
	links map[string]string
}

// NewShareHandler creates an empty share store.
func NewShareHandler() *ShareHandler {
	return &ShareHandler{links: make(map[string]string)}
}

type shareRequest struct {
	Query string `json:"query"`
}

// Create handles POST /api/v1/share.
func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Normalize through url.Values so stored links are well-formed.
	vals, err := url.ParseQuery(req.Query)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid query string")
		return
	}

	id := uuid.New().String()
	h.mu.Lock()
	h.links[id] = vals.Encode()
	h.mu.Unlock()

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":   id,
		"path": "/s/" + id,
	})
}

// Redirect handles GET /s/{id}.
func (h *ShareHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.mu.RLock()
	query, ok := h.links[id]
	h.mu.RUnlock()

	if !ok {
		respondError(w, http.StatusNotFound, "unknown share link")
		return
	}
	http.Redirect(w, r, "/?"+query, http.StatusFound)
}
