package search

import (
	"sync"

	"github.com/kozaktomas/photo-gallery/internal/feed"
)

// Session owns everything derived from one feed load: the normalized record
// universe, the registry built from the discovered extension set, and the
// id-to-title lookups the view resolver needs. It is created once per feed
// load and replaced wholesale when the feed is reloaded; nothing in it
// mutates afterwards except the transient grouping annotations on records.
type Session struct {
	Feed     *feed.Feed
	Records  []*feed.Record
	Registry *Registry

	eventTitles map[feed.ID]string
	tagTitles   map[feed.ID]string
}

// NewSession normalizes the feed and builds the registry. This is the only
// place normalization runs.
func NewSession(f *feed.Feed) *Session {
	normalized := feed.Normalize(f)

	eventTitles := make(map[feed.ID]string, len(f.Events))
	for _, e := range f.Events {
		eventTitles[e.ID] = e.Title
	}
	tagTitles := make(map[feed.ID]string, len(f.Tags))
	for _, t := range f.Tags {
		tagTitles[t.ID] = t.Title
	}

	return &Session{
		Feed:        f,
		Records:     normalized.Records,
		Registry:    NewRegistry(normalized.Extensions),
		eventTitles: eventTitles,
		tagTitles:   tagTitles,
	}
}

// EventTitle resolves an event id to its title.
func (s *Session) EventTitle(id string) (string, bool) {
	title, ok := s.eventTitles[feed.ID(id)]
	return title, ok
}

// TagTitle resolves a tag id to its title.
func (s *Session) TagTitle(id string) (string, bool) {
	title, ok := s.tagTitles[feed.ID(id)]
	return title, ok
}

// Holder hands the current session to concurrent readers and lets the feed
// watcher swap in a replacement atomically. Searches already running keep
// the session they started with; last write wins.
type Holder struct {
	mu      sync.RWMutex
	current *Session
}

// NewHolder wraps an initial session.
func NewHolder(s *Session) *Holder {
	return &Holder{current: s}
}

// Current returns the active session.
func (h *Holder) Current() *Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Swap replaces the active session.
func (h *Holder) Swap(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = s
}
