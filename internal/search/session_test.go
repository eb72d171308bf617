package search

import (
	"testing"

	"github.com/kozaktomas/photo-gallery/internal/feed"
)

func TestSessionTitleLookups(t *testing.T) {
	s := testSession()

	if title, ok := s.EventTitle("1"); !ok || title != "Summer Trip" {
		t.Errorf("event title = %q/%v", title, ok)
	}
	if _, ok := s.EventTitle("999"); ok {
		t.Error("unknown event id should not resolve")
	}
	if title, ok := s.TagTitle("21"); !ok || title != "Sunset" {
		t.Errorf("tag title = %q/%v", title, ok)
	}
}

func TestSessionRegistryExtensions(t *testing.T) {
	s := testSession()
	ext := mustField(t, s.Registry, "File Extension")

	// The registry's extension list comes from the session's own feed.
	expected := []string{"heic", "jpg", "mp4"}
	if len(ext.ValidValues) != len(expected) {
		t.Fatalf("extensions = %v; want %v", ext.ValidValues, expected)
	}
	for i, e := range expected {
		if ext.ValidValues[i] != e {
			t.Errorf("extensions = %v; want %v", ext.ValidValues, expected)
		}
	}
}

func TestHolderSwap(t *testing.T) {
	first := testSession()
	h := NewHolder(first)
	if h.Current() != first {
		t.Fatal("holder should return the initial session")
	}

	second := NewSession(&feed.Feed{Title: "Replacement"})
	h.Swap(second)
	if h.Current() != second {
		t.Error("swap did not replace the session")
	}
	// The old session stays usable for searches already running.
	if first.Feed.Title != "My Gallery" {
		t.Error("old session mutated by swap")
	}
}
