package feed

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFeed = `{
	"title": "Family Photos",
	"generated_at": "2024-06-01T12:00:00Z",
	"version_label": "v3.1",
	"extra_header": {"link": "https://example.com", "description": "More"},
	"events": [{"id": 1, "title": "Summer Trip"}],
	"tags": [{"id": "beach", "title": "Beach"}],
	"media": [
		{"id": 100, "type": "photo", "link": "photos/IMG_100.jpg", "event_id": 1,
		 "exposure_time": "2020-07-14T10:00:00", "width": 4000, "height": 3000}
	],
	"years": [{"id": 2020, "title": "2020"}]
}`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte(sampleFeed), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.Title != "Family Photos" {
		t.Errorf("title = %q; want %q", f.Title, "Family Photos")
	}
	if len(f.Media) != 1 || len(f.Events) != 1 || len(f.Tags) != 1 || len(f.Years) != 1 {
		t.Errorf("unexpected collection sizes: media=%d events=%d tags=%d years=%d",
			len(f.Media), len(f.Events), len(f.Tags), len(f.Years))
	}
	if f.ExtraHeader == nil || f.ExtraHeader.Link != "https://example.com" {
		t.Errorf("extra header not parsed: %+v", f.ExtraHeader)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing feed file")
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestIDAcceptsNumbersAndStrings(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected ID
	}{
		{"number", `{"id": 42}`, "42"},
		{"string", `{"id": "beach"}`, "beach"},
		{"null", `{"id": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Parse([]byte(`{"media": [` + tc.json + `]}`))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := f.Media[0].ID; got != tc.expected {
				t.Errorf("id = %q; want %q", got, tc.expected)
			}
		})
	}
}
