package search

import (
	"testing"

	"github.com/kozaktomas/photo-gallery/internal/feed"
)

func intPtr(n int) *int             { return &n }
func floatPtr(f float64) *float64   { return &f }

// testSession builds a small but representative gallery: two events, a tag
// hierarchy, photos with and without GPS/camera metadata, a motion photo
// and a video.
func testSession() *Session {
	f := &feed.Feed{
		Title: "My Gallery",
		Events: []*feed.Record{
			{ID: "1", Title: "Summer Trip"},
			{ID: "2", Title: "Winter Hike"},
		},
		Tags: []*feed.Record{
			{ID: "20", Title: "Beach"},
			{ID: "21", Title: "Sunset", ParentTagID: "20"},
		},
		Years: []*feed.Record{
			{ID: "2020", Title: "2020"},
			{ID: "2021", Title: "2021"},
		},
		Media: []*feed.Record{
			{
				ID: "100", Title: "Red Car at the Beach",
				Camera:             "Canon EOS 5D",
				EventID:            "1",
				Tags:               []feed.ID{"20"},
				ExposureTime:       "2020-04-25T06:38:59",
				ExposureTimePretty: "Sat Apr 25 2020 6:38:59 AM",
				TimeCreated:        "2020-05-01T10:00:00",
				Lat:                floatPtr(37.7749), Lon: floatPtr(-122.4194),
				Rating: intPtr(5),
				Width:  intPtr(4000), Height: intPtr(3000),
				Link: "photos/red_car.jpg",
			},
			{
				ID: "101", Type: "motion_photo", Title: "Blue Car",
				Camera:             "Canon EOS 5D",
				EventID:            "1",
				Tags:               []feed.ID{"21"},
				ExposureTime:       "2020-06-01T13:00:00",
				ExposureTimePretty: "Mon Jun 1 2020 1:00:00 PM",
				TimeCreated:        "2020-06-02T09:00:00",
				Rating:             intPtr(3),
				Link:               "photos/blue_car.heic",
			},
			{
				ID: "102", Type: "video", Title: "Surf Session",
				Camera:             "GoPro HERO9",
				EventID:            "2",
				ExposureTime:       "2021-01-15T15:45:00",
				ExposureTimePretty: "Fri Jan 15 2021 3:45:00 PM",
				TimeCreated:        "2021-01-16T08:00:00",
				Lat:                floatPtr(34.0522), Lon: floatPtr(-118.2437),
				FPS:                floatPtr(60),
				ClipDurationSecs:   floatPtr(12.5),
				Link:               "videos/surf.mp4",
			},
			{
				ID: "103", Title: "Jiří Portrait",
				EventID:            "2",
				ExposureTime:       "2021-02-20T11:00:00",
				ExposureTimePretty: "Sat Feb 20 2021 11:00:00 AM",
				TimeCreated:        "2021-02-21T11:00:00",
				Link:               "photos/portrait.jpg",
			},
		},
	}
	return NewSession(f)
}

func mustField(t *testing.T, reg *Registry, title string) *Field {
	t.Helper()
	f, ok := reg.Field(title)
	if !ok {
		t.Fatalf("field %q not in registry", title)
	}
	return f
}

func mustOp(t *testing.T, f *Field, descr string) *Operator {
	t.Helper()
	op, ok := f.Op(descr)
	if !ok {
		t.Fatalf("field %q has no operator %q", f.Title, descr)
	}
	return op
}

// mustCriterion parses a wire-form criterion that the test knows is valid.
func mustCriterion(t *testing.T, reg *Registry, raw string) *Criterion {
	t.Helper()
	c, ok := ParseCriterion(reg, raw)
	if !ok {
		t.Fatalf("criterion %q did not parse", raw)
	}
	return c
}
