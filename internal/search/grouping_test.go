package search

import (
	"testing"

	"github.com/kozaktomas/photo-gallery/internal/feed"
)

func TestDateBucketLabel(t *testing.T) {
	pretty := "Sat Apr 25 2020 6:38:59 AM"

	tests := []struct {
		mode     string
		expected string
	}{
		{GroupNone, ""},
		{GroupYear, "2020"},
		{GroupMonth, "Apr 2020"},
		{GroupDay, "Sat Apr 25 2020"},
	}
	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			if got := dateBucketLabel(pretty, tc.mode); got != tc.expected {
				t.Errorf("label = %q; want %q", got, tc.expected)
			}
		})
	}

	if got := dateBucketLabel("", GroupYear); got != "" {
		t.Errorf("missing timestamp should yield empty label, got %q", got)
	}
}

func TestGroupByDateBucketSharesSingleGroup(t *testing.T) {
	records := []*feed.Record{
		{ExposureTimePretty: "Sat Apr 25 2020 6:38:59 AM"},
		{ExposureTimePretty: "Fri Jan 15 2021 3:45:00 PM"},
	}
	applyGrouping(records, GroupYear)

	for _, r := range records {
		if r.GroupIndex != 0 {
			t.Errorf("date buckets must not split the ordering, got index %d", r.GroupIndex)
		}
	}
	if records[0].GroupName != "2020" || records[1].GroupName != "2021" {
		t.Errorf("labels = %q, %q", records[0].GroupName, records[1].GroupName)
	}
}

func TestGroupByCamera(t *testing.T) {
	records := []*feed.Record{
		{ID: "a", Camera: "GoPro HERO9"},
		{ID: "b", Camera: "Canon EOS 5D"},
		{ID: "c", Camera: "Canon EOS 5D"},
		{ID: "d"},
	}
	applyGrouping(records, GroupCamera)

	// The larger Canon group outranks the GoPro group despite being seen
	// later.
	for _, r := range records[1:3] {
		if r.GroupIndex != 0 || r.GroupName != "Canon EOS 5D" {
			t.Errorf("record %s group = %d/%q", r.ID, r.GroupIndex, r.GroupName)
		}
	}
	if records[0].GroupIndex != 1 {
		t.Errorf("GoPro group index = %d; want 1", records[0].GroupIndex)
	}
	if records[3].GroupIndex != feed.UngroupedIndex || records[3].GroupName != "No Camera Metadata" {
		t.Errorf("sentinel group = %d/%q", records[3].GroupIndex, records[3].GroupName)
	}
}

func TestGroupByCameraSizesNonIncreasing(t *testing.T) {
	records := []*feed.Record{
		{Camera: "A"}, {Camera: "B"}, {Camera: "B"},
		{Camera: "C"}, {Camera: "C"}, {Camera: "C"},
	}
	applyGrouping(records, GroupCamera)

	sizes := make(map[int64]int)
	for _, r := range records {
		sizes[r.GroupIndex]++
	}
	for idx := int64(1); idx < int64(len(sizes)); idx++ {
		if sizes[idx] > sizes[idx-1] {
			t.Errorf("group %d (size %d) larger than group %d (size %d)",
				idx, sizes[idx], idx-1, sizes[idx-1])
		}
	}
}

func TestGroupByProximity(t *testing.T) {
	records := []*feed.Record{
		// Two points in San Francisco, well under a kilometer apart.
		{ID: "sf1", Lat: floatPtr(37.7749), Lon: floatPtr(-122.4194)},
		{ID: "sf2", Lat: floatPtr(37.7755), Lon: floatPtr(-122.4180)},
		// Los Angeles, hundreds of kilometers away.
		{ID: "la", Lat: floatPtr(34.0522), Lon: floatPtr(-118.2437)},
		{ID: "none"},
	}
	applyGrouping(records, "gps5km")

	if records[0].GroupIndex != records[1].GroupIndex {
		t.Error("nearby records must share a cluster")
	}
	if records[2].GroupIndex == records[0].GroupIndex {
		t.Error("a distant record must not join the cluster")
	}
	// The two-member SF cluster outranks the singleton.
	if records[0].GroupIndex != 0 || records[2].GroupIndex != 1 {
		t.Errorf("cluster indexes = %d, %d", records[0].GroupIndex, records[2].GroupIndex)
	}
	if records[3].GroupIndex != feed.UngroupedIndex || records[3].GroupName != "No Coordinate" {
		t.Errorf("sentinel group = %d/%q", records[3].GroupIndex, records[3].GroupName)
	}
	// Labels are the cluster centroid, shared by every member.
	if records[0].GroupName == "" || records[0].GroupName != records[1].GroupName {
		t.Errorf("cluster labels = %q, %q", records[0].GroupName, records[1].GroupName)
	}
}

func TestGroupModesCoverRadii(t *testing.T) {
	modes := GroupModes()
	seen := make(map[string]bool, len(modes))
	for _, m := range modes {
		seen[m] = true
	}
	for mode := range gpsGroupRadii {
		if !seen[mode] {
			t.Errorf("mode %q missing from GroupModes", mode)
		}
	}
	if !seen[GroupNone] || !seen[GroupCamera] {
		t.Error("base modes missing from GroupModes")
	}
}
