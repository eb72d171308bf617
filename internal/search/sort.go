package search

import (
	"sort"

	"github.com/kozaktomas/photo-gallery/internal/feed"
)

// applySort orders records by group index first (grouping always clusters
// visually), then type sort-priority, then the chosen date key. Tag records
// are conceptually unordered, so they get no tertiary ordering. Date keys
// are ISO-8601 strings, compared lexicographically.
func applySort(records []*feed.Record, mode string, priorities map[string]int) {
	key := "exposure_time"
	if mode == SortCreatedAZ || mode == SortCreatedZA {
		key = "time_created"
	}
	descending := mode == SortTakenZA || mode == SortCreatedZA

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.GroupIndex != b.GroupIndex {
			return a.GroupIndex < b.GroupIndex
		}
		pa, pb := priorities[a.Type], priorities[b.Type]
		if pa != pb {
			return pa < pb
		}
		if a.Type == "tags" && b.Type == "tags" {
			return false
		}
		ka, kb := sortDate(a, key), sortDate(b, key)
		if descending {
			return ka > kb
		}
		return ka < kb
	})
}

func sortDate(r *feed.Record, key string) string {
	if key == "time_created" {
		return r.TimeCreated
	}
	return r.ExposureTime
}

// lcg is the linear congruential generator behind the seeded shuffle. A
// platform random source would not do: the seed travels in a shareable link
// so a slideshow's order can be reproduced on a second device.
type lcg struct {
	state int64
}

func (l *lcg) next() int64 {
	l.state = (l.state*1103515245 + 12345) & 0x7fffffff
	return l.state
}

// Shuffle permutes records in place with a seeded Fisher-Yates. The same
// seed over the same input always yields the same order.
func Shuffle(records []*feed.Record, seed int64) {
	rng := lcg{state: seed & 0x7fffffff}
	for i := len(records) - 1; i >= 1; i-- {
		j := rng.next() % int64(i+1)
		records[i], records[j] = records[j], records[i]
	}
}
