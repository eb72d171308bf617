package search

import (
	"strings"

	"github.com/kozaktomas/photo-gallery/internal/feed"
)

// Result is the output of one search execution, handed to the rendering,
// slideshow, map and CSV consumers. Consumers never feed records back into
// the engine; new state means a new query and a full re-execution.
type Result struct {
	Records   []*feed.Record `json:"records"`
	View      *View          `json:"view"`
	DateRange string         `json:"date_range,omitempty"`
	Sort      string         `json:"sort"`
	Seed      int64          `json:"seed,omitempty"`
	Shuffled  bool           `json:"shuffled,omitempty"`
}

// Execute runs the full pipeline: filter by match policy, derive the
// display date range, resolve the view, group, then sort or shuffle.
func Execute(s *Session, q *Query) *Result {
	total := len(q.Criteria)
	filtered := make([]*feed.Record, 0, len(s.Records))
	var minISO, maxISO, minPretty, maxPretty string

	for _, r := range s.Records {
		count := 0
		for _, c := range q.Criteria {
			if c.Matches(r) {
				count++
			}
		}
		var pass bool
		switch q.Match {
		case MatchAll:
			pass = count == total
		case MatchNone:
			pass = count == 0
		default:
			pass = count > 0
		}
		if !pass {
			continue
		}
		filtered = append(filtered, r)

		// Records lacking exposure metadata stay in the results but are
		// excluded from the range computation.
		if r.ExposureTime != "" && r.ExposureTimePretty != "" {
			if minISO == "" || r.ExposureTime < minISO {
				minISO, minPretty = r.ExposureTime, r.ExposureTimePretty
			}
			if maxISO == "" || r.ExposureTime > maxISO {
				maxISO, maxPretty = r.ExposureTime, r.ExposureTimePretty
			}
		}
	}

	view := ResolveView(s, q.Criteria)
	mode := q.Sort
	if mode == "" || mode == SortDefault {
		mode = view.DefaultSort
	}

	applyGrouping(filtered, q.Group)

	result := &Result{
		Records:   filtered,
		View:      view,
		DateRange: formatDateRange(minPretty, maxPretty),
		Sort:      mode,
	}

	if mode == SortRandom {
		seed := q.Seed
		if !q.HasSeed {
			seed = timeNow().UnixMilli()
		}
		Shuffle(filtered, seed)
		result.Seed = seed
		result.Shuffled = true
		return result
	}

	applySort(filtered, mode, typePriorities(q.Criteria))
	return result
}

// typePriorities computes the type sort-priority map. Tags normally sort
// after media, events and years, unless the user is browsing by tag, in
// which case the tag aggregate rows come first. Symmetrically, a Year
// criterion promotes event rows.
func typePriorities(criteria []*Criterion) map[string]int {
	p := map[string]int{
		"photo":        1,
		"motion_photo": 1,
		"video":        1,
		"events":       1,
		"years":        1,
		"tags":         2,
	}
	for _, c := range criteria {
		if c.Synthetic() {
			continue
		}
		switch c.Field.Title {
		case "Tag ID", "Tag Parent ID":
			p["tags"] = 0
		case "Year":
			p["events"] = 0
		}
	}
	return p
}

// formatDateRange renders the span of exposure times as a short "Mon D
// YYYY" string, or a single date when the range collapses to one.
func formatDateRange(minPretty, maxPretty string) string {
	lo := shortDate(minPretty)
	hi := shortDate(maxPretty)
	if lo == "" {
		return ""
	}
	if lo == hi {
		return lo
	}
	return lo + " - " + hi
}

// shortDate slices "Sat Apr 25 2020 6:38:59 PM" down to "Apr 25 2020".
func shortDate(pretty string) string {
	tokens := strings.Fields(pretty)
	if len(tokens) < 4 {
		return ""
	}
	return strings.Join(tokens[1:4], " ")
}
