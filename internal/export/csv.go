// Package export renders search results as CSV for spreadsheet use.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kozaktomas/photo-gallery/internal/feed"
)

var header = []string{
	"id", "type", "title", "exposure_time", "camera", "event_name",
	"tags", "rating", "lat", "lon", "group_name", "link",
}

// Write emits one CSV row per record, in the order the search engine
// produced them. onRow, if non-nil, is called after each row for progress
// reporting.
func Write(w io.Writer, records []*feed.Record, onRow func(i int)) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
		if onRow != nil {
			onRow(i)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

func row(r *feed.Record) []string {
	return []string{
		string(r.ID),
		r.Type,
		r.DisplayTitle(),
		r.ExposureTime,
		r.Camera,
		r.EventName,
		joinNames(r.TagNames),
		intOrEmpty(r.Rating),
		floatOrEmpty(r.Lat),
		floatOrEmpty(r.Lon),
		r.GroupName,
		r.Link,
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "; "
		}
		out += n
	}
	return out
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
