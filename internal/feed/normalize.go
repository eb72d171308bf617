package feed

import (
	"path"
	"sort"
	"strings"
)

// Normalized is the uniform searchable universe built from the four raw
// feed collections, plus the set of file extensions discovered while
// flattening. The extension set feeds registry construction so that the
// File Extension field offers only values that actually occur.
type Normalized struct {
	Records    []*Record
	Extensions []string
}

// Normalize flattens media, events, tags and years (in that order) into one
// sequence of records, stamping types and materializing the denormalized
// attributes free-text search relies on. It never re-reads the feed: callers
// run it exactly once per feed load and keep the result.
func Normalize(f *Feed) *Normalized {
	eventTitles := make(map[ID]string, len(f.Events))
	for _, e := range f.Events {
		eventTitles[e.ID] = e.Title
	}
	tagTitles := make(map[ID]string, len(f.Tags))
	for _, t := range f.Tags {
		tagTitles[t.ID] = t.Title
	}

	// Years spanned by each event, derived from its member media. An event
	// that crosses New Year's Eve belongs to both years.
	eventYears := make(map[ID]map[string]struct{})
	for _, m := range f.Media {
		if m.EventID == "" {
			continue
		}
		if y := isoYear(m.ExposureTime); y != "" {
			set := eventYears[m.EventID]
			if set == nil {
				set = make(map[string]struct{})
				eventYears[m.EventID] = set
			}
			set[y] = struct{}{}
		}
	}

	extensions := make(map[string]struct{})
	records := make([]*Record, 0, len(f.Media)+len(f.Events)+len(f.Tags)+len(f.Years))

	for _, m := range f.Media {
		if m.Type == "" {
			m.Type = "photo"
		}
		if name, ok := eventTitles[m.EventID]; ok && m.EventName == "" {
			m.EventName = name
		}
		m.TagIDs = m.TagIDs[:0]
		m.TagNames = m.TagNames[:0]
		for _, tid := range m.Tags {
			m.TagIDs = append(m.TagIDs, tid)
			m.TagNames = append(m.TagNames, tagTitles[tid])
		}
		if y := isoYear(m.ExposureTime); y != "" {
			m.Years = []string{y}
		}
		stampRatio(m)
		collectExtension(extensions, m.Link)
		records = append(records, m)
	}

	for _, e := range f.Events {
		e.Type = "events"
		e.TitlePrefix = "Event: "
		e.EventID = e.ID
		e.EventName = e.Title
		e.Years = sortedKeys(eventYears[e.ID])
		if len(e.Years) == 0 {
			if y := isoYear(e.ExposureTime); y != "" {
				e.Years = []string{y}
			}
		}
		stampRatio(e)
		collectExtension(extensions, e.Link)
		records = append(records, e)
	}

	for _, t := range f.Tags {
		t.Type = "tags"
		t.TitlePrefix = "Tag: "
		t.TagIDs = []ID{t.ID}
		t.TagNames = []string{t.Title}
		if t.ParentTagID != "" {
			t.TagIDs = append(t.TagIDs, t.ParentTagID)
			t.TagNames = append(t.TagNames, tagTitles[t.ParentTagID])
		}
		stampRatio(t)
		collectExtension(extensions, t.Link)
		records = append(records, t)
	}

	for _, y := range f.Years {
		y.Type = "years"
		y.TitlePrefix = "Year: "
		if y.Title == "" {
			y.Title = string(y.ID)
		}
		y.Years = []string{y.Title}
		stampRatio(y)
		collectExtension(extensions, y.Link)
		records = append(records, y)
	}

	return &Normalized{
		Records:    records,
		Extensions: sortedKeys(extensions),
	}
}

// stampRatio computes the width/height ratio where dimensions are known.
func stampRatio(r *Record) {
	if r.PhotoRatio != nil || r.Width == nil || r.Height == nil || *r.Height == 0 {
		return
	}
	ratio := float64(*r.Width) / float64(*r.Height)
	r.PhotoRatio = &ratio
}

func collectExtension(set map[string]struct{}, link string) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(link), "."))
	if ext != "" {
		set[ext] = struct{}{}
	}
}

// isoYear extracts the year component of an ISO-8601 timestamp.
func isoYear(iso string) string {
	if len(iso) < 4 {
		return ""
	}
	return iso[:4]
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
