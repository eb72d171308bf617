package search

// Field is one searchable field: a stable display title (the serialization
// key for saved URLs, so registry order never matters), the record
// attributes it reads, and the operators it supports.
type Field struct {
	Title       string      `json:"title"`
	Attrs       []string    `json:"-"`
	Ops         []*Operator `json:"ops"`
	ValidValues []string    `json:"valid_values,omitempty"`
}

// Op looks up an operator by its description.
func (f *Field) Op(descr string) (*Operator, bool) {
	for _, op := range f.Ops {
		if op.Descr == descr {
			return op, true
		}
	}
	return nil, false
}

// Registry is the static catalog of searchable fields. The discovered file
// extension set is the one collection-dependent input: the normalizer hands
// it over explicitly instead of mutating a shared catalog.
type Registry struct {
	Fields  []*Field
	byTitle map[string]*Field
}

// NewRegistry builds the full field catalog. extensions is the sorted set
// of lowercased file extensions discovered during normalization.
func NewRegistry(extensions []string) *Registry {
	fields := []*Field{
		{
			Title: "Any Text",
			Attrs: []string{"camera", "comment", "event_name", "link", "tag_name", "title"},
			Ops:   textOperators(),
		},
		{Title: "Camera", Attrs: []string{"camera"}, Ops: textOperators()},
		{Title: "Comment", Attrs: []string{"comment"}, Ops: textOperators()},
		{Title: "Date", Attrs: []string{"exposure_time"}, Ops: dateOperators()},
		{Title: "Event ID", Attrs: []string{"event_id"}, Ops: idOperators()},
		{Title: "Event Name", Attrs: []string{"event_name"}, Ops: textOperators()},
		{
			Title:       "File Extension",
			Attrs:       []string{"link"},
			Ops:         extensionOperators(),
			ValidValues: extensions,
		},
		{Title: "File Size", Attrs: []string{"filesize"}, Ops: numberOperators(false)},
		{Title: "Filename", Attrs: []string{"link"}, Ops: textOperators()},
		{Title: "FPS", Attrs: []string{"fps"}, Ops: numberOperators(true)},
		{Title: "GPS Coordinate", Attrs: []string{"lat", "lon"}, Ops: gpsOperators()},
		{Title: "Height", Attrs: []string{"height"}, Ops: numberOperators(false)},
		{Title: "Megapixels", Attrs: []string{"megapixels"}, Ops: numberOperators(true)},
		{Title: "Photo Ratio", Attrs: []string{"photo_ratio"}, Ops: numberOperators(true)},
		{
			Title:       "Rating",
			Attrs:       []string{"rating"},
			Ops:         numberOperators(false),
			ValidValues: []string{"0", "1", "2", "3", "4", "5"},
		},
		{Title: "Tag ID", Attrs: []string{"tag_id"}, Ops: idOperators()},
		{Title: "Tag Name", Attrs: []string{"tag_name"}, Ops: textOperators()},
		{Title: "Tag Parent ID", Attrs: []string{"parent_tag_id"}, Ops: idOperators()},
		{Title: "Title", Attrs: []string{"title"}, Ops: textOperators()},
		{
			Title:       "Type",
			Attrs:       []string{"type"},
			Ops:         typeOperators(),
			ValidValues: []string{"media", "photo", "motion_photo", "video", "events", "tags", "years"},
		},
		{Title: "Video Duration", Attrs: []string{"clip_duration_secs"}, Ops: numberOperators(true)},
		{Title: "Width", Attrs: []string{"width"}, Ops: numberOperators(false)},
		{Title: "Year", Attrs: []string{"year"}, Ops: idOperators()},
	}

	byTitle := make(map[string]*Field, len(fields))
	for _, f := range fields {
		byTitle[f.Title] = f
	}
	return &Registry{Fields: fields, byTitle: byTitle}
}

// Field looks up a field by its display title.
func (reg *Registry) Field(title string) (*Field, bool) {
	f, ok := reg.byTitle[title]
	return f, ok
}
