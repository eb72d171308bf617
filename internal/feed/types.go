package feed

import (
	"bytes"
	"encoding/json"
	"math"
)

// UngroupedIndex marks records that could not be assigned to a real group
// (no camera metadata, no GPS coordinate). It always sorts after every
// real group index.
const UngroupedIndex = math.MaxInt64

// ID holds a record identifier. Feed generators emit ids both as JSON
// numbers and as strings, so it accepts either and keeps the string form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Record is one searchable entry: a photo, motion photo or video, or an
// aggregate row synthesized for an event, tag or year. Fields are sparse;
// pointer fields distinguish "absent" from zero.
type Record struct {
	ID   ID     `json:"id"`
	Type string `json:"type,omitempty"`
	Link string `json:"link,omitempty"`

	Title       string   `json:"title,omitempty"`
	TitlePrefix string   `json:"title_prefix,omitempty"`
	Comment     string   `json:"comment,omitempty"`
	Camera      string   `json:"camera,omitempty"`
	Exif        []string `json:"exif,omitempty"`
	Rating      *int     `json:"rating,omitempty"`

	ExposureTime       string `json:"exposure_time,omitempty"`
	ExposureTimePretty string `json:"exposure_time_pretty,omitempty"`
	TimeCreated        string `json:"time_created,omitempty"`

	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`

	Width            *int     `json:"width,omitempty"`
	Height           *int     `json:"height,omitempty"`
	PhotoRatio       *float64 `json:"photo_ratio,omitempty"`
	Filesize         *int64   `json:"filesize,omitempty"`
	Megapixels       *float64 `json:"megapixels,omitempty"`
	FPS              *float64 `json:"fps,omitempty"`
	ClipDurationSecs *float64 `json:"clip_duration_secs,omitempty"`

	EventID     ID       `json:"event_id,omitempty"`
	EventName   string   `json:"event_name,omitempty"`
	Tags        []ID     `json:"tags,omitempty"`
	TagIDs      []ID     `json:"tag_id,omitempty"`
	TagNames    []string `json:"tag_name,omitempty"`
	ParentTagID ID       `json:"parent_tag_id,omitempty"`
	Years       []string `json:"year,omitempty"`

	// Transient annotations, overwritten on every search execution.
	GroupIndex int64  `json:"group_index"`
	GroupName  string `json:"group_name,omitempty"`
}

// ExtraHeader is an optional link shown above the gallery.
type ExtraHeader struct {
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Feed is the pre-generated media index consumed by the viewer. It is
// produced by an external build step and loaded once per run.
type Feed struct {
	Title        string       `json:"title"`
	GeneratedAt  string       `json:"generated_at"`
	VersionLabel string       `json:"version_label"`
	ExtraHeader  *ExtraHeader `json:"extra_header,omitempty"`

	Events []*Record `json:"events"`
	Tags   []*Record `json:"tags"`
	Media  []*Record `json:"media"`
	Years  []*Record `json:"years"`
}

// StringValues returns the textual values a record carries for a named
// attribute. Attributes that hold sequences (tag_name, year, exif) return
// every element so multi-valued matching stays uniform with scalar fields.
func (r *Record) StringValues(attr string) []string {
	switch attr {
	case "title":
		if r.Title == "" {
			return nil
		}
		return []string{r.Title}
	case "title_prefix":
		return nonEmpty(r.TitlePrefix)
	case "comment":
		return nonEmpty(r.Comment)
	case "camera":
		return nonEmpty(r.Camera)
	case "link":
		return nonEmpty(r.Link)
	case "type":
		return nonEmpty(r.Type)
	case "event_name":
		return nonEmpty(r.EventName)
	case "event_id":
		return nonEmpty(string(r.EventID))
	case "parent_tag_id":
		return nonEmpty(string(r.ParentTagID))
	case "exposure_time":
		return nonEmpty(r.ExposureTime)
	case "exposure_time_pretty":
		return nonEmpty(r.ExposureTimePretty)
	case "time_created":
		return nonEmpty(r.TimeCreated)
	case "tag_name":
		return r.TagNames
	case "tag_id":
		out := make([]string, 0, len(r.TagIDs))
		for _, id := range r.TagIDs {
			out = append(out, string(id))
		}
		return out
	case "year":
		return r.Years
	case "exif":
		return r.Exif
	}
	return nil
}

// NumberValue returns the numeric value of a named attribute and whether
// the record carries it at all.
func (r *Record) NumberValue(attr string) (float64, bool) {
	switch attr {
	case "rating":
		if r.Rating != nil {
			return float64(*r.Rating), true
		}
	case "width":
		if r.Width != nil {
			return float64(*r.Width), true
		}
	case "height":
		if r.Height != nil {
			return float64(*r.Height), true
		}
	case "photo_ratio":
		if r.PhotoRatio != nil {
			return *r.PhotoRatio, true
		}
	case "filesize":
		if r.Filesize != nil {
			return float64(*r.Filesize), true
		}
	case "megapixels":
		if r.Megapixels != nil {
			return *r.Megapixels, true
		}
	case "fps":
		if r.FPS != nil {
			return *r.FPS, true
		}
	case "clip_duration_secs":
		if r.ClipDurationSecs != nil {
			return *r.ClipDurationSecs, true
		}
	}
	return 0, false
}

// HasGPS reports whether the record carries a coordinate pair.
func (r *Record) HasGPS() bool {
	return r.Lat != nil && r.Lon != nil
}

// DisplayTitle is the record title with its prefix applied.
func (r *Record) DisplayTitle() string {
	if r.TitlePrefix == "" {
		return r.Title
	}
	return r.TitlePrefix + r.Title
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
