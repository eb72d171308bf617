package search

import (
	"strconv"
	"strings"
	"time"

	"github.com/kozaktomas/photo-gallery/internal/feed"
	"github.com/kozaktomas/photo-gallery/internal/geo"
)

// timeNow is swapped out by tests that exercise the relative date operators.
var timeNow = time.Now

// matchFunc evaluates one operator against one record. It must be a pure
// function of its inputs and never mutate the record.
type matchFunc func(f *Field, values []string, r *feed.Record) bool

// Operator is one way of matching a field: a display description (the
// stable serialization key within the field), an arity, UI input hints and
// the predicate itself.
type Operator struct {
	Descr       string `json:"descr"`
	NumValues   int    `json:"num_values"`
	Input       string `json:"input,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Step        string `json:"step,omitempty"`

	match matchFunc
}

// Matches evaluates the operator for a field against a record.
func (o *Operator) Matches(f *Field, values []string, r *feed.Record) bool {
	return o.match(f, values, r)
}

func not(fn matchFunc) matchFunc {
	return func(f *Field, values []string, r *feed.Record) bool {
		return !fn(f, values, r)
	}
}

// attrValues gathers the folded textual values of every attribute the field
// reads. "Any Text" fans out across several attributes this way.
func attrValues(f *Field, r *feed.Record) []string {
	var out []string
	for _, attr := range f.Attrs {
		for _, v := range r.StringValues(attr) {
			out = append(out, fold(v))
		}
	}
	return out
}

// --- Text operators ---

func textOperators() []*Operator {
	return []*Operator{
		{Descr: "contains", NumValues: 1, Input: "text", match: textContains},
		{Descr: "missing", NumValues: 1, Input: "text", match: not(textContains)},
		{Descr: "contains word", NumValues: 1, Input: "text", match: textContainsWord},
		{Descr: "missing word", NumValues: 1, Input: "text", match: not(textContainsWord)},
		{Descr: "equals", NumValues: 1, Input: "text", match: textEquals},
		{Descr: "does not equal", NumValues: 1, Input: "text", match: not(textEquals)},
		{Descr: "starts with", NumValues: 1, Input: "text", match: textStartsWith},
		{Descr: "ends with", NumValues: 1, Input: "text", match: textEndsWith},
		{Descr: "is set", NumValues: 0, match: textIsSet},
		{Descr: "is not set", NumValues: 0, match: not(textIsSet)},
	}
}

// textContains splits the search value into tokens; every token must be a
// substring of at least one attribute value, though not necessarily the same
// one, so "red car" finds a title containing both words in either order.
func textContains(f *Field, values []string, r *feed.Record) bool {
	targets := attrValues(f, r)
	for _, token := range strings.Fields(fold(values[0])) {
		if !anyContains(targets, token) {
			return false
		}
	}
	return true
}

// textContainsWord is like textContains but a token only matches a whole
// space-separated word, never a substring of one.
func textContainsWord(f *Field, values []string, r *feed.Record) bool {
	targets := attrValues(f, r)
	for _, token := range strings.Fields(fold(values[0])) {
		if !anyContainsWord(targets, token) {
			return false
		}
	}
	return true
}

func anyContains(targets []string, token string) bool {
	for _, t := range targets {
		if strings.Contains(t, token) {
			return true
		}
	}
	return false
}

func anyContainsWord(targets []string, token string) bool {
	for _, t := range targets {
		for _, word := range strings.Fields(t) {
			if word == token {
				return true
			}
		}
	}
	return false
}

func textEquals(f *Field, values []string, r *feed.Record) bool {
	want := fold(values[0])
	for _, t := range attrValues(f, r) {
		if t == want {
			return true
		}
	}
	return false
}

func textStartsWith(f *Field, values []string, r *feed.Record) bool {
	prefix := fold(values[0])
	for _, t := range attrValues(f, r) {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}

func textEndsWith(f *Field, values []string, r *feed.Record) bool {
	suffix := fold(values[0])
	for _, t := range attrValues(f, r) {
		if strings.HasSuffix(t, suffix) {
			return true
		}
	}
	return false
}

func textIsSet(f *Field, values []string, r *feed.Record) bool {
	return len(attrValues(f, r)) > 0
}

// --- Date operators ---

// Date matching works on the raw ISO-8601 string: ISO-8601 sorts
// lexicographically, so string comparison is order-correct and tolerates
// date-only precision.
func dateOperators() []*Operator {
	return []*Operator{
		{Descr: "was taken on date", NumValues: 1, Input: "date", Placeholder: "YYYY-MM-DD", match: dateOnDate},
		{Descr: "was taken on month/day", NumValues: 1, Input: "text", Placeholder: "MM-DD", match: dateOnMonthDay},
		{Descr: "was taken on month", NumValues: 1, Input: "text", Placeholder: "MM", match: dateOnMonth},
		{Descr: "was taken on this day", NumValues: 0, match: dateOnThisDay},
		{Descr: "was taken on this week", NumValues: 0, match: dateOnThisWeek},
		{Descr: "was taken on this month", NumValues: 0, match: dateOnThisMonth},
		{Descr: "is before", NumValues: 1, Input: "date", match: dateBefore},
		{Descr: "is after", NumValues: 1, Input: "date", match: dateAfter},
		{Descr: "is between", NumValues: 2, Input: "date", match: dateBetween},
		{Descr: "is set", NumValues: 0, match: textIsSet},
		{Descr: "is not set", NumValues: 0, match: not(textIsSet)},
	}
}

func recordDate(f *Field, r *feed.Record) string {
	for _, attr := range f.Attrs {
		if vs := r.StringValues(attr); len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}

func dateOnDate(f *Field, values []string, r *feed.Record) bool {
	date := recordDate(f, r)
	return date != "" && strings.HasPrefix(date, values[0])
}

func dateOnMonthDay(f *Field, values []string, r *feed.Record) bool {
	date := recordDate(f, r)
	return len(date) >= 10 && date[5:10] == values[0]
}

func dateOnMonth(f *Field, values []string, r *feed.Record) bool {
	date := recordDate(f, r)
	return len(date) >= 7 && date[5:7] == values[0]
}

func dateOnThisDay(f *Field, values []string, r *feed.Record) bool {
	return dateOnMonthDay(f, []string{timeNow().Format("01-02")}, r)
}

// dateOnThisWeek matches the trailing 7-day window by comparing zero-padded
// MM-DD strings. Known limitation: a window spanning a year boundary
// (Dec 28 – Jan 3) will not include the early-January dates.
func dateOnThisWeek(f *Field, values []string, r *feed.Record) bool {
	date := recordDate(f, r)
	if len(date) < 10 {
		return false
	}
	now := timeNow()
	start := now.AddDate(0, 0, -6).Format("01-02")
	end := now.Format("01-02")
	md := date[5:10]
	return start <= md && md <= end
}

func dateOnThisMonth(f *Field, values []string, r *feed.Record) bool {
	return dateOnMonth(f, []string{timeNow().Format("01")}, r)
}

func dateBefore(f *Field, values []string, r *feed.Record) bool {
	date := recordDate(f, r)
	return date != "" && date < values[0]
}

func dateAfter(f *Field, values []string, r *feed.Record) bool {
	date := recordDate(f, r)
	return date != "" && date > values[0]
}

func dateBetween(f *Field, values []string, r *feed.Record) bool {
	date := recordDate(f, r)
	return date != "" && values[0] <= date && date <= values[1]
}

// --- Media type operators ---

func typeOperators() []*Operator {
	return []*Operator{
		{Descr: "is a", NumValues: 1, Input: "select", match: typeIs},
		{Descr: "is not a", NumValues: 1, Input: "select", match: not(typeIs)},
	}
}

// typeIs implements the media type hierarchy: "media" covers photos, motion
// photos and videos; "photo" covers motion photos too (a motion photo is a
// photo subtype); everything else is an exact match.
func typeIs(f *Field, values []string, r *feed.Record) bool {
	switch values[0] {
	case "media":
		return r.Type == "photo" || r.Type == "motion_photo" || r.Type == "video"
	case "photo":
		return r.Type == "photo" || r.Type == "motion_photo"
	default:
		return r.Type == values[0]
	}
}

// --- Numeric operators ---

// numberOperators builds the integer (step 1) and decimal (step 0.1)
// variants; both share the same comparator logic.
func numberOperators(decimal bool) []*Operator {
	step := "1"
	if decimal {
		step = "0.1"
	}
	return []*Operator{
		{Descr: "is at least", NumValues: 1, Input: "number", Step: step, match: numberAtLeast},
		{Descr: "is at most", NumValues: 1, Input: "number", Step: step, match: numberAtMost},
		{Descr: "equals", NumValues: 1, Input: "number", Step: step, match: numberEquals},
		{Descr: "does not equal", NumValues: 1, Input: "number", Step: step, match: numberNotEquals},
		{Descr: "is set", NumValues: 0, match: numberIsSet},
		{Descr: "is not set", NumValues: 0, match: not(numberIsSet)},
	}
}

func recordNumber(f *Field, r *feed.Record) (float64, bool) {
	for _, attr := range f.Attrs {
		if n, ok := r.NumberValue(attr); ok {
			return n, true
		}
	}
	return 0, false
}

func numberAtLeast(f *Field, values []string, r *feed.Record) bool {
	n, ok := recordNumber(f, r)
	want, err := strconv.ParseFloat(values[0], 64)
	return ok && err == nil && n >= want
}

func numberAtMost(f *Field, values []string, r *feed.Record) bool {
	n, ok := recordNumber(f, r)
	want, err := strconv.ParseFloat(values[0], 64)
	return ok && err == nil && n <= want
}

func numberEquals(f *Field, values []string, r *feed.Record) bool {
	n, ok := recordNumber(f, r)
	want, err := strconv.ParseFloat(values[0], 64)
	return ok && err == nil && n == want
}

// numberNotEquals matches records without the attribute, mirroring loose
// inequality against a missing value.
func numberNotEquals(f *Field, values []string, r *feed.Record) bool {
	n, ok := recordNumber(f, r)
	if !ok {
		return true
	}
	want, err := strconv.ParseFloat(values[0], 64)
	return err == nil && n != want
}

func numberIsSet(f *Field, values []string, r *feed.Record) bool {
	_, ok := recordNumber(f, r)
	return ok
}

// --- Identifier operators ---

// Identifier fields (Event ID, Tag ID, Tag Parent ID, Year) compare their
// value sequences exactly; a tag record matches its own id and its parent's.
func idOperators() []*Operator {
	return []*Operator{
		{Descr: "equals", NumValues: 1, Input: "text", match: idEquals},
		{Descr: "does not equal", NumValues: 1, Input: "text", match: not(idEquals)},
		{Descr: "is set", NumValues: 0, match: textIsSet},
		{Descr: "is not set", NumValues: 0, match: not(textIsSet)},
	}
}

func idEquals(f *Field, values []string, r *feed.Record) bool {
	for _, attr := range f.Attrs {
		for _, v := range r.StringValues(attr) {
			if v == values[0] {
				return true
			}
		}
	}
	return false
}

// --- GPS operators ---

func gpsOperators() []*Operator {
	return []*Operator{
		{Descr: "is within", NumValues: 3, Input: "number", Placeholder: "lat, lon, km", match: gpsWithin},
		{Descr: "is outside", NumValues: 3, Input: "number", Placeholder: "lat, lon, km", match: gpsOutside},
	}
}

func gpsDistance(values []string, r *feed.Record) (float64, float64, bool) {
	if !r.HasGPS() {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(values[0], 64)
	lon, err2 := strconv.ParseFloat(values[1], 64)
	radius, err3 := strconv.ParseFloat(values[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, false
	}
	return geo.DistanceKm(*r.Lat, *r.Lon, lat, lon), radius, true
}

func gpsWithin(f *Field, values []string, r *feed.Record) bool {
	dist, radius, ok := gpsDistance(values, r)
	return ok && dist <= radius
}

// gpsOutside only matches records that actually carry a coordinate; records
// without GPS match neither side of the radius.
func gpsOutside(f *Field, values []string, r *feed.Record) bool {
	dist, radius, ok := gpsDistance(values, r)
	return ok && dist > radius
}

// --- File extension operators ---

func extensionOperators() []*Operator {
	return []*Operator{
		{Descr: "is", NumValues: 1, Input: "select", match: extensionIs},
		{Descr: "is not", NumValues: 1, Input: "select", match: not(extensionIs)},
	}
}

func extensionIs(f *Field, values []string, r *feed.Record) bool {
	suffix := "." + fold(values[0])
	for _, t := range attrValues(f, r) {
		if strings.HasSuffix(t, suffix) {
			return true
		}
	}
	return false
}
