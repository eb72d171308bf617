package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kozaktomas/photo-gallery/internal/feed"
)

// Criterion is one active filter: a field, one of its operators, and the
// operator's values. A zero Criterion is the synthetic match-all filter
// substituted when no valid criteria survive parsing.
type Criterion struct {
	Field  *Field
	Op     *Operator
	Values []string
}

// Synthetic reports whether this is the substituted match-all criterion.
func (c *Criterion) Synthetic() bool {
	return c.Op == nil
}

// Matches evaluates the criterion against a record.
func (c *Criterion) Matches(r *feed.Record) bool {
	if c.Synthetic() {
		return true
	}
	return c.Op.Matches(c.Field, c.Values, r)
}

// String renders the criterion in its wire form:
// "<field title>,<operator descr>[,value]*". Values containing a literal
// comma are not escapable in this encoding; that limitation is kept so
// existing shared links stay valid.
func (c *Criterion) String() string {
	if c.Synthetic() {
		return ""
	}
	parts := append([]string{c.Field.Title, c.Op.Descr}, c.Values...)
	return strings.Join(parts, ",")
}

// ParseCriterion parses one wire-form criterion. Anything malformed (too
// few parts, unknown field or operator, wrong number of values) is
// reported as not-ok and dropped by the caller; a stale or hand-edited URL
// must never break the page.
func ParseCriterion(reg *Registry, raw string) (*Criterion, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return nil, false
	}
	field, ok := reg.Field(parts[0])
	if !ok {
		return nil, false
	}
	op, ok := field.Op(parts[1])
	if !ok {
		return nil, false
	}
	values := parts[2:]
	if len(values) != op.NumValues {
		return nil, false
	}
	return &Criterion{Field: field, Op: op, Values: values}, true
}

// ParseCriteria parses a list of wire-form criteria, dropping invalid ones.
// If none survive, a single synthetic match-all criterion is substituted so
// the default view shows everything rather than nothing.
func ParseCriteria(reg *Registry, raws []string) []*Criterion {
	var criteria []*Criterion
	for _, raw := range raws {
		if c, ok := ParseCriterion(reg, raw); ok {
			criteria = append(criteria, c)
		}
	}
	if len(criteria) == 0 {
		criteria = []*Criterion{{}}
	}
	return criteria
}

// Query is the application state persisted in the URL: the active criteria
// plus match policy, sort mode, grouping mode, icon preset and shuffle seed.
type Query struct {
	Criteria []*Criterion
	Match    string
	Sort     string
	Group    string
	Icons    string
	Seed     int64
	HasSeed  bool
}

// Sort modes. DefaultSort defers to the resolved view's preference.
const (
	SortDefault   = "default"
	SortTakenZA   = "takenZA"
	SortTakenAZ   = "takenAZ"
	SortCreatedZA = "createdZA"
	SortCreatedAZ = "createdAZ"
	SortRandom    = "random"
)

// Match policies.
const (
	MatchAll  = "all"
	MatchAny  = "any"
	MatchNone = "none"
)

// ParseQuery rebuilds the query state from URL values. Parsing is lenient
// throughout: unrecognized values fall back to defaults.
func ParseQuery(reg *Registry, vals url.Values) *Query {
	q := &Query{
		Criteria: ParseCriteria(reg, vals["search"]),
		Match:    MatchAll,
		Sort:     SortDefault,
		Group:    GroupNone,
		Icons:    vals.Get("icons"),
	}
	if m := vals.Get("match"); m != "" {
		q.Match = m
	}
	if s := vals.Get("sort"); s != "" {
		q.Sort = s
	}
	if g := vals.Get("group"); g != "" {
		q.Group = g
	}
	if seed, err := strconv.ParseInt(vals.Get("seed"), 10, 64); err == nil {
		q.Seed = seed
		q.HasSeed = true
	}
	return q
}

// Encode serializes the query state back to URL values, omitting defaults.
// Re-parsing the result yields an equivalent query.
func (q *Query) Encode() url.Values {
	vals := url.Values{}
	for _, c := range q.Criteria {
		if !c.Synthetic() {
			vals.Add("search", c.String())
		}
	}
	if q.Match != MatchAll {
		vals.Set("match", q.Match)
	}
	if q.Sort != SortDefault {
		vals.Set("sort", q.Sort)
	}
	if q.Group != GroupNone {
		vals.Set("group", q.Group)
	}
	if q.Icons != "" {
		vals.Set("icons", q.Icons)
	}
	if q.HasSeed {
		vals.Set("seed", strconv.FormatInt(q.Seed, 10))
	}
	return vals
}
