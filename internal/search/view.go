package search

// View kinds.
const (
	ViewEvent  = "event"
	ViewYear   = "year"
	ViewTag    = "tag"
	ViewEvents = "events"
	ViewYears  = "years"
	ViewTags   = "tags"
	ViewSearch = "search"
)

// View is the inferred browsing context: what the user is looking at, the
// page title for it, and the sort order to use when none was chosen.
type View struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	DefaultSort string `json:"default_sort"`
	EventID     string `json:"event_id,omitempty"`
	TagID       string `json:"tag_id,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ResolveView inspects the active criteria to infer the view. Criteria are
// unordered from the caller's perspective; recognition scans once (last
// seen wins per pattern) and precedence between simultaneously present
// patterns is fixed: Event > Year > Tag, then the all-of-a-kind views, then
// plain search. Browsing an event inside one of its years carries both an
// Event ID and a Year criterion, and the event must win.
func ResolveView(s *Session, criteria []*Criterion) *View {
	var allEvents, allYears, allTags bool
	var eventID, tagID, year string
	var haveEvent, haveTag, haveYear bool

	for _, c := range criteria {
		if c.Synthetic() {
			continue
		}
		switch c.Field.Title {
		case "Type":
			if c.Op.Descr == "is a" {
				switch c.Values[0] {
				case "events":
					allEvents = true
				case "years":
					allYears = true
				case "tags":
					allTags = true
				}
			}
		case "Year":
			if c.Op.Descr == "equals" {
				year, haveYear = c.Values[0], true
			}
		case "Event ID":
			if c.Op.Descr == "equals" {
				eventID, haveEvent = c.Values[0], true
			}
		case "Tag ID":
			if c.Op.Descr == "equals" {
				tagID, haveTag = c.Values[0], true
			}
		}
	}

	main := s.Feed.Title
	switch {
	case haveEvent:
		label, ok := s.EventTitle(eventID)
		if !ok {
			label = "Unknown event"
		}
		return &View{Kind: ViewEvent, Title: main + ": " + label, DefaultSort: SortTakenAZ, EventID: eventID}
	case haveYear:
		return &View{Kind: ViewYear, Title: main + ": Year " + year, DefaultSort: SortTakenAZ, Year: year}
	case haveTag:
		label, ok := s.TagTitle(tagID)
		if !ok {
			label = "Unknown tag"
		}
		return &View{Kind: ViewTag, Title: main + ": " + label, DefaultSort: SortTakenZA, TagID: tagID}
	case allEvents:
		return &View{Kind: ViewEvents, Title: main + ": All Events", DefaultSort: SortTakenZA}
	case allYears:
		return &View{Kind: ViewYears, Title: main + ": All Years", DefaultSort: SortTakenZA}
	case allTags:
		return &View{Kind: ViewTags, Title: main + ": All Tags", DefaultSort: SortTakenZA}
	}
	return &View{Kind: ViewSearch, Title: main + ": Search", DefaultSort: SortTakenZA}
}
