package search

import "testing"

func TestResolveViewKinds(t *testing.T) {
	s := testSession()

	tests := []struct {
		name        string
		raws        []string
		kind        string
		title       string
		defaultSort string
	}{
		{
			"plain search",
			[]string{"Title,contains,car"},
			ViewSearch, "My Gallery: Search", SortTakenZA,
		},
		{
			"event",
			[]string{"Event ID,equals,1"},
			ViewEvent, "My Gallery: Summer Trip", SortTakenAZ,
		},
		{
			"year",
			[]string{"Year,equals,2020"},
			ViewYear, "My Gallery: Year 2020", SortTakenAZ,
		},
		{
			"tag",
			[]string{"Tag ID,equals,20"},
			ViewTag, "My Gallery: Beach", SortTakenZA,
		},
		{
			"all events",
			[]string{"Type,is a,events"},
			ViewEvents, "My Gallery: All Events", SortTakenZA,
		},
		{
			"all years",
			[]string{"Type,is a,years"},
			ViewYears, "My Gallery: All Years", SortTakenZA,
		},
		{
			"all tags",
			[]string{"Type,is a,tags"},
			ViewTags, "My Gallery: All Tags", SortTakenZA,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := ResolveView(s, ParseCriteria(s.Registry, tc.raws))
			if v.Kind != tc.kind {
				t.Errorf("kind = %q; want %q", v.Kind, tc.kind)
			}
			if v.Title != tc.title {
				t.Errorf("title = %q; want %q", v.Title, tc.title)
			}
			if v.DefaultSort != tc.defaultSort {
				t.Errorf("default sort = %q; want %q", v.DefaultSort, tc.defaultSort)
			}
		})
	}
}

func TestResolveViewPrecedence(t *testing.T) {
	s := testSession()

	tests := []struct {
		name string
		raws []string
		kind string
	}{
		// Browsing an event inside one of its years: the event wins.
		{"event beats year", []string{"Year,equals,2020", "Event ID,equals,1"}, ViewEvent},
		{"year beats tag", []string{"Tag ID,equals,20", "Year,equals,2020"}, ViewYear},
		{"tag beats all-events", []string{"Type,is a,events", "Tag ID,equals,20"}, ViewTag},
		{"all-events beats all-years", []string{"Type,is a,years", "Type,is a,events"}, ViewEvents},
		{"extra criteria keep the view", []string{"Event ID,equals,1", "Rating,is at least,4"}, ViewEvent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := ResolveView(s, ParseCriteria(s.Registry, tc.raws))
			if v.Kind != tc.kind {
				t.Errorf("kind = %q; want %q", v.Kind, tc.kind)
			}
		})
	}
}

func TestResolveViewLastSeenWins(t *testing.T) {
	s := testSession()
	v := ResolveView(s, ParseCriteria(s.Registry, []string{
		"Event ID,equals,1",
		"Event ID,equals,2",
	}))
	if v.EventID != "2" || v.Title != "My Gallery: Winter Hike" {
		t.Errorf("view = %q/%q; want the last event criterion", v.EventID, v.Title)
	}
}

func TestResolveViewUnknownEntities(t *testing.T) {
	s := testSession()

	v := ResolveView(s, ParseCriteria(s.Registry, []string{"Event ID,equals,999"}))
	if v.Title != "My Gallery: Unknown event" {
		t.Errorf("title = %q", v.Title)
	}

	v = ResolveView(s, ParseCriteria(s.Registry, []string{"Tag ID,equals,999"}))
	if v.Title != "My Gallery: Unknown tag" {
		t.Errorf("title = %q", v.Title)
	}
}

func TestResolveViewIgnoresNonEqualsOperators(t *testing.T) {
	s := testSession()

	// Only the "equals" operator establishes a browsing context.
	v := ResolveView(s, ParseCriteria(s.Registry, []string{"Event ID,is set"}))
	if v.Kind != ViewSearch {
		t.Errorf("kind = %q; want search", v.Kind)
	}
}
