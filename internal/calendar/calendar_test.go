package calendar

import (
	"context"
	"testing"
	"time"
)

func TestMockEventsCoverTheWeek(t *testing.T) {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // a Monday
	events := MockEvents(start)

	if len(events) != 7 {
		t.Fatalf("expected 7 canned events, got %d", len(events))
	}
	if events[0].Date != "2024-03-04" {
		t.Errorf("expected first event on start date, got %s", events[0].Date)
	}
	if events[len(events)-1].Date != "2024-03-08" {
		t.Errorf("expected last event four days out, got %s", events[len(events)-1].Date)
	}
	for _, e := range events {
		if e.Currency == "" || e.Event == "" || e.Time == "" {
			t.Errorf("incomplete event: %+v", e)
		}
		switch e.Impact {
		case "high", "medium", "low":
		default:
			t.Errorf("unexpected impact level %q", e.Impact)
		}
	}
}

func TestImpactFromClass(t *testing.T) {
	cases := []struct {
		class string
		want  string
	}{
		{"icon icon--ff-impact-red", "high"},
		{"icon icon--ff-impact-ora", "medium"},
		{"icon icon--ff-impact-yel", "medium"},
		{"icon icon--ff-impact-gra", "low"},
		{"", "low"},
	}
	for _, tc := range cases {
		if got := impactFromClass(tc.class); got != tc.want {
			t.Errorf("impactFromClass(%q): expected %s, got %s", tc.class, tc.want, got)
		}
	}
}

func TestEventsFallsBackToMock(t *testing.T) {
	s := NewScraper("http://127.0.0.1:1/calendar.php")
	s.timeout = 100 * time.Millisecond

	events := s.Events(context.Background())
	if len(events) == 0 {
		t.Fatal("expected canned events when the source is unreachable")
	}
}

func TestEventsServesCachedOnFailure(t *testing.T) {
	s := NewScraper("http://127.0.0.1:1/calendar.php")
	s.timeout = 100 * time.Millisecond
	s.cached = MockEvents(time.Now())[:2]
	s.at = time.Now().Add(-2 * cacheTTL) // stale, forces re-scrape

	events := s.Events(context.Background())
	if len(events) != 2 {
		t.Fatalf("expected stale cached events on failure, got %d", len(events))
	}
}
