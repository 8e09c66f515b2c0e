package news

import (
	"testing"
	"time"

	"forex-dashboard/internal/types"
)

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<p>EUR/USD <b>rallies</b></p>", "EUR/USD rallies"},
		{"plain text", "plain text"},
		{"", ""},
		{"<div>line one</div><div>line two</div>", "line oneline two"},
		{"  spaced   \n out  ", "spaced out"},
	}
	for _, tc := range cases {
		if got := StripHTML(tc.in); got != tc.want {
			t.Errorf("StripHTML(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestCleanCDATA(t *testing.T) {
	got := cleanCDATA("<![CDATA[Fed holds rates]]>")
	if got != "Fed holds rates" {
		t.Errorf("expected CDATA wrapper removed, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 200); got != "short" {
		t.Errorf("expected text under limit unchanged, got %q", got)
	}
	long := Truncate("abcdefghij", 5)
	if long != "abcde..." {
		t.Errorf("expected truncated text with ellipsis, got %q", long)
	}
}

func TestDedupeByTitle(t *testing.T) {
	items := []types.NewsItem{
		{Title: "Fed holds", Link: "https://a"},
		{Title: "ECB cuts", Link: "https://b"},
		{Title: "Fed holds", Link: "https://c"},
	}
	out := dedupeByTitle(items)
	if len(out) != 2 {
		t.Fatalf("expected 2 items after dedupe, got %d", len(out))
	}
	if out[0].Link != "https://a" {
		t.Errorf("expected first occurrence kept, got %q", out[0].Link)
	}
}

func TestMockNewsNewestFirst(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	items := MockNews(now)
	if len(items) < 10 {
		t.Fatalf("expected a full demo feed, got %d items", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].PubDate.After(items[i-1].PubDate) {
			t.Fatalf("items not sorted newest-first at index %d", i)
		}
	}
}

func TestMockNewsHasCentralBankCoverage(t *testing.T) {
	items := MockNews(time.Now())
	var centralBank int
	for _, it := range items {
		if it.Category == "Central Bank" {
			centralBank++
		}
	}
	if centralBank == 0 {
		t.Error("expected demo feed to include central bank stories")
	}
}
