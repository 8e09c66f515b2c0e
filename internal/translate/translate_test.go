package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestShouldTranslate(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Fed holds rates steady", true},
		{"ab", false},                      // too short
		{"  a  ", false},                   // too short after trim
		{"1.0850 +0.25%", false},           // no letters
		{"https://example.com/news", false},
		{"Décision taux BoE", false},      // accented, already French
		{"Ventes au détail en hausse", false},
		{"123", false},
	}
	for _, tc := range cases {
		if got := ShouldTranslate(tc.text); got != tc.want {
			t.Errorf("ShouldTranslate(%q): expected %v, got %v", tc.text, tc.want, got)
		}
	}
}

func translationServer(t *testing.T, calls *atomic.Int64, translated string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprintf(w, `{"responseData":{"translatedText":%q},"responseStatus":200}`, translated)
	}))
}

func TestTranslateCachesResults(t *testing.T) {
	var calls atomic.Int64
	srv := translationServer(t, &calls, "La Fed maintient ses taux")
	defer srv.Close()

	tr := NewTranslator(srv.URL, "fr")
	ctx := context.Background()

	first := tr.Translate(ctx, "Fed holds rates")
	second := tr.Translate(ctx, "Fed holds rates")

	if first != "La Fed maintient ses taux" || second != first {
		t.Errorf("unexpected translations: %q, %q", first, second)
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 API call with caching, got %d", calls.Load())
	}
}

func TestTranslateIdenticalResultNotCached(t *testing.T) {
	var calls atomic.Int64
	srv := translationServer(t, &calls, "Fed holds rates")
	defer srv.Close()

	tr := NewTranslator(srv.URL, "fr")
	ctx := context.Background()

	tr.Translate(ctx, "Fed holds rates")
	tr.Translate(ctx, "Fed holds rates")

	if calls.Load() != 2 {
		t.Errorf("expected identical translation to bypass the cache, got %d calls", calls.Load())
	}
}

func TestTranslateCaseOnlyEchoNotCached(t *testing.T) {
	var calls atomic.Int64
	srv := translationServer(t, &calls, "FED HOLDS RATES")
	defer srv.Close()

	tr := NewTranslator(srv.URL, "fr")
	ctx := context.Background()

	if got := tr.Translate(ctx, "Fed holds rates"); got != "FED HOLDS RATES" {
		t.Errorf("expected the provider echo returned, got %q", got)
	}
	tr.Translate(ctx, "Fed holds rates")

	if calls.Load() != 2 {
		t.Errorf("expected case-only echo to bypass the cache, got %d calls", calls.Load())
	}
}

func TestTranslateFailureReturnsSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := NewTranslator(srv.URL, "fr")
	if got := tr.Translate(context.Background(), "Fed holds rates"); got != "Fed holds rates" {
		t.Errorf("expected source text on failure, got %q", got)
	}
}

func TestTranslateSkipsFilteredText(t *testing.T) {
	var calls atomic.Int64
	srv := translationServer(t, &calls, "whatever")
	defer srv.Close()

	tr := NewTranslator(srv.URL, "fr")
	if got := tr.Translate(context.Background(), "1.0850"); got != "1.0850" {
		t.Errorf("expected filtered text unchanged, got %q", got)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no API call for filtered text, got %d", calls.Load())
	}
}
