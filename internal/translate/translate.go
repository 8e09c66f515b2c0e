// Package translate localizes feed text through the MyMemory API.
package translate

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"forex-dashboard/internal/api"
	"forex-dashboard/internal/logger"
)

// Translator translates English feed text into the dashboard language.
// Results are cached by exact source string; failures fall back to the
// source text so the dashboard never blocks on translation.
type Translator struct {
	client     *api.Client
	endpoint   string
	targetLang string

	mu    sync.RWMutex
	cache map[string]string
}

func NewTranslator(endpoint, targetLang string) *Translator {
	return &Translator{
		client:     api.NewClient(),
		endpoint:   endpoint,
		targetLang: targetLang,
		cache:      make(map[string]string),
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus int `json:"responseStatus"`
}

// Translate returns the target-language rendering of text. The source text
// is returned unchanged when translation is skipped or fails.
func (t *Translator) Translate(ctx context.Context, text string) string {
	if !ShouldTranslate(text) {
		return text
	}

	t.mu.RLock()
	cached, ok := t.cache[text]
	t.mu.RUnlock()
	if ok {
		return cached
	}

	translated, err := t.fetch(ctx, text)
	if err != nil {
		logger.ErrorWithErr(ctx, "Translation failed, keeping source text", err)
		return text
	}

	// A result identical up to casing usually means the provider gave up;
	// do not cache it so a later attempt can still succeed.
	if strings.EqualFold(translated, text) {
		return translated
	}

	t.mu.Lock()
	t.cache[text] = translated
	t.mu.Unlock()
	return translated
}

func (t *Translator) fetch(ctx context.Context, text string) (string, error) {
	reqURL := fmt.Sprintf("%s?q=%s&langpair=en|%s", t.endpoint, url.QueryEscape(text), t.targetLang)

	resp, err := t.client.GET(ctx, reqURL)
	if err != nil {
		return "", fmt.Errorf("failed to call translation API: %w", err)
	}

	var body myMemoryResponse
	if err := resp.ParseJSON(&body); err != nil {
		return "", fmt.Errorf("failed to parse translation response: %w", err)
	}
	if body.ResponseStatus != 200 {
		return "", fmt.Errorf("translation API returned status %d", body.ResponseStatus)
	}

	translated := strings.TrimSpace(body.ResponseData.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("translation API returned empty text")
	}
	return translated, nil
}

var (
	noLettersRe = regexp.MustCompile(`^[^a-zA-Z]*$`)
	urlRe       = regexp.MustCompile(`^https?://`)
	frenchRe    = regexp.MustCompile(`[àâçéèêëîïôùûü]`)
)

// ShouldTranslate filters out text not worth a translation call: trivially
// short strings, strings with no letters, URLs, and text that already looks
// French.
func ShouldTranslate(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 3 {
		return false
	}
	if noLettersRe.MatchString(trimmed) {
		return false
	}
	if urlRe.MatchString(trimmed) {
		return false
	}
	if frenchRe.MatchString(strings.ToLower(trimmed)) {
		return false
	}
	return true
}
