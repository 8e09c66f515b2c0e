package news

import (
	"context"
	"time"

	"forex-dashboard/internal/logger"
	"forex-dashboard/internal/store"
	"forex-dashboard/internal/types"
)

const (
	cacheKeyNews      = "news"
	cacheKeyTechnical = "technical"
)

// TextTranslator localizes feed text. The news service treats translation
// as best-effort decoration.
type TextTranslator interface {
	Translate(ctx context.Context, text string) string
}

// Service serves headline and technical-analysis feeds with caching. In demo
// mode it returns canned data without touching the network; when a live fetch
// fails it degrades to stale cache entries, then to canned data.
type Service struct {
	collector  *Collector
	cache      *feedCache
	settings   *store.SettingsStore
	translator TextTranslator

	newsURL      string
	technicalURL string
}

// NewService builds the feed service from configuration.
func NewService(cfg store.FeedsConfig, settings *store.SettingsStore) *Service {
	ttl := time.Duration(settings.Get().RefreshInterval) * time.Second
	return &Service{
		collector:    NewCollector(cfg.RelayURL, cfg.MaxItems, cfg.ContentLimit),
		cache:        newFeedCache(ttl),
		settings:     settings,
		newsURL:      cfg.NewsURL,
		technicalURL: cfg.TechnicalURL,
	}
}

// Latest returns current headlines, newest-first.
func (s *Service) Latest(ctx context.Context) []types.NewsItem {
	return s.serve(ctx, cacheKeyNews, s.newsURL, "News", MockNews)
}

// TechnicalAnalysis returns current technical-analysis entries, newest-first.
func (s *Service) TechnicalAnalysis(ctx context.Context) []types.NewsItem {
	return s.serve(ctx, cacheKeyTechnical, s.technicalURL, "Technical Analysis", MockTechnical)
}

func (s *Service) serve(ctx context.Context, key, feedURL, category string, mock func(time.Time) []types.NewsItem) []types.NewsItem {
	if s.settings.Get().DemoMode {
		return mock(time.Now())
	}

	if items, ok := s.cache.get(key); ok {
		return items
	}

	items, err := s.collector.Fetch(ctx, feedURL, category)
	if err != nil {
		logger.ErrorWithErr(ctx, "Feed fetch failed, degrading", err, "feed", key)
		if stale, ok := s.cache.getStale(key); ok {
			return stale
		}
		return mock(time.Now())
	}

	s.localize(ctx, items)
	s.cache.set(key, items)
	return items
}

// SetTranslator enables localization of fetched items.
func (s *Service) SetTranslator(tr TextTranslator) {
	s.translator = tr
}

// localize fills the translated fields in place. Untranslatable text comes
// back unchanged, so the fields are always safe to render.
func (s *Service) localize(ctx context.Context, items []types.NewsItem) {
	if s.translator == nil {
		return
	}
	for i := range items {
		items[i].TranslatedTitle = s.translator.Translate(ctx, items[i].Title)
		items[i].TranslatedContent = s.translator.Translate(ctx, items[i].Content)
	}
}

// Refresh re-fetches both feeds regardless of cache freshness. It is called
// by the scheduler; fetch failures are logged and leave the cache untouched.
func (s *Service) Refresh(ctx context.Context) {
	s.cache.setTTL(time.Duration(s.settings.Get().RefreshInterval) * time.Second)

	if items, err := s.collector.Fetch(ctx, s.newsURL, "News"); err != nil {
		logger.ErrorWithErr(ctx, "News refresh failed", err)
	} else {
		s.localize(ctx, items)
		s.cache.set(cacheKeyNews, items)
	}

	if items, err := s.collector.Fetch(ctx, s.technicalURL, "Technical Analysis"); err != nil {
		logger.ErrorWithErr(ctx, "Technical refresh failed", err)
	} else {
		s.localize(ctx, items)
		s.cache.set(cacheKeyTechnical, items)
	}
}
