// Package calendar scrapes the economic calendar and degrades to canned
// events when the source is unreachable.
package calendar

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"forex-dashboard/internal/logger"
	"forex-dashboard/internal/types"
)

// Scraper pulls the week's economic events from the calendar source.
type Scraper struct {
	sourceURL string
	timeout   time.Duration

	mu     sync.Mutex
	cached []types.EconomicEvent
	at     time.Time
}

const cacheTTL = time.Hour

func NewScraper(sourceURL string) *Scraper {
	return &Scraper{
		sourceURL: sourceURL,
		timeout:   15 * time.Second,
	}
}

// Events returns the current week's economic events. Results are cached for
// an hour; on scrape failure the previous result is served, then canned
// events as the last resort.
func (s *Scraper) Events(ctx context.Context) []types.EconomicEvent {
	s.mu.Lock()
	if len(s.cached) > 0 && time.Since(s.at) < cacheTTL {
		events := s.cached
		s.mu.Unlock()
		return events
	}
	s.mu.Unlock()

	events, err := s.scrape(ctx)
	if err != nil || len(events) == 0 {
		logger.ErrorWithErr(ctx, "Calendar scrape failed, degrading", err)
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.cached) > 0 {
			return s.cached
		}
		return MockEvents(time.Now())
	}

	s.mu.Lock()
	s.cached = events
	s.at = time.Now()
	s.mu.Unlock()
	return events
}

// Refresh forces a re-scrape regardless of cache age. Failures leave the
// cached events in place.
func (s *Scraper) Refresh(ctx context.Context) {
	events, err := s.scrape(ctx)
	if err != nil || len(events) == 0 {
		logger.ErrorWithErr(ctx, "Calendar refresh failed", err)
		return
	}
	s.mu.Lock()
	s.cached = events
	s.at = time.Now()
	s.mu.Unlock()
}

func (s *Scraper) scrape(ctx context.Context) ([]types.EconomicEvent, error) {
	events := []types.EconomicEvent{}
	currentDate := ""

	c := colly.NewCollector(
		colly.AllowedDomains(getDomain(s.sourceURL)),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})

	c.OnHTML("tr.calendar__row", func(e *colly.HTMLElement) {
		if date := strings.TrimSpace(e.ChildText("td.calendar__date span")); date != "" {
			currentDate = date
		}

		name := strings.TrimSpace(e.ChildText("td.calendar__event"))
		if name == "" {
			return
		}

		events = append(events, types.EconomicEvent{
			Date:     currentDate,
			Time:     strings.TrimSpace(e.ChildText("td.calendar__time")),
			Currency: strings.TrimSpace(e.ChildText("td.calendar__currency")),
			Impact:   impactFromClass(e.ChildAttr("td.calendar__impact span", "class")),
			Event:    name,
			Actual:   strings.TrimSpace(e.ChildText("td.calendar__actual")),
			Forecast: strings.TrimSpace(e.ChildText("td.calendar__forecast")),
			Previous: strings.TrimSpace(e.ChildText("td.calendar__previous")),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Calendar scraping error", err, "url", r.Request.URL.String())
	})

	if err := c.Visit(s.sourceURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", s.sourceURL, err)
	}
	c.Wait()

	logger.Info(ctx, "Calendar scraped", "events", len(events))
	return events, nil
}

// impactFromClass maps the source's impact icon classes to our levels.
func impactFromClass(class string) string {
	switch {
	case strings.Contains(class, "red"):
		return "high"
	case strings.Contains(class, "ora"), strings.Contains(class, "yel"):
		return "medium"
	default:
		return "low"
	}
}

func getDomain(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
