package news

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"forex-dashboard/internal/api"
	"forex-dashboard/internal/logger"
	"forex-dashboard/internal/trace"
	"forex-dashboard/internal/types"
)

// Collector fetches syndication feeds through a CORS relay and normalizes
// entries into NewsItem values sorted newest-first.
type Collector struct {
	client       *api.Client
	relayURL     string
	parser       *gofeed.Parser
	maxItems     int
	contentLimit int
}

// NewCollector creates a feed collector using the shared HTTP client.
func NewCollector(relayURL string, maxItems, contentLimit int) *Collector {
	return &Collector{
		client:       api.NewClient(api.WithLogging(true)),
		relayURL:     relayURL,
		parser:       gofeed.NewParser(),
		maxItems:     maxItems,
		contentLimit: contentLimit,
	}
}

// Fetch downloads and parses one feed. The returned items are deduplicated
// by title and sorted by publish time descending, so the first item is the
// most recent one — downstream consumers (the stance classifier in
// particular) rely on that ordering.
func (c *Collector) Fetch(ctx context.Context, feedURL, category string) ([]types.NewsItem, error) {
	ctx, span := trace.StartSpan(ctx, "fetch-feed")
	defer span.End()

	resp, err := c.client.GET(ctx, c.relayURL+url.QueryEscape(feedURL), api.FeedHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	feed, err := c.parser.ParseString(resp.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]types.NewsItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		item, ok := normalizeEntry(entry, category, c.contentLimit)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	items = dedupeByTitle(items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PubDate.After(items[j].PubDate)
	})
	if len(items) > c.maxItems {
		items = items[:c.maxItems]
	}

	logger.Info(ctx, "Feed fetched", "url", feedURL, "items", len(items))
	return items, nil
}

// normalizeEntry converts one feed entry. Entries without a title or link
// are skipped.
func normalizeEntry(entry *gofeed.Item, category string, contentLimit int) (types.NewsItem, bool) {
	title := StripHTML(cleanCDATA(entry.Title))
	if title == "" {
		return types.NewsItem{}, false
	}
	if entry.Link == "" {
		return types.NewsItem{}, false
	}

	item := types.NewsItem{
		Title:    title,
		Content:  Truncate(StripHTML(cleanCDATA(entry.Description)), contentLimit),
		Link:     entry.Link,
		Category: category,
	}
	if entry.PublishedParsed != nil {
		item.PubDate = *entry.PublishedParsed
	}
	if len(entry.Categories) > 0 && category == "" {
		item.Category = entry.Categories[0]
	}
	if entry.Author != nil {
		item.Author = entry.Author.Name
	}
	return item, true
}

var cdataRe = regexp.MustCompile(`<!\[CDATA\[(.*?)\]\]>`)

func cleanCDATA(s string) string {
	return cdataRe.ReplaceAllString(s, "$1")
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// StripHTML extracts the text content of an HTML fragment and collapses
// runs of whitespace.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(doc.Text(), " "))
}

// Truncate cuts text to the character budget, appending an ellipsis when
// something was dropped.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}

func dedupeByTitle(items []types.NewsItem) []types.NewsItem {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item.Title] {
			continue
		}
		seen[item.Title] = true
		out = append(out, item)
	}
	return out
}
