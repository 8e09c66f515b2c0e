// Package stance tags central banks with a monetary-policy stance derived
// from keyword matches over the news flow.
package stance

import (
	"strings"

	"forex-dashboard/internal/types"
)

// Stance is the coarse directional posture inferred from text.
type Stance string

const (
	Hawkish Stance = "Hawkish"
	Dovish  Stance = "Dovish"
	Neutral Stance = "Neutral"
)

// Result is the classification for one bank with at least one relevant
// news item. Banks without relevant items yield no Result at all.
type Result struct {
	Bank         string         `json:"bank"`
	Stance       Stance         `json:"stance"`
	Latest       types.NewsItem `json:"latest"`
	MatchedCount int            `json:"matchedCount"`
}

// Detector maps free text to a stance. The keyword implementation below is
// deliberately simple; callers depend only on this interface so a more
// rigorous classifier can replace it without touching call sites.
type Detector interface {
	Detect(text string) Stance
}

// KeywordDetector assigns a stance by substring containment. The hawkish
// check runs first and wins when both sets would match.
type KeywordDetector struct {
	hawkish []string
	dovish  []string
}

// NewKeywordDetector returns a detector with the default trigger sets.
// The French terms come from the feeds the dashboard was built around.
func NewKeywordDetector() *KeywordDetector {
	return &KeywordDetector{
		hawkish: []string{"hawkish", "restrictif", "hausse des taux"},
		dovish:  []string{"dovish", "accommodant", "baisse des taux"},
	}
}

func (d *KeywordDetector) Detect(text string) Stance {
	lower := strings.ToLower(text)
	for _, kw := range d.hawkish {
		if strings.Contains(lower, kw) {
			return Hawkish
		}
	}
	for _, kw := range d.dovish {
		if strings.Contains(lower, kw) {
			return Dovish
		}
	}
	return Neutral
}

// BankKeywords associates a bank identifier with its lowercase trigger
// keywords.
type BankKeywords struct {
	Bank     string
	Keywords []string
}

// DefaultCatalog returns the monitored banks and their triggers.
func DefaultCatalog() []BankKeywords {
	return []BankKeywords{
		{Bank: "BCE", Keywords: []string{"bce", "lagarde", "banque centrale européenne"}},
		{Bank: "FED", Keywords: []string{"fed", "powell", "federal reserve"}},
		{Bank: "BOE", Keywords: []string{"boe", "bailey", "bank of england"}},
	}
}

// Classifier produces at most one Result per catalog bank from a news
// collection.
type Classifier struct {
	catalog  []BankKeywords
	detector Detector
}

// NewClassifier builds a classifier. A nil detector gets the keyword
// default.
func NewClassifier(catalog []BankKeywords, detector Detector) *Classifier {
	if detector == nil {
		detector = NewKeywordDetector()
	}
	return &Classifier{catalog: catalog, detector: detector}
}

// Classify scans news for each catalog bank. Matching is case-insensitive
// substring containment over title and content, so "federal" and even
// "federation" count as FED matches; that imprecision is part of the
// observable behavior and is kept on purpose.
//
// The first relevant item in input order is reported as the latest one:
// callers must pass news sorted newest-first (the news collector sorts by
// publish time descending by construction).
func (c *Classifier) Classify(news []types.NewsItem) []Result {
	results := []Result{}
	for _, bank := range c.catalog {
		var latest *types.NewsItem
		count := 0
		for i := range news {
			if !c.relevant(bank, news[i]) {
				continue
			}
			if latest == nil {
				latest = &news[i]
			}
			count++
		}
		if latest == nil {
			continue
		}
		results = append(results, Result{
			Bank:         bank.Bank,
			Stance:       c.detector.Detect(latest.Content),
			Latest:       *latest,
			MatchedCount: count,
		})
	}
	return results
}

func (c *Classifier) relevant(bank BankKeywords, item types.NewsItem) bool {
	title := strings.ToLower(item.Title)
	content := strings.ToLower(item.Content)
	for _, kw := range bank.Keywords {
		if strings.Contains(title, kw) || strings.Contains(content, kw) {
			return true
		}
	}
	return false
}
