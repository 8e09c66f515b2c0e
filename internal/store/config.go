package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	SettingsPath string            `yaml:"settings_path"`
	Feeds        FeedsConfig       `yaml:"feeds"`
	Calendar     CalendarConfig    `yaml:"calendar"`
	Translation  TranslationConfig `yaml:"translation"`
	LLM          LLMConfig         `yaml:"llm"`
	// ReferenceUTCOffset is the fixed offset (hours) of the timezone all
	// session open/close hours are expressed in. A pointer so that an
	// explicit 0 (plain UTC) is distinguishable from an absent key.
	ReferenceUTCOffset *int            `yaml:"reference_utc_offset"`
	Sessions           []SessionConfig `yaml:"sessions"`
}

// FeedsConfig describes the headline and technical-analysis feed sources.
type FeedsConfig struct {
	NewsURL      string `yaml:"news_url"`
	TechnicalURL string `yaml:"technical_url"`
	RelayURL     string `yaml:"relay_url"` // CORS relay prefix, feed URL is appended encoded
	MaxItems     int    `yaml:"max_items"`
	ContentLimit int    `yaml:"content_limit"` // character budget for descriptions
}

// CalendarConfig points at the economic calendar to scrape.
type CalendarConfig struct {
	SourceURL string `yaml:"source_url"`
}

// TranslationConfig describes the translation provider.
type TranslationConfig struct {
	Endpoint   string `yaml:"endpoint"`
	TargetLang string `yaml:"target_lang"`
}

// LLMConfig holds the completion models and pricing used for analysis panels.
type LLMConfig struct {
	Model           string  `yaml:"model"`
	SignalsModel    string  `yaml:"signals_model"`
	Temperature     float32 `yaml:"temperature"`
	MaxTokens       int     `yaml:"max_tokens"`
	CostPer1KTokens float64 `yaml:"cost_per_1k_tokens"`
}

// SessionConfig defines one trading session of the catalog. Open and Close
// are integer hours in the reference timezone.
type SessionConfig struct {
	Name  string   `yaml:"name"`
	Open  int      `yaml:"open"`
	Close int      `yaml:"close"`
	Pairs []string `yaml:"pairs"`
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}
	for _, s := range c.Sessions {
		if s.Name == "" {
			return fmt.Errorf("session with empty name")
		}
		if s.Open < 0 || s.Open >= 24 {
			return fmt.Errorf("session '%s': open hour %d outside [0,24)", s.Name, s.Open)
		}
		if s.Close < 0 || s.Close >= 24 {
			return fmt.Errorf("session '%s': close hour %d outside [0,24)", s.Name, s.Close)
		}
		if len(s.Pairs) == 0 {
			return fmt.Errorf("session '%s': pairs cannot be empty", s.Name)
		}
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0-2, got %.2f", c.LLM.Temperature)
	}
	if c.ReferenceUTCOffset != nil && (*c.ReferenceUTCOffset < -12 || *c.ReferenceUTCOffset > 14) {
		return fmt.Errorf("reference_utc_offset %d outside [-12,14]", *c.ReferenceUTCOffset)
	}
	return nil
}

// DefaultSessions is the session catalog used when the config file does not
// override it. Hours are in the reference timezone (UTC+1).
func DefaultSessions() []SessionConfig {
	return []SessionConfig{
		{Name: "Sydney", Open: 22, Close: 7, Pairs: []string{"AUD/USD", "NZD/USD"}},
		{Name: "Tokyo", Open: 0, Close: 9, Pairs: []string{"USD/JPY", "EUR/JPY", "GBP/JPY"}},
		{Name: "London", Open: 8, Close: 17, Pairs: []string{"GBP/USD", "EUR/GBP", "EUR/USD"}},
		{Name: "New York", Open: 13, Close: 22, Pairs: []string{"EUR/USD", "USD/CAD", "USD/CHF"}},
	}
}

// LoadConfig reads the YAML app config, fills defaults for missing fields,
// and validates. A missing file yields the full default configuration.
func LoadConfig(path string) (*Config, error) {
	var c Config
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.SettingsPath == "" {
		c.SettingsPath = "data/settings.json"
	}
	if c.Feeds.NewsURL == "" {
		c.Feeds.NewsURL = "https://www.forexlive.com/feed/news"
	}
	if c.Feeds.TechnicalURL == "" {
		c.Feeds.TechnicalURL = "https://www.forexlive.com/feed/technicalanalysis"
	}
	if c.Feeds.RelayURL == "" {
		c.Feeds.RelayURL = "https://corsproxy.io/?"
	}
	if c.Feeds.MaxItems == 0 {
		c.Feeds.MaxItems = 20
	}
	if c.Feeds.ContentLimit == 0 {
		c.Feeds.ContentLimit = 200
	}
	if c.Calendar.SourceURL == "" {
		c.Calendar.SourceURL = "https://www.forexfactory.com/calendar.php"
	}
	if c.Translation.Endpoint == "" {
		c.Translation.Endpoint = "https://api.mymemory.translated.net/get"
	}
	if c.Translation.TargetLang == "" {
		c.Translation.TargetLang = "fr"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4"
	}
	if c.LLM.SignalsModel == "" {
		c.LLM.SignalsModel = "gpt-3.5-turbo"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1000
	}
	if c.LLM.CostPer1KTokens == 0 {
		c.LLM.CostPer1KTokens = 0.03
	}
	if c.ReferenceUTCOffset == nil {
		offset := 1
		c.ReferenceUTCOffset = &offset
	}
	if len(c.Sessions) == 0 {
		c.Sessions = DefaultSessions()
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
