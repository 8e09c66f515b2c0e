// Package sessions computes which trading sessions are open at a given
// instant and the set of currency pairs active across them.
package sessions

import (
	"fmt"
	"time"

	"forex-dashboard/internal/store"
)

// Session is one entry of the session catalog. Open and Close are integer
// hours of day in the clock's reference timezone.
type Session struct {
	Name  string   `json:"name"`
	Open  int      `json:"open"`
	Close int      `json:"close"`
	Pairs []string `json:"pairs"`
}

// State is the evaluated status of a session at some instant.
type State struct {
	Session Session `json:"session"`
	Active  bool    `json:"active"`
}

// Clock evaluates a fixed session catalog against a reference timezone.
// All open/close hours are interpreted in that single timezone, never in
// the viewer's local one.
type Clock struct {
	catalog []Session
	loc     *time.Location
}

// NewClock builds a clock from the configured catalog and fixed UTC offset.
// Malformed session bounds are rejected here, not at evaluation time.
func NewClock(catalog []store.SessionConfig, utcOffsetHours int) (*Clock, error) {
	sessions := make([]Session, 0, len(catalog))
	for _, sc := range catalog {
		if sc.Open < 0 || sc.Open >= 24 {
			return nil, fmt.Errorf("session '%s': open hour %d outside [0,24)", sc.Name, sc.Open)
		}
		if sc.Close < 0 || sc.Close >= 24 {
			return nil, fmt.Errorf("session '%s': close hour %d outside [0,24)", sc.Name, sc.Close)
		}
		sessions = append(sessions, Session{
			Name:  sc.Name,
			Open:  sc.Open,
			Close: sc.Close,
			Pairs: sc.Pairs,
		})
	}
	name := fmt.Sprintf("UTC%+d", utcOffsetHours)
	return &Clock{
		catalog: sessions,
		loc:     time.FixedZone(name, utcOffsetHours*3600),
	}, nil
}

// Evaluate reports the state of every catalog session at instant t,
// preserving catalog order. Pure function of t and the catalog.
func (c *Clock) Evaluate(t time.Time) []State {
	hour := t.In(c.loc).Hour()

	states := make([]State, 0, len(c.catalog))
	for _, s := range c.catalog {
		states = append(states, State{Session: s, Active: isOpen(s, hour)})
	}
	return states
}

// ActivePairs returns the deduplicated union of pairs across all active
// sessions, in first-seen catalog order. Empty when nothing is open.
func (c *Clock) ActivePairs(t time.Time) []string {
	seen := make(map[string]bool)
	pairs := []string{}
	for _, st := range c.Evaluate(t) {
		if !st.Active {
			continue
		}
		for _, p := range st.Session.Pairs {
			if !seen[p] {
				seen[p] = true
				pairs = append(pairs, p)
			}
		}
	}
	return pairs
}

// isOpen applies the window rule for a given hour of day.
// A session with open == close is a zero-width window and never open.
func isOpen(s Session, hour int) bool {
	switch {
	case s.Open == s.Close:
		return false
	case s.Open < s.Close:
		return hour >= s.Open && hour < s.Close
	default: // wraps past midnight
		return hour >= s.Open || hour < s.Close
	}
}
