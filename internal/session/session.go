// Package session holds the state of one interactive swipe session: the deck
// position, the accepted listings and the active tab. A Session is owned by a
// single caller and is not safe for concurrent use.
package session

import (
	"fmt"

	"github.com/spigell/intern-swipe/internal/records"
)

type Direction int

const (
	// Left passes on the current listing.
	Left Direction = iota
	// Right accepts the current listing as a match.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

type Tab string

const (
	TabDiscover Tab = "discover"
	TabMatches  Tab = "matches"
	TabProfile  Tab = "profile"
)

// Tabs lists the navigation tabs in display order.
var Tabs = []Tab{TabDiscover, TabMatches, TabProfile}

type Session struct {
	listings []*records.Listing
	profile  *records.Profile
	index    int
	matches  []*records.Listing
	tab      Tab
}

// New starts a session over the listings. The profile may be nil when it could not be loaded.
func New(listings *records.Listings, profile *records.Profile) *Session {
	var items []*records.Listing
	if listings != nil {
		items = append(items, listings.Items...)
	}

	return &Session{
		listings: items,
		profile:  profile,
		tab:      TabDiscover,
	}
}

// Current returns the listing on top of the deck.
func (s *Session) Current() (*records.Listing, bool) {
	if s.Done() {
		return nil, false
	}
	return s.listings[s.index], true
}

// Swipe records a decision on the current listing and moves to the next one.
// It reports false when the deck is already exhausted.
func (s *Session) Swipe(dir Direction) bool {
	current, ok := s.Current()
	if !ok {
		return false
	}

	if dir == Right {
		s.matches = append(s.matches, current)
	}
	s.index++
	return true
}

// Matches returns a copy of the accepted listings in the order they were accepted.
func (s *Session) Matches() []*records.Listing {
	matches := make([]*records.Listing, len(s.matches))
	copy(matches, s.matches)
	return matches
}

func (s *Session) MatchCount() int { return len(s.matches) }

func (s *Session) Done() bool { return s.index >= len(s.listings) }

func (s *Session) Index() int { return s.index }

func (s *Session) Len() int { return len(s.listings) }

func (s *Session) Remaining() int {
	if s.Done() {
		return 0
	}
	return len(s.listings) - s.index
}

func (s *Session) Profile() *records.Profile { return s.profile }

func (s *Session) Tab() Tab { return s.tab }

// SetTab switches the active tab.
func (s *Session) SetTab(tab Tab) error {
	for _, known := range Tabs {
		if known == tab {
			s.tab = tab
			return nil
		}
	}
	return fmt.Errorf("unknown tab %q", tab)
}

// Score returns the skill match of the listing against the session profile.
func (s *Session) Score(listing *records.Listing) records.Score {
	return listing.Score(s.profile)
}
