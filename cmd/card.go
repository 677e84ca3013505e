package cmd

import (
	"fmt"
	"strings"

	"github.com/spigell/intern-swipe/internal/records"
	"github.com/spigell/intern-swipe/internal/session"
)

const (
	defaultCompany = "Company"
	defaultRole    = "Internship Role"
	unknownValue   = "..."
	cardRule       = "────────────────────────────────────────"
)

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func percentLabel(value int, ok bool) string {
	if !ok {
		return unknownValue
	}
	return fmt.Sprintf("%d%%", value)
}

// renderCard formats the listing on top of the deck.
func renderCard(l *records.Listing, score records.Score, position, total int) string {
	var b strings.Builder

	fmt.Fprintln(&b, cardRule)
	fmt.Fprintf(&b, "%d/%d  %s  [%s match]\n", position+1, total, orDefault(l.CompanyName, defaultCompany), score)
	fmt.Fprintf(&b, "     %s\n", orDefault(l.Role, defaultRole))
	if l.Location != "" {
		fmt.Fprintf(&b, "     Location: %s\n", l.Location)
	}
	if l.Description != "" {
		fmt.Fprintf(&b, "\n     %s\n", l.Description)
	}

	fmt.Fprintln(&b, "\n     Reality stats")
	fmt.Fprintf(&b, "       Acceptance rate:    %s\n", percentLabel(l.AcceptancePercent()))
	fmt.Fprintf(&b, "       Ghost rate:         %s\n", percentLabel(l.GhostPercent()))
	fmt.Fprintf(&b, "       Avg. response days: %s\n", orDefault(l.AvgResponseDays, unknownValue))
	if l.HighGhostRate() {
		fmt.Fprintln(&b, "       ! High ghosting rate - responses may be slow")
	}

	if l.RequiredSkills != "" {
		fmt.Fprintf(&b, "\n     Required skills: %s\n", l.RequiredSkills)
	}
	if !score.Known {
		fmt.Fprintln(&b, "     (no profile skills known, showing default match)")
	}
	fmt.Fprint(&b, cardRule)

	return b.String()
}

// renderMatches formats the accepted listings.
func renderMatches(matches []*records.Listing) string {
	if len(matches) == 0 {
		return "No matches yet. Start swiping!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your matches (%d)\n", len(matches))
	for idx, m := range matches {
		fmt.Fprintf(&b, "%3d. %s / %s", idx+1, orDefault(m.CompanyName, defaultCompany), orDefault(m.Role, defaultRole))
		if m.Location != "" {
			fmt.Fprintf(&b, " / %s", m.Location)
		}
		fmt.Fprintf(&b, "  ghost: %s  acceptance: %s\n",
			percentLabel(m.GhostPercent()),
			percentLabel(m.AcceptancePercent()),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderProfile formats the profile tab.
func renderProfile(s *session.Session) string {
	p := s.Profile()
	if p == nil {
		return "Profile unavailable. Skill match uses the default score."
	}

	var b strings.Builder
	fmt.Fprintln(&b, orDefault(p.FullName, "User"))
	fmt.Fprintln(&b, orDefault(p.Major, "Field of Study"))
	fmt.Fprintf(&b, "\n%s\n", orDefault(p.Bio, "Your bio goes here"))

	skills := p.SkillList()
	if len(skills) > 0 {
		fmt.Fprintf(&b, "\nSkills: %s\n", strings.Join(skills, ", "))
	} else {
		fmt.Fprintln(&b, "\nNo skills listed")
	}
	fmt.Fprintf(&b, "\nMatches: %d  Swiped: %d/%d", s.MatchCount(), s.Index(), s.Len())

	return b.String()
}
