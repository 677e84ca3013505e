package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spigell/intern-swipe/internal/filtering"
	"github.com/spigell/intern-swipe/internal/records"
	"github.com/spigell/intern-swipe/internal/session"
	"github.com/spigell/intern-swipe/internal/sheets"
)

func TestRenderCard(t *testing.T) {
	listing := &records.Listing{
		CompanyName:    "Acme",
		Location:       "Remote",
		RequiredSkills: "Go",
		AcceptanceRate: "0.12",
		GhostRate:      "55%",
	}

	card := renderCard(listing, records.Score{Value: 50, Known: true}, 0, 3)

	for _, want := range []string{
		"1/3  Acme  [50% match]",
		defaultRole,
		"Location: Remote",
		"Acceptance rate:    12%",
		"Ghost rate:         55%",
		"Avg. response days: ...",
		"High ghosting rate",
		"Required skills: Go",
	} {
		if !strings.Contains(card, want) {
			t.Fatalf("expected card to contain %q, got:\n%s", want, card)
		}
	}

	if strings.Contains(card, "default match") {
		t.Fatalf("did not expect default match note for known score")
	}

	unknown := renderCard(&records.Listing{}, records.Score{Value: records.DefaultScore}, 1, 3)
	if !strings.Contains(unknown, defaultCompany) || !strings.Contains(unknown, "[75% match]") || !strings.Contains(unknown, "default match") {
		t.Fatalf("unexpected card for empty listing:\n%s", unknown)
	}
}

func TestRenderMatches(t *testing.T) {
	if got := renderMatches(nil); got != "No matches yet. Start swiping!" {
		t.Fatalf("unexpected empty matches: %q", got)
	}

	got := renderMatches([]*records.Listing{{CompanyName: "Acme", Role: "Eng", GhostRate: "N/A", AcceptanceRate: "30%"}})
	if !strings.Contains(got, "Your matches (1)") || !strings.Contains(got, "Acme / Eng") ||
		!strings.Contains(got, "ghost: ...") || !strings.Contains(got, "acceptance: 30%") {
		t.Fatalf("unexpected matches rendering:\n%s", got)
	}
}

func TestRenderProfile(t *testing.T) {
	listings := &records.Listings{Items: []*records.Listing{{CompanyName: "Acme"}}}

	withoutProfile := session.New(listings, nil)
	if !strings.Contains(renderProfile(withoutProfile), "Profile unavailable") {
		t.Fatalf("unexpected rendering without profile")
	}

	s := session.New(listings, &records.Profile{FullName: "Ada", Skills: "Go, SQL"})
	s.Swipe(session.Right)

	got := renderProfile(s)
	for _, want := range []string{"Ada", "Field of Study", "Skills: Go, SQL", "Matches: 1  Swiped: 1/1"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected profile to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRankListings(t *testing.T) {
	listings := &records.Listings{Items: []*records.Listing{
		{ID: "1", RequiredSkills: "java"},
		{ID: "2", RequiredSkills: "go, sql"},
		{ID: "3", RequiredSkills: "golang"},
	}}
	profile := &records.Profile{Skills: "go, sql"}

	ranked := rankListings(listings, profile)

	var ids []string
	for _, l := range ranked {
		ids = append(ids, l.ID)
	}
	if strings.Join(ids, ",") != "2,3,1" {
		t.Fatalf("unexpected ranking: %v", ids)
	}
	if listings.Items[0].ID != "1" {
		t.Fatalf("ranking must not reorder the catalog")
	}

	if got := topListings(ranked, 2); len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got := topListings(ranked, 0); len(got) != 3 {
		t.Fatalf("expected all listings, got %d", len(got))
	}
}

func TestDescribeLoadError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: &sheets.TransportError{Source: "x", Err: errors.New("boom")}, want: "network"},
		{err: &sheets.ParseError{Source: "x", Err: errors.New("boom")}, want: "not valid"},
		{err: records.ErrNoHeaderFound, want: "empty"},
		{err: records.ErrEmptyResult, want: "company name"},
		{err: errors.New("other"), want: "unexpected"},
	}

	for _, tt := range tests {
		if got := describeLoadError(tt.err); !strings.Contains(got, tt.want) {
			t.Fatalf("describeLoadError(%v) = %q, want substring %q", tt.err, got, tt.want)
		}
	}
}

func TestNewSheetsClientRejectsLongDelimiter(t *testing.T) {
	config := &Config{Sources: &SourcesConfig{Delimiter: ";;"}, Exclude: &ExcludeConfig{}}

	if _, err := newSheetsClient(context.Background(), config, nil); err == nil {
		t.Fatal("expected delimiter error")
	}

	config.Sources.Delimiter = ";"
	client, err := newSheetsClient(context.Background(), config, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Options.Delimiter != ';' {
		t.Fatalf("unexpected delimiter: %q", client.Options.Delimiter)
	}
}

func TestNewSheetsClientInlineToken(t *testing.T) {
	t.Setenv("INTERN_SWIPE_TOKEN", "")

	config := &Config{Sources: &SourcesConfig{Token: " inline-token "}, Exclude: &ExcludeConfig{}}

	client, err := newSheetsClient(context.Background(), config, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Token != "inline-token" {
		t.Fatalf("unexpected token: %q", client.Token)
	}
}

func TestSkipFilters(t *testing.T) {
	steps := filtering.Default()

	if err := skipFilters(steps, []string{"max_ghost_rate", " "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, status := range filtering.Describe(steps) {
		if status.Enabled == (status.Name == "max_ghost_rate") {
			t.Fatalf("unexpected status: %+v", status)
		}
	}

	if err := skipFilters(filtering.Default(), []string{"salary"}); err == nil {
		t.Fatal("expected unknown filter error")
	}
}
