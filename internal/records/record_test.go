package records

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeAllBlank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]string
	}{
		{name: "no rows", rows: nil},
		{name: "empty rows", rows: [][]string{{}, {}}},
		{name: "whitespace cells", rows: [][]string{{"", "  "}, {"\t"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Normalize(tt.rows); !errors.Is(err, ErrNoHeaderFound) {
				t.Fatalf("expected ErrNoHeaderFound, got %v", err)
			}
			if _, err := NormalizeProfile(tt.rows); !errors.Is(err, ErrNoHeaderFound) {
				t.Fatalf("expected ErrNoHeaderFound for profile, got %v", err)
			}
		})
	}
}

func TestNormalizeDropsBlankRecords(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Company Name", "Role"},
		{"Acme", "Eng"},
		{"", ""},
	}

	got, err := Normalize(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []Record{{"Company Name": "Acme", "Role": "Eng"}}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("unexpected records: %#v", got)
	}
}

func TestNormalizeSkipsLeadingBlankRowsAndTrimsHeaders(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"", "", ""},
		{" ", ""},
		{" ID ", "Company Name ", " Role"},
		{"1", "Acme"},
	}

	got, err := Normalize(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []Record{{"ID": "1", "Company Name": "Acme", "Role": ""}}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("unexpected records: %#v", got)
	}
}

func TestNormalizeCompanyNameSpellings(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Company Name", "company", "Role"},
		{"Acme", "", "Eng"},
		{"", "Globex", "Data"},
		{"", "", "Orphan role"},
		{"  ", "", "Whitespace company"},
	}

	got, err := Normalize(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %#v", len(got), got)
	}
	if got[0]["Company Name"] != "Acme" || got[1]["company"] != "Globex" {
		t.Fatalf("unexpected records: %#v", got)
	}
}

func TestNormalizeCompanyNameHeaderFolding(t *testing.T) {
	t.Parallel()

	headers := []string{"company_name", "COMPANY NAME", "Company", "company name", "  Company   Name "}

	for _, header := range headers {
		header := header
		t.Run(header, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize([][]string{{header, "Role"}, {"Acme", "Eng"}, {" ", "Orphan"}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("expected 1 record, got %d: %#v", len(got), got)
			}

			listing, err := NewListing(got[0])
			if err != nil {
				t.Fatalf("decode listing: %v", err)
			}
			if listing.CompanyName != "Acme" {
				t.Fatalf("unexpected company name: %q", listing.CompanyName)
			}
		})
	}
}

func TestNormalizeEmptyResult(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Company Name", "Role"},
		{"", "Eng"},
	}

	if _, err := Normalize(rows); !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}

	if _, err := Normalize([][]string{{"Company Name"}}); !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult for header only, got %v", err)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Company Name", "Role"},
		{"Acme", "Eng"},
		{"Globex", "Data"},
	}

	first, err := Normalize(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Normalize(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %#v and %#v", first, second)
	}
	if rows[1][0] != "Acme" || len(rows) != 3 {
		t.Fatalf("input rows were modified: %#v", rows)
	}
}

func TestNormalizeDuplicateHeaderLaterColumnWins(t *testing.T) {
	t.Parallel()

	got, err := Normalize([][]string{
		{"Company Name", "Company Name"},
		{"First", "Second"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got[0]["Company Name"] != "Second" {
		t.Fatalf("expected later column to win, got %#v", got[0])
	}
}

func TestNormalizeProfile(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{},
		{"Full Name", "My Skills"},
		{"Ada Lovelace", "Go, SQL"},
		{"Second User", "Rust"},
	}

	got, err := NormalizeProfile(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Record{"Full Name": "Ada Lovelace", "My Skills": "Go, SQL"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("unexpected profile record: %#v", got)
	}
}

func TestNormalizeProfileKeepsBlankRow(t *testing.T) {
	t.Parallel()

	got, err := NormalizeProfile([][]string{
		{"Full Name", "My Skills"},
		{"", ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.IsBlank() || len(got) != 2 {
		t.Fatalf("expected blank record with both fields, got %#v", got)
	}
}

func TestNormalizeProfileNoUserRow(t *testing.T) {
	t.Parallel()

	if _, err := NormalizeProfile([][]string{{""}, {"Full Name"}}); !errors.Is(err, ErrNoUserRow) {
		t.Fatalf("expected ErrNoUserRow, got %v", err)
	}
}

func TestRecordGet(t *testing.T) {
	t.Parallel()

	record := Record{"Company Name": "  ", "company": "Acme"}
	if got := record.Get("Company Name", "company"); got != "Acme" {
		t.Fatalf("expected fallback spelling, got %q", got)
	}
	if got := record.Get("missing"); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}
