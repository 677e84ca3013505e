package records

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// HighGhostRateThreshold is the ghost percentage above which a listing is flagged.
const HighGhostRateThreshold = 40

type Listings struct {
	Items []*Listing
}

// Listing is the canonical view of one catalog record.
type Listing struct {
	ID              string            `json:"id,omitempty" mapstructure:"id"`
	CompanyName     string            `json:"company_name" mapstructure:"company_name"`
	Role            string            `json:"role,omitempty" mapstructure:"role"`
	Location        string            `json:"location,omitempty" mapstructure:"location"`
	Description     string            `json:"description,omitempty" mapstructure:"description"`
	RequiredSkills  string            `json:"required_skills,omitempty" mapstructure:"required_skills"`
	AcceptanceRate  string            `json:"acceptance_rate,omitempty" mapstructure:"acceptance_rate"`
	GhostRate       string            `json:"ghost_rate,omitempty" mapstructure:"ghost_rate"`
	AvgResponseDays string            `json:"avg_response_days,omitempty" mapstructure:"avg_response_days"`
	Extra           map[string]string `json:"extra,omitempty" mapstructure:",remain"`
}

// NewListings decodes normalized catalog records into listings, preserving order.
func NewListings(records []Record) (*Listings, error) {
	items := make([]*Listing, 0, len(records))
	for idx, record := range records {
		listing, err := NewListing(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", idx, err)
		}
		items = append(items, listing)
	}

	return &Listings{Items: items}, nil
}

// NewListing decodes a single record through its canonical field names.
func NewListing(record Record) (*Listing, error) {
	var listing Listing
	if err := decode(record.Canonical(), &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func decode(input map[string]string, target any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   target,
		TagName:  "mapstructure",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}

// Key identifies a listing across sessions: its ID when present, otherwise
// company and role.
func (l *Listing) Key() string {
	if id := strings.TrimSpace(l.ID); id != "" {
		return "id:" + id
	}
	return strings.ToLower(strings.TrimSpace(l.CompanyName) + "|" + strings.TrimSpace(l.Role))
}

func (l *Listing) AcceptancePercent() (int, bool) {
	return ParsePercentage(l.AcceptanceRate)
}

func (l *Listing) GhostPercent() (int, bool) {
	return ParsePercentage(l.GhostRate)
}

// HighGhostRate reports whether the known ghost rate exceeds HighGhostRateThreshold.
func (l *Listing) HighGhostRate() bool {
	ghost, ok := l.GhostPercent()
	return ok && ghost > HighGhostRateThreshold
}

// Score computes the skill match against the profile. A nil profile has no skills.
func (l *Listing) Score(profile *Profile) Score {
	skills := ""
	if profile != nil {
		skills = profile.Skills
	}
	return ScoreMatch(skills, l.RequiredSkills)
}

func (v *Listings) Len() int {
	return len(v.Items)
}

// Keys returns the keys of all listings in order.
func (v *Listings) Keys() []string {
	keys := make([]string, 0, len(v.Items))
	for _, listing := range v.Items {
		keys = append(keys, listing.Key())
	}
	return keys
}

func (v *Listings) FindByKey(key string) *Listing {
	for _, listing := range v.Items {
		if listing.Key() == key {
			return listing
		}
	}
	return nil
}

// Exclude removes listings for which drop returns true. Order is preserved.
// It returns the keys of removed listings.
func (v *Listings) Exclude(drop func(*Listing) bool) []string {
	var excluded []string
	kept := make([]*Listing, 0, len(v.Items))
	for _, listing := range v.Items {
		if drop(listing) {
			excluded = append(excluded, listing.Key())
			continue
		}
		kept = append(kept, listing)
	}
	v.Items = kept
	return excluded
}

// ReportByCompany groups listings by company with their derived values.
func (v *Listings) ReportByCompany(profile *Profile) map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, listing := range v.Items {
		entry := map[string]string{
			"role":        listing.Role,
			"location":    listing.Location,
			"skill_match": listing.Score(profile).String(),
		}
		if acceptance, ok := listing.AcceptancePercent(); ok {
			entry["acceptance_rate"] = fmt.Sprintf("%d%%", acceptance)
		}
		if ghost, ok := listing.GhostPercent(); ok {
			entry["ghost_rate"] = fmt.Sprintf("%d%%", ghost)
		}
		if listing.HighGhostRate() {
			entry["warning"] = "high ghosting rate"
		}
		if days := strings.TrimSpace(listing.AvgResponseDays); days != "" {
			entry["avg_response_days"] = days
		}

		report[listing.CompanyName] = append(report[listing.CompanyName], entry)
	}
	return report
}
