package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/intern-swipe/internal/records"
)

type companiesFilter struct {
	disabled  bool
	reason    string
	companies map[string]struct{}
	names     []string
}

// NewExcludedCompanies creates a filter that removes listings of companies configured in the config.
func NewExcludedCompanies() Filter {
	return &companiesFilter{}
}

func (f *companiesFilter) Name() string { return "excluded_companies" }

func (f *companiesFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *companiesFilter) IsEnabled() bool { return !f.disabled }

func (f *companiesFilter) Validate(cfg *Config) error {
	f.companies = make(map[string]struct{})
	f.names = nil
	if cfg == nil {
		return nil
	}

	for _, company := range cfg.Companies {
		company = strings.TrimSpace(company)
		if company == "" {
			continue
		}
		f.companies[strings.ToLower(company)] = struct{}{}
		f.names = append(f.names, company)
	}
	return nil
}

func (f *companiesFilter) Apply(_ context.Context, deps Deps, v *records.Listings) (*records.Listings, Step, error) {
	initial := v.Len()
	if len(f.companies) == 0 {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	excluded := v.Exclude(func(l *records.Listing) bool {
		_, found := f.companies[strings.ToLower(strings.TrimSpace(l.CompanyName))]
		return found
	})
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding listings by companies",
			zap.Strings("excluded_companies", f.names),
			zap.Strings("excluded_listings", excluded),
			zap.Int("listings_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *companiesFilter) Status() Status {
	details := map[string]string{}
	if len(f.names) > 0 {
		details["companies"] = strings.Join(f.names, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
