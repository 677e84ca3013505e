package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/intern-swipe/internal/records"
)

type ghostRateFilter struct {
	disabled bool
	reason   string
	max      int
}

// NewMaxGhostRate creates a filter that removes listings whose known ghost rate
// is above the configured maximum. Listings with an unknown ghost rate are kept.
func NewMaxGhostRate() Filter {
	return &ghostRateFilter{}
}

func (f *ghostRateFilter) Name() string { return "max_ghost_rate" }

func (f *ghostRateFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *ghostRateFilter) IsEnabled() bool { return !f.disabled }

func (f *ghostRateFilter) Validate(cfg *Config) error {
	f.max = 0
	if cfg == nil {
		return nil
	}
	if cfg.MaxGhostRate < 0 {
		return fmt.Errorf("max ghost rate must not be negative, got %d", cfg.MaxGhostRate)
	}
	f.max = cfg.MaxGhostRate
	return nil
}

func (f *ghostRateFilter) Apply(_ context.Context, deps Deps, v *records.Listings) (*records.Listings, Step, error) {
	initial := v.Len()
	if f.max == 0 {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	excluded := v.Exclude(func(l *records.Listing) bool {
		ghost, ok := l.GhostPercent()
		return ok && ghost > f.max
	})
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding listings by ghost rate",
			zap.Int("max_ghost_rate", f.max),
			zap.Strings("excluded_listings", excluded),
			zap.Int("listings_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *ghostRateFilter) Status() Status {
	details := map[string]string{}
	if f.max > 0 {
		details["max_ghost_rate"] = strconv.Itoa(f.max)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
