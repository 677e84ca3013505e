package filtering

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/intern-swipe/internal/records"
)

type excludeFileFilter struct {
	disabled bool
	reason   string
	path     string
}

// NewExcludeFile creates a filter that removes listings contained in a file of
// previously exported matches, either JSON or xlsx.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, v *records.Listings) (*records.Listings, Step, error) {
	initial := v.Len()
	if f.path == "" {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	previous, err := records.ReadListingsFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if deps.Logger != nil {
			deps.Logger.Info("exclude file does not exist yet", zap.String("path", f.path))
		}
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}
	if err != nil {
		return v, Step{}, fmt.Errorf("getting excluded listings from file: %w", err)
	}

	if deps.Logger != nil {
		deps.Logger.Debug("loaded exclude file", zap.String("path", f.path), zap.Strings("keys", previous.Keys()))
	}

	removed := v.Exclude(func(l *records.Listing) bool {
		return previous.FindByKey(l.Key()) != nil
	})
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding listings based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_listings", removed),
			zap.Int("listings_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(removed), Left: v.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
