package loader

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/intern-swipe/internal/logger"
	"github.com/spigell/intern-swipe/internal/records"
	"github.com/spigell/intern-swipe/internal/sheets"
)

const (
	KindCatalog = "catalog"
	KindProfile = "profile"
)

// Fetcher retrieves a tabular source as raw rows.
type Fetcher interface {
	Fetch(source string) ([]sheets.Row, error)
}

type Loader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// Result holds the outcome of loading both sources. ProfileErr is kept apart
// because a missing profile does not prevent a session.
type Result struct {
	Listings   *records.Listings
	Profile    *records.Profile
	ProfileErr error
}

func New(fetcher Fetcher, log *zap.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		logger:  logger.WithFields(log),
	}
}

// Catalog fetches and normalizes the listing catalog.
func (l *Loader) Catalog(source string) (*records.Listings, error) {
	log := logger.WithSource(l.logger, KindCatalog, source)
	log.Info("fetching listings")

	rows, err := l.fetcher.Fetch(source)
	if err != nil {
		return nil, err
	}

	log.Debug("raw data fetched", zap.Int("rows", len(rows)))

	normalized, err := records.Normalize(sheets.Cells(rows))
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", KindCatalog, err)
	}

	listings, err := records.NewListings(normalized)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", KindCatalog, err)
	}

	log.Info("valid listings after filtering", zap.Int("count", listings.Len()))

	return listings, nil
}

// Profile fetches the profile source and decodes its first data row.
func (l *Loader) Profile(source string) (*records.Profile, error) {
	log := logger.WithSource(l.logger, KindProfile, source)
	log.Info("fetching user profile")

	rows, err := l.fetcher.Fetch(source)
	if err != nil {
		return nil, err
	}

	record, err := records.NormalizeProfile(sheets.Cells(rows))
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", KindProfile, err)
	}

	profile, err := records.NewProfile(record)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", KindProfile, err)
	}

	log.Info("user profile loaded",
		zap.String("full_name", profile.FullName),
		zap.Int("skills", len(profile.SkillList())),
	)

	return profile, nil
}

// Load fetches the catalog and the profile concurrently. A catalog failure is
// returned as the error together with the profile part of the result, so the
// caller can retry the catalog alone. A profile failure is reported in
// Result.ProfileErr. An empty profile source skips the profile entirely.
func (l *Loader) Load(catalogSource, profileSource string) (*Result, error) {
	result := &Result{}

	var g errgroup.Group
	g.Go(func() error {
		listings, err := l.Catalog(catalogSource)
		if err != nil {
			return err
		}
		result.Listings = listings
		return nil
	})

	if profileSource != "" {
		g.Go(func() error {
			result.Profile, result.ProfileErr = l.Profile(profileSource)
			return nil
		})
	}

	return result, g.Wait()
}
