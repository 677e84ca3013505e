package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/spigell/intern-swipe/internal/filtering"
	"github.com/spigell/intern-swipe/internal/loader"
	"github.com/spigell/intern-swipe/internal/logger"
	"github.com/spigell/intern-swipe/internal/records"
	"github.com/spigell/intern-swipe/internal/secrets"
	"github.com/spigell/intern-swipe/internal/sheets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// retryFunc decides whether a failed catalog fetch should be attempted again.
type retryFunc func(err error) bool

type loaded struct {
	config   *Config
	logger   *zap.Logger
	listings *records.Listings
	profile  *records.Profile
}

// setup builds the logger and the config shared by all commands that talk to sources.
func setup() (*Config, *zap.Logger) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the intern-swipe", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return config, logger
}

// load fetches both sources, retrying the catalog while retry allows it, and
// applies the configured filters.
func load(ctx context.Context, retry retryFunc) *loaded {
	config, logger := setup()

	client, err := newSheetsClient(ctx, config, logger)
	if err != nil {
		logger.Fatal("preparing sheets client", zap.Error(err))
	}

	l := loader.New(client, logger)

	result, err := l.Load(config.Sources.Catalog, config.Sources.Profile)
	for err != nil {
		logger.Error("loading listings failed",
			zap.Error(err),
			zap.String("hint", describeLoadError(err)),
		)
		if retry == nil || !retry(err) {
			logger.Fatal("exiting", zap.String("reason", "listings are unavailable"))
		}
		result.Listings, err = l.Catalog(config.Sources.Catalog)
	}

	if result.ProfileErr != nil {
		logger.Warn("profile unavailable",
			zap.Error(result.ProfileErr),
			zap.String("hint", "skill match falls back to the default score"),
		)
	}

	steps := filtering.Default()
	if err := skipFilters(steps, config.Exclude.SkipFilters); err != nil {
		logger.Fatal("configuring filters", zap.Error(err))
	}

	filtered, err := filtering.Run(ctx, filterConfig(config), filtering.Deps{Logger: logger}, steps, result.Listings)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	for _, status := range filtering.Describe(steps) {
		logger.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.Any("details", status.Details),
		)
	}

	return &loaded{
		config:   config,
		logger:   logger,
		listings: filtered,
		profile:  result.Profile,
	}
}

func newSheetsClient(ctx context.Context, config *Config, logger *zap.Logger) (*sheets.Client, error) {
	token, err := secrets.LoadOptional(secrets.Source{
		Name:  "sheet token",
		Value: config.Sources.Token,
		File:  config.Sources.TokenFile,
		Env:   "INTERN_SWIPE_TOKEN",
	})
	if err != nil {
		return nil, err
	}

	client := sheets.New(ctx, logger)
	client.Token = token

	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}
	if config.HTTPTimeout > 0 {
		client.HTTPClient.Timeout = config.HTTPTimeout
	}

	if config.Sources.Delimiter != "" {
		delimiter, size := utf8.DecodeRuneInString(config.Sources.Delimiter)
		if delimiter == utf8.RuneError || size != len(config.Sources.Delimiter) {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", config.Sources.Delimiter)
		}
		client.Options.Delimiter = delimiter
	}
	client.Options.LazyQuotes = config.Sources.LazyQuotes
	client.Options.Sheet = config.Sources.Sheet

	return client, nil
}

// skipFilters disables the named filters. Unknown names are rejected.
func skipFilters(steps []filtering.Filter, names []string) error {
	known := make(map[string]bool, len(steps))
	for _, step := range steps {
		known[step.Name()] = true
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !known[name] {
			return fmt.Errorf("unknown filter %q", name)
		}
		filtering.DisableByName(steps, name, "skipped by configuration")
	}
	return nil
}

func filterConfig(config *Config) *filtering.Config {
	return &filtering.Config{
		Companies:    config.Exclude.Companies,
		MaxGhostRate: config.Exclude.MaxGhostRate,
		ExcludeFile:  config.Exclude.File,
	}
}

func describeLoadError(err error) string {
	var transportErr *sheets.TransportError
	var parseErr *sheets.ParseError

	switch {
	case errors.As(err, &transportErr):
		return "check the network connection and that the sheet is published"
	case errors.As(err, &parseErr):
		return "the source is not valid delimited text or xlsx"
	case errors.Is(err, records.ErrNoHeaderFound):
		return "the sheet is empty"
	case errors.Is(err, records.ErrEmptyResult):
		return "no row has a company name"
	default:
		return "unexpected error"
	}
}

// promptRetry asks the user whether to fetch the catalog again.
func promptRetry(error) bool {
	retry := promptui.Prompt{
		Label:     "Retry fetching listings",
		IsConfirm: true,
	}
	_, err := retry.Run()
	return err == nil
}
