package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "intern-swipe"

	defaultCatalogURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSUMH_Lt6BLN8Dm1J5-oT1RDrXAtpM8OfJ-qNS50qovHrm9VGINraW1ZYvG9hadc41eEovCPXar1v7U/pub?gid=0&single=true&output=csv"
	defaultProfileURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vSUMH_Lt6BLN8Dm1J5-oT1RDrXAtpM8OfJ-qNS50qovHrm9VGINraW1ZYvG9hadc41eEovCPXar1v7U/pub?gid=1307811639&single=true&output=csv"
)

type Config struct {
	Sources     *SourcesConfig `mapstructure:"sources"`
	UserAgent   string         `mapstructure:"user-agent"`
	HTTPTimeout time.Duration  `mapstructure:"http-timeout"`
	Exclude     *ExcludeConfig `mapstructure:"exclude"`
	ExportFile  string         `mapstructure:"export-file"`
}

type SourcesConfig struct {
	Catalog    string `mapstructure:"catalog"`
	Profile    string `mapstructure:"profile"`
	Token      string `mapstructure:"token" json:"-"`
	TokenFile  string `mapstructure:"token-file"`
	Delimiter  string `mapstructure:"delimiter"`
	Sheet      string `mapstructure:"sheet"`
	LazyQuotes bool   `mapstructure:"lazy-quotes"`
}

type ExcludeConfig struct {
	Companies    []string `mapstructure:"companies"`
	MaxGhostRate int      `mapstructure:"max-ghost-rate"`
	File         string   `mapstructure:"file"`
	SkipFilters  []string `mapstructure:"skip-filters"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "intern-swipe is a simple cli for swiping through internship listings published as spreadsheets",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults()

	for key, env := range map[string]string{
		"sources.catalog":    "INTERN_SWIPE_CATALOG_URL",
		"sources.profile":    "INTERN_SWIPE_PROFILE_URL",
		"sources.token-file": "INTERN_SWIPE_TOKEN_FILE",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is intern-swipe.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("catalog", "", "catalog source: http(s) url, file url or path to a csv/xlsx file")
	rootCmd.PersistentFlags().String("profile", "", "user profile source: http(s) url, file url or path to a csv/xlsx file")
	rootCmd.PersistentFlags().StringSlice("skip-filter", nil, "disable a listing filter by name (excluded_companies, max_ghost_rate, exclude_file). Can be repeated.")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("sources.catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("sources.profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("exclude.skip-filters", rootCmd.PersistentFlags().Lookup("skip-filter"))
}

func setDefaults() {
	viper.SetDefault("sources.catalog", defaultCatalogURL)
	viper.SetDefault("sources.profile", defaultProfileURL)
	viper.SetDefault("sources.delimiter", ",")
	viper.SetDefault("http-timeout", 10*time.Second)
	viper.SetDefault("exclude.max-ghost-rate", 0)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was requested explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Sources == nil {
		config.Sources = &SourcesConfig{}
	}
	if config.Exclude == nil {
		config.Exclude = &ExcludeConfig{}
	}

	return config, nil
}
