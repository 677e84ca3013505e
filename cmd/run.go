package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/intern-swipe/internal/session"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptDiscover = "Discover"
	PromptMatches  = "Matches"
	PromptProfile  = "Profile"
	PromptExport   = "Export matches"
	PromptExit     = "Exit"

	PromptMatch = "Match"
	PromptPass  = "Pass"
	PromptBack  = "back"
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive swipe session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("no-retry", false, "exit instead of offering a retry when the listings cannot be loaded")
	runCmd.Flags().StringP("export-file", "o", "", "file to export matches to (.json or .xlsx). Default is a temporary json file.")

	viper.BindPFlag("export-file", runCmd.Flags().Lookup("export-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	var retry retryFunc = promptRetry
	if flag := cmd.Flag("no-retry"); flag != nil && flag.Value.String() == "true" {
		retry = nil
	}

	state := load(ctx, retry)
	logger := state.logger

	if state.listings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no listings left after filters"))
		return
	}

	s := session.New(state.listings, state.profile)
	logger.Info("session started", zap.Int("listings", s.Len()))

	for {
		items := []string{
			PromptDiscover,
			fmt.Sprintf("%s (%d)", PromptMatches, s.MatchCount()),
			PromptProfile,
			PromptExport,
			PromptExit,
		}
		menu := promptui.Select{
			Label: fmt.Sprintf("Tab: %s", s.Tab()),
			Items: items,
		}

		_, action, err := menu.Run()
		if err != nil {
			logger.Info("exiting", zap.Error(err))
			return
		}

		if err := handleAction(action, s, logger, state.config); err != nil {
			if errors.Is(err, errExit) {
				logger.Info("exiting", zap.Int("matches", s.MatchCount()))
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, s *session.Session, logger *zap.Logger, config *Config) error {
	switch {
	case action == PromptDiscover:
		if err := s.SetTab(session.TabDiscover); err != nil {
			return err
		}
		return discover(s, logger)
	case strings.HasPrefix(action, PromptMatches):
		if err := s.SetTab(session.TabMatches); err != nil {
			return err
		}
		fmt.Println(renderMatches(s.Matches()))
		return nil
	case action == PromptProfile:
		if err := s.SetTab(session.TabProfile); err != nil {
			return err
		}
		fmt.Println(renderProfile(s))
		return nil
	case action == PromptExport:
		return export(s, logger, config.ExportFile)
	case action == PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// discover shows cards until the user goes back or the deck is exhausted.
func discover(s *session.Session, logger *zap.Logger) error {
	for {
		current, ok := s.Current()
		if !ok {
			fmt.Println("No more internships! Check your matches or refresh for more opportunities.")
			return nil
		}

		score := s.Score(current)
		fmt.Println(renderCard(current, score, s.Index(), s.Len()))

		swipe := promptui.Select{
			Label: "Swipe",
			Items: []string{PromptMatch, PromptPass, PromptBack},
		}

		_, choice, err := swipe.Run()
		if err != nil {
			return errExit
		}

		switch choice {
		case PromptBack:
			return nil
		case PromptMatch:
			s.Swipe(session.Right)
			logger.Info("it's a match",
				zap.String("company", current.CompanyName),
				zap.String("role", current.Role),
				zap.String("skill_match", score.String()),
			)
		case PromptPass:
			s.Swipe(session.Left)
			logger.Debug("passed", zap.String("listing", current.Key()))
		}
	}
}

func export(s *session.Session, logger *zap.Logger, path string) error {
	if s.MatchCount() == 0 {
		fmt.Println(renderMatches(nil))
		return nil
	}

	path = strings.TrimSpace(path)
	if path == "" {
		filename, err := s.DumpMatchesToTmpFile()
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		logger.Info("dumping matches to file", zap.String("filename", filename), zap.Int("count", s.MatchCount()))
		return nil
	}

	if err := s.WriteMatches(path); err != nil {
		return fmt.Errorf("export matches: %w", err)
	}
	logger.Info("exported matches", zap.String("filename", path), zap.Int("count", s.MatchCount()))
	return nil
}
