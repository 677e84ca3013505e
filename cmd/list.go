package cmd

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/spigell/intern-swipe/internal/records"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print listings ranked by skill match without starting a session",
	Run: func(cmd *cobra.Command, _ []string) {
		list(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntP("top", "n", 0, "show only the best N listings. Default is all.")
	listCmd.Flags().Bool("report", false, "print a report grouped by company instead of a ranked list")
}

func list(cmd *cobra.Command) {
	state := load(context.Background(), nil)
	logger := state.logger

	if state.listings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no listings left after filters"))
		return
	}

	if report, _ := cmd.Flags().GetBool("report"); report {
		pretty, _ := json.MarshalIndent(state.listings.ReportByCompany(state.profile), "", "  ")
		logger.Info(string(pretty), zap.Int("listings count", state.listings.Len()))
		return
	}

	top, _ := cmd.Flags().GetInt("top")
	for idx, listing := range topListings(rankListings(state.listings, state.profile), top) {
		score := listing.Score(state.profile)
		logger.Info("listing",
			zap.Int("rank", idx+1),
			zap.String("company", listing.CompanyName),
			zap.String("role", listing.Role),
			zap.String("location", listing.Location),
			zap.String("skill_match", score.String()),
			zap.Bool("skill_match_known", score.Known),
			zap.Bool("high_ghost_rate", listing.HighGhostRate()),
		)
	}
}

// rankListings orders listings by skill match, keeping catalog order for ties.
func rankListings(listings *records.Listings, profile *records.Profile) []*records.Listing {
	ranked := make([]*records.Listing, len(listings.Items))
	copy(ranked, listings.Items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score(profile).Value > ranked[j].Score(profile).Value
	})
	return ranked
}

func topListings(listings []*records.Listing, top int) []*records.Listing {
	if top <= 0 || top >= len(listings) {
		return listings
	}
	return listings[:top]
}
