package cmd

import (
	"fmt"

	"github.com/kozaktomas/photo-gallery/internal/config"
	"github.com/kozaktomas/photo-gallery/internal/search"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [criterion]...",
	Short: "Run a search against the media index",
	Long: `Run a search against the media index from the command line. Each
argument is one criterion in the same wire form the web UI uses:

  gallery search "Type,is a,events"
  gallery search "Any Text,contains,red car" "Rating,is at least,4"

With no criteria, everything matches.`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("match", "all", "Match policy: all, any or none")
	searchCmd.Flags().String("sort", "default", "Sort mode: default, takenZA, takenAZ, createdZA, createdAZ, random")
	searchCmd.Flags().String("group", "none", "Grouping mode: none, year, month, day, camera, gps{1,5,10,50,100}km")
	searchCmd.Flags().Int64("seed", 0, "Shuffle seed for sort=random (0 = current time)")
	searchCmd.Flags().Int("limit", 50, "Maximum records to print (0 = all)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	session, err := loadSession(cfg)
	if err != nil {
		return err
	}

	query := &search.Query{
		Criteria: search.ParseCriteria(session.Registry, args),
		Match:    mustGetString(cmd, "match"),
		Sort:     mustGetString(cmd, "sort"),
		Group:    mustGetString(cmd, "group"),
	}
	if cmd.Flags().Changed("seed") {
		query.Seed = mustGetInt64(cmd, "seed")
		query.HasSeed = true
	}

	result := search.Execute(session, query)

	fmt.Printf("%s\n", result.View.Title)
	if result.DateRange != "" {
		fmt.Printf("Date range: %s\n", result.DateRange)
	}
	if result.Shuffled {
		fmt.Printf("Shuffle seed: %d\n", result.Seed)
	}
	fmt.Printf("Matches: %d\n\n", len(result.Records))

	limit := mustGetInt(cmd, "limit")
	for i, r := range result.Records {
		if limit > 0 && i >= limit {
			fmt.Printf("... and %d more (use --limit 0 to print all)\n", len(result.Records)-limit)
			break
		}
		line := fmt.Sprintf("%-10s %-13s %s", r.ID, r.Type, r.DisplayTitle())
		if r.GroupName != "" {
			line += fmt.Sprintf("  [%s]", r.GroupName)
		}
		fmt.Println(line)
	}
	return nil
}
