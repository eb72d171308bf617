package cmd

import (
	"fmt"
	"os"

	"github.com/kozaktomas/photo-gallery/internal/config"
	"github.com/kozaktomas/photo-gallery/internal/export"
	"github.com/kozaktomas/photo-gallery/internal/search"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [criterion]...",
	Short: "Export search results as CSV",
	Long: `Export search results as CSV. Criteria use the same wire form as the
search command; with none, the whole index is exported.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("out", "gallery-export.csv", "Output file path")
	exportCmd.Flags().String("match", "all", "Match policy: all, any or none")
	exportCmd.Flags().String("sort", "default", "Sort mode")
	exportCmd.Flags().String("group", "none", "Grouping mode")
}

func runExport(cmd *cobra.Command, args []string) error {
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
	result := search.Execute(session, query)

	outPath := mustGetString(cmd, "out")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	bar := progressbar.NewOptions(len(result.Records),
		progressbar.OptionSetDescription("Exporting"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("records"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionFullWidth(),
	)

	if err := export.Write(out, result.Records, func(i int) {
		_ = bar.Add(1)
	}); err != nil {
		return err
	}

	fmt.Printf("\nWrote %d records to %s\n", len(result.Records), outPath)
	return nil
}
