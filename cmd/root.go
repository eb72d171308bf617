package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kozaktomas/photo-gallery/internal/config"
	"github.com/kozaktomas/photo-gallery/internal/feed"
	"github.com/kozaktomas/photo-gallery/internal/search"
	"github.com/spf13/cobra"
)

var feedPath string

var rootCmd = &cobra.Command{
	Use:   "gallery",
	Short: "A static photo/video gallery viewer with a query-by-example search engine",
	Long: `Gallery serves a pre-generated media index (photos, videos, events,
tags, years) as a single-page browser gallery. The index is produced by an
external build step; this tool loads it, answers composable search queries
over it, and can export results as CSV from the command line.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&feedPath, "feed", "", "Path to the generated media index JSON")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

// resolveFeedPath picks the feed path from the flag, then the environment.
func resolveFeedPath(cfg *config.Config) (string, error) {
	if feedPath != "" {
		return feedPath, nil
	}
	if cfg.Feed.Path != "" {
		return cfg.Feed.Path, nil
	}
	return "", fmt.Errorf("no feed specified: use --feed or set GALLERY_FEED")
}

// loadSession loads and normalizes the feed into a fresh search session.
func loadSession(cfg *config.Config) (*search.Session, error) {
	path, err := resolveFeedPath(cfg)
	if err != nil {
		return nil, err
	}
	f, err := feed.Load(path)
	if err != nil {
		return nil, err
	}
	return search.NewSession(f), nil
}
