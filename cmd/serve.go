package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kozaktomas/photo-gallery/internal/config"
	"github.com/kozaktomas/photo-gallery/internal/feed"
	"github.com/kozaktomas/photo-gallery/internal/search"
	"github.com/kozaktomas/photo-gallery/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gallery web server",
	Long: `Start the gallery web server. It serves the browser front-end and the
search API over the loaded media index. With --watch, the index file is
reloaded whenever the external generator rewrites it.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
	serveCmd.Flags().Bool("watch", false, "Reload the feed file when it changes")
}

// resolveServeOptions resolves port, host and watch from flags and
// environment variables (flags win).
func resolveServeOptions(cmd *cobra.Command, cfg *config.Config) (int, string, bool) {
	port := mustGetInt(cmd, "port")
	host := mustGetString(cmd, "host")
	watch := mustGetBool(cmd, "watch")

	if !cmd.Flags().Changed("port") && cfg.Web.Port != 0 {
		port = cfg.Web.Port
	}
	if !cmd.Flags().Changed("host") && cfg.Web.Host != "" {
		host = cfg.Web.Host
	}
	if !cmd.Flags().Changed("watch") {
		watch = watch || cfg.Feed.Watch
	}
	return port, host, watch
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	session, err := loadSession(cfg)
	if err != nil {
		return err
	}
	sessions := search.NewHolder(session)
	fmt.Printf("Loaded %q: %d searchable records\n", session.Feed.Title, len(session.Records))

	port, host, watch := resolveServeOptions(cmd, cfg)

	if watch {
		path, _ := resolveFeedPath(cfg)
		watcher, err := feed.NewWatcher(path, func() {
			fresh, err := loadSession(cfg)
			if err != nil {
				// Keep serving the previous session; the generator may
				// still be mid-write.
				log.Printf("feed reload failed: %v", err)
				return
			}
			sessions.Swap(fresh)
			log.Printf("feed reloaded: %d searchable records", len(fresh.Records))
		})
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()
		fmt.Printf("Watching %s for changes\n", path)
	}

	server := web.NewServer(cfg, sessions, port, host)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		fmt.Printf("\nReceived %v, shutting down...\n", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
