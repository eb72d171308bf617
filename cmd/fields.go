package cmd

import (
	"fmt"
	"strings"

	"github.com/kozaktomas/photo-gallery/internal/config"
	"github.com/kozaktomas/photo-gallery/internal/search"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List searchable fields and their operators",
	Long: `Lists every searchable field with its operators and value arity.
With a feed loaded (--feed), the File Extension field shows the extensions
actually present in the index.`,
	RunE: runFields,
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	// The catalog is static apart from discovered file extensions, so a
	// feed is optional here.
	registry := search.NewRegistry(nil)
	if _, err := resolveFeedPath(cfg); err == nil {
		if session, err := loadSession(cfg); err == nil {
			registry = session.Registry
		}
	}

	for _, field := range registry.Fields {
		fmt.Printf("%s\n", field.Title)
		for _, op := range field.Ops {
			arity := ""
			if op.NumValues > 0 {
				arity = fmt.Sprintf(" (%d value", op.NumValues)
				if op.NumValues > 1 {
					arity += "s"
				}
				arity += ")"
			}
			fmt.Printf("  %s%s\n", op.Descr, arity)
		}
		if len(field.ValidValues) > 0 {
			fmt.Printf("  values: %s\n", strings.Join(field.ValidValues, ", "))
		}
		fmt.Println()
	}
	return nil
}
