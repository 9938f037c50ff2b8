package cli

import (
	"fmt"

	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/outbound/config"
	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newThreatsCmd() *cobra.Command {
	var (
		jsonOutput bool
		configDir  string
	)

	cmd := &cobra.Command{
		Use:   "threats",
		Short: "List the active threat rule table",
		Long:  "Show every structural keyword the scanner matches, its severity, and its description, including policy overrides from .pdfscan.yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := config.New().Load(configDir)
			if err != nil {
				return fmt.Errorf("loading policy: %w", err)
			}

			table := policy.Table()
			if jsonOutput {
				return renderJSON(cmd, table)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderThreatTable(table))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the table as JSON")
	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing .pdfscan.yaml")

	return cmd
}
