// Package cli wires the scan services to cobra commands.
package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/outbound/config"
	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/outbound/pdfid"
	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/outbound/tui"
	"github.com/ErfanNahidi/pdf-scanner/internal/application"
	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
	"github.com/spf13/cobra"
)

// newScanService builds the standard service stack from the policy file in
// the working directory.
func newScanService(configDir string) (*application.ScanService, error) {
	policy, err := config.New().Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading policy: %w", err)
	}
	return application.NewScanService(
		policy,
		pdfid.NewLocator(policy.ToolPath),
		pdfid.NewRunner(),
		pdfid.NewParser(),
	), nil
}

func newScanCmd() *cobra.Command {
	var (
		jsonOutput bool
		quiet      bool
		timeout    time.Duration
		configDir  string
	)

	cmd := &cobra.Command{
		Use:   "scan <file.pdf>",
		Short: "Scan a single PDF for structural threat indicators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newScanService(configDir)
			if err != nil {
				return err
			}

			var sink domain.ProgressSink
			if !quiet {
				sink = func(status string) {
					fmt.Fprintln(cmd.ErrOrStderr(), status)
				}
			}

			res := svc.Scan(cmd.Context(), domain.ScanRequest{
				Path:     args[0],
				Timeout:  timeout,
				Progress: sink,
			})

			if jsonOutput {
				return renderJSON(cmd, res)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(res, svc.Table()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Override the size-derived scan timeout")
	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing .pdfscan.yaml")

	return cmd
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
