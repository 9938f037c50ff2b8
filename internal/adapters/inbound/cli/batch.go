package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/outbound/tui"
	"github.com/ErfanNahidi/pdf-scanner/internal/application"
	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var (
		jsonOutput bool
		quiet      bool
		configDir  string
	)

	cmd := &cobra.Command{
		Use:   "batch <file.pdf>...",
		Short: "Scan many PDFs concurrently",
		Long: "Scan several PDF documents under a bounded worker pool. Every " +
			"input yields exactly one result; one file's failure never stops " +
			"the others. Interrupt (Ctrl-C) stops dispatching new scans and " +
			"lets in-flight ones finish.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newScanService(configDir)
			if err != nil {
				return err
			}
			batch := application.NewBatchScanner(svc)

			// First interrupt cancels cooperatively, second one kills.
			interrupts := make(chan os.Signal, 1)
			signal.Notify(interrupts, os.Interrupt)
			defer signal.Stop(interrupts)
			go func() {
				if _, ok := <-interrupts; ok {
					batch.Cancel()
					signal.Stop(interrupts)
				}
			}()

			var sink domain.ProgressSink
			if !quiet {
				sink = func(status string) {
					fmt.Fprintln(cmd.ErrOrStderr(), status)
				}
			}

			results := batch.ScanAll(cmd.Context(), args, sink)

			if jsonOutput {
				return renderJSON(cmd, results)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderBatch(results))

			if batch.Cancelled() {
				return fmt.Errorf("batch cancelled after %d of %d file(s)", len(results), len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing .pdfscan.yaml")

	return cmd
}
