package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdfscan",
		Short: "Triage untrusted PDF documents",
		Long: "pdfscan inspects PDF documents for structural threat indicators " +
			"(embedded scripts, auto-launch actions, embedded files) and turns " +
			"them into a risk verdict with actionable guidance.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newThreatsCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
