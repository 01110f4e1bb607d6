package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ragicss/sizebudget/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	opts := defaultCheckOptions()

	cmd := &cobra.Command{
		Use:   "sizebudget",
		Short: "Keep build artifacts inside their size budget",
		Long: "sizebudget measures the raw and gzipped size of each expected build artifact, " +
			"compares them against fixed ceilings, and exits 1 when any ceiling is exceeded.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
	addCheckFlags(cmd, opts)
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug detail to stderr")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI. Budget failures are already explained by the report,
// so only other errors are printed.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, domain.ErrBudgetExceeded) {
		fmt.Fprintf(os.Stderr, "sizebudget: %v\n", err)
	}
	return err
}
