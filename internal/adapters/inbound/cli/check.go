package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ragicss/sizebudget/internal/adapters/outbound/gitinfo"
	"github.com/ragicss/sizebudget/internal/adapters/outbound/locator"
	"github.com/ragicss/sizebudget/internal/adapters/outbound/measurer"
	"github.com/ragicss/sizebudget/internal/adapters/outbound/report"
	"github.com/ragicss/sizebudget/internal/adapters/outbound/tui"
	"github.com/ragicss/sizebudget/internal/application"
	"github.com/ragicss/sizebudget/internal/domain"
)

type checkOptions struct {
	dir     string
	format  string
	verbose bool
}

func defaultCheckOptions() *checkOptions {
	return &checkOptions{
		dir:    domain.DefaultConfig().OutputDir,
		format: string(report.FormatText),
	}
}

func addCheckFlags(cmd *cobra.Command, opts *checkOptions) {
	cmd.Flags().StringVar(&opts.dir, "dir", opts.dir, "Output directory containing the build artifacts")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "Report format: text, json or yaml")
}

func newCheckCmd(opts *checkOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check artifact sizes against their budgets",
		Long:  "Measure every expected artifact in the output directory and fail if any exceeds its raw or gzipped ceiling. Missing artifacts are skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
	addCheckFlags(cmd, opts)
	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cfg := domain.DefaultConfig()
	cfg.OutputDir = opts.dir

	svc := application.NewCheckService(
		locator.New(),
		measurer.New(),
		newLogger(cmd.ErrOrStderr(), opts.verbose),
	)

	run, err := svc.Run(cfg)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	stampCommit(run, gitinfo.New())

	if err := writeRunResult(cmd.OutOrStdout(), format, run); err != nil {
		return err
	}

	if !run.Passed {
		return domain.ErrBudgetExceeded
	}
	return nil
}

// stampCommit attaches the HEAD commit of the repository holding the output
// directory. Builds outside a repository are reported without one.
func stampCommit(run *domain.RunResult, gi domain.GitInfo) {
	if !gi.IsGitRepo(run.OutputDir) {
		return
	}
	if hash, err := gi.CommitHash(run.OutputDir); err == nil {
		run.CommitHash = hash
	}
}

func writeRunResult(w io.Writer, format report.Format, run *domain.RunResult) error {
	if format == report.FormatText {
		_, err := fmt.Fprint(w, tui.RenderRunResult(run))
		return err
	}
	return report.Encode(w, format, run)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
