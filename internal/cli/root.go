// Package cli implements the report command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"report-srv/internal/report"

	"github.com/spf13/cobra"
)

// Env is what a command needs to do its work. Queue is nil unless the
// command asked for it.
type Env struct {
	UseCase    report.UseCase
	Queue      report.JobQueue
	LookupUser func(ctx context.Context, userID string) error
}

// Opener builds an Env. The returned func releases every client it opened.
type Opener func(ctx context.Context, withQueue bool) (*Env, func(), error)

// NewRootCmd builds the command tree around open.
func NewRootCmd(open Opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate and queue CRM activity reports",
		Long: `report generates activity reports from CRM task data.

Examples:
  report generate --user 42                    # current ISO week
  report generate --user 42 --week 12 --year 2024
  report generate --user 42 --queue            # hand the job to the consumer`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newGenerateCmd(open))
	return rootCmd
}

// Execute runs the tool against the configured backends and exits 1 on failure.
func Execute() {
	if err := run(os.Args[1:], os.Stdout, openFromConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, open Opener) error {
	rootCmd := NewRootCmd(open)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	return rootCmd.ExecuteContext(context.Background())
}
