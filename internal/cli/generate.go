package cli

import (
	"errors"
	"fmt"

	"report-srv/internal/model"
	"report-srv/internal/report"

	"github.com/spf13/cobra"
)

var errUserRequired = errors.New("--user is required")

type generateFlags struct {
	userID string
	year   int
	week   int
	queue  bool
}

func newGenerateCmd(open Opener) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a weekly report for one user",
		Long: `Generate builds the weekly report of a single user.

Without --week and --year the current ISO week is used. With --queue the job is
published to the generation queue and the consumer builds the report.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.userID == "" {
				return errUserRequired
			}

			env, closeEnv, err := open(cmd.Context(), flags.queue)
			if err != nil {
				return err
			}
			defer closeEnv()

			input := report.GenerateWeeklyInput{
				UserID: flags.userID,
				Year:   flags.year,
				Week:   flags.week,
			}

			if flags.queue {
				return enqueue(cmd, env, input)
			}

			out, err := env.UseCase.GenerateWeekly(cmd.Context(), model.SystemScope(), input)
			if err != nil {
				return fmt.Errorf("generate weekly report for user %s: %w", flags.userID, err)
			}
			printReport(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.userID, "user", "", "User whose activity is reported (required)")
	cmd.Flags().IntVar(&flags.year, "year", 0, "ISO year (default: current)")
	cmd.Flags().IntVar(&flags.week, "week", 0, "ISO week number (default: current)")
	cmd.Flags().BoolVar(&flags.queue, "queue", false, "Queue the job instead of generating in-process")

	return cmd
}

// enqueue checks the user exists before publishing, so a typo fails here
// rather than in the consumer.
func enqueue(cmd *cobra.Command, env *Env, input report.GenerateWeeklyInput) error {
	if env.Queue == nil {
		return errors.New("generation queue is not configured")
	}
	if env.LookupUser != nil {
		if err := env.LookupUser(cmd.Context(), input.UserID); err != nil {
			return fmt.Errorf("look up user %s: %w", input.UserID, err)
		}
	}
	if err := env.Queue.EnqueueWeekly(cmd.Context(), input); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Queued weekly report for user %s\n", input.UserID)
	return nil
}

func printReport(cmd *cobra.Command, out report.ReportOutput) {
	rpt := out.Report
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Generated report %s\n", rpt.ID)
	fmt.Fprintf(w, "  %s\n", rpt.Title)
	fmt.Fprintf(w, "  Projects: %d\n", len(out.Items))
	fmt.Fprintf(w, "  Tasks:    %d/%d completed\n", rpt.CompletedTasks, rpt.TotalTasks)
	fmt.Fprintf(w, "  Hours:    %s\n", rpt.TotalHours.StringFixed(2))
}
