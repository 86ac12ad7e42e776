package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bensmidt/switchlog/internal/models"
	"github.com/bensmidt/switchlog/internal/slack"
)

// NewWeekCmd builds the `week` subcommand. It prints the whole-week
// report followed by a breakdown for each day of the week.
func NewWeekCmd() *cobra.Command {
	opts := &Options{}
	var date string
	var daily bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Report time per tag for a Monday-to-Sunday week",
		Long:  "Fetches the channel history for the week containing the given day and prints per-tag totals, optionally broken down per day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			channel, loc, token, err := opts.Resolve()
			if err != nil {
				return err
			}

			anchor, err := parseDay(date, loc)
			if err != nil {
				return err
			}
			offset := (int(anchor.Weekday()) + 6) % 7 // Monday = 0
			weekStart := anchor.AddDate(0, 0, -offset)
			weekEnd := endOfDay(weekStart.AddDate(0, 0, 6))

			client := slack.NewClient(token, "")

			fmt.Printf("Week of %s\n\n", weekStart.Format("01.02.2006"))
			if err := RunAudit(cmd.Context(), client, channel, weekStart, weekEnd, opts.Grouping()); err != nil {
				return err
			}

			if !daily {
				return nil
			}

			for i := 0; i < 7; i++ {
				dayStart := weekStart.AddDate(0, 0, i)
				if dayStart.After(time.Now().In(dayStart.Location())) {
					break
				}
				fmt.Printf("\n%s\n\n", models.DayHeader(dayStart.Format(models.DateLayout)))
				if err := RunAudit(cmd.Context(), client, channel, dayStart, endOfDay(dayStart), opts.Grouping()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	opts.AddCommonFlags(cmd)
	cmd.Flags().StringVarP(&date, "date", "d", "", "Any day inside the week to report, as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&daily, "daily", false, "Also print a separate report for each day of the week")

	return cmd
}
