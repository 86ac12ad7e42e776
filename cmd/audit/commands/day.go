package commands

import (
	"github.com/spf13/cobra"

	"github.com/bensmidt/switchlog/internal/slack"
)

// NewDayCmd builds the `day` subcommand, reporting a single calendar day.
func NewDayCmd() *cobra.Command {
	opts := &Options{}
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Report time per tag for one calendar day",
		Long:  "Fetches the channel history for a single day and prints how long each tagged task ran.",
		RunE: func(cmd *cobra.Command, args []string) error {
			channel, loc, token, err := opts.Resolve()
			if err != nil {
				return err
			}

			start, err := parseDay(date, loc)
			if err != nil {
				return err
			}

			client := slack.NewClient(token, "")
			return RunAudit(cmd.Context(), client, channel, start, endOfDay(start), opts.Grouping())
		},
	}

	opts.AddCommonFlags(cmd)
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to report as YYYY-MM-DD (default today)")

	return cmd
}
