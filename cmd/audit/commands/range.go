package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bensmidt/switchlog/internal/slack"
)

// NewRangeCmd builds the `range` subcommand for arbitrary windows.
func NewRangeCmd() *cobra.Command {
	opts := &Options{}
	var startFlag, endFlag string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Report time per tag for an arbitrary window",
		Long:  "Fetches the channel history between two instants and prints per-tag totals. Bounds accept RFC 3339 timestamps or plain YYYY-MM-DD dates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			channel, loc, token, err := opts.Resolve()
			if err != nil {
				return err
			}

			start, err := parseBound(startFlag, loc, false)
			if err != nil {
				return err
			}
			end, err := parseBound(endFlag, loc, true)
			if err != nil {
				return err
			}
			if !end.After(start) {
				return fmt.Errorf("window end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
			}

			client := slack.NewClient(token, "")
			return RunAudit(cmd.Context(), client, channel, start, end, opts.Grouping())
		},
	}

	opts.AddCommonFlags(cmd)
	cmd.Flags().StringVar(&startFlag, "start", "", "Window start (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&endFlag, "end", "", "Window end (RFC 3339 or YYYY-MM-DD, taken as end of day)")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

// parseBound accepts either a full RFC 3339 timestamp or a bare date.
// Bare dates resolve to midnight, or to the last second of the day
// when the bound is the window end.
func parseBound(value string, loc *time.Location, isEnd bool) (time.Time, error) {
	if t, err := time.ParseInLocation(time.RFC3339, value, loc); err == nil {
		return t, nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid bound %q (want RFC 3339 or YYYY-MM-DD)", value)
	}
	if isEnd {
		return endOfDay(day), nil
	}
	return day, nil
}
