package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bensmidt/switchlog/cmd/audit/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "switchlog-audit",
		Short: "Time-accounting reports from channel history",
		Long:  "Replays a channel's message history, reconstructs task intervals from bracketed tags and prints a per-tag time report",
	}

	rootCmd.AddCommand(commands.NewDayCmd())
	rootCmd.AddCommand(commands.NewWeekCmd())
	rootCmd.AddCommand(commands.NewRangeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
