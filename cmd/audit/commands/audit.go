package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bensmidt/switchlog/internal/analysis"
	"github.com/bensmidt/switchlog/internal/slack"
	"github.com/bensmidt/switchlog/internal/tasks"
)

// DefaultConfigFile is looked up when --config is not given.
const DefaultConfigFile = ".switchlog.yaml"

// FileConfig is the optional YAML config for the audit CLI, holding
// the defaults that are tedious to repeat on every invocation.
type FileConfig struct {
	Channel  string `yaml:"channel"`
	Timezone string `yaml:"timezone"`
	Token    string `yaml:"token"`
}

// Options are the flags shared by every audit subcommand.
type Options struct {
	ConfigFile string
	Channel    string
	Timezone   string
	AllTags    bool
}

// AddCommonFlags wires the shared flags onto a subcommand.
func (o *Options) AddCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.ConfigFile, "config", "", "Path to YAML config file (default "+DefaultConfigFile+" if present)")
	cmd.Flags().StringVarP(&o.Channel, "channel", "c", "", "Channel ID to audit")
	cmd.Flags().StringVar(&o.Timezone, "timezone", "", "IANA timezone for window construction (default UTC)")
	cmd.Flags().BoolVar(&o.AllTags, "all-tags", false, "Count multi-tagged tasks fully toward every tag instead of only the first")
}

// Resolve merges flags, config file and environment into a runnable
// setup. Flag values win over the config file.
func (o *Options) Resolve() (channel string, loc *time.Location, token string, err error) {
	fileCfg, err := loadFileConfig(o.ConfigFile)
	if err != nil {
		return "", nil, "", err
	}

	channel = o.Channel
	if channel == "" {
		channel = fileCfg.Channel
	}
	if channel == "" {
		return "", nil, "", fmt.Errorf("no channel given: use --channel or set channel in %s", DefaultConfigFile)
	}

	tz := o.Timezone
	if tz == "" {
		tz = fileCfg.Timezone
	}
	if tz == "" {
		tz = "UTC"
	}
	loc, err = time.LoadLocation(tz)
	if err != nil {
		return "", nil, "", fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	token = os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		token = fileCfg.Token
	}
	if token == "" {
		return "", nil, "", fmt.Errorf("no Slack token: set SLACK_BOT_TOKEN or token in %s", DefaultConfigFile)
	}

	return channel, loc, token, nil
}

func loadFileConfig(path string) (*FileConfig, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg := &FileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Grouping maps the --all-tags flag onto the aggregator's grouping mode.
func (o *Options) Grouping() analysis.Grouping {
	if o.AllTags {
		return analysis.GroupAllTags
	}
	return analysis.GroupFirstTag
}

// RunAudit fetches the channel history over [start, end], reconstructs
// task intervals and prints the per-tag report. A window with no
// tagged tasks prints a notice instead of failing.
func RunAudit(ctx context.Context, client *slack.Client, channel string, start, end time.Time, grouping analysis.Grouping) error {
	messages, err := client.ConversationHistory(ctx, channel, slack.HistoryOptions{
		Oldest:              start,
		Latest:              end,
		PrecedingOlderCount: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch channel history: %w", err)
	}

	built, err := tasks.Build(slack.Events(messages), start, end)
	if err != nil {
		return err
	}

	rendered, err := analysis.New(built, grouping).Render()
	if errors.Is(err, analysis.ErrEmptyAnalysis) {
		fmt.Printf("No tagged events found for %s - %s\n", start.Format(time.RFC3339), end.Format(time.RFC3339))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(rendered)
	return nil
}

// parseDay parses a YYYY-MM-DD flag value, defaulting to today in loc.
func parseDay(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return day, nil
}

// endOfDay returns the last second of the day that begins at start,
// matching the inclusive windows the report has always used.
func endOfDay(start time.Time) time.Time {
	return start.Add(24*time.Hour - time.Second)
}
