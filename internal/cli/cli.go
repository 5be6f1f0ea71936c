package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dailylog/internal/config"
	"dailylog/internal/daterange"
	"dailylog/internal/logs"
	"dailylog/internal/notes"
	"dailylog/internal/report"
	"dailylog/internal/tui"
)

// Version is set at build time with -ldflags "-X dailylog/internal/cli.Version=..."
var Version = "dev"

// Options configures the command tree
type Options struct {
	Stdout io.Writer
	// Now returns the current time; tests pin it
	Now func() time.Time
	// Browse shows a built report interactively. Defaults to tui.Run.
	Browse func(days []report.Day, iv daterange.Interval) error
}

// CLI holds the flag values shared by every command
type CLI struct {
	opts       Options
	configFile string
	from       string
	to         string
	selection  daterange.Selection
	rootCmd    *cobra.Command
}

// NewCLI creates the command tree
func NewCLI(opts Options) *CLI {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Browse == nil {
		opts.Browse = tui.Run
	}

	cli := &CLI{opts: opts}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

// Execute runs the command line
func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// Command exposes the root command, mainly for tests
func (cli *CLI) Command() *cobra.Command {
	return cli.rootCmd
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dailylog",
		Short: "Summarize daily note log data",
		Long: `Summarize daily note log data.

Multiple options are provided for specifying the time period. Only the daily
log data within the specified time period is analysed. If no time period is
specified, today's daily note is used.

Daily note log information is extracted from daily note files which follow
the convention that there is a separate file for each day and the file name
follows the pattern 'YYYY-MM-DD.md', e.g. 2024-02-16.md. Log entries are the
list items in the '## Log' section of each note.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          cli.runReport,
	}

	d := config.Defaults()
	pf := cmd.PersistentFlags()
	pf.StringVar(&cli.configFile, "config", "", "Config file (default ~/.config/dailylog/config.yaml)")
	pf.String("log", d.Log, "Logging level (trace, debug, info, warning, error)")
	pf.String("path", d.Path, "Path where the daily note files are stored")
	pf.String("out", d.Out, "File where the collated data will be stored (- for stdout)")
	pf.String("section", d.Section, "Heading of the log section in each note")
	pf.String("ext", d.Ext, "File extension of daily note files")
	pf.String("format", d.Format, "Report format: markdown, json, yaml, html")
	pf.String("period", d.Period, "Named time period, e.g. thisweek (lowest priority of the period options)")
	pf.Bool("strict", d.Strict, "Fail on unreadable dates or paths instead of writing an empty report")
	pf.StringVar(&cli.from, "from", "", "Start of time period (default is today)")
	pf.StringVar(&cli.to, "to", "", "End of time period (default is today)")

	periodFlags := []struct {
		target *bool
		name   string
		desc   string
	}{
		{&cli.selection.Today, "today", "Today's summary"},
		{&cli.selection.Yesterday, "yesterday", "Yesterday's summary"},
		{&cli.selection.ThisWeek, "thisweek", "This week's summary"},
		{&cli.selection.ThisMonth, "thismonth", "This month's summary"},
		{&cli.selection.ThisQuarter, "thisquarter", "This quarter's summary"},
		{&cli.selection.ThisYear, "thisyear", "This year's summary"},
		{&cli.selection.LastWeek, "lastweek", "Last week's summary"},
		{&cli.selection.LastMonth, "lastmonth", "Last month's summary"},
		{&cli.selection.LastQuarter, "lastquarter", "Last quarter's summary"},
		{&cli.selection.LastYear, "lastyear", "Last year's summary"},
	}
	for _, f := range periodFlags {
		pf.BoolVar(f.target, f.name, false, f.desc+". Overrides --from and --to values.")
	}

	cmd.AddCommand(cli.newBrowseCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// pipeline resolves configuration and the date range, then aggregates the notes
func (cli *CLI) pipeline(cmd *cobra.Command) (*config.Config, daterange.Interval, report.Entries, error) {
	var iv daterange.Interval

	cfg, err := config.Load(cmd.Flags(), cli.configFile)
	if err != nil {
		return nil, iv, nil, err
	}
	if err := logs.Initialize(cfg.Log); err != nil {
		return nil, iv, nil, err
	}
	if cfg.ConfigFile != "" {
		logs.Logger.Debug().Str("file", cfg.ConfigFile).Msg("loaded config")
	}

	if err := config.ValidateNotesDir(cfg.Path); err != nil {
		return nil, iv, nil, err
	}

	iv, err = cli.resolveInterval(cfg)
	if err != nil {
		return nil, iv, nil, err
	}
	logs.Logger.Info().Msg(iv.String())

	if iv.End.Before(iv.Start) {
		logs.Logger.Warn().Str("range", iv.String()).Msg("start of time period is after its end")
	}

	agg := &report.Aggregator{
		Header:  cfg.Section,
		Locator: notes.Locator{Extension: cfg.Ext},
	}
	if cfg.Strict {
		agg.Policy = report.Propagate
	}

	entries, err := agg.Aggregate(cfg.Path, iv)
	if err != nil {
		return nil, iv, nil, err
	}
	return cfg, iv, entries, nil
}

func (cli *CLI) resolveInterval(cfg *config.Config) (daterange.Interval, error) {
	resolver := &daterange.Resolver{Now: cli.opts.Now}
	today := resolver.Today()

	from, to := today, today
	if cli.from != "" {
		d, err := daterange.ParseDate(cli.from)
		if err != nil {
			return daterange.Interval{}, fmt.Errorf("invalid value for --from: %w", err)
		}
		from = d
	}
	if cli.to != "" {
		d, err := daterange.ParseDate(cli.to)
		if err != nil {
			return daterange.Interval{}, fmt.Errorf("invalid value for --to: %w", err)
		}
		to = d
	}

	sel := cli.selection
	if _, ok := sel.Active(); !ok && cfg.Period != "" {
		p, err := daterange.ParsePeriod(cfg.Period)
		if err != nil {
			return daterange.Interval{}, err
		}
		sel = sel.With(p)
	}

	return resolver.Resolve(from, to, sel), nil
}

func (cli *CLI) runReport(cmd *cobra.Command, args []string) error {
	cfg, _, entries, err := cli.pipeline(cmd)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	if err := report.Write(cfg.Out, format, entries, cli.opts.Stdout); err != nil {
		return err
	}
	logs.Logger.Info().Str("out", cfg.Out).Int("days", len(report.Days(entries))).Msg("report written")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dailylog %s\n", Version)
		},
	}
}
