// Package cli wires the datepicker command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	datepicker "github.com/goliatone/go-datepicker"
)

// RootOptions holds the flags shared by every command.
type RootOptions struct {
	ConfigPath string
	Locale     string
	DateFormat string
	Mode       string
	FirstDay   int
	Min        string
	Max        string
	Today      string
	Verbose    bool

	settings *viper.Viper
	cmd      *cobra.Command
}

// New builds the root command.
func New() *cobra.Command {
	ro := &RootOptions{settings: viper.New()}

	cmd := &cobra.Command{
		Use:           "datepicker",
		Short:         "Format, parse and navigate calendar dates.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	ro.cmd = cmd

	flags := cmd.PersistentFlags()
	flags.StringVar(&ro.ConfigPath, "config", "", "TOML configuration file (env DATEPICKER_CONFIG).")
	flags.StringVarP(&ro.Locale, "locale", "l", "", "Locale for day and month names.")
	flags.StringVarP(&ro.DateFormat, "date-format", "f", "", `Date pattern, example: "dd MM yy".`)
	flags.StringVar(&ro.Mode, "mode", "", "Selection mode. One of 'single', 'multi' or 'range'.")
	flags.IntVar(&ro.FirstDay, "first-day", 0, "First day of the week, 0 is Sunday.")
	flags.StringVar(&ro.Min, "min", "", "Minimum date: ISO date, text in the date format, or a day offset like -7.")
	flags.StringVar(&ro.Max, "max", "", "Maximum date, same forms as --min.")
	flags.StringVar(&ro.Today, "today", "", `Pretend today is this ISO date, example: --today="2024-03-05".`)
	flags.BoolVarP(&ro.Verbose, "verbose", "v", false, "Log debug output to stderr.")

	ro.settings.SetEnvPrefix("DATEPICKER")
	_ = ro.settings.BindEnv("config")
	_ = ro.settings.BindPFlag("config", flags.Lookup("config"))

	addFormat(cmd, ro)
	addParse(cmd, ro)
	addTokens(cmd, ro)
	addMonth(cmd, ro)
	addNav(cmd, ro)
	addLocales(cmd, ro)
	addVersion(cmd)

	return cmd
}

// ReportError prints err in red on stderr.
func ReportError(err error) {
	_, _ = color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
	_, _ = fmt.Fprintln(os.Stderr, err)
}

// Config assembles the picker configuration: the TOML file first, then any
// flags given explicitly.
func (ro *RootOptions) Config() (*datepicker.Config, error) {
	var opts []datepicker.Option

	if path := ro.settings.GetString("config"); path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, err
		}
		fileOpts, err := datepicker.LoadConfigFile(expanded)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)
	}

	flags := ro.cmd.PersistentFlags()
	if flags.Changed("locale") {
		opts = append(opts, datepicker.WithLocale(ro.Locale))
	}
	if flags.Changed("date-format") {
		opts = append(opts, datepicker.WithDateFormat(ro.DateFormat))
	}
	if flags.Changed("mode") {
		mode, err := datepicker.ParseSelectionMode(ro.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, datepicker.WithMode(mode))
	}
	if flags.Changed("first-day") {
		opts = append(opts, datepicker.WithFirstDay(ro.FirstDay))
	}
	if flags.Changed("min") {
		opts = append(opts, datepicker.WithMinDate(boundFlag(ro.Min)))
	}
	if flags.Changed("max") {
		opts = append(opts, datepicker.WithMaxDate(boundFlag(ro.Max)))
	}
	if ro.Today != "" {
		today, err := datepicker.ParseISO(ro.Today)
		if err != nil {
			return nil, err
		}
		fixed := today.Time(time.Local).Add(12 * time.Hour)
		opts = append(opts, datepicker.WithClock(func() time.Time { return fixed }))
	}
	if ro.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, datepicker.WithLogger(slog.New(handler)))
	}

	return datepicker.NewConfig(opts...)
}

// boundFlag reads an integer as a day offset and an ISO date as an absolute
// date. Anything else is parsed with the date format later.
func boundFlag(value string) datepicker.BoundSpec {
	if days, err := strconv.Atoi(value); err == nil {
		return datepicker.RelativeDays(days)
	}
	if d, err := datepicker.ParseISO(value); err == nil {
		return datepicker.AbsoluteDate(d)
	}
	return datepicker.PatternDate(value)
}

func parseDateArgs(args []string) ([]datepicker.DateValue, error) {
	dates := make([]datepicker.DateValue, 0, len(args))
	for _, arg := range args {
		d, err := datepicker.ParseISO(arg)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
