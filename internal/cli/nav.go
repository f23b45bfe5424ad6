package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	datepicker "github.com/goliatone/go-datepicker"
	"github.com/goliatone/go-datepicker/internal/session"
)

// NavOptions
type NavOptions struct {
	ID string
}

func addNav(topLevel *cobra.Command, ro *RootOptions) {
	no := &NavOptions{}

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Drive a picker whose state is kept between runs.",
		Long: `Drive a picker whose state is kept between runs.

Each subcommand restores the picker saved under --id, applies one command,
prints the outcome and the view, and saves the picker again. Sessions live
in ~/.datepicker unless DATEPICKER_SESSION_PATH says otherwise.`,
		Example: `
datepicker nav show
datepicker nav next
datepicker nav pick 2024-03-14
datepicker nav move 7 && datepicker nav commit
datepicker nav value --id start-date
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&no.ID, "id", "default", "Session id of the picker.")

	step := func(use, short string, args cobra.PositionalArgs, run func(*datepicker.Controller, []string) (datepicker.Outcome, error)) {
		cmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runNav(cmd, ro, no, func(ctrl *datepicker.Controller) (datepicker.Outcome, error) {
					return run(ctrl, args)
				})
			},
		})
	}

	step("show", "Open the picker on the selected month or today.", cobra.NoArgs,
		func(ctrl *datepicker.Controller, _ []string) (datepicker.Outcome, error) {
			return ctrl.Show(), nil
		})
	step("prev", "Go to the previous period.", cobra.NoArgs,
		func(ctrl *datepicker.Controller, _ []string) (datepicker.Outcome, error) {
			return ctrl.Prev(), nil
		})
	step("next", "Go to the next period.", cobra.NoArgs,
		func(ctrl *datepicker.Controller, _ []string) (datepicker.Outcome, error) {
			return ctrl.Next(), nil
		})
	step("pick [iso-date]", "Pick a day, or drill into a month or year.", cobra.ExactArgs(1),
		func(ctrl *datepicker.Controller, args []string) (datepicker.Outcome, error) {
			d, err := datepicker.ParseISO(args[0])
			if err != nil {
				return datepicker.Ignored, err
			}
			return ctrl.Pick(d), nil
		})
	step("view [month|year|decade]", "Change the zoom level.", cobra.ExactArgs(1),
		func(ctrl *datepicker.Controller, args []string) (datepicker.Outcome, error) {
			level, err := datepicker.ParseViewLevel(args[0])
			if err != nil {
				return datepicker.Ignored, err
			}
			return ctrl.ChangeView(level), nil
		})
	step("move [delta]", "Move the keyboard cursor by -7, -1, 1 or 7 days.", cobra.ExactArgs(1),
		func(ctrl *datepicker.Controller, args []string) (datepicker.Outcome, error) {
			delta, err := strconv.Atoi(args[0])
			if err != nil {
				return datepicker.Ignored, err
			}
			return ctrl.KeyboardMove(delta), nil
		})
	step("commit", "Pick the day under the keyboard cursor.", cobra.NoArgs,
		func(ctrl *datepicker.Controller, _ []string) (datepicker.Outcome, error) {
			return ctrl.KeyboardCommit(), nil
		})
	step("hide", "Close the picker.", cobra.NoArgs,
		func(ctrl *datepicker.Controller, _ []string) (datepicker.Outcome, error) {
			return ctrl.Hide(), nil
		})
	step("set [iso-date]...", "Replace the selection.", cobra.ArbitraryArgs,
		func(ctrl *datepicker.Controller, args []string) (datepicker.Outcome, error) {
			dates, err := parseDateArgs(args)
			if err != nil {
				return datepicker.Ignored, err
			}
			return ctrl.SetDates(dates...), nil
		})

	cmd.AddCommand(&cobra.Command{
		Use:   "value",
		Short: "Print the selection as text.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _, err := loadNav(ro, no)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out(cmd), ctrl.Value())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the saved picker.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openSessions(ro)
			if err != nil {
				return err
			}
			return store.Delete(no.ID)
		},
	})

	topLevel.AddCommand(cmd)
}

func openSessions(ro *RootOptions) (*session.Store, error) {
	path, err := session.Path(ro.settings)
	if err != nil {
		return nil, err
	}
	return session.Open(path), nil
}

func loadNav(ro *RootOptions, no *NavOptions) (*datepicker.Controller, *session.Store, error) {
	cfg, err := ro.Config()
	if err != nil {
		return nil, nil, err
	}
	store, err := openSessions(ro)
	if err != nil {
		return nil, nil, err
	}
	ctrl, err := datepicker.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	if _, err := store.Load(no.ID, ctrl); err != nil {
		return nil, nil, err
	}
	return ctrl, store, nil
}

func runNav(cmd *cobra.Command, ro *RootOptions, no *NavOptions, apply func(*datepicker.Controller) (datepicker.Outcome, error)) error {
	ctrl, store, err := loadNav(ro, no)
	if err != nil {
		return err
	}

	outcome, err := apply(ctrl)
	if err != nil {
		return err
	}
	if err := store.Save(no.ID, ctrl); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out(cmd), "%s\n", outcome)
	render(cmd, ctrl.Payload())
	if value := ctrl.Value(); value != "" {
		_, _ = fmt.Fprintf(out(cmd), "value: %s\n", value)
	}
	return nil
}
