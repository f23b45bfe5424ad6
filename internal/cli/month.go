package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	datepicker "github.com/goliatone/go-datepicker"
	"github.com/goliatone/go-datepicker/internal/termview"
)

// MonthOptions
type MonthOptions struct {
	View      string
	FixedRows bool
	Select    []string
}

func addMonth(topLevel *cobra.Command, ro *RootOptions) {
	mo := &MonthOptions{}

	cmd := &cobra.Command{
		Use:   "month [iso-date]",
		Short: "Print the calendar around a date.",
		Example: `
datepicker month
datepicker month 2024-02-10 --first-day 1 --select 2024-02-14
datepicker month 2024-02-10 --view decade
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.Config()
			if err != nil {
				return err
			}
			if mo.FixedRows {
				if cfg, err = cfg.With(datepicker.WithRowPolicy(datepicker.RowsFixed)); err != nil {
					return err
				}
			}
			view, err := datepicker.ParseViewLevel(mo.View)
			if err != nil {
				return err
			}

			reference := cfg.Today()
			if len(args) == 1 {
				if reference, err = datepicker.ParseISO(args[0]); err != nil {
					return err
				}
			}

			ctrl, err := datepicker.New(cfg)
			if err != nil {
				return err
			}
			err = ctrl.Restore(datepicker.Snapshot{
				Reference: reference.String(),
				View:      view.String(),
				Mode:      cfg.Mode.String(),
				Dates:     mo.Select,
			})
			if err != nil {
				return err
			}

			render(cmd, ctrl.Payload())
			return nil
		},
	}

	cmd.Flags().StringVar(&mo.View, "view", "month", "View level. One of 'month', 'year' or 'decade'.")
	cmd.Flags().BoolVar(&mo.FixedRows, "fixed-rows", false, "Always render six week rows.")
	cmd.Flags().StringSliceVar(&mo.Select, "select", nil, "ISO dates to mark as selected.")

	topLevel.AddCommand(cmd)
}

func render(cmd *cobra.Command, payload datepicker.Payload) {
	opts := termview.DefaultOptions(termview.IsTerminal(out(cmd)))
	_, _ = fmt.Fprintln(out(cmd), termview.Render(payload, opts))
}
