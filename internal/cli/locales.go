package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func addLocales(topLevel *cobra.Command, ro *RootOptions) {
	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the locales with day and month names.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.Config()
			if err != nil {
				return err
			}
			catalog := cfg.Catalog()

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 48
			tbl.AddRow(bold.Sprint("CODE"), bold.Sprint("NAME"), bold.Sprint("MONTHS"))
			for _, code := range catalog.Codes() {
				locale, err := catalog.Resolve(code)
				if err != nil {
					tbl.AddRow(code, "", err.Error())
					continue
				}
				tbl.AddRow(code, locale.Name, strings.Join(locale.MonthsShort, " "))
			}
			_, _ = fmt.Fprintln(out(cmd), tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
