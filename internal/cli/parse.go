package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	datepicker "github.com/goliatone/go-datepicker"
)

// ParseOptions
type ParseOptions struct {
	Pattern string
	Strict  bool
	Multi   bool
}

func addParse(topLevel *cobra.Command, ro *RootOptions) {
	po := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Recover dates from text.",
		Long: `Recover dates from text using the date format.

Parsing is lenient unless --strict is given: fields that do not match
default to the current year, January and the first day. A month name the
locale does not know is always an error.`,
		Example: `
datepicker parse "03/05/2024"
datepicker parse "5 marzo 2024" --pattern "d MM yy" --locale es
datepicker parse "03/05/2024, 03/09/2024" --multi
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.Config()
			if err != nil {
				return err
			}

			parser := cfg.Parser()
			parser.Strict = parser.Strict || po.Strict
			pattern := po.Pattern
			if pattern == "" {
				pattern = cfg.DateFormat
			}
			tokens := datepicker.Compile(pattern)
			text := strings.Join(args, " ")

			segments := []string{text}
			if po.Multi {
				segments = parser.SplitMulti(tokens, text, cfg.MultipleSeparator, cfg.RangeSeparator)
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 60
			tbl.AddRow("INPUT", "DATE", "RESOLVED", "UNRESOLVED", "ERROR")

			var failed error
			for _, segment := range segments {
				res := parser.ParseDetailed(tokens, segment)
				date, errText := res.Date.String(), ""
				if res.Err != nil {
					date, errText = "", res.Err.Error()
					failed = errors.Join(failed, res.Err)
				}
				tbl.AddRow(fmt.Sprintf("%q", segment), date,
					strings.Join(res.Resolved, " "), strings.Join(res.Unresolved, " "), errText)
			}
			_, _ = fmt.Fprintln(out(cmd), tbl)

			if failed != nil && (parser.Strict || datepicker.IsNameNotFound(failed)) {
				return failed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&po.Pattern, "pattern", "p", "", "Pattern to use instead of the configured date format.")
	cmd.Flags().BoolVar(&po.Strict, "strict", false, "Fail on unresolved fields and overflowing dates.")
	cmd.Flags().BoolVar(&po.Multi, "multi", false, "Split the text into several dates.")

	topLevel.AddCommand(cmd)
}
