package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	datepicker "github.com/goliatone/go-datepicker"
)

// FormatOptions
type FormatOptions struct {
	Pattern  string
	Template string
}

func addFormat(topLevel *cobra.Command, ro *RootOptions) {
	fo := &FormatOptions{}

	cmd := &cobra.Command{
		Use:   "format [iso-date]...",
		Short: "Render ISO dates with a date pattern.",
		Example: `
datepicker format 2024-03-05
datepicker format 2024-03-05 --pattern "DD, d MM yy" --locale es
datepicker format 2024-03-05 --template '{{format_date .Date "M d"}} / {{format_iso .Date}}'
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.Config()
			if err != nil {
				return err
			}
			dates, err := parseDateArgs(args)
			if err != nil {
				return err
			}

			if fo.Template != "" {
				tmpl, err := template.New("format").
					Funcs(datepicker.TemplateHelpers(cfg, datepicker.HelperConfig{})).
					Parse(fo.Template)
				if err != nil {
					return err
				}
				for _, d := range dates {
					var b strings.Builder
					if err := tmpl.Execute(&b, map[string]any{"Date": d, "Locale": cfg.LocaleCode}); err != nil {
						return err
					}
					_, _ = fmt.Fprintln(out(cmd), b.String())
				}
				return nil
			}

			pattern := fo.Pattern
			if pattern == "" {
				pattern = cfg.DateFormat
			}
			formatter := cfg.Formatter()
			for _, d := range dates {
				_, _ = fmt.Fprintln(out(cmd), formatter.FormatPattern(pattern, d))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fo.Pattern, "pattern", "p", "", "Pattern to use instead of the configured date format.")
	cmd.Flags().StringVarP(&fo.Template, "template", "t", "", "Go template evaluated per date, with .Date and the date helpers.")

	topLevel.AddCommand(cmd)
}

func addTokens(topLevel *cobra.Command, ro *RootOptions) {
	cmd := &cobra.Command{
		Use:   "tokens [pattern]",
		Short: "Show how a pattern compiles.",
		Example: `
datepicker tokens "dd [de] MM yy"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			} else {
				cfg, err := ro.Config()
				if err != nil {
					return err
				}
				pattern = cfg.DateFormat
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("#", "KIND", "VALUE")
			for i, token := range datepicker.Compile(pattern) {
				kind := "code"
				if token.IsLiteral() {
					kind = "literal"
				}
				tbl.AddRow(i, kind, fmt.Sprintf("%q", token.Value))
			}
			_, _ = fmt.Fprintln(out(cmd), tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
