package conf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/fmm-go/fmm/internal/l10n"
)

// Command line option names.
const (
	FlagOutput       = "output"
	FlagOutputFields = "output_fields"
)

// Flags returns new instances of the output options understood by
// LoadFromArgs.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagOutput,
			Aliases: []string{"o"},
			Usage:   l10n.T("write the match result to `FILE` (required)"),
			EnvVars: []string{"FMM_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    FlagOutputFields,
			Usage:   l10n.T("comma separated list of output `FIELDS`"),
			Value:   DefaultFieldList(),
			EnvVars: []string{"FMM_OUTPUT_FIELDS"},
		},
	}
}

// RegisterFlags appends the output options to app.
func RegisterFlags(app *cli.App) {
	app.Flags = append(app.Flags, Flags()...)
}

// RegisterHelp writes the description of the output options and of the
// field catalogue to w.
func RegisterHelp(w io.Writer) {
	fmt.Fprintf(w, "--%s (%s) <string>: %s\n", FlagOutput, l10n.T("required"), l10n.T("Output file name"))
	fmt.Fprintf(w, "--%s (%s) <string>: %s\n", FlagOutputFields, l10n.T("optional"), l10n.T("Output fields"))
	fmt.Fprintf(w, "  %s\n", strings.Join(append(FieldNames(), AllFields), ","))

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{l10n.T("Field"), l10n.T("Default"), l10n.T("Description")})
	for _, entry := range catalogue {
		t.AppendRow(table.Row{entry.name, onOff(entry.on), l10n.T(entry.description)})
	}
	t.AppendRow(table.Row{AllFields, "", l10n.T("enable every field")})
	fmt.Fprintln(w, t.Render())
}

// LoadFromArgs builds a ResultConfig from parsed command line options. The
// output option must be present; an explicitly empty value is reported by
// Validate.
func LoadFromArgs(c *cli.Context) (ResultConfig, error) {
	if !c.IsSet(FlagOutput) {
		return ResultConfig{}, fmt.Errorf("%w: --%s is not set", ErrMalformedSource, FlagOutput)
	}
	return newResultConfig(c.String(FlagOutput), c.String(FlagOutputFields))
}
