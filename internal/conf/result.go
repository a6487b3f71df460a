package conf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/fmm-go/fmm/internal/l10n"
)

// ResultConfig describes where the map matching result is written and
// which fields it contains. A ResultConfig must pass Validate before it is
// handed to a writer; afterwards it is treated as read-only.
type ResultConfig struct {
	File   string
	Fields OutputFields
}

// Validate checks the configuration and returns every violated rule joined
// into one error. It performs no I/O; whether File is writable is left to
// the writer.
func (c ResultConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.File) == "" {
		errs = append(errs, ErrMissingOutputPath)
	}
	if !c.Fields.Any() {
		errs = append(errs, ErrEmptyFieldSelection)
	}
	if c.Fields.Speed {
		var missing []string
		if !c.Fields.SPDist {
			missing = append(missing, "spdist")
		}
		if !c.Fields.Duration {
			missing = append(missing, "duration")
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Errorf("%w: speed requires %s", ErrUnsatisfiedFieldDependency, strings.Join(missing, " and ")))
		}
	}

	return errors.Join(errs...)
}

// Valid reports whether Validate succeeds, logging each violation.
func (c ResultConfig) Valid() bool {
	err := c.Validate()
	if err == nil {
		return true
	}
	for _, e := range unwrapJoined(err) {
		slog.Error("invalid result configuration", "error", e)
	}
	return false
}

func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// Print writes a human readable summary of the configuration to w.
func (c ResultConfig) Print(w io.Writer) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{l10n.T("Field"), l10n.T("State")})
	for _, name := range FieldNames() {
		on, _ := c.Fields.Enabled(name)
		t.AppendRow(table.Row{name, onOff(on)})
	}

	fmt.Fprintf(w, "%s: %s\n", l10n.T("Output file"), c.File)
	fmt.Fprintln(w, t.Render())
}

// LogValue implements slog.LogValuer.
func (c ResultConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", c.File),
		slog.String("fields", strings.Join(c.Fields.EnabledNames(), ",")),
	)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
