package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/fmm-go/fmm/internal/conf"
	"github.com/fmm-go/fmm/internal/l10n"
	"github.com/fmm-go/fmm/internal/logging"
)

var (
	errColor = color.New(color.FgRed)
	okColor  = color.New(color.FgGreen)
)

const (
	flagConfig       = "config"
	flagConfigDropIn = "config-dropin"
	flagLogLevel     = "log-level"
	flagLogFormat    = "log-format"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errColor.Sprint(err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "fmm-output",
		Usage: l10n.T("load and validate the map matching output configuration"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   l10n.T("read the output configuration from `FILE` (.xml, .toml, .yaml, .ini)"),
			},
			&cli.StringFlag{
				Name:  flagConfigDropIn,
				Usage: l10n.T("apply drop-in documents from `DIR` on top of --config"),
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Value: "INFO",
				Usage: l10n.T("log verbosity: DEBUG, INFO, WARN or ERROR"),
			},
			&cli.StringFlag{
				Name:  flagLogFormat,
				Value: "text",
				Usage: l10n.T("log format: text or json"),
			},
		},
		Before: setupLogging,
		Action: run,
	}
	conf.RegisterFlags(app)

	var help strings.Builder
	conf.RegisterHelp(&help)
	app.CustomAppHelpTemplate = cli.AppHelpTemplate + "\n" + l10n.T("OUTPUT FIELDS") + ":\n" + indent(help.String(), "   ")

	return app
}

func setupLogging(c *cli.Context) error {
	level, err := logging.ParseLevel(c.String(flagLogLevel))
	if err != nil {
		return cli.Exit(err, 2)
	}
	logging.Init(level, c.String(flagLogFormat), c.App.ErrWriter)
	setColor(okColor, c.App.Writer)
	setColor(errColor, c.App.ErrWriter)
	return nil
}

// setColor enables c only when w is a terminal.
func setColor(c *color.Color, w io.Writer) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.EnableColor()
		return
	}
	c.DisableColor()
}

func run(c *cli.Context) error {
	config, err := load(c)
	if err != nil {
		return cli.Exit(errColor.Sprintf(l10n.T("cannot load output configuration: %v"), err), 1)
	}

	if err := config.Validate(); err != nil {
		return cli.Exit(errColor.Sprintf(l10n.T("invalid output configuration: %v"), err), 1)
	}
	slog.Debug("output configuration validated", "config", config)

	config.Print(c.App.Writer)
	fmt.Fprintln(c.App.Writer, okColor.Sprint(l10n.T("output configuration is valid")))
	return nil
}

// load reads the configuration from --config when given and from the
// output options otherwise.
func load(c *cli.Context) (conf.ResultConfig, error) {
	if path := c.String(flagConfig); path != "" {
		cs := &conf.ConfigSource{Path: path, DropInDir: c.String(flagConfigDropIn)}
		return cs.Read()
	}
	return conf.LoadFromArgs(c)
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
