package main

import (
	"flag"
	"io"

	"github.com/phyten/hsbcontrast/internal/config"
	engineopts "github.com/phyten/hsbcontrast/internal/engine/opts"
)

type cliConfig struct {
	positional []string
	// layer holds only the flags that were set explicitly.
	layer      config.Config
	configPath string
	fields     string
	width      int

	port      int
	logLevel  string
	logFormat string
}

// parseArgs accepts flags before, between and after positional arguments.
// Everything after "--" is positional.
func parseArgs(name string, args []string, stderr io.Writer) (cliConfig, error) {
	var cli cliConfig
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		minRatio = fs.String("min-ratio", "", "target contrast ratio in [1,21]")
		strategy = fs.String("strategy", "", "legacy|exact")
		clamp    = fs.Bool("clamp", false, "clamp the adjusted color into [0,1]")
		out      = fs.String("output", "", "table|tsv|json|csv|md|ndjson")
		color    = fs.String("color", "", "auto|always|never")
	)
	fs.StringVar(out, "o", "", "alias of --output")
	fs.StringVar(&cli.configPath, "config", "", "config file path")
	fs.StringVar(&cli.fields, "fields", "", "comma separated output columns")
	fs.IntVar(&cli.width, "width", 0, "truncate table cells to N columns (0=unlimited)")
	if name == "serve" {
		fs.IntVar(&cli.port, "p", 8080, "port")
		fs.IntVar(&cli.port, "port", 8080, "port")
		fs.StringVar(&cli.logLevel, "log-level", "info", "debug|info|warn|error")
		fs.StringVar(&cli.logFormat, "log-format", "json", "json|console")
	}

	rest := args
	for len(rest) > 0 {
		if err := fs.Parse(rest); err != nil {
			return cli, err
		}
		consumed := len(rest) - len(fs.Args())
		afterDash := consumed > 0 && rest[consumed-1] == "--"
		rest = fs.Args()
		if afterDash {
			cli.positional = append(cli.positional, rest...)
			break
		}
		if len(rest) == 0 {
			break
		}
		cli.positional = append(cli.positional, rest[0])
		rest = rest[1:]
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min-ratio":
			v, err := engineopts.ParseMinRatio(*minRatio, "--min-ratio")
			if err != nil {
				parseErr = err
				return
			}
			cli.layer.Contrast.MinRatio = &v
		case "strategy":
			cli.layer.Contrast.Strategy = strategy
		case "clamp":
			cli.layer.Contrast.Clamp = clamp
		case "output", "o":
			cli.layer.Contrast.Output = out
		case "color":
			cli.layer.Contrast.Color = color
		}
	})
	return cli, parseErr
}
