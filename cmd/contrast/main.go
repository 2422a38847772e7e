package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/phyten/hsbcontrast/internal/colorutil"
	"github.com/phyten/hsbcontrast/internal/config"
	"github.com/phyten/hsbcontrast/internal/engine"
	engineopts "github.com/phyten/hsbcontrast/internal/engine/opts"
	"github.com/phyten/hsbcontrast/internal/output"
	"github.com/phyten/hsbcontrast/internal/termcolor"
)

const usageText = `contrast: adjust HSB colors until they meet a minimum contrast ratio

Usage:
  contrast ratio FG BG        print the contrast ratio of two colors
  contrast adjust FG [BG]     brighten or darken FG until it reaches --min-ratio against BG
  contrast demo               evaluate the built-in sample pairs
  contrast serve [-p PORT]    serve the JSON API

Colors: stock names (black, white, yellow, purple, ...), "h,s,b[,a]",
hsb(h,s,b), hsba(h,s,b,a) with components in [0,1], pattern:NAME,
or a name from the [palette] section of the config file.

Common flags:
  --min-ratio N    target ratio in [1,21] (default 7)
  --strategy S     legacy|exact (default legacy)
  --clamp          clamp the adjusted color into [0,1]
  -o, --output F   table|tsv|json|csv|md|ndjson (default table)
  --fields LIST    columns for table/tsv/csv/md output
  --width N        truncate table cells to N columns (0 = unlimited)
  --color MODE     auto|always|never (default auto)
  --config PATH    config file (default: .contrast.* upwards, $XDG_CONFIG_HOME/contrast, ~/.contrast.*)
`

func main() {
	log.SetFlags(0)
	env := termcolor.EnvMap(os.Environ())
	if err := run(os.Args[1:], os.Stdout, os.Stderr, env); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer, env map[string]string) error {
	if len(args) == 0 {
		_, _ = io.WriteString(stderr, usageText)
		return errors.New("missing command")
	}
	switch args[0] {
	case "ratio":
		return ratioCmd(args[1:], stdout, stderr, env)
	case "adjust":
		return adjustCmd(args[1:], stdout, stderr, env)
	case "demo":
		return demoCmd(args[1:], stdout, stderr, env)
	case "serve":
		return serveCmd(args[1:], stderr, env)
	case "help", "-h", "--help":
		_, _ = io.WriteString(stdout, usageText)
		return nil
	}
	return fmt.Errorf("unknown command: %s (see contrast help)", args[0])
}

func ratioCmd(args []string, stdout, stderr io.Writer, env map[string]string) error {
	cli, err := parseArgs("ratio", args, stderr)
	if err != nil {
		return err
	}
	if len(cli.positional) != 2 {
		return errors.New("usage: contrast ratio FG BG")
	}
	loaded, err := resolveSettings(cli, env)
	if err != nil {
		return err
	}
	fg, err := colorutil.ParseColor(cli.positional[0], loaded.Settings.Palette)
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := colorutil.ParseColor(cli.positional[1], loaded.Settings.Palette)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	ratio, err := colorutil.ContrastRatio(fg, bg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, output.FormatRatio(ratio))
	return err
}

func adjustCmd(args []string, stdout, stderr io.Writer, env map[string]string) error {
	cli, err := parseArgs("adjust", args, stderr)
	if err != nil {
		return err
	}
	if len(cli.positional) < 1 || len(cli.positional) > 2 {
		return errors.New("usage: contrast adjust FG [BG]")
	}
	loaded, err := resolveSettings(cli, env)
	if err != nil {
		return err
	}
	opts := engine.Options{Foreground: cli.positional[0]}
	if len(cli.positional) == 2 {
		opts.Background = cli.positional[1]
	} else {
		opts.Background = termcolor.DetectScheme(env).DefaultBackground()
	}
	loaded.Settings.ApplyToOptions(&opts)
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		return err
	}
	res, err := engine.Run(opts)
	if err != nil {
		return err
	}
	return printResult(stdout, res, loaded.Settings, cli, env)
}

func demoCmd(args []string, stdout, stderr io.Writer, env map[string]string) error {
	cli, err := parseArgs("demo", args, stderr)
	if err != nil {
		return err
	}
	if len(cli.positional) != 0 {
		return errors.New("usage: contrast demo")
	}
	loaded, err := resolveSettings(cli, env)
	if err != nil {
		return err
	}
	opts := engineopts.Defaults()
	loaded.Settings.ApplyToOptions(&opts)
	res, err := engine.Demo(opts)
	if err != nil {
		return err
	}
	return printResult(stdout, res, loaded.Settings, cli, env)
}

// printResult writes res in the configured format and reports items that
// could not be evaluated as an error so the exit status reflects them.
func printResult(w io.Writer, res *engine.Result, s config.Settings, cli cliConfig, env map[string]string) error {
	sel, err := output.ResolveFields(cli.fields, res.ErrorCount > 0)
	if err != nil {
		return err
	}
	mode, err := termcolor.ParseMode(s.Color)
	if err != nil {
		return err
	}
	table := output.TableOptions{
		Color:    termcolor.Resolve(mode, fileOf(w), env),
		Profile:  termcolor.DetectProfile(env),
		Scheme:   termcolor.DetectScheme(env),
		MaxWidth: cli.width,
	}
	if err := output.Write(w, s.Output, res, sel, table); err != nil {
		return err
	}
	if res.ErrorCount > 0 {
		return fmt.Errorf("%d of %d pair(s) could not be evaluated", res.ErrorCount, res.Total)
	}
	return nil
}

func fileOf(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

type loadedSettings struct {
	Settings config.Settings
	Path     string
	Where    string
}

// resolveSettings layers defaults < config file < CONTRAST_* env < flags.
func resolveSettings(cli cliConfig, env map[string]string) (loadedSettings, error) {
	getenv := func(key string) string { return env[key] }
	explicit := cli.configPath
	if strings.TrimSpace(explicit) == "" {
		explicit = getenv("CONTRAST_CONFIG")
	}
	wd, err := os.Getwd()
	if err != nil {
		return loadedSettings{}, err
	}
	path, where, err := config.Find(wd, explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return loadedSettings{}, err
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return loadedSettings{}, err
	}
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return loadedSettings{}, err
	}
	merged := config.MergeSettings(config.DefaultSettings(), fileCfg, envCfg, cli.layer)
	normalized, err := config.Normalize(merged)
	if err != nil {
		return loadedSettings{}, err
	}
	return loadedSettings{Settings: normalized, Path: path, Where: where}, nil
}
