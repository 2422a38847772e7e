package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode is the user-facing --color setting.
type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always", "force", "yes":
		return ModeAlways, nil
	case "never", "none", "no":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// Profile is how many colors the terminal can show.
type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

func (p Profile) String() string {
	switch p {
	case ProfileANSI256:
		return "256"
	case ProfileTrueColor:
		return "truecolor"
	default:
		return "basic"
	}
}

func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// DetectMode resolves "auto" against the environment. The first rule that
// matches wins:
//  1. TERM=dumb or a non-empty NO_COLOR turn colors off.
//  2. CLICOLOR=0 turns colors off.
//  3. A non-zero CLICOLOR_FORCE or FORCE_COLOR turns colors on.
//  4. Otherwise colors follow whether stdout is a terminal.
func DetectMode(stdout *os.File, env map[string]string) ColorMode {
	if stdout == nil {
		return ModeNever
	}
	if strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb") {
		return ModeNever
	}
	if strings.TrimSpace(env["NO_COLOR"]) != "" {
		return ModeNever
	}
	if strings.TrimSpace(env["CLICOLOR"]) == "0" {
		return ModeNever
	}
	if forceColor(env["CLICOLOR_FORCE"]) || forceColor(env["FORCE_COLOR"]) {
		return ModeAlways
	}
	if isTerminal(stdout) {
		return ModeAlways
	}
	return ModeNever
}

// Enabled reports whether colors should be emitted for mode. ModeAuto only
// checks whether stdout is a terminal; use Resolve to honour the environment.
func Enabled(mode ColorMode, stdout *os.File) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return isTerminal(stdout)
	}
}

// Resolve combines an explicit mode with environment detection.
func Resolve(mode ColorMode, stdout *os.File, env map[string]string) bool {
	if mode == ModeAuto {
		mode = DetectMode(stdout, env)
	}
	return Enabled(mode, stdout)
}

// DetectProfile picks TrueColor for COLORTERM=truecolor/24bit, ANSI256 for
// *256color terminals and Basic8 for everything else.
func DetectProfile(env map[string]string) Profile {
	colorterm := strings.ToLower(strings.TrimSpace(env["COLORTERM"]))
	for _, marker := range []string{"truecolor", "24bit", "24-bit"} {
		if strings.Contains(colorterm, marker) {
			return ProfileTrueColor
		}
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
