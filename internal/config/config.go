package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures runtime configuration for the application. The browser
// itself takes no options; everything here is diagnostics or shell wiring.
type Config struct {
	Logging Logging
	Shell   Shell
}

// Shell controls the cd-on-exit integration.
type Shell struct {
	// PrintSetup asks for the wrapper function instead of starting the UI.
	PrintSetup bool
	// Name forces the shell flavour of the wrapper; empty means detect.
	Name string
	// ResultFile receives the directory chosen with x. Empty prints it on
	// stdout instead.
	ResultFile string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envLogFile    = "EFM_LOG_FILE"
	envTrace      = "EFM_TRACE"
	envResultFile = "EFM_RESULT_FILE"
)

// Usage is printed for -h/--help.
const Usage = `efm - terminal directory browser

USAGE:
    efm [OPTIONS]

KEYS:
    j/k, ↓/↑       move selection
    g/G            first/last entry
    h, ←           parent directory
    l, →, Enter    open directory
    q              quit
    x              quit and change the shell to the current directory

OPTIONS:
    -h, --help            Show this help message and exit
    --log-file PATH       Write a JSON log to PATH (env ` + envLogFile + `)
    --trace               Include navigation trace events in the log (env ` + envTrace + `)
    --setup               Print the shell function that follows x on exit
    --shell NAME          Shell flavour for --setup (bash, zsh, fish, pwsh, ...)
    --result-file PATH    Write the directory chosen with x to PATH (env ` + envResultFile + `)
`

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. It returns
// flag.ErrHelp when help was requested.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("efm", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable trace logging")
	setup := fs.Bool("setup", false, "print shell integration")
	shell := fs.String("shell", "", "shell flavour for --setup")
	resultFile := fs.String("result-file", envOrDefault(env, envResultFile, ""), "file receiving the chosen directory")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	return Config{
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Shell: Shell{
			PrintSetup: *setup,
			Name:       strings.TrimSpace(*shell),
			ResultFile: *resultFile,
		},
	}, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}
