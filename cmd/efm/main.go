package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/efm/internal/app"
	"github.com/kk-code-lab/efm/internal/config"
	"github.com/kk-code-lab/efm/internal/logging"
	"github.com/kk-code-lab/efm/internal/shellsetup"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Set UTF-8 as fallback encoding so non-ASCII names display correctly
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	cfg, err := config.Load()
	if errors.Is(err, flag.ErrHelp) {
		fmt.Print(config.Usage)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "efm: %v\n\n%s", err, config.Usage)
		return 2
	}

	if cfg.Shell.PrintSetup {
		if err := shellsetup.PrintSetup(os.Stdout, cfg.Shell.Name, shellsetup.Config{}); err != nil {
			fmt.Fprintf(os.Stderr, "efm: %v\n", err)
			return 1
		}
		return 0
	}

	if err := logging.Configure(cfg.Logging.FilePath, cfg.Logging.Trace); err != nil {
		fmt.Fprintf(os.Stderr, "efm: %v\n", err)
		return 1
	}
	defer func() {
		_ = logging.Close()
	}()

	app, err := apppkg.NewApplication()
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		return 1
	}

	app.Run()
	_ = app.Close()

	if err := reportDirectory(os.Stdout, cfg.Shell.ResultFile, app.GetCurrentPath()); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Warning: could not write result file: %v\n", err)
	}
	return 0
}

// reportDirectory hands the directory chosen with x to the shell wrapper,
// or prints it when no result file was given.
func reportDirectory(stdout io.Writer, resultFile, path string) error {
	if path == "" {
		return nil
	}
	if resultFile == "" {
		_, err := fmt.Fprintln(stdout, path)
		return err
	}
	// Owner-only: the wrapper reads it back and deletes it.
	if err := os.WriteFile(resultFile, []byte(path), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", resultFile, err)
	}
	return nil
}
