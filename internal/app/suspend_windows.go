//go:build windows

package app

import (
	"os"

	"github.com/kk-code-lab/efm/internal/logging"
)

func contSignals() []os.Signal {
	return nil
}

// Windows has no job control; Ctrl+Z is logged and otherwise ignored.
func (app *Application) suspendToShell() {
	logging.Trace("suspend-unsupported")
}

func (app *Application) resumeAfterStop() bool {
	return false
}
