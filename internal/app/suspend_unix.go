//go:build !windows

package app

import (
	"fmt"
	"os"
	"syscall"

	"github.com/kk-code-lab/efm/internal/logging"
)

// contSignals are the signals that mean the process was continued after a
// stop, whoever stopped it.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	if err := app.screen.Suspend(); err != nil {
		logging.Error(fmt.Errorf("suspend terminal: %w", err))
		return
	}
	app.suspended = true
	// Stop only this process; signalling the process group would also stop
	// the shell function that launched efm.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

// resumeAfterStop takes the terminal back after SIGCONT. A continue without
// a prior Ctrl+Z only needs a repaint.
func (app *Application) resumeAfterStop() bool {
	if app.suspended {
		if err := app.screen.Resume(); err != nil {
			logging.Error(fmt.Errorf("resume terminal: %w", err))
			return false
		}
		app.suspended = false
	}
	app.screen.Sync()
	app.pendingResize = true
	logging.Trace("resume")
	return true
}
