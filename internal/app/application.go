package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/efm/internal/fs"
	"github.com/kk-code-lab/efm/internal/logging"
	statepkg "github.com/kk-code-lab/efm/internal/state"
	inputui "github.com/kk-code-lab/efm/internal/ui/input"
	renderui "github.com/kk-code-lab/efm/internal/ui/render"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when efm has no controlling terminal to draw on.
var ErrNoTerminal = errors.New("efm needs an interactive terminal")

// Application represents the running app.
type Application struct {
	screen        tcell.Screen
	state         *statepkg.AppState
	reducer       *statepkg.StateReducer
	renderer      *renderui.Renderer
	input         *inputui.InputHandler
	actionCh      chan statepkg.Action
	shouldQuit    bool
	pendingResize bool
	suspended     bool
	closed        bool
	currentPath   string
}

// NewApplication opens the terminal and lists the working directory.
func NewApplication() (*Application, error) {
	// tcell talks to the controlling terminal directly, so redirected stdio
	// is fine as long as that device is there.
	if !ttyUsable(controllingTTY) {
		return nil, ErrNoTerminal
	}

	cwd, err := GetCwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return newApplication(screen, fsutil.OSLister{}, cwd)
}

// newApplication lists path while the screen initialises and refuses to
// start if that first listing fails.
func newApplication(screen tcell.Screen, lister fsutil.Lister, path string) (*Application, error) {
	prefetch := statepkg.PrefetchDirectory(lister, path)

	if err := screen.Init(); err != nil {
		_, _ = prefetch.Wait()
		return nil, fmt.Errorf("initialise terminal: %w", err)
	}

	entries, err := prefetch.Wait()
	if err != nil {
		screen.Fini()
		return nil, fmt.Errorf("list %s: %w", prefetch.Path(), err)
	}

	w, h := screen.Size()
	state := statepkg.NewAppState(path, entries, w, h)

	actionCh := make(chan statepkg.Action, 10)
	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(lister),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(actionCh),
		actionCh: actionCh,
	}

	logging.Info("started", "path", state.CurrentPath, "entries", state.EntryCount(), "width", w, "height", h)
	return app, nil
}

// Close restores the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	if app.closed {
		return nil
	}
	app.closed = true
	app.screen.Fini()
	logging.Info("stopped", "path", app.state.CurrentPath)
	return nil
}

// GetCurrentPath returns the directory chosen with x, or "" when the user
// quit without choosing one.
func (app *Application) GetCurrentPath() string {
	return app.currentPath
}

// ttyUsable reports whether path opens as a terminal device.
func ttyUsable(path string) bool {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer f.Close()
	return term.IsTerminal(int(f.Fd()))
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
