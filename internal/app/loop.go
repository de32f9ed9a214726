package app

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/efm/internal/logging"
	statepkg "github.com/kk-code-lab/efm/internal/state"
)

// Run processes events until the user quits.
func (app *Application) Run() {
	app.renderer.Render(app.state)
	redraw := statepkg.RedrawNone

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if app.pendingResize {
			redraw = redraw.Merge(app.applyResize())
		}
		if redraw != statepkg.RedrawNone {
			app.renderer.Present(app.state, redraw)
			redraw = statepkg.RedrawNone
		}

		select {
		case ev := <-eventChan:
			redraw = redraw.Merge(app.handleEvent(ev))
		case action := <-app.actionCh:
			redraw = redraw.Merge(app.handleAction(action))
		case <-sigContCh:
			if app.resumeAfterStop() {
				redraw = statepkg.RedrawFull
			}
		}

		redraw = redraw.Merge(app.processActions())
	}
}

// handleEvent turns terminal events into queued actions. Resizes only mark
// the layout stale; the next loop iteration reads the final size.
func (app *Application) handleEvent(ev tcell.Event) statepkg.Redraw {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		app.pendingResize = true
	}
	return statepkg.RedrawNone
}

func (app *Application) applyResize() statepkg.Redraw {
	app.pendingResize = false
	w, h := app.screen.Size()
	redraw, err := app.reducer.Reduce(app.state, statepkg.ResizeAction{Width: w, Height: h})
	if err != nil {
		logging.Error(err)
	}
	logging.Trace("resize", "width", w, "height", h, "viewport", app.state.Viewport.Height)
	return redraw
}

func (app *Application) processActions() statepkg.Redraw {
	redraw := statepkg.RedrawNone
	for {
		select {
		case action := <-app.actionCh:
			redraw = redraw.Merge(app.handleAction(action))
		default:
			return redraw
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) statepkg.Redraw {
	if action == nil {
		return statepkg.RedrawNone
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return statepkg.RedrawNone
	case statepkg.QuitAndChangeAction:
		app.currentPath = app.state.CurrentPath
		app.shouldQuit = true
		return statepkg.RedrawNone
	case statepkg.SuspendAction:
		app.suspendToShell()
		if app.resumeAfterStop() {
			return statepkg.RedrawFull
		}
		return statepkg.RedrawNone
	}

	before := app.state.CurrentPath
	redraw, err := app.reducer.Reduce(app.state, action)
	if err != nil {
		logging.Error(fmt.Errorf("%T: %w", action, err))
		return redraw
	}
	if app.state.CurrentPath != before {
		logging.Trace("navigate", "from", before, "to", app.state.CurrentPath, "entries", app.state.EntryCount())
	}
	return redraw
}
