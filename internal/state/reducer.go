package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/efm/internal/fs"
)

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	lister fsutil.Lister
}

// NewStateReducer creates a reducer that relists directories through lister.
func NewStateReducer(lister fsutil.Lister) *StateReducer {
	if lister == nil {
		lister = fsutil.OSLister{}
	}
	return &StateReducer{lister: lister}
}

// Reduce applies an action to state and reports how much of the screen it
// invalidated. A failed relist leaves path, listing and viewport untouched;
// the error is returned and also recorded on state for the status line.
func (r *StateReducer) Reduce(state *AppState, action Action) (Redraw, error) {
	if a, ok := action.(ResizeAction); ok {
		height, width := ViewportSizeFor(a.Width, a.Height)
		state.Viewport.Resize(height, width, state.EntryCount())
		return RedrawFull, nil
	}

	redraw := RedrawNone
	if state.clearStatus() {
		redraw = RedrawFull
	}

	next, err := r.reduceNavigation(state, action)
	return redraw.Merge(next), err
}

func (r *StateReducer) reduceNavigation(state *AppState, action Action) (Redraw, error) {
	count := state.EntryCount()

	switch action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		return state.Viewport.MoveDown(count), nil

	case NavigateUpAction:
		return state.Viewport.MoveUp(), nil

	case JumpTopAction:
		return state.Viewport.JumpTop(count), nil

	case JumpBottomAction:
		return state.Viewport.JumpBottom(count), nil

	case EnterDirectoryAction:
		file := state.CurrentEntry()
		if file == nil || !file.IsDir {
			return RedrawNone, nil
		}
		return r.changeDirectory(state, filepath.Join(state.CurrentPath, file.Name))

	case GoUpAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == state.CurrentPath {
			return RedrawNone, nil // Already at root
		}
		return r.changeDirectory(state, parent)
	}

	return RedrawNone, nil
}

// changeDirectory lists path and, only if that succeeds, makes it current.
func (r *StateReducer) changeDirectory(state *AppState, path string) (Redraw, error) {
	if err := LoadDirectory(state, r.lister, path); err != nil {
		state.StatusMessage = err.Error()
		state.LastError = err
		return RedrawFull, err
	}
	return RedrawFull, nil
}
