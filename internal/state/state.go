package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/efm/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// AppState is the single source of truth for the browser.
type AppState struct {
	// Navigation & filesystem
	CurrentPath string
	Entries     []FileEntry // listing of CurrentPath, replaced wholesale on path change

	// Selection & viewport
	Viewport Viewport

	// Status line
	StatusMessage string

	// Error state
	LastError error
}

// NewAppState builds the state for path with an already loaded listing,
// sized for a screen of screenW x screenH cells.
func NewAppState(path string, entries []FileEntry, screenW, screenH int) *AppState {
	height, width := ViewportSizeFor(screenW, screenH)
	return &AppState{
		CurrentPath: filepath.Clean(path),
		Entries:     entries,
		Viewport:    NewViewport(height, width, len(entries)),
	}
}

// EntryCount is the number of real entries in the current listing.
func (s *AppState) EntryCount() int {
	return len(s.Entries)
}

// SelectedIndex returns the listing index under the cursor; ok is false for
// an empty listing.
func (s *AppState) SelectedIndex() (int, bool) {
	idx, ok := s.Viewport.SelectedIndex(len(s.Entries))
	if !ok || idx >= len(s.Entries) {
		return 0, false
	}
	return idx, true
}

// CurrentEntry returns the selected entry or nil when nothing is selectable.
func (s *AppState) CurrentEntry() *FileEntry {
	idx, ok := s.SelectedIndex()
	if !ok {
		return nil
	}
	return &s.Entries[idx]
}

// VisibleEntries returns the slice of the listing shown in the viewport.
func (s *AppState) VisibleEntries() []FileEntry {
	start, end := s.Viewport.VisibleRange(len(s.Entries))
	return s.Entries[start:end]
}

// setListing swaps in a new directory and resets the viewport in one step.
func (s *AppState) setListing(path string, entries []FileEntry) {
	s.CurrentPath = filepath.Clean(path)
	s.Entries = entries
	s.Viewport.Reset(len(entries))
}

func (s *AppState) clearStatus() bool {
	if s.StatusMessage == "" && s.LastError == nil {
		return false
	}
	s.StatusMessage = ""
	s.LastError = nil
	return true
}
