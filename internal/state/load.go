package state

import (
	fsutil "github.com/kk-code-lab/efm/internal/fs"
)

// LoadDirectory lists dirPath and installs it as the current directory with
// a fresh viewport. On error state is left exactly as it was.
func LoadDirectory(state *AppState, lister fsutil.Lister, dirPath string) error {
	entries, err := lister.List(dirPath)
	if err != nil {
		return err
	}
	state.setListing(dirPath, entries)
	return nil
}
