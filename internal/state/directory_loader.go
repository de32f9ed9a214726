package state

import (
	fsutil "github.com/kk-code-lab/efm/internal/fs"
	"golang.org/x/sync/errgroup"
)

// DirectoryPrefetch is a listing running on a worker goroutine. It exists
// for the startup read, which can overlap terminal initialisation; every
// later read happens synchronously inside the reducer.
type DirectoryPrefetch struct {
	group   errgroup.Group
	path    string
	entries []FileEntry
}

// PrefetchDirectory starts listing path in the background.
func PrefetchDirectory(lister fsutil.Lister, path string) *DirectoryPrefetch {
	p := &DirectoryPrefetch{path: path}
	p.group.Go(func() error {
		entries, err := lister.List(path)
		if err != nil {
			return err
		}
		p.entries = entries
		return nil
	})
	return p
}

// Wait blocks until the listing finishes. The entries are only read after
// the worker has exited, so no state is shared while it runs.
func (p *DirectoryPrefetch) Wait() ([]FileEntry, error) {
	if err := p.group.Wait(); err != nil {
		return nil, err
	}
	return p.entries, nil
}

// Path returns the directory being listed.
func (p *DirectoryPrefetch) Path() string {
	return p.path
}
