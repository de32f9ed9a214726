package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ListingError reports a directory that could not be enumerated.
type ListingError struct {
	Path string
	Err  error
}

func (e *ListingError) Error() string {
	cause := e.Err
	var pathErr *os.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, cause)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// Lister enumerates the immediate children of a directory.
type Lister interface {
	List(path string) ([]Entry, error)
}

// OSLister reads directories from the host filesystem.
type OSLister struct{}

// List implements Lister.
func (OSLister) List(path string) ([]Entry, error) {
	return List(path)
}

// List returns the children of path in enumeration order, directories first.
// The order within each group is whatever the filesystem yields; it is stable
// for the lifetime of the returned slice because nothing mutates it.
func List(path string) ([]Entry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, &ListingError{Path: path, Err: err}
	}
	defer dir.Close()

	dirents, err := dir.ReadDir(-1)
	if err != nil {
		return nil, &ListingError{Path: path, Err: err}
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			// Removed between enumeration and stat.
			continue
		}

		rawName := d.Name()
		if isProtectedJunction(filepath.Join(path, rawName)) {
			continue
		}
		isDir := d.IsDir()
		isSymlink := info.Mode()&os.ModeSymlink != 0

		// For symlinks, check if target is a directory
		if isSymlink {
			if target, err := os.Stat(filepath.Join(path, rawName)); err == nil {
				isDir = target.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:      rawName,
			IsDir:     isDir,
			IsSymlink: isSymlink,
		})
	}

	return partitionDirsFirst(entries), nil
}

// partitionDirsFirst moves directories ahead of files without reordering
// either group.
func partitionDirsFirst(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir {
			out = append(out, e)
		}
	}
	for _, e := range entries {
		if !e.IsDir {
			out = append(out, e)
		}
	}
	return out
}
