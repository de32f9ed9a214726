package fs

// Entry represents a single child of a directory.
type Entry struct {
	Name      string // raw on-disk name; normalise only for display
	IsDir     bool   // true for directories and symlinks that resolve to one
	IsSymlink bool
}
