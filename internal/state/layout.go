package state

const (
	// Smallest terminal that still fits a border, one entry row and the
	// status line. Anything smaller is drawn without the frame.
	minFrameWidth  = 6
	minFrameHeight = 4
)

// Frame describes where the listing and status line sit on a screen of a
// given size.
type Frame struct {
	Framed     bool
	ListX      int
	ListY      int
	ListWidth  int
	ListHeight int
	StatusY    int // -1 when the screen has no room for a status line
}

// FrameFor computes the frame for a screen of w x h cells.
func FrameFor(w, h int) Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	if w >= minFrameWidth && h >= minFrameHeight {
		return Frame{
			Framed:     true,
			ListX:      1,
			ListY:      1,
			ListWidth:  w - 2,
			ListHeight: h - 3,
			StatusY:    h - 1,
		}
	}

	// Degraded single-column layout: every row but the last lists entries.
	f := Frame{
		ListWidth:  w,
		ListHeight: h - 1,
		StatusY:    h - 1,
	}
	if h < 2 {
		f.ListHeight = 1
		f.StatusY = -1
	}
	return f
}

// ViewportSizeFor returns the viewport height and width for a screen size.
func ViewportSizeFor(w, h int) (height, width int) {
	f := FrameFor(w, h)
	return f.ListHeight, f.ListWidth
}
