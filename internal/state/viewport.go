package state

// Redraw describes how much of the screen an update invalidated.
type Redraw int

const (
	// RedrawNone means nothing visible changed.
	RedrawNone Redraw = iota
	// RedrawCursor means only the selected row moved within the current page.
	RedrawCursor
	// RedrawFull means the visible slice of the listing changed.
	RedrawFull
)

// Merge returns the larger of two redraw requests.
func (r Redraw) Merge(other Redraw) Redraw {
	if other > r {
		return other
	}
	return r
}

// Viewport is the window over the current listing. CursorRow is 1-based and
// counts rows inside the window; it is 0 only when the listing is empty.
// The selected entry is always derived from CursorRow and ScrollOffset.
type Viewport struct {
	CursorRow    int
	ScrollOffset int
	Height       int
	Width        int
}

// NewViewport creates a viewport positioned on the first of count entries.
func NewViewport(height, width, count int) Viewport {
	v := Viewport{}
	v.setSize(height, width)
	v.Reset(count)
	return v
}

func (v *Viewport) setSize(height, width int) {
	if height < 1 {
		height = 1
	}
	if width < 0 {
		width = 0
	}
	v.Height = height
	v.Width = width
}

// SelectedIndex returns the listing index under the cursor. ok is false when
// the listing is empty and there is nothing to select.
func (v *Viewport) SelectedIndex(count int) (idx int, ok bool) {
	if count <= 0 || v.CursorRow < 1 {
		return 0, false
	}
	return v.ScrollOffset + v.CursorRow - 1, true
}

// MoveDown selects the next entry, scrolling by one row when the cursor is
// already on the bottom row of the window.
func (v *Viewport) MoveDown(count int) Redraw {
	idx, ok := v.SelectedIndex(count)
	if !ok || idx >= count-1 {
		return RedrawNone
	}
	if v.CursorRow < v.Height {
		v.CursorRow++
		return RedrawCursor
	}
	v.ScrollOffset++
	return RedrawFull
}

// MoveUp selects the previous entry, scrolling by one row when the cursor is
// already on the top row of the window.
func (v *Viewport) MoveUp() Redraw {
	switch {
	case v.CursorRow > 1:
		v.CursorRow--
		return RedrawCursor
	case v.CursorRow == 1 && v.ScrollOffset > 0:
		v.ScrollOffset--
		return RedrawFull
	default:
		return RedrawNone
	}
}

// JumpTop selects the first entry.
func (v *Viewport) JumpTop(count int) Redraw {
	if count <= 0 {
		return RedrawNone
	}
	return v.place(0, 1)
}

// JumpBottom selects the last entry and scrolls so it is visible.
func (v *Viewport) JumpBottom(count int) Redraw {
	if count <= 0 {
		return RedrawNone
	}
	if count <= v.Height {
		return v.place(0, count)
	}
	return v.place(count-v.Height, v.Height)
}

func (v *Viewport) place(scroll, row int) Redraw {
	redraw := RedrawNone
	if row != v.CursorRow {
		redraw = RedrawCursor
	}
	if scroll != v.ScrollOffset {
		redraw = RedrawFull
	}
	v.ScrollOffset = scroll
	v.CursorRow = row
	return redraw
}

// Reset positions the viewport on the first entry of a freshly loaded
// listing. Nothing from the previous listing survives.
func (v *Viewport) Reset(count int) {
	v.ScrollOffset = 0
	v.CursorRow = 0
	if count > 0 {
		v.CursorRow = 1
	}
}

// Resize applies new window dimensions and re-clamps the cursor so the
// previously selected entry stays selected and on screen.
func (v *Viewport) Resize(height, width, count int) {
	selected, ok := v.SelectedIndex(count)
	v.setSize(height, width)
	if !ok {
		v.Reset(count)
		return
	}
	if selected >= count {
		selected = count - 1
	}

	scroll := v.ScrollOffset
	maxScroll := count - v.Height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}
	if selected < scroll {
		scroll = selected
	}
	if selected > scroll+v.Height-1 {
		scroll = selected - v.Height + 1
	}

	v.ScrollOffset = scroll
	v.CursorRow = selected - scroll + 1
}

// VisibleRange returns the half-open listing range shown in the window.
func (v *Viewport) VisibleRange(count int) (start, end int) {
	start = v.ScrollOffset
	if start > count {
		start = count
	}
	end = start + v.Height
	if end > count {
		end = count
	}
	return start, end
}
