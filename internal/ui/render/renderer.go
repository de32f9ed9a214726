package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/efm/internal/state"
	textutil "github.com/kk-code-lab/efm/internal/textutil"
)

const emptyPlaceholder = "(empty)"

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127), stored as width+1
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes

	last drawnFrame
}

// drawnFrame remembers what the last full render put on screen so a
// cursor-only update can restyle just the two affected rows.
type drawnFrame struct {
	valid     bool
	frame     statepkg.Frame
	path      string
	count     int
	scroll    int
	cursorRow int
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Present draws as much as redraw requires.
func (r *Renderer) Present(state *statepkg.AppState, redraw statepkg.Redraw) {
	switch redraw {
	case statepkg.RedrawFull:
		r.Render(state)
	case statepkg.RedrawCursor:
		r.MoveCursor(state)
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	frame := statepkg.FrameFor(w, h)

	if frame.Framed {
		r.drawBorder(w, h)
		r.drawTitle(state.CurrentPath, w)
	}
	r.drawEntries(state, frame)
	r.drawStatusLine(state, frame, w)
	r.placeCursor(state, frame)

	r.last = drawnFrame{
		valid:     true,
		frame:     frame,
		path:      state.CurrentPath,
		count:     state.EntryCount(),
		scroll:    state.Viewport.ScrollOffset,
		cursorRow: state.Viewport.CursorRow,
	}
	r.screen.Show()
}

// MoveCursor moves the selection within the page drawn by the last Render
// and refreshes the status line. Anything else about the frame changing
// falls back to a full render.
func (r *Renderer) MoveCursor(state *statepkg.AppState) {
	w, h := r.screen.Size()
	frame := statepkg.FrameFor(w, h)
	if !r.last.valid ||
		r.last.frame != frame ||
		r.last.path != state.CurrentPath ||
		r.last.count != state.EntryCount() ||
		r.last.scroll != state.Viewport.ScrollOffset {
		r.Render(state)
		return
	}

	rows := r.visibleRows(state, frame)
	r.drawEntryRow(state, frame, rows, r.last.cursorRow-1, false)
	r.drawEntryRow(state, frame, rows, state.Viewport.CursorRow-1, true)
	// key hints depend on the selected entry
	r.drawStatusLine(state, frame, w)
	r.placeCursor(state, frame)

	r.last.cursorRow = state.Viewport.CursorRow
	r.screen.Show()
}

func (r *Renderer) drawBorder(w, h int) {
	style := tcell.StyleDefault.Foreground(r.theme.BorderFg)
	bottom := h - 2
	right := w - 1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// drawTitle writes the current path into the top border.
func (r *Renderer) drawTitle(path string, w int) {
	available := w - 2
	if available <= 2 {
		return
	}
	title := r.fitPathLeft(textutil.DisplayName(path), available-2)
	if title == "" {
		return
	}
	style := tcell.StyleDefault.Foreground(r.theme.TitleFg).Bold(true)
	r.drawTextLine(1, 0, available, " "+title+" ", style)
}

// fitPathLeft trims a path from the left so the most specific components
// stay visible.
func (r *Renderer) fitPathLeft(path string, width int) string {
	if width <= 0 {
		return ""
	}
	if r.measureTextWidth(path) <= width {
		return path
	}

	ellipsisWidth := r.measureTextWidth(ellipsis)
	if width <= ellipsisWidth {
		return ellipsis
	}
	available := width - ellipsisWidth

	runes := []rune(path)
	start := len(runes)
	currentWidth := 0
	for start > 0 {
		w := r.cachedRuneWidth(runes[start-1])
		if currentWidth+w > available {
			break
		}
		currentWidth += w
		start--
	}
	return ellipsis + string(runes[start:])
}

// visibleRows is the part of the listing that fits both the viewport and the
// frame actually on screen.
func (r *Renderer) visibleRows(state *statepkg.AppState, frame statepkg.Frame) []statepkg.FileEntry {
	rows := state.VisibleEntries()
	if len(rows) > frame.ListHeight {
		rows = rows[:frame.ListHeight]
	}
	return rows
}

func (r *Renderer) drawEntries(state *statepkg.AppState, frame statepkg.Frame) {
	if frame.ListWidth <= 0 || frame.ListHeight <= 0 {
		return
	}

	if state.EntryCount() == 0 {
		style := tcell.StyleDefault.Foreground(r.theme.Foreground).Dim(true)
		text := r.truncateTextToWidth(emptyPlaceholder, frame.ListWidth)
		r.drawTextLine(frame.ListX, frame.ListY, frame.ListWidth, text, style)
		return
	}

	rows := r.visibleRows(state, frame)
	for i := range rows {
		r.drawEntryRow(state, frame, rows, i, i == state.Viewport.CursorRow-1)
	}
}

// drawEntryRow paints one row of the visible slice; out-of-range rows are
// ignored.
func (r *Renderer) drawEntryRow(state *statepkg.AppState, frame statepkg.Frame, rows []statepkg.FileEntry, row int, selected bool) {
	if row < 0 || row >= len(rows) {
		return
	}
	entry := rows[row]
	y := frame.ListY + row

	var style tcell.Style
	switch {
	case selected:
		style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	case entry.IsSymlink:
		style = tcell.StyleDefault.Foreground(r.theme.SymlinkFg)
	case entry.IsDir:
		style = tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
	default:
		style = tcell.StyleDefault.Foreground(r.theme.FileFg)
	}

	text := r.truncateTextToWidth(entryLabel(entry), frame.ListWidth)
	endX := r.drawTextLine(frame.ListX, y, frame.ListWidth, text, style)
	r.fillRow(endX, y, frame.ListX+frame.ListWidth, style)
}

// entryLabel is the display form of an entry: directories end in "/",
// symlinks to files in "@".
func entryLabel(entry statepkg.FileEntry) string {
	name := textutil.DisplayName(entry.Name)
	switch {
	case entry.IsDir:
		return name + "/"
	case entry.IsSymlink:
		return name + "@"
	default:
		return name
	}
}

// drawStatusLine renders the error message or the key hints on the last row.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, frame statepkg.Frame, w int) {
	if frame.StatusY < 0 || w <= 0 {
		return
	}

	text := buildFooterHelpText(state)
	style := tcell.StyleDefault.Foreground(r.theme.FooterFg).Dim(true)
	if state.StatusMessage != "" {
		text = " " + textutil.SanitizeTerminalText(state.StatusMessage)
		style = tcell.StyleDefault.Foreground(r.theme.ErrorFg)
	}

	text = r.truncateTextToWidth(text, w)
	endX := r.drawTextLine(0, frame.StatusY, w, text, style)
	r.fillRow(endX, frame.StatusY, w, tcell.StyleDefault)
}

// placeCursor puts the terminal cursor on the selected row, or hides it when
// nothing is selectable.
func (r *Renderer) placeCursor(state *statepkg.AppState, frame statepkg.Frame) {
	row := state.Viewport.CursorRow
	if _, ok := state.SelectedIndex(); !ok || row < 1 || row > frame.ListHeight || frame.ListWidth <= 0 {
		r.screen.HideCursor()
		return
	}
	r.screen.ShowCursor(frame.ListX, frame.ListY+row-1)
}
