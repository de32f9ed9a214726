package state

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireViewportInvariants(t *testing.T, v Viewport, count int) {
	t.Helper()

	require.GreaterOrEqual(t, v.ScrollOffset, 0)
	if count == 0 {
		require.Equal(t, 0, v.CursorRow, "cursor must be hidden for empty listing")
		_, ok := v.SelectedIndex(count)
		require.False(t, ok)
		return
	}

	require.GreaterOrEqual(t, v.CursorRow, 1)
	require.LessOrEqual(t, v.CursorRow, min(v.Height, count))

	idx, ok := v.SelectedIndex(count)
	require.True(t, ok)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, count)
	require.Equal(t, v.ScrollOffset+v.CursorRow-1, idx)
}

func TestViewportRandomWalkKeepsSelectionInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		count := 1 + rng.Intn(40)
		height := 1 + rng.Intn(15)
		v := NewViewport(height, 20, count)
		requireViewportInvariants(t, v, count)

		for step := 0; step < 100; step++ {
			switch rng.Intn(6) {
			case 0, 1:
				v.MoveDown(count)
			case 2, 3:
				v.MoveUp()
			case 4:
				v.JumpBottom(count)
			case 5:
				v.Resize(1+rng.Intn(15), 20, count)
			}
			requireViewportInvariants(t, v, count)
		}
	}
}

func TestViewportMoveUpAtTopIsNoop(t *testing.T) {
	v := NewViewport(5, 20, 10)

	assert.Equal(t, RedrawNone, v.MoveUp())
	assert.Equal(t, Viewport{CursorRow: 1, ScrollOffset: 0, Height: 5, Width: 20}, v)
}

func TestViewportMoveDownAtLastEntryIsNoop(t *testing.T) {
	v := NewViewport(3, 20, 5)
	v.JumpBottom(5)
	before := v

	assert.Equal(t, RedrawNone, v.MoveDown(5))
	assert.Equal(t, before, v)

	idx, ok := v.SelectedIndex(5)
	require.True(t, ok)
	assert.Equal(t, 4, idx)
}

func TestViewportMoveDownWithinPageOnlyMovesCursor(t *testing.T) {
	v := NewViewport(3, 20, 10)

	assert.Equal(t, RedrawCursor, v.MoveDown(10))
	assert.Equal(t, 2, v.CursorRow)
	assert.Equal(t, 0, v.ScrollOffset)
}

func TestViewportMoveDownOnBottomRowScrolls(t *testing.T) {
	v := NewViewport(2, 20, 10)
	v.MoveDown(10)

	assert.Equal(t, RedrawFull, v.MoveDown(10))
	assert.Equal(t, 2, v.CursorRow)
	assert.Equal(t, 1, v.ScrollOffset)

	assert.Equal(t, RedrawCursor, v.MoveUp())
	assert.Equal(t, RedrawFull, v.MoveUp())
	assert.Equal(t, 1, v.CursorRow)
	assert.Equal(t, 0, v.ScrollOffset)
}

func TestViewportMoveDownStopsAtShortListing(t *testing.T) {
	v := NewViewport(10, 20, 3)

	v.MoveDown(3)
	v.MoveDown(3)
	assert.Equal(t, RedrawNone, v.MoveDown(3))
	assert.Equal(t, 3, v.CursorRow)
	assert.Equal(t, 0, v.ScrollOffset)
}

func TestViewportJumpTopBottomTop(t *testing.T) {
	for _, count := range []int{1, 3, 7, 50} {
		v := NewViewport(4, 20, count)
		v.JumpTop(count)
		v.JumpBottom(count)

		idx, ok := v.SelectedIndex(count)
		require.True(t, ok)
		assert.Equal(t, count-1, idx, "bottom selects last entry (count=%d)", count)
		requireViewportInvariants(t, v, count)

		v.JumpTop(count)
		idx, ok = v.SelectedIndex(count)
		require.True(t, ok)
		assert.Equal(t, 0, idx)
		assert.Equal(t, 0, v.ScrollOffset)
	}
}

func TestViewportJumpBottomRedrawKinds(t *testing.T) {
	short := NewViewport(10, 20, 4)
	assert.Equal(t, RedrawCursor, short.JumpBottom(4))
	assert.Equal(t, RedrawNone, short.JumpBottom(4))

	long := NewViewport(3, 20, 10)
	assert.Equal(t, RedrawFull, long.JumpBottom(10))
	assert.Equal(t, 7, long.ScrollOffset)
	assert.Equal(t, 3, long.CursorRow)
	assert.Equal(t, RedrawFull, long.JumpTop(10))
}

func TestViewportResetAlwaysStartsAtFirstEntry(t *testing.T) {
	v := NewViewport(3, 20, 30)
	v.JumpBottom(30)

	v.Reset(12)
	idx, ok := v.SelectedIndex(12)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, v.ScrollOffset)

	v.JumpBottom(12)
	v.Reset(0)
	_, ok = v.SelectedIndex(0)
	assert.False(t, ok)
	assert.Equal(t, 0, v.CursorRow)
	assert.Equal(t, 0, v.ScrollOffset)
}

func TestViewportEmptyListingIgnoresMovement(t *testing.T) {
	v := NewViewport(5, 20, 0)

	assert.Equal(t, RedrawNone, v.MoveDown(0))
	assert.Equal(t, RedrawNone, v.MoveUp())
	assert.Equal(t, RedrawNone, v.JumpTop(0))
	assert.Equal(t, RedrawNone, v.JumpBottom(0))
	requireViewportInvariants(t, v, 0)
}

func TestViewportResizeKeepsSelection(t *testing.T) {
	v := NewViewport(10, 20, 30)
	for i := 0; i < 15; i++ {
		v.MoveDown(30)
	}
	idx, _ := v.SelectedIndex(30)
	require.Equal(t, 15, idx)

	v.Resize(4, 30, 30)
	got, ok := v.SelectedIndex(30)
	require.True(t, ok)
	assert.Equal(t, 15, got)
	assert.Equal(t, 30, v.Width)
	requireViewportInvariants(t, v, 30)

	v.Resize(40, 30, 30)
	got, ok = v.SelectedIndex(30)
	require.True(t, ok)
	assert.Equal(t, 15, got)
	assert.Equal(t, 0, v.ScrollOffset, "a window taller than the listing shows it all")
	assert.Equal(t, 16, v.CursorRow)
}

func TestViewportResizeClampsHeight(t *testing.T) {
	v := NewViewport(0, -4, 3)
	assert.Equal(t, 1, v.Height)
	assert.Equal(t, 0, v.Width)
	requireViewportInvariants(t, v, 3)
}

func TestVisibleRangeClipsToListing(t *testing.T) {
	v := NewViewport(4, 20, 6)
	v.JumpBottom(6)

	start, end := v.VisibleRange(6)
	assert.Equal(t, 2, start)
	assert.Equal(t, 6, end)

	start, end = v.VisibleRange(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestRedrawMerge(t *testing.T) {
	assert.Equal(t, RedrawFull, RedrawCursor.Merge(RedrawFull))
	assert.Equal(t, RedrawCursor, RedrawCursor.Merge(RedrawNone))
	assert.Equal(t, RedrawNone, RedrawNone.Merge(RedrawNone))
}
