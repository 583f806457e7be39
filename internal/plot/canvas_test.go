package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_DotPlacement(t *testing.T) {
	// One cell holds a 2x4 dot block. Unit ranges map the virtual square
	// onto it; y grows upward, so (0,0) is the bottom-left dot (dot 7).
	c := NewCanvas(1, 1)
	c.DrawPoint(0, 0)

	grid := c.Grid()
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 1)
	assert.Equal(t, rune(0x2840), grid[0][0].Rune, "bottom-left dot is dot 7")

	c = NewCanvas(1, 1)
	c.DrawPoint(0.99, 0.99)
	assert.Equal(t, rune(0x2808), c.Grid()[0][0].Rune, "top-right dot is dot 4")
}

func TestCanvas_MaxEdgeRendersLastDot(t *testing.T) {
	c := NewCanvas(2, 2)
	c.DrawPoint(1, 1)

	grid := c.Grid()
	assert.Equal(t, rune(0x2808), grid[0][1].Rune, "range-edge point lands on the top-right dot")

	// The clamp also holds when the y range runs downward.
	c = NewCanvas(2, 2)
	c.SetYRange(0, -120)
	c.DrawPoint(1, -120)
	assert.NotEqual(t, rune(0), c.Grid()[0][1].Rune)
}

func TestCanvas_OutOfRangeClipped(t *testing.T) {
	c := NewCanvas(2, 2)
	// Well outside the virtual range; must not panic and must set nothing.
	c.DrawPoint(5, 5)
	c.DrawPoint(-3, 0.5)
	for _, row := range c.Grid() {
		for _, cell := range row {
			assert.Equal(t, rune(0), cell.Rune)
		}
	}
}

func TestCanvas_HorizontalLine(t *testing.T) {
	c := NewCanvas(2, 1)
	c.DrawLine(0, 0, 1, 0)

	grid := c.Grid()
	// Bottom dot row lit across both cells: dots 7 and 8.
	assert.Equal(t, rune(0x28c0), grid[0][0].Rune)
	assert.Equal(t, rune(0x28c0), grid[0][1].Rune)
}

func TestCanvas_VerticalLine(t *testing.T) {
	c := NewCanvas(1, 1)
	c.DrawLine(0, 0, 0, 1)

	// Left column fully lit: dots 1, 2, 3, 7.
	assert.Equal(t, rune(0x2847), c.Grid()[0][0].Rune)
}

func TestCanvas_DiagonalLineMonotonic(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 1, 1)

	// Every dot column along the diagonal should be lit exactly once and
	// the lit row should not decrease left to right.
	lastY := -1
	for x := 0; x < c.cols*2; x++ {
		lit := -1
		for y := 0; y < c.rows*4; y++ {
			if c.dots[y*c.cols*2+x] {
				lit = y
			}
		}
		require.GreaterOrEqual(t, lit, 0, "column %d has no dot", x)
		assert.GreaterOrEqual(t, lit, lastY, "diagonal dips at column %d", x)
		lastY = lit
	}
}

func TestCanvas_SteepLine(t *testing.T) {
	// Steeper than 45 degrees: axis swap path.
	c := NewCanvas(10, 10)
	c.DrawLine(0.4, 0, 0.6, 1)

	count := 0
	for _, d := range c.dots {
		if d {
			count++
		}
	}
	// A steep line must light at least one dot per dot row it crosses.
	assert.GreaterOrEqual(t, count, c.rows*4-1)
}

func TestCanvas_DrawRect(t *testing.T) {
	c := NewCanvas(8, 4)
	c.SetXRange(0, 16)
	c.SetYRange(0, 16)
	c.DrawRect(2, 2, 14, 14)

	// Corners of the rectangle in dot space.
	for _, pt := range [][2]int{{2, 2}, {14, 2}, {2, 14}, {14, 14}} {
		assert.True(t, c.dots[pt[1]*c.cols*2+pt[0]], "corner %v not set", pt)
	}
}

func TestCanvas_DrawCircleSymmetry(t *testing.T) {
	// Equal scales on both axes so the circle is round in dot space.
	c := NewCanvas(16, 8)
	c.SetXRange(0, 32)
	c.SetYRange(0, 32)
	c.DrawCircle(16, 16, 10)

	// Cardinal points: center (16,16), radius 10 -> dots at x 6 and 26 on
	// row 16, and y 6 and 26 on column 16 (y scaled by aspect 1).
	pcx, pcy := c.toDot(16, 16)
	assert.True(t, c.dots[pcy*c.cols*2+(pcx+10)], "east point")
	assert.True(t, c.dots[pcy*c.cols*2+(pcx-10)], "west point")
	assert.True(t, c.dots[(pcy+10)*c.cols*2+pcx], "north point")
	assert.True(t, c.dots[(pcy-10)*c.cols*2+pcx], "south point")
}

func TestCanvas_ColorStack(t *testing.T) {
	c := NewCanvas(2, 1)
	c.PushColor("205")
	c.DrawPoint(0.1, 0.5)
	c.PopColor()
	c.PushColor("86")
	c.DrawPoint(0.9, 0.5)
	c.PopColor()
	// Pop with an empty stack must not panic.
	c.PopColor()

	grid := c.Grid()
	assert.Equal(t, "205", grid[0][0].Color)
	assert.Equal(t, "86", grid[0][1].Color)
}

func TestCanvas_NestedColorStack(t *testing.T) {
	c := NewCanvas(3, 1)
	c.PushColor("1")
	c.DrawPoint(0.1, 0.5)
	c.PushColor("2")
	c.DrawPoint(0.5, 0.5)
	c.PopColor() // back to "1"
	c.DrawPoint(0.9, 0.5)

	grid := c.Grid()
	assert.Equal(t, "1", grid[0][0].Color)
	assert.Equal(t, "2", grid[0][1].Color)
	assert.Equal(t, "1", grid[0][2].Color)
}

func TestRenderGrid_EmptyCellsAreSpaces(t *testing.T) {
	c := NewCanvas(3, 1)
	c.DrawPoint(0.9, 0.5) // rightmost cell only

	lines := c.Render()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "  "), "leading empty cells render as spaces")
	assert.Contains(t, lines[0], string(rune(0x2810)))
}

func TestCanvas_ZeroSize(t *testing.T) {
	c := NewCanvas(0, 0)
	// Must neither panic nor produce rows.
	c.DrawLine(0, 0, 1, 1)
	assert.Empty(t, c.Grid())
	assert.Empty(t, c.Render())
}
