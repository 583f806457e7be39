// Package plot renders data as braille dot patterns for terminal display.
//
// A Canvas is a grid of braille cells, each holding a 2x4 block of dots.
// Drawing happens in a virtual coordinate space set by SetXRange/SetYRange,
// with y growing upward; Render converts the dot grid to styled strings.
package plot

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// brailleBase is the first rune of the braille pattern block.
const brailleBase = 0x2800

// dotBits maps a (column, row-within-cell) dot position to its bit in the
// braille pattern. Row 0 is the top dot row of the cell.
var dotBits = [2][4]int{
	{0x01, 0x02, 0x04, 0x40}, // left column: dots 1, 2, 3, 7
	{0x08, 0x10, 0x20, 0x80}, // right column: dots 4, 5, 6, 8
}

// Cell is one rendered character cell: a braille rune and its color.
// A zero rune means the cell is empty (rendered as a space).
type Cell struct {
	Rune  rune
	Color string
}

// Canvas is a braille dot grid with a virtual coordinate transform and a
// drawing color stack.
type Canvas struct {
	cols, rows int
	dots       []bool   // (cols*2) x (rows*4), y=0 is the bottom dot row
	cellColor  []string // per character cell, last color that set a dot in it

	xMin, xMax float64
	yMin, yMax float64

	color      string
	colorStack []string
}

// NewCanvas creates a canvas of cols x rows character cells.
// The virtual ranges default to the unit square.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Canvas{
		cols:      cols,
		rows:      rows,
		dots:      make([]bool, cols*2*rows*4),
		cellColor: make([]string, cols*rows),
		xMin:      0, xMax: 1,
		yMin: 0, yMax: 1,
	}
}

// Cols returns the canvas width in character cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in character cells.
func (c *Canvas) Rows() int { return c.rows }

// SetXRange sets the virtual x extents for drawing.
func (c *Canvas) SetXRange(min, max float64) {
	c.xMin, c.xMax = min, max
}

// SetYRange sets the virtual y extents for drawing.
func (c *Canvas) SetYRange(min, max float64) {
	c.yMin, c.yMax = min, max
}

// PushColor pushes the current drawing color and switches to color.
func (c *Canvas) PushColor(color string) {
	c.colorStack = append(c.colorStack, c.color)
	c.color = color
}

// PopColor restores the previously pushed drawing color.
// Popping an empty stack is a no-op.
func (c *Canvas) PopColor() {
	if len(c.colorStack) == 0 {
		return
	}
	c.color = c.colorStack[len(c.colorStack)-1]
	c.colorStack = c.colorStack[:len(c.colorStack)-1]
}

// xScale returns dots per virtual x unit.
func (c *Canvas) xScale() float64 {
	span := c.xMax - c.xMin
	if span == 0 {
		return 0
	}
	return float64(c.cols*2) / span
}

// yScale returns dots per virtual y unit.
func (c *Canvas) yScale() float64 {
	span := c.yMax - c.yMin
	if span == 0 {
		return 0
	}
	return float64(c.rows*4) / span
}

// set lights the dot at raw dot coordinates (x right, y up from bottom).
// Out-of-range dots are clipped.
func (c *Canvas) set(x, y int) {
	if x < 0 || x >= c.cols*2 || y < 0 || y >= c.rows*4 {
		return
	}
	c.dots[y*c.cols*2+x] = true
	c.cellColor[(y/4)*c.cols+x/2] = c.color
}

// toDot converts virtual coordinates to dot coordinates.
func (c *Canvas) toDot(x, y float64) (int, int) {
	return int((x - c.xMin) * c.xScale()), int((y - c.yMin) * c.yScale())
}

// DrawPoint lights the dot nearest the virtual coordinate. A coordinate on
// the far edge of a range lands on the last dot rather than one past it, so
// Min/Max endpoint samples always render.
func (c *Canvas) DrawPoint(x, y float64) {
	px, py := c.toDot(x, y)
	if px == c.cols*2 {
		px--
	}
	if py == c.rows*4 {
		py--
	}
	c.set(px, py)
}

// DrawLine scan-converts a line between two virtual coordinates using the
// current drawing color. Steep lines swap axes so the error term always
// advances along the longer axis.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	xl, yl := c.toDot(x1, y1)
	xr, yr := c.toDot(x2, y2)

	steep := false
	if abs(xl-xr) < abs(yl-yr) {
		xl, yl = yl, xl
		xr, yr = yr, xr
		steep = true
	}
	if xr < xl {
		xl, xr = xr, xl
		yl, yr = yr, yl
	}

	plot := func(x, y int) {
		if steep {
			c.set(y, x)
		} else {
			c.set(x, y)
		}
	}

	dx := xr - xl
	dy := yr - yl

	if dx == 0 {
		// Single point or vertical run.
		if yr < yl {
			yl, yr = yr, yl
		}
		for y := yl; y <= yr; y++ {
			plot(xl, y)
		}
		return
	}

	derror := math.Abs(float64(dy) / float64(dx))
	err := 0.0
	y := yl
	for x := xl; x <= xr; x++ {
		plot(x, y)
		err += derror
		if err > 0.5 {
			if yr > yl {
				y++
			} else {
				y--
			}
			err -= 1
		}
	}
}

// DrawRect draws the axis-aligned rectangle with the given opposite corners.
func (c *Canvas) DrawRect(x1, y1, x2, y2 float64) {
	c.DrawLine(x1, y1, x2, y1)
	c.DrawLine(x2, y1, x2, y2)
	c.DrawLine(x2, y2, x1, y2)
	c.DrawLine(x1, y2, x1, y1)
}

// DrawCircle draws a circle of virtual radius r around (cx, cy) using the
// midpoint algorithm with eight-way symmetry. The radius is measured on the
// x axis; y offsets are corrected by the axis aspect ratio so the circle
// stays round when the two scales differ.
func (c *Canvas) DrawCircle(cx, cy, r float64) {
	pcx, pcy := c.toDot(cx, cy)
	xs := c.xScale()
	if xs == 0 {
		return
	}
	radius := int(math.Round(r * xs))
	if radius < 0 {
		radius = -radius
	}
	aspect := 1.0
	if ys := c.yScale(); ys != 0 {
		aspect = ys / xs
	}

	scaleY := func(d int) int {
		return int(math.Round(float64(d) * aspect))
	}
	plot8 := func(x, y int) {
		c.set(pcx+x, pcy+scaleY(y))
		c.set(pcx-x, pcy+scaleY(y))
		c.set(pcx+x, pcy-scaleY(y))
		c.set(pcx-x, pcy-scaleY(y))
		c.set(pcx+y, pcy+scaleY(x))
		c.set(pcx-y, pcy+scaleY(x))
		c.set(pcx+y, pcy-scaleY(x))
		c.set(pcx-y, pcy-scaleY(x))
	}

	x, y := radius, 0
	d := 1 - radius
	plot8(x, y)
	for x > y {
		y++
		if d <= 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
		plot8(x, y)
	}
}

// Grid converts the dot grid to rows of braille cells, top row first.
// Empty cells have a zero Rune.
func (c *Canvas) Grid() [][]Cell {
	grid := make([][]Cell, c.rows)
	for cy := 0; cy < c.rows; cy++ {
		row := make([]Cell, c.cols)
		// Dot row at the top of this cell row, counting from the bottom.
		base := (c.rows - 1 - cy) * 4
		for cx := 0; cx < c.cols; cx++ {
			bits := 0
			for col := 0; col < 2; col++ {
				for dr := 0; dr < 4; dr++ {
					// dr 0 is the top dot of the cell; dots index from the bottom.
					if c.dots[(base+3-dr)*c.cols*2+cx*2+col] {
						bits |= dotBits[col][dr]
					}
				}
			}
			if bits != 0 {
				row[cx] = Cell{
					Rune:  rune(brailleBase + bits),
					Color: c.cellColor[(base/4)*c.cols+cx],
				}
			}
		}
		grid[cy] = row
	}
	return grid
}

// Render converts the canvas to one styled string per cell row, top first.
// Runs of cells sharing a color are rendered under a single style.
func (c *Canvas) Render() []string {
	return RenderGrid(c.Grid())
}

// RenderGrid converts rows of cells to styled strings, grouping runs of the
// same color under one lipgloss style.
func RenderGrid(grid [][]Cell) []string {
	lines := make([]string, len(grid))
	for i, row := range grid {
		var out []byte
		run := make([]rune, 0, len(row))
		runColor := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			if runColor != "" {
				s = lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(s)
			}
			out = append(out, s...)
			run = run[:0]
		}
		for _, cell := range row {
			r, color := cell.Rune, cell.Color
			if r == 0 {
				r, color = ' ', runColor
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run = append(run, r)
		}
		flush()
		lines[i] = string(out)
	}
	return lines
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
