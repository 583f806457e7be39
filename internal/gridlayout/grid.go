package gridlayout

import (
	"fmt"
	"sort"
	"strings"

	"tuikit/internal/ui"
)

// Placement is a view positioned by Arrange, in cells relative to the grid
// origin. Row carries the row track's name for auto-placed views, so widgets
// that grow (droplists) can address their row in a RowHeightMsg.
type Placement struct {
	View   ui.View
	X, Y   int
	Width  int
	Height int
	Row    string
}

// RowAware is implemented by widgets that need to know which grid row they
// were placed into.
type RowAware interface {
	SetRow(name string)
}

type spanArea struct {
	colStart, colEnd string
	rowStart, rowEnd string
}

type gridItem struct {
	view ui.View
	area string // named span, "" for auto placement
}

// Grid is a constrained two dimensional layout. Columns and rows are named
// tracks; views are either auto-placed row-major into free slots or pinned
// to a named span. Spacer rows leave visual gaps that auto placement skips,
// and with row repeat the row tracks cycle to fill the height.
type Grid struct {
	columns []Track
	rows    []Track

	rowRepeat            bool
	colGap, rowGap       int
	colGutter, rowGutter int

	spacerCount int
	spans       map[string]spanArea
	spanNames   []string
	items       []gridItem
}

func New() *Grid {
	return &Grid{spans: make(map[string]spanArea)}
}

// RowOption adjusts a row as it is added.
type RowOption func(g *Grid, t Track)

// Repeat registers the row n times, the instances renamed name-1..name-n so
// each stays addressable by SetRowHeight and RowHeightMsg.
func Repeat(n int) RowOption {
	return func(g *Grid, t Track) {
		if n < 2 {
			return
		}
		for i := len(g.rows) - 1; i >= 0; i-- {
			if g.rows[i].Name == t.Name {
				g.rows[i].Name = t.Name + "-1"
				break
			}
		}
		for i := 2; i <= n; i++ {
			inst := t
			inst.Name = fmt.Sprintf("%s-%d", t.Name, i)
			g.rows = append(g.rows, inst)
		}
	}
}

// WithSpacer inserts a fixed spacer row after the row being added. Spacer
// rows never receive auto-placed views.
func WithSpacer(height int) RowOption {
	return func(g *Grid, t Track) {
		g.rows = append(g.rows, Track{
			Name: fmt.Sprintf("spacer%d", g.spacerCount),
			Size: height,
		})
		g.spacerCount++
	}
}

// WithSpan makes views auto-placed into this row span the named columns,
// given as "first|last".
func WithSpan(cols string) RowOption {
	return func(g *Grid, t Track) {
		first, last, ok := strings.Cut(cols, "|")
		if !ok {
			return
		}
		g.addSpan(t.Name, spanArea{
			colStart: first + "-start",
			colEnd:   last + "-end",
			rowStart: t.Name + "-start",
			rowEnd:   t.Name + "-end",
		})
	}
}

func (g *Grid) AddColumn(t Track) {
	g.columns = append(g.columns, t)
}

func (g *Grid) AddRow(t Track, opts ...RowOption) {
	g.rows = append(g.rows, t)
	for _, opt := range opts {
		opt(g, t)
	}
}

// SetRowRepeat makes the row tracks cycle to fill the grid height.
func (g *Grid) SetRowRepeat(repeat bool) { g.rowRepeat = repeat }

// SetGap sets the cells left between columns and between rows.
func (g *Grid) SetGap(col, row int) { g.colGap, g.rowGap = col, row }

// SetGutter sets the cells left around the grid edge.
func (g *Grid) SetGutter(col, row int) { g.colGutter, g.rowGutter = col, row }

// AddSpan defines a named rectangular area, spec "colA|colB,row" or
// "col,rowA|rowB". Views pinned to it with PlaceAt cover the whole area.
func (g *Grid) AddSpan(name, spec string) {
	spec = strings.ReplaceAll(spec, " ", "")
	colPart, rowPart, _ := strings.Cut(spec, ",")

	a := spanArea{}
	if first, last, ok := strings.Cut(colPart, "|"); ok {
		a.colStart, a.colEnd = first+"-start", last+"-end"
	} else {
		a.colStart, a.colEnd = colPart+"-start", colPart+"-end"
	}
	if first, last, ok := strings.Cut(rowPart, "|"); ok {
		a.rowStart, a.rowEnd = first+"-start", last+"-end"
	} else {
		a.rowStart, a.rowEnd = rowPart+"-start", rowPart+"-end"
	}
	g.addSpan(name, a)
}

func (g *Grid) addSpan(name string, a spanArea) {
	if _, exists := g.spans[name]; !exists {
		g.spanNames = append(g.spanNames, name)
	}
	g.spans[name] = a
}

// Place queues a view for auto placement into the next free slot, row-major.
func (g *Grid) Place(v ui.View) {
	g.items = append(g.items, gridItem{view: v})
}

// PlaceAt pins a view to a named span.
func (g *Grid) PlaceAt(v ui.View, span string) {
	g.items = append(g.items, gridItem{view: v, area: span})
}

// Views returns every placed view in placement order.
func (g *Grid) Views() []ui.View {
	views := make([]ui.View, len(g.items))
	for i, it := range g.items {
		views[i] = it.view
	}
	return views
}

// SetRowHeight fixes a named row to the given height. Droplist expansion
// goes through here via RowHeightMsg.
func (g *Grid) SetRowHeight(name string, height int) error {
	for i := range g.rows {
		if g.rows[i].Name == name {
			g.rows[i].Size = height
			g.rows[i].Max = height
			return nil
		}
	}
	return fmt.Errorf("row %q not in grid", name)
}

// SetRowMaxHeight caps a named row.
func (g *Grid) SetRowMaxHeight(name string, maxHeight int) error {
	for i := range g.rows {
		if g.rows[i].Name == name {
			g.rows[i].Max = maxHeight
			return nil
		}
	}
	return fmt.Errorf("row %q not in grid", name)
}

type boundary struct {
	index int // track instance index
	pos   int // cell offset
}

// boundsMap names each instance edge. With repeat the instances of a track
// are numbered name-1, name-2, and so on.
func boundsMap(tracks []Track, spans []trackSpan, repeat bool) map[string]boundary {
	m := make(map[string]boundary, len(spans)*2)
	counts := make(map[int]int)
	for i, s := range spans {
		name := tracks[s.track].Name
		if repeat {
			counts[s.track]++
			name = fmt.Sprintf("%s-%d", name, counts[s.track])
		}
		m[name+"-start"] = boundary{index: i, pos: s.start}
		m[name+"-end"] = boundary{index: i, pos: s.end}
	}
	return m
}

// Arrange resolves the tracks for the given size and places every view.
// Named spans are placed first; the remaining views fill free, non-spacer
// slots row-major. An auto view landing on a span's anchor slot stretches to
// the span's end column.
func (g *Grid) Arrange(width, height int) []Placement {
	colSpans := resolveSpans(g.columns, width-2*g.colGutter, g.colGap, false)
	rowSpans := resolveSpans(g.rows, height-2*g.rowGutter, g.rowGap, g.rowRepeat)
	colBounds := boundsMap(g.columns, colSpans, false)
	rowBounds := boundsMap(g.rows, rowSpans, g.rowRepeat)

	free := make(map[[2]int]bool, len(colSpans)*len(rowSpans))
	for c := range colSpans {
		for r := range rowSpans {
			free[[2]int{c, r}] = true
		}
	}

	var placements []Placement

	// Pinned views first.
	for _, it := range g.items {
		if it.area == "" {
			continue
		}
		a, ok := g.spans[it.area]
		if !ok {
			continue
		}
		c1, ok1 := colBounds[a.colStart]
		c2, ok2 := colBounds[a.colEnd]
		r1, ok3 := rowBounds[a.rowStart]
		r2, ok4 := rowBounds[a.rowEnd]
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		for c := c1.index; c <= c2.index; c++ {
			for r := r1.index; r <= r2.index; r++ {
				delete(free, [2]int{c, r})
			}
		}
		placements = append(placements, Placement{
			View:   it.view,
			X:      c1.pos + g.colGutter,
			Y:      r1.pos + g.rowGutter,
			Width:  c2.pos - c1.pos,
			Height: r2.pos - r1.pos,
		})
	}

	// Reserve span-covered slots; the anchor slot stays free and stretches.
	spanEnds := make(map[[2]int]string)
	for _, name := range g.spanNames {
		a := g.spans[name]
		c1, ok1 := colBounds[a.colStart]
		c2, ok2 := colBounds[a.colEnd]
		r1, ok3 := rowBounds[a.rowStart]
		r2, ok4 := rowBounds[a.rowEnd]
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		spanEnds[[2]int{c1.index, r1.index}] = a.colEnd
		for c := c1.index + 1; c <= c2.index; c++ {
			for r := r1.index; r <= r2.index; r++ {
				delete(free, [2]int{c, r})
			}
		}
	}

	var slots [][2]int
	for slot := range free {
		if strings.HasPrefix(g.rows[rowSpans[slot[1]].track].Name, "spacer") {
			continue
		}
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i][1] != slots[j][1] {
			return slots[i][1] < slots[j][1]
		}
		return slots[i][0] < slots[j][0]
	})

	slot := 0
	for _, it := range g.items {
		if it.area != "" {
			continue
		}
		if slot >= len(slots) {
			break
		}
		col, row := slots[slot][0], slots[slot][1]
		slot++

		x1, x2 := colSpans[col].start, colSpans[col].end
		y1, y2 := rowSpans[row].start, rowSpans[row].end
		if end, ok := spanEnds[[2]int{col, row}]; ok {
			x2 = colBounds[end].pos
		}

		rowName := g.rows[rowSpans[row].track].Name
		if ra, ok := it.view.(RowAware); ok {
			ra.SetRow(rowName)
		}
		placements = append(placements, Placement{
			View:   it.view,
			X:      x1 + g.colGutter,
			Y:      y1 + g.rowGutter,
			Width:  x2 - x1,
			Height: y2 - y1,
			Row:    rowName,
		})
	}
	return placements
}
