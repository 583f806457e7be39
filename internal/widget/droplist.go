package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"tuikit/internal/ui"
	"tuikit/internal/ui/textutil"
)

// Droplist is a single-line selector that expands into a list on click.
// Expansion overdraws the rows below it, so when hosted in a grid the
// droplist emits RowHeightMsg to grow its row and shrink it back on
// collapse. Lists taller than maxHeight scroll with the mouse wheel and
// show "..." continuation rows at the clipped edges.
type Droplist struct {
	name      string
	items     []string
	selected  string
	maxHeight int
	width     int
	row       string // hosting grid row name, set by the host

	expanded bool
	top      int // index of the first visible item
	hoverRow int // 0 is the header line
}

func NewDroplist(name string, items ...string) *Droplist {
	return &Droplist{
		name:      name,
		items:     items,
		maxHeight: 8,
	}
}

func (d *Droplist) Name() string { return d.name }

func (d *Droplist) Selected() string { return d.selected }

func (d *Droplist) Select(item string) { d.selected = item }

func (d *Droplist) SetMaxHeight(h int) { d.maxHeight = h }

func (d *Droplist) SetSize(width, _ int) { d.width = width }

func (d *Droplist) Count() int { return len(d.items) }

func (d *Droplist) Expanded() bool { return d.expanded }

// SetRow records the grid row name used in RowHeightMsg.
func (d *Droplist) SetRow(row string) { d.row = row }

func (d *Droplist) zoneID() string { return "droplist/" + d.name }

func (d *Droplist) expandedHeight() int {
	h := len(d.items) + 1
	if h > d.maxHeight {
		h = d.maxHeight
	}
	return h
}

func (d *Droplist) collapse() tea.Cmd {
	d.expanded = false
	d.hoverRow = 0
	return emit(RowHeightMsg{Row: d.row, Height: 1})
}

func (d *Droplist) Init() tea.Cmd { return nil }

func (d *Droplist) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if d.expanded && key.String() == "esc" {
			// Fold up without touching the selection.
			return d, d.collapse()
		}
		return d, nil
	}
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return d, nil
	}
	z := zone.Get(d.zoneID())
	inBounds := z.InBounds(mouse)

	switch mouse.Action {
	case tea.MouseActionMotion:
		if inBounds {
			_, y := z.Pos(mouse)
			if d.expanded {
				d.hoverRow = y
			} else {
				d.hoverRow = 0
			}
		} else if d.expanded {
			// The pointer left the list, fold it back up.
			return d, d.collapse()
		}

	case tea.MouseActionPress:
		switch mouse.Button {
		case tea.MouseButtonLeft:
			if !inBounds {
				return d, nil
			}
			if !d.expanded {
				d.expanded = true
				d.hoverRow = 0
				return d, emit(RowHeightMsg{Row: d.row, Height: d.expandedHeight()})
			}
			var cmds []tea.Cmd
			if i := d.hoverRow + d.top - 1; d.hoverRow > 0 && i < len(d.items) {
				d.selected = d.items[i]
				cmds = append(cmds, emit(SelectedMsg{Name: d.name, Item: d.selected}))
			}
			cmds = append(cmds, d.collapse())
			return d, tea.Batch(cmds...)

		case tea.MouseButtonWheelUp:
			if d.expanded && d.top < len(d.items)-d.maxHeight {
				d.top++
			}
		case tea.MouseButtonWheelDown:
			if d.expanded && d.top > 0 {
				d.top--
			}
		}
	}
	return d, nil
}

func (d *Droplist) View() string {
	w := d.width
	if w < 4 {
		w = 4
	}
	var b strings.Builder
	b.WriteString(ui.Styles.ListHeader.Render(textutil.PadRightVisual(textutil.Truncate(d.selected, w-2), w-2)))
	b.WriteString("⬇️")

	if d.expanded {
		rows := 1
		for item := 0; item < len(d.items); item++ {
			if item < d.top {
				continue
			}
			cont := (rows+1 == d.maxHeight && item+2 < len(d.items)) ||
				(rows == 1 && d.top != 0)
			text := d.items[item]
			if cont {
				text = "..."
			}
			style := ui.Styles.ListRow
			if d.hoverRow == rows || (d.hoverRow == 0 && !cont && d.items[item] == d.selected) {
				style = ui.Styles.ListRowSel
			}
			b.WriteString("\n")
			b.WriteString(style.Render(textutil.PadRightVisual(textutil.Truncate(text, w-2), w-2)))
			b.WriteString("  ")
			rows++
			if rows >= d.maxHeight {
				break
			}
		}
	}
	return zone.Mark(d.zoneID(), b.String())
}
