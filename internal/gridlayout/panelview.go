package gridlayout

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tuikit/internal/ui"
	"tuikit/internal/ui/textutil"
	"tuikit/internal/widget"
)

// ControlPanelView hosts a Grid of widgets: it fans messages out to them,
// consumes the RowHeightMsg a droplist emits when it expands or collapses,
// and composites the arranged placements into one frame.
type ControlPanelView struct {
	grid   *Grid
	width  int
	height int
}

func NewControlPanelView(grid *Grid) *ControlPanelView {
	return &ControlPanelView{grid: grid}
}

func (v *ControlPanelView) Grid() *Grid { return v.grid }

func (v *ControlPanelView) SetSize(width, height int) {
	v.width, v.height = width, height
}

func (v *ControlPanelView) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, w := range v.grid.Views() {
		if cmd := w.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (v *ControlPanelView) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if rh, ok := msg.(widget.RowHeightMsg); ok {
		// Unknown rows mean the message was meant for another grid.
		_ = v.grid.SetRowHeight(rh.Row, rh.Height)
		return v, nil
	}

	var cmds []tea.Cmd
	for i, it := range v.grid.items {
		view, cmd := it.view.Update(msg)
		v.grid.items[i].view = view
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return v, tea.Batch(cmds...)
}

func (v *ControlPanelView) View() string {
	placements := v.grid.Arrange(v.width, v.height)
	sort.SliceStable(placements, func(i, j int) bool {
		if placements[i].Y != placements[j].Y {
			return placements[i].Y < placements[j].Y
		}
		return placements[i].X < placements[j].X
	})

	lines := make([]string, v.height)
	cols := make([]int, v.height)
	for _, p := range placements {
		if s, ok := p.View.(ui.Sizable); ok {
			s.SetSize(p.Width, p.Height)
		}
		content := p.View.View()
		if content == "" {
			continue
		}
		for i, line := range strings.Split(content, "\n") {
			y := p.Y + i
			if y < 0 || y >= v.height {
				continue
			}
			if pad := p.X - cols[y]; pad > 0 {
				lines[y] += strings.Repeat(" ", pad)
				cols[y] += pad
			}
			lines[y] += line
			cols[y] += textutil.VisualWidthStyled(line)
		}
	}
	return strings.Join(lines, "\n")
}
