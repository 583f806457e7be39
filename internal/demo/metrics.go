package demo

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	tea "github.com/charmbracelet/bubbletea"

	"tuikit/internal/ui"
)

// metricsView feeds a synthetic load metric into a sparkline on every app
// tick. It fills whatever area its tab gives it, minus a caption line.
type metricsView struct {
	chart sparkline.Model
	t     float64
	last  float64
}

var _ ui.View = (*metricsView)(nil)
var _ ui.Sizable = (*metricsView)(nil)

func newMetricsView() *metricsView {
	return &metricsView{chart: sparkline.New(30, 6, sparkline.WithMaxValue(100))}
}

func (m *metricsView) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	height -= 2 // caption and spacing
	if height < 1 {
		height = 1
	}
	m.chart.Resize(width, height)
}

// push appends the next sample: a slow sine with jitter, in percent.
func (m *metricsView) push() {
	m.t += 1.0 / tickHz
	v := 50 + 35*math.Sin(m.t/3) + 8*math.Sin(m.t*5.3)
	if v < 0 {
		v = 0
	}
	m.chart.Push(v)
	m.last = v
}

func (m *metricsView) Init() tea.Cmd { return nil }

func (m *metricsView) Update(tea.Msg) (ui.View, tea.Cmd) { return m, nil }

func (m *metricsView) View() string {
	m.chart.DrawBraille()
	caption := ui.Styles.Muted.Render(fmt.Sprintf("Sweep load: %5.1f%%", m.last))
	return caption + "\n\n" + m.chart.View()
}
