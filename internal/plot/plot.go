package plot

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/ui"
	"tuikit/internal/ui/textutil"
)

// Axis describes tick generation for one plot edge.
// Divisions is the number of tick labels; values run from Min to Max, so for
// the y axis Min is the value rendered at the top.
type Axis struct {
	Min       float64
	Max       float64
	Divisions int
	Format    string // fmt verb for tick labels, e.g. "%.1f"
}

// labels returns the formatted tick labels and the widest label width.
func (a Axis) labels() ([]string, int) {
	div := a.Divisions
	if div < 2 {
		div = 2
	}
	format := a.Format
	if format == "" {
		format = "%.1f"
	}
	out := make([]string, div)
	widest := 0
	for i := 0; i < div; i++ {
		ratio := float64(i) / float64(div-1)
		out[i] = fmt.Sprintf(format, a.Min+ratio*(a.Max-a.Min))
		if len(out[i]) > widest {
			widest = len(out[i])
		}
	}
	return out, widest
}

// Annotation is styled text stamped over the canvas at a virtual coordinate.
type Annotation struct {
	X, Y  float64
	Text  string
	Color string
}

// Plot is a braille plotting widget. The embedding code supplies DrawFunc,
// which is called with a fresh canvas on every render; axes, labels, a
// border title and annotations are composed around the canvas.
type Plot struct {
	DrawFunc func(*Canvas)

	width, height int
	border        bool

	xMin, xMax float64
	yMin, yMax float64

	title  string
	xLabel string
	yLabel string
	xAxis  *Axis
	yAxis  *Axis

	annotations []Annotation

	// Colors for the decorations; empty means unstyled.
	TitleColor  string
	XLabelColor string
	YLabelColor string
	AxisColor   string
	BorderStyle lipgloss.Style
}

var _ ui.View = (*Plot)(nil)
var _ ui.Sizable = (*Plot)(nil)

// New creates a bordered plot with unit virtual ranges.
func New() *Plot {
	return &Plot{
		border: true,
		xMin:   0, xMax: 1,
		yMin: 0, yMax: 1,
		BorderStyle: ui.Styles.Box,
	}
}

// SetBorder toggles the surrounding box.
func (p *Plot) SetBorder(on bool) { p.border = on }

// SetTitle sets the text spliced into the top border.
func (p *Plot) SetTitle(title string) { p.title = title }

// SetXRange sets the virtual x extents applied to the canvas each render.
func (p *Plot) SetXRange(min, max float64) { p.xMin, p.xMax = min, max }

// SetYRange sets the virtual y extents applied to the canvas each render.
func (p *Plot) SetYRange(min, max float64) { p.yMin, p.yMax = min, max }

// SetXLabel sets the centered caption under the x axis.
func (p *Plot) SetXLabel(label string) { p.xLabel = label }

// SetYLabel sets the vertical caption left of the y axis.
func (p *Plot) SetYLabel(label string) { p.yLabel = label }

// SetXAxis enables the x axis rule and tick labels.
func (p *Plot) SetXAxis(a Axis) { p.xAxis = &a }

// SetYAxis enables the y axis rail and tick labels.
func (p *Plot) SetYAxis(a Axis) { p.yAxis = &a }

// AddAnnotation stamps styled text at a virtual coordinate on every render.
func (p *Plot) AddAnnotation(x, y float64, text, color string) {
	p.annotations = append(p.annotations, Annotation{X: x, Y: y, Text: text, Color: color})
}

// ClearAnnotations removes all annotations.
func (p *Plot) ClearAnnotations() { p.annotations = nil }

// SetSize sets the widget's outer cell dimensions.
func (p *Plot) SetSize(width, height int) {
	p.width, p.height = width, height
}

// Init implements ui.View.
func (p *Plot) Init() tea.Cmd { return nil }

// Update implements ui.View. Plots are passive; owners drive animation by
// mutating state and re-rendering.
func (p *Plot) Update(tea.Msg) (ui.View, tea.Cmd) { return p, nil }

// plotArea returns the canvas dimensions in cells after reserving space for
// the border, padding, axes and labels.
func (p *Plot) plotArea(yAxisWidth int) (cols, rows int) {
	cols = p.width
	rows = p.height
	if p.border {
		cols -= 4 // border plus one cell padding each side
		rows -= 2
	}
	if p.yLabel != "" {
		cols -= 2
	}
	if p.yAxis != nil {
		cols -= yAxisWidth + 1 // tick labels plus rail
	}
	if p.xAxis != nil {
		rows -= 2 // rule plus tick labels
	}
	if p.xLabel != "" {
		rows--
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols, rows
}

func (p *Plot) styledTitle() string {
	if p.title == "" || p.TitleColor == "" {
		return p.title
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.TitleColor)).Render(p.title)
}

// View implements ui.View.
func (p *Plot) View() string {
	var yTicks []string
	yAxisWidth := 0
	if p.yAxis != nil {
		yTicks, yAxisWidth = p.yAxis.labels()
	}

	cols, rows := p.plotArea(yAxisWidth)
	if cols == 0 || rows == 0 {
		if p.border {
			return ui.TitledBox("", p.styledTitle(), lipgloss.RoundedBorder(), p.BorderStyle, p.width, p.height)
		}
		return ""
	}

	canvas := NewCanvas(cols, rows)
	canvas.SetXRange(p.xMin, p.xMax)
	canvas.SetYRange(p.yMin, p.yMax)
	if p.DrawFunc != nil {
		p.DrawFunc(canvas)
	}

	grid := canvas.Grid()
	p.stampAnnotations(canvas, grid)
	lines := RenderGrid(grid)

	lines = p.attachYAxis(lines, yTicks, yAxisWidth, rows)
	lines = p.attachYLabel(lines)
	lines = append(lines, p.xAxisLines(cols, yAxisWidth, yTicks)...)

	content := strings.Join(lines, "\n")
	if p.border {
		return ui.TitledBox(pad(content), p.styledTitle(), lipgloss.RoundedBorder(), p.BorderStyle, p.width, p.height)
	}
	return content
}

// pad indents every line by the one-cell border padding.
func pad(content string) string {
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = " " + lines[i]
	}
	return strings.Join(lines, "\n")
}

// stampAnnotations writes annotation text into the cell grid, one rune per
// cell, using the annotation's color.
func (p *Plot) stampAnnotations(c *Canvas, grid [][]Cell) {
	for _, a := range p.annotations {
		px, py := c.toDot(a.X, a.Y)
		col := px / 2
		row := c.rows - 1 - py/4
		if row < 0 || row >= len(grid) {
			continue
		}
		for i, r := range []rune(a.Text) {
			if col+i < 0 || col+i >= len(grid[row]) {
				break
			}
			grid[row][col+i] = Cell{Rune: r, Color: a.Color}
		}
	}
}

// attachYAxis prefixes each line with right-aligned tick labels and the rail.
// With an x axis the final tick value is held back for the corner where the
// rail meets the rule; without one it lands on the bottom canvas row.
func (p *Plot) attachYAxis(lines []string, ticks []string, width, rows int) []string {
	if p.yAxis == nil {
		return lines
	}
	axisStyle := p.axisStyle()
	tickAt := make(map[int]string)
	for i, t := range ticks {
		row := i * rows / (len(ticks) - 1)
		if row >= rows {
			if p.xAxis != nil {
				continue // rendered at the x-axis corner instead
			}
			row = rows - 1
		}
		tickAt[row] = t
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if t, ok := tickAt[i]; ok {
			out[i] = axisStyle.Render(textutil.PadLeftVisual(t, width)+"├") + l
		} else {
			out[i] = axisStyle.Render(strings.Repeat(" ", width)+"│") + l
		}
	}
	return out
}

// attachYLabel prefixes each line with one character of the vertical label.
func (p *Plot) attachYLabel(lines []string) []string {
	if p.yLabel == "" {
		return lines
	}
	style := lipgloss.NewStyle()
	if p.YLabelColor != "" {
		style = style.Foreground(lipgloss.Color(p.YLabelColor))
	}
	chars := []rune(textutil.CenterVisual(p.yLabel, len(lines)))
	out := make([]string, len(lines))
	for i, l := range lines {
		ch := " "
		if i < len(chars) {
			ch = string(chars[i])
		}
		out[i] = style.Render(ch) + " " + l
	}
	return out
}

// xAxisLines renders the rule, the tick label line and the x caption.
func (p *Plot) xAxisLines(cols, yAxisWidth int, yTicks []string) []string {
	var out []string
	indent := 0
	if p.yLabel != "" {
		indent += 2
	}

	// With a y axis the rule gains a corner under the rail and one cell of
	// overhang on the right; without one it sits flush under the canvas.
	ruleW := cols
	if p.yAxis != nil {
		ruleW = cols + 2
	}
	if p.xAxis != nil && ruleW >= 2 {
		axisStyle := p.axisStyle()
		ticks, _ := p.xAxis.labels()
		centers := make([]int, len(ticks))
		for i := range ticks {
			centers[i] = i * (ruleW - 1) / (len(ticks) - 1)
		}

		rule := []rune("└" + strings.Repeat("─", ruleW-2) + "┘")
		for i := 1; i < len(centers)-1; i++ {
			rule[centers[i]] = '┴'
		}
		corner := ""
		if p.yAxis != nil {
			// The last y tick lands on the rule's corner.
			corner = textutil.PadLeftVisual(yTicks[len(yTicks)-1], yAxisWidth)
		}
		out = append(out, strings.Repeat(" ", indent)+axisStyle.Render(corner+string(rule)))

		// Tick labels: first flush left, the rest centered on their tick.
		labelLine := []rune(strings.Repeat(" ", ruleW+8))
		copy(labelLine, []rune(ticks[0]))
		for i := 1; i < len(ticks); i++ {
			start := centers[i] - len(ticks[i])/2
			for j, r := range []rune(ticks[i]) {
				if start+j >= 0 && start+j < len(labelLine) {
					labelLine[start+j] = r
				}
			}
		}
		out = append(out, strings.Repeat(" ", indent+yAxisWidth)+axisStyle.Render(strings.TrimRight(string(labelLine), " ")))
	}

	if p.xLabel != "" {
		style := lipgloss.NewStyle()
		if p.XLabelColor != "" {
			style = style.Foreground(lipgloss.Color(p.XLabelColor))
		}
		out = append(out, strings.Repeat(" ", indent+yAxisWidth)+style.Render(textutil.CenterVisual(p.xLabel, ruleW)))
	}
	return out
}

func (p *Plot) axisStyle() lipgloss.Style {
	style := lipgloss.NewStyle()
	if p.AxisColor != "" {
		style = style.Foreground(lipgloss.Color(p.AxisColor))
	}
	return style
}
