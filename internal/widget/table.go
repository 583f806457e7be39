package widget

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/ui"
)

// ErrNoSuchRow is returned by row updates that address past the table end.
var ErrNoSuchRow = errors.New("no such row")

// DynamicTable is a scrollable table whose rows can be rewritten in place
// after they are added, for live readouts that update one row at a time.
type DynamicTable struct {
	name    string
	model   table.Model
	columns []table.Column
	rows    []table.Row
}

func NewDynamicTable(name string) *DynamicTable {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ui.ColorBorder)).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(ui.ColorListBG)).
		Background(lipgloss.Color(ui.ColorListSel))
	m := table.New()
	m.SetStyles(styles)
	return &DynamicTable{name: name, model: m}
}

func (t *DynamicTable) Name() string { return t.name }

// AddColumn appends a column. Columns are fixed once rows exist.
func (t *DynamicTable) AddColumn(title string, width int) {
	t.columns = append(t.columns, table.Column{Title: title, Width: width})
	t.model.SetColumns(t.columns)
}

// AddRow appends a row. Missing trailing cells render empty.
func (t *DynamicTable) AddRow(cells ...string) {
	row := make(table.Row, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
	t.model.SetRows(t.rows)
}

// UpdateRow rewrites cells of an existing row. Trailing cells not supplied
// keep their current value.
func (t *DynamicTable) UpdateRow(row int, cells ...string) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("update row %d of %d: %w", row, len(t.rows), ErrNoSuchRow)
	}
	for i, cell := range cells {
		if i >= len(t.columns) {
			break
		}
		t.rows[row][i] = cell
	}
	t.model.SetRows(t.rows)
	return nil
}

// UpdateCell rewrites one cell of an existing row.
func (t *DynamicTable) UpdateCell(row, col int, value string) error {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.columns) {
		return fmt.Errorf("update cell %d,%d: %w", row, col, ErrNoSuchRow)
	}
	t.rows[row][col] = value
	t.model.SetRows(t.rows)
	return nil
}

func (t *DynamicTable) RowCount() int { return len(t.rows) }

func (t *DynamicTable) SetSize(width, height int) {
	t.model.SetWidth(width)
	t.model.SetHeight(height)
}

func (t *DynamicTable) Focus() { t.model.Focus() }

func (t *DynamicTable) Blur() { t.model.Blur() }

func (t *DynamicTable) Focused() bool { return t.model.Focused() }

func (t *DynamicTable) Init() tea.Cmd { return nil }

func (t *DynamicTable) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

func (t *DynamicTable) View() string { return t.model.View() }
