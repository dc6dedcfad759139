package report

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/roadsearch/compare"
)

// Table column headers, in order.
var tableHeaders = []string{
	"Algorithm", "Path", "Distance (km)", "Expanded", "Generated", "Max frontier", "Time",
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// TableRows returns the comparison rows (found records only, in order).
func TableRows(cmp *compare.Comparison) [][]string {
	found := cmp.Found()
	rows := make([][]string, 0, len(found))
	for _, r := range found {
		rows = append(rows, []string{
			string(r.Algorithm),
			FormatPath(r.Path),
			strconv.FormatFloat(r.Distance, 'f', -1, 64),
			strconv.Itoa(r.NodesExpanded),
			strconv.Itoa(r.NodesGenerated),
			strconv.Itoa(r.MaxFrontierSize),
			FormatTime(r.ExecutionTime),
		})
	}

	return rows
}

// RenderTable returns the bordered comparison table.
func RenderTable(cmp *compare.Comparison) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(tableHeaders...).
		Rows(TableRows(cmp)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}

// Table writes RenderTable(cmp) followed by a newline.
func Table(w io.Writer, cmp *compare.Comparison) error {
	_, err := io.WriteString(w, RenderTable(cmp)+"\n")

	return err
}
