package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/JonMunkholm/psanalysis/internal/analysis"
)

// TopCSVHeader is the header row of the top-N export.
var TopCSVHeader = []string{"Name", "Platform", "Global_Sales"}

// formatSales renders sales in shortest round-trip decimal form.
func formatSales(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteTopCSV writes a ranking as CSV: a header row, then one row per game.
// There is no index column and rows are never padded.
func WriteTopCSV(w io.Writer, rows []analysis.GameSales) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(TopCSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write([]string{r.Name, r.Platform, formatSales(r.GlobalSales)}); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// RenderTopTable writes a ranking as a bordered console table with a
// 1-based rank column.
func RenderTopTable(w io.Writer, rows []analysis.GameSales) error {
	data := make([][]string, 0, len(rows))
	for i, r := range rows {
		data = append(data, []string{strconv.Itoa(i + 1), r.Name, r.Platform, formatSales(r.GlobalSales)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", TopCSVHeader[0], TopCSVHeader[1], TopCSVHeader[2]).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row != table.HeaderRow && (col == 0 || col == 3) {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	_, err := fmt.Fprintln(w, t.String())
	return err
}
