// SPDX-License-Identifier: MIT

package tracesink

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/numerics/core"
)

// DefaultPrecision is the number of significant digits printed per cell.
const DefaultPrecision = 10

// TableOption customizes Table.
type TableOption func(*tableConfig)

type tableConfig struct {
	precision int
	styled    bool
}

// WithPrecision sets the significant digits per value (-1 = shortest exact).
// Panics if p < -1 or p == 0.
func WithPrecision(p int) TableOption {
	if p < -1 || p == 0 {
		panic("tracesink: WithPrecision requires p == -1 or p > 0")
	}

	return func(c *tableConfig) { c.precision = p }
}

// WithStyle toggles header colouring and zebra rows (on by default).
// Borders are always drawn.
func WithStyle(on bool) TableOption {
	return func(c *tableConfig) { c.styled = on }
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	oddRowStyle = cellStyle.Foreground(lipgloss.Color("245"))
	plainStyle  = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Table renders tr as a bordered table with the schema header and one row
// per record. A nil or empty trace renders the header only.
//
// Complexity: O(records · columns).
func Table(tr *core.Trace, opts ...TableOption) string {
	cfg := tableConfig{precision: DefaultPrecision, styled: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var schema core.Schema
	if tr != nil {
		schema = tr.Schema
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(schema.Header()...).
		Rows(Rows(tr, cfg.precision)...)
	if cfg.styled {
		t = t.StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 1:
				return oddRowStyle
			default:
				return cellStyle
			}
		})
	} else {
		t = t.StyleFunc(func(int, int) lipgloss.Style { return plainStyle })
	}

	return t.String()
}

// Rows formats the records as strings: the iteration number followed by
// each value in 'g' notation with precision significant digits.
func Rows(tr *core.Trace, precision int) [][]string {
	rows := make([][]string, 0, tr.Len())
	if tr == nil {
		return rows
	}
	for _, rec := range tr.Records {
		row := make([]string, 0, len(rec.Values)+1)
		row = append(row, strconv.Itoa(rec.Iteration))
		for _, v := range rec.Values {
			row = append(row, strconv.FormatFloat(v, 'g', precision, 64))
		}
		rows = append(rows, row)
	}

	return rows
}
