package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the points table from the loaded set. The dist
// column is measured from the first picked point when one exists,
// otherwise from the set's first point.
func (m *Model) refreshTable() {
	if m.set.Len() == 0 {
		m.showTable = false
		m.status = "no points loaded"
		return
	}
	origin := m.set.Points[0]
	if m.selA >= 0 && m.selA < m.set.Len() {
		origin = m.set.Points[m.selA]
	}

	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "X", Width: 12},
		{Title: "Y", Width: 12},
		{Title: "dist", Width: 14},
	}
	rows := make([]table.Row, 0, m.set.Len())
	for i, p := range m.set.Points {
		dist := "-"
		if d, err := origin.DistanceTo(p); err == nil {
			dist = m.fmtDist(d)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			p.X.String(),
			p.Y.String(),
			dist,
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
