package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geopoint/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				set, err := geom.ParseWKT(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.setData(set, "")
				m.status = fmt.Sprintf("rendered WKT  points=%d", set.Len())
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= m.cfg.Viewer.ZoomStep
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= m.cfg.Viewer.ZoomStep
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshTable()
			}
		case "m":
			m.measuring = !m.measuring
			if m.measuring {
				m.selA, m.selB = -1, -1
				m.status = "measure: pick first point (space)"
			} else {
				m.selA, m.selB = -1, -1
				m.status = "view mode"
			}
		case " ":
			if m.measuring {
				m = m.pickMeasurePoint()
			}
		case "esc":
			if m.measuring {
				m.measuring = false
				m.selA, m.selB = -1, -1
				m.status = "view mode"
			}
			m.inspectPopup = ""
		case "i":
			idx, ok := m.inspectNearest()
			if ok {
				p := m.set.Points[idx]
				name := filepath.Base(m.selPath)
				if name == "" {
					name = "<unsaved>"
				}
				bb := m.set.BBox
				meta := []string{
					fmt.Sprintf("name: %s", name),
					fmt.Sprintf("path: %s", m.selPath),
					fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
					fmt.Sprintf("points: %d", m.set.Len()),
					fmt.Sprintf("path length: %s", m.fmtDist(m.set.TotalPath())),
					"nearest: " + p.String(),
				}
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no point nearby"
				m.status = m.inspectPopup
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// track hover over the canvas area; layout must match View
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)

		if m.showSidebar {
			m.l.SetSize(28-2, contentHeight-2)
		}

		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := headerHeight
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			if x, y, ok := m.cellToXY(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight); ok {
				m.hoverHasXY = true
				m.hoverX = x
				m.hoverY = y
			} else {
				m.hoverHasXY = false
			}
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showTable {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

// pickMeasurePoint binds the nearest point to the next free measure slot
// and reports the distance once both endpoints are picked.
func (m Model) pickMeasurePoint() Model {
	idx, ok := m.inspectNearest()
	if !ok {
		m.status = "measure: no point nearby"
		return m
	}
	p := m.set.Points[idx]
	switch {
	case m.selA < 0:
		m.selA = idx
		m.status = "measure A = " + p.String() + "  pick second point"
	case m.selB < 0 && idx != m.selA:
		m.selB = idx
		a := m.set.Points[m.selA]
		d, err := a.DistanceTo(p)
		if err != nil {
			m.status = "measure error: " + err.Error()
			return m
		}
		m.status = fmt.Sprintf("measure: |A-B| = %s", m.fmtDist(d))
		if m.showTable {
			m.refreshTable()
		}
	default:
		// restart from the picked point
		m.selA, m.selB = idx, -1
		m.status = "measure A = " + p.String() + "  pick second point"
	}
	return m
}

func (m Model) fmtDist(d float64) string {
	return strconv.FormatFloat(d, 'f', m.cfg.Precision, 64)
}

// setData replaces the loaded point set and resets the viewport.
func (m *Model) setData(set geom.PointSet, path string) {
	m.set = set
	m.selPath = path
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.selA, m.selB = -1, -1
	if m.showTable {
		m.refreshTable()
	}
}
