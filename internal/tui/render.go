package tui

import (
	"strings"

	"geopoint/internal/geom"
)

// cellToXY converts a canvas cell coordinate back to data coordinates using
// bbox, zoom, and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if !m.set.BBox.Valid() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	bb := m.set.BBox
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := bb.MinX + nx*(bb.MaxX-bb.MinX)
	y := bb.MinY + ny*(bb.MaxY-bb.MinY)
	return x, y, true
}

// screenXY maps a data coordinate to screen cell coordinates considering
// zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	if !m.set.BBox.Valid() {
		return 0, 0, false
	}
	bb := m.set.BBox
	nx := (x - bb.MinX) / (bb.MaxX - bb.MinX)
	ny := (y - bb.MinY) / (bb.MaxY - bb.MinY)
	// zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// screenXYMicro maps a data coordinate into the 2x4 microgrid per cell.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !m.set.BBox.Valid() {
		return 0, 0, false
	}
	bb := m.set.BBox
	nx := (x - bb.MinX) / (bb.MaxX - bb.MinX)
	ny := (y - bb.MinY) / (bb.MaxY - bb.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

func (m Model) renderCanvas(w, h int) string {
	cv := newPointCanvas(w, h)

	// plot every point
	for _, p := range m.set.Points {
		x, _ := p.X.Value()
		y, _ := p.Y.Value()
		mx, my, ok := m.screenXYMicro(x, y, w, h)
		if !ok {
			continue
		}
		cv.setDot(mx, my)
	}

	// measure segment between picked endpoints
	if a, b := m.pickedPoints(); a != nil && b != nil {
		ax, _ := a.X.Value()
		ay, _ := a.Y.Value()
		bx, _ := b.X.Value()
		by, _ := b.Y.Value()
		amx, amy, aok := m.screenXYMicro(ax, ay, w, h)
		bmx, bmy, bok := m.screenXYMicro(bx, by, w, h)
		if aok && bok {
			cv.line(amx, amy, bmx, bmy)
		}
	}

	// picked endpoint markers sit on top of the dots
	markers := []struct {
		idx   int
		glyph rune
	}{{m.selA, '◉'}, {m.selB, '◎'}}
	for _, mk := range markers {
		if mk.idx < 0 || mk.idx >= m.set.Len() {
			continue
		}
		p := m.set.Points[mk.idx]
		x, _ := p.X.Value()
		y, _ := p.Y.Value()
		if mx, my, ok := m.screenXYMicro(x, y, w, h); ok {
			cv.setMarker(mx, my, mk.glyph)
		}
	}

	lines := cv.rows()

	// hover crosshair glyph
	if m.hovering && m.hoverCellY >= 0 && m.hoverCellY < len(lines) {
		r := []rune(lines[m.hoverCellY])
		if m.hoverCellX >= 0 && m.hoverCellX < len(r) && r[m.hoverCellX] == ' ' {
			r[m.hoverCellX] = '+'
			lines[m.hoverCellY] = string(r)
		}
	}
	return strings.Join(lines, "\n")
}

// pickedPoints resolves the measure selection to point values.
func (m Model) pickedPoints() (a, b *geom.Point) {
	if m.selA >= 0 && m.selA < m.set.Len() {
		a = &m.set.Points[m.selA]
	}
	if m.selB >= 0 && m.selB < m.set.Len() {
		b = &m.set.Points[m.selB]
	}
	return a, b
}

// inspectNearest finds the point closest to the viewport center.
func (m Model) inspectNearest() (idx int, ok bool) {
	if m.set.Len() == 0 {
		return 0, false
	}
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	if m.hovering {
		cx, cy = m.hoverCellX, m.hoverCellY
	}
	bestD := 1<<31 - 1
	best := -1
	for i, p := range m.set.Points {
		x, _ := p.X.Value()
		y, _ := p.Y.Value()
		sx, sy, ok2 := m.screenXY(x, y, w, h)
		if !ok2 {
			continue
		}
		dx := sx - cx
		dy := sy - cy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = i
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
