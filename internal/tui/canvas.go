package tui

// pointCanvas rasterizes points onto a braille microgrid (2x4 dots per
// terminal cell) with an optional cell-level marker overlay for picked
// points. Markers win over braille dots when compositing.
type pointCanvas struct {
	w, h    int       // in cells
	dots    [][]uint8 // per-cell 8-bit braille mask
	markers map[[2]int]rune
}

func newPointCanvas(w, h int) *pointCanvas {
	dots := make([][]uint8, h)
	for i := range dots {
		dots[i] = make([]uint8, w)
	}
	return &pointCanvas{w: w, h: h, dots: dots, markers: make(map[[2]int]rune)}
}

// setDot sets a micro-pixel at micro coords (2x4 per cell).
func (c *pointCanvas) setDot(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.dots[cy][cx] |= bit
}

// setMarker places a glyph at the cell containing micro coords (mx, my).
func (c *pointCanvas) setMarker(mx, my int, glyph rune) {
	cx, cy := mx/2, my/4
	if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return
	}
	c.markers[[2]int{cx, cy}] = glyph
}

// line draws a segment on the microgrid using Bresenham.
func (c *pointCanvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setDot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rows renders the canvas to one string per cell row. Cells with no dots
// and no marker render as spaces.
func (c *pointCanvas) rows() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			if g, ok := c.markers[[2]int{x, y}]; ok {
				row[x] = g
				continue
			}
			mask := c.dots[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
