package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasDotBits(t *testing.T) {
	tcs := []struct {
		name   string
		mx, my int
		want   uint8
	}{
		{name: "top-left dot", mx: 0, my: 0, want: 0x01},
		{name: "left col row1", mx: 0, my: 1, want: 0x02},
		{name: "left col row2", mx: 0, my: 2, want: 0x04},
		{name: "left col row3", mx: 0, my: 3, want: 0x40},
		{name: "right col row0", mx: 1, my: 0, want: 0x08},
		{name: "right col row1", mx: 1, my: 1, want: 0x10},
		{name: "right col row2", mx: 1, my: 2, want: 0x20},
		{name: "right col row3", mx: 1, my: 3, want: 0x80},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cv := newPointCanvas(1, 1)
			cv.setDot(tc.mx, tc.my)
			assert.Equal(t, tc.want, cv.dots[0][0])
			assert.Equal(t, string(rune(0x2800+int(tc.want))), cv.rows()[0])
		})
	}
}

func TestCanvasOutOfBoundsIgnored(t *testing.T) {
	cv := newPointCanvas(2, 2)
	cv.setDot(-1, 0)
	cv.setDot(0, -2)
	cv.setDot(4, 0) // cell x=2, off canvas
	cv.setDot(0, 8) // cell y=2, off canvas
	for _, row := range cv.rows() {
		assert.Equal(t, "  ", row)
	}
}

func TestCanvasMarkerWinsOverDots(t *testing.T) {
	cv := newPointCanvas(1, 1)
	cv.setDot(0, 0)
	cv.setMarker(1, 2, '◉') // same cell
	assert.Equal(t, "◉", cv.rows()[0])
}

func TestCanvasLine(t *testing.T) {
	cv := newPointCanvas(4, 1)
	cv.line(0, 0, 7, 0)
	rows := cv.rows()
	require.Len(t, rows, 1)
	// a horizontal micro line fills the top dot pair of every crossed cell
	for _, r := range rows[0] {
		assert.Equal(t, rune(0x2800|0x01|0x08), r)
	}
}
