package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWKT(t *testing.T) {
	tcs := []struct {
		name    string
		wkt     string
		want    []Point
		wantErr string
	}{
		{
			name: "point",
			wkt:  "POINT(1 2)",
			want: []Point{New(1, 2)},
		},
		{
			name: "point lowercase with spaces",
			wkt:  "  point ( -3.5 7 ) ",
			want: []Point{New(-3.5, 7)},
		},
		{
			name: "multipoint bare tuples",
			wkt:  "MULTIPOINT(1 2, 4 6)",
			want: []Point{New(1, 2), New(4, 6)},
		},
		{
			name: "multipoint parenthesized tuples",
			wkt:  "MULTIPOINT((0 0), (10 10))",
			want: []Point{New(0, 0), New(10, 10)},
		},
		{name: "empty", wkt: "   ", wantErr: "empty wkt"},
		{name: "unsupported type", wkt: "LINESTRING(0 0, 1 1)", wantErr: "unsupported wkt type"},
		{name: "missing parens", wkt: "POINT 1 2", wantErr: "wkt point: invalid"},
		{name: "missing ordinate", wkt: "POINT(1)", wantErr: "missing an ordinate"},
		{name: "bad ordinate", wkt: "POINT(a b)", wantErr: "bad ordinate"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			set, err := ParseWKT(tc.wkt)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, set.Points)
		})
	}
}

func TestParseWKTBBox(t *testing.T) {
	set, err := ParseWKT("MULTIPOINT(1 2, 4 6, -1 3)")
	require.NoError(t, err)
	assert.Equal(t, BBox{MinX: -1, MinY: 2, MaxX: 4, MaxY: 6}, set.BBox)
}
