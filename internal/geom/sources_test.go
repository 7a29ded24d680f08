package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadCSV(t *testing.T) {
	p := writeFile(t, "pts.csv", "name,Latitude,Longitude\na,2,1\nb,6,4\nbad,oops,4\n")
	set, err := LoadCSV(p)
	require.NoError(t, err)
	assert.Equal(t, []Point{New(1, 2), New(4, 6)}, set.Points)
	assert.Equal(t, BBox{MinX: 1, MinY: 2, MaxX: 4, MaxY: 6}, set.BBox)
}

func TestLoadCSVXYColumns(t *testing.T) {
	p := writeFile(t, "pts.csv", "x,y\n0,0\n3,4\n")
	set, err := LoadCSV(p)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	d, err := set.Points[0].DistanceTo(set.Points[1])
	require.NoError(t, err)
	assert.InDelta(t, 5, d, 1e-12)
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := LoadCSV(writeFile(t, "nohdr.csv", "a,b\n1,2\n"))
	assert.ErrorContains(t, err, "coordinate columns not found")

	_, err = LoadCSV(writeFile(t, "novals.csv", "x,y\noops,nope\n"))
	assert.ErrorContains(t, err, "no valid points parsed")

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoadGeoJSON(t *testing.T) {
	tcs := []struct {
		name string
		body string
		want []Point
	}{
		{
			name: "point",
			body: `{"type":"Point","coordinates":[1,2]}`,
			want: []Point{New(1, 2)},
		},
		{
			name: "multipoint",
			body: `{"type":"MultiPoint","coordinates":[[1,2],[4,6]]}`,
			want: []Point{New(1, 2), New(4, 6)},
		},
		{
			name: "feature",
			body: `{"type":"Feature","geometry":{"type":"Point","coordinates":[-1,0]}}`,
			want: []Point{New(-1, 0)},
		},
		{
			name: "feature collection",
			body: `{"type":"FeatureCollection","features":[
				{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]}},
				{"type":"Feature","geometry":{"type":"MultiPoint","coordinates":[[5,5],[9,1]]}}]}`,
			want: []Point{New(0, 0), New(5, 5), New(9, 1)},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			set, err := LoadGeoJSON(writeFile(t, "d.geojson", tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.want, set.Points)
		})
	}
}

func TestLoadGeoJSONErrors(t *testing.T) {
	_, err := LoadGeoJSON(writeFile(t, "d.geojson", `{"coordinates":[1,2]}`))
	assert.ErrorContains(t, err, "missing type")

	_, err = LoadGeoJSON(writeFile(t, "d.geojson", `{"type":"LineString","coordinates":[[0,0],[1,1]]}`))
	assert.ErrorContains(t, err, "unsupported geojson type")

	_, err = LoadGeoJSON(writeFile(t, "d.geojson", `{"type":"FeatureCollection","features":[]}`))
	assert.ErrorContains(t, err, "no points found")
}

func TestLoadKML(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><Point><coordinates>1,2,0</coordinates></Point></Placemark>
    <Placemark><name>no point</name></Placemark>
    <Placemark><Point><coordinates>4,6</coordinates></Point></Placemark>
  </Document>
</kml>`
	set, err := LoadKML(writeFile(t, "d.kml", body))
	require.NoError(t, err)
	assert.Equal(t, []Point{New(1, 2), New(4, 6)}, set.Points)
}

func TestLoadKMLNoPoints(t *testing.T) {
	body := `<kml><Document><Placemark></Placemark></Document></kml>`
	_, err := LoadKML(writeFile(t, "d.kml", body))
	assert.ErrorContains(t, err, "kml: no points found")
}
