package geom

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// LoadGeoJSON extracts point coordinates from a GeoJSON file.
// Supports: Point, MultiPoint, Feature, FeatureCollection of Points/MultiPoints.
func LoadGeoJSON(path string) (PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return PointSet{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return PointSet{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return PointSet{}, err
	}
	t, _ := raw["type"].(string)
	if t == "" {
		return PointSet{}, errors.New("invalid geojson: missing type")
	}

	var set PointSet
	parsePoint := func(v any) (Point, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return New(x, y), true
			}
		}
		return Point{}, false
	}
	parseMulti := func(v any) {
		arr, ok := v.([]any)
		if !ok {
			return
		}
		for _, el := range arr {
			if p, ok := parsePoint(el); ok {
				set.Add(p)
			}
		}
	}
	walkGeom := func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if p, ok := parsePoint(g["coordinates"]); ok {
				set.Add(p)
			}
		case "MultiPoint":
			parseMulti(g["coordinates"])
		}
	}

	switch t {
	case "Point", "MultiPoint":
		walkGeom(raw)
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				fm, _ := f.(map[string]any)
				if g, ok := fm["geometry"].(map[string]any); ok {
					walkGeom(g)
				}
			}
		}
	default:
		return PointSet{}, errors.New("unsupported geojson type: " + t)
	}

	if set.Len() == 0 {
		return PointSet{}, errors.New("no points found in geojson")
	}
	return set, nil
}
