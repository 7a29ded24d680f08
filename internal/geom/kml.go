package geom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadKML extracts Point coordinates from a KML file (Placemark > Point > coordinates).
// KML coordinates are "lon,lat[,alt]"; we ignore altitude.
func LoadKML(path string) (PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return PointSet{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return PointSet{}, err
	}

	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Point *kmlPoint `xml:"Point"`
	}
	// placemarks sit either directly under <kml> or inside <Document>
	type kmlDoc struct {
		Placemarks    []kmlPlacemark `xml:"Placemark"`
		DocPlacemarks []kmlPlacemark `xml:"Document>Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return PointSet{}, err
	}
	var set PointSet
	for _, pm := range append(doc.Placemarks, doc.DocPlacemarks...) {
		if pm.Point == nil {
			continue
		}
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			set.Add(New(x, y))
		}
	}
	if set.Len() == 0 {
		return PointSet{}, errors.New("kml: no points found")
	}
	return set, nil
}
