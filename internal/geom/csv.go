package geom

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV with coordinate columns and returns a PointSet.
// Column detection: y|lat|latitude and x|lon|lng|long|longitude
// (case-insensitive). Rows with unparsable ordinates are skipped.
func LoadCSV(path string) (PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return PointSet{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return PointSet{}, err
	}
	if len(recs) == 0 {
		return PointSet{}, errors.New("empty csv")
	}
	header := recs[0]
	idxY, idxX := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		}
	}
	if idxY == -1 || idxX == -1 {
		return PointSet{}, errors.New("csv: coordinate columns not found")
	}
	var set PointSet
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		set.Add(New(x, y))
	}
	if set.Len() == 0 {
		return PointSet{}, errors.New("csv: no valid points parsed")
	}
	return set, nil
}
