package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses the point subset of WKT into a PointSet.
// Supported: POINT(x y), MULTIPOINT(x y, ...), with or without inner parens
// per tuple. Every tuple must carry both ordinates; partial points are a
// parse error here, not an unset value.
func ParseWKT(wkt string) (PointSet, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return PointSet{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var set PointSet
	parseTuples := func(block string) error {
		for _, tup := range strings.Split(block, ",") {
			tup = strings.Trim(strings.TrimSpace(tup), "()")
			parts := strings.Fields(tup)
			if len(parts) == 0 {
				continue
			}
			if len(parts) < 2 {
				return errors.New("wkt: tuple is missing an ordinate: " + tup)
			}
			x, err1 := strconv.ParseFloat(parts[0], 64)
			y, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 != nil || err2 != nil {
				return errors.New("wkt: bad ordinate in tuple: " + tup)
			}
			set.Add(New(x, y))
		}
		return nil
	}
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return PointSet{}, errors.New("wkt multipoint: invalid")
		}
		if err := parseTuples(s[i+1 : j]); err != nil {
			return PointSet{}, err
		}
	case strings.HasPrefix(up, "POINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return PointSet{}, errors.New("wkt point: invalid")
		}
		if err := parseTuples(s[i+1 : j]); err != nil {
			return PointSet{}, err
		}
	default:
		return PointSet{}, errors.New("unsupported wkt type")
	}
	if set.Len() == 0 {
		return PointSet{}, errors.New("wkt: no coordinates parsed")
	}
	return set, nil
}
