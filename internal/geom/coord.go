package geom

import "strconv"

// Coord is a single coordinate that is either set to a value or unset.
// The zero Coord is unset; an unset coordinate is distinct from zero.
type Coord struct {
	value float64
	set   bool
}

// C returns a set coordinate holding v.
func C(v float64) Coord { return Coord{value: v, set: true} }

// Unset returns the unset coordinate.
func Unset() Coord { return Coord{} }

// Value returns the coordinate value and whether it is set.
func (c Coord) Value() (float64, bool) { return c.value, c.set }

func (c Coord) IsSet() bool { return c.set }

// String renders the value with minimal digits, or "undefined" when unset.
func (c Coord) String() string {
	if !c.set {
		return "undefined"
	}
	return strconv.FormatFloat(c.value, 'f', -1, 64)
}
