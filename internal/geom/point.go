package geom

import (
	"fmt"
	"io"
	"math"
)

// Point is an immutable 2D coordinate value. Either axis may be unset.
type Point struct {
	X Coord
	Y Coord
}

// New returns a point with both coordinates set.
func New(x, y float64) Point { return Point{X: C(x), Y: C(y)} }

// Partial returns a point from explicit coordinate states.
func Partial(x, y Coord) Point { return Point{X: x, Y: y} }

// Unplaced returns a point with both coordinates unset.
func Unplaced() Point { return Point{} }

// Complete reports whether both coordinates are set.
func (p Point) Complete() bool { return p.X.IsSet() && p.Y.IsSet() }

func (p Point) String() string {
	return "X: " + p.X.String() + ", Y: " + p.Y.String()
}

// Render writes the point's textual projection plus a newline to w.
func (p Point) Render(w io.Writer) error {
	_, err := io.WriteString(w, p.String()+"\n")
	return err
}

// InvalidOperandError reports a distance computation against a point
// with an unset coordinate. Operand is "receiver" or "argument".
type InvalidOperandError struct {
	Operand string
	Axis    string
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("distance: %s point has unset %s coordinate", e.Operand, e.Axis)
}

// DistanceTo returns the Euclidean distance between p and q.
// Both points must be complete; otherwise an *InvalidOperandError
// names the first unset coordinate found.
func (p Point) DistanceTo(q Point) (float64, error) {
	if err := checkOperand("receiver", p); err != nil {
		return 0, err
	}
	if err := checkOperand("argument", q); err != nil {
		return 0, err
	}
	x1, _ := p.X.Value()
	y1, _ := p.Y.Value()
	x2, _ := q.X.Value()
	y2, _ := q.Y.Value()
	return math.Hypot(x1-x2, y1-y2), nil
}

func checkOperand(operand string, p Point) error {
	if !p.X.IsSet() {
		return &InvalidOperandError{Operand: operand, Axis: "x"}
	}
	if !p.Y.IsSet() {
		return &InvalidOperandError{Operand: operand, Axis: "y"}
	}
	return nil
}
