package geom

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows the box to include (x, y); first collapses it onto the point.
func (b *BBox) Extend(x, y float64, first bool) {
	if first {
		*b = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Valid reports whether the box spans a nonzero area in both axes.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// PointSet is an ordered collection of complete points with a running bbox.
type PointSet struct {
	Points []Point
	BBox   BBox
}

// Add appends a complete point and grows the bbox. Incomplete points are
// ignored; a set only ever holds plottable values.
func (s *PointSet) Add(p Point) {
	if !p.Complete() {
		return
	}
	x, _ := p.X.Value()
	y, _ := p.Y.Value()
	s.BBox.Extend(x, y, len(s.Points) == 0)
	s.Points = append(s.Points, p)
}

func (s *PointSet) Len() int { return len(s.Points) }

// Nearest returns the index of the point closest to p and the distance.
// ok is false when the set is empty or p is incomplete.
func (s *PointSet) Nearest(p Point) (idx int, dist float64, ok bool) {
	if len(s.Points) == 0 || !p.Complete() {
		return 0, 0, false
	}
	best := -1
	var bestD float64
	for i, q := range s.Points {
		d, err := p.DistanceTo(q)
		if err != nil {
			continue
		}
		if best == -1 || d < bestD {
			best = i
			bestD = d
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestD, true
}

// TotalPath sums the distances between consecutive points.
func (s *PointSet) TotalPath() float64 {
	var total float64
	for i := 1; i < len(s.Points); i++ {
		d, err := s.Points[i-1].DistanceTo(s.Points[i])
		if err != nil {
			continue
		}
		total += d
	}
	return total
}
