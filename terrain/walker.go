package terrain

import (
	"errors"

	"github.com/gravitas-015/hexwalls/geom"
	"github.com/gravitas-015/hexwalls/hex"
)

// ErrNoBoundaryPoints marks a boundary with an empty point sequence.
var ErrNoBoundaryPoints = errors.New("boundary has no points")

// Walker walks a boundary polyline hex-by-hex and collects the cells the
// curve covers. Stepping happens at hex-edge crossings, so every touched
// cell is found independent of the curve's point resolution; the
// inscribed-circle test scaled by RadiusWeight decides how much coverage
// a cell needs before it counts.
type Walker struct {
	Grid *hex.Grid

	// RadiusWeight scales the inscribed-circle radius; values below 1
	// let partial coverage register. Zero means 1.
	RadiusWeight float64

	// Bounds, when set, skips segments with neither endpoint inside.
	// A segment crossing the rectangle without an endpoint in it is
	// skipped too; excluded regions are assumed far from relevant area.
	Bounds *geom.Rect
}

// Walk collects the cells covered by the boundary path from the point
// nearest startPoint to the point nearest endPoint, iterating segments
// cyclically with wrap-around.
func (w *Walker) Walk(b Boundary, startPoint, endPoint geom.Point) (WallSet, error) {
	startIdx := geom.ClosestIndex(b.Points, startPoint)
	endIdx := geom.ClosestIndex(b.Points, endPoint)
	if startIdx < 0 || endIdx < 0 {
		return nil, ErrNoBoundaryPoints
	}
	walls := make(WallSet)
	n := len(b.Points)
	for i := startIdx; ; i = (i + 1) % n {
		a := b.Points[i]
		c := b.Points[(i+1)%n]
		if w.Bounds == nil || w.Bounds.Contains(a) || w.Bounds.Contains(c) {
			w.walkSegment(walls, a, c)
		}
		if i == endIdx {
			break
		}
	}
	return walls, nil
}

// walkSegment advances a cursor from a toward b one cell at a time,
// marking each cell whose weighted inscribed circle the remaining
// sub-segment touches or fits inside.
func (w *Walker) walkSegment(walls WallSet, a, b geom.Point) {
	eps := w.Grid.Epsilon()
	if a.DistanceSq(b) <= eps*eps {
		// zero-length segment, nothing to walk
		return
	}
	weight := w.RadiusWeight
	if weight == 0 {
		weight = 1
	}
	step := b.Sub(a).Normalized().Scale(eps)

	x := a
	for w.Grid.IsCBetweenAB(a, b, x) {
		cell := w.Grid.PointToHex(w.Grid.AdjustPointPosition(x))
		center := w.Grid.HexToPoint(cell)
		radius := w.Grid.InscribedRadius() * weight
		if len(w.Grid.CircleIntersections(cell, x, b, weight)) > 0 ||
			w.Grid.IsSegmentInsideCircle(center, radius, x, b) {
			walls.Add(cell)
		}

		crossings := w.Grid.EdgeIntersections(cell, x, b)
		if len(crossings) == 0 {
			// rest of the segment stays inside this cell
			break
		}
		next := crossings[0]
		// Near a corner two crossings can appear; take the one farther
		// from the cursor so progress stays monotonic.
		if len(crossings) > 1 && crossings[1].DistanceSq(x) > crossings[0].DistanceSq(x) {
			next = crossings[1]
		}
		x = next.Add(step)
	}
}
