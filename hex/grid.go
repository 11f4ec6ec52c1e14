package hex

import (
	"fmt"
	"math"

	"github.com/gravitas-015/hexwalls/geom"
)

const (
	// epsilonScale fixes the grid tolerance relative to hex size; one
	// scale covers segment-consumed tests and cursor stepping.
	epsilonScale = 1e-4
	// snapScale is the owner-resolution quantum, well under the step
	// epsilon so snapping never moves a sample across a step.
	snapScale = 1e-7
)

// Grid holds the hex layout configuration: pointy-top orientation with
// size as the corner (outer circle) radius. Read-only after construction.
type Grid struct {
	size      float64
	inscribed float64
}

// NewGrid creates a grid with the given hex size (corner radius).
func NewGrid(size float64) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid hex size %v: must be positive", size)
	}
	return &Grid{size: size, inscribed: size * math.Sqrt(3) / 2}, nil
}

// Size returns the hex corner radius.
func (g *Grid) Size() float64 { return g.size }

// InscribedRadius returns the radius of the largest circle fitting
// inside one hex cell.
func (g *Grid) InscribedRadius() float64 { return g.inscribed }

// Epsilon returns the grid tolerance, tied to hex size.
func (g *Grid) Epsilon() float64 { return g.size * epsilonScale }

// HexToPoint returns the center of the given cell.
// pointy-top: x = size*sqrt(3)*(q + r/2); y = size*3/2*r
func (g *Grid) HexToPoint(c Cube) geom.Point {
	a := c.ToAxial()
	return geom.Point{
		X: g.size * math.Sqrt(3) * (float64(a.Q) + float64(a.R)/2.0),
		Y: g.size * 1.5 * float64(a.R),
	}
}

// PointToHex maps a continuous point to the cell containing it, via
// fractional axial coordinates and cube rounding.
func (g *Grid) PointToHex(p geom.Point) Cube {
	r := p.Y / (1.5 * g.size)
	q := p.X/(math.Sqrt(3)*g.size) - r/2.0
	return RoundCube(q, r, -q-r)
}

// AdjustPointPosition snaps coordinates to a sub-epsilon quantum so a
// sample sitting on a shared edge resolves to a stable owning hex.
func (g *Grid) AdjustPointPosition(p geom.Point) geom.Point {
	quantum := g.size * snapScale
	return geom.Point{
		X: math.Round(p.X/quantum) * quantum,
		Y: math.Round(p.Y/quantum) * quantum,
	}
}

// Corners returns the six corner points of a cell, counter-clockwise
// starting at 30 degrees.
func (g *Grid) Corners(c Cube) [6]geom.Point {
	center := g.HexToPoint(c)
	var out [6]geom.Point
	for k := 0; k < 6; k++ {
		angle := math.Pi / 180 * float64(60*k+30)
		out[k] = geom.Point{
			X: center.X + g.size*math.Cos(angle),
			Y: center.Y + g.size*math.Sin(angle),
		}
	}
	return out
}

// EdgeIntersections returns the points (0, 1 or 2) where segment [a,b]
// crosses the cell's edge boundary. Hits at the query endpoints are
// excluded within epsilon; duplicates at shared corners are merged. A
// segment grazing a corner or edge tangentially may report 0 or 1 hits
// depending on tolerance.
func (g *Grid) EdgeIntersections(c Cube, a, b geom.Point) []geom.Point {
	corners := g.Corners(c)
	eps := g.Epsilon()
	epsSq := eps * eps
	var hits []geom.Point
	for k := 0; k < 6; k++ {
		x, ok := geom.SegmentIntersection(a, b, corners[k], corners[(k+1)%6])
		if !ok {
			continue
		}
		if x.DistanceSq(a) <= epsSq || x.DistanceSq(b) <= epsSq {
			continue
		}
		dup := false
		for _, h := range hits {
			if h.DistanceSq(x) <= epsSq {
				dup = true
				break
			}
		}
		if !dup {
			hits = append(hits, x)
		}
	}
	return hits
}

// CircleIntersections returns the points where segment [a,b] crosses the
// circle of radius InscribedRadius*radiusWeight centered on the cell.
func (g *Grid) CircleIntersections(c Cube, a, b geom.Point, radiusWeight float64) []geom.Point {
	center := g.HexToPoint(c)
	radius := g.inscribed * radiusWeight
	d := b.Sub(a)
	f := a.Sub(center)
	qa := d.Dot(d)
	if qa == 0 {
		return nil
	}
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - radius*radius
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	var hits []geom.Point
	for _, t := range []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if t < 0 || t > 1 {
			continue
		}
		hits = append(hits, a.Add(d.Scale(t)))
		if disc == 0 {
			break
		}
	}
	return hits
}

// IsSegmentInsideCircle reports whether both endpoints of [a,b] lie
// within radius of center (a contained chord needs no boundary crossing).
func (g *Grid) IsSegmentInsideCircle(center geom.Point, radius float64, a, b geom.Point) bool {
	rSq := radius * radius
	return a.DistanceSq(center) <= rSq && b.DistanceSq(center) <= rSq
}

// IsCBetweenAB reports whether c lies on the closed segment [a,b] within
// the grid tolerance.
func (g *Grid) IsCBetweenAB(a, b, c geom.Point) bool {
	return a.Distance(c)+c.Distance(b)-a.Distance(b) <= g.Epsilon()
}
