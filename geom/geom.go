package geom

import "math"

// parallelEps rejects segment pairs whose intersection denominator is
// too small to divide safely.
const parallelEps = 1e-9

// Point is a 2D point or vector.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Perp returns p rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Length returns the euclidean length of p.
func (p Point) Length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// DistanceSq returns the squared distance between p and q.
func (p Point) DistanceSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Sqrt(p.DistanceSq(q)) }

// Normalized returns p scaled to unit length, or the zero point if p is zero.
func (p Point) Normalized() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Contains reports whether p lies inside the rectangle, borders included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// SegmentIntersection returns the intersection point of segments [a1,a2]
// and [b1,b2]. Near-parallel segments report no intersection rather than
// dividing by a near-zero denominator.
func SegmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	da := a2.Sub(a1)
	db := b2.Sub(b1)
	den := da.X*db.Y - da.Y*db.X
	if math.Abs(den) < parallelEps {
		return Point{}, false
	}
	d := b1.Sub(a1)
	t := (d.X*db.Y - d.Y*db.X) / den
	u := (d.X*da.Y - d.Y*da.X) / den
	if t < -parallelEps || t > 1+parallelEps || u < -parallelEps || u > 1+parallelEps {
		return Point{}, false
	}
	return a1.Add(da.Scale(t)), true
}

// ClosestIndex returns the index of the point nearest to ref, first
// occurrence winning ties. Returns -1 for an empty slice.
func ClosestIndex(pts []Point, ref Point) int {
	best := -1
	bestD := math.MaxFloat64
	for i, p := range pts {
		d := p.DistanceSq(ref)
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}
