package geom

import "math"

const (
	// maxRayCasts caps the containment walk; on exhaustion the
	// predicate fails closed and reports outside.
	maxRayCasts = 64
	// grazeEps skips hits whose ray direction is near-perpendicular to
	// the local edge normal (a touch, not a crossing).
	grazeEps = 1e-3
)

// PointInBoundary reports whether p lies inside the closed polyline pts
// using a parity ray-cast. The ray is aimed at a reference point outside
// the boundary's bounding box and restarted slightly past each hit;
// coincident repeat hits are nudged past rather than recounted. Thin
// spikes and rays through a vertex can misclassify; this is an accepted
// approximation, not an exact predicate.
func PointInBoundary(pts []Point, p Point) bool {
	if len(pts) < 3 {
		return false
	}
	lo, hi := bounds(pts)
	if !(Rect{lo.X, lo.Y, hi.X, hi.Y}).Contains(p) {
		return false
	}
	diag := hi.Distance(lo)
	if diag == 0 {
		return false
	}
	// Reference point beyond the bounding-box min corner: every
	// crossing between p and the target lies on [p, target].
	target := Point{lo.X - 0.1*diag - 1, lo.Y - 0.1*diag - 1}
	dir := target.Sub(p).Normalized()
	offset := diag * 1e-7

	origin := p
	crossings := 0
	var prev Point
	havePrev := false
	for cast := 0; cast < maxRayCasts; cast++ {
		hit, edge, ok := nearestHit(pts, origin, target)
		if !ok {
			return crossings%2 == 1
		}
		if havePrev && hit.DistanceSq(prev) <= offset*offset {
			origin = origin.Add(dir.Scale(offset))
			continue
		}
		normal := edge.Perp().Normalized()
		if math.Abs(dir.Dot(normal)) > grazeEps {
			crossings++
		}
		prev = hit
		havePrev = true
		origin = hit.Add(dir.Scale(offset))
	}
	return false
}

// nearestHit returns the boundary intersection closest to origin along
// the ray segment [origin, target], plus the edge vector at the hit.
func nearestHit(pts []Point, origin, target Point) (Point, Point, bool) {
	var hit, edge Point
	bestD := math.MaxFloat64
	found := false
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		x, ok := SegmentIntersection(origin, target, a, b)
		if !ok {
			continue
		}
		d := x.DistanceSq(origin)
		if d < bestD {
			bestD = d
			hit = x
			edge = b.Sub(a)
			found = true
		}
	}
	return hit, edge, found
}

func bounds(pts []Point) (lo, hi Point) {
	lo = pts[0]
	hi = pts[0]
	for _, p := range pts[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
