package hex

import "math"

// Axial represents axial coordinates (q, r) for pointy-top orientation.
type Axial struct {
	Q int
	R int
}

// Cube represents cubic coordinates (q, r, s) with q+r+s=0.
type Cube struct {
	Q int
	R int
	S int
}

// Directions for axial neighbors in pointy-top orientation.
var Directions = []Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// ToCube converts axial to cubic.
func (a Axial) ToCube() Cube {
	return Cube{Q: a.Q, R: a.R, S: -a.Q - a.R}
}

// ToAxial converts cubic to axial.
func (c Cube) ToAxial() Axial { return Axial{Q: c.Q, R: c.R} }

// DistanceAxial returns hex distance between two axial coords.
func DistanceAxial(a, b Axial) int {
	return DistanceCube(a.ToCube(), b.ToCube())
}

// DistanceCube returns hex distance between two cubic coords.
func DistanceCube(a, b Cube) int {
	dq := int(math.Abs(float64(a.Q - b.Q)))
	dr := int(math.Abs(float64(a.R - b.R)))
	ds := int(math.Abs(float64(a.S - b.S)))
	if dq > dr && dq > ds {
		return dq
	}
	if dr > ds {
		return dr
	}
	return ds
}

// Ring returns the axial coordinates at exact distance k from center c,
// starting from direction 4 (south-east) and proceeding counter-clockwise.
// If k==0, returns [c].
func Ring(c Axial, k int) []Axial {
	if k == 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	// start position: c + dir[4]*k (arbitrary but consistent)
	cur := c.Add(Directions[4].Mul(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// CubeRing returns the cubic coordinates at exact distance k from center c,
// in the same rotational order as Ring.
func CubeRing(c Cube, k int) []Cube {
	ring := Ring(c.ToAxial(), k)
	res := make([]Cube, len(ring))
	for i, a := range ring {
		res[i] = a.ToCube()
	}
	return res
}

// Disk returns all axial coordinates at distance <= r from center c.
func Disk(c Axial, r int) []Axial {
	size := 1 + 3*r*(r+1)
	res := make([]Axial, 0, size)
	for q := -r; q <= r; q++ {
		for r2 := max(-r, -q-r); r2 <= min(r, -q+r); r2++ {
			res = append(res, c.Add(Axial{q, r2}))
		}
	}
	return res
}

// RoundCube maps fractional cubic coordinates to the containing cell:
// round all three components, then re-derive the one with the largest
// rounding error so q+r+s stays 0.
func RoundCube(q, r, s float64) Cube {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)
	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)
	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	} else {
		rs = -rq - rr
	}
	return Cube{Q: int(rq), R: int(rr), S: int(rs)}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
