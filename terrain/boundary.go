package terrain

import (
	"github.com/gravitas-015/hexwalls/geom"
	"github.com/gravitas-015/hexwalls/hex"
)

// Boundary is an ordered, implicitly closed outline: segment i connects
// Points[i] and Points[(i+1) mod N]. Points must already be expressed in
// the coordinate space used by the grid; transforms belong to the host.
// The boundary is not owned by the core and must not be mutated while a
// query runs.
type Boundary struct {
	Points []geom.Point

	// ContainsFunc overrides the containment test; nil uses the parity
	// ray-cast against Points.
	ContainsFunc func(geom.Point) bool
}

// Contains reports whether p lies inside the boundary.
func (b Boundary) Contains(p geom.Point) bool {
	if b.ContainsFunc != nil {
		return b.ContainsFunc(p)
	}
	return geom.PointInBoundary(b.Points, p)
}

// Scene enumerates the boundary objects of a scene, already transformed
// into grid space.
type Scene interface {
	Boundaries() []Boundary
}

// WallSet is the set of cells covered by a boundary. No ordering, no
// duplicates.
type WallSet map[hex.Cube]struct{}

// Add inserts a cell.
func (s WallSet) Add(c hex.Cube) { s[c] = struct{}{} }

// Contains reports whether the cell is in the set.
func (s WallSet) Contains(c hex.Cube) bool {
	_, ok := s[c]
	return ok
}

// Merge unions other into s.
func (s WallSet) Merge(other WallSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}
