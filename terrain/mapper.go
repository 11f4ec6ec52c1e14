package terrain

import (
	"fmt"
	"log"

	"github.com/gravitas-015/hexwalls/config"
	"github.com/gravitas-015/hexwalls/geom"
	"github.com/gravitas-015/hexwalls/hex"
)

// Mapper converts boundary outlines into wall-cell sets. Read-only after
// construction; every mapping call is a pure function of its inputs.
type Mapper struct {
	Grid *hex.Grid

	// RadiusWeight scales the inscribed-circle coverage test, default 1.
	RadiusWeight float64

	// Bounds optionally restricts which boundary segments are walked.
	Bounds *geom.Rect
}

// NewMapper creates a mapper with the default radius weight.
func NewMapper(grid *hex.Grid) *Mapper {
	return &Mapper{Grid: grid, RadiusWeight: 1}
}

// NewMapperFromConfig builds the grid and mapper from loaded settings.
func NewMapperFromConfig(cfg *config.Config) (*Mapper, error) {
	grid, err := hex.NewGrid(cfg.Grid.HexSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}
	m := NewMapper(grid)
	m.RadiusWeight = cfg.Terrain.RadiusWeight
	if b := cfg.Terrain.Bounds; b != nil {
		m.Bounds = &geom.Rect{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
	}
	return m, nil
}

// SceneWalls accumulates wall cells across every boundary object of a
// scene. Each outline is treated as an open loop starting and ending
// adjacent to the same point: the span runs from its first raw point to
// its second-to-last. Boundaries with fewer than two points are logged
// and skipped; they abort only their own contribution.
func (m *Mapper) SceneWalls(scene Scene) (WallSet, error) {
	boundaries := scene.Boundaries()
	walls := make(WallSet)
	for i, b := range boundaries {
		if len(b.Points) < 2 {
			log.Printf("Skipping boundary %d: %d points", i, len(b.Points))
			continue
		}
		start := b.Points[0]
		end := b.Points[len(b.Points)-2]
		part, err := m.WallsBetween(b, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to map boundary %d: %w", i, err)
		}
		walls.Merge(part)
	}
	log.Printf("Mapped %d boundaries into %d wall cells", len(boundaries), len(walls))
	return walls, nil
}

// WallsAroundControl maps the span around one control point: the two
// wrapping neighbors of pivot in controls become the span endpoints.
func (m *Mapper) WallsAroundControl(b Boundary, controls []geom.Point, pivot int) (WallSet, error) {
	n := len(controls)
	if n == 0 {
		return nil, fmt.Errorf("failed to resolve control span: %w", ErrNoBoundaryPoints)
	}
	if pivot < 0 || pivot >= n {
		return nil, fmt.Errorf("control index %d out of range [0,%d)", pivot, n)
	}
	start := controls[(pivot-1+n)%n]
	end := controls[(pivot+1)%n]
	return m.WallsBetween(b, start, end)
}

// WallsBetween maps the boundary span between the points nearest start
// and end: the raw hex-by-hex walk thickened by one ring.
func (m *Mapper) WallsBetween(b Boundary, start, end geom.Point) (WallSet, error) {
	w := &Walker{Grid: m.Grid, RadiusWeight: m.RadiusWeight, Bounds: m.Bounds}
	raw, err := w.Walk(b, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to walk boundary: %w", err)
	}
	return Thicken(m.Grid, b, raw), nil
}
