package terrain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gravitas-015/hexwalls/config"
	"github.com/gravitas-015/hexwalls/geom"
	"github.com/gravitas-015/hexwalls/hex"
)

type sliceScene []Boundary

func (s sliceScene) Boundaries() []Boundary { return s }

func newTestMapper(t *testing.T, size float64) *Mapper {
	t.Helper()
	g, err := hex.NewGrid(size)
	if err != nil {
		t.Fatalf("unexpected grid error: %v", err)
	}
	return NewMapper(g)
}

func squareBoundary(x, y, side float64) Boundary {
	return Boundary{Points: []geom.Point{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
	}}
}

func TestThickenedSetIsSupersetOfRaw(t *testing.T) {
	m := newTestMapper(t, 1)
	b := squareBoundary(0, 0, 6)
	w := &Walker{Grid: m.Grid, RadiusWeight: m.RadiusWeight}
	raw, err := w.Walk(b, b.Points[0], b.Points[2])
	if err != nil {
		t.Fatalf("unexpected walk error: %v", err)
	}
	thick := Thicken(m.Grid, b, raw)
	if len(thick) < len(raw) {
		t.Fatalf("thickened set smaller than raw: %d < %d", len(thick), len(raw))
	}
	for c := range raw {
		if !thick.Contains(c) {
			t.Fatalf("raw cell %v missing from thickened set", c)
		}
	}
	for c := range thick {
		if raw.Contains(c) {
			continue
		}
		if !b.Contains(m.Grid.HexToPoint(c)) {
			t.Fatalf("added cell %v has its center outside the boundary", c)
		}
	}
}

func TestSceneWallsAccumulatesObjects(t *testing.T) {
	m := newTestMapper(t, 1)
	near := squareBoundary(0, 0, 4)
	far := squareBoundary(30, 30, 4)
	walls, err := m.SceneWalls(sliceScene{near, far})
	if err != nil {
		t.Fatalf("unexpected scene error: %v", err)
	}
	if !walls.Contains(m.Grid.PointToHex(geom.Point{X: 2, Y: 0})) {
		t.Fatalf("missing cell from the first boundary")
	}
	if !walls.Contains(m.Grid.PointToHex(geom.Point{X: 32, Y: 30})) {
		t.Fatalf("missing cell from the second boundary")
	}
}

func TestSceneWallsSkipsMalformedBoundary(t *testing.T) {
	m := newTestMapper(t, 1)
	malformed := Boundary{Points: []geom.Point{{X: 1, Y: 1}}}
	walls, err := m.SceneWalls(sliceScene{malformed, squareBoundary(0, 0, 4)})
	if err != nil {
		t.Fatalf("malformed boundary should be skipped, got error: %v", err)
	}
	if len(walls) == 0 {
		t.Fatalf("remaining boundary should still produce cells")
	}
}

func TestWallsAroundControlMatchesExplicitSpan(t *testing.T) {
	m := newTestMapper(t, 1)
	b := squareBoundary(0, 0, 6)
	controls := b.Points
	got, err := m.WallsAroundControl(b, controls, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := m.WallsBetween(b, controls[3], controls[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("set sizes differ: %d vs %d", len(got), len(want))
	}
	for c := range want {
		if !got.Contains(c) {
			t.Fatalf("missing cell %v", c)
		}
	}
}

func TestWallsAroundControlErrors(t *testing.T) {
	m := newTestMapper(t, 1)
	b := squareBoundary(0, 0, 6)
	if _, err := m.WallsAroundControl(b, nil, 0); !errors.Is(err, ErrNoBoundaryPoints) {
		t.Fatalf("expected ErrNoBoundaryPoints, got %v", err)
	}
	if _, err := m.WallsAroundControl(b, b.Points, 7); err == nil {
		t.Fatalf("expected range error for pivot 7, got nil")
	}
}

func TestWallsBetweenEmptyBoundary(t *testing.T) {
	m := newTestMapper(t, 1)
	if _, err := m.WallsBetween(Boundary{}, geom.Point{}, geom.Point{}); !errors.Is(err, ErrNoBoundaryPoints) {
		t.Fatalf("expected ErrNoBoundaryPoints, got %v", err)
	}
}

func TestNewMapperFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.yaml")
	data := []byte("grid:\n  hex_size: 2.0\nterrain:\n  radius_weight: 0.75\n  bounds:\n    min_x: -5\n    min_y: -5\n    max_x: 5\n    max_y: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	m, err := NewMapperFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected mapper error: %v", err)
	}
	if m.Grid.Size() != 2.0 {
		t.Fatalf("expected hex size 2.0, got %v", m.Grid.Size())
	}
	if m.RadiusWeight != 0.75 {
		t.Fatalf("expected radius weight 0.75, got %v", m.RadiusWeight)
	}
	if m.Bounds == nil || m.Bounds.MaxX != 5 {
		t.Fatalf("expected bounds from config, got %+v", m.Bounds)
	}
}
