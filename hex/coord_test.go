package hex

import "testing"

func TestRingOneHasSixDistinctNeighbors(t *testing.T) {
	center := Axial{Q: 2, R: -1}
	ring := Ring(center, 1)
	if len(ring) != 6 {
		t.Fatalf("expected 6 ring cells, got %d", len(ring))
	}
	seen := make(map[Axial]bool)
	for _, a := range ring {
		if seen[a] {
			t.Fatalf("duplicate ring cell %v", a)
		}
		seen[a] = true
		if d := DistanceAxial(center, a); d != 1 {
			t.Fatalf("ring cell %v at distance %d, expected 1", a, d)
		}
		c := a.ToCube()
		if c.Q+c.R+c.S != 0 {
			t.Fatalf("cube %v violates q+r+s=0", c)
		}
	}
}

func TestRingOrderIsStable(t *testing.T) {
	expected := []Axial{{-1, 1}, {0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, 0}}
	ring := Ring(Axial{}, 1)
	for i, a := range ring {
		if a != expected[i] {
			t.Fatalf("ring[%d] = %v, expected %v", i, a, expected[i])
		}
	}
}

func TestCubeRingMatchesAxialRing(t *testing.T) {
	center := Cube{Q: 1, R: -3, S: 2}
	ring := CubeRing(center, 2)
	if len(ring) != 12 {
		t.Fatalf("expected 12 cells at radius 2, got %d", len(ring))
	}
	for _, c := range ring {
		if c.Q+c.R+c.S != 0 {
			t.Fatalf("cube %v violates q+r+s=0", c)
		}
		if d := DistanceCube(center, c); d != 2 {
			t.Fatalf("cell %v at distance %d, expected 2", c, d)
		}
	}
}

func TestRingCellsBelongToDisk(t *testing.T) {
	center := Axial{Q: -2, R: 4}
	disk := make(map[Axial]bool)
	for _, a := range Disk(center, 2) {
		disk[a] = true
	}
	if len(disk) != 19 {
		t.Fatalf("expected 19 disk cells, got %d", len(disk))
	}
	for _, a := range Ring(center, 2) {
		if !disk[a] {
			t.Fatalf("ring cell %v missing from disk", a)
		}
	}
}

func TestRoundCubeKeepsClosure(t *testing.T) {
	for q := -30; q <= 30; q++ {
		for r := -30; r <= 30; r++ {
			fq := float64(q) * 0.137
			fr := float64(r) * 0.211
			c := RoundCube(fq, fr, -fq-fr)
			if c.Q+c.R+c.S != 0 {
				t.Fatalf("RoundCube(%v, %v) = %v violates q+r+s=0", fq, fr, c)
			}
		}
	}
}

func TestRoundCubeExact(t *testing.T) {
	c := RoundCube(3, -5, 2)
	if (c != Cube{Q: 3, R: -5, S: 2}) {
		t.Fatalf("exact coordinates changed by rounding: %v", c)
	}
}
