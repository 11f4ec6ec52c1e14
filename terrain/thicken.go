package terrain

import "github.com/gravitas-015/hexwalls/hex"

// Thicken grows a raw wall set by one ring: every ring-1 neighbor whose
// center lies inside the boundary joins the set. The raw walk tends to
// under-cover cells just inside the outline whose area the curve never
// crosses; the extra layer keeps an agent standing next to a wall from
// stepping into them. The result is always a superset of raw.
func Thicken(grid *hex.Grid, b Boundary, raw WallSet) WallSet {
	out := make(WallSet, len(raw))
	out.Merge(raw)
	for cell := range raw {
		for _, nb := range hex.CubeRing(cell, 1) {
			if out.Contains(nb) {
				continue
			}
			if b.Contains(grid.HexToPoint(nb)) {
				out.Add(nb)
			}
		}
	}
	return out
}
