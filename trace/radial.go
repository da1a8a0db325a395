package trace

import (
	"math"

	"sphervoxel/geom"
	"sphervoxel/gridspec"
)

// radialStep finds the next parameter at which the ray crosses the
// inner or outer boundary of the current shell ir (spec.md section
// 4.2). Rather than carrying a stored inward/outward sign, the
// direction is re-derived every call from which boundary's quadratic
// produced the winning root — the design the spec calls out in
// section 9 as more robust against accumulated tangency error.
func radialStep(ray geom.Ray, grid *gridspec.Grid, ir int, tCur, eps float64) (tNext float64, newIR int, tangent, ok bool) {
	best := math.Inf(1)
	bestIsOuter := false
	bestTangent := false
	found := false

	consider := func(shellIdx int, isOuter bool) {
		if shellIdx < 0 || shellIdx > grid.Nr {
			return
		}
		t0, t1, hit, tang := sphereHit(ray, grid.Center, grid.ShellRadiusSq(shellIdx), eps)
		if !hit {
			return
		}
		for _, t := range [2]float64{t0, t1} {
			if t <= tCur+eps {
				continue
			}
			if t < best {
				best = t
				bestIsOuter = isOuter
				bestTangent = tang
				found = true
			}
		}
	}

	consider(ir-1, false) // inner boundary: crossing it moves ir inward
	consider(ir, true)    // outer boundary: crossing it moves ir outward

	if !found {
		return 0, ir, false, false
	}

	newIR = ir
	if !bestTangent {
		if bestIsOuter {
			newIR = ir + 1
		} else {
			newIR = ir - 1
		}
	}
	return best, newIR, bestTangent, true
}
