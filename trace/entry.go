package trace

import (
	"math"

	"sphervoxel/geom"
	"sphervoxel/gridspec"
)

// epsilonFor returns the single tolerance used throughout one
// traversal call, scaled to tMax per spec.md section 9 ("a single
// global eps_t scaled to t_max ... avoids per-axis tuning"). It is
// recomputed per call rather than stored on the grid because it also
// depends on the caller-supplied tMax.
func epsilonFor(tMax float64) float64 {
	scale := tMax
	if scale < 1 {
		scale = 1
	}
	return 1e-12 * scale
}

// sphereEntry computes t_enter and t_exit for ray against the grid's
// outer bounding sphere (spec.md section 4.1). ok is false when the
// ray misses the sphere, or intersects it entirely outside [0, tMax].
func sphereEntry(ray geom.Ray, grid *gridspec.Grid, tMax, eps float64) (tEnter, tExit float64, ok bool) {
	t0, t1, hit, _ := sphereHit(ray, grid.Center, grid.ShellRadiusSq(grid.Nr), eps)
	if !hit {
		return 0, 0, false
	}
	if t1 <= 0 {
		// Both roots behind the ray origin (or the ray exits behind
		// it): the sphere is missed, or is entirely in the past.
		return 0, 0, false
	}
	tEnter = math.Max(0, t0)
	tExit = math.Min(tMax, t1)
	if tEnter >= tExit {
		return 0, 0, false
	}
	return tEnter, tExit, true
}

// initialRadialIndex locates the shell containing a point at squared
// distance distSq from the grid center. A point exactly on a shell
// boundary belongs to the shell below it — the voxel the ray is about
// to occupy (spec.md section 4.1's numerical-care note) — realized
// here as "smallest k whose outer radius r_k is at or beyond distSq".
func initialRadialIndex(grid *gridspec.Grid, distSq, eps float64) int {
	for k := 1; k <= grid.Nr; k++ {
		if grid.ShellRadiusSq(k) >= distSq-eps {
			return k
		}
	}
	return grid.Nr
}
