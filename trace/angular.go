package trace

import (
	"math"

	"sphervoxel/geom"
	"sphervoxel/gridspec"
)

// parallelEps bounds how close to zero the ray/plane denominator in
// angularStep can be before it is treated as an exact parallel miss.
// Using a strict == 0 check here is not safe: a ray that lies exactly
// along an axis (e.g. the polar axis) produces a normal component that
// is only zero up to floating-point rounding (cos(3*pi/2) is a tiny
// nonzero value, not 0), and dividing by that near-zero denominator
// would produce a spurious, wildly inaccurate crossing time instead of
// correctly reporting no crossing.
const parallelEps = 1e-9

// angularStep implements the shared half-plane crossing test behind
// both spec.md section 4.3 (polar) and 4.4 (azimuthal): the two
// families differ only in which pair of vector components form the
// plane (XY for polar, XZ for azimuthal), so the math is written once
// and instantiated twice below — mirroring the way the teacher's
// GetBandForLatitude/GetIndexForLongitude (core/coordinates.go) are a
// structurally identical pair of wedge-lookup functions differing only
// in which axis pair they use.
func angularStep(
	ray geom.Ray,
	center geom.Vector,
	dirOf func(int) (cos, sin float64),
	n, idx int,
	ua, va int,
	tCur, eps float64,
) (tNext float64, newIdx int, ok bool) {
	lowK := idx
	highK := mod(idx+1, n)

	v := ray.Origin.Sub(center)

	hit := func(k int) (float64, bool) {
		cos, sin := dirOf(k)
		nu, nv := -sin, cos // half-plane normal, in the (ua, va) components
		denom := nu*ray.Dir[ua] + nv*ray.Dir[va]
		if math.Abs(denom) < parallelEps {
			return 0, false
		}
		numer := nu*v[ua] + nv*v[va]
		t := -numer / denom
		if t <= tCur+eps {
			return 0, false
		}
		// The half-plane extends only along +(cos, sin), not its
		// antipode across the central axis (spec.md section 4.3).
		pu := v[ua] + t*ray.Dir[ua]
		pv := v[va] + t*ray.Dir[va]
		if pu*cos+pv*sin <= 0 {
			return 0, false
		}
		return t, true
	}

	tLow, okLow := hit(lowK)
	tHigh, okHigh := hit(highK)

	switch {
	case okLow && okHigh:
		if tLow <= tHigh {
			return tLow, mod(idx-1, n), true
		}
		return tHigh, mod(idx+1, n), true
	case okLow:
		return tLow, mod(idx-1, n), true
	case okHigh:
		return tHigh, mod(idx+1, n), true
	default:
		return 0, idx, false
	}
}

func polarStep(ray geom.Ray, grid *gridspec.Grid, ip int, tCur, eps float64) (float64, int, bool) {
	return angularStep(ray, grid.Center, grid.PolarDir, grid.Np, ip, 0, 1, tCur, eps)
}

func azimuthalStep(ray geom.Ray, grid *gridspec.Grid, ia int, tCur, eps float64) (float64, int, bool) {
	return angularStep(ray, grid.Center, grid.AzimuthalDir, grid.Na, ia, 0, 2, tCur, eps)
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
