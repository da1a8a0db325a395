package trace

import (
	"math"

	"sphervoxel/geom"
)

// quadraticRoots solves a*t^2 + b*t + c = 0, returning the two real
// roots in sorted order when they exist. tangent reports a double
// root (the sphere grazes the ray at a single parameter value) within
// the traversal's tolerance eps.
func quadraticRoots(a, b, c, eps float64) (t0, t1 float64, ok, tangent bool) {
	if a == 0 {
		return 0, 0, false, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false, false
	}
	sq := math.Sqrt(disc)
	t0 = (-b - sq) / (2 * a)
	t1 = (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	tangent = sq <= eps
	return t0, t1, true, tangent
}

// sphereHit solves for the parameters at which ray crosses the sphere
// of the given squared radius centered at center (spec.md section
// 4.1's quadratic, reused for both the outer-sphere entry test and
// per-shell radial crossings in section 4.2).
func sphereHit(ray geom.Ray, center geom.Vector, radiusSq, eps float64) (t0, t1 float64, ok, tangent bool) {
	v := ray.Origin.Sub(center)
	a := ray.Dir.Dot(ray.Dir)
	b := 2 * ray.Dir.Dot(v)
	c := v.Dot(v) - radiusSq
	return quadraticRoots(a, b, c, eps)
}
