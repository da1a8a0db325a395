package gridspec

import (
	"errors"
	"fmt"
	"math"

	"sphervoxel/geom"
)

// ErrInvalidGrid is returned when grid construction parameters violate
// the invariants of spec.md section 3: non-positive counts, an
// inverted or negative radial range, or an angular range outside
// [0, 2*pi].
var ErrInvalidGrid = errors.New("gridspec: invalid grid parameters")

// trigEntry caches a (cos, sin) pair for one angular wedge boundary.
type trigEntry struct {
	Cos, Sin float64
}

// Grid is an immutable spherical voxel grid description: the sphere
// center, radial shell boundaries, and the polar/azimuthal half-plane
// directions, all precomputed once at construction so the traversal
// core's inner loop never calls sin/cos.
//
// Grid mirrors the teacher's SphericalShell/VoxelPlanet pair
// (core/voxel_types.go, core/voxel_planet.go) but collapses the
// per-shell-varying longitude counts that subsystem uses into the
// single uniform Na the traversal core requires (spec.md explicitly
// excludes non-uniform angular spacing from the core). The package
// builds one uniform grid per NewGrid call; it has no builder for
// stacks of grids at different resolutions.
type Grid struct {
	Center geom.Vector
	Bounds Bounds

	Nr, Np, Na int

	// shellRadii[k] = r_k for k in [0, Nr]; shellRadiiSq is its square.
	shellRadii   []float64
	shellRadiiSq []float64

	// polar[k] / azimuthal[k] hold (cos theta_k, sin theta_k) for
	// k in [0, Np) / [0, Na).
	polar      []trigEntry
	azimuthal  []trigEntry
	polarTheta []float64
	aziTheta   []float64
}

// NewGrid validates bounds and counts and precomputes the grid's shell
// radii and angular trig tables.
func NewGrid(center geom.Vector, bounds Bounds, nr, np, na int) (*Grid, error) {
	if nr < 1 || np < 1 || na < 1 {
		return nil, fmt.Errorf("%w: counts must be >= 1, got nr=%d np=%d na=%d", ErrInvalidGrid, nr, np, na)
	}
	if !bounds.valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidGrid, bounds)
	}

	g := &Grid{
		Center: center,
		Bounds: bounds,
		Nr:     nr,
		Np:     np,
		Na:     na,
	}

	g.shellRadii = make([]float64, nr+1)
	g.shellRadiiSq = make([]float64, nr+1)
	dr := (bounds.RadialMax - bounds.RadialMin) / float64(nr)
	for k := 0; k <= nr; k++ {
		r := bounds.RadialMin + float64(k)*dr
		g.shellRadii[k] = r
		g.shellRadiiSq[k] = r * r
	}
	// Guard against accumulated error making the outer radius miss
	// RadialMax exactly; the invariant is strict monotonicity, not an
	// exact floating point match, so this is only a defensive pin.
	g.shellRadii[nr] = bounds.RadialMax
	g.shellRadiiSq[nr] = bounds.RadialMax * bounds.RadialMax

	g.polar, g.polarTheta = buildTrigTable(bounds.PolarMin, bounds.PolarMax, np)
	g.azimuthal, g.aziTheta = buildTrigTable(bounds.AzimuthalMin, bounds.AzimuthalMax, na)

	return g, nil
}

func buildTrigTable(lo, hi float64, n int) ([]trigEntry, []float64) {
	table := make([]trigEntry, n)
	thetas := make([]float64, n)
	span := hi - lo
	for k := 0; k < n; k++ {
		theta := lo + span*float64(k)/float64(n)
		s, c := math.Sincos(theta)
		table[k] = trigEntry{Cos: c, Sin: s}
		thetas[k] = theta
	}
	return table, thetas
}

// ShellRadius returns r_k, the radius of shell boundary k, for
// k in [0, Nr].
func (g *Grid) ShellRadius(k int) float64 { return g.shellRadii[k] }

// ShellRadiusSq returns r_k^2.
func (g *Grid) ShellRadiusSq(k int) float64 { return g.shellRadiiSq[k] }

// PolarDir returns the (cos theta_k, sin theta_k) pair for polar
// half-plane k, k in [0, Np).
func (g *Grid) PolarDir(k int) (cos, sin float64) {
	e := g.polar[k]
	return e.Cos, e.Sin
}

// AzimuthalDir returns the (cos phi_k, sin phi_k) pair for azimuthal
// half-plane k, k in [0, Na).
func (g *Grid) AzimuthalDir(k int) (cos, sin float64) {
	e := g.azimuthal[k]
	return e.Cos, e.Sin
}

// PolarTheta returns the angle of polar half-plane k.
func (g *Grid) PolarTheta(k int) float64 { return g.polarTheta[k] }

// AzimuthalTheta returns the angle of azimuthal half-plane k.
func (g *Grid) AzimuthalTheta(k int) float64 { return g.aziTheta[k] }

// SafetyBound is the maximum number of records a single Walk call may
// emit before it is considered diverged (spec.md section 4.5, rule 4).
func (g *Grid) SafetyBound() int {
	return 8 * (g.Nr + g.Np + g.Na)
}

// PolarIndexOf returns the polar wedge index containing angle theta
// (any real value; it is normalized into the grid's polar range
// first). Used both for initial-voxel lookup (spec.md section 4.1) and
// internally for index bookkeeping; it must use the exact same wedge
// boundaries as PolarDir so the two stay consistent under ties.
func (g *Grid) PolarIndexOf(theta float64) int {
	return wedgeIndex(g.Bounds.PolarMin, g.Bounds.PolarMax, g.Np, theta)
}

// AzimuthalIndexOf is PolarIndexOf's azimuthal counterpart.
func (g *Grid) AzimuthalIndexOf(theta float64) int {
	return wedgeIndex(g.Bounds.AzimuthalMin, g.Bounds.AzimuthalMax, g.Na, theta)
}

// wedgeIndex locates the uniform wedge, among n wedges spanning
// [lo, hi), containing theta. theta is reduced modulo 2*pi into
// [lo, lo+2*pi) first so callers can pass a raw atan2 result.
func wedgeIndex(lo, hi float64, n int, theta float64) int {
	span := hi - lo
	t := math.Mod(theta-lo, twoPi)
	if t < 0 {
		t += twoPi
	}
	t += lo
	if t >= hi {
		// Only reachable for a grid spanning less than the full
		// circle; clamp defensively rather than index out of range.
		t = hi - 1e-12
	}
	idx := int((t - lo) / span * float64(n))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}
