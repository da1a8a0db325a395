package trace

import (
	"math"
	"testing"

	"sphervoxel/geom"
	"sphervoxel/gridspec"
)

// TestOrthographicSweep covers spec.md section 8 scenario 5 — the
// source's own benchmark shape: a 64x64 sweep of parallel rays through
// a 64-shell/64-wedge/64-wedge grid. Rays are sampled on a polar disk
// rather than a square so every one of them actually reaches the
// sphere (a square sweep's corners fall outside the circle of radius
// R_max and would vacuously violate the "every ray yields a non-empty
// sequence" expectation for no interesting reason).
func TestOrthographicSweep(t *testing.T) {
	const rMax = 8.0
	grid := mustGrid(t, geom.New(0, 0, 0), gridspec.FullSphere(0, rMax), 64, 64, 64)

	const samples = 64
	z0 := -(rMax + 1)
	tMax := 4 * rMax

	for a := 0; a < samples; a++ {
		radius := rMax * 0.9 * (float64(a) + 0.5) / samples
		for b := 0; b < samples; b++ {
			angle := 2 * math.Pi * float64(b) / samples
			x := radius * math.Cos(angle)
			y := radius * math.Sin(angle)

			ray := mustRay(t, geom.New(x, y, z0), geom.New(0, 0, 1))
			seq, err := Walk(ray, grid, tMax)
			if err != nil {
				t.Fatalf("Walk(x=%v, y=%v) error = %v", x, y, err)
			}
			if len(seq) == 0 {
				t.Fatalf("Walk(x=%v, y=%v) produced no records, want a crossing", x, y)
			}

			assertContiguous(t, seq)
			assertBounds(t, grid, seq)
			assertRadialAdjacency(t, seq)
			assertAngularAdjacency(t, grid.Np, ipOf, seq)
			assertAngularAdjacency(t, grid.Na, iaOf, seq)

			if first, last := seq[0].Voxel.IR, seq[len(seq)-1].Voxel.IR; first != grid.Nr || last != grid.Nr {
				t.Fatalf("Walk(x=%v, y=%v): entry/exit shell = %d/%d, want both = %d (outermost)", x, y, first, last, grid.Nr)
			}
		}
	}
}

// TestPolarCrossingMeridian covers spec.md section 8 scenario 6 and
// the open question in section 9: rays whose closest approach to the
// polar axis is small, but nonzero, must still obey the adjacency
// invariant with at most one multi-step exception per ray (the
// meridian wrap). A battery of such rays, at decreasing distances from
// the axis, is swept to substantiate that the exception count never
// exceeds one, rather than asserting it from a single hand-picked ray.
func TestPolarCrossingMeridian(t *testing.T) {
	grid := mustGrid(t, geom.New(0, 0, 0), gridspec.FullSphere(0, 4), 4, 4, 4)

	offsets := []float64{1, 0.1, 0.01, 0.001, 0.0001}
	for _, off := range offsets {
		ray := mustRay(t, geom.New(-10, -10+off, 0), geom.New(1, 1, 0))
		seq, err := Walk(ray, grid, 100)
		if err != nil {
			t.Fatalf("Walk(offset=%v) error = %v", off, err)
		}
		if len(seq) == 0 {
			t.Fatalf("Walk(offset=%v) produced no records", off)
		}

		assertContiguous(t, seq)
		assertBounds(t, grid, seq)
		assertAngularAdjacency(t, grid.Np, ipOf, seq)
	}
}

func ipOf(r Record) int { return r.Voxel.IP }
func iaOf(r Record) int { return r.Voxel.IA }

// assertAngularAdjacency checks spec.md section 8's "angular adjacency
// (orthographic)" invariant: consecutive records' angular index must
// differ by at most one wedge, measured circularly (mod n), with at
// most one exception anywhere in the sequence — the single meridian
// double-jump the source's own adjacency check tolerates.
func assertAngularAdjacency(t *testing.T, n int, field func(Record) int, seq Sequence) {
	t.Helper()
	exceptions := 0
	for i := 1; i < len(seq); i++ {
		d := circularDist(field(seq[i]), field(seq[i-1]), n)
		if d > 1 {
			exceptions++
		}
	}
	if exceptions > 1 {
		t.Errorf("angular adjacency: %d exceptions in one sequence, want at most 1: %+v", exceptions, seq)
	}
}

func circularDist(a, b, n int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > n-d {
		d = n - d
	}
	return d
}
