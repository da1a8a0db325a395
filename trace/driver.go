package trace

import (
	"fmt"
	"math"

	"sphervoxel/geom"
	"sphervoxel/gridspec"
)

// Walk is the traversal core's single entry point (spec.md section 6):
// given a ray, an immutable grid, and a parameter bound tMax, it
// returns the ordered sequence of voxels the ray enters along with the
// parametric range spent in each. An empty, nil-error result means "no
// intersection within [0, tMax]" — not an error. Walk is pure and
// allocates no shared state, so a single *gridspec.Grid may be walked
// concurrently by many callers.
func Walk(ray geom.Ray, grid *gridspec.Grid, tMax float64) (Sequence, error) {
	if tMax < 0 || math.IsNaN(tMax) {
		return nil, fmt.Errorf("%w: tMax=%v", ErrInvalidRay, tMax)
	}

	eps := epsilonFor(tMax)

	tEnterSphere, tExitSphere, ok := sphereEntry(ray, grid, tMax, eps)
	if !ok {
		return Sequence{}, nil
	}

	entry := ray.At(tEnterSphere)
	rel := entry.Sub(grid.Center)
	distSq := rel.Dot(rel)

	ir := initialRadialIndex(grid, distSq, eps)
	ip := grid.PolarIndexOf(math.Atan2(rel[1], rel[0]))
	ia := grid.AzimuthalIndexOf(math.Atan2(rel[2], rel[0]))

	tCur := tEnterSphere
	tLimit := math.Min(tExitSphere, tMax)

	seq := make(Sequence, 0, grid.Nr+grid.Np+grid.Na)
	safety := grid.SafetyBound()

	for {
		tr, nextIR, _, rOK := radialStep(ray, grid, ir, tCur, eps)
		tp, nextIP, pOK := polarStep(ray, grid, ip, tCur, eps)
		ta, nextIA, aOK := azimuthalStep(ray, grid, ia, tCur, eps)

		if !rOK && !pOK && !aOK {
			seq = append(seq, Record{Voxel{ir, ip, ia}, tCur, tLimit})
			break
		}

		tMin := math.Inf(1)
		if rOK {
			tMin = math.Min(tMin, tr)
		}
		if pOK {
			tMin = math.Min(tMin, tp)
		}
		if aOK {
			tMin = math.Min(tMin, ta)
		}

		if tMin >= tLimit {
			seq = append(seq, Record{Voxel{ir, ip, ia}, tCur, tLimit})
			break
		}

		seq = append(seq, Record{Voxel{ir, ip, ia}, tCur, tMin})

		// Ties: every candidate within eps of the minimum transitions
		// at once, producing one record that folds in all the index
		// changes together (spec.md section 4.5 and the design note in
		// section 9 on why ties must not be applied serially).
		if rOK && tr-tMin <= eps {
			ir = nextIR
		}
		if pOK && tp-tMin <= eps {
			ip = nextIP
		}
		if aOK && ta-tMin <= eps {
			ia = nextIA
		}

		tCur = tMin

		if ir < 1 || ir > grid.Nr {
			break
		}

		if len(seq) > safety {
			return nil, fmt.Errorf("%w: emitted more than %d records", ErrDiverged, safety)
		}
	}

	return seq, nil
}
