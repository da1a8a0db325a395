// Package geom holds the geometry primitives the traversal core
// consumes: rays and the handful of vector operations it needs. It is a
// thin domain layer over go-gl/mathgl's float64 vector type rather than
// a hand-rolled one — mathgl already plays this role for the teacher's
// own ray-sphere picking code, just in its float32 form.
package geom

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidRay is returned when a ray cannot be constructed: zero or
// non-finite direction, or non-finite origin.
var ErrInvalidRay = errors.New("geom: invalid ray")

// Vector is a free or bound 3-vector. It wraps mgl64.Vec3 so that the
// rest of the module never has to import mathgl directly.
type Vector = mgl64.Vec3

// New builds a Vector from components.
func New(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// Ray is a parametric ray P(t) = Origin + t*Dir. Dir need not be unit
// length; it only needs to be non-zero.
type Ray struct {
	Origin Vector
	Dir    Vector
}

// NewRay validates and constructs a Ray. Construction-time validation
// failure (zero direction, non-finite components) is reported here so
// that the traversal core never has to special-case malformed rays.
func NewRay(origin, dir Vector) (Ray, error) {
	if !finite3(origin) || !finite3(dir) {
		return Ray{}, ErrInvalidRay
	}
	if dir.Len() == 0 {
		return Ray{}, ErrInvalidRay
	}
	return Ray{Origin: origin, Dir: dir}, nil
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float64) Vector {
	return r.Origin.Add(r.Dir.Mul(t))
}

func finite3(v Vector) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
