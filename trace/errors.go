package trace

import "errors"

// ErrInvalidRay is returned when Walk is called with a negative tMax.
// Malformed rays themselves are rejected earlier, at geom.NewRay.
var ErrInvalidRay = errors.New("trace: invalid ray parameter range")

// ErrDiverged is returned when a traversal emits more records than the
// grid's safety bound allows (spec.md section 4.5, rule 4; section
// 7.2). The partial result is discarded — callers receive (nil, err).
var ErrDiverged = errors.New("trace: traversal diverged past safety bound")
