// Package trace implements the spherical volume ray traversal state
// machine: given a ray and an immutable gridspec.Grid, it produces the
// ordered sequence of voxels the ray enters and the parametric ray
// range spent in each (spec.md sections 4 and 6). The package is pure
// and synchronous — Walk has no shared mutable state and a Grid may be
// consulted by many concurrent Walk calls.
package trace

// Voxel identifies a single cell of a spherical voxel grid by its
// radial, polar, and azimuthal indices. IR is 1-based (1..Nr); 0 is
// reserved to mean "outside the sphere" and is never emitted. IP and
// IA are 0-based and wrap modulo Np and Na respectively.
type Voxel struct {
	IR, IP, IA int
}

// Record is one entry of a traversal: the voxel occupied, and the
// parametric ray range [TEnter, TExit) spent inside it.
type Record struct {
	Voxel         Voxel
	TEnter, TExit float64
}

// Sequence is an ordered list of Records, in the order the ray enters
// them. An empty Sequence means the ray does not intersect the grid
// within the requested parameter range.
type Sequence []Record
