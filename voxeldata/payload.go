// Package voxeldata supplements the traversal core with the
// convenience layer the teacher's own voxel grid carries but the
// traversal core's Non-goals exclude: per-voxel data attached to
// indices (the teacher's VoxelCoord -> VoxelMaterial association,
// core/voxel_types.go) and a set of visited/active cells (the
// teacher's VoxelPlanet.ActiveCells). Both are built on top of
// trace.Voxel; neither is imported by the trace or gridspec packages,
// so attaching data to voxels never touches the core's Non-goals
// around per-voxel interpolation.
package voxeldata

import "sphervoxel/trace"

// Payload is a sparse sidecar mapping voxel indices to caller data,
// generalizing the teacher's VoxelCoord-keyed maps to any value type.
type Payload[T any] struct {
	values map[trace.Voxel]T
}

// NewPayload returns an empty Payload.
func NewPayload[T any]() *Payload[T] {
	return &Payload[T]{values: make(map[trace.Voxel]T)}
}

// Set attaches value to voxel, replacing any prior value.
func (p *Payload[T]) Set(voxel trace.Voxel, value T) {
	p.values[voxel] = value
}

// Get returns the value attached to voxel, if any.
func (p *Payload[T]) Get(voxel trace.Voxel) (T, bool) {
	v, ok := p.values[voxel]
	return v, ok
}

// Delete removes any value attached to voxel.
func (p *Payload[T]) Delete(voxel trace.Voxel) {
	delete(p.values, voxel)
}

// Len reports how many voxels currently carry a value.
func (p *Payload[T]) Len() int {
	return len(p.values)
}

// ApplySequence attaches value to every voxel a traversal sequence
// passed through, the common case of annotating a ray's path in one
// call.
func (p *Payload[T]) ApplySequence(seq trace.Sequence, value T) {
	for _, rec := range seq {
		p.values[rec.Voxel] = value
	}
}

// VisitSet tracks which voxels have been touched by some batch of
// traversals, generalizing the teacher's
// `ActiveCells map[VoxelCoord]bool` to a standalone helper driver code
// can use without reaching into a planet-shaped struct.
type VisitSet struct {
	visited map[trace.Voxel]bool
}

// NewVisitSet returns an empty VisitSet.
func NewVisitSet() *VisitSet {
	return &VisitSet{visited: make(map[trace.Voxel]bool)}
}

// Mark records that voxel has been visited.
func (s *VisitSet) Mark(voxel trace.Voxel) {
	s.visited[voxel] = true
}

// MarkSequence marks every voxel in seq as visited.
func (s *VisitSet) MarkSequence(seq trace.Sequence) {
	for _, rec := range seq {
		s.visited[rec.Voxel] = true
	}
}

// Visited reports whether voxel has been marked.
func (s *VisitSet) Visited(voxel trace.Voxel) bool {
	return s.visited[voxel]
}

// Len reports how many distinct voxels have been marked.
func (s *VisitSet) Len() int {
	return len(s.visited)
}
