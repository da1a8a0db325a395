package voxeldata

import (
	"testing"

	"sphervoxel/trace"
)

func TestPayloadSetGetDelete(t *testing.T) {
	p := NewPayload[string]()
	v := trace.Voxel{IR: 1, IP: 2, IA: 3}

	if _, ok := p.Get(v); ok {
		t.Fatal("Get() on empty payload returned ok=true")
	}

	p.Set(v, "rock")
	got, ok := p.Get(v)
	if !ok || got != "rock" {
		t.Fatalf("Get() = %q, %v, want %q, true", got, ok, "rock")
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}

	p.Delete(v)
	if _, ok := p.Get(v); ok {
		t.Fatal("Get() after Delete() returned ok=true")
	}
	if p.Len() != 0 {
		t.Fatalf("Len() after Delete() = %d, want 0", p.Len())
	}
}

func TestPayloadApplySequence(t *testing.T) {
	p := NewPayload[int]()
	seq := trace.Sequence{
		{Voxel: trace.Voxel{IR: 1, IP: 0, IA: 0}, TEnter: 0, TExit: 1},
		{Voxel: trace.Voxel{IR: 2, IP: 0, IA: 0}, TEnter: 1, TExit: 2},
	}

	p.ApplySequence(seq, 7)

	for _, rec := range seq {
		got, ok := p.Get(rec.Voxel)
		if !ok || got != 7 {
			t.Fatalf("Get(%v) = %d, %v, want 7, true", rec.Voxel, got, ok)
		}
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
}

func TestVisitSet(t *testing.T) {
	s := NewVisitSet()
	a := trace.Voxel{IR: 1, IP: 0, IA: 0}
	b := trace.Voxel{IR: 2, IP: 0, IA: 0}

	if s.Visited(a) {
		t.Fatal("Visited() on empty set returned true")
	}

	s.Mark(a)
	if !s.Visited(a) {
		t.Fatal("Visited(a) = false after Mark(a)")
	}
	if s.Visited(b) {
		t.Fatal("Visited(b) = true before Mark(b)")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	seq := trace.Sequence{
		{Voxel: a, TEnter: 0, TExit: 1},
		{Voxel: b, TEnter: 1, TExit: 2},
	}
	s.MarkSequence(seq)
	if !s.Visited(a) || !s.Visited(b) {
		t.Fatal("MarkSequence() did not mark both voxels")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}
