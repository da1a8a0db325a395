package geom

import (
	"math"
	"testing"
)

func TestNewRayValidation(t *testing.T) {
	tests := []struct {
		name    string
		origin  Vector
		dir     Vector
		wantErr bool
	}{
		{name: "valid", origin: New(0, 0, 0), dir: New(1, 0, 0), wantErr: false},
		{name: "zero direction", origin: New(0, 0, 0), dir: New(0, 0, 0), wantErr: true},
		{name: "non-finite direction", origin: New(0, 0, 0), dir: New(math.Inf(1), 0, 0), wantErr: true},
		{name: "non-finite origin", origin: New(math.Inf(1), 0, 0), dir: New(1, 0, 0), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRay(tc.origin, tc.dir)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewRay() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRayAt(t *testing.T) {
	ray, err := NewRay(New(1, 2, 3), New(0, 0, 1))
	if err != nil {
		t.Fatalf("NewRay() error = %v", err)
	}

	got := ray.At(4)
	want := New(1, 2, 7)
	if got != want {
		t.Fatalf("At(4) = %v, want %v", got, want)
	}
}
