package physics

import (
	"math"
	"testing"
)

func TestParsePotentialTypeCoercesUnknown(t *testing.T) {
	if got := ParsePotentialType("bogus"); got != PotentialNone {
		t.Errorf("ParsePotentialType(bogus) = %v, want PotentialNone", got)
	}
	if got := ParsePotentialType("freehand"); got != PotentialFreehand {
		t.Errorf("ParsePotentialType(freehand) = %v, want PotentialFreehand", got)
	}
}

func TestBuildNoneIsZero(t *testing.T) {
	v := NewPotentialField(8, 8)
	b := NewPotentialBuilder(1.0)
	b.Build(v, PotentialNone, 5.0, 1.0, 2.0)
	for _, val := range v.Values() {
		if val != 0 {
			t.Fatalf("expected zero potential, got %g", val)
		}
	}
}

func TestBuildSingleWellIsNegativeAtCenter(t *testing.T) {
	v := NewPotentialField(16, 16)
	dx := 1.0
	b := NewPotentialBuilder(dx)
	b.Build(v, PotentialSingle, 3.0, 1.0, 2.0)

	center := v.At(8, 8)
	corner := v.At(0, 0)
	if center >= 0 {
		t.Errorf("expected negative well at center, got %g", center)
	}
	if center > corner {
		t.Errorf("center (%g) should be deeper than corner (%g)", center, corner)
	}
}

func TestBuildAppliesStrengthScale(t *testing.T) {
	v1 := NewPotentialField(8, 8)
	v2 := NewPotentialField(8, 8)
	b := NewPotentialBuilder(1.0)
	b.Build(v1, PotentialQuadratic, 2.0, 1.0, 3.0)
	b.Build(v2, PotentialQuadratic, 2.0, 2.0, 3.0)

	for cell := range v1.Values() {
		if math.Abs(v2.Values()[cell]-2*v1.Values()[cell]) > 1e-12 {
			t.Fatalf("cell %d: scale-2 value %g is not double scale-1 value %g", cell, v2.Values()[cell], v1.Values()[cell])
		}
	}
}

func TestSwitchingToFreehandZeroes(t *testing.T) {
	v := NewPotentialField(8, 8)
	b := NewPotentialBuilder(1.0)
	b.Build(v, PotentialSingle, 5.0, 1.0, 2.0)
	if v.At(4, 4) == 0 {
		t.Fatal("precondition failed: single-well potential should be nonzero at center")
	}
	b.Build(v, PotentialFreehand, 5.0, 1.0, 2.0)
	for _, val := range v.Values() {
		if val != 0 {
			t.Fatalf("expected freehand switch to zero V, got %g", val)
		}
	}
}

// TestBrushStrokeDeposition exercises spec scenario S6: Nx=Ny=64,
// dx=10/64, brush at (10,10) with deltaV=1.0, sigmaBrush=0.3.
func TestBrushStrokeDeposition(t *testing.T) {
	nx, ny := 64, 64
	dx := 10.0 / 64.0
	v := NewPotentialField(nx, ny)
	b := NewPotentialBuilder(dx)

	b.AddBrushStroke(v, 10, 10, 1.0, 0.3)

	if math.Abs(v.At(10, 10)-1.0) > 1e-12 {
		t.Errorf("V[10,10] = %.15g, want ~1.0", v.At(10, 10))
	}

	r := 4 * dx
	want := math.Exp(-(r * r) / (2 * 0.09))
	if math.Abs(v.At(14, 10)-want) > 1e-9 {
		t.Errorf("V[14,10] = %.9g, want %.9g", v.At(14, 10), want)
	}

	if math.Abs(v.At(40, 10)) > 1e-9 {
		t.Errorf("V[40,10] = %.9g, want ~0 (outside 3*sigmaBrush box)", v.At(40, 10))
	}
}

func TestBrushStrokesAccumulate(t *testing.T) {
	v := NewPotentialField(32, 32)
	b := NewPotentialBuilder(1.0)
	b.AddBrushStroke(v, 10, 10, 1.0, 1.0)
	first := v.At(10, 10)
	b.AddBrushStroke(v, 10, 10, 1.0, 1.0)
	second := v.At(10, 10)
	if math.Abs(second-2*first) > 1e-9 {
		t.Errorf("after two identical strokes, V[10,10] = %g, want ~%g", second, 2*first)
	}
}
