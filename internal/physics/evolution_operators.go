package physics

import "math"

// EvolutionOperators holds the two diagonal phase operators consumed by
// SplitStepEngine.Step: the momentum-space kinetic operator U_T and the
// position-space half-potential operator U_V_half. Both are rebuilt
// synchronously whenever one of their defining inputs changes (see
// BuildKinetic / BuildPotentialHalf) and are never written to during Step.
type EvolutionOperators struct {
	UT     *ComplexField
	UVHalf *ComplexField
}

// NewEvolutionOperators allocates the (zeroed) operator fields for a grid
// of the given shape. Callers must call BuildKinetic and BuildPotentialHalf
// before the first Step.
func NewEvolutionOperators(nx, ny int) (*EvolutionOperators, error) {
	ut, err := NewComplexField(nx, ny)
	if err != nil {
		return nil, err
	}
	uv, err := NewComplexField(nx, ny)
	if err != nil {
		return nil, err
	}
	return &EvolutionOperators{UT: ut, UVHalf: uv}, nil
}

// wavevector implements the FFT index-to-wavevector rule of spec.md §3:
// k(n) = 2*pi*n/L for n < N/2, else 2*pi*(n-N)/L.
func wavevector(n, size int, l float64) float64 {
	if n < size/2 {
		return 2 * math.Pi * float64(n) / l
	}
	return 2 * math.Pi * float64(n-size) / l
}

// spectralFilter returns F(|k|): 1 everywhere when disabled; 1 below
// 0.9*kMax and a Gaussian roll-off to the Nyquist edge when enabled. This
// is the anti-aliasing filter of spec.md §4.5 — a documented,
// non-unitary contraction of the evolution when enabled.
func spectralFilter(kMag, kMax float64, enabled bool) float64 {
	if !enabled {
		return 1
	}
	knee := 0.9 * kMax
	if kMag <= knee {
		return 1
	}
	width := 0.1 * kMax
	d := (kMag - knee) / width
	return math.Exp(-d * d)
}

// BuildKinetic rebuilds U_T for a grid of cell spacing dx, time step dtEff,
// reduced Planck constant hbar, and mass m, applying the spectral filter
// when filterEnabled is set.
func (ops *EvolutionOperators) BuildKinetic(dx, dtEff, hbar, m float64, filterEnabled bool) {
	nx, ny := ops.UT.Nx(), ops.UT.Ny()
	lx := float64(nx) * dx
	ly := float64(ny) * dx
	kMax := math.Pi / dx

	for j := 0; j < ny; j++ {
		ky := wavevector(j, ny, ly)
		for i := 0; i < nx; i++ {
			kx := wavevector(i, nx, lx)
			kSquared := kx*kx + ky*ky
			kMag := math.Sqrt(kSquared)

			phase := -(hbar * dtEff / (2 * m)) * kSquared
			f := spectralFilter(kMag, kMax, filterEnabled)

			re := math.Cos(phase) * f
			im := math.Sin(phase) * f
			ops.UT.Set(i, j, re, im)
		}
	}
}

// BuildPotentialHalf rebuilds U_V_half from the current potential field v
// and time step dtEff, reduced Planck constant hbar. This is the only way
// brush-stroke changes to V become visible to Step (spec.md §4.4).
func (ops *EvolutionOperators) BuildPotentialHalf(v *PotentialField, dtEff, hbar float64) {
	nx, ny := ops.UVHalf.Nx(), ops.UVHalf.Ny()
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			phase := -(dtEff / (2 * hbar)) * v.At(i, j)
			ops.UVHalf.Set(i, j, math.Cos(phase), math.Sin(phase))
		}
	}
}
