package physics

import "math"

// RandomSource is the injectable uniform-sample source Born sampling draws
// from. Implementers wrap a seedable PRNG so measurement outcomes are
// reproducible in tests (spec.md §5 "Randomness source").
type RandomSource interface {
	// Float64 returns a sample drawn uniformly from [0, 1).
	Float64() float64
}

// MeasurementResult is the outcome of a single detector click attempt.
type MeasurementResult struct {
	Found       bool
	Probability float64
}

// MeasurementOperator computes detector-integrated probability, samples
// the Born outcome, and applies the posterior projection (or suppression)
// to psi, renormalizing afterward. Its scratch buffers are sized once, at
// construction, so Measure never allocates (spec.md §5).
type MeasurementOperator struct {
	dx         float64
	nx, ny     int
	detector   []float64
	suppressed []float64
	candidate  *ComplexField
}

// NewMeasurementOperator creates an operator for an nx-by-ny grid with
// cell spacing dx.
func NewMeasurementOperator(dx float64, nx, ny int) (*MeasurementOperator, error) {
	candidate, err := NewComplexField(nx, ny)
	if err != nil {
		return nil, err
	}
	return &MeasurementOperator{
		dx:         dx,
		nx:         nx,
		ny:         ny,
		detector:   make([]float64, nx*ny),
		suppressed: make([]float64, nx*ny),
		candidate:  candidate,
	}, nil
}

// detectorResponse fills m.detector with D(i,j) = exp(-r^2/(2*sigmaM^2)),
// the periodic min-image Gaussian detector kernel centered at (x0, y0).
func (m *MeasurementOperator) detectorResponse(x0, y0, sigmaM float64) {
	lx := float64(m.nx) * m.dx
	ly := float64(m.ny) * m.dx
	center := Vec2{X: x0, Y: y0}

	for j := 0; j < m.ny; j++ {
		for i := 0; i < m.nx; i++ {
			p := Vec2{X: float64(i) * m.dx, Y: float64(j) * m.dx}
			r := minImageDistance(p, center, maxDim(lx, ly))
			m.detector[j*m.nx+i] = math.Exp(-(r * r) / (2 * sigmaM * sigmaM))
		}
	}
}

// Measure performs the full detector cycle against psi at physical center
// (x0, y0) with detector radius sigmaM, drawing one sample from rng. psi
// must have the shape this operator was constructed for.
//
// On a positive outcome psi is multiplied elementwise by D (amplitude, not
// intensity — see the note on the projection convention below) and
// renormalized; on a negative outcome psi is multiplied by (1-D) and
// renormalized. If either projection leaves psi with zero total
// probability, ErrDegenerateField is returned and psi is left unchanged.
//
// Convention: the source this core is derived from applies D directly to
// the amplitude on a positive outcome (psi <- D*psi) rather than the
// formal intensity projector (psi <- sqrt(D)*psi). This is a documented
// choice, not an oversight — repeated measurements at the same location
// sharpen psi faster than the sqrt(D) projector would, and the scenario
// tests in spec.md §8 are written against this behavior.
func (m *MeasurementOperator) Measure(psi *ComplexField, x0, y0, sigmaM float64, rng RandomSource) (MeasurementResult, error) {
	if psi.Nx() != m.nx || psi.Ny() != m.ny {
		return MeasurementResult{}, ErrShapeMismatch
	}

	m.detectorResponse(x0, y0, sigmaM)

	buf := psi.Buffer()
	p := 0.0
	for cell := 0; cell < m.nx*m.ny; cell++ {
		re, im := buf[2*cell], buf[2*cell+1]
		p += m.detector[cell] * (re*re + im*im)
	}
	if p > 1 {
		p = 1
	}

	found := rng.Float64() < p

	// Project into the candidate scratch field first: spec.md §7 requires
	// that a degenerate outcome leave psi untouched, so psi is only
	// overwritten once the projection is known to be normalizable.
	if err := m.candidate.CopyFrom(psi); err != nil {
		return MeasurementResult{}, err
	}

	if found {
		if err := m.candidate.MulRealInPlace(m.detector); err != nil {
			return MeasurementResult{}, err
		}
	} else {
		for cell := 0; cell < m.nx*m.ny; cell++ {
			m.suppressed[cell] = 1 - m.detector[cell]
		}
		if err := m.candidate.MulRealInPlace(m.suppressed); err != nil {
			return MeasurementResult{}, err
		}
	}

	if err := Normalize(m.candidate); err != nil {
		return MeasurementResult{}, err
	}

	if err := psi.CopyFrom(m.candidate); err != nil {
		return MeasurementResult{}, err
	}

	return MeasurementResult{Found: found, Probability: p}, nil
}
