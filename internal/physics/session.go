package physics

import (
	"log"
	"math"

	"wavefunction_simulation_2d/pkg/fft"
)

// freehandAttenuation is the fixed alpha used to condition a freshly
// initialized wavepacket against a painted potential (spec.md §4.8).
const freehandAttenuation = 10.0

// Parameters is a snapshot of a Session's scalar configuration, returned
// by GetParameters.
type Parameters struct {
	Nx, Ny                 int
	Dx, Dt, TimeScale      float64
	Hbar, Mass             float64
	MeasurementRadius      float64
	PotentialType          PotentialType
	PotentialStrength      float64
	PotentialStrengthScale float64
	PotentialWidth         float64
	FilterEnabled          bool
	Time                   float64
}

// Session owns every mutable field of the hard subsystem — psi, a scratch
// field, the potential array, both evolution operators, the FFT2D plan,
// and the scalar parameters — for the lifetime of one grid size. No other
// component retains references to these buffers (spec.md §3
// "Ownership & lifecycle").
type Session struct {
	nx, ny int
	dx, dt float64
	hbar, m float64
	timeScale float64

	measurementRadius      float64
	potentialType          PotentialType
	potentialStrength      float64
	potentialStrengthScale float64
	potentialWidth         float64
	filterEnabled          bool
	time                   float64

	psi     *ComplexField
	scratch *ComplexField
	v       *PotentialField
	ops     *EvolutionOperators

	fftPlan  *fft.Plan2D
	engine   *SplitStepEngine
	builder  *PotentialBuilder
	measurer *MeasurementOperator
	initial  *InitialState
}

func isPowerOfTwoDim(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// NewSession creates a session on an nx-by-ny grid. nx and ny must each be
// a power of two >= 2; dx, dt, hbar, m, and timeScale must each be
// positive and finite. Defaults match spec.md §6: potentialType = none,
// V0 = 1.0, strengthScale = 1.0, sigmaV = 2.0, sigmaM = 0.2,
// filterEnabled = true.
func NewSession(nx, ny int, dx, dt, hbar, m, timeScale float64) (*Session, error) {
	if !isPowerOfTwoDim(nx) || !isPowerOfTwoDim(ny) {
		return nil, ErrInvalidDimension
	}
	for _, v := range []float64{dx, dt, hbar, m, timeScale} {
		if !(v > 0) || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrInvalidParameter
		}
	}

	psi, err := NewComplexField(nx, ny)
	if err != nil {
		return nil, err
	}
	scratch, err := NewComplexField(nx, ny)
	if err != nil {
		return nil, err
	}
	ops, err := NewEvolutionOperators(nx, ny)
	if err != nil {
		return nil, err
	}
	plan, err := fft.NewPlan2D(nx, ny)
	if err != nil {
		return nil, err
	}
	measurer, err := NewMeasurementOperator(dx, nx, ny)
	if err != nil {
		return nil, err
	}

	s := &Session{
		nx: nx, ny: ny,
		dx: dx, dt: dt,
		hbar: hbar, m: m,
		timeScale: timeScale,

		measurementRadius:      0.2,
		potentialType:          PotentialNone,
		potentialStrength:      1.0,
		potentialStrengthScale: 1.0,
		potentialWidth:         2.0,
		filterEnabled:          true,

		psi:     psi,
		scratch: scratch,
		v:       NewPotentialField(nx, ny),
		ops:     ops,

		fftPlan:  plan,
		engine:   NewSplitStepEngine(plan),
		builder:  NewPotentialBuilder(dx),
		measurer: measurer,
		initial:  NewInitialState(dx),
	}

	s.rebuildPotential()
	s.rebuildOperators()
	s.checkStability()
	return s, nil
}

func (s *Session) dtEff() float64 {
	return s.dt * s.timeScale
}

// checkStability logs a diagnostic (never an error) when the explicit
// split-step stability bound dtEff < 2*m*dx^2/hbar is violated, per
// spec.md §4.6.
func (s *Session) checkStability() {
	bound := 2 * s.m * s.dx * s.dx / s.hbar
	if s.dtEff() >= bound {
		log.Printf("quantum: stability condition violated: dtEff=%.6g >= 2*m*dx^2/hbar=%.6g", s.dtEff(), bound)
	}
}

func (s *Session) rebuildPotential() {
	s.builder.Build(s.v, s.potentialType, s.potentialStrength, s.potentialStrengthScale, s.potentialWidth)
}

func (s *Session) rebuildOperators() {
	s.ops.BuildKinetic(s.dx, s.dtEff(), s.hbar, s.m, s.filterEnabled)
	s.ops.BuildPotentialHalf(s.v, s.dtEff(), s.hbar)
}

// Initialize overwrites psi with a Gaussian wavepacket and resets the
// session clock to zero (spec.md §6 "initialize"). If the current
// potential is freehand, the wavepacket is attenuated against |V| after
// construction.
func (s *Session) Initialize(centerX, centerY, width, momentumX, momentumY float64) error {
	if err := s.initial.Gaussian(s.psi, centerX, centerY, width, momentumX, momentumY, s.hbar); err != nil {
		return err
	}
	if s.potentialType == PotentialFreehand {
		if err := AttenuateByPotential(s.psi, s.v, freehandAttenuation); err != nil {
			return err
		}
	}
	s.time = 0
	return nil
}

// Step advances psi by one Strang-split time step and advances the clock
// by dtEff. No failure modes: numerical instability is silent, per
// spec.md §4.6.
func (s *Session) Step() error {
	if err := s.engine.Step(s.psi, s.scratch, s.ops, s.potentialType); err != nil {
		return err
	}
	s.time += s.dtEff()
	return nil
}

// Measure invokes the detector cycle at physical (x, y) using rng as the
// Born-sampling source.
func (s *Session) Measure(x, y float64, rng RandomSource) (MeasurementResult, error) {
	return s.measurer.Measure(s.psi, x, y, s.measurementRadius, rng)
}

// SetPotentialType switches the active potential family. Unknown variants
// have already been coerced to PotentialNone by ParsePotentialType before
// reaching here, per spec.md §6. Rebuilds V and U_V_half; switching to
// freehand zeroes V first.
func (s *Session) SetPotentialType(variant PotentialType) {
	s.potentialType = variant
	s.rebuildPotential()
	s.ops.BuildPotentialHalf(s.v, s.dtEff(), s.hbar)
}

// SetPotentialStrengthScale clamps s to [0.1, 10], then rebuilds V and
// U_V_half.
func (s *Session) SetPotentialStrengthScale(scale float64) {
	if scale < 0.1 {
		scale = 0.1
	} else if scale > 10 {
		scale = 10
	}
	s.potentialStrengthScale = scale
	s.rebuildPotential()
	s.ops.BuildPotentialHalf(s.v, s.dtEff(), s.hbar)
}

// AddPotentialAt deposits a freehand brush stroke onto V without rebuilding
// U_V_half; the caller must follow a batch of strokes with
// FinalizePotentialChanges.
func (s *Session) AddPotentialAt(gx, gy int, deltaV, sigmaBrush float64) {
	s.builder.AddBrushStroke(s.v, gx, gy, deltaV, sigmaBrush)
}

// FinalizePotentialChanges rebuilds U_V_half from the current V. This is
// the only path by which brush strokes become visible to Step.
func (s *Session) FinalizePotentialChanges() {
	s.ops.BuildPotentialHalf(s.v, s.dtEff(), s.hbar)
}

// ClearFreehandPotential zeroes V and rebuilds U_V_half.
func (s *Session) ClearFreehandPotential() {
	s.v.Zero()
	s.ops.BuildPotentialHalf(s.v, s.dtEff(), s.hbar)
}

// SetTimeScale updates dtEff and rebuilds both operator fields, logging a
// diagnostic if the stability bound is now violated.
func (s *Session) SetTimeScale(ts float64) {
	s.timeScale = ts
	s.rebuildOperators()
	s.checkStability()
}

// SetMeasurementRadius clamps sigmaM to [0.05, 2.0].
func (s *Session) SetMeasurementRadius(sigmaM float64) {
	if sigmaM < 0.05 {
		sigmaM = 0.05
	} else if sigmaM > 2.0 {
		sigmaM = 2.0
	}
	s.measurementRadius = sigmaM
}

// SetFilterEnabled toggles the spectral anti-aliasing filter and rebuilds
// U_T.
func (s *Session) SetFilterEnabled(enabled bool) {
	s.filterEnabled = enabled
	s.ops.BuildKinetic(s.dx, s.dtEff(), s.hbar, s.m, s.filterEnabled)
}

// GetProbabilityAt returns |psi(i,j)|^2.
func (s *Session) GetProbabilityAt(i, j int) (float64, error) {
	return s.psi.Abs2(i, j)
}

// GetProbabilityDensity returns a fresh, caller-owned copy of |psi|^2 over
// every cell, row-major.
func (s *Session) GetProbabilityDensity() []float64 {
	out := make([]float64, s.nx*s.ny)
	buf := s.psi.Buffer()
	for cell := 0; cell < s.nx*s.ny; cell++ {
		re, im := buf[2*cell], buf[2*cell+1]
		out[cell] = re*re + im*im
	}
	return out
}

// GetPhase returns a fresh, caller-owned copy of arg(psi) over every cell,
// row-major, each element in [-pi, pi].
func (s *Session) GetPhase() []float64 {
	out := make([]float64, s.nx*s.ny)
	buf := s.psi.Buffer()
	for cell := 0; cell < s.nx*s.ny; cell++ {
		re, im := buf[2*cell], buf[2*cell+1]
		out[cell] = math.Atan2(im, re)
	}
	return out
}

// GetTotalProbability returns Sum|psi|^2, the sum-normalization scalar
// (not the continuous integral).
func (s *Session) GetTotalProbability() float64 {
	return s.psi.SumAbs2()
}

// GetTime returns the current simulation clock.
func (s *Session) GetTime() float64 {
	return s.time
}

// GetParameters returns a snapshot of the session's scalar configuration.
func (s *Session) GetParameters() Parameters {
	return Parameters{
		Nx: s.nx, Ny: s.ny,
		Dx: s.dx, Dt: s.dt, TimeScale: s.timeScale,
		Hbar: s.hbar, Mass: s.m,
		MeasurementRadius:      s.measurementRadius,
		PotentialType:          s.potentialType,
		PotentialStrength:      s.potentialStrength,
		PotentialStrengthScale: s.potentialStrengthScale,
		PotentialWidth:         s.potentialWidth,
		FilterEnabled:          s.filterEnabled,
		Time:                   s.time,
	}
}
