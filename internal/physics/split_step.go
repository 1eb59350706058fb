package physics

import "wavefunction_simulation_2d/pkg/fft"

// SplitStepEngine executes one Strang-split (second-order accurate)
// half-V / full-T / half-V time step, reusing a scratch ComplexField and a
// shared FFT2D plan so that Step never allocates.
type SplitStepEngine struct {
	plan *fft.Plan2D
}

// NewSplitStepEngine wraps an existing FFT2D plan sized for the session's
// grid.
func NewSplitStepEngine(plan *fft.Plan2D) *SplitStepEngine {
	return &SplitStepEngine{plan: plan}
}

// Step advances psi by one time step, using scratch as working storage and
// ops as the precomputed (read-only) phase operators. When potentialType
// is PotentialNone the half-V multiplications are skipped entirely, since
// U_V_half is the identity in that case and spec.md §4.6 gates the
// multiplication on potentialType rather than relying on that identity.
func (e *SplitStepEngine) Step(psi, scratch *ComplexField, ops *EvolutionOperators, potentialType PotentialType) error {
	if potentialType != PotentialNone {
		if err := psi.MulFieldInPlace(ops.UVHalf); err != nil {
			return err
		}
	}

	if err := scratch.CopyFrom(psi); err != nil {
		return err
	}
	e.plan.Forward(scratch.Buffer())

	if err := scratch.MulFieldInPlace(ops.UT); err != nil {
		return err
	}

	e.plan.Inverse(scratch.Buffer())
	if err := psi.CopyFrom(scratch); err != nil {
		return err
	}

	if potentialType != PotentialNone {
		if err := psi.MulFieldInPlace(ops.UVHalf); err != nil {
			return err
		}
	}

	return nil
}
