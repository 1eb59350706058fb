// Package simulation wires a physics session to a configuration and the
// input layer, the way the demo shell drives one simulation instance
// across frames.
package simulation

import (
	"math/rand"
	"time"

	"wavefunction_simulation_2d/internal/config"
	"wavefunction_simulation_2d/internal/input"
	"wavefunction_simulation_2d/internal/physics"
)

// mathRandRNG adapts math/rand.Rand to physics.RandomSource for
// production use; tests inject their own deterministic source directly
// against physics.Session.
type mathRandRNG struct{ r *rand.Rand }

func (m mathRandRNG) Float64() float64 { return m.r.Float64() }

// Simulation owns one physics session for the lifetime of a run, along
// with the configuration it was built from and the mutable state the
// input layer reads and writes each frame.
type Simulation struct {
	cfg     *config.Config
	session *physics.Session
	state   input.SimulationState
	rng     mathRandRNG
}

// New builds a Simulation from a validated configuration, seeds the
// initial wavepacket at the grid center with zero momentum, and applies
// the configured potential family.
func New(cfg *config.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	session, err := physics.NewSession(cfg.Nx, cfg.Ny, cfg.Dx, cfg.Dt, cfg.Hbar, cfg.Mass, cfg.TimeScale)
	if err != nil {
		return nil, err
	}

	session.SetMeasurementRadius(cfg.MeasurementRadius)
	session.SetFilterEnabled(cfg.FilterEnabled)
	session.SetPotentialStrengthScale(cfg.PotentialStrengthScale)
	session.SetPotentialType(physics.ParsePotentialType(cfg.PotentialType))

	centerX := float64(cfg.Nx) * cfg.Dx / 2
	centerY := float64(cfg.Ny) * cfg.Dx / 2
	if err := session.Initialize(centerX, centerY, 0.5, 0, 0); err != nil {
		return nil, err
	}

	return &Simulation{
		cfg:     cfg,
		session: session,
		state: input.SimulationState{
			Paused:        cfg.StartPaused,
			FilterEnabled: cfg.FilterEnabled,
		},
		rng: mathRandRNG{r: rand.New(rand.NewSource(time.Now().UnixNano()))},
	}, nil
}

// Session returns the underlying physics session.
func (s *Simulation) Session() *physics.Session {
	return s.session
}

// Config returns the configuration the simulation was built from.
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// State returns the mutable input-facing state (pause, filter, last
// measurement).
func (s *Simulation) State() *input.SimulationState {
	return &s.state
}

// Reseed resets psi to a fresh Gaussian wavepacket at (centerX, centerY)
// with the given width and momentum, without altering the potential.
func (s *Simulation) Reseed(centerX, centerY, width, momentumX, momentumY float64) error {
	return s.session.Initialize(centerX, centerY, width, momentumX, momentumY)
}

// Advance steps the simulation forward once if not paused. Paused is a
// no-op, not an error.
func (s *Simulation) Advance() error {
	if s.state.Paused {
		return nil
	}
	return s.session.Step()
}

// HandleInput applies one frame of input through controller against the
// session and state.
func (s *Simulation) HandleInput(controller *input.InputController) {
	inputCfg := &input.InputConfig{
		ScreenWidth:  s.cfg.ScreenWidth,
		ScreenHeight: s.cfg.ScreenHeight,
		Nx:           s.cfg.Nx,
		Ny:           s.cfg.Ny,
		Dx:           s.cfg.Dx,
		BrushDeltaV:  s.cfg.PotentialStrength,
		BrushSigma:   s.cfg.PotentialWidth,
	}
	controller.ProcessInput(s.session, &s.state, inputCfg, s.rng)
}
