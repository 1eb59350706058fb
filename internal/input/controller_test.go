package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"wavefunction_simulation_2d/internal/physics"
)

type zeroRNG struct{}

func (zeroRNG) Float64() float64 { return 0 }

func newTestSessionForInput(t *testing.T) *physics.Session {
	t.Helper()
	s, err := physics.NewSession(64, 64, 10.0/64.0, 0.01, 1.0, 1.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Initialize(5.0, 5.0, 0.6, 0, 0); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestInputController_Initializes(t *testing.T) {
	controller := NewInputController()
	assert.NotNil(t, controller)
	assert.NotNil(t, controller.keyboard)
	assert.NotNil(t, controller.mouse)
}

func TestInputController_TogglePause(t *testing.T) {
	controller := NewInputController()
	session := newTestSessionForInput(t)
	state := &SimulationState{}
	config := &InputConfig{ScreenWidth: 800, ScreenHeight: 600, Nx: 64, Ny: 64, Dx: 10.0 / 64.0}

	controller.keyboard.SetKeyPressed(rl.KeyP, true)
	controller.ProcessInput(session, state, config, zeroRNG{})

	assert.True(t, state.Paused)
}

func TestInputController_SelectPotentialAppliesToSession(t *testing.T) {
	controller := NewInputController()
	session := newTestSessionForInput(t)
	state := &SimulationState{}
	config := &InputConfig{ScreenWidth: 800, ScreenHeight: 600, Nx: 64, Ny: 64, Dx: 10.0 / 64.0}

	controller.keyboard.SetKeyPressed(rl.KeyTwo, true)
	controller.ProcessInput(session, state, config, zeroRNG{})

	assert.Equal(t, physics.PotentialDouble, session.GetParameters().PotentialType)
}

func TestInputController_PaintDepositsBrushStroke(t *testing.T) {
	controller := NewInputController()
	session := newTestSessionForInput(t)
	session.SetPotentialType(physics.PotentialFreehand)
	state := &SimulationState{}
	config := &InputConfig{
		ScreenWidth: 800, ScreenHeight: 600,
		Nx: 64, Ny: 64, Dx: 10.0 / 64.0,
		BrushDeltaV: 1.0, BrushSigma: 0.3,
	}

	controller.mouse.SetButtonDown(rl.MouseLeftButton, true)
	controller.mouse.SetMousePosition(400, 300)
	controller.ProcessInput(session, state, config, zeroRNG{})
	assert.True(t, controller.painting, "an active stroke should have been deposited")

	v, err := session.GetProbabilityAt(32, 32)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestInputController_MeasureTriggersSessionMeasure(t *testing.T) {
	controller := NewInputController()
	session := newTestSessionForInput(t)
	state := &SimulationState{}
	config := &InputConfig{ScreenWidth: 800, ScreenHeight: 600, Nx: 64, Ny: 64, Dx: 10.0 / 64.0}

	controller.mouse.SetButtonPressed(rl.MouseRightButton, true)
	controller.mouse.SetMousePosition(400, 300) // maps to grid center, near (5.0, 5.0)
	controller.ProcessInput(session, state, config, zeroRNG{})

	assert.Greater(t, state.LastMeasure.Probability, 0.0)
}

func TestInputController_UpdateFromRaylib(t *testing.T) {
	controller := NewInputController()
	controller.UpdateFromRaylib()
	assert.NotNil(t, controller)
}

func TestInputController_Reset(t *testing.T) {
	controller := NewInputController()

	controller.keyboard.SetKeyState(rl.KeyW, true)
	controller.mouse.SetButtonDown(rl.MouseLeftButton, true)

	controller.Reset()

	assert.False(t, controller.keyboard.IsKeyDown(rl.KeyW))
	assert.False(t, controller.mouse.IsButtonDown(rl.MouseLeftButton))
}
