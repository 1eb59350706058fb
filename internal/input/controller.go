package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"wavefunction_simulation_2d/internal/physics"
)

// SimulationState holds the current demo state affected by input.
type SimulationState struct {
	Paused         bool
	FilterEnabled  bool
	LastMeasure    physics.MeasurementResult
	HasMeasurement bool
}

// InputConfig holds input configuration settings.
type InputConfig struct {
	ScreenWidth  int
	ScreenHeight int
	Nx           int
	Ny           int
	Dx           float64
	BrushDeltaV  float64
	BrushSigma   float64
}

// InputController coordinates keyboard and mouse input against a physics
// session.
type InputController struct {
	keyboard *KeyboardHandler
	mouse    *MouseHandler
	painting bool
}

// NewInputController creates a new input controller.
func NewInputController() *InputController {
	return &InputController{
		keyboard: NewKeyboardHandler(),
		mouse:    NewMouseHandler(),
	}
}

// ProcessInput applies one frame of input to the session and state. rng
// supplies the Born-sampling source for any triggered measurement.
func (c *InputController) ProcessInput(session *physics.Session, state *SimulationState, config *InputConfig, rng physics.RandomSource) {
	actions := c.keyboard.ProcessActions()
	if actions.TogglePause {
		state.Paused = !state.Paused
	}
	if actions.ToggleFilter {
		state.FilterEnabled = !state.FilterEnabled
		session.SetFilterEnabled(state.FilterEnabled)
	}
	if actions.ClearPotential {
		session.ClearFreehandPotential()
	}
	if actions.PotentialSelected {
		session.SetPotentialType(actions.Potential)
	}

	stroke := c.mouse.ProcessPaint(config.ScreenWidth, config.ScreenHeight, config.Nx, config.Ny)
	if stroke.Active {
		session.AddPotentialAt(stroke.GridX, stroke.GridY, config.BrushDeltaV, config.BrushSigma)
		c.painting = true
	} else if c.painting {
		session.FinalizePotentialChanges()
		c.painting = false
	}

	measure := c.mouse.ProcessMeasure(config.ScreenWidth, config.ScreenHeight, config.Dx, config.Nx, config.Ny)
	if measure.Active {
		if result, err := session.Measure(measure.X, measure.Y, rng); err == nil {
			state.LastMeasure = result
			state.HasMeasurement = true
		}
	}
}

// UpdateFromRaylib updates input states from raylib.
func (c *InputController) UpdateFromRaylib() {
	c.keyboard.UpdateFromRaylib()
	c.mouse.UpdateFromRaylib()
}

// Reset clears all input states.
func (c *InputController) Reset() {
	c.keyboard.keyStates = make(map[int32]bool)
	c.keyboard.keyPressed = make(map[int32]bool)
	c.mouse.buttonStates = make(map[rl.MouseButton]bool)
	c.mouse.buttonPressed = make(map[rl.MouseButton]bool)
	c.mouse.posX = 0
	c.mouse.posY = 0
	c.painting = false
}
