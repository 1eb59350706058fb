package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"wavefunction_simulation_2d/internal/physics"
)

// Actions represents action inputs from keyboard.
type Actions struct {
	TogglePause       bool
	ToggleFilter      bool
	PotentialSelected bool
	Potential         physics.PotentialType
	ClearPotential    bool
}

// KeyboardHandler handles keyboard input.
type KeyboardHandler struct {
	keyStates  map[int32]bool
	keyPressed map[int32]bool
}

// NewKeyboardHandler creates a new keyboard handler.
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		keyStates:  make(map[int32]bool),
		keyPressed: make(map[int32]bool),
	}
}

// SetKeyState sets the state of a key (for testing).
func (k *KeyboardHandler) SetKeyState(key int32, pressed bool) {
	k.keyStates[key] = pressed
}

// SetKeyPressed sets whether a key was just pressed (for testing).
func (k *KeyboardHandler) SetKeyPressed(key int32, pressed bool) {
	k.keyPressed[key] = pressed
}

// IsKeyDown checks if a key is currently held down.
func (k *KeyboardHandler) IsKeyDown(key int32) bool {
	return k.keyStates[key]
}

// IsKeyPressed checks if a key was just pressed.
func (k *KeyboardHandler) IsKeyPressed(key int32) bool {
	return k.keyPressed[key]
}

// potentialKeys maps number keys to the potential family they select.
var potentialKeys = map[int32]physics.PotentialType{
	rl.KeyZero:  physics.PotentialNone,
	rl.KeyOne:   physics.PotentialSingle,
	rl.KeyTwo:   physics.PotentialDouble,
	rl.KeyThree: physics.PotentialSinusoid,
	rl.KeyFour:  physics.PotentialQuadratic,
	rl.KeyFive:  physics.PotentialFreehand,
}

// ProcessActions processes action keys and returns the resulting action
// flags. Keys 0-5 select a potential family, P toggles pause, F toggles
// the spectral anti-aliasing filter, and C clears a painted freehand
// potential.
func (k *KeyboardHandler) ProcessActions() *Actions {
	actions := &Actions{
		TogglePause:    k.IsKeyPressed(rl.KeyP),
		ToggleFilter:   k.IsKeyPressed(rl.KeyF),
		ClearPotential: k.IsKeyPressed(rl.KeyC),
	}
	for key, variant := range potentialKeys {
		if k.IsKeyPressed(key) {
			actions.PotentialSelected = true
			actions.Potential = variant
			break
		}
	}
	return actions
}

// UpdateFromRaylib updates key states from raylib (for production use).
func (k *KeyboardHandler) UpdateFromRaylib() {
	k.keyPressed = make(map[int32]bool)

	k.keyPressed[rl.KeyP] = rl.IsKeyPressed(rl.KeyP)
	k.keyPressed[rl.KeyF] = rl.IsKeyPressed(rl.KeyF)
	k.keyPressed[rl.KeyC] = rl.IsKeyPressed(rl.KeyC)
	for key := range potentialKeys {
		k.keyPressed[key] = rl.IsKeyPressed(key)
	}
}
