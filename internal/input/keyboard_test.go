package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"wavefunction_simulation_2d/internal/physics"
)

func TestKeyboardHandler_ProcessActions(t *testing.T) {
	handler := NewKeyboardHandler()

	t.Run("P key toggles pause", func(t *testing.T) {
		actions := handler.ProcessActions()
		assert.False(t, actions.TogglePause)

		handler.SetKeyPressed(rl.KeyP, true)
		actions = handler.ProcessActions()
		assert.True(t, actions.TogglePause)

		handler.SetKeyPressed(rl.KeyP, false)
		actions = handler.ProcessActions()
		assert.False(t, actions.TogglePause)
	})

	t.Run("F key toggles the spectral filter", func(t *testing.T) {
		handler := NewKeyboardHandler()
		handler.SetKeyPressed(rl.KeyF, true)
		actions := handler.ProcessActions()
		assert.True(t, actions.ToggleFilter)
	})

	t.Run("C key clears the painted potential", func(t *testing.T) {
		handler := NewKeyboardHandler()
		handler.SetKeyPressed(rl.KeyC, true)
		actions := handler.ProcessActions()
		assert.True(t, actions.ClearPotential)
	})
}

func TestKeyboardHandler_PotentialSelection(t *testing.T) {
	cases := []struct {
		key  int32
		want physics.PotentialType
	}{
		{rl.KeyZero, physics.PotentialNone},
		{rl.KeyOne, physics.PotentialSingle},
		{rl.KeyTwo, physics.PotentialDouble},
		{rl.KeyThree, physics.PotentialSinusoid},
		{rl.KeyFour, physics.PotentialQuadratic},
		{rl.KeyFive, physics.PotentialFreehand},
	}

	for _, c := range cases {
		handler := NewKeyboardHandler()
		handler.SetKeyPressed(c.key, true)
		actions := handler.ProcessActions()
		assert.True(t, actions.PotentialSelected)
		assert.Equal(t, c.want, actions.Potential)
	}
}

func TestKeyboardHandler_NoKeysYieldsNoSelection(t *testing.T) {
	handler := NewKeyboardHandler()
	actions := handler.ProcessActions()
	assert.False(t, actions.PotentialSelected)
	assert.False(t, actions.TogglePause)
	assert.False(t, actions.ToggleFilter)
	assert.False(t, actions.ClearPotential)
}

func TestKeyboardHandler_IsKeyDownReflectsState(t *testing.T) {
	handler := NewKeyboardHandler()
	assert.False(t, handler.IsKeyDown(rl.KeyW))
	handler.SetKeyState(rl.KeyW, true)
	assert.True(t, handler.IsKeyDown(rl.KeyW))
}
