package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BrushStroke represents a freehand potential deposit at a grid cell.
type BrushStroke struct {
	Active bool
	GridX  int
	GridY  int
}

// MeasureRequest represents a detector click at a physical grid location.
type MeasureRequest struct {
	Active bool
	X      float64
	Y      float64
}

// MouseHandler handles mouse input.
type MouseHandler struct {
	buttonStates  map[rl.MouseButton]bool
	buttonPressed map[rl.MouseButton]bool
	posX          float32
	posY          float32
}

// NewMouseHandler creates a new mouse handler.
func NewMouseHandler() *MouseHandler {
	return &MouseHandler{
		buttonStates:  make(map[rl.MouseButton]bool),
		buttonPressed: make(map[rl.MouseButton]bool),
	}
}

// SetButtonDown sets the held state of a mouse button (for testing).
func (m *MouseHandler) SetButtonDown(button rl.MouseButton, down bool) {
	m.buttonStates[button] = down
}

// SetButtonPressed sets the just-pressed state of a mouse button (for testing).
func (m *MouseHandler) SetButtonPressed(button rl.MouseButton, pressed bool) {
	m.buttonPressed[button] = pressed
}

// SetMousePosition sets the cursor position in screen pixels (for testing).
func (m *MouseHandler) SetMousePosition(x, y float32) {
	m.posX = x
	m.posY = y
}

// IsButtonDown checks if a mouse button is held down.
func (m *MouseHandler) IsButtonDown(button rl.MouseButton) bool {
	return m.buttonStates[button]
}

// IsButtonPressed checks if a mouse button was just pressed this frame.
func (m *MouseHandler) IsButtonPressed(button rl.MouseButton) bool {
	return m.buttonPressed[button]
}

// GetMousePosition returns the cursor position in screen pixels.
func (m *MouseHandler) GetMousePosition() (float32, float32) {
	return m.posX, m.posY
}

// ProcessPaint reports the grid cell under the cursor while the left button
// is held, for depositing a freehand brush stroke. screenWidth/screenHeight
// map to the nx-by-ny simulation grid; positions outside the grid are
// reported inactive.
func (m *MouseHandler) ProcessPaint(screenWidth, screenHeight, nx, ny int) *BrushStroke {
	stroke := &BrushStroke{}
	if !m.IsButtonDown(rl.MouseLeftButton) {
		return stroke
	}
	if m.posX < 0 || m.posY < 0 {
		return stroke
	}
	gx := int(m.posX / float32(screenWidth) * float32(nx))
	gy := int(m.posY / float32(screenHeight) * float32(ny))
	if gx < 0 || gx >= nx || gy < 0 || gy >= ny {
		return stroke
	}
	stroke.Active = true
	stroke.GridX = gx
	stroke.GridY = gy
	return stroke
}

// ProcessMeasure reports a detector click at the cursor's physical
// coordinates, triggered once per right-button press.
func (m *MouseHandler) ProcessMeasure(screenWidth, screenHeight int, dx float64, nx, ny int) *MeasureRequest {
	req := &MeasureRequest{}
	if !m.IsButtonPressed(rl.MouseRightButton) {
		return req
	}
	gx := m.posX / float32(screenWidth) * float32(nx)
	gy := m.posY / float32(screenHeight) * float32(ny)
	req.Active = true
	req.X = float64(gx) * dx
	req.Y = float64(gy) * dx
	return req
}

// UpdateFromRaylib updates mouse state from raylib (for production use).
func (m *MouseHandler) UpdateFromRaylib() {
	m.buttonStates[rl.MouseLeftButton] = rl.IsMouseButtonDown(rl.MouseLeftButton)
	m.buttonPressed[rl.MouseRightButton] = rl.IsMouseButtonPressed(rl.MouseRightButton)

	pos := rl.GetMousePosition()
	m.posX = pos.X
	m.posY = pos.Y
}
