package renderer

import (
	"errors"
	"fmt"

	"wavefunction_simulation_2d/internal/physics"
)

// UIColor represents an RGB color for UI elements.
type UIColor struct {
	R, G, B, A uint8
}

// UIState represents the current UI state.
type UIState struct {
	PotentialType    physics.PotentialType
	TotalProbability float64
	SimulationTime   float64
	LastMeasurement  physics.MeasurementResult
	HasMeasurement   bool
	TargetFPS        int
	ActualFPS        int
	FrameTime        float64
	Paused           bool
	FilterEnabled    bool
}

// UIRenderer handles UI rendering.
type UIRenderer struct {
	screenWidth  int
	screenHeight int
	fontSize     int

	// UI state
	title            string
	potentialType    physics.PotentialType
	totalProbability float64
	simulationTime   float64
	lastMeasurement  physics.MeasurementResult
	hasMeasurement   bool
	targetFPS        int
	actualFPS        int
	frameTime        float64
	paused           bool
	filterEnabled    bool
}

// NewUIRenderer creates a new UI renderer.
func NewUIRenderer(screenWidth, screenHeight int) *UIRenderer {
	return &UIRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontSize:     20,
		title:        "2D Wavefunction Simulator",
	}
}

// GetScreenDimensions returns the screen dimensions.
func (ui *UIRenderer) GetScreenDimensions() (int, int) {
	return ui.screenWidth, ui.screenHeight
}

// SetTitle sets the UI title.
func (ui *UIRenderer) SetTitle(title string) {
	ui.title = title
}

// GetTitle returns the UI title.
func (ui *UIRenderer) GetTitle() string {
	return ui.title
}

// SetPotentialType sets the active potential family for display.
func (ui *UIRenderer) SetPotentialType(variant physics.PotentialType) {
	ui.potentialType = variant
}

// GetPotentialString returns the potential family display string.
func (ui *UIRenderer) GetPotentialString() string {
	switch ui.potentialType {
	case physics.PotentialNone:
		return "Potential: none"
	case physics.PotentialSingle:
		return "Potential: single well"
	case physics.PotentialDouble:
		return "Potential: double well"
	case physics.PotentialSinusoid:
		return "Potential: sinusoid lattice"
	case physics.PotentialQuadratic:
		return "Potential: quadratic trap"
	case physics.PotentialFreehand:
		return "Potential: freehand"
	default:
		return "Potential: unknown"
	}
}

// GetControlInstructions returns the control instruction lines.
func (ui *UIRenderer) GetControlInstructions() []string {
	return []string{
		"Left-click drag to paint a freehand potential",
		"Right-click to measure",
		"0-5 select potential family, C clears freehand",
		"P to pause, F to toggle spectral filter",
	}
}

// SetTargetFPS sets the target FPS.
func (ui *UIRenderer) SetTargetFPS(fps int) {
	ui.targetFPS = fps
}

// GetTargetFPS returns the target FPS.
func (ui *UIRenderer) GetTargetFPS() int {
	return ui.targetFPS
}

// SetActualFPS sets the actual FPS.
func (ui *UIRenderer) SetActualFPS(fps int) {
	ui.actualFPS = fps
}

// GetActualFPS returns the actual FPS.
func (ui *UIRenderer) GetActualFPS() int {
	return ui.actualFPS
}

// SetFrameTime sets the frame time.
func (ui *UIRenderer) SetFrameTime(time float64) {
	ui.frameTime = time
}

// GetFrameTime returns the frame time.
func (ui *UIRenderer) GetFrameTime() float64 {
	return ui.frameTime
}

// SetPaused sets the pause state.
func (ui *UIRenderer) SetPaused(paused bool) {
	ui.paused = paused
}

// IsPaused returns the pause state.
func (ui *UIRenderer) IsPaused() bool {
	return ui.paused
}

// GetPauseText returns the pause indicator text.
func (ui *UIRenderer) GetPauseText() string {
	return "PAUSED (Press P to unpause)"
}

// SetTotalProbability sets the displayed total probability.
func (ui *UIRenderer) SetTotalProbability(p float64) {
	ui.totalProbability = p
}

// GetTotalProbabilityText returns formatted total probability text.
func (ui *UIRenderer) GetTotalProbabilityText() string {
	return fmt.Sprintf("Total probability: %.6f", ui.totalProbability)
}

// SetSimulationTime sets the displayed simulation clock.
func (ui *UIRenderer) SetSimulationTime(t float64) {
	ui.simulationTime = t
}

// GetSimulationTimeText returns formatted simulation time text.
func (ui *UIRenderer) GetSimulationTimeText() string {
	return fmt.Sprintf("t = %.4f", ui.simulationTime)
}

// SetLastMeasurement sets the most recent detector outcome for display.
func (ui *UIRenderer) SetLastMeasurement(result physics.MeasurementResult) {
	ui.lastMeasurement = result
	ui.hasMeasurement = true
}

// GetMeasurementText returns formatted last-measurement text, or an empty
// string if no measurement has been made yet.
func (ui *UIRenderer) GetMeasurementText() string {
	if !ui.hasMeasurement {
		return ""
	}
	if ui.lastMeasurement.Found {
		return fmt.Sprintf("Detected (p=%.4f)", ui.lastMeasurement.Probability)
	}
	return fmt.Sprintf("Not detected (p=%.4f)", ui.lastMeasurement.Probability)
}

// SetFilterEnabled sets the displayed spectral-filter state.
func (ui *UIRenderer) SetFilterEnabled(enabled bool) {
	ui.filterEnabled = enabled
}

// GetFilterText returns formatted spectral-filter status text.
func (ui *UIRenderer) GetFilterText() string {
	if ui.filterEnabled {
		return "Spectral filter: on"
	}
	return "Spectral filter: off"
}

// GetTitlePosition returns the title position.
func (ui *UIRenderer) GetTitlePosition() (int, int) {
	return 10, 10
}

// GetPotentialPosition returns the potential display position.
func (ui *UIRenderer) GetPotentialPosition() (int, int) {
	return 10, 40
}

// GetProbabilityPosition returns the total-probability display position.
func (ui *UIRenderer) GetProbabilityPosition() (int, int) {
	return 10, 70
}

// GetTimePosition returns the simulation-clock display position.
func (ui *UIRenderer) GetTimePosition() (int, int) {
	return 10, 100
}

// GetMeasurementPosition returns the last-measurement display position.
func (ui *UIRenderer) GetMeasurementPosition() (int, int) {
	return 10, 130
}

// GetFPSPosition returns the FPS display position.
func (ui *UIRenderer) GetFPSPosition() (int, int) {
	return ui.screenWidth - 200, 10
}

// GetPausePosition returns the pause indicator position.
func (ui *UIRenderer) GetPausePosition() (int, int) {
	return ui.screenWidth/2 - 150, ui.screenHeight/2 - 10
}

// GetTitleColor returns the title color (lime/green).
func (ui *UIRenderer) GetTitleColor() UIColor {
	return UIColor{R: 0, G: 255, B: 0, A: 255}
}

// GetDefaultTextColor returns the default text color (white).
func (ui *UIRenderer) GetDefaultTextColor() UIColor {
	return UIColor{R: 255, G: 255, B: 255, A: 255}
}

// GetMeasurementColor returns the color for the last-measurement text:
// green for detected, gray for not detected.
func (ui *UIRenderer) GetMeasurementColor() UIColor {
	if ui.hasMeasurement && ui.lastMeasurement.Found {
		return UIColor{R: 0, G: 255, B: 0, A: 255}
	}
	return UIColor{R: 160, G: 160, B: 160, A: 255}
}

// GetPauseColor returns the pause indicator color (yellow).
func (ui *UIRenderer) GetPauseColor() UIColor {
	return UIColor{R: 255, G: 255, B: 0, A: 255}
}

// GetFontSize returns the font size.
func (ui *UIRenderer) GetFontSize() int {
	return ui.fontSize
}

// SetFontSize sets the font size.
func (ui *UIRenderer) SetFontSize(size int) {
	ui.fontSize = size
}

// UpdateState updates the UI state from a UIState struct.
func (ui *UIRenderer) UpdateState(state UIState) {
	ui.potentialType = state.PotentialType
	ui.totalProbability = state.TotalProbability
	ui.simulationTime = state.SimulationTime
	if state.HasMeasurement {
		ui.lastMeasurement = state.LastMeasurement
		ui.hasMeasurement = true
	}
	ui.targetFPS = state.TargetFPS
	ui.actualFPS = state.ActualFPS
	ui.frameTime = state.FrameTime
	ui.paused = state.Paused
	ui.filterEnabled = state.FilterEnabled
}

// Render renders the UI (mock implementation).
func (ui *UIRenderer) Render() error {
	return errors.New("graphics context not available")
}

// GetTargetFPSText returns formatted target FPS text.
func (ui *UIRenderer) GetTargetFPSText() string {
	return fmt.Sprintf("Target FPS: %d", ui.targetFPS)
}

// GetActualFPSText returns formatted actual FPS text.
func (ui *UIRenderer) GetActualFPSText() string {
	return fmt.Sprintf("Actual FPS: %d", ui.actualFPS)
}

// GetFrameTimeText returns formatted frame time text.
func (ui *UIRenderer) GetFrameTimeText() string {
	return fmt.Sprintf("Frame Time: %.3fs", ui.frameTime)
}

// GetControlPosition returns the position for control instruction at given index.
func (ui *UIRenderer) GetControlPosition(index int) (int, int) {
	return 10, 170 + index*30
}

// GetActualFPSPosition returns the actual FPS display position.
func (ui *UIRenderer) GetActualFPSPosition() (int, int) {
	return ui.screenWidth - 200, 35
}

// GetFrameTimePosition returns the frame time display position.
func (ui *UIRenderer) GetFrameTimePosition() (int, int) {
	return ui.screenWidth - 200, 60
}
