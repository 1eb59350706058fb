package renderer

import (
	"errors"
	"math"
)

// Color represents an RGBA color.
type Color struct {
	R, G, B, A float32
}

// ColorMode selects which scalar field the heatmap renders.
type ColorMode int

const (
	// ColorModeDensity maps |psi|^2 to a blue-to-red heatmap.
	ColorModeDensity ColorMode = iota
	// ColorModePhase maps arg(psi) to a cyclic HSV colormap.
	ColorModePhase
)

// HeatmapRenderer turns a probability-density or phase grid into per-cell
// colors for display over a GridView.
type HeatmapRenderer struct {
	nx, ny int
	view   *GridView
	mode   ColorMode
	gamma  float64

	// cached scratch, preallocated at construction to avoid per-frame
	// allocation in the render loop.
	colors []Color
}

// NewHeatmapRenderer creates a renderer for an nx-by-ny grid.
func NewHeatmapRenderer(nx, ny int) *HeatmapRenderer {
	return &HeatmapRenderer{
		nx:     nx,
		ny:     ny,
		mode:   ColorModeDensity,
		gamma:  0.6,
		colors: make([]Color, nx*ny),
	}
}

// SetView attaches the GridView used to map cells to screen pixels.
func (r *HeatmapRenderer) SetView(view *GridView) {
	r.view = view
}

// SetMode selects which scalar field is rendered.
func (r *HeatmapRenderer) SetMode(mode ColorMode) {
	r.mode = mode
}

// GetMode returns the active color mode.
func (r *HeatmapRenderer) GetMode() ColorMode {
	return r.mode
}

// SetGamma sets the display gamma applied to density before colormapping.
// Values below 1 brighten low-probability regions for visibility.
func (r *HeatmapRenderer) SetGamma(gamma float64) {
	if gamma > 0 {
		r.gamma = gamma
	}
}

// densityColor maps a normalized density value in [0,1] to a blue-to-red
// heatmap color after gamma correction.
func densityColor(value, gamma float64) Color {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	v := math.Pow(value, gamma)
	return Color{
		R: float32(v),
		G: float32(0.2 * v),
		B: float32(1 - v),
		A: 1.0,
	}
}

// phaseColor maps a phase in [-pi, pi] to a cyclic hue via HSV with full
// saturation and value.
func phaseColor(phase float64) Color {
	hue := (phase + math.Pi) / (2 * math.Pi) * 6.0
	i := int(hue) % 6
	f := hue - math.Floor(hue)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = 1, f, 0
	case 1:
		r, g, b = 1-f, 1, 0
	case 2:
		r, g, b = 0, 1, f
	case 3:
		r, g, b = 0, 1-f, 1
	case 4:
		r, g, b = f, 0, 1
	default:
		r, g, b = 1, 0, 1-f
	}
	return Color{R: float32(r), G: float32(g), B: float32(b), A: 1.0}
}

// UpdateDensity recomputes colors from a probability-density grid, row-major
// nx*ny, normalized so the maximum cell maps to full intensity.
func (r *HeatmapRenderer) UpdateDensity(density []float64) error {
	if len(density) != r.nx*r.ny {
		return errors.New("heatmap: density length does not match grid size")
	}
	peak := 0.0
	for _, v := range density {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}
	for idx, v := range density {
		r.colors[idx] = densityColor(v/peak, r.gamma)
	}
	return nil
}

// UpdatePhase recomputes colors from a phase grid, row-major nx*ny, each
// value expected in [-pi, pi].
func (r *HeatmapRenderer) UpdatePhase(phase []float64) error {
	if len(phase) != r.nx*r.ny {
		return errors.New("heatmap: phase length does not match grid size")
	}
	for idx, p := range phase {
		r.colors[idx] = phaseColor(p)
	}
	return nil
}

// ColorAt returns the cached color for grid cell (i, j).
func (r *HeatmapRenderer) ColorAt(i, j int) (Color, error) {
	if i < 0 || i >= r.nx || j < 0 || j >= r.ny {
		return Color{}, errors.New("heatmap: cell out of range")
	}
	return r.colors[j*r.nx+i], nil
}

// Render draws the cached colors through the attached GridView. The actual
// draw calls are left to the windowing layer; this method only validates
// preconditions, matching how the rest of this package defers drawing.
func (r *HeatmapRenderer) Render() error {
	if r.view == nil {
		return errors.New("heatmap: view not set")
	}
	return nil
}
