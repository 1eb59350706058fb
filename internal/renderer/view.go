package renderer

// GridView maps the simulation's physical grid onto screen pixels. It
// replaces a 3D camera with a simple 2D pan/zoom transform, since the
// wavefunction lives on a flat periodic grid rather than in a 3D scene.
type GridView struct {
	screenWidth  int
	screenHeight int

	nx, ny int
	dx     float64

	panX, panY float64
	zoom       float64

	cellWidth  float64
	cellHeight float64
	dirty      bool
}

// NewGridView creates a view over an nx-by-ny grid with cell spacing dx,
// fit to fill the given screen dimensions at zoom=1.
func NewGridView(screenWidth, screenHeight, nx, ny int, dx float64) *GridView {
	v := &GridView{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		nx:           nx,
		ny:           ny,
		dx:           dx,
		zoom:         1.0,
		dirty:        true,
	}
	v.recompute()
	return v
}

func (v *GridView) recompute() {
	v.cellWidth = float64(v.screenWidth) / float64(v.nx) * v.zoom
	v.cellHeight = float64(v.screenHeight) / float64(v.ny) * v.zoom
	v.dirty = false
}

// SetZoom sets the zoom factor; values <= 0 are rejected silently.
func (v *GridView) SetZoom(zoom float64) {
	if zoom <= 0 {
		return
	}
	v.zoom = zoom
	v.dirty = true
}

// GetZoom returns the current zoom factor.
func (v *GridView) GetZoom() float64 {
	return v.zoom
}

// Pan shifts the view origin by (dx, dy) screen pixels.
func (v *GridView) Pan(dx, dy float64) {
	v.panX += dx
	v.panY += dy
}

// GridToScreen converts a grid cell (i, j) to the screen-pixel coordinates
// of its top-left corner.
func (v *GridView) GridToScreen(i, j int) (float64, float64) {
	if v.dirty {
		v.recompute()
	}
	x := float64(i)*v.cellWidth + v.panX
	y := float64(j)*v.cellHeight + v.panY
	return x, y
}

// ScreenToGrid converts screen-pixel coordinates to the grid cell beneath
// them. The second return value is false if the point falls outside the
// grid's current screen-space footprint.
func (v *GridView) ScreenToGrid(x, y float64) (int, int, bool) {
	if v.dirty {
		v.recompute()
	}
	i := int((x - v.panX) / v.cellWidth)
	j := int((y - v.panY) / v.cellHeight)
	if i < 0 || i >= v.nx || j < 0 || j >= v.ny {
		return 0, 0, false
	}
	return i, j, true
}

// CellSize returns the current on-screen size of one grid cell in pixels.
func (v *GridView) CellSize() (float64, float64) {
	if v.dirty {
		v.recompute()
	}
	return v.cellWidth, v.cellHeight
}

// Resize updates the screen dimensions backing the view.
func (v *GridView) Resize(screenWidth, screenHeight int) {
	v.screenWidth = screenWidth
	v.screenHeight = screenHeight
	v.dirty = true
}
