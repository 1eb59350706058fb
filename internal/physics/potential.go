package physics

import "math"

// PotentialType enumerates the analytic potential families of spec.md
// §4.4, plus the freehand (painted) variant whose field is never rebuilt
// from a formula.
type PotentialType int

const (
	PotentialNone PotentialType = iota
	PotentialSingle
	PotentialDouble
	PotentialSinusoid
	PotentialQuadratic
	PotentialFreehand
)

// ParsePotentialType coerces a free-form variant name to a PotentialType.
// Unknown names silently coerce to PotentialNone, per spec.md §6
// (set_potential_type).
func ParsePotentialType(name string) PotentialType {
	switch name {
	case "single":
		return PotentialSingle
	case "double":
		return PotentialDouble
	case "sinusoid":
		return PotentialSinusoid
	case "quadratic":
		return PotentialQuadratic
	case "freehand":
		return PotentialFreehand
	default:
		return PotentialNone
	}
}

// PotentialField is a dense Nx*Ny real array representing V(x,y), stored
// in the same row-major cell order as ComplexField but without channel
// interleaving (real scalars only).
type PotentialField struct {
	nx, ny int
	v      []float64
}

// NewPotentialField allocates a zeroed potential of the given shape.
func NewPotentialField(nx, ny int) *PotentialField {
	return &PotentialField{nx: nx, ny: ny, v: make([]float64, nx*ny)}
}

// Values exposes the raw per-cell buffer (no interleaving), for consumers
// such as EvolutionOperators and InitialState's attenuation step.
func (p *PotentialField) Values() []float64 { return p.v }

// At returns V(i,j).
func (p *PotentialField) At(i, j int) float64 {
	return p.v[j*p.nx+i]
}

// PotentialBuilder populates a PotentialField from an analytic family or
// from accumulated freehand brush strokes.
type PotentialBuilder struct {
	dx float64
}

// NewPotentialBuilder creates a builder for a grid with cell spacing dx.
func NewPotentialBuilder(dx float64) *PotentialBuilder {
	return &PotentialBuilder{dx: dx}
}

// Build evaluates variant into dst, then multiplies every cell by
// strengthScale. Switching to PotentialFreehand zeroes dst first instead
// of evaluating a formula; every other variant overwrites unconditionally.
func (b *PotentialBuilder) Build(dst *PotentialField, variant PotentialType, strength, strengthScale, width float64) {
	nx, ny := dst.nx, dst.ny
	lx := float64(nx) * b.dx
	ly := float64(ny) * b.dx
	center := Vec2{X: lx / 2, Y: ly / 2}

	switch variant {
	case PotentialFreehand:
		dst.Zero()
		return
	case PotentialNone:
		for cell := range dst.v {
			dst.v[cell] = 0
		}
	case PotentialSingle:
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				p := Vec2{X: float64(i) * b.dx, Y: float64(j) * b.dx}
				r := minImageDistance(p, center, maxDim(lx, ly))
				dst.v[j*nx+i] = -strength * math.Exp(-(r*r)/(2*width*width))
			}
		}
	case PotentialDouble:
		sigma := width / 3
		c1 := Vec2{X: lx / 2, Y: ly / 3}
		c2 := Vec2{X: lx / 2, Y: 2 * ly / 3}
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				p := Vec2{X: float64(i) * b.dx, Y: float64(j) * b.dx}
				r1 := minImageDistance(p, c1, maxDim(lx, ly))
				r2 := minImageDistance(p, c2, maxDim(lx, ly))
				dst.v[j*nx+i] = -strength * (math.Exp(-(r1*r1)/(2*sigma*sigma)) + math.Exp(-(r2*r2)/(2*sigma*sigma)))
			}
		}
	case PotentialSinusoid:
		for j := 0; j < ny; j++ {
			y := float64(j) * b.dx
			val := -strength * math.Cos(6*math.Pi*y/ly)
			for i := 0; i < nx; i++ {
				dst.v[j*nx+i] = val
			}
		}
	case PotentialQuadratic:
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				p := Vec2{X: float64(i) * b.dx, Y: float64(j) * b.dx}
				r := minImageDistance(p, center, maxDim(lx, ly))
				dst.v[j*nx+i] = (strength / (2 * width * width)) * r * r
			}
		}
	default:
		for cell := range dst.v {
			dst.v[cell] = 0
		}
	}

	for cell := range dst.v {
		dst.v[cell] *= strengthScale
	}
}

func (p *PotentialField) Zero() {
	for i := range p.v {
		p.v[i] = 0
	}
}

func maxDim(lx, ly float64) float64 {
	if lx > ly {
		return lx
	}
	return ly
}

// AddBrushStroke deposits an additive Gaussian bump of peak strength
// deltaV, centered at grid cell (gx, gy), with physical radius sigmaBrush.
// Only cells within a 3*sigmaBrush box of the center are touched. Strokes
// accumulate: calling this repeatedly deposits more potential, and the
// caller must follow a batch of strokes with a rebuild of U_V_half (see
// EvolutionOperators.BuildPotentialHalf) before the change is visible to
// Step.
func (b *PotentialBuilder) AddBrushStroke(dst *PotentialField, gx, gy int, deltaV, sigmaBrush float64) {
	nx, ny := dst.nx, dst.ny
	lx := float64(nx) * b.dx
	ly := float64(ny) * b.dx
	center := Vec2{X: float64(gx) * b.dx, Y: float64(gy) * b.dx}

	radiusCells := int(math.Ceil(3 * sigmaBrush / b.dx))
	for dj := -radiusCells; dj <= radiusCells; dj++ {
		j := ((gy+dj)%ny + ny) % ny
		for di := -radiusCells; di <= radiusCells; di++ {
			i := ((gx+di)%nx + nx) % nx
			p := Vec2{X: float64(i) * b.dx, Y: float64(j) * b.dx}
			r := minImageDistance(p, center, maxDim(lx, ly))
			dst.v[j*nx+i] += deltaV * math.Exp(-(r*r)/(2*sigmaBrush*sigmaBrush))
		}
	}
}
