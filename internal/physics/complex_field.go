package physics

import "math"

// ComplexField is a dense Nx-by-Ny grid of complex numbers stored as a
// single flat buffer of 2*Nx*Ny float64s, interleaved (re, im) per cell in
// row-major order: the element at column i, row j occupies buf[2*(j*Nx+i)]
// (real) and buf[2*(j*Nx+i)+1] (imaginary). The flat buffer is the primary
// representation — element access below is ergonomic sugar over it, never
// a per-element allocation.
type ComplexField struct {
	nx, ny int
	buf    []float64
}

// NewComplexField allocates a zeroed field of the given shape. Both
// dimensions must be positive.
func NewComplexField(nx, ny int) (*ComplexField, error) {
	if nx <= 0 || ny <= 0 {
		return nil, ErrInvalidDimension
	}
	return &ComplexField{
		nx:  nx,
		ny:  ny,
		buf: make([]float64, 2*nx*ny),
	}, nil
}

// Nx returns the grid width in cells.
func (f *ComplexField) Nx() int { return f.nx }

// Ny returns the grid height in cells.
func (f *ComplexField) Ny() int { return f.ny }

// Buffer exposes the raw interleaved storage, for consumers (pkg/fft) that
// operate directly on the flat representation.
func (f *ComplexField) Buffer() []float64 { return f.buf }

func (f *ComplexField) index(i, j int) (int, error) {
	if i < 0 || i >= f.nx || j < 0 || j >= f.ny {
		return 0, ErrIndexOutOfRange
	}
	return 2 * (j*f.nx + i), nil
}

// At returns the (real, imaginary) pair stored at cell (i, j).
func (f *ComplexField) At(i, j int) (re, im float64, err error) {
	idx, err := f.index(i, j)
	if err != nil {
		return 0, 0, err
	}
	return f.buf[idx], f.buf[idx+1], nil
}

// Set writes the (real, imaginary) pair at cell (i, j).
func (f *ComplexField) Set(i, j int, re, im float64) error {
	idx, err := f.index(i, j)
	if err != nil {
		return err
	}
	f.buf[idx] = re
	f.buf[idx+1] = im
	return nil
}

// SetReal writes only the real channel at cell (i, j), leaving the
// imaginary channel untouched.
func (f *ComplexField) SetReal(i, j int, re float64) error {
	idx, err := f.index(i, j)
	if err != nil {
		return err
	}
	f.buf[idx] = re
	return nil
}

// SetImag writes only the imaginary channel at cell (i, j).
func (f *ComplexField) SetImag(i, j int, im float64) error {
	idx, err := f.index(i, j)
	if err != nil {
		return err
	}
	f.buf[idx+1] = im
	return nil
}

// Abs2 returns |psi(i,j)|^2, the squared magnitude at cell (i, j).
func (f *ComplexField) Abs2(i, j int) (float64, error) {
	re, im, err := f.At(i, j)
	if err != nil {
		return 0, err
	}
	return re*re + im*im, nil
}

// Abs returns |psi(i,j)|, the magnitude at cell (i, j).
func (f *ComplexField) Abs(i, j int) (float64, error) {
	a2, err := f.Abs2(i, j)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(a2), nil
}

// Phase returns arg(psi(i,j)) in [-pi, pi], via the two-argument arctangent.
func (f *ComplexField) Phase(i, j int) (float64, error) {
	re, im, err := f.At(i, j)
	if err != nil {
		return 0, err
	}
	return math.Atan2(im, re), nil
}

// ScaleInPlace multiplies every cell by the real scalar s.
func (f *ComplexField) ScaleInPlace(s float64) {
	for i := range f.buf {
		f.buf[i] *= s
	}
}

// MulFieldInPlace multiplies this field elementwise (complex multiply) by
// another field of identical shape, writing the result back into f.
func (f *ComplexField) MulFieldInPlace(other *ComplexField) error {
	if other.nx != f.nx || other.ny != f.ny {
		return ErrShapeMismatch
	}
	for i := 0; i < len(f.buf); i += 2 {
		aRe, aIm := f.buf[i], f.buf[i+1]
		bRe, bIm := other.buf[i], other.buf[i+1]
		f.buf[i] = aRe*bRe - aIm*bIm
		f.buf[i+1] = aRe*bIm + aIm*bRe
	}
	return nil
}

// MulRealInPlace multiplies every cell's (re, im) pair by the real scalar
// at the corresponding position of a plain Nx*Ny real grid in the same
// row-major cell order as ComplexField (no interleaving).
func (f *ComplexField) MulRealInPlace(real []float64) error {
	if len(real) != f.nx*f.ny {
		return ErrShapeMismatch
	}
	for cell := 0; cell < f.nx*f.ny; cell++ {
		s := real[cell]
		f.buf[2*cell] *= s
		f.buf[2*cell+1] *= s
	}
	return nil
}

// CopyFrom overwrites f's buffer with the contents of src, which must have
// identical shape.
func (f *ComplexField) CopyFrom(src *ComplexField) error {
	if src.nx != f.nx || src.ny != f.ny {
		return ErrShapeMismatch
	}
	copy(f.buf, src.buf)
	return nil
}

// Zero clears the entire field to 0+0i.
func (f *ComplexField) Zero() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// ZeroCell clears a single cell to 0+0i.
func (f *ComplexField) ZeroCell(i, j int) error {
	return f.Set(i, j, 0, 0)
}

// SumAbs2 returns the discrete sum of |psi|^2 over every cell: Σ re^2+im^2.
func (f *ComplexField) SumAbs2() float64 {
	s := 0.0
	for i := 0; i < len(f.buf); i += 2 {
		re, im := f.buf[i], f.buf[i+1]
		s += re*re + im*im
	}
	return s
}

// Normalize rescales field in place by 1/sqrt(SumAbs2()) so the discrete
// sum of |psi|^2 equals 1 (the sum-normalization convention; see
// spec.md §4.1). Fails with ErrDegenerateField when the field carries no
// probability at all.
func Normalize(field *ComplexField) error {
	s := field.SumAbs2()
	if s <= 0 {
		return ErrDegenerateField
	}
	field.ScaleInPlace(1.0 / math.Sqrt(s))
	return nil
}
