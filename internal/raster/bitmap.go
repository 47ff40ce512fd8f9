package raster

import (
	"errors"
	"fmt"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/mathutil"
)

// ErrOutOfBounds is returned by the checked pixel accessors.
var ErrOutOfBounds = errors.New("raster: pixel out of bounds")

// Bitmap is a fixed cols×rows grid of colors held as one flat row-major slice.
// Row r starts at offset r*cols.
type Bitmap struct {
	cols int
	rows int
	data []mathutil.Vec3
}

// NewBitmap allocates a zeroed bitmap. Negative dimensions are treated as zero.
func NewBitmap(cols, rows int) *Bitmap {
	cols = max(cols, 0)
	rows = max(rows, 0)
	return &Bitmap{
		cols: cols,
		rows: rows,
		data: make([]mathutil.Vec3, cols*rows),
	}
}

func (b *Bitmap) Cols() int { return b.cols }
func (b *Bitmap) Rows() int { return b.rows }
func (b *Bitmap) Len() int  { return len(b.data) }

// Pix returns the backing slice. Writes through it are visible in b.
func (b *Bitmap) Pix() []mathutil.Vec3 { return b.data }

// Row returns a view of row r sharing b's storage. r is not validated
// beyond the runtime's slice bounds check.
func (b *Bitmap) Row(r int) []mathutil.Vec3 {
	off := r * b.cols
	return b.data[off : off+b.cols : off+b.cols]
}

// Pixel returns a pointer to the pixel at column c, row r without bounds validation.
func (b *Bitmap) Pixel(c, r int) *mathutil.Vec3 {
	return &b.data[r*b.cols+c]
}

func (b *Bitmap) inBounds(c, r int) bool {
	return c >= 0 && c < b.cols && r >= 0 && r < b.rows
}

// At returns the pixel at column c, row r.
func (b *Bitmap) At(c, r int) (mathutil.Vec3, error) {
	if !b.inBounds(c, r) {
		return mathutil.Vec3{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, c, r, b.cols, b.rows)
	}
	return b.data[r*b.cols+c], nil
}

// Set stores v at column c, row r.
func (b *Bitmap) Set(c, r int, v mathutil.Vec3) error {
	if !b.inBounds(c, r) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, c, r, b.cols, b.rows)
	}
	b.data[r*b.cols+c] = v
	return nil
}

// Fill sets every pixel to v.
func (b *Bitmap) Fill(v mathutil.Vec3) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Scale multiplies every pixel by s, e.g. 1/samples after accumulation.
func (b *Bitmap) Scale(s float32) {
	for i := range b.data {
		b.data[i] = b.data[i].Scale(s)
	}
}
