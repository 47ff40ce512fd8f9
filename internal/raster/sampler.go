package raster

import (
	"github.com/chewxy/math32"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/mathutil"
)

// Sample performs bilinear filtering with UV wrapping; (0, 0) is the top-left
// pixel. An empty bitmap samples as black.
func (b *Bitmap) Sample(u, v float32) mathutil.Vec3 {
	w, h := b.cols, b.rows
	if w == 0 || h == 0 {
		return mathutil.Vec3{}
	}

	// Wrap UVs
	u -= math32.Floor(u)
	v -= math32.Floor(v)

	fx := u * float32(w-1)
	fy := v * float32(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float32(x0)
	dy := fy - float32(y0)

	p00 := b.data[y0*w+x0]
	p10 := b.data[y0*w+x1]
	p01 := b.data[y1*w+x0]
	p11 := b.data[y1*w+x1]

	top := p00.Lerp(p10, dx)
	bottom := p01.Lerp(p11, dx)
	return top.Lerp(bottom, dy)
}
