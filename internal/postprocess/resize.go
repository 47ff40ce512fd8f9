package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize scales img to w×h with Catmull-Rom filtering. It returns img itself
// when the size already matches or either target dimension is not positive.
func Resize(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() == w && b.Dy() == h) {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// box weights every source pixel inside the kernel's support equally. When
// shrinking, draw widens the support by the scale ratio, so an integer factor
// averages exactly one factor×factor block per destination pixel.
var box = &draw.Kernel{Support: 0.5, At: func(float64) float64 { return 1 }}

// Downsample shrinks a supersampled image by an integer factor, averaging each
// factor×factor block. Trailing rows or columns that do not fill a block are
// dropped. Factors below 2 return img unchanged.
func Downsample(img *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx()/factor, b.Dy()/factor
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}
	src := image.Rect(b.Min.X, b.Min.Y, b.Min.X+w*factor, b.Min.Y+h*factor)
	box.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}
