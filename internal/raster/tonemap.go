package raster

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/mathutil"
)

// ToneMap maps linear radiance to display-referred 8-bit channels.
type ToneMap struct {
	Exposure float32
	Gamma    float32 // 1 disables gamma encoding
	ACES     bool
}

// DefaultToneMap returns unit exposure with 2.2 gamma and no filmic curve.
func DefaultToneMap() ToneMap {
	return ToneMap{Exposure: 1, Gamma: 2.2}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float32) float32 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// Apply returns the display value of c in [0, 1] per channel, before quantization.
func (tm ToneMap) Apply(c mathutil.Vec3) mathutil.Vec3 {
	exp := tm.Exposure
	if exp <= 0 {
		exp = 1
	}
	var out mathutil.Vec3
	for i := 0; i < 3; i++ {
		x := c[i] * exp
		if math32.IsNaN(x) || x < 0 {
			x = 0
		}
		if tm.ACES {
			x = ACESTonemap(x)
		}
		if x > 1 {
			x = 1
		}
		if tm.Gamma > 0 && tm.Gamma != 1 {
			x = math32.Pow(x, 1/tm.Gamma)
		}
		out[i] = x
	}
	return out
}

// Quantize maps a display value in [0, 1] to a byte, clamping outside values.
func Quantize(x float32) uint8 {
	if !(x > 0) {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}

// ToNRGBA converts b to an opaque image: rows top-to-bottom, columns
// left-to-right, x/y/z to R/G/B.
func (b *Bitmap) ToNRGBA(tm ToneMap) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.cols, b.rows))
	for r := 0; r < b.rows; r++ {
		row := b.Row(r)
		off := r * img.Stride
		for c, px := range row {
			d := tm.Apply(px)
			i := off + c*4
			img.Pix[i] = Quantize(d[0])
			img.Pix[i+1] = Quantize(d[1])
			img.Pix[i+2] = Quantize(d[2])
			img.Pix[i+3] = 255
		}
	}
	return img
}

// FromImage builds a bitmap from any image, decoding each channel with
// c^gamma (gamma <= 0 means 1, i.e. no decoding).
func FromImage(img image.Image, gamma float32) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())
	if gamma <= 0 {
		gamma = 1
	}
	var lut [256]float32
	for i := range lut {
		lut[i] = math32.Pow(float32(i)/255, gamma)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := b.Row(y - bounds.Min.Y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			row[x-bounds.Min.X] = mathutil.Vec3{lut[cr>>8], lut[cg>>8], lut[cb>>8]}
		}
	}
	return b
}
