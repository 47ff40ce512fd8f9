package imageio

import (
	"bufio"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/postprocess"
	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/raster"
)

// Options controls how a bitmap is turned into an image file.
// The zero value writes the bitmap at its own size with raster.DefaultToneMap.
type Options struct {
	Format      Format // empty: from the file extension
	ToneMap     *raster.ToneMap
	Supersample int // integer box downsample factor applied before resizing
	Width       int // 0 keeps the (downsampled) width
	Height      int
	Quality     int // JPEG only
}

// SavePNG writes b to filename as a PNG with the default tone mapping.
func SavePNG(b *raster.Bitmap, filename string) error {
	return Save(b, filename, Options{Format: PNG})
}

// Save writes b to filename, creating parent directories as needed.
func Save(b *raster.Bitmap, filename string, opts Options) error {
	format := opts.Format
	if format == "" {
		var err error
		if format, err = FormatFromPath(filename); err != nil {
			return fmt.Errorf("imageio: save %s: %w", filename, err)
		}
	}

	img := Render(b, opts)

	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("imageio: mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", filename, err)
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, img, format, opts.Quality); err != nil {
		f.Close()
		return fmt.Errorf("imageio: encode %s: %w", filename, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("imageio: write %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", filename, err)
	}
	return nil
}

// Render applies tone mapping, supersample reduction and resizing from opts.
func Render(b *raster.Bitmap, opts Options) *image.NRGBA {
	tm := raster.DefaultToneMap()
	if opts.ToneMap != nil {
		tm = *opts.ToneMap
	}
	img := b.ToNRGBA(tm)

	if opts.Supersample > 1 {
		img = postprocess.Downsample(img, opts.Supersample)
	}

	w, h := opts.Width, opts.Height
	if w > 0 || h > 0 {
		bounds := img.Bounds()
		if w <= 0 {
			w = bounds.Dx()
		}
		if h <= 0 {
			h = bounds.Dy()
		}
		img = postprocess.Resize(img, w, h)
	}
	return img
}
