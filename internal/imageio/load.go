package imageio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/raster"
)

// Load decodes a PNG, JPEG, TGA, BMP or WebP file (chosen by extension) into
// a bitmap, linearizing each channel with c^gamma (gamma <= 0 leaves values as stored).
func Load(filename string, gamma float32) (*raster.Bitmap, error) {
	format, err := FormatFromPath(filename)
	if err != nil {
		return nil, fmt.Errorf("imageio: load %s: %w", filename, err)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", filename, err)
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f), format)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", filename, err)
	}
	return raster.FromImage(img, gamma), nil
}
