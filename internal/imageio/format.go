package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// ErrUnknownFormat is returned when no encoder matches a file extension or Format.
var ErrUnknownFormat = errors.New("imageio: unknown image format")

// Format names an output encoding.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
	BMP  Format = "bmp"
	JPEG Format = "jpeg"
)

// DefaultJPEGQuality is used when Options.Quality is unset.
const DefaultJPEGQuality = 90

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	case ".tga":
		return TGA, nil
	case ".bmp":
		return BMP, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Encode writes img to w in the given format. quality only affects JPEG.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case JPEG:
		if quality <= 0 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads an image in the given format. Decoding dispatches on format
// rather than sniffing, since TGA has no magic number.
func Decode(r io.Reader, format Format) (image.Image, error) {
	switch format {
	case PNG:
		return png.Decode(r)
	case WebP:
		return webp.Decode(r)
	case TGA:
		return tga.Decode(r)
	case BMP:
		return bmp.Decode(r)
	case JPEG:
		return jpeg.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
