package favicon

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"favicongen/internal/config"
)

// Resize scales src to an exact size×size square, keeping the alpha channel.
// The aspect ratio of src is not preserved.
func Resize(src image.Image, size int, filter string) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid icon size %d", size)
	}

	switch filter {
	case config.FilterLanczos, "":
		return imaging.Resize(src, size, size, imaging.Lanczos), nil
	case config.FilterCatmullRom:
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
		return dst, nil
	default:
		return nil, errors.Errorf("unknown resampling filter %q", filter)
	}
}
