package favicon

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func loadImage(path string) (image.Image, error) {
	srcFile, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening logo")
	}
	defer srcFile.Close()

	img, _, err := image.Decode(srcFile)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return img, nil
}

func writePNG(path string, img image.Image) (int64, error) {
	return writeFile(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

func writeICO(path string, img image.Image) (int64, error) {
	return writeFile(path, func(w io.Writer) error {
		return ico.Encode(w, img)
	})
}

// writeFile truncates path, runs encode against it and reports the size written.
func writeFile(path string, encode func(w io.Writer) error) (int64, error) {
	outFile, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "creating output file")
	}
	defer outFile.Close()

	if err := encode(outFile); err != nil {
		return 0, errors.Wrapf(err, "encoding %s", path)
	}

	info, err := outFile.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, "stat %s", path)
	}
	if err := outFile.Close(); err != nil {
		return 0, errors.Wrapf(err, "closing %s", path)
	}
	return info.Size(), nil
}
