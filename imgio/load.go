package imgio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"pixview/pix"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Load decodes the image file at path into a pix.Image, widening the
// decoded pixels to one of the model's formats. The second result is the
// decoded format name ("png", "jpeg", ...).
func Load(path string) (img *pix.Image, imgType string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "name", path, "error", closeErr)
		}
	}()

	decoded, imgType, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}

	return FromStd(decoded), imgType, nil
}
