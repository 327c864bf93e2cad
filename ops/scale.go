package ops

import (
	"fmt"

	"pixview/pix"
)

// ScaleNearest returns src resampled to width-by-height with nearest
// neighbor sampling, keeping the live format. This is intentionally the
// only scaler here; filtered resampling belongs to consumers.
func ScaleNearest(src *pix.Image, width, height int) (*pix.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid scale target %dx%d", width, height)
	}
	if src.Width() == 0 || src.Height() == 0 {
		return nil, fmt.Errorf("cannot scale an empty %dx%d image", src.Width(), src.Height())
	}
	dst := newLike(src, width, height)
	switch {
	case src.IsRGBA8():
		s, _ := src.AsRGBA8()
		d, _ := dst.AsRGBA8()
		scaleNearestView(d, s)
	case src.IsRGB8():
		s, _ := src.AsRGB8()
		d, _ := dst.AsRGB8()
		scaleNearestView(d, s)
	case src.IsR8():
		s, _ := src.AsR8()
		d, _ := dst.AsR8()
		scaleNearestView(d, s)
	}
	return dst, nil
}

func scaleNearestView[T pix.Pixel](dst, src pix.View2d[T]) {
	xRatio := float64(src.Width()) / float64(dst.Width())
	yRatio := float64(src.Height()) / float64(dst.Height())
	for y := 0; y < dst.Height(); y++ {
		srcRow := src.Row(int(float64(y) * yRatio))
		dstRow := dst.Row(y)
		for x := range dstRow {
			dstRow[x] = srcRow[int(float64(x)*xRatio)]
		}
	}
}
