package ops

import "pixview/pix"

// ToRGBA8 returns src converted to RGBA8. RGB8 pixels gain a fully opaque
// alpha; R8 pixels expand to opaque gray. A source that is already RGBA8 is
// deep-copied, never shared.
func ToRGBA8(src *pix.Image) *pix.Image {
	if src.IsRGBA8() {
		return CopyImage(src)
	}
	dst := pix.NewRGBA8(src.Width(), src.Height())
	d, _ := dst.AsRGBA8()
	convertView(d, src, pix.RGBA8FromColor)
	return dst
}

// ToRGB8 returns src converted to RGB8, discarding alpha.
func ToRGB8(src *pix.Image) *pix.Image {
	if src.IsRGB8() {
		return CopyImage(src)
	}
	dst := pix.NewRGB8(src.Width(), src.Height())
	d, _ := dst.AsRGB8()
	convertView(d, src, pix.RGB8FromColor)
	return dst
}

// ToR8 returns src reduced to a single channel using BT.601 luma.
func ToR8(src *pix.Image) *pix.Image {
	if src.IsR8() {
		return CopyImage(src)
	}
	dst := pix.NewR8(src.Width(), src.Height())
	d, _ := dst.AsR8()
	convertView(d, src, pix.R8FromColor)
	return dst
}

// convertView routes every source pixel through the generic color. The
// source's typed rows are still iterated directly; only the per-pixel
// conversion is generic.
func convertView[T pix.Pixel](dst pix.View2d[T], src *pix.Image, from func(pix.Color) T) {
	switch {
	case src.IsRGBA8():
		s, _ := src.AsRGBA8()
		for y := 0; y < s.Height(); y++ {
			srcRow, dstRow := s.Row(y), dst.Row(y)
			for x, p := range srcRow {
				dstRow[x] = from(p.Color())
			}
		}
	case src.IsRGB8():
		s, _ := src.AsRGB8()
		for y := 0; y < s.Height(); y++ {
			srcRow, dstRow := s.Row(y), dst.Row(y)
			for x, p := range srcRow {
				dstRow[x] = from(p.Color())
			}
		}
	case src.IsR8():
		s, _ := src.AsR8()
		for y := 0; y < s.Height(); y++ {
			srcRow, dstRow := s.Row(y), dst.Row(y)
			for x, p := range srcRow {
				dstRow[x] = from(p.Color())
			}
		}
	}
}
