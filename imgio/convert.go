// Package imgio is the boundary between the pix data model and Go's image
// ecosystem: decoding files into pix.Image, encoding pix.Image into files,
// and converting to and from the standard library image types.
//
// Decoders are producers in the model's sense: whatever they hand over,
// including paletted and 16-bit-per-channel images, is widened to one of
// the model's formats at load time. The model itself never converts.
package imgio

import (
	"image"
	"image/color"

	"pixview/pix"
)

// FromStd converts a decoded standard library image into a pix.Image.
// *image.Gray becomes R8, a fully opaque *image.NRGBA becomes RGB8, and
// everything else is widened pixel-wise to RGBA8.
func FromStd(src image.Image) *pix.Image {
	switch s := src.(type) {
	case *image.Gray:
		return fromGray(s)
	case *image.NRGBA:
		if nrgbaOpaque(s) {
			return fromNRGBAOpaque(s)
		}
		return fromNRGBA(s)
	default:
		return fromGeneric(src)
	}
}

// ToStd converts img into the closest standard library image type:
// *image.NRGBA for RGBA8 and RGB8 (the latter fully opaque), *image.Gray
// for R8. The result owns its own pixels.
func ToStd(img *pix.Image) image.Image {
	w, h := img.Width(), img.Height()
	switch {
	case img.IsR8():
		v, _ := img.AsR8()
		out := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := v.Row(y)
			off := y * out.Stride
			for x, p := range row {
				out.Pix[off+x] = p.R
			}
		}
		return out
	case img.IsRGB8():
		v, _ := img.AsRGB8()
		out := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := v.Row(y)
			off := y * out.Stride
			for x, p := range row {
				i := off + x*4
				out.Pix[i+0] = p.R
				out.Pix[i+1] = p.G
				out.Pix[i+2] = p.B
				out.Pix[i+3] = 255
			}
		}
		return out
	default:
		v, _ := img.AsRGBA8()
		out := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			row := v.Row(y)
			off := y * out.Stride
			for x, p := range row {
				i := off + x*4
				out.Pix[i+0] = p.R
				out.Pix[i+1] = p.G
				out.Pix[i+2] = p.B
				out.Pix[i+3] = p.A
			}
		}
		return out
	}
}

func fromGray(src *image.Gray) *pix.Image {
	b := src.Bounds()
	img := pix.NewR8(b.Dx(), b.Dy())
	v, _ := img.AsR8()
	for y := 0; y < b.Dy(); y++ {
		row := v.Row(y)
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		for x := range row {
			row[x] = pix.R8{R: src.Pix[off+x]}
		}
	}
	return img
}

func fromNRGBA(src *image.NRGBA) *pix.Image {
	b := src.Bounds()
	img := pix.NewRGBA8(b.Dx(), b.Dy())
	v, _ := img.AsRGBA8()
	for y := 0; y < b.Dy(); y++ {
		row := v.Row(y)
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		for x := range row {
			i := off + x*4
			row[x] = pix.RGBA8{R: src.Pix[i+0], G: src.Pix[i+1], B: src.Pix[i+2], A: src.Pix[i+3]}
		}
	}
	return img
}

func fromNRGBAOpaque(src *image.NRGBA) *pix.Image {
	b := src.Bounds()
	img := pix.NewRGB8(b.Dx(), b.Dy())
	v, _ := img.AsRGB8()
	for y := 0; y < b.Dy(); y++ {
		row := v.Row(y)
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		for x := range row {
			i := off + x*4
			row[x] = pix.RGB8{R: src.Pix[i+0], G: src.Pix[i+1], B: src.Pix[i+2]}
		}
	}
	return img
}

func fromGeneric(src image.Image) *pix.Image {
	b := src.Bounds()
	img := pix.NewRGBA8(b.Dx(), b.Dy())
	v, _ := img.AsRGBA8()
	for y := 0; y < b.Dy(); y++ {
		row := v.Row(y)
		for x := range row {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			row[x] = pix.RGBA8{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}
	return img
}

func nrgbaOpaque(src *image.NRGBA) bool {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := src.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			if src.Pix[off+x*4+3] != 255 {
				return false
			}
		}
	}
	return true
}
