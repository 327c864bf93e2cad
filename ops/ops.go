// Package ops implements region and whole-image operations on top of the
// pix data model. Everything here composes sub-views with Drop/Take/Slice
// and iterates rows directly; nothing copies pixels it does not have to.
package ops

import (
	"fmt"

	"pixview/pix"
)

// Fill writes p to every pixel of v.
func Fill[T pix.Pixel](v pix.View2d[T], p T) {
	for y := 0; y < v.Height(); y++ {
		row := v.Row(y)
		for x := range row {
			row[x] = p
		}
	}
}

// FillRect fills the w-by-h rectangle of v whose top-left corner is at
// (x, y). Panics if the rectangle does not fit inside v.
func FillRect[T pix.Pixel](v pix.View2d[T], x, y, w, h int, p T) {
	Fill(v.Slice(x, y, w, h), p)
}

// Blit copies src into dst with its top-left corner at (dstX, dstY),
// clipped to dst's extent. dstX and dstY must not be negative.
// Overlapping views give unspecified results.
func Blit[T pix.Pixel](dst, src pix.View2d[T], dstX, dstY int) {
	if dstX >= dst.Width() || dstY >= dst.Height() {
		return
	}
	w := min(src.Width(), dst.Width()-dstX)
	h := min(src.Height(), dst.Height()-dstY)
	if w <= 0 || h <= 0 {
		return
	}
	to := dst.Slice(dstX, dstY, w, h)
	from := src.Take(w, h)
	for y := 0; y < h; y++ {
		copy(to.Row(y), from.Row(y))
	}
}

// Map applies fn to every pixel of v in place.
func Map[T pix.Pixel](v pix.View2d[T], fn func(T) T) {
	for y := 0; y < v.Height(); y++ {
		row := v.Row(y)
		for x, p := range row {
			row[x] = fn(p)
		}
	}
}

// CopyImage returns a deep copy of src with the same live format.
func CopyImage(src *pix.Image) *pix.Image {
	dst := newLike(src, src.Width(), src.Height())
	switch {
	case src.IsRGBA8():
		s, _ := src.AsRGBA8()
		d, _ := dst.AsRGBA8()
		Blit(d, s, 0, 0)
	case src.IsRGB8():
		s, _ := src.AsRGB8()
		d, _ := dst.AsRGB8()
		Blit(d, s, 0, 0)
	case src.IsR8():
		s, _ := src.AsR8()
		d, _ := dst.AsR8()
		Blit(d, s, 0, 0)
	}
	return dst
}

// Crop returns a new image of src's format holding the w-by-h region of
// src whose top-left corner is at (x, y).
func Crop(src *pix.Image, x, y, w, h int) (*pix.Image, error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > src.Width() || y+h > src.Height() {
		return nil, fmt.Errorf("crop rectangle %dx%d at (%d, %d) outside %dx%d image",
			w, h, x, y, src.Width(), src.Height())
	}
	dst := newLike(src, w, h)
	switch {
	case src.IsRGBA8():
		s, _ := src.AsRGBA8()
		d, _ := dst.AsRGBA8()
		Blit(d, s.Slice(x, y, w, h), 0, 0)
	case src.IsRGB8():
		s, _ := src.AsRGB8()
		d, _ := dst.AsRGB8()
		Blit(d, s.Slice(x, y, w, h), 0, 0)
	case src.IsR8():
		s, _ := src.AsR8()
		d, _ := dst.AsR8()
		Blit(d, s.Slice(x, y, w, h), 0, 0)
	}
	return dst, nil
}

func newLike(src *pix.Image, w, h int) *pix.Image {
	switch src.Format() {
	case pix.FormatRGB8:
		return pix.NewRGB8(w, h)
	case pix.FormatR8:
		return pix.NewR8(w, h)
	default:
		return pix.NewRGBA8(w, h)
	}
}
