package pix

// RGBA8 is a 4-channel pixel with 8 bits per channel and independent alpha,
// stored in R, G, B, A order.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGBA8FromColor converts a packed color to an RGBA8 pixel. The conversion
// is lossless; RGBA8FromColor(p.Color()) == p for every pixel p.
func RGBA8FromColor(c Color) RGBA8 {
	return RGBA8{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// Color packs the pixel into the generic color representation.
func (p RGBA8) Color() Color {
	return NewColor(p.A, p.R, p.G, p.B)
}

// RGB8 is a 3-channel opaque pixel with 8 bits per channel, stored in
// R, G, B order.
type RGB8 struct {
	R, G, B uint8
}

// RGB8FromColor converts a packed color to an RGB8 pixel, discarding alpha.
func RGB8FromColor(c Color) RGB8 {
	return RGB8{R: c.Red(), G: c.Green(), B: c.Blue()}
}

// Color packs the pixel into the generic color representation with a
// fully opaque alpha.
func (p RGB8) Color() Color {
	return NewColor(255, p.R, p.G, p.B)
}

// R8 is a single-channel 8-bit pixel.
type R8 struct {
	R uint8
}

// R8FromColor converts a packed color to a single channel using the BT.601
// luma of its RGB channels. Alpha is ignored.
func R8FromColor(c Color) R8 {
	return R8{R: c.Luma()}
}

// Color expands the channel to an opaque gray.
func (p R8) Color() Color {
	return NewColor(255, p.R, p.R, p.R)
}

// Pixel is the closed set of pixel formats the data model supports.
type Pixel interface {
	RGBA8 | RGB8 | R8
}
