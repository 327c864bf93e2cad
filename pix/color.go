package pix

// Color is a 32-bit packed color with 8-bit alpha, red, green and blue
// channels (alpha in the top byte). It is the format-agnostic interchange
// representation used by Image.Fill, Image.At and Image.Set.
type Color uint32

// NewColor packs the given channels into a Color.
func NewColor(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) Alpha() uint8 { return uint8(c >> 24) }
func (c Color) Red() uint8   { return uint8(c >> 16) }
func (c Color) Green() uint8 { return uint8(c >> 8) }
func (c Color) Blue() uint8  { return uint8(c) }

// Luma returns the BT.601 luma of the color's RGB channels, ignoring alpha.
func (c Color) Luma() uint8 {
	r := uint32(c.Red())
	g := uint32(c.Green())
	b := uint32(c.Blue())
	return uint8((299*r + 587*g + 114*b) / 1000)
}
