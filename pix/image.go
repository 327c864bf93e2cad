package pix

import "fmt"

// Format identifies which pixel format an Image holds.
type Format uint8

const (
	FormatRGBA8 Format = iota
	FormatRGB8
	FormatR8
)

func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "rgba8"
	case FormatRGB8:
		return "rgb8"
	case FormatR8:
		return "r8"
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// Image holds exactly one owning array out of a closed set of pixel
// formats. The live format is chosen by the factory that created the image
// and never changes; converting between formats means building a new Image.
//
// Dimension queries and the generic color operations (Fill, At, Set) work
// for every format. The typed accessors (AsRGBA8, AsRGB8, AsR8) hand out
// direct views for hot loops; the generic per-pixel operations convert on
// every call and are meant for compatibility call sites, not inner loops.
type Image struct {
	format Format
	rgba8  *Array2d[RGBA8]
	rgb8   *Array2d[RGB8]
	r8     *Array2d[R8]
}

// NewRGBA8 allocates a width-by-height image of RGBA8 pixels, zero-filled.
func NewRGBA8(width, height int) *Image {
	return &Image{format: FormatRGBA8, rgba8: NewArray2d[RGBA8](width, height)}
}

// NewRGB8 allocates a width-by-height image of RGB8 pixels, zero-filled.
func NewRGB8(width, height int) *Image {
	return &Image{format: FormatRGB8, rgb8: NewArray2d[RGB8](width, height)}
}

// NewR8 allocates a width-by-height image of R8 pixels, zero-filled.
func NewR8(width, height int) *Image {
	return &Image{format: FormatR8, r8: NewArray2d[R8](width, height)}
}

// Format returns the live pixel format.
func (m *Image) Format() Format { return m.format }

func (m *Image) IsRGBA8() bool { return m.format == FormatRGBA8 }
func (m *Image) IsRGB8() bool  { return m.format == FormatRGB8 }
func (m *Image) IsR8() bool    { return m.format == FormatR8 }

// AsRGBA8 returns the typed view when the live format is RGBA8. The second
// result is false otherwise; the bytes are never reinterpreted as another
// format.
func (m *Image) AsRGBA8() (View2d[RGBA8], bool) {
	if m.format != FormatRGBA8 {
		return View2d[RGBA8]{}, false
	}
	return m.rgba8.View(), true
}

// AsRGB8 returns the typed view when the live format is RGB8.
func (m *Image) AsRGB8() (View2d[RGB8], bool) {
	if m.format != FormatRGB8 {
		return View2d[RGB8]{}, false
	}
	return m.rgb8.View(), true
}

// AsR8 returns the typed view when the live format is R8.
func (m *Image) AsR8() (View2d[R8], bool) {
	if m.format != FormatR8 {
		return View2d[R8]{}, false
	}
	return m.r8.View(), true
}

func (m *Image) Width() int {
	switch m.format {
	case FormatRGBA8:
		return m.rgba8.Width()
	case FormatRGB8:
		return m.rgb8.Width()
	case FormatR8:
		return m.r8.Width()
	}
	panic(fmt.Sprintf("pix: image has invalid format %d", m.format))
}

func (m *Image) Height() int {
	switch m.format {
	case FormatRGBA8:
		return m.rgba8.Height()
	case FormatRGB8:
		return m.rgb8.Height()
	case FormatR8:
		return m.r8.Height()
	}
	panic(fmt.Sprintf("pix: image has invalid format %d", m.format))
}

// Fill writes c, converted to the live format, to every pixel.
func (m *Image) Fill(c Color) {
	switch m.format {
	case FormatRGBA8:
		fillView(m.rgba8.View(), RGBA8FromColor(c))
	case FormatRGB8:
		fillView(m.rgb8.View(), RGB8FromColor(c))
	case FormatR8:
		fillView(m.r8.View(), R8FromColor(c))
	default:
		panic(fmt.Sprintf("pix: image has invalid format %d", m.format))
	}
}

// At returns the pixel at (x, y) converted to the generic color. Panics if
// the coordinate is out of bounds.
func (m *Image) At(x, y int) Color {
	switch m.format {
	case FormatRGBA8:
		return m.rgba8.At(x, y).Color()
	case FormatRGB8:
		return m.rgb8.At(x, y).Color()
	case FormatR8:
		return m.r8.At(x, y).Color()
	}
	panic(fmt.Sprintf("pix: image has invalid format %d", m.format))
}

// Set stores c at (x, y), converted to the live format. Panics if the
// coordinate is out of bounds.
func (m *Image) Set(x, y int, c Color) {
	switch m.format {
	case FormatRGBA8:
		m.rgba8.Set(x, y, RGBA8FromColor(c))
	case FormatRGB8:
		m.rgb8.Set(x, y, RGB8FromColor(c))
	case FormatR8:
		m.r8.Set(x, y, R8FromColor(c))
	default:
		panic(fmt.Sprintf("pix: image has invalid format %d", m.format))
	}
}

func fillView[T Pixel](v View2d[T], p T) {
	if v.Empty() {
		return
	}
	row := v.Row(0)
	for x := range row {
		row[x] = p
	}
	for y := 1; y < v.Height(); y++ {
		copy(v.Row(y), row)
	}
}
