package pix

import "fmt"

// View2d is a non-owning view over a rectangular region of same-typed
// pixels. The backing slice belongs to an Array2d (or to whatever produced
// it); the view stays valid only as long as that owner does, and is
// invalidated when the owner is moved or destroyed.
//
// The stride is counted in elements, so the byte distance between rows is
// stride times the element size. A view's rows need not be contiguous:
// sub-views made with Drop, Take and Slice keep their parent's stride,
// which is what makes them free of copies.
type View2d[T Pixel] struct {
	pix    []T
	width  int
	height int
	stride int
}

// NewView2d builds a view over pix with the given dimensions. A stride of 0
// means tightly packed rows (stride = width). Panics if the dimensions are
// negative, the stride is smaller than the width, the backing slice is too
// short, or pix is nil while the view is non-empty. An empty view (width or
// height 0) needs no backing at all.
func NewView2d[T Pixel](pix []T, width, height, stride int) View2d[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pix: negative view dimensions %dx%d", width, height))
	}
	if stride == 0 {
		stride = width
	}
	if stride < width {
		panic(fmt.Sprintf("pix: view stride %d smaller than width %d", stride, width))
	}
	if width == 0 || height == 0 {
		return View2d[T]{width: width, height: height, stride: stride}
	}
	if need := (height-1)*stride + width; pix == nil || len(pix) < need {
		panic(fmt.Sprintf("pix: backing slice of %d elements cannot hold a %dx%d view with stride %d",
			len(pix), width, height, stride))
	}
	return View2d[T]{pix: pix, width: width, height: height, stride: stride}
}

func (v View2d[T]) Width() int  { return v.width }
func (v View2d[T]) Height() int { return v.height }

// Stride returns the element distance between the starts of consecutive rows.
func (v View2d[T]) Stride() int { return v.stride }

// Empty reports whether the view covers no pixels.
func (v View2d[T]) Empty() bool { return v.width == 0 || v.height == 0 }

// At returns the element at (x, y). Panics if the coordinate is out of
// bounds.
func (v View2d[T]) At(x, y int) T {
	v.check(x, y)
	return v.pix[y*v.stride+x]
}

// Set stores p at (x, y). Panics if the coordinate is out of bounds.
func (v View2d[T]) Set(x, y int, p T) {
	v.check(x, y)
	v.pix[y*v.stride+x] = p
}

// Row returns row y as a mutable slice of exactly width elements, sharing
// the view's backing. Panics if y is out of bounds.
func (v View2d[T]) Row(y int) []T {
	if y < 0 || y >= v.height {
		panic(fmt.Sprintf("pix: row %d out of bounds of %dx%d view", y, v.width, v.height))
	}
	off := y * v.stride
	return v.pix[off : off+v.width : off+v.width]
}

// Drop returns the sub-view starting at (left, top) through the original
// bottom-right corner, keeping the stride. Panics unless
// 0 <= left <= width and 0 <= top <= height; the result may be empty.
func (v View2d[T]) Drop(left, top int) View2d[T] {
	if left < 0 || top < 0 || left > v.width || top > v.height {
		panic(fmt.Sprintf("pix: drop(%d, %d) out of bounds of %dx%d view", left, top, v.width, v.height))
	}
	w, h := v.width-left, v.height-top
	if w == 0 || h == 0 {
		return View2d[T]{width: w, height: h, stride: v.stride}
	}
	return View2d[T]{pix: v.pix[top*v.stride+left:], width: w, height: h, stride: v.stride}
}

// Take returns the top-left w-by-h sub-view, keeping the base and stride.
// Panics unless 0 <= w <= width and 0 <= h <= height.
func (v View2d[T]) Take(w, h int) View2d[T] {
	if w < 0 || h < 0 || w > v.width || h > v.height {
		panic(fmt.Sprintf("pix: take(%d, %d) out of bounds of %dx%d view", w, h, v.width, v.height))
	}
	if w == 0 || h == 0 {
		return View2d[T]{width: w, height: h, stride: v.stride}
	}
	return View2d[T]{pix: v.pix, width: w, height: h, stride: v.stride}
}

// Slice returns the w-by-h sub-view whose top-left corner is at (x, y).
// It is Drop(x, y) followed by Take(w, h): pure pointer and dimension
// arithmetic, no copying.
func (v View2d[T]) Slice(x, y, w, h int) View2d[T] {
	return v.Drop(x, y).Take(w, h)
}

func (v View2d[T]) check(x, y int) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		panic(fmt.Sprintf("pix: coordinate (%d, %d) out of bounds of %dx%d view", x, y, v.width, v.height))
	}
}
