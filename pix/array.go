package pix

import "fmt"

// Array2d owns a tightly packed width-by-height pixel buffer and exposes it
// through a View2d. It is the sole owner of the buffer: duplication must go
// through Clone, and Move transfers the buffer, leaving the source empty.
// Destroying the array (letting it go unreferenced) invalidates every view
// derived from it.
type Array2d[T Pixel] struct {
	buf  []T
	view View2d[T]
}

// NewArray2d allocates a width-by-height array. The pixel contents are the
// zero value of T. Panics on negative dimensions.
func NewArray2d[T Pixel](width, height int) *Array2d[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pix: negative array dimensions %dx%d", width, height))
	}
	buf := make([]T, width*height)
	return &Array2d[T]{buf: buf, view: NewView2d(buf, width, height, 0)}
}

// View returns the view over the whole buffer. The view shares the array's
// storage; writes through it mutate the array.
func (a *Array2d[T]) View() View2d[T] { return a.view }

func (a *Array2d[T]) Width() int  { return a.view.Width() }
func (a *Array2d[T]) Height() int { return a.view.Height() }

func (a *Array2d[T]) At(x, y int) T     { return a.view.At(x, y) }
func (a *Array2d[T]) Set(x, y int, p T) { a.view.Set(x, y, p) }
func (a *Array2d[T]) Row(y int) []T     { return a.view.Row(y) }

// Move transfers ownership of the buffer to a new array and empties the
// receiver. Every access to the moved-from array panics from then on.
// Views derived from the receiver before the move keep aliasing the
// transferred buffer and must be treated as invalid by the caller.
func (a *Array2d[T]) Move() *Array2d[T] {
	moved := &Array2d[T]{buf: a.buf, view: a.view}
	*a = Array2d[T]{}
	return moved
}

// Clone returns a deep copy of the array. This is the only way to duplicate
// the buffer.
func (a *Array2d[T]) Clone() *Array2d[T] {
	c := NewArray2d[T](a.Width(), a.Height())
	copy(c.buf, a.buf)
	return c
}
