package ops

import (
	"pixview/pix"
	"pixview/parallel"
)

// MapParallel applies fn to every pixel of v, splitting the rows into
// bands dispatched through worker and blocking until all bands are done.
// Bands never overlap, so the rows need no synchronization of their own.
func MapParallel[T pix.Pixel](worker parallel.WorkerFunc, v pix.View2d[T], fn func(T) T) {
	parallel.Rows(worker, v.Height(), 0, func(lo, hi int) {
		Map(v.Slice(0, lo, v.Width(), hi-lo), fn)
	})
}
