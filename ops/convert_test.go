package ops

import (
	"testing"

	"pixview/parallel"
	"pixview/pix"
)

func TestToRGBA8FromRGB8(t *testing.T) {
	src := pix.NewRGB8(3, 2)
	src.Fill(pix.NewColor(0, 11, 22, 33)) // alpha discarded by RGB8

	out := ToRGBA8(src)
	if !out.IsRGBA8() {
		t.Fatalf("format: got %v, want rgba8", out.Format())
	}
	v, _ := out.AsRGBA8()
	want := pix.RGBA8{R: 11, G: 22, B: 33, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := v.At(x, y); got != want {
				t.Fatalf("pixel (%d, %d): got %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestToRGB8DropsAlpha(t *testing.T) {
	src := pix.NewRGBA8(2, 2)
	src.Set(1, 1, pix.NewColor(7, 100, 110, 120))

	out := ToRGB8(src)
	v, _ := out.AsRGB8()
	if got := v.At(1, 1); got != (pix.RGB8{R: 100, G: 110, B: 120}) {
		t.Errorf("pixel (1, 1): got %+v", got)
	}
}

func TestToR8IsLuma(t *testing.T) {
	src := pix.NewRGBA8(2, 1)
	src.Set(0, 0, pix.NewColor(255, 255, 0, 0))
	src.Set(1, 0, pix.NewColor(255, 0, 255, 0))

	out := ToR8(src)
	v, _ := out.AsR8()
	if v.At(0, 0).R != 76 || v.At(1, 0).R != 149 {
		t.Errorf("luma: got (%d, %d), want (76, 149)", v.At(0, 0).R, v.At(1, 0).R)
	}
}

func TestConvertSameFormatCopies(t *testing.T) {
	src := pix.NewR8(2, 2)
	src.Fill(pix.NewColor(255, 80, 80, 80))

	out := ToR8(src)
	out.Set(0, 0, pix.NewColor(255, 0, 0, 0))
	if got := src.At(0, 0); got != pix.NewColor(255, 80, 80, 80) {
		t.Error("same-format conversion aliased the source")
	}
}

func TestMapParallelMatchesMap(t *testing.T) {
	mk := func() pix.View2d[pix.R8] {
		img := pix.NewR8(17, 23)
		v, _ := img.AsR8()
		for y := 0; y < v.Height(); y++ {
			row := v.Row(y)
			for x := range row {
				row[x] = pix.R8{R: uint8(x*7 + y*3)}
			}
		}
		return v
	}
	invert := func(p pix.R8) pix.R8 { return pix.R8{R: 255 - p.R} }

	serial := mk()
	Map(serial, invert)

	pool := parallel.Start(4)
	defer pool.Wait(true)
	concurrent := mk()
	MapParallel(pool.Do, concurrent, invert)

	for y := 0; y < serial.Height(); y++ {
		for x := 0; x < serial.Width(); x++ {
			if serial.At(x, y) != concurrent.At(x, y) {
				t.Fatalf("pixel (%d, %d) differs between serial and parallel map", x, y)
			}
		}
	}
}
