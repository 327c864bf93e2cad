package pix

import "testing"

func TestRGBA8ColorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    RGBA8
	}{
		{"Opaque red", RGBA8{R: 255, A: 255}},
		{"Transparent black", RGBA8{}},
		{"Mixed channels", RGBA8{R: 1, G: 2, B: 3, A: 4}},
		{"All max", RGBA8{R: 255, G: 255, B: 255, A: 255}},
		{"Half alpha", RGBA8{R: 200, G: 100, B: 50, A: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBA8FromColor(tt.p.Color())
			if got != tt.p {
				t.Errorf("round trip changed pixel: got %+v, want %+v", got, tt.p)
			}
		})
	}
}

func TestColorChannelPacking(t *testing.T) {
	c := NewColor(0x12, 0x34, 0x56, 0x78)
	if uint32(c) != 0x12345678 {
		t.Fatalf("packed value: got %#x, want 0x12345678", uint32(c))
	}
	if c.Alpha() != 0x12 || c.Red() != 0x34 || c.Green() != 0x56 || c.Blue() != 0x78 {
		t.Errorf("channels: got (%d, %d, %d, %d), want (18, 52, 86, 120)",
			c.Alpha(), c.Red(), c.Green(), c.Blue())
	}
}

func TestRGB8ConversionIsOpaque(t *testing.T) {
	// Whatever alpha went into the generic color, RGB8 discards it on the
	// way in and synthesizes full opacity on the way out.
	for _, alpha := range []uint8{0, 1, 127, 255} {
		src := NewColor(alpha, 10, 20, 30)
		p := RGB8FromColor(src)
		if p != (RGB8{R: 10, G: 20, B: 30}) {
			t.Fatalf("alpha %d: got %+v, want {10 20 30}", alpha, p)
		}
		if got := p.Color().Alpha(); got != 255 {
			t.Errorf("alpha %d: converted alpha is %d, want 255", alpha, got)
		}
	}
}

func TestR8Luma(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want uint8
	}{
		{"Black", NewColor(255, 0, 0, 0), 0},
		{"White", NewColor(255, 255, 255, 255), 255},
		{"Pure red", NewColor(255, 255, 0, 0), 76},
		{"Pure green", NewColor(255, 0, 255, 0), 149},
		{"Pure blue", NewColor(255, 0, 0, 255), 29},
		{"Alpha ignored", NewColor(0, 255, 255, 255), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := R8FromColor(tt.c); got.R != tt.want {
				t.Errorf("luma of %#x: got %d, want %d", uint32(tt.c), got.R, tt.want)
			}
		})
	}
}

func TestR8ColorIsOpaqueGray(t *testing.T) {
	c := R8{R: 77}.Color()
	want := NewColor(255, 77, 77, 77)
	if c != want {
		t.Errorf("got %#x, want %#x", uint32(c), uint32(want))
	}
}
