package imgio

import (
	"path/filepath"
	"testing"

	"pixview/pix"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	img := pix.NewRGBA8(4, 3)
	img.Fill(pix.NewColor(255, 1, 2, 3))
	img.Set(2, 1, pix.NewColor(128, 200, 150, 100))

	if err := Save(img, "png", "same", dir, "test.png"); err != nil {
		t.Fatal(err)
	}

	back, imgType, err := Load(filepath.Join(dir, "test.png"))
	if err != nil {
		t.Fatal(err)
	}
	if imgType != "png" {
		t.Errorf("decoded type: got %q, want png", imgType)
	}
	if back.Width() != 4 || back.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", back.Width(), back.Height())
	}
	if got := back.At(2, 1); got != pix.NewColor(128, 200, 150, 100) {
		t.Errorf("pixel (2, 1): got %#x", uint32(got))
	}
	if got := back.At(0, 0); got != pix.NewColor(255, 1, 2, 3) {
		t.Errorf("pixel (0, 0): got %#x", uint32(got))
	}
}

func TestSaveGrayAsPNG(t *testing.T) {
	dir := t.TempDir()

	img := pix.NewR8(5, 5)
	img.Fill(pix.NewColor(255, 66, 66, 66))

	if err := Save(img, "png", "same", dir, "gray.png"); err != nil {
		t.Fatal(err)
	}

	back, _, err := Load(filepath.Join(dir, "gray.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !back.IsR8() {
		t.Fatalf("format: got %v, want r8", back.Format())
	}
	if got := back.At(3, 3); got != pix.NewColor(255, 66, 66, 66) {
		t.Errorf("pixel (3, 3): got %#x", uint32(got))
	}
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	img := pix.NewRGB8(1, 1)
	if err := Save(img, "webp", "same", dir, "x.webp"); err == nil {
		t.Error("encoding to an unencodable format should fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("loading a missing file should fail")
	}
}
