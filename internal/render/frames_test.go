package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFrameRecorderSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	fr, err := NewFrameRecorder(dir, 2, 2)
	if err != nil {
		t.Fatalf("NewFrameRecorder: %v", err)
	}

	if err := fr.Save(3, []uint8{1, 0, 0, 1}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "frame3.png"))
	if err != nil {
		t.Fatalf("frame file missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected frame bounds %v", img.Bounds())
	}

	r, _, _, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 {
		t.Fatalf("live cell should render white, got red %d", r>>8)
	}
	r, _, _, _ = img.At(1, 0).RGBA()
	if r>>8 != 0 {
		t.Fatalf("dead cell should render black, got red %d", r>>8)
	}
}

func TestFrameRecorderRejectsSizeMismatch(t *testing.T) {
	fr, err := NewFrameRecorder(t.TempDir(), 2, 2)
	if err != nil {
		t.Fatalf("NewFrameRecorder: %v", err)
	}
	if err := fr.Save(0, []uint8{1}); err == nil {
		t.Fatal("mismatched cell count should error")
	}
}
