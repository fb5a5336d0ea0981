package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FrameRecorder writes one PNG per generation into a directory, in the
// frame<N>.png naming a video encoder such as ffmpeg consumes directly.
type FrameRecorder struct {
	dir  string
	w, h int
	on   color.Color
	off  color.Color
	buf  []byte
}

// NewFrameRecorder creates the output directory and a recorder for w*h
// boards. Live cells render white on black.
func NewFrameRecorder(dir string, w, h int) (*FrameRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "render: failed to create frame dir %s", dir)
	}
	return &FrameRecorder{
		dir: dir,
		w:   w,
		h:   h,
		on:  color.White,
		off: color.Black,
		buf: make([]byte, 4*w*h),
	}, nil
}

// Save encodes the cells as frame<gen>.png under the recorder directory.
func (fr *FrameRecorder) Save(gen int, cells []uint8) error {
	if len(cells) != fr.w*fr.h {
		return errors.Errorf("render: cell count %d does not match %dx%d frame", len(cells), fr.w, fr.h)
	}
	fillBinaryRGBA(fr.buf, cells, fr.on, fr.off)
	img := &image.RGBA{
		Pix:    fr.buf,
		Stride: 4 * fr.w,
		Rect:   image.Rect(0, 0, fr.w, fr.h),
	}

	path := filepath.Join(fr.dir, fmt.Sprintf("frame%d.png", gen))
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "render: failed to create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "render: failed to encode %s", path)
	}
	return errors.Wrapf(f.Close(), "render: failed to close %s", path)
}
