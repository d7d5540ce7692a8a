// Package debug provides developer tooling for the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/logger"
)

// ScreenshotCapture writes PNG screenshots into a directory.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	last      string
	seq       int
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// FlipRows converts bottom-up RGBA rows, as returned by glReadPixels, into
// a top-down image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// CaptureFromPixels saves bottom-up RGBA pixel data as a PNG and returns
// the file name.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return "", err
	}
	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves img as a PNG and returns the file name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	logger.Info("screenshot saved", zap.String("path", filename))
	return filename, nil
}

// nextFilename builds prefix_timestamp.png, adding a counter when several
// screenshots land in the same second.
func (sc *ScreenshotCapture) nextFilename() string {
	stamp := sc.now().Format("2006-01-02_15-04-05")
	if stamp == sc.last {
		sc.seq++
	} else {
		sc.last, sc.seq = stamp, 0
	}

	name := fmt.Sprintf("%s_%s.png", sc.prefix, stamp)
	if sc.seq > 0 {
		name = fmt.Sprintf("%s_%s_%d.png", sc.prefix, stamp, sc.seq)
	}
	if sc.outputDir != "" {
		name = filepath.Join(sc.outputDir, name)
	}
	return name
}
