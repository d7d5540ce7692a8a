package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Decode reads an image file. TGA and BMP are selected by extension; any
// other file goes through the registered image decoders.
func Decode(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return img, nil
	case ".bmp":
		img, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// LoadRGBA decodes path into a tightly packed RGBA image.
func LoadRGBA(path string) (*image.RGBA, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to *image.RGBA with origin (0,0). RGBA input
// with a zero origin is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of img with rows in reverse order. Model
// textures are flipped because OBJ texture coordinates start at the bottom.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	row := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+row]
		dst := (b.Dy() - 1 - y) * out.Stride
		copy(out.Pix[dst:dst+row], src)
	}
	return out
}
