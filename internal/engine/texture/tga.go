// Package texture decodes image files and uploads them as OpenGL textures.
package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes a TGA image file.
// Supports uncompressed true-color (type 2) and RLE compressed (type 10)
// files with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	w := &tgaWriter{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		width:       width,
		height:      height,
		bpp:         bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	pixels := data[offset:]
	if imageType == TGATypeUncompressed {
		if len(pixels) < width*height*w.bpp {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for i := 0; i < width*height; i++ {
			w.put(i, w.read(pixels[i*w.bpp:]))
		}
		return w.img, nil
	}

	if err := w.decodeRLE(pixels); err != nil {
		return nil, err
	}
	return w.img, nil
}

// tgaWriter places BGR(A) pixels into an RGBA image in file order.
type tgaWriter struct {
	img           *image.RGBA
	width, height int
	bpp           int
	topToBottom   bool
}

func (w *tgaWriter) read(p []byte) color.RGBA {
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if w.bpp == 4 {
		c.A = p[3]
	}
	return c
}

// put writes the n-th pixel in file order. Bottom-up files are flipped so
// row 0 is the top of the image.
func (w *tgaWriter) put(n int, c color.RGBA) {
	x, y := n%w.width, n/w.width
	if !w.topToBottom {
		y = w.height - 1 - y
	}
	w.img.SetRGBA(x, y, c)
}

func (w *tgaWriter) decodeRLE(data []byte) error {
	total := w.width * w.height
	n, i := 0, 0

	for n < total && i < len(data) {
		packet := data[i]
		i++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run: one pixel repeated count times
			if i+w.bpp > len(data) {
				return fmt.Errorf("TGA RLE run truncated at pixel %d", n)
			}
			c := w.read(data[i:])
			i += w.bpp
			for k := 0; k < count && n < total; k++ {
				w.put(n, c)
				n++
			}
			continue
		}

		// Raw: count literal pixels
		for k := 0; k < count && n < total; k++ {
			if i+w.bpp > len(data) {
				return fmt.Errorf("TGA RLE raw packet truncated at pixel %d", n)
			}
			w.put(n, w.read(data[i:]))
			i += w.bpp
			n++
		}
	}

	return nil
}
