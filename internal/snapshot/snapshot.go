// Package snapshot converts the CHIP-8 framebuffer into images, for the
// ebiten frontend texture and for BMP screenshots.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/mnafees/chopper/v2/internal"
	"golang.org/x/image/bmp"
)

// Color converts a 0xRRGGBB value into an opaque colour
func Color(rgb int) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xFF}
}

// Palette holds the colours of unlit and lit pixels
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}

// NewPalette builds a palette from 0xRRGGBB values
func NewPalette(foreground, background int) Palette {
	return Palette{Background: Color(background), Foreground: Color(foreground)}
}

// Image renders fb into a paletted image with every CHIP-8 pixel expanded
// to a scale x scale block
func Image(fb *internal.Framebuffer, pal Palette, scale int) *image.Paletted {
	if scale < 1 {
		scale = 1
	}
	rect := image.Rect(0, 0, internal.ScreenWidth*scale, internal.ScreenHeight*scale)
	img := image.NewPaletted(rect, color.Palette{pal.Background, pal.Foreground})

	for y := 0; y < internal.ScreenHeight; y++ {
		for x := 0; x < internal.ScreenWidth; x++ {
			if !fb.At(x, y) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				row := img.PixOffset(x*scale, y*scale+dy)
				for dx := 0; dx < scale; dx++ {
					img.Pix[row+dx] = 1
				}
			}
		}
	}
	return img
}

// RGBA writes fb as unscaled RGBA pixels into dst, which must hold
// ScreenWidth*ScreenHeight*4 bytes
func RGBA(dst []byte, fb *internal.Framebuffer, pal Palette) {
	for i, p := range fb {
		c := pal.Background
		if p == 1 {
			c = pal.Foreground
		}
		o := i * 4
		dst[o] = c.R
		dst[o+1] = c.G
		dst[o+2] = c.B
		dst[o+3] = c.A
	}
}

// WriteBMP encodes fb as a BMP image to w
func WriteBMP(w io.Writer, fb *internal.Framebuffer, pal Palette, scale int) error {
	if err := bmp.Encode(w, Image(fb, pal, scale)); err != nil {
		return fmt.Errorf("encoding bmp: %w", err)
	}
	return nil
}

// SaveBMP writes a BMP screenshot of fb to filename
func SaveBMP(filename string, fb *internal.Framebuffer, pal Palette, scale int) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating screenshot: %w", err)
	}
	if err := WriteBMP(f, fb, pal, scale); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
