package snapshot

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/retroenv/retrogolib/assert"
	"golang.org/x/image/bmp"
)

var testPalette = NewPalette(0x9FA8DA, 0x1A237E)

// framebuffer returns a display with the top left and bottom right pixels lit
func framebuffer() *internal.Framebuffer {
	var fb internal.Framebuffer
	fb[0] = 1
	fb[len(fb)-1] = 1
	return &fb
}

func TestColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x1A, G: 0x23, B: 0x7E, A: 0xFF}, Color(0x1A237E))
}

func TestImage(t *testing.T) {
	img := Image(framebuffer(), testPalette, 3)
	assert.Equal(t, 64*3, img.Bounds().Dx())
	assert.Equal(t, 32*3, img.Bounds().Dy())

	assert.Equal(t, testPalette.Foreground, img.At(0, 0))
	assert.Equal(t, testPalette.Foreground, img.At(2, 2))
	assert.Equal(t, testPalette.Background, img.At(3, 0))
	assert.Equal(t, testPalette.Foreground, img.At(64*3-1, 32*3-1))
	assert.Equal(t, testPalette.Background, img.At(64*3-4, 32*3-1))
}

func TestRGBA(t *testing.T) {
	dst := make([]byte, internal.ScreenWidth*internal.ScreenHeight*4)
	RGBA(dst, framebuffer(), testPalette)
	assert.Equal(t, []byte{0x9F, 0xA8, 0xDA, 0xFF}, dst[0:4])
	assert.Equal(t, []byte{0x1A, 0x23, 0x7E, 0xFF}, dst[4:8])
	assert.Equal(t, []byte{0x9F, 0xA8, 0xDA, 0xFF}, dst[len(dst)-4:])
}

func TestWriteBMP(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteBMP(&buf, framebuffer(), testPalette, 2))

	img, err := bmp.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0x9F9F), r)
	assert.Equal(t, uint32(0xA8A8), g)
	assert.Equal(t, uint32(0xDADA), b)
}

func TestSaveBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.bmp")
	assert.NoError(t, SaveBMP(path, framebuffer(), testPalette, 1))
	assert.Error(t, SaveBMP(filepath.Join(t.TempDir(), "missing", "screen.bmp"), framebuffer(), testPalette, 1))
}
