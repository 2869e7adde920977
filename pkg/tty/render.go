package tty

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/mnafees/chopper/v2/internal/snapshot"
)

// Lines is the number of terminal lines used by the display
const Lines = internal.ScreenHeight / 2

const (
	cursorHome = "\x1b[H"
	resetColor = "\x1b[0m"
	upperHalf  = '▀'
)

// Render writes fb to buf using upper half block characters, two display
// rows per terminal line. The foreground colour paints the top row and the
// background colour the bottom row. Colour escapes are only emitted on
// change.
func Render(buf *bytes.Buffer, fb *internal.Framebuffer, pal snapshot.Palette) {
	buf.WriteString(cursorHome)
	for line := 0; line < Lines; line++ {
		var fg, bg color.RGBA
		first := true
		for x := 0; x < internal.ScreenWidth; x++ {
			top := pixelColor(fb.At(x, line*2), pal)
			bottom := pixelColor(fb.At(x, line*2+1), pal)
			if first || top != fg {
				fmt.Fprintf(buf, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
				fg = top
			}
			if first || bottom != bg {
				fmt.Fprintf(buf, "\x1b[48;2;%d;%d;%dm", bottom.R, bottom.G, bottom.B)
				bg = bottom
			}
			first = false
			buf.WriteRune(upperHalf)
		}
		buf.WriteString(resetColor)
		buf.WriteString("\r\n")
	}
}

func pixelColor(lit bool, pal snapshot.Palette) color.RGBA {
	if lit {
		return pal.Foreground
	}
	return pal.Background
}
