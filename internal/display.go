package internal

import "strings"

// Framebuffer is the 64 x 32 monochrome display, one byte per pixel stored
// row-major. A pixel is lit when its cell is 1.
type Framebuffer [ScreenWidth * ScreenHeight]uint8

// At returns whether the pixel at x, y is lit. Coordinates wrap around the
// screen edges.
func (fb *Framebuffer) At(x, y int) bool {
	x = ((x % ScreenWidth) + ScreenWidth) % ScreenWidth
	y = ((y % ScreenHeight) + ScreenHeight) % ScreenHeight
	return fb[y*ScreenWidth+x] == 1
}

// String renders the framebuffer as text, one line per row
func (fb *Framebuffer) String() string {
	var b strings.Builder
	b.Grow((ScreenWidth + 1) * ScreenHeight)
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if fb[y*ScreenWidth+x] == 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (vm *C8VM) clearScreen() {
	vm.pixels = Framebuffer{}
	vm.drawFlag = true
}

// drawSprite XORs n rows of sprite data read from I onto the display at
// x, y. VF is set when a lit pixel is turned off.
func (vm *C8VM) drawSprite(x uint8, y uint8, n uint8) error {
	if err := vm.checkRange(vm.regI, int(n)); err != nil {
		return err
	}
	vm.regV[0xF] = 0
	for row := 0; row < int(n); row++ {
		spriteByte := vm.memory[int(vm.regI)+row]
		py := (int(y) + row) % ScreenHeight
		for col := 0; col < 8; col++ {
			bit := (spriteByte >> (7 - col)) & 0x1
			if bit == 0 {
				continue
			}
			px := &vm.pixels[py*ScreenWidth+(int(x)+col)%ScreenWidth]
			if *px == 1 {
				vm.regV[0xF] = 1
			}
			*px ^= 1
		}
	}
	vm.drawFlag = true
	return nil
}

// Display returns a copy of the framebuffer
func (vm *C8VM) Display() Framebuffer {
	return vm.pixels
}

// IsDrawFlagSet returns whether the display changed since the draw flag was
// last unset
func (vm *C8VM) IsDrawFlagSet() bool {
	return vm.drawFlag
}

// UnsetDrawFlag unsets the draw flag once a frame has been presented
func (vm *C8VM) UnsetDrawFlag() {
	vm.drawFlag = false
}
