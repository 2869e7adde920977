package internal

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawCollision(t *testing.T) {
	vm := newTestVM(t, 0xA300, 0xD011, 0xD011)
	vm.memory[0x300] = 0xFF

	run(t, vm, 2)
	fb := vm.Display()
	for x := 0; x < 8; x++ {
		assert.True(t, fb.At(x, 0), "pixel %d", x)
	}
	assert.Equal(t, 0, vm.Register(0xF))
	assert.True(t, vm.IsDrawFlagSet())

	vm.UnsetDrawFlag()
	run(t, vm, 1)
	fb = vm.Display()
	for x := 0; x < 8; x++ {
		assert.False(t, fb.At(x, 0), "pixel %d", x)
	}
	assert.Equal(t, 1, vm.Register(0xF))
	assert.True(t, vm.IsDrawFlagSet())
}

func TestDrawResetsCollisionFlag(t *testing.T) {
	vm := newTestVM(t, 0xA300, 0xD011, 0x6108, 0xD011)
	vm.memory[0x300] = 0x80
	vm.regV[0xF] = 1

	run(t, vm, 2)
	assert.Equal(t, 0, vm.Register(0xF))

	run(t, vm, 2)
	assert.Equal(t, 0, vm.Register(0xF))
}

func TestDrawWrapsHorizontally(t *testing.T) {
	vm := newTestVM(t, 0x603C, 0x6100, 0xA300, 0xD011)
	vm.memory[0x300] = 0xFF

	run(t, vm, 4)
	fb := vm.Display()
	for x := 60; x < 64; x++ {
		assert.True(t, fb.At(x, 0), "pixel %d", x)
	}
	for x := 0; x < 4; x++ {
		assert.True(t, fb.At(x, 0), "pixel %d", x)
	}
	for x := 4; x < 60; x++ {
		assert.False(t, fb.At(x, 0), "pixel %d", x)
	}
}

func TestDrawWrapsVertically(t *testing.T) {
	vm := newTestVM(t, 0x6000, 0x611F, 0xA300, 0xD013)
	vm.memory[0x300] = 0x80
	vm.memory[0x301] = 0x80
	vm.memory[0x302] = 0x80

	run(t, vm, 4)
	fb := vm.Display()
	assert.True(t, fb.At(0, 31))
	assert.True(t, fb.At(0, 0))
	assert.True(t, fb.At(0, 1))
	assert.False(t, fb.At(0, 2))
}

func TestDrawFont(t *testing.T) {
	vm := newTestVM(t, 0x6000, 0xF029, 0xD005)
	run(t, vm, 3)

	fb := vm.Display()
	rows := strings.Split(fb.String(), "\n")
	assert.Equal(t, "####.", rows[0][:5])
	assert.Equal(t, "#..#", rows[1][:4])
	assert.Equal(t, "####", rows[4][:4])
	assert.Equal(t, ".", rows[5][:1])
}

func TestDrawZeroRows(t *testing.T) {
	vm := newTestVM(t, 0xD010)
	vm.regV[0xF] = 1

	run(t, vm, 1)
	assert.Equal(t, 0, vm.Register(0xF))
	assert.True(t, vm.IsDrawFlagSet())
	assert.Equal(t, Framebuffer{}, vm.Display())
}

func TestClearScreen(t *testing.T) {
	vm := newTestVM(t, 0xA300, 0xD011, 0x00E0)
	vm.memory[0x300] = 0xAA

	run(t, vm, 2)
	vm.UnsetDrawFlag()
	run(t, vm, 1)
	assert.True(t, vm.IsDrawFlagSet())
	assert.Equal(t, Framebuffer{}, vm.Display())
}

func TestDisplayIsCopy(t *testing.T) {
	vm := NewC8VM()
	fb := vm.Display()
	fb[0] = 1
	snapshot := vm.Display()
	assert.False(t, snapshot.At(0, 0))
}
