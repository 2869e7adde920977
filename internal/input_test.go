package internal

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestWaitForKey(t *testing.T) {
	vm := newTestVM(t, 0xF30A, 0x6101)

	run(t, vm, 1)
	assert.Equal(t, WaitingForKey, vm.State())
	pc := vm.PC()

	run(t, vm, 5)
	assert.Equal(t, pc, vm.PC())
	assert.Equal(t, 0, vm.Register(1))

	vm.SetKey(0xB, true)
	assert.Equal(t, Running, vm.State())
	assert.Equal(t, 0xB, vm.Register(3))
	assert.Equal(t, pc, vm.PC())

	run(t, vm, 1)
	assert.Equal(t, pc+2, vm.PC())
	assert.Equal(t, 1, vm.Register(1))
}

func TestWaitForKeyNeedsNewPress(t *testing.T) {
	vm := newTestVM(t, 0xF00A)
	vm.SetKey(0x4, true)

	run(t, vm, 1)
	assert.Equal(t, WaitingForKey, vm.State())

	vm.SetKey(0x4, true)
	assert.Equal(t, WaitingForKey, vm.State())

	vm.SetKey(0x4, false)
	assert.Equal(t, WaitingForKey, vm.State())

	vm.SetKey(0x4, true)
	assert.Equal(t, Running, vm.State())
	assert.Equal(t, 0x4, vm.Register(0))
}

func TestWaitForKeyKeepsTimersRunning(t *testing.T) {
	vm := newTestVM(t, 0x6003, 0xF015, 0xF00A)
	run(t, vm, 3)

	vm.TickTimers()
	assert.Equal(t, 2, vm.DelayTimer())
	assert.Equal(t, WaitingForKey, vm.State())
}

func TestSetKey(t *testing.T) {
	vm := NewC8VM()
	vm.SetKey(0xF, true)
	assert.True(t, vm.IsKeyPressed(0xF))

	vm.SetKey(0xF, false)
	assert.False(t, vm.IsKeyPressed(0xF))

	vm.SetKey(0x10, true)
	for k := uint8(0); k <= 0xF; k++ {
		assert.False(t, vm.IsKeyPressed(k))
	}
}
