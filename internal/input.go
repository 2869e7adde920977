package internal

import "github.com/retroenv/retrogolib/log"

// SetKey updates the state of one hex key. A key going down while the VM
// waits in Fx0A resumes execution with the key stored in the target register.
func (vm *C8VM) SetKey(code uint8, pressed bool) {
	if code > 0xF {
		return
	}
	wasPressed := vm.keys[code]
	vm.keys[code] = pressed

	if vm.state == WaitingForKey && pressed && !wasPressed {
		vm.regV[vm.waitReg] = code
		vm.state = Running
		vm.logger.Debug("key wait resolved", log.Uint8("key", code), log.Uint8("register", vm.waitReg))
	}
}

// IsKeyPressed returns the state of one hex key
func (vm *C8VM) IsKeyPressed(code uint8) bool {
	return vm.keys[code&0xF]
}

func (vm *C8VM) waitForKey(x uint8) {
	vm.state = WaitingForKey
	vm.waitReg = x
}
