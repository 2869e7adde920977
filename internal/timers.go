package internal

// TickTimers decrements the delay and sound timers toward zero. It is
// expected to be called at TimerFrequency, independently of Step.
func (vm *C8VM) TickTimers() {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
		if vm.soundTimer == 0 && vm.sound != nil {
			vm.sound.Beep(false)
		}
	}
}

func (vm *C8VM) setSoundTimer(v uint8) {
	silent := vm.soundTimer == 0
	vm.soundTimer = v
	if vm.sound == nil {
		return
	}
	switch {
	case silent && v > 0:
		vm.sound.Beep(true)
	case !silent && v == 0:
		vm.sound.Beep(false)
	}
}

// DelayTimer returns the value of DT
func (vm *C8VM) DelayTimer() uint8 {
	return vm.delayTimer
}

// SoundTimer returns the value of ST
func (vm *C8VM) SoundTimer() uint8 {
	return vm.soundTimer
}

// Sounding returns whether the tone should currently be playing
func (vm *C8VM) Sounding() bool {
	return vm.soundTimer > 0
}
