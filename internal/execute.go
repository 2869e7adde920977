package internal

// execute performs the state transition of one decoded instruction. pc has
// already been advanced past the instruction.
func (vm *C8VM) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCLS: // CLS
		vm.clearScreen()
	case OpRET: // RET
		if vm.sp == 0 {
			return ErrStackUnderflow
		}
		vm.sp--
		vm.pc = vm.stack[vm.sp]
	case OpJP: // JP nnn
		vm.pc = ins.Addr
	case OpCALL: // CALL nnn
		if vm.sp == stackDepth {
			return ErrStackOverflow
		}
		vm.stack[vm.sp] = vm.pc
		vm.sp++
		vm.pc = ins.Addr
	case OpSEByte: // SE Vx, kk
		vm.skipIf(vm.regV[x] == ins.Byte)
	case OpSNEByte: // SNE Vx, kk
		vm.skipIf(vm.regV[x] != ins.Byte)
	case OpSEReg: // SE Vx, Vy
		vm.skipIf(vm.regV[x] == vm.regV[y])
	case OpLDByte: // LD Vx, kk
		vm.regV[x] = ins.Byte
	case OpADDByte: // ADD Vx, kk
		vm.regV[x] += ins.Byte
	case OpLDReg: // LD Vx, Vy
		vm.regV[x] = vm.regV[y]
	case OpOR: // OR Vx, Vy
		vm.regV[x] |= vm.regV[y]
	case OpAND: // AND Vx, Vy
		vm.regV[x] &= vm.regV[y]
	case OpXOR: // XOR Vx, Vy
		vm.regV[x] ^= vm.regV[y]
	case OpADDReg: // ADD Vx, Vy
		sum := uint16(vm.regV[x]) + uint16(vm.regV[y])
		vm.regV[x] = uint8(sum)
		vm.regV[0xF] = flag(sum > 0xFF)
	case OpSUB: // SUB Vx, Vy
		noBorrow := vm.regV[x] >= vm.regV[y]
		vm.regV[x] -= vm.regV[y]
		vm.regV[0xF] = flag(noBorrow)
	case OpSHR: // SHR Vx {, Vy}
		lsb := vm.regV[x] & 0x01
		vm.regV[x] >>= 1
		vm.regV[0xF] = lsb
	case OpSUBN: // SUBN Vx, Vy
		noBorrow := vm.regV[y] >= vm.regV[x]
		vm.regV[x] = vm.regV[y] - vm.regV[x]
		vm.regV[0xF] = flag(noBorrow)
	case OpSHL: // SHL Vx {, Vy}
		msb := vm.regV[x] >> 7
		vm.regV[x] <<= 1
		vm.regV[0xF] = msb
	case OpSNEReg: // SNE Vx, Vy
		vm.skipIf(vm.regV[x] != vm.regV[y])
	case OpLDI: // LD I, nnn
		vm.regI = ins.Addr
	case OpJPV0: // JP V0, nnn
		vm.pc = ins.Addr + uint16(vm.regV[0])
	case OpRND: // RND Vx, kk
		vm.regV[x] = vm.random() & ins.Byte
	case OpDRW: // DRW Vx, Vy, n
		return vm.drawSprite(vm.regV[x], vm.regV[y], ins.Nibble)
	case OpSKP: // SKP Vx
		vm.skipIf(vm.keys[vm.regV[x]&0xF])
	case OpSKNP: // SKNP Vx
		vm.skipIf(!vm.keys[vm.regV[x]&0xF])
	case OpLDVxDT: // LD Vx, DT
		vm.regV[x] = vm.delayTimer
	case OpLDVxK: // LD Vx, K
		vm.waitForKey(x)
	case OpLDDTVx: // LD DT, Vx
		vm.delayTimer = vm.regV[x]
	case OpLDSTVx: // LD ST, Vx
		vm.setSoundTimer(vm.regV[x])
	case OpADDI: // ADD I, Vx
		vm.regI += uint16(vm.regV[x])
	case OpLDF: // LD F, Vx
		vm.regI = fontAddr + uint16(vm.regV[x]&0xF)*fontGlyphSize
	case OpLDB: // LD B, Vx
		if err := vm.checkRange(vm.regI, 3); err != nil {
			return err
		}
		v := vm.regV[x]
		vm.memory[vm.regI] = v / 100
		vm.memory[vm.regI+1] = (v / 10) % 10
		vm.memory[vm.regI+2] = v % 10
	case OpLDIVx: // LD [I], Vx
		if err := vm.checkRange(vm.regI, int(x)+1); err != nil {
			return err
		}
		copy(vm.memory[vm.regI:], vm.regV[:x+1])
		vm.advanceIndex(x)
	case OpLDVxI: // LD Vx, [I]
		if err := vm.checkRange(vm.regI, int(x)+1); err != nil {
			return err
		}
		copy(vm.regV[:x+1], vm.memory[vm.regI:])
		vm.advanceIndex(x)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

func (vm *C8VM) skipIf(cond bool) {
	if cond {
		vm.pc += 2
	}
}

// advanceIndex moves I past the registers transferred by Fx55 and Fx65
func (vm *C8VM) advanceIndex(x uint8) {
	if !vm.quirks.LoadStoreKeepsIndex {
		vm.regI += uint16(x) + 1
	}
}

// checkRange reports whether n bytes starting at addr lie inside memory
func (vm *C8VM) checkRange(addr uint16, n int) error {
	if int(addr)+n > totalMemory {
		return ErrAddressOutOfRange
	}
	return nil
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
