package internal

// Op identifies one entry of the CHIP-8 instruction table
type Op uint8

// Instruction table. OpInvalid is the result of decoding a word that is not
// a CHIP-8 instruction.
const (
	OpInvalid  Op = iota
	OpCLS         // 00E0
	OpRET         // 00EE
	OpJP          // 1nnn
	OpCALL        // 2nnn
	OpSEByte      // 3xkk
	OpSNEByte     // 4xkk
	OpSEReg       // 5xy0
	OpLDByte      // 6xkk
	OpADDByte     // 7xkk
	OpLDReg       // 8xy0
	OpOR          // 8xy1
	OpAND         // 8xy2
	OpXOR         // 8xy3
	OpADDReg      // 8xy4
	OpSUB         // 8xy5
	OpSHR         // 8xy6
	OpSUBN        // 8xy7
	OpSHL         // 8xyE
	OpSNEReg      // 9xy0
	OpLDI         // Annn
	OpJPV0        // Bnnn
	OpRND         // Cxkk
	OpDRW         // Dxyn
	OpSKP         // Ex9E
	OpSKNP        // ExA1
	OpLDVxDT      // Fx07
	OpLDVxK       // Fx0A
	OpLDDTVx      // Fx15
	OpLDSTVx      // Fx18
	OpADDI        // Fx1E
	OpLDF         // Fx29
	OpLDB         // Fx33
	OpLDIVx       // Fx55
	OpLDVxI       // Fx65
)

// Instruction is a decoded instruction word
type Instruction struct {
	Word   uint16
	Op     Op
	Addr   uint16 // the lowest 12 bits of the instruction
	Nibble uint8  // the lowest 4 bits of the instruction
	X      uint8  // the lower 4 bits of the high byte of the instruction
	Y      uint8  // the upper 4 bits of the low byte of the instruction
	Byte   uint8  // the lowest 8 bits of the instruction
}

// fetch reads the big-endian instruction word at pc and advances pc by 2
func (vm *C8VM) fetch() (uint16, error) {
	if vm.pc > totalMemory-2 {
		return 0, ErrPCOutOfRange
	}
	word := uint16(vm.memory[vm.pc])<<8 | uint16(vm.memory[vm.pc+1])
	vm.pc += 2
	return word, nil
}

// Decode splits an instruction word into its operand fields and identifies
// the instruction
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word:   word,
		Addr:   word & 0x0FFF,
		Nibble: uint8(word & 0x000F),
		X:      uint8((word >> 8) & 0x000F),
		Y:      uint8((word >> 4) & 0x000F),
		Byte:   uint8(word & 0x00FF),
	}
	ins.Op = decodeOp(word, ins.Nibble, ins.Byte)
	return ins
}

func decodeOp(word uint16, n, kk uint8) Op {
	switch word >> 12 { // Compare against the first 4 bits of the instruction only
	case 0x0:
		switch word {
		case 0x00E0:
			return OpCLS
		case 0x00EE:
			return OpRET
		}
	case 0x1:
		return OpJP
	case 0x2:
		return OpCALL
	case 0x3:
		return OpSEByte
	case 0x4:
		return OpSNEByte
	case 0x5:
		if n == 0x0 {
			return OpSEReg
		}
	case 0x6:
		return OpLDByte
	case 0x7:
		return OpADDByte
	case 0x8:
		switch n {
		case 0x0:
			return OpLDReg
		case 0x1:
			return OpOR
		case 0x2:
			return OpAND
		case 0x3:
			return OpXOR
		case 0x4:
			return OpADDReg
		case 0x5:
			return OpSUB
		case 0x6:
			return OpSHR
		case 0x7:
			return OpSUBN
		case 0xE:
			return OpSHL
		}
	case 0x9:
		if n == 0x0 {
			return OpSNEReg
		}
	case 0xA:
		return OpLDI
	case 0xB:
		return OpJPV0
	case 0xC:
		return OpRND
	case 0xD:
		return OpDRW
	case 0xE:
		switch kk {
		case 0x9E:
			return OpSKP
		case 0xA1:
			return OpSKNP
		}
	case 0xF:
		switch kk {
		case 0x07:
			return OpLDVxDT
		case 0x0A:
			return OpLDVxK
		case 0x15:
			return OpLDDTVx
		case 0x18:
			return OpLDSTVx
		case 0x1E:
			return OpADDI
		case 0x29:
			return OpLDF
		case 0x33:
			return OpLDB
		case 0x55:
			return OpLDIVx
		case 0x65:
			return OpLDVxI
		}
	}
	return OpInvalid
}
