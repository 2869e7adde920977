package internal

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// mnemonic looks up the instruction name of an opcode in the CHIP-8 opcode
// table
func mnemonic(word uint16) string {
	for _, op := range chip8.Opcodes[word>>12] {
		if word&op.Info.Mask == op.Info.Value {
			return op.Instruction.Name
		}
	}
	return ""
}

// Disassemble returns the assembly representation of an instruction word,
// for example "ld V0, $05". Words that do not decode are rendered as data.
func Disassemble(word uint16) string {
	ins := Decode(word)
	name := mnemonic(word)
	if ins.Op == OpInvalid || name == "" {
		return fmt.Sprintf("db $%04X", word)
	}
	if params := operands(ins); params != "" {
		return name + " " + params
	}
	return name
}

func operands(ins Instruction) string {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCLS, OpRET:
		return ""
	case OpJP, OpCALL:
		return fmt.Sprintf("$%03X", ins.Addr)
	case OpJPV0:
		return fmt.Sprintf("V0, $%03X", ins.Addr)
	case OpSEByte, OpSNEByte, OpLDByte, OpADDByte, OpRND:
		return fmt.Sprintf("V%X, $%02X", x, ins.Byte)
	case OpSEReg, OpSNEReg, OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSUBN:
		return fmt.Sprintf("V%X, V%X", x, y)
	case OpSHR, OpSHL:
		return fmt.Sprintf("V%X", x)
	case OpLDI:
		return fmt.Sprintf("I, $%03X", ins.Addr)
	case OpDRW:
		return fmt.Sprintf("V%X, V%X, %d", x, y, ins.Nibble)
	case OpSKP, OpSKNP:
		return fmt.Sprintf("V%X", x)
	case OpLDVxDT:
		return fmt.Sprintf("V%X, DT", x)
	case OpLDVxK:
		return fmt.Sprintf("V%X, K", x)
	case OpLDDTVx:
		return fmt.Sprintf("DT, V%X", x)
	case OpLDSTVx:
		return fmt.Sprintf("ST, V%X", x)
	case OpADDI:
		return fmt.Sprintf("I, V%X", x)
	case OpLDF:
		return fmt.Sprintf("F, V%X", x)
	case OpLDB:
		return fmt.Sprintf("B, V%X", x)
	case OpLDIVx:
		return fmt.Sprintf("[I], V%X", x)
	case OpLDVxI:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// Line is one row of a linear disassembly listing
type Line struct {
	Addr uint16
	Word uint16
	Text string
}

// DisassembleROM decodes a ROM two bytes at a time, as if it were loaded
// at 0x200. A trailing odd byte is listed as data.
func DisassembleROM(rom []byte) []Line {
	lines := make([]Line, 0, (len(rom)+1)/2)
	for i := 0; i < len(rom); i += 2 {
		addr := uint16(pcStartAddr + i)
		if i+1 == len(rom) {
			lines = append(lines, Line{Addr: addr, Word: uint16(rom[i]), Text: fmt.Sprintf("db $%02X", rom[i])})
			break
		}
		word := uint16(rom[i])<<8 | uint16(rom[i+1])
		lines = append(lines, Line{Addr: addr, Word: word, Text: Disassemble(word)})
	}
	return lines
}

func (l Line) String() string {
	return fmt.Sprintf("%03X  %04X  %s", l.Addr, l.Word, l.Text)
}
