package internal

import (
	"errors"
	"fmt"
)

// Errors reported by the VM. Execution faults are wrapped in a *Fault.
var (
	ErrProgramTooLarge   = errors.New("program size exceeds the maximum size")
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrPCOutOfRange      = errors.New("program counter out of range")
	ErrAddressOutOfRange = errors.New("memory access out of range")
)

// Fault is a fatal execution error, carrying the instruction that caused it
type Fault struct {
	Err    error
	Opcode uint16
	PC     uint16
}

func (f *Fault) Error() string {
	if errors.Is(f.Err, ErrPCOutOfRange) {
		// no instruction was fetched
		return fmt.Sprintf("%v at %03X", f.Err, f.PC)
	}
	return fmt.Sprintf("%v: %04X (%s) at %03X", f.Err, f.Opcode, Disassemble(f.Opcode), f.PC)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
