package internal

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 VM constants
const (
	totalMemory    = 0x1000
	pcStartAddr    = 0x200
	maxProgramSize = totalMemory - pcStartAddr
	stackDepth     = 16

	// TimerFrequency is the rate in Hz at which TickTimers is expected to be called
	TimerFrequency = 60
	ScreenWidth    = 64
	ScreenHeight   = 32
)

// RunState is the execution state of the VM
type RunState uint8

const (
	// Running fetches and executes an instruction on every Step
	Running RunState = iota
	// WaitingForKey suspends execution until a key is pressed
	WaitingForKey
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	default:
		return "unknown"
	}
}

// Sound receives the beep transitions of the sound timer
type Sound interface {
	Beep(on bool)
}

// Quirks toggles behaviour that differs between CHIP-8 interpreters
type Quirks struct {
	// LoadStoreKeepsIndex leaves I unchanged after Fx55 and Fx65
	LoadStoreKeepsIndex bool
}

// C8VM is an emulated CHIP-8 VM
type C8VM struct {
	regV       [16]uint8          // 16 general purpose 8-bit registers
	regI       uint16             // 16-bit register that is generally used to store memory addresses
	delayTimer uint8              // Delay timer
	soundTimer uint8              // Sound timer
	pc         uint16             // Program counter
	sp         uint8              // Stack pointer
	stack      [stackDepth]uint16 // A stack of 16 16-bit values
	memory     [totalMemory]uint8 // 4 KB global memory

	keys   [16]bool    // Hex keypad state
	pixels Framebuffer // 64 px x 32 px display

	drawFlag bool     // Display changed since the frontend last consumed it
	state    RunState // Running or waiting for a key
	waitReg  uint8    // Destination register of Fx0A
	fault    error    // Latched fatal fault

	quirks Quirks
	random func() uint8
	sound  Sound
	logger *log.Logger
}

// Option configures a C8VM
type Option func(*C8VM)

// WithLogger sets the logger used for instruction tracing and fault reports
func WithLogger(logger *log.Logger) Option {
	return func(vm *C8VM) {
		vm.logger = logger
	}
}

// WithRandom replaces the random byte source used by Cxkk
func WithRandom(random func() uint8) Option {
	return func(vm *C8VM) {
		vm.random = random
	}
}

// WithSound registers the receiver of beep transitions
func WithSound(sound Sound) Option {
	return func(vm *C8VM) {
		vm.sound = sound
	}
}

// WithQuirks sets the interpreter quirks
func WithQuirks(quirks Quirks) Option {
	return func(vm *C8VM) {
		vm.quirks = quirks
	}
}

// NewC8VM creates a new instance of an emulated CHIP-8 VM, initialised to
// start at the conventional program address 0x200
func NewC8VM(opts ...Option) *C8VM {
	vm := &C8VM{
		random: func() uint8 { return uint8(rand.UintN(256)) },
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.Initialize(pcStartAddr)
	return vm
}

// Initialize resets all machine state, loads the font table and sets the
// program counter to start
func (vm *C8VM) Initialize(start uint16) {
	if vm.soundTimer > 0 && vm.sound != nil {
		vm.sound.Beep(false)
	}
	vm.regV = [16]uint8{}
	vm.regI = 0
	vm.delayTimer = 0
	vm.soundTimer = 0
	vm.sp = 0
	vm.stack = [stackDepth]uint16{}
	vm.memory = [totalMemory]uint8{}
	vm.keys = [16]bool{}
	vm.pixels = Framebuffer{}
	vm.drawFlag = false
	vm.state = Running
	vm.waitReg = 0
	vm.fault = nil

	copy(vm.memory[fontAddr:], fontset[:])
	vm.pc = start
}

// LoadProgram copies a raw CHIP-8 ROM into memory at 0x200
func (vm *C8VM) LoadProgram(data []byte) error {
	if len(data) > maxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(data), maxProgramSize)
	}
	copy(vm.memory[pcStartAddr:], data)
	vm.logger.Debug("program loaded", log.Int("size", len(data)))
	return nil
}

// Step executes one fetch-decode-execute cycle and returns whether the
// display has changed since the draw flag was last unset
func (vm *C8VM) Step() (bool, error) {
	if vm.fault != nil {
		return vm.drawFlag, vm.fault
	}
	if vm.state == WaitingForKey {
		return vm.drawFlag, nil
	}

	pc := vm.pc
	word, err := vm.fetch()
	if err != nil {
		return vm.drawFlag, vm.setFault(err, word, pc)
	}
	ins := Decode(word)

	if vm.logger.Enabled(context.Background(), log.TraceLevel) {
		vm.logger.Trace("exec",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.String("instruction", Disassemble(word)),
		)
	}

	if err := vm.execute(ins); err != nil {
		return vm.drawFlag, vm.setFault(err, word, pc)
	}
	return vm.drawFlag, nil
}

func (vm *C8VM) setFault(err error, opcode, pc uint16) error {
	vm.fault = &Fault{Err: err, Opcode: opcode, PC: pc}
	// the caller reports the returned fault
	vm.logger.Debug("emulation fault",
		log.Err(err),
		log.Hex("pc", pc),
		log.Hex("opcode", opcode),
	)
	return vm.fault
}

// Fault returns the latched fault, if any
func (vm *C8VM) Fault() error {
	return vm.fault
}

// State returns whether the VM is running or waiting for a key
func (vm *C8VM) State() RunState {
	return vm.state
}

// PC returns the program counter
func (vm *C8VM) PC() uint16 {
	return vm.pc
}

// Index returns the value of I
func (vm *C8VM) Index() uint16 {
	return vm.regI
}

// Register returns the value of Vx
func (vm *C8VM) Register(x uint8) uint8 {
	return vm.regV[x&0xF]
}

// StackDepth returns the number of return addresses on the stack
func (vm *C8VM) StackDepth() int {
	return int(vm.sp)
}

// ReadMemory returns the byte at addr, wrapped to the 4 KB address space
func (vm *C8VM) ReadMemory(addr uint16) uint8 {
	return vm.memory[addr&(totalMemory-1)]
}
