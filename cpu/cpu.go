// Package cpu defines the 6502 architecture and provides
// the methods needed to run the CPU and interface with it
// for emulation. Execution is instruction at a time against
// a flat 64k memory map owned by the Processor.
package cpu

import (
	"fmt"

	"github.com/jmchacon/6502core/memory"
)

// CPUType is an enumeration of the valid CPU types.
type CPUType int

const (
	CPU_UNIMPLEMENTED CPUType = iota // Start of valid cpu enumerations.
	CPU_NMOS                         // Basic NMOS 6502 with BIT as a test only instruction.
	CPU_NMOS_BITSTORE                // Identical to NMOS except BIT also stores A&M into A.
	CPU_MAX                          // End of CPU enumerations.
)

// State is an enumeration of the run states of the processor.
type State int

const (
	STATE_RUNNING State = iota // Fetching and executing instructions.
	STATE_HALTED               // BRK executed. Terminal.
	STATE_FAULTED              // An error stopped execution. Terminal.
)

func (s State) String() string {
	switch s {
	case STATE_RUNNING:
		return "running"
	case STATE_HALTED:
		return "halted"
	case STATE_FAULTED:
		return "faulted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	RESET_VECTOR = memory.RESET_VECTOR
	LOAD_BASE    = memory.LOAD_BASE
)

type Processor struct {
	A       uint8   // Accumulator register
	X       uint8   // X register
	Y       uint8   // Y register
	S       uint8   // Stack pointer. Tracked but nothing wired uses it.
	P       Status  // Processor status register
	PC      uint16  // Program counter
	Cycles  uint64  // Sum of base cycle counts of executed instructions.
	CPUType CPUType // Must be between UNIMPLEMENTED and MAX from above.
	ram     memory.Flat
	state   State
	fault   error // Set once state is STATE_FAULTED.
}

// A few custom error types to distinguish why the CPU stopped

// UnknownOpcode represents a byte which doesn't decode to any instruction.
type UnknownOpcode struct {
	Opcode uint8
	Addr   uint16 // Where the opcode was fetched from.
}

// Error implements the interface for error types.
func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("0x%.2X at 0x%.4X is not a valid opcode", e.Opcode, e.Addr)
}

// UnimplementedOpcode represents a valid opcode which the emulator doesn't execute.
type UnimplementedOpcode struct {
	Opcode uint8
	Addr   uint16 // Where the opcode was fetched from.
	Inst   Instruction
}

// Error implements the interface for error types.
func (e UnimplementedOpcode) Error() string {
	return fmt.Sprintf("0x%.2X (%s) at 0x%.4X is an unimplemented opcode", e.Opcode, e.Inst, e.Addr)
}

// InvalidAddressingMode represents an attempt to compute an operand address
// for a mode which doesn't have one.
type InvalidAddressingMode struct {
	Opcode uint8
	Mode   Mode
}

// Error implements the interface for error types.
func (e InvalidAddressingMode) Error() string {
	return fmt.Sprintf("opcode 0x%.2X: mode %s has no operand address", e.Opcode, e.Mode)
}

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Init will create a new CPU of the type requested and return it in powered on state.
func Init(cpu CPUType) (*Processor, error) {
	if cpu <= CPU_UNIMPLEMENTED || cpu >= CPU_MAX {
		return nil, InvalidCPUState{fmt.Sprintf("CPU type %d is invalid", cpu)}
	}
	p := &Processor{
		CPUType: cpu,
	}
	p.PowerOn()
	return p, nil
}

// New returns a powered on CPU_NMOS processor.
func New() *Processor {
	p, _ := Init(CPU_NMOS)
	return p
}

// PowerOn zeroes all of memory and then does a Reset.
func (p *Processor) PowerOn() {
	p.ram.PowerOn()
	p.Reset()
}

// Reset returns every register and flag to power up state (zero, except
// the always set S1 bit) and loads the PC from the reset vector. Memory isn't touched.
func (p *Processor) Reset() {
	p.A = 0
	p.X = 0
	p.Y = 0
	p.S = 0
	p.P = Status(P_S1)
	p.Cycles = 0
	p.PC = p.ram.ReadAddr(RESET_VECTOR)
	p.state = STATE_RUNNING
	p.fault = nil
}

// Load copies prog to LOAD_BASE and points the reset vector at it.
// Registers are untouched so a Reset is needed before running it.
func (p *Processor) Load(prog []byte) error {
	return p.ram.Load(prog)
}

// LoadAndRun loads prog, resets and runs until a BRK (nil return) or a fault.
func (p *Processor) LoadAndRun(prog []byte) error {
	if err := p.Load(prog); err != nil {
		return err
	}
	p.Reset()
	return p.Run()
}

// Read returns the byte at addr.
func (p *Processor) Read(addr uint16) uint8 {
	return p.ram.Read(addr)
}

// Write stores val at addr.
func (p *Processor) Write(addr uint16, val uint8) {
	p.ram.Write(addr, val)
}

// ReadAddr returns the little endian 16 bit value at addr.
func (p *Processor) ReadAddr(addr uint16) uint16 {
	return p.ram.ReadAddr(addr)
}

// WriteAddr stores val little endian at addr.
func (p *Processor) WriteAddr(addr uint16, val uint16) {
	p.ram.WriteAddr(addr, val)
}

// State returns the current run state.
func (p *Processor) State() State {
	return p.state
}

// Fault returns the error which moved the processor to STATE_FAULTED or nil.
func (p *Processor) Fault() error {
	return p.fault
}

// Run calls Step until the CPU halts or faults. A BRK halt returns nil.
func (p *Processor) Run() error {
	for {
		halted, err := p.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// Step fetches, decodes and executes exactly one instruction. True is returned
// once the CPU has halted (via BRK). An error is returned if the instruction couldn't
// be executed, at which point the CPU is faulted.
// Once halted or faulted the PC no longer advances and every Step returns the same result
// until Reset is called.
func (p *Processor) Step() (bool, error) {
	switch p.state {
	case STATE_RUNNING:
	case STATE_HALTED:
		return true, nil
	case STATE_FAULTED:
		return true, p.fault
	default:
		return true, p.halt(InvalidCPUState{fmt.Sprintf("p.state is invalid: %d", p.state)})
	}

	addr := p.PC
	b := p.ram.Read(addr)
	p.PC++
	op := opcodes[b]
	if op == nil {
		return true, p.halt(UnknownOpcode{Opcode: b, Addr: addr})
	}
	p.Cycles += uint64(op.Cycles)

	var err error
	switch op.Inst {
	case ADC:
		err = p.iADC(op)
	case AND:
		err = p.iAND(op)
	case ASL:
		err = p.iASL(op)
	case BCC:
		p.branch(!p.P.Carry())
	case BCS:
		p.branch(p.P.Carry())
	case BEQ:
		p.branch(p.P.Zero())
	case BMI:
		p.branch(p.P.Negative())
	case BNE:
		p.branch(!p.P.Zero())
	case BPL:
		p.branch(!p.P.Negative())
	case BVC:
		p.branch(!p.P.Overflow())
	case BVS:
		p.branch(p.P.Overflow())
	case BIT:
		err = p.iBIT(op)
	case BRK:
		p.state = STATE_HALTED
		return true, nil
	case INX:
		p.loadRegister(&p.X, p.X+1)
	case LDA:
		err = p.iLDA(op)
	case SBC:
		err = p.iSBC(op)
	case STA:
		err = p.iSTA(op)
	case TAX:
		p.loadRegister(&p.X, p.A)
	default:
		err = UnimplementedOpcode{Opcode: b, Addr: addr, Inst: op.Inst}
	}
	if err != nil {
		return true, p.halt(err)
	}
	return false, nil
}

// halt records err as the fault and returns it.
func (p *Processor) halt(err error) error {
	p.state = STATE_FAULTED
	p.fault = err
	return err
}

// operandAddr computes the effective address for the opcode's addressing mode.
// PC must point at the first operand byte. It does not advance the PC.
func (p *Processor) operandAddr(op *Opcode) (uint16, error) {
	switch op.Mode {
	case MODE_IMMEDIATE:
		return p.PC, nil
	case MODE_ZP:
		return uint16(p.ram.Read(p.PC)), nil
	case MODE_ZPX:
		// Does this as a uint8 so it wraps inside zero page.
		return uint16(p.ram.Read(p.PC) + p.X), nil
	case MODE_ZPY:
		return uint16(p.ram.Read(p.PC) + p.Y), nil
	case MODE_ABSOLUTE:
		return p.ram.ReadAddr(p.PC), nil
	case MODE_ABSOLUTEX:
		return p.ram.ReadAddr(p.PC) + uint16(p.X), nil
	case MODE_ABSOLUTEY:
		return p.ram.ReadAddr(p.PC) + uint16(p.Y), nil
	case MODE_INDIRECTX:
		return p.ram.ReadZPAddr(p.ram.Read(p.PC) + p.X), nil
	case MODE_INDIRECTY:
		return p.ram.ReadZPAddr(p.ram.Read(p.PC)) + uint16(p.Y), nil
	}
	return 0, InvalidAddressingMode{Opcode: op.Hex, Mode: op.Mode}
}

// operand resolves the effective address and returns the value stored there along with the address.
func (p *Processor) operand(op *Opcode) (uint8, uint16, error) {
	addr, err := p.operandAddr(op)
	if err != nil {
		return 0, 0, err
	}
	return p.ram.Read(addr), addr, nil
}

// advance moves the PC past the operand bytes. The opcode byte was consumed at fetch.
func (p *Processor) advance(op *Opcode) {
	p.PC += uint16(op.Len - 1)
}
