package cpu

import (
	"fmt"
	"sort"
)

// Instruction is an enumeration of the documented 6502 mnemonics.
type Instruction int

const (
	INST_INVALID Instruction = iota // Zero value, never present in the table.
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
	INST_MAX // End of instruction enumerations.
)

var instNames = [INST_MAX]string{
	"???",
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL", "BRK", "BVC", "BVS", "CLC",
	"CLD", "CLI", "CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP",
	"JSR", "LDA", "LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL", "ROR", "RTI",
	"RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (i Instruction) String() string {
	if i < INST_INVALID || i >= INST_MAX {
		return fmt.Sprintf("Instruction(%d)", int(i))
	}
	return instNames[i]
}

// Mode is an enumeration of the addressing modes.
type Mode int

const (
	MODE_IMPLIED   Mode = iota // Includes accumulator mode (ASL A etc).
	MODE_IMMEDIATE             // #i
	MODE_ZP                    // d
	MODE_ZPX                   // d,x
	MODE_ZPY                   // d,y
	MODE_ABSOLUTE              // a
	MODE_ABSOLUTEX             // a,x
	MODE_ABSOLUTEY             // a,y
	MODE_INDIRECT              // (a) - JMP only
	MODE_INDIRECTX             // (d,x)
	MODE_INDIRECTY             // (d),y
	MODE_RELATIVE              // *+r - branches
	MODE_MAX                   // End of mode enumerations.
)

var modeNames = [MODE_MAX]string{
	"Implied",
	"Immediate",
	"ZeroPage",
	"ZeroPageX",
	"ZeroPageY",
	"Absolute",
	"AbsoluteX",
	"AbsoluteY",
	"Indirect",
	"IndirectX",
	"IndirectY",
	"Relative",
}

func (m Mode) String() string {
	if m < MODE_IMPLIED || m >= MODE_MAX {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Length returns the encoded size in bytes (opcode included) of an instruction using this mode.
func (m Mode) Length() uint8 {
	switch m {
	case MODE_IMPLIED:
		return 1
	case MODE_ABSOLUTE, MODE_ABSOLUTEX, MODE_ABSOLUTEY, MODE_INDIRECT:
		return 3
	}
	return 2
}

// Opcode describes one entry in the decode table.
type Opcode struct {
	Hex    uint8       // The opcode byte.
	Inst   Instruction // Mnemonic.
	Len    uint8       // Encoded length including the opcode byte.
	Cycles uint8       // Base cycle count. Page crossing and taken branch penalties aren't modeled.
	Mode   Mode
}

// Opcode matrix taken from:
// http://obelisk.me.uk/6502/reference.html
var opcodeList = []Opcode{
	{0x69, ADC, 2, 2, MODE_IMMEDIATE},
	{0x65, ADC, 2, 3, MODE_ZP},
	{0x75, ADC, 2, 4, MODE_ZPX},
	{0x6D, ADC, 3, 4, MODE_ABSOLUTE},
	{0x7D, ADC, 3, 4, MODE_ABSOLUTEX},
	{0x79, ADC, 3, 4, MODE_ABSOLUTEY},
	{0x61, ADC, 2, 6, MODE_INDIRECTX},
	{0x71, ADC, 2, 5, MODE_INDIRECTY},

	{0x29, AND, 2, 2, MODE_IMMEDIATE},
	{0x25, AND, 2, 3, MODE_ZP},
	{0x35, AND, 2, 4, MODE_ZPX},
	{0x2D, AND, 3, 4, MODE_ABSOLUTE},
	{0x3D, AND, 3, 4, MODE_ABSOLUTEX},
	{0x39, AND, 3, 4, MODE_ABSOLUTEY},
	{0x21, AND, 2, 6, MODE_INDIRECTX},
	{0x31, AND, 2, 5, MODE_INDIRECTY},

	{0x0A, ASL, 1, 2, MODE_IMPLIED},
	{0x06, ASL, 2, 5, MODE_ZP},
	{0x16, ASL, 2, 6, MODE_ZPX},
	{0x0E, ASL, 3, 6, MODE_ABSOLUTE},
	{0x1E, ASL, 3, 7, MODE_ABSOLUTEX},

	{0x90, BCC, 2, 2, MODE_RELATIVE},
	{0xB0, BCS, 2, 2, MODE_RELATIVE},
	{0xF0, BEQ, 2, 2, MODE_RELATIVE},
	{0x30, BMI, 2, 2, MODE_RELATIVE},
	{0xD0, BNE, 2, 2, MODE_RELATIVE},
	{0x10, BPL, 2, 2, MODE_RELATIVE},
	{0x50, BVC, 2, 2, MODE_RELATIVE},
	{0x70, BVS, 2, 2, MODE_RELATIVE},

	{0x24, BIT, 2, 3, MODE_ZP},
	{0x2C, BIT, 3, 4, MODE_ABSOLUTE},

	{0x00, BRK, 1, 7, MODE_IMPLIED},

	{0x18, CLC, 1, 2, MODE_IMPLIED},
	{0xD8, CLD, 1, 2, MODE_IMPLIED},
	{0x58, CLI, 1, 2, MODE_IMPLIED},
	{0xB8, CLV, 1, 2, MODE_IMPLIED},

	{0xC9, CMP, 2, 2, MODE_IMMEDIATE},
	{0xC5, CMP, 2, 3, MODE_ZP},
	{0xD5, CMP, 2, 4, MODE_ZPX},
	{0xCD, CMP, 3, 4, MODE_ABSOLUTE},
	{0xDD, CMP, 3, 4, MODE_ABSOLUTEX},
	{0xD9, CMP, 3, 4, MODE_ABSOLUTEY},
	{0xC1, CMP, 2, 6, MODE_INDIRECTX},
	{0xD1, CMP, 2, 5, MODE_INDIRECTY},

	{0xE0, CPX, 2, 2, MODE_IMMEDIATE},
	{0xE4, CPX, 2, 3, MODE_ZP},
	{0xEC, CPX, 3, 4, MODE_ABSOLUTE},

	{0xC0, CPY, 2, 2, MODE_IMMEDIATE},
	{0xC4, CPY, 2, 3, MODE_ZP},
	{0xCC, CPY, 3, 4, MODE_ABSOLUTE},

	{0xC6, DEC, 2, 5, MODE_ZP},
	{0xD6, DEC, 2, 6, MODE_ZPX},
	{0xCE, DEC, 3, 6, MODE_ABSOLUTE},
	{0xDE, DEC, 3, 7, MODE_ABSOLUTEX},

	{0xCA, DEX, 1, 2, MODE_IMPLIED},
	{0x88, DEY, 1, 2, MODE_IMPLIED},

	{0x49, EOR, 2, 2, MODE_IMMEDIATE},
	{0x45, EOR, 2, 3, MODE_ZP},
	{0x55, EOR, 2, 4, MODE_ZPX},
	{0x4D, EOR, 3, 4, MODE_ABSOLUTE},
	{0x5D, EOR, 3, 4, MODE_ABSOLUTEX},
	{0x59, EOR, 3, 4, MODE_ABSOLUTEY},
	{0x41, EOR, 2, 6, MODE_INDIRECTX},
	{0x51, EOR, 2, 5, MODE_INDIRECTY},

	{0xE6, INC, 2, 5, MODE_ZP},
	{0xF6, INC, 2, 6, MODE_ZPX},
	{0xEE, INC, 3, 6, MODE_ABSOLUTE},
	{0xFE, INC, 3, 7, MODE_ABSOLUTEX},

	{0xE8, INX, 1, 2, MODE_IMPLIED},
	{0xC8, INY, 1, 2, MODE_IMPLIED},

	{0x4C, JMP, 3, 3, MODE_ABSOLUTE},
	{0x6C, JMP, 3, 5, MODE_INDIRECT},
	{0x20, JSR, 3, 6, MODE_ABSOLUTE},

	{0xA9, LDA, 2, 2, MODE_IMMEDIATE},
	{0xA5, LDA, 2, 3, MODE_ZP},
	{0xB5, LDA, 2, 4, MODE_ZPX},
	{0xAD, LDA, 3, 4, MODE_ABSOLUTE},
	{0xBD, LDA, 3, 4, MODE_ABSOLUTEX},
	{0xB9, LDA, 3, 4, MODE_ABSOLUTEY},
	{0xA1, LDA, 2, 6, MODE_INDIRECTX},
	{0xB1, LDA, 2, 5, MODE_INDIRECTY},

	{0xA2, LDX, 2, 2, MODE_IMMEDIATE},
	{0xA6, LDX, 2, 3, MODE_ZP},
	{0xB6, LDX, 2, 4, MODE_ZPY},
	{0xAE, LDX, 3, 4, MODE_ABSOLUTE},
	{0xBE, LDX, 3, 4, MODE_ABSOLUTEY},

	{0xA0, LDY, 2, 2, MODE_IMMEDIATE},
	{0xA4, LDY, 2, 3, MODE_ZP},
	{0xB4, LDY, 2, 4, MODE_ZPX},
	{0xAC, LDY, 3, 4, MODE_ABSOLUTE},
	{0xBC, LDY, 3, 4, MODE_ABSOLUTEX},

	{0x4A, LSR, 1, 2, MODE_IMPLIED},
	{0x46, LSR, 2, 5, MODE_ZP},
	{0x56, LSR, 2, 6, MODE_ZPX},
	{0x4E, LSR, 3, 6, MODE_ABSOLUTE},
	{0x5E, LSR, 3, 7, MODE_ABSOLUTEX},

	{0xEA, NOP, 1, 2, MODE_IMPLIED},

	{0x09, ORA, 2, 2, MODE_IMMEDIATE},
	{0x05, ORA, 2, 3, MODE_ZP},
	{0x15, ORA, 2, 4, MODE_ZPX},
	{0x0D, ORA, 3, 4, MODE_ABSOLUTE},
	{0x1D, ORA, 3, 4, MODE_ABSOLUTEX},
	{0x19, ORA, 3, 4, MODE_ABSOLUTEY},
	{0x01, ORA, 2, 6, MODE_INDIRECTX},
	{0x11, ORA, 2, 5, MODE_INDIRECTY},

	{0x48, PHA, 1, 3, MODE_IMPLIED},
	{0x08, PHP, 1, 3, MODE_IMPLIED},
	{0x68, PLA, 1, 4, MODE_IMPLIED},
	{0x28, PLP, 1, 4, MODE_IMPLIED},

	{0x2A, ROL, 1, 2, MODE_IMPLIED},
	{0x26, ROL, 2, 5, MODE_ZP},
	{0x36, ROL, 2, 6, MODE_ZPX},
	{0x2E, ROL, 3, 6, MODE_ABSOLUTE},
	{0x3E, ROL, 3, 7, MODE_ABSOLUTEX},

	{0x6A, ROR, 1, 2, MODE_IMPLIED},
	{0x66, ROR, 2, 5, MODE_ZP},
	{0x76, ROR, 2, 6, MODE_ZPX},
	{0x6E, ROR, 3, 6, MODE_ABSOLUTE},
	{0x7E, ROR, 3, 7, MODE_ABSOLUTEX},

	{0x40, RTI, 1, 6, MODE_IMPLIED},
	{0x60, RTS, 1, 6, MODE_IMPLIED},

	{0xE9, SBC, 2, 2, MODE_IMMEDIATE},
	{0xE5, SBC, 2, 3, MODE_ZP},
	{0xF5, SBC, 2, 4, MODE_ZPX},
	{0xED, SBC, 3, 4, MODE_ABSOLUTE},
	{0xFD, SBC, 3, 4, MODE_ABSOLUTEX},
	{0xF9, SBC, 3, 4, MODE_ABSOLUTEY},
	{0xE1, SBC, 2, 6, MODE_INDIRECTX},
	{0xF1, SBC, 2, 5, MODE_INDIRECTY},

	{0x38, SEC, 1, 2, MODE_IMPLIED},
	{0xF8, SED, 1, 2, MODE_IMPLIED},
	{0x78, SEI, 1, 2, MODE_IMPLIED},

	{0x85, STA, 2, 3, MODE_ZP},
	{0x95, STA, 2, 4, MODE_ZPX},
	{0x8D, STA, 3, 4, MODE_ABSOLUTE},
	{0x9D, STA, 3, 5, MODE_ABSOLUTEX},
	{0x99, STA, 3, 5, MODE_ABSOLUTEY},
	{0x81, STA, 2, 6, MODE_INDIRECTX},
	{0x91, STA, 2, 6, MODE_INDIRECTY},

	{0x86, STX, 2, 3, MODE_ZP},
	{0x96, STX, 2, 4, MODE_ZPY},
	{0x8E, STX, 3, 4, MODE_ABSOLUTE},

	{0x84, STY, 2, 3, MODE_ZP},
	{0x94, STY, 2, 4, MODE_ZPX},
	{0x8C, STY, 3, 4, MODE_ABSOLUTE},

	{0xAA, TAX, 1, 2, MODE_IMPLIED},
	{0xA8, TAY, 1, 2, MODE_IMPLIED},
	{0xBA, TSX, 1, 2, MODE_IMPLIED},
	{0x8A, TXA, 1, 2, MODE_IMPLIED},
	{0x9A, TXS, 1, 2, MODE_IMPLIED},
	{0x98, TYA, 1, 2, MODE_IMPLIED},
}

// opcodes is the decode index. Built once at init and read only after that.
var opcodes [256]*Opcode

func init() {
	for i := range opcodeList {
		o := &opcodeList[i]
		if opcodes[o.Hex] != nil {
			panic(fmt.Sprintf("duplicate opcode 0x%.2X (%s and %s)", o.Hex, opcodes[o.Hex].Inst, o.Inst))
		}
		opcodes[o.Hex] = o
	}
}

// Lookup returns the table entry for the given byte. The bool is false
// if the byte isn't a documented opcode.
func Lookup(b uint8) (Opcode, bool) {
	o := opcodes[b]
	if o == nil {
		return Opcode{}, false
	}
	return *o, true
}

// Opcodes returns a copy of the table sorted by opcode value.
func Opcodes() []Opcode {
	out := make([]Opcode, len(opcodeList))
	copy(out, opcodeList)
	sort.Slice(out, func(i, j int) bool { return out[i].Hex < out[j].Hex })
	return out
}
