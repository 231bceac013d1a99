// Package disassemble implements a disassembler for 6502 opcodes
// driven by the same decode table the cpu package executes from.
package disassemble

import (
	"fmt"
	"strings"

	"github.com/jmchacon/6502core/cpu"
	"github.com/jmchacon/6502core/memory"
)

// Line is one disassembled instruction.
type Line struct {
	PC      uint16
	Bytes   []uint8 // Opcode followed by any operand bytes.
	Op      string  // Mnemonic, or ??? for a byte that isn't an opcode.
	Operand string  // Formatted operand. Empty for implied mode.
	Valid   bool    // False if the opcode byte isn't documented.
}

// String renders the line as address, raw bytes, mnemonic and operand.
func (l Line) String() string {
	b := make([]string, len(l.Bytes))
	for i, v := range l.Bytes {
		b[i] = fmt.Sprintf("%.2X", v)
	}
	out := fmt.Sprintf("%.4X %-8s  %s %s", l.PC, strings.Join(b, " "), l.Op, l.Operand)
	return strings.TrimRight(out, " ")
}

// Decode will take the given PC value and decode the instruction at that location.
// This does not interpret the instructions so LDA, JMP, LDA in memory
// will disassemble as that sequence and not follow the JMP.
// Operand reads past 0xFFFF wrap to 0x0000.
func Decode(pc uint16, r memory.Reader) Line {
	o := r.Read(pc)
	op, ok := cpu.Lookup(o)
	if !ok {
		return Line{
			PC:    pc,
			Bytes: []uint8{o},
			Op:    "???",
		}
	}
	l := Line{
		PC:    pc,
		Bytes: []uint8{o},
		Op:    op.Inst.String(),
		Valid: true,
	}
	for i := uint16(1); i < uint16(op.Len); i++ {
		l.Bytes = append(l.Bytes, r.Read(pc+i))
	}
	var pc1, pc2 uint8
	if len(l.Bytes) > 1 {
		pc1 = l.Bytes[1]
	}
	if len(l.Bytes) > 2 {
		pc2 = l.Bytes[2]
	}
	switch op.Mode {
	case cpu.MODE_IMMEDIATE:
		l.Operand = fmt.Sprintf("#%.2X", pc1)
	case cpu.MODE_ZP:
		l.Operand = fmt.Sprintf("%.2X", pc1)
	case cpu.MODE_ZPX:
		l.Operand = fmt.Sprintf("%.2X,X", pc1)
	case cpu.MODE_ZPY:
		l.Operand = fmt.Sprintf("%.2X,Y", pc1)
	case cpu.MODE_INDIRECTX:
		l.Operand = fmt.Sprintf("(%.2X,X)", pc1)
	case cpu.MODE_INDIRECTY:
		l.Operand = fmt.Sprintf("(%.2X),Y", pc1)
	case cpu.MODE_ABSOLUTE:
		l.Operand = fmt.Sprintf("%.2X%.2X", pc2, pc1)
	case cpu.MODE_ABSOLUTEX:
		l.Operand = fmt.Sprintf("%.2X%.2X,X", pc2, pc1)
	case cpu.MODE_ABSOLUTEY:
		l.Operand = fmt.Sprintf("%.2X%.2X,Y", pc2, pc1)
	case cpu.MODE_INDIRECT:
		l.Operand = fmt.Sprintf("(%.2X%.2X)", pc2, pc1)
	case cpu.MODE_RELATIVE:
		// Sign extend the offset. Branches are relative to the following instruction.
		l.Operand = fmt.Sprintf("%.2X (%.4X)", pc1, pc+uint16(int16(int8(pc1)))+2)
	case cpu.MODE_IMPLIED:
		// Accumulator forms show A explicitly.
		switch op.Inst {
		case cpu.ASL, cpu.LSR, cpu.ROL, cpu.ROR:
			l.Operand = "A"
		}
	}
	return l
}

// Step will take the given PC value and disassemble the instruction at that location
// returning a string for the disassembly and the bytes forward the PC should move to get to
// the next instruction. Bytes which aren't opcodes are 1 byte long.
func Step(pc uint16, r memory.Reader) (string, int) {
	l := Decode(pc, r)
	return l.String(), len(l.Bytes)
}
