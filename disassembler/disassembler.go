// disassembler takes a filename and loads it and then
// disassembles it to stdout starting at the first instruction.
// If the filename ends in .prg (case insensitive) it will assume
// this is a C64 program file and use the first 2 bytes as the load
// address.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/jmchacon/6502core/disassemble"
	"github.com/jmchacon/6502core/memory"
)

var (
	startPC  = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset   = flag.Int("offset", 0x0000, "Offset into RAM to start loading data. All other RAM will be zero'd out. Ignored for PRG files.")
	useColor = flag.Bool("color", true, "If set, mnemonics and invalid bytes are colored. Ignored when stdout isn't a terminal.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset> -color] <filename>", os.Args[0])
	}
	if *offset < 0 || *offset > 65535 {
		log.Fatal("--offset out of range. Must be between 0-65535")
	}
	if *startPC < 0 || *startPC > 65535 {
		log.Fatal("--start_pc out of range. Must be between 0-65535")
	}
	color.NoColor = color.NoColor || !*useColor
	fn := flag.Args()[0]

	b, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	pc := uint16(*startPC)
	parts := strings.Split(fn, ".")
	if strings.ToLower(parts[len(parts)-1]) == "prg" {
		if len(b) < 2 {
			log.Fatalf("PRG file %s too short for a load address", fn)
		}
		fmt.Println("C64 program file")
		// We're supplied with the load offset instead of using the flag (which we'll override).
		*offset = int((uint16(b[1]) << 8) + uint16(b[0]))
		pc = uint16(*offset)
		b = b[2:]
	}
	max := 65536 - *offset
	if l := len(b); l > max {
		log.Printf("Length %d at offset %d too long, truncating to 64k", l, *offset)
		b = b[:max]
	}

	f := &memory.Flat{}
	f.PowerOn()
	for i, v := range b {
		f.Write(uint16(*offset+i), v)
	}
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", len(b), pc)

	op := color.New(color.FgCyan).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	cnt := 0
	// Can't base it on PC since it may rollover so just disassemble until we run out of buffer.
	for cnt < len(b) {
		l := disassemble.Decode(pc, f)
		if l.Valid {
			l.Op = op(l.Op)
		} else {
			l.Op = bad(l.Op)
		}
		fmt.Println(l)
		pc += uint16(len(l.Bytes))
		cnt += len(l.Bytes)
	}
}
