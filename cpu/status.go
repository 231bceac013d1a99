package cpu

import "strings"

const (
	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always 1
	P_B         = uint8(0x10) // Unused here since BRK doesn't push state.
	P_DECIMAL   = uint8(0x8)
	P_INTERRUPT = uint8(0x4)
	P_ZERO      = uint8(0x2)
	P_CARRY     = uint8(0x1)
)

// Status is the processor status register. Each flag is a single bit at the
// position the real chip uses so the value can be snapshot directly.
type Status uint8

// Has returns true if every bit in mask is set.
func (s Status) Has(mask uint8) bool {
	return uint8(s)&mask == mask
}

// Set sets or clears the bits in mask.
func (s *Status) Set(mask uint8, on bool) {
	if on {
		*s |= Status(mask)
		return
	}
	*s &^= Status(mask)
}

func (s Status) Negative() bool  { return s.Has(P_NEGATIVE) }
func (s Status) Overflow() bool  { return s.Has(P_OVERFLOW) }
func (s Status) Break() bool     { return s.Has(P_B) }
func (s Status) Decimal() bool   { return s.Has(P_DECIMAL) }
func (s Status) Interrupt() bool { return s.Has(P_INTERRUPT) }
func (s Status) Zero() bool      { return s.Has(P_ZERO) }
func (s Status) Carry() bool     { return s.Has(P_CARRY) }

func (s *Status) SetNegative(on bool)  { s.Set(P_NEGATIVE, on) }
func (s *Status) SetOverflow(on bool)  { s.Set(P_OVERFLOW, on) }
func (s *Status) SetBreak(on bool)     { s.Set(P_B, on) }
func (s *Status) SetDecimal(on bool)   { s.Set(P_DECIMAL, on) }
func (s *Status) SetInterrupt(on bool) { s.Set(P_INTERRUPT, on) }
func (s *Status) SetZero(on bool)      { s.Set(P_ZERO, on) }
func (s *Status) SetCarry(on bool)     { s.Set(P_CARRY, on) }

// SetZeroNegative sets Z if v is zero and N if bit 7 of v is set.
// No other flags are touched.
func (s *Status) SetZeroNegative(v uint8) {
	s.SetZero(v == 0)
	s.SetNegative(v&0x80 != 0)
}

// String returns the flags as NV-BDIZC with set flags upper case.
func (s Status) String() string {
	var b strings.Builder
	for i, c := range "NV-BDIZC" {
		mask := uint8(0x80) >> uint(i)
		switch {
		case c == '-':
			b.WriteRune(c)
		case s.Has(mask):
			b.WriteRune(c)
		default:
			b.WriteRune(c + 'a' - 'A')
		}
	}
	return b.String()
}
