package cpu

import "testing"

func TestSetZeroNegative(t *testing.T) {
	for _, prior := range []Status{0x00, 0xFF, Status(P_S1), Status(P_ZERO | P_NEGATIVE)} {
		for i := 0; i < 256; i++ {
			v := uint8(i)
			s := prior
			s.SetZeroNegative(v)
			if got, want := s.Zero(), v == 0; got != want {
				t.Errorf("%.2X prior %s: Z got %t want %t", v, prior, got, want)
			}
			if got, want := s.Negative(), v&0x80 != 0; got != want {
				t.Errorf("%.2X prior %s: N got %t want %t", v, prior, got, want)
			}
			// Nothing else moves.
			other := ^(P_ZERO | P_NEGATIVE)
			if got, want := uint8(s)&other, uint8(prior)&other; got != want {
				t.Errorf("%.2X prior %s: other flags changed got %.2X want %.2X", v, prior, got, want)
			}
		}
	}
}

func TestStatusFlags(t *testing.T) {
	tests := []struct {
		name string
		mask uint8
		set  func(*Status, bool)
		get  func(Status) bool
	}{
		{"Negative", P_NEGATIVE, (*Status).SetNegative, Status.Negative},
		{"Overflow", P_OVERFLOW, (*Status).SetOverflow, Status.Overflow},
		{"Break", P_B, (*Status).SetBreak, Status.Break},
		{"Decimal", P_DECIMAL, (*Status).SetDecimal, Status.Decimal},
		{"Interrupt", P_INTERRUPT, (*Status).SetInterrupt, Status.Interrupt},
		{"Zero", P_ZERO, (*Status).SetZero, Status.Zero},
		{"Carry", P_CARRY, (*Status).SetCarry, Status.Carry},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := Status(P_S1)
			test.set(&s, true)
			if !test.get(s) {
				t.Errorf("Flag not set: %s", s)
			}
			if got, want := uint8(s), P_S1|test.mask; got != want {
				t.Errorf("Bad value after set: got %.2X want %.2X", got, want)
			}
			test.set(&s, false)
			if test.get(s) {
				t.Errorf("Flag not cleared: %s", s)
			}
			if got, want := uint8(s), P_S1; got != want {
				t.Errorf("Bad value after clear: got %.2X want %.2X", got, want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{Status(P_S1), "nv-bdizc"},
		{Status(0xFF), "NV-BDIZC"},
		{Status(0x00), "nv-bdizc"},
		{Status(P_NEGATIVE | P_S1 | P_CARRY), "Nv-bdizC"},
		{Status(P_OVERFLOW | P_ZERO), "nV-bdiZc"},
	}
	for _, test := range tests {
		if got := test.s.String(); got != test.want {
			t.Errorf("%.2X: got %s want %s", uint8(test.s), got, test.want)
		}
	}
}
