package cpu

// loadRegister takes the val and inserts it into the register passed in. It then does
// Z and N checks against the new value.
func (p *Processor) loadRegister(reg *uint8, val uint8) {
	*reg = val
	p.P.SetZeroNegative(*reg)
}

// carryCheck sets the C flag if the result of an 8 bit ALU operation
// (passed as a 16 bit result) caused a carry out by generating a value >= 0x100.
func (p *Processor) carryCheck(res uint16) {
	p.P.SetCarry(res >= 0x100)
}

// overflowCheck sets the V flag if the result of the ALU operation
// caused a two's complement sign change.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Processor) overflowCheck(reg uint8, arg uint8, res uint8) {
	// If the originals signs differ from the end sign bit
	p.P.SetOverflow((reg^res)&(arg^res)&0x80 != 0x00)
}

// addWithCarry does binary A+arg+C setting C, V, N and Z. Decimal mode is ignored.
func (p *Processor) addWithCarry(arg uint8) {
	var carry uint8
	if p.P.Carry() {
		carry = 1
	}
	sum := p.A + arg + carry
	p.overflowCheck(p.A, arg, sum)
	p.carryCheck(uint16(p.A) + uint16(arg) + uint16(carry))
	p.loadRegister(&p.A, sum)
}

// branch reads the relative offset at the PC and jumps if cond is true.
// Either way the offset byte is consumed.
func (p *Processor) branch(cond bool) {
	off := p.ram.Read(p.PC)
	p.PC++
	if cond {
		p.PC += uint16(int16(int8(off)))
	}
}

// iADC implements the ADC instruction.
func (p *Processor) iADC(op *Opcode) error {
	val, _, err := p.operand(op)
	if err != nil {
		return err
	}
	p.addWithCarry(val)
	p.advance(op)
	return nil
}

// iSBC implements the SBC instruction. Binary mode SBC is simply
// ADC of the ones complement of the arg (-arg-1 in 8 bits) so the
// carry acts as an inverted borrow.
func (p *Processor) iSBC(op *Opcode) error {
	val, _, err := p.operand(op)
	if err != nil {
		return err
	}
	p.addWithCarry(^val)
	p.advance(op)
	return nil
}

func (p *Processor) iAND(op *Opcode) error {
	val, _, err := p.operand(op)
	if err != nil {
		return err
	}
	p.loadRegister(&p.A, p.A&val)
	p.advance(op)
	return nil
}

// iASL implements the ASL instruction on either the accumulator (implied mode)
// or the given memory location.
func (p *Processor) iASL(op *Opcode) error {
	if op.Mode == MODE_IMPLIED {
		p.carryCheck(uint16(p.A) << 1)
		p.loadRegister(&p.A, p.A<<1)
		return nil
	}
	val, addr, err := p.operand(op)
	if err != nil {
		return err
	}
	new := val << 1
	p.ram.Write(addr, new)
	p.carryCheck(uint16(val) << 1)
	p.P.SetZeroNegative(new)
	p.advance(op)
	return nil
}

// iBIT implements the BIT instruction for AND'ing against A
// and setting N/V based on the value.
// CPU_NMOS_BITSTORE instead takes N/V from A&M and leaves A&M in A.
func (p *Processor) iBIT(op *Opcode) error {
	val, _, err := p.operand(op)
	if err != nil {
		return err
	}
	if p.CPUType == CPU_NMOS_BITSTORE {
		res := p.A & val
		p.P.SetOverflow(res&0x40 != 0x00)
		p.loadRegister(&p.A, res)
		p.advance(op)
		return nil
	}
	p.P.SetZero(p.A&val == 0x00)
	p.P.SetNegative(val&0x80 != 0x00)
	// Copy V from bit 6
	p.P.SetOverflow(val&0x40 != 0x00)
	p.advance(op)
	return nil
}

func (p *Processor) iLDA(op *Opcode) error {
	val, _, err := p.operand(op)
	if err != nil {
		return err
	}
	p.loadRegister(&p.A, val)
	p.advance(op)
	return nil
}

// iSTA stores A at the effective address. No flags change.
func (p *Processor) iSTA(op *Opcode) error {
	addr, err := p.operandAddr(op)
	if err != nil {
		return err
	}
	p.ram.Write(addr, p.A)
	p.advance(op)
	return nil
}
