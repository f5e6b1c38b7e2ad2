package cpu

import (
	"github.com/retrosystems/mos6502/cpu/instructions"
	"github.com/retrosystems/mos6502/logger"
)

// runUop is called once AB has been latched (or the mode is immediate) on
// every remaining tick of the instruction. remaining counts down to zero on
// the terminal tick. For plain instructions only remaining==0 does
// anything; every earlier call is a stall/dummy cycle inserted by a
// page-cross penalty and is otherwise silent. For read-modify-write
// instructions the last three ticks (remaining 2, 1, 0) perform the read,
// modify and write phases respectively.
func (c *CPU) runUop(remaining uint8) {
	instr := &c.instr

	if instr.def.RMW {
		switch remaining {
		case 2:
			c.DB = c.busLoad(c.AB)
		case 1:
			c.DB = c.rmwModify(instr.def.Uop, c.DB)
		case 0:
			c.busStore(c.AB, c.DB)
		}
		return
	}

	if remaining != 0 {
		return
	}

	c.exec(instr.def.Uop)
}

// rmwModify applies a shift/rotate/inc/dec transform to v, updating flags,
// and returns the new value to be written back.
func (c *CPU) rmwModify(uop instructions.Uop, v uint8) uint8 {
	switch uop {
	case instructions.ASL:
		carry := v&0x80 != 0
		v <<= 1
		c.P.SetTo(regCarry, carry)
	case instructions.LSR:
		carry := v&0x01 != 0
		v >>= 1
		c.P.SetTo(regCarry, carry)
	case instructions.ROL:
		carry := v&0x80 != 0
		v <<= 1
		if c.P.Test(regCarry) {
			v |= 0x01
		}
		c.P.SetTo(regCarry, carry)
	case instructions.ROR:
		carry := v&0x01 != 0
		v >>= 1
		if c.P.Test(regCarry) {
			v |= 0x80
		}
		c.P.SetTo(regCarry, carry)
	case instructions.INC:
		v++
	case instructions.DEC:
		v--
	default:
		verify(false, "%s is not a read-modify-write micro-op", uop)
	}
	c.P.SetValueFlags(v)
	return v
}

// exec performs a single-cycle micro-op once AB (if any) is latched.
func (c *CPU) exec(uop instructions.Uop) {
	switch uop {
	case instructions.NOP:
		// nothing to do

	case instructions.HLT:
		c.halted = true
		logger.Logf(logger.Allow, "cpu", "halted on JAM opcode %#02x", c.instr.opcode)

	case instructions.LDA:
		c.A.Load(c.busLoad(c.AB))
		c.P.SetValueFlags(c.A.Value())
	case instructions.LDX:
		c.X.Load(c.busLoad(c.AB))
		c.P.SetValueFlags(c.X.Value())
	case instructions.LDY:
		c.Y.Load(c.busLoad(c.AB))
		c.P.SetValueFlags(c.Y.Value())

	case instructions.STA:
		c.busStore(c.AB, c.A.Value())
	case instructions.STX:
		c.busStore(c.AB, c.X.Value())
	case instructions.STY:
		c.busStore(c.AB, c.Y.Value())

	case instructions.TAX:
		c.X.Load(c.A.Value())
		c.P.SetValueFlags(c.X.Value())
	case instructions.TAY:
		c.Y.Load(c.A.Value())
		c.P.SetValueFlags(c.Y.Value())
	case instructions.TSX:
		c.X.Load(c.SP.Value())
		c.P.SetValueFlags(c.X.Value())
	case instructions.TXA:
		c.A.Load(c.X.Value())
		c.P.SetValueFlags(c.A.Value())
	case instructions.TXS:
		c.SP.Load(c.X.Value())
	case instructions.TYA:
		c.A.Load(c.Y.Value())
		c.P.SetValueFlags(c.A.Value())

	case instructions.PHA:
		c.busStore(c.SP.Push(), c.A.Value())
	case instructions.PHP:
		c.busStore(c.SP.Push(), c.P.Value()|regBreak|regUnused)
	case instructions.PLA:
		c.A.Load(c.busLoad(c.SP.Pull()))
		c.P.SetValueFlags(c.A.Value())
	case instructions.PLP:
		pulled := c.busLoad(c.SP.Pull())
		preserved := c.P.Value() & (regBreak | regUnused)
		c.P.Load((pulled &^ (regBreak | regUnused)) | preserved)

	case instructions.INX:
		c.X.Load(c.X.Value() + 1)
		c.P.SetValueFlags(c.X.Value())
	case instructions.DEX:
		c.X.Load(c.X.Value() - 1)
		c.P.SetValueFlags(c.X.Value())
	case instructions.INY:
		c.Y.Load(c.Y.Value() + 1)
		c.P.SetValueFlags(c.Y.Value())
	case instructions.DEY:
		c.Y.Load(c.Y.Value() - 1)
		c.P.SetValueFlags(c.Y.Value())

	case instructions.ADC:
		carry, overflow := c.A.Add(c.busLoad(c.AB), c.P.Test(regCarry))
		c.P.SetTo(regOverflow, overflow)
		c.P.SetTo(regCarry, carry)
		c.P.SetValueFlags(c.A.Value())
	case instructions.SBC:
		carry, overflow := c.A.Subtract(c.busLoad(c.AB), c.P.Test(regCarry))
		c.P.SetTo(regOverflow, overflow)
		c.P.SetTo(regCarry, carry)
		c.P.SetValueFlags(c.A.Value())

	case instructions.AND:
		c.A.AND(c.busLoad(c.AB))
		c.P.SetValueFlags(c.A.Value())
	case instructions.EOR:
		c.A.EOR(c.busLoad(c.AB))
		c.P.SetValueFlags(c.A.Value())
	case instructions.ORA:
		c.A.ORA(c.busLoad(c.AB))
		c.P.SetValueFlags(c.A.Value())

	case instructions.ASL:
		carry := c.A.ASL()
		c.P.SetTo(regCarry, carry)
		c.P.SetValueFlags(c.A.Value())
	case instructions.LSR:
		carry := c.A.LSR()
		c.P.SetTo(regCarry, carry)
		c.P.SetValueFlags(c.A.Value())
	case instructions.ROL:
		carry := c.A.ROL(c.P.Test(regCarry))
		c.P.SetTo(regCarry, carry)
		c.P.SetValueFlags(c.A.Value())
	case instructions.ROR:
		carry := c.A.ROR(c.P.Test(regCarry))
		c.P.SetTo(regCarry, carry)
		c.P.SetValueFlags(c.A.Value())

	case instructions.CLC:
		c.P.Clear(regCarry)
	case instructions.SEC:
		c.P.Set(regCarry)
	case instructions.CLI:
		c.P.Clear(regIRQ)
	case instructions.SEI:
		c.P.Set(regIRQ)
	case instructions.CLV:
		c.P.Clear(regOverflow)
	case instructions.CLD, instructions.SED:
		verify(false, "%s is not supported: decimal mode is unimplemented", uop)

	default:
		verify(false, "unhandled micro-op %s", uop)
	}
}
