package cpu

import "github.com/retrosystems/mos6502/cpu/instructions"

// instruction is the in-flight state of the instruction currently being
// decoded or executed. It is small enough to be copied by value and is the
// only state that persists a tick's progress across calls to Tick.
type instruction struct {
	opcode         uint8
	def            *instructions.Definition
	cycle          uint8 // 0-based count of Tick calls spent on this instruction
	ncycles        uint8 // target tick count; grows by 1 at runtime on a page-cross stall
	addressLatched bool  // AB now holds the effective address, or the mode needed none
	immediate      bool  // the addressing mode resolved with no dedicated bus read of its own
}

// decode installs opcode as the current instruction without consuming a
// cycle; it is used both at reset, to prime the very first instruction, and
// when retiring an instruction, to make the next one ready for its own
// dedicated fetch tick.
func (c *CPU) decode(opcode uint8) {
	def := instructions.Lookup(opcode)
	verify(def != nil, "unimplemented opcode %#02x at PC=%#04x", opcode, c.PC.Value()-1)
	c.instr = instruction{opcode: opcode, def: def, ncycles: def.NCycles}
}

// fetchNext reads the opcode at PC, advances PC past it, and decodes it.
func (c *CPU) fetchNext() {
	opcode := c.busLoad(c.PC.Next())
	c.decode(opcode)
}

// addressingCycle returns the addressing-mode engine's own local sub-cycle
// index for the current tick. Every instruction of two cycles or more
// spends its cycle 0 on its opcode fetch, so the addressing engine's local
// index trails the instruction's cycle counter by one; an instruction with
// only a single total cycle (HLT) has no separate fetch cycle to account
// for and the two indices coincide.
func (instr *instruction) addressingCycle() uint8 {
	if instr.ncycles == 1 {
		return instr.cycle
	}
	return instr.cycle - 1
}

// stepAddressing advances the addressing-mode state machine for the
// in-flight instruction by one sub-cycle, given the mode's own local
// sub-cycle index. It returns once AB is latched; IMP and IMM latch
// immediately and additionally set immediate, since neither needs a
// dedicated bus read beyond what the opcode fetch already implied.
func (c *CPU) stepAddressing(sub uint8) {
	instr := &c.instr
	switch instr.def.Mode {
	case instructions.IMP:
		instr.addressLatched = true
		instr.immediate = true

	case instructions.IMM:
		c.AB = c.PC.Next()
		instr.addressLatched = true
		instr.immediate = true

	case instructions.Z:
		c.AB = uint16(c.busLoad(c.PC.Next()))
		instr.addressLatched = true

	case instructions.ZX:
		c.stepZeroPageIndexed(sub, c.X.Value())

	case instructions.ZY:
		c.stepZeroPageIndexed(sub, c.Y.Value())

	case instructions.ABS:
		switch sub {
		case 0:
			c.DB = c.busLoad(c.PC.Next())
		case 1:
			hi := c.busLoad(c.PC.Next())
			c.AB = uint16(hi)<<8 | uint16(c.DB)
			instr.addressLatched = true
		}

	case instructions.ABSX:
		c.stepIndexedAbsolute(sub, c.X.Value())

	case instructions.ABSY:
		c.stepIndexedAbsolute(sub, c.Y.Value())

	case instructions.INDX:
		switch sub {
		case 0:
			c.DB = c.busLoad(c.PC.Next())
		case 1:
			c.DB += c.X.Value()
		case 2:
			c.AB = uint16(c.busLoad(uint16(c.DB)))
			c.DB++
		case 3:
			hi := c.busLoad(uint16(c.DB))
			c.AB |= uint16(hi) << 8
			instr.addressLatched = true
		}

	case instructions.INDY:
		switch sub {
		case 0:
			c.DB = c.busLoad(c.PC.Next())
		case 1:
			c.AB = uint16(c.busLoad(uint16(c.DB)))
			c.DB++
		case 2:
			hi := c.busLoad(uint16(c.DB))
			base := uint16(hi)<<8 | c.AB
			c.finishIndexed(base, c.Y.Value())
		}

	default:
		verify(false, "unhandled addressing mode %s", instr.def.Mode)
	}
}

func (c *CPU) stepZeroPageIndexed(sub uint8, index uint8) {
	switch sub {
	case 0:
		c.DB = c.busLoad(c.PC.Next())
	case 1:
		c.AB = uint16(c.DB + index)
		c.instr.addressLatched = true
	}
}

// stepIndexedAbsolute implements ABS,X and ABS,Y: two sub-cycles to build
// the unindexed base address, then finishIndexed applies the page-cross
// rule shared with INDY.
func (c *CPU) stepIndexedAbsolute(sub uint8, index uint8) {
	switch sub {
	case 0:
		c.DB = c.busLoad(c.PC.Next())
	case 1:
		hi := c.busLoad(c.PC.Next())
		base := uint16(hi)<<8 | uint16(c.DB)
		c.finishIndexed(base, index)
	}
}

// finishIndexed applies index to base, extending the instruction's ncycles
// by one when the addition carries into the high byte and the instruction
// only pays the stall conditionally. Always-stall instructions (indexed
// stores, indexed read-modify-write) already carry the stall cycle in their
// table entry's NCycles.
func (c *CPU) finishIndexed(base uint16, index uint8) {
	instr := &c.instr
	if !instr.def.AlwaysStall && instr.def.XPageStall {
		baseLow := uint8(base)
		if uint16(baseLow)+uint16(index) > 0xFF {
			instr.ncycles++
		}
	}
	c.AB = base + uint16(index)
	instr.addressLatched = true
}
