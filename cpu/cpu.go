// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

// Package cpu implements a cycle-accurate MOS 6502 core (decimal mode
// unimplemented). The caller assembles a physical address space out of RAM
// and MMIO regions, resets the CPU, then drives it one bus cycle at a time
// by calling Tick. See doc.go for the full contract.
package cpu

import (
	"github.com/retrosystems/mos6502/cpu/registers"
)

const (
	regCarry    = registers.StatusCarry
	regZero     = registers.StatusZero
	regIRQ      = registers.StatusIRQ
	regDecimal  = registers.StatusDecimal
	regBreak    = registers.StatusBreak
	regUnused   = registers.StatusUnused
	regOverflow = registers.StatusOverflow
	regNegative = registers.StatusNegative
)

// ResetVectorLow and ResetVectorHigh are the two physical addresses read on
// Reset to seed PC.
const (
	ResetVectorLow  = uint16(0xFFFC)
	ResetVectorHigh = uint16(0xFFFD)
)

// CPU holds the complete architectural state of a single 6502 core.
type CPU struct {
	PC registers.ProgramCounter
	SP registers.StackPointer
	A  registers.Register
	X  registers.Register
	Y  registers.Register
	P  registers.Status

	// AB and DB are the address- and data-bus latches used to carry state
	// between sub-cycles of the same instruction.
	AB uint16
	DB uint8

	halted bool
	instr  instruction

	cycle        uint64
	totalRetired uint64
	addressSpace addressSpace
}

// New returns a CPU with no mapped memory. Call MapRAMRegion/MapMMIORegion
// to build its address space, then Reset before the first Tick.
func New() *CPU {
	c := &CPU{
		A: registers.NewRegister("A"),
		X: registers.NewRegister("X"),
		Y: registers.NewRegister("Y"),
	}
	c.addressSpace.owner = c
	return c
}

// MapRAMRegion adds a directly-addressable RAM region backed by ram. ram is
// borrowed, not copied: writes through the CPU mutate it in place, and the
// caller must not free it while the CPU is in use. Regions may only be
// added before Reset and must not overlap any region already mapped.
func (c *CPU) MapRAMRegion(base uint16, ram []uint8) {
	verify(ram != nil, "MapRAMRegion: ram slice must not be nil")
	c.addressSpace.insert(&region{base: base, size: uint32(len(ram)), isRAM: true, ram: ram})
}

// MapMMIORegion adds a region of size bytes starting at base serviced by
// handler. Regions may only be added before Reset and must not overlap any
// region already mapped.
func (c *CPU) MapMMIORegion(base uint16, size uint16, handler MMIOHandler) {
	verify(handler != nil, "MapMMIORegion: handler must not be nil")
	verify(size >= 1, "MapMMIORegion: size must be at least 1")
	c.addressSpace.insert(&region{base: base, size: uint32(size), isRAM: false, handler: handler})
}

func (c *CPU) busLoad(addr uint16) uint8 {
	return c.addressSpace.load(addr)
}

func (c *CPU) busStore(addr uint16, v uint8) {
	c.addressSpace.store(addr, v)
}

// LoadWord and StoreWord are bypass accessors for host and test
// introspection: they do not consume a cycle and are not part of the timing
// model.
func (c *CPU) LoadWord(addr uint16) uint8 {
	return c.busLoad(addr)
}

// StoreWord writes v to addr without consuming a cycle.
func (c *CPU) StoreWord(addr uint16, v uint8) {
	c.busStore(addr, v)
}

// Reset seeds PC from the reset vector, puts the CPU into its documented
// power-on register state, and primes the first instruction so the very
// next Tick begins executing it. A and X and Y are left untouched: the
// architectural reset sequence never touches the accumulator or index
// registers.
func (c *CPU) Reset() {
	lo := c.busLoad(ResetVectorLow)
	hi := c.busLoad(ResetVectorHigh)
	c.PC.Load(uint16(hi)<<8 | uint16(lo))

	c.SP.Load(0xFD)
	c.P.Load(regIRQ | regUnused)
	c.AB = 0
	c.DB = 0
	c.halted = false
	c.cycle = 8
	c.totalRetired = 0

	c.fetchNext()
}

// IsHalted reports whether the CPU has executed a KIL/JAM opcode. No further
// Tick calls will mutate state once this is true.
func (c *CPU) IsHalted() bool {
	return c.halted
}

// Cycle returns the number of bus cycles consumed since Reset.
func (c *CPU) Cycle() uint64 {
	return c.cycle
}

// TotalRetired returns the number of instructions retired since Reset.
func (c *CPU) TotalRetired() uint64 {
	return c.totalRetired
}

// Tick advances the CPU by exactly one bus cycle and reports whether an
// instruction retired during that cycle. See §4.5 of the design notes for
// the full state machine this implements.
func (c *CPU) Tick() bool {
	if c.halted {
		return false
	}

	instr := &c.instr
	retired := false

	switch {
	case instr.ncycles > 1 && instr.cycle == 0:
		// dedicated opcode-fetch cycle: nothing left to do, it already
		// happened when this instruction was decoded.

	case !instr.addressLatched:
		c.stepAddressing(instr.addressingCycle())
		// IMP/IMM latch on their very first addressing sub-cycle, but that
		// is only this instruction's terminal cycle when NCycles is 2 (or
		// 1, for HLT). Stack ops (PHA/PLA/PHP/PLP) are IMP with NCycles
		// 3/4: they still latch immediately, but must not run their uop
		// until the dummy cycles ahead of them have elapsed, or the
		// push/pull would fire twice.
		if instr.addressLatched && instr.immediate && instr.cycle+1 == instr.ncycles {
			c.runUop(0)
			retired = c.retireIfDone()
		}

	default:
		remaining := instr.ncycles - instr.cycle - 1
		c.runUop(remaining)
		retired = c.retireIfDone()
	}

	c.cycle++
	if !retired {
		instr.cycle++
	}
	return retired
}

// retireIfDone checks whether the instruction just completed its terminal
// cycle and, if so, retires it and decodes the next opcode ready for its
// own dedicated fetch cycle.
func (c *CPU) retireIfDone() bool {
	instr := &c.instr
	if instr.cycle+1 != instr.ncycles {
		return false
	}
	c.totalRetired++
	if c.halted {
		return true
	}
	c.fetchNext()
	return true
}
