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

// Package cpu implements a cycle-accurate core for the MOS 6502 (Ricoh
// 2A03/2A07 variant; decimal mode is not implemented).
//
// A CPU owns no memory of its own. Before Reset, the caller maps one or
// more RAM or MMIO regions covering whichever addresses the program it
// intends to run will touch, including the reset vector at 0xFFFC/0xFFFD.
// Regions may not overlap and the address space holds at most eight of
// them.
//
// Once reset, the CPU is driven exclusively through Tick: each call
// advances the processor by exactly one bus cycle and reports whether an
// instruction retired on that cycle. There is no run-to-completion entry
// point, by design — the caller is expected to interleave ticks with
// whatever else shares the same bus (video, audio, timers), and the CPU
// must be able to suspend and resume at any cycle boundary.
//
// Branches, jumps, compares, interrupts and undocumented opcodes beyond the
// JAM/KIL halt encodings are not implemented in this revision.
package cpu
