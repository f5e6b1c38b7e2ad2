package cpu_test

import (
	"testing"

	"github.com/retrosystems/mos6502/cpu"
)

// newTestCPU returns a CPU with the entire 64KB address space mapped as a
// single flat RAM region, program loaded at address 0, and the reset vector
// pointing at address 0. It is reset and ready for its first Tick.
func newTestCPU(t *testing.T, program []uint8) (*cpu.CPU, []uint8) {
	t.Helper()

	ram := make([]uint8, 0x10000)
	copy(ram, program)
	ram[0xFFFC] = 0x00
	ram[0xFFFD] = 0x00

	c := cpu.New()
	c.MapRAMRegion(0x0000, ram)
	c.Reset()

	return c, ram
}

// runToHalt ticks c until it halts or budget ticks have elapsed, whichever
// comes first, and fails the test if the budget is exhausted first.
func runToHalt(t *testing.T, c *cpu.CPU, budget int) {
	t.Helper()
	for i := 0; i < budget; i++ {
		c.Tick()
		if c.IsHalted() {
			return
		}
	}
	t.Fatalf("CPU did not halt within %d ticks", budget)
}
