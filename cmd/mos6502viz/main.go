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

// Command mos6502viz loads a flat binary image, runs it on a freshly reset
// CPU core for a bounded number of cycles, and writes a Graphviz rendering
// of the final register file to a .dot file. It is an external collaborator
// of the core: its flags and output format are not part of any tested
// contract.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/retrosystems/mos6502/cpu"
)

func main() {
	image := flag.String("image", "", "path to a flat binary image, loaded at address 0")
	budget := flag.Uint64("budget", 1_000_000, "maximum number of cycles to run before giving up on halt")
	out := flag.String("out", "mos6502viz.dot", "path to write the Graphviz .dot rendering to")
	flag.Parse()

	if *image == "" {
		fmt.Fprintln(os.Stderr, "mos6502viz: -image is required")
		os.Exit(2)
	}

	if err := run(*image, *budget, *out); err != nil {
		fmt.Fprintf(os.Stderr, "mos6502viz: %v\n", err)
		os.Exit(1)
	}
}

func run(imagePath string, budget uint64, outPath string) error {
	program, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	if len(program) > 0x10000 {
		return fmt.Errorf("image is %d bytes, larger than the 64KB address space", len(program))
	}

	ram := make([]uint8, 0x10000)
	copy(ram, program)

	c := cpu.New()
	c.MapRAMRegion(0x0000, ram)
	c.Reset()

	var ticks uint64
	for !c.IsHalted() && ticks < budget {
		c.Tick()
		ticks++
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	memviz.Map(f, c)

	fmt.Printf("mos6502viz: ran %d cycles (halted=%v, retired=%d), wrote %s\n", ticks, c.IsHalted(), c.TotalRetired(), outPath)
	return nil
}
