package registers

import "fmt"

// ProgramCounter is the 16-bit instruction pointer.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter returns a program counter initialised to v.
func NewProgramCounter(v uint16) ProgramCounter {
	return ProgramCounter{value: v}
}

// Label returns the register's canonical name.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("PC=%#04x", pc.value)
}

// Value returns the current address.
func (pc ProgramCounter) Value() uint16 {
	return pc.value
}

// Load replaces the program counter's value.
func (pc *ProgramCounter) Load(v uint16) {
	pc.value = v
}

// Next returns the current value and advances the counter by one, wrapping
// modulo 2^16. It is the fetch-and-increment idiom used throughout the
// addressing-mode engine.
func (pc *ProgramCounter) Next() uint16 {
	v := pc.value
	pc.value++
	return v
}

// Add advances the counter by delta, wrapping modulo 2^16.
func (pc *ProgramCounter) Add(delta uint16) {
	pc.value += delta
}
