package registers

import "strings"

// Status bits, high to low: N V U B D I Z C.
const (
	StatusCarry    uint8 = 1 << 0
	StatusZero     uint8 = 1 << 1
	StatusIRQ      uint8 = 1 << 2
	StatusDecimal  uint8 = 1 << 3
	StatusBreak    uint8 = 1 << 4
	StatusUnused   uint8 = 1 << 5
	StatusOverflow uint8 = 1 << 6
	StatusNegative uint8 = 1 << 7
)

// Status is the processor status register, kept as a raw bitfield rather
// than a struct of bools: the 6502 pushes and pulls it as a single byte and
// several instructions (PHP, BRK, PLP) only make sense in terms of that byte
// representation.
type Status struct {
	value uint8
}

// NewStatus returns a status register with only the unused bit set. (Reset
// loads the IRQ-disable bit as well.)
func NewStatus() Status {
	return Status{value: StatusUnused}
}

// Label returns the register's canonical name.
func (s Status) Label() string {
	return "P"
}

// String renders the flags as a letter per bit, upper case when set,
// following the conventional NV-BDIZC ordering.
func (s Status) String() string {
	letters := "nvubdizc"
	bits := [8]uint8{StatusNegative, StatusOverflow, StatusUnused, StatusBreak, StatusDecimal, StatusIRQ, StatusZero, StatusCarry}
	b := strings.Builder{}
	for i, bit := range bits {
		if s.value&bit != 0 {
			b.WriteByte(letters[i] - ('a' - 'A'))
		} else {
			b.WriteByte(letters[i])
		}
	}
	return b.String()
}

// Value returns the raw byte, exactly as it would be pushed by PHP/BRK with
// the break bit already OR'd in by the caller if required.
func (s Status) Value() uint8 {
	return s.value
}

// Load replaces the status register wholesale, e.g. when pulling from the
// stack.
func (s *Status) Load(v uint8) {
	s.value = v
}

// Set forces the given bits on.
func (s *Status) Set(bits uint8) {
	s.value |= bits
}

// Clear forces the given bits off.
func (s *Status) Clear(bits uint8) {
	s.value &^= bits
}

// Test reports whether every bit in bits is set.
func (s Status) Test(bits uint8) bool {
	return s.value&bits == bits
}

// SetTo sets or clears bits according to on.
func (s *Status) SetTo(bits uint8, on bool) {
	if on {
		s.Set(bits)
	} else {
		s.Clear(bits)
	}
}

// SetValueFlags updates N and Z from v, leaving every other flag untouched.
// This is the flag-update rule shared by every load, transfer (except TXS),
// increment, decrement and ALU instruction in this instruction set.
func (s *Status) SetValueFlags(v uint8) {
	s.SetTo(StatusZero, v == 0)
	s.SetTo(StatusNegative, v&0x80 != 0)
}
