package registers

import "fmt"

// StackBase is the physical page the stack always occupies.
const StackBase = uint16(0x0100)

// StackPointer is the 8-bit stack pointer. The stack itself lives at
// StackBase | value and always grows downward.
type StackPointer struct {
	value uint8
}

// NewStackPointer returns a stack pointer initialised to v.
func NewStackPointer(v uint8) StackPointer {
	return StackPointer{value: v}
}

// Label returns the register's canonical name.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("SP=%#02x", sp.value)
}

// Value returns the raw 8-bit stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Load replaces the stack pointer's value.
func (sp *StackPointer) Load(v uint8) {
	sp.value = v
}

// Address returns the physical address the stack pointer currently
// references.
func (sp StackPointer) Address() uint16 {
	return StackBase | uint16(sp.value)
}

// Push returns the address to write to and moves the pointer down by one,
// wrapping modulo 256 within the stack page.
func (sp *StackPointer) Push() uint16 {
	addr := sp.Address()
	sp.value--
	return addr
}

// Pull moves the pointer up by one, wrapping modulo 256, and returns the
// address to read from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
