// This file is part of GopherSNES.
//
// GopherSNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSNES.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"strings"
)

// Flag is a bit pattern of one or more status flags.
type Flag uint8

// Status flags. Bits 4 and 5 have two names because their meaning depends on
// the emulation flag.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	Decimal          Flag = 0x08

	// emulation mode
	Break Flag = 0x10

	// native mode
	Index8Bit Flag = 0x10
	Acc8Bit   Flag = 0x20

	Overflow Flag = 0x40
	Negative Flag = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. It also holds the emulation flag, which is not part of the register
// proper but which decides how the register is interpreted.
type StatusRegister struct {
	value     uint8
	emulation bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. The register is in the reset state.
func NewStatusRegister() StatusRegister {
	var sr StatusRegister
	sr.Reset()
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	bit := func(f Flag, r rune) {
		if sr.value&uint8(f) == uint8(f) {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	bit(Negative, 'N')
	bit(Overflow, 'V')
	if sr.emulation {
		s.WriteRune('-')
		bit(Break, 'B')
	} else {
		bit(Acc8Bit, 'M')
		bit(Index8Bit, 'X')
	}
	bit(Decimal, 'D')
	bit(InterruptDisable, 'I')
	bit(Zero, 'Z')
	bit(Carry, 'C')

	if sr.emulation {
		s.WriteString(" E")
	} else {
		s.WriteString(" e")
	}

	return s.String()
}

// Reset status flags to the power-on state. Interrupts are disabled and the
// CPU is in emulation mode.
func (sr *StatusRegister) Reset() {
	sr.value = uint8(InterruptDisable)
	sr.emulation = true
}

// Value returns the eight bit value of the register.
func (sr StatusRegister) Value() uint8 {
	return sr.value
}

// Load an eight bit value into the register. The emulation flag is unchanged.
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v
}

// Emulation returns true if the CPU is in emulation mode.
func (sr StatusRegister) Emulation() bool {
	return sr.emulation
}

// Set the specified flags.
func (sr *StatusRegister) Set(f Flag) {
	sr.value |= uint8(f)
}

// Clear the specified flags.
func (sr *StatusRegister) Clear(f Flag) {
	sr.value &^= uint8(f)
}

// SetFlag sets or clears the specified flags according to the on argument.
func (sr *StatusRegister) SetFlag(f Flag, on bool) {
	if on {
		sr.Set(f)
	} else {
		sr.Clear(f)
	}
}

func (sr StatusRegister) is(f Flag) bool {
	return sr.value&uint8(f) == uint8(f)
}

// IsCarry returns the state of the carry flag.
func (sr StatusRegister) IsCarry() bool {
	return sr.is(Carry)
}

// IsZero returns the state of the zero flag.
func (sr StatusRegister) IsZero() bool {
	return sr.is(Zero)
}

// IsInterruptDisable returns the state of the interrupt disable flag.
func (sr StatusRegister) IsInterruptDisable() bool {
	return sr.is(InterruptDisable)
}

// IsDecimal returns the state of the decimal mode flag.
func (sr StatusRegister) IsDecimal() bool {
	return sr.is(Decimal)
}

// IsOverflow returns the state of the overflow flag.
func (sr StatusRegister) IsOverflow() bool {
	return sr.is(Overflow)
}

// IsNegative returns the state of the negative flag.
func (sr StatusRegister) IsNegative() bool {
	return sr.is(Negative)
}

// IsBreak returns the state of the break flag. The flag only exists in
// emulation mode. In native mode the result is always false.
func (sr StatusRegister) IsBreak() bool {
	return sr.emulation && sr.is(Break)
}

// AccWidth returns the width of the accumulator. The accumulator is always
// eight bits in emulation mode.
func (sr StatusRegister) AccWidth() Width {
	if sr.emulation || sr.is(Acc8Bit) {
		return Bits8
	}
	return Bits16
}

// IndexWidth returns the width of the index registers. The index registers
// are always eight bits in emulation mode.
func (sr StatusRegister) IndexWidth() Width {
	if sr.emulation || sr.is(Index8Bit) {
		return Bits8
	}
	return Bits16
}

// Exchange swaps the carry flag with the emulation flag. On entering native
// mode the register widths are set to eight bits. On entering emulation mode
// the break flag is cleared.
func (sr *StatusRegister) Exchange() {
	carry := sr.is(Carry)
	sr.SetFlag(Carry, sr.emulation)
	sr.emulation = carry

	if sr.emulation {
		sr.Clear(Break)
	} else {
		sr.Set(Acc8Bit | Index8Bit)
	}
}
