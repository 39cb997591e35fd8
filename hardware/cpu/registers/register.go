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

import "fmt"

// Width of a register or operand in use.
type Width int

// List of valid Width values.
const (
	Bits8 Width = iota
	Bits16
)

func (w Width) String() string {
	if w == Bits8 {
		return "8bit"
	}
	return "16bit"
}

// Bytes returns the number of bytes in a value of the width.
func (w Width) Bytes() int {
	if w == Bits8 {
		return 1
	}
	return 2
}

// Mask returns the value with any bits outside of the width removed.
func (w Width) Mask(v uint16) uint16 {
	if w == Bits8 {
		return v & 0x00ff
	}
	return v
}

// Register is a sixteen bit register.
type Register struct {
	value uint16
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint16, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("0x%04x", r.value)
}

// Label returns the canonical name for the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the full sixteen bit value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// LoadLow replaces the low byte of the register. The high byte is unchanged.
func (r *Register) LoadLow(val uint8) {
	r.value = (r.value & 0xff00) | uint16(val)
}

// LoadWidth loads the value using the width. For an eight bit width only the
// low byte is replaced.
func (r *Register) LoadWidth(val uint16, w Width) {
	if w == Bits8 {
		r.LoadLow(uint8(val))
		return
	}
	r.Load(val)
}

// IsZero checks if the register is zero at the specified width.
func (r Register) IsZero(w Width) bool {
	return w.Mask(r.value) == 0
}

// IsNegative checks the most significant bit of the register at the
// specified width.
func (r Register) IsNegative(w Width) bool {
	return IsNegative(r.value, w)
}

// IsNegative checks the most significant bit of a value at the specified
// width.
func IsNegative(v uint16, w Width) bool {
	if w == Bits8 {
		return v&0x0080 == 0x0080
	}
	return v&0x8000 == 0x8000
}
