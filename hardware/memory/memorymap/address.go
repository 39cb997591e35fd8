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

package memorymap

import "fmt"

// BankSize is the number of bytes in each bank of the address space.
const BankSize = 0x10000

// Address is a location in the bank:offset address space. Only the lower 24
// bits are meaningful but arithmetic is never truncated.
type Address uint32

// NewAddress creates an Address from a bank and an offset in that bank.
func NewAddress(bank uint8, offset uint16) Address {
	return Address(uint32(bank)*BankSize + uint32(offset))
}

// Bank returns the bank component of the address. The result can be greater
// than $FF if address arithmetic has moved beyond the 24-bit space.
func (a Address) Bank() uint32 {
	return uint32(a) / BankSize
}

// Offset returns the offset component of the address.
func (a Address) Offset() uint16 {
	return uint16(a & 0xffff)
}

// Add returns a new Address n bytes after the address.
func (a Address) Add(n uint32) Address {
	return a + Address(n)
}

// Advance returns a new Address beyond an instruction of the specified size.
func (a Address) Advance(sz Size) Address {
	return a + Address(sz)
}

// String renders the address as $bank:offset.
func (a Address) String() string {
	return fmt.Sprintf("$%02X:%04X", a.Bank(), a.Offset())
}

// Size is the number of bytes occupied by an instruction, including the
// opcode byte.
type Size uint32
