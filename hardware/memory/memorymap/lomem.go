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

import "github.com/jetsetilly/gophersnes/curated"

// Boundaries of the LoMem model.
const (
	LoMemFirstBank = 0x00
	LoMemLastBank  = 0x3f

	// cartridge data is mapped to the upper half of every bank
	LoMemOriginCart = 0x8000
	LoMemMemtopCart = 0xffff
)

// LoMem is the low-memory banking scheme.
//
// Only banks $00 to $3F are mapped. In each of those banks, offsets $8000 to
// $FFFF are mapped to the cartridge. Offsets below $8000 are reserved for RAM
// and registers, none of which are emulated yet, and are unmapped.
type LoMem struct{}

// NewLoMem is the preferred method of initialisation for the LoMem type.
func NewLoMem() *LoMem {
	return &LoMem{}
}

// Label implements the Model interface.
func (m *LoMem) Label() string {
	return "LoMem"
}

// Map implements the Model interface.
func (m *LoMem) Map(address Address) (uint32, Area, error) {
	bank := address.Bank()
	offset := uint32(address.Offset())

	if bank > LoMemLastBank {
		return 0, Undefined, curated.Errorf(OutOfRange, m.Label(), address)
	}

	if offset < LoMemOriginCart {
		return 0, Undefined, curated.Errorf(OutOfRange, m.Label(), address)
	}

	return bank*BankSize + offset - LoMemOriginCart, Cartridge, nil
}
