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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
)

// BadSize is returned by the multi-byte read functions when the size is not
// supported.
const BadSize = "memory: unsupported read size (%d)"

// UnknownArea is returned when the model maps an address to an area that has
// no backing store.
const UnknownArea = "memory: no backing for %v area (%v)"

// Memory is the memory of the machine as seen by the CPU.
type Memory struct {
	model memorymap.Model
	cart  *cartridge.Cartridge
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(model memorymap.Model, cart *cartridge.Cartridge) *Memory {
	return &Memory{
		model: model,
		cart:  cart,
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%s: %v", mem.model.Label(), mem.cart)
}

// Model returns the memory model in use.
func (mem *Memory) Model() memorymap.Model {
	return mem.model
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address memorymap.Address) (uint8, error) {
	offset, area, err := mem.model.Map(address)
	if err != nil {
		return 0, err
	}

	switch area {
	case memorymap.Cartridge:
		v, err := mem.cart.Byte(offset)
		if err != nil {
			return 0, curated.Errorf("memory: %v: %v", address, err)
		}
		return v, nil
	}

	return 0, curated.Errorf(UnknownArea, area, address)
}

// ReadValue implements the cpubus.Memory interface.
func (mem *Memory) ReadValue(address memorymap.Address, size int) (uint16, error) {
	if size < 1 || size > 2 {
		return 0, curated.Errorf(BadSize, size)
	}

	var v uint16
	for i := 0; i < size; i++ {
		b, err := mem.Read(address.Add(uint32(i)))
		if err != nil {
			return 0, err
		}
		v |= uint16(b) << (8 * i)
	}

	return v, nil
}

// ReadAddr implements the cpubus.Memory interface.
func (mem *Memory) ReadAddr(address memorymap.Address, size int) (memorymap.Address, error) {
	v, err := mem.ReadValue(address, size)
	if err != nil {
		return 0, err
	}
	return memorymap.Address(v), nil
}
