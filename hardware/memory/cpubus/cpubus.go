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

// Package cpubus defines the view of memory as seen by the CPU.
package cpubus

import "github.com/jetsetilly/gophersnes/hardware/memory/memorymap"

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are raw bank:offset addresses. It is the responsibility of
// the implementation to map the address to the correct memory area, meaning
// that the CPU need not care which part of memory it is reading from.
//
// Multi-byte reads are little-endian. The size argument is the number of
// bytes to read and must be one or two.
//
// Implementations must be safe for concurrent reads.
type Memory interface {
	Read(address memorymap.Address) (uint8, error)
	ReadValue(address memorymap.Address, size int) (uint16, error)
	ReadAddr(address memorymap.Address, size int) (memorymap.Address, error)
}
