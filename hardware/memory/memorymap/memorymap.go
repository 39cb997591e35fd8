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

// Area represents the different areas of memory that an Address can be mapped
// to. New areas (RAM, device registers) are added to this list as they are
// emulated.
type Area int

func (a Area) String() string {
	switch a {
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// List of valid Area values.
const (
	Undefined Area = iota
	Cartridge
)

// OutOfRange is the error pattern used by Model implementations when an
// address does not map to any area. The first placeholder is the label of the
// model and the second placeholder is the address.
const OutOfRange = "memorymap: address out of range for %s (%v)"

// Model implementations translate a raw address into an area and an offset
// relative to the start of that area.
type Model interface {
	// Label returns a short name for the banking arrangement
	Label() string

	// Map returns the offset in the area and the area itself. An error is
	// returned if the address is not mapped. The error should be created with
	// the OutOfRange pattern.
	Map(address Address) (uint32, Area, error)
}
