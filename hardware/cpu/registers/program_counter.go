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

import "github.com/jetsetilly/gophersnes/hardware/memory/memorymap"

// ProgramCounter represents the PC register of the 65816. The value is a full
// bank:offset address.
type ProgramCounter struct {
	value memorymap.Address
}

// NewProgramCounter is the preferred method of initialisation for ProgramCounter.
func NewProgramCounter(val memorymap.Address) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns an identifying string for the PC.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return pc.value.String()
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() memorymap.Address {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val memorymap.Address) {
	pc.value = val
}

// Advance the PC beyond an instruction of the specified size.
func (pc *ProgramCounter) Advance(sz memorymap.Size) {
	pc.value = pc.value.Advance(sz)
}
