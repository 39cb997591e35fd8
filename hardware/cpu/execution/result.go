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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersnes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
)

// Result records the decoding of an instruction.
type Result struct {
	// the address at which the instruction began
	Address memorymap.Address

	// the definition of the instruction. will be nil if the opcode was not
	// recognised or if the Result has been reset
	Defn *instructions.Definition

	// the opcode. valid even if Defn is nil
	OpCode uint8

	// the number of bytes read during decode, including the opcode
	ByteCount int

	// the instruction operand. the number of meaningful bytes is ByteCount-1
	InstructionData uint16

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a disassembly of the instruction.
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(r.Address.String())
	s.WriteString(" ")

	if r.Defn == nil {
		s.WriteString(fmt.Sprintf("??? (%02x)", r.OpCode))
		return s.String()
	}

	s.WriteString(r.Defn.Mnemonic())

	var data string
	switch r.ByteCount {
	case 2:
		data = fmt.Sprintf("$%02x", r.InstructionData)
	case 3:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		data = fmt.Sprintf("#%s", data)
	}

	if data != "" {
		s.WriteString(" ")
		s.WriteString(data)
	}

	if r.Defn.Unimplemented {
		s.WriteString(" [unimplemented]")
	}

	return s.String()
}

// Size returns the number of bytes occupied by the instruction.
func (r Result) Size() memorymap.Size {
	return memorymap.Size(r.ByteCount)
}
