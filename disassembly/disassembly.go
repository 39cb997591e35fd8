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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersnes/hardware/cpu"
	"github.com/jetsetilly/gophersnes/hardware/cpu/execution"
	"github.com/jetsetilly/gophersnes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersnes/logger"
)

// Entry is a disassembled instruction.
type Entry struct {
	Result execution.Result

	// the bytes of the instruction, opcode first
	Bytecode string

	// the status register after the instruction has been stepped
	Status string
}

func (e Entry) String() string {
	return e.Result.String()
}

// Disassembly is the list of instructions found by following the flow of the
// program.
type Disassembly struct {
	Origin  memorymap.Address
	Entries []Entry

	// the reason the disassembly stopped before the maximum number of entries
	// was reached. nil if the maximum was reached
	Halt error
}

// FromMemory disassembles no more than max instructions starting at the
// origin address. The CPU starts in the reset state.
func FromMemory(mem cpubus.Memory, origin memorymap.Address, max int) *Disassembly {
	dsm := &Disassembly{Origin: origin}

	mc := cpu.NewCPU(mem, origin)

	for len(dsm.Entries) < max {
		// widths in effect when the instruction is decoded
		acc := mc.Status.AccWidth()
		idx := mc.Status.IndexWidth()

		err := mc.ExecuteInstruction()

		// an unknown opcode is still a complete result and is listed
		if mc.LastResult.Final {
			dsm.Entries = append(dsm.Entries, Entry{
				Result:   mc.LastResult,
				Bytecode: bytecode(mem, mc.LastResult),
				Status:   mc.Status.String(),
			})
		}

		// check that the result is consistent with the definition
		if err == nil {
			err = mc.LastResult.IsValid(acc, idx)
		}

		if err != nil {
			dsm.Halt = err
			break // for loop
		}
	}

	logger.Logf(logger.Debug, "disassembly", "%d entries from %v", len(dsm.Entries), origin)

	return dsm
}

func bytecode(mem cpubus.Memory, r execution.Result) string {
	s := strings.Builder{}
	for i := 0; i < r.ByteCount; i++ {
		v, err := mem.Read(r.Address.Add(uint32(i)))
		if err != nil {
			break // for loop
		}
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%02x", v))
	}
	return s.String()
}
