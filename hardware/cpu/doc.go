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

// Package cpu emulates the 65816 microprocessor. The CPU executes
// instructions according to the single byte value read from the address
// pointed to by the program counter. This single byte is the opcode and is
// looked up in the instruction table. The instruction definition for that
// opcode, together with the current width of the accumulator and index
// registers, decides how many operand bytes follow.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface and the address of the first instruction.
//
//	mc := cpu.NewCPU(mem, info.ResetVector)
//	err := mc.Run()
//
// Run() calls ExecuteInstruction() repeatedly until either an error occurs or
// Stop() is called. Stop() is safe to call from any goroutine. The request to
// stop is only noticed between instructions.
//
// Any error returned by ExecuteInstruction() is fatal. An unrecognised opcode
// or a read from an unmapped address means that all subsequent decoding would
// be wrong and so the emulation must not continue.
//
// Some recognised instructions have no effect yet (see the Unimplemented field
// of instructions.Definition). These instructions are decoded correctly and
// the program counter is advanced past them. A warning is written to the log.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package.
package cpu
