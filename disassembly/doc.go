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

// Package disassembly lists the instructions of a program by following the
// flow from a start address.
//
// A private CPU instance is used to step through the program. Following the
// flow, rather than decoding every byte in the cartridge, matters on the 65816
// because the size of an immediate operand depends on the status register at
// the time of the instruction. A REP or SEP earlier in the program changes how
// the bytes that follow are to be read.
//
// No instruction in the current set writes to memory so stepping through the
// program has no effect outside of the private CPU.
package disassembly
