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

// Package memory is the gateway through which the CPU reads code and data.
//
// The Memory type composes a memorymap.Model with the areas that back the
// address space. Currently the only area is the cartridge:
//
//	CPU ---- cpu bus ---- MEMORY ---- * ---- Cartridge
//	                                  |
//	                                  |---- (RAM)
//	                                  |
//	                                   ---- (registers)
//
// The asterisk indicates that the address used by the CPU is first translated
// by the Model. Areas shown in brackets are not yet emulated and the LoMem
// model leaves them unmapped.
//
// Memory implements the cpubus.Memory interface. Nothing in the memory
// package is ever written to after creation so it is safe for concurrent use
// by any number of goroutines.
package memory
