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

// Package registers implements the registers of the 65816 CPU.
//
// The Register type is used for the sixteen bit general purpose registers
// (the accumulator and the direct page register). The width of the register
// in use at any moment is decided by the StatusRegister and is supplied to
// the functions that need it:
//
//	a.LoadLow(0x80)
//	sr.SetFlag(registers.Negative, a.IsNegative(sr.AccWidth()))
//
// The StatusRegister holds both the eight status bits and the emulation flag.
// Bits four and five mean different things depending on the emulation flag so
// all reads of those bits go through the mode-aware functions of the
// StatusRegister type.
package registers
