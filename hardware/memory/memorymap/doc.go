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

// Package memorymap describes the 24-bit address space of the 65816 and how
// addresses in that space are translated to the memory areas that back them.
//
// An Address is a bank:offset location in the 24-bit space. The bank is the
// high byte and the offset is the low sixteen bits. Address arithmetic is
// performed on the full value and is never truncated to 24 bits. An address
// that has moved outside of the mapped space will be caught by the Model when
// it is used.
//
// The Model interface translates an Address into an Area and an offset
// relative to the start of that Area. The LoMem type is the only
// implementation at the moment. It maps the upper half of banks $00 to $3F to
// the cartridge ROM. Other banking arrangements (and other areas, such as RAM
// or device registers) can be added with new Model implementations without
// changing the Memory or CPU types.
//
// The Summary() function can be used to produce a printable overview of how a
// bank is mapped by a Model.
package memorymap
