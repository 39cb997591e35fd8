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

// Package cartridge owns the ROM data of the inserted cartridge.
//
// The Cartridge type is a passive store of bytes. It knows nothing about how
// the bytes are mapped into the address space of the CPU. That is the job of
// the memorymap package. Data is indexed by the offset into the ROM image,
// after any copier header has been removed by the cartridgeloader package.
//
// The Info type holds the information found in the cartridge header. Create
// with NewInfo().
package cartridge
