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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gophersnes/cartridgeloader"
	"github.com/jetsetilly/gophersnes/curated"
)

// OutOfRange is returned when an offset lies beyond the end of the ROM data.
// The placeholders are the first offset requested, the number of bytes
// requested and the size of the ROM.
const OutOfRange = "cartridge: offset %#06x (+%d) is beyond end of ROM (%d bytes)"

// Cartridge owns the ROM data. The data is never modified after the Cartridge
// has been created so it is safe to read from more than one goroutine.
type Cartridge struct {
	Filename string
	Hash     string

	data []byte
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data in the loader is not copied. The loader must have been
// successfully loaded with the Load() function.
func NewCartridge(cartload cartridgeloader.Loader) *Cartridge {
	return &Cartridge{
		Filename: cartload.Filename,
		Hash:     cartload.Hash,
		data:     cartload.Data,
	}
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s (%d bytes)", cart.Filename, len(cart.data))
}

// Size returns the number of bytes in the ROM.
func (cart *Cartridge) Size() int {
	return len(cart.data)
}

// Byte returns the byte at the offset.
func (cart *Cartridge) Byte(offset uint32) (uint8, error) {
	if uint64(offset) >= uint64(len(cart.data)) {
		return 0, curated.Errorf(OutOfRange, offset, 1, len(cart.data))
	}
	return cart.data[offset], nil
}

// Bytes returns n bytes starting at offset. The returned slice refers to the
// ROM data and must not be modified.
func (cart *Cartridge) Bytes(offset uint32, n int) ([]byte, error) {
	end := uint64(offset) + uint64(n)
	if n < 0 || end > uint64(len(cart.data)) {
		return nil, curated.Errorf(OutOfRange, offset, n, len(cart.data))
	}
	return cart.data[offset:end], nil
}
