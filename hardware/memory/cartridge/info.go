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
	"unicode/utf8"

	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
)

// Locations of header fields in the ROM image.
const (
	TitleOffset = 0x7fc0
	TitleLength = 21

	ResetVectorOffset = 0x7ffc
)

// InvalidTitle is returned by NewInfo() when the title field of the header is
// not valid text.
const InvalidTitle = "cartridge: title is not valid text (% x)"

// Info is the information in the cartridge header that is needed to start the
// machine.
type Info struct {
	// the title is stored verbatim, including any padding
	Title string

	// the address in bank zero of the first instruction to execute
	ResetVector memorymap.Address
}

// NewInfo reads the header fields from the cartridge.
func NewInfo(cart *Cartridge) (Info, error) {
	var info Info

	t, err := cart.Bytes(TitleOffset, TitleLength)
	if err != nil {
		return info, curated.Errorf("cartridge: title: %v", err)
	}
	if !utf8.Valid(t) {
		return info, curated.Errorf(InvalidTitle, t)
	}
	info.Title = string(t)

	v, err := cart.Bytes(ResetVectorOffset, 2)
	if err != nil {
		return info, curated.Errorf("cartridge: reset vector: %v", err)
	}
	info.ResetVector = memorymap.NewAddress(0, uint16(v[0])|uint16(v[1])<<8)

	return info, nil
}

func (info Info) String() string {
	return fmt.Sprintf("%q reset=%v", info.Title, info.ResetVector)
}
