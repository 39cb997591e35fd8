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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing how every address in
// the bank is mapped by the model. Unmapped addresses are reported as the
// undefined area.
func Summary(model Model, bank uint8) string {
	area := func(a Address) Area {
		_, ar, err := model.Map(a)
		if err != nil {
			return Undefined
		}
		return ar
	}

	s := strings.Builder{}

	start := NewAddress(bank, 0)
	current := area(start)

	// for every address in the bank...
	for o := uint32(1); o < BankSize; o++ {
		a := start.Add(o)

		// ...if the area has changed print out the summary line and update
		// current area and start address of the area
		if ar := area(a); ar != current {
			s.WriteString(fmt.Sprintf("%v -> %v\t%s\n", start, a.Add(^uint32(0)), current))
			current = ar
			start = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%v -> %v\t%s\n", start, NewAddress(bank, 0xffff), current))

	return s.String()
}
