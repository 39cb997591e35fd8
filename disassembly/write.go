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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Status   bool
}

// Write the entire disassembly to io.Writer. The reason for halting is written
// after the last entry.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	for i := range dsm.Entries {
		dsm.WriteLine(output, attr, &dsm.Entries[i])
	}

	if dsm.Halt != nil {
		fmt.Fprintf(output, "halted: %v\n", dsm.Halt)
	}
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) {
	if e == nil {
		return
	}

	if attr.ByteCode {
		// longest instruction is four bytes
		fmt.Fprintf(output, "%-11s ", e.Bytecode)
	}

	fmt.Fprint(output, e.Result.String())

	if attr.Status {
		fmt.Fprintf(output, "  ; %s", e.Status)
	}

	fmt.Fprint(output, "\n")
}
