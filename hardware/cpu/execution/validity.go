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

package execution

import (
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersnes/hardware/cpu/registers"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition and the register widths that
// were in effect when the instruction was decoded.
func (r Result) IsValid(acc registers.Width, idx registers.Width) error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no definition")
	}

	// anything that writes or modifies memory needs an address to do so
	if r.Defn.Effect != instructions.Read && r.Defn.AddressingMode != instructions.Absolute {
		return curated.Errorf("cpu: %s effect without an address (%s mode)", r.Defn.Effect, r.Defn.AddressingMode)
	}

	if r.Size() != r.Defn.Bytes(acc, idx) {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes(acc, idx))
	}

	return nil
}
