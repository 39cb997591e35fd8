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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gophersnes/cartridgeloader"
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/disassembly"
	"github.com/jetsetilly/gophersnes/hardware/cpu"
	"github.com/jetsetilly/gophersnes/hardware/memory"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersnes/test"
)

var program = []uint8{
	0xa9, 0x05, // LDA #$05
	0x18,       // CLC
	0xfb,       // XCE
	0xc2, 0x20, // REP #$20
	0xa9, 0x34, 0x12, // LDA #$1234
	0x8d, 0x00, 0x21, // STA $2100
	0xff,
}

func newMemory() *memory.Memory {
	data := make([]byte, 0x8000)
	copy(data, program)
	cart := cartridge.NewCartridge(cartridgeloader.Loader{Filename: "test", Data: data})
	return memory.NewMemory(memorymap.NewLoMem(), cart)
}

func TestFlow(t *testing.T) {
	dsm := disassembly.FromMemory(newMemory(), memorymap.NewAddress(0, 0x8000), 100)

	test.DemandEquality(t, len(dsm.Entries), 7)
	test.ExpectSuccess(t, curated.Is(dsm.Halt, cpu.UnknownOpcode))

	// the second LDA is only three bytes long if the width change made by REP
	// has been followed
	test.ExpectEquality(t, dsm.Entries[4].String(), "$00:8006 LDA #$1234")
	test.ExpectEquality(t, dsm.Entries[4].Bytecode, "a9 34 12")
	test.ExpectEquality(t, dsm.Entries[0].Bytecode, "a9 05")
	test.ExpectEquality(t, dsm.Entries[6].String(), "$00:800C ??? (ff)")
	test.ExpectEquality(t, dsm.Entries[2].Status, "nvMXdIzC e")

	tw := &test.CompareWriter{}
	dsm.Write(tw, disassembly.WriteAttr{})
	expected := "$00:8000 LDA #$05\n" +
		"$00:8002 CLC\n" +
		"$00:8003 XCE\n" +
		"$00:8004 REP #$20\n" +
		"$00:8006 LDA #$1234\n" +
		"$00:8009 STA $2100 [unimplemented]\n" +
		"$00:800C ??? (ff)\n" +
		"halted: cpu: unknown opcode (0xff) at $00:800C\n"
	test.ExpectSuccess(t, tw.Compare(expected), tw.String())
}

func TestMaximum(t *testing.T) {
	dsm := disassembly.FromMemory(newMemory(), memorymap.NewAddress(0, 0x8000), 2)
	test.ExpectEquality(t, len(dsm.Entries), 2)
	test.ExpectSuccess(t, dsm.Halt == nil)

	tw := &test.CompareWriter{}
	dsm.Write(tw, disassembly.WriteAttr{ByteCode: true, Status: true})
	test.ExpectSuccess(t, tw.Contains("a9 05"), tw.String())
	test.ExpectSuccess(t, tw.Contains("; nv-bdIzc E"), tw.String())
}

func TestUnmapped(t *testing.T) {
	dsm := disassembly.FromMemory(newMemory(), memorymap.NewAddress(0, 0x0000), 10)
	test.ExpectEquality(t, len(dsm.Entries), 0)
	test.ExpectSuccess(t, curated.Has(dsm.Halt, memorymap.OutOfRange))
}
