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

package cpu_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/cpu"
	"github.com/jetsetilly/gophersnes/hardware/cpu/registers"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersnes/logger"
	"github.com/jetsetilly/gophersnes/test"
)

const origin = 0x8000

// mockMem is bank zero only. addresses outside of bank zero are unmapped
// unless wrap is true, in which case every bank is a mirror of bank zero
type mockMem struct {
	internal []uint8
	wrap     bool
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, memorymap.BankSize)}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[int(origin)+i] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address memorymap.Address) (uint8, error) {
	if address.Bank() != 0 && !mem.wrap {
		return 0, curated.Errorf(memorymap.OutOfRange, "mock", address)
	}
	return mem.internal[address.Offset()], nil
}

func (mem *mockMem) ReadValue(address memorymap.Address, size int) (uint16, error) {
	var v uint16
	for i := 0; i < size; i++ {
		b, err := mem.Read(address.Add(uint32(i)))
		if err != nil {
			return 0, err
		}
		v |= uint16(b) << (8 * i)
	}
	return v, nil
}

func (mem *mockMem) ReadAddr(address memorymap.Address, size int) (memorymap.Address, error) {
	v, err := mem.ReadValue(address, size)
	return memorymap.Address(v), err
}

func newCPU(bytes ...uint8) (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mem.putInstructions(origin, bytes...)
	return cpu.NewCPU(mem, memorymap.NewAddress(0, origin)), mem
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	acc := mc.Status.AccWidth()
	idx := mc.Status.IndexWidth()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid(acc, idx)
	if err != nil {
		t.Fatal(err)
	}
}

// native mode with the given accumulator width
func native(t *testing.T, mc *cpu.CPU, acc registers.Width) {
	t.Helper()
	mc.Status.Clear(registers.Carry)
	mc.Status.Exchange()
	if acc == registers.Bits16 {
		mc.Status.Clear(registers.Acc8Bit)
	}
	test.DemandEquality(t, mc.Status.AccWidth(), acc)
}

func TestReset(t *testing.T) {
	mc, _ := newCPU()
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin))
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.D.Value(), 0)
	test.ExpectEquality(t, mc.Status.Value(), 0x04)
	test.ExpectSuccess(t, mc.Status.Emulation())
	test.ExpectFailure(t, mc.LastResult.Final)
	test.ExpectEquality(t, mc.String(), "PC=$00:8000 A=0x0000 D=0x0000 P=nv-bdIzc E")
}

func TestStatusInstructions(t *testing.T) {
	// SEC; CLC; CLI; SEI; SED; CLD; SEP #$40; CLV; NOP
	mc, _ := newCPU(0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xe2, 0x40, 0xb8, 0xea)

	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC E")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc E")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc E")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc E")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIzc E")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc E")
	step(t, mc) // SEP #$40
	test.ExpectEquality(t, mc.Status.String(), "nV-bdIzc E")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc E")
	step(t, mc) // NOP
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc E")

	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin+10))
}

func TestREP(t *testing.T) {
	// SEP #$ff; REP #$c3
	mc, _ := newCPU(0xe2, 0xff, 0xc2, 0xc3)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Value(), 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Value(), 0x3c)
	test.ExpectEquality(t, mc.LastResult.InstructionData, 0xc3)
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin+4))
}

func TestPCAdvance(t *testing.T) {
	// CLC; SEI; LDA #$05
	mc, _ := newCPU(0x18, 0x78, 0xa9, 0x05)
	start := mc.PC.Address()

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), start.Add(1))
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), start.Add(2))
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), start.Add(4))
	test.ExpectEquality(t, mc.A.Value(), 0x05)
}

func TestLDA8Bit(t *testing.T) {
	// LDA #$56; LDA #$80; LDA #$00
	mc, _ := newCPU(0xa9, 0x56, 0xa9, 0x80, 0xa9, 0x00)
	mc.A.Load(0x1234)

	// high byte is preserved
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x1256)
	test.ExpectFailure(t, mc.Status.IsNegative())
	test.ExpectFailure(t, mc.Status.IsZero())

	// negative at eight bits
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x1280)
	test.ExpectSuccess(t, mc.Status.IsNegative())
	test.ExpectFailure(t, mc.Status.IsZero())

	// zero is decided by the loaded value, not the whole register
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x1200)
	test.ExpectFailure(t, mc.Status.IsNegative())
	test.ExpectSuccess(t, mc.Status.IsZero())
}

func TestLDA16Bit(t *testing.T) {
	// LDA #$0080; LDA #$8000; LDA #$0000
	mc, _ := newCPU(0xa9, 0x80, 0x00, 0xa9, 0x00, 0x80, 0xa9, 0x00, 0x00)
	native(t, mc, registers.Bits16)
	mc.A.Load(0xffff)

	// bit 15 is clear so not negative
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0080)
	test.ExpectFailure(t, mc.Status.IsNegative())
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin+3))

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x8000)
	test.ExpectSuccess(t, mc.Status.IsNegative())
	test.ExpectFailure(t, mc.Status.IsZero())

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0000)
	test.ExpectFailure(t, mc.Status.IsNegative())
	test.ExpectSuccess(t, mc.Status.IsZero())
	test.ExpectEquality(t, mc.LastResult.String(), "$00:8006 LDA #$0000")
}

func TestLDAWidthChange(t *testing.T) {
	// REP #$20; LDA #$1234; SEP #$20; LDA #$ff
	mc, _ := newCPU(0xc2, 0x20, 0xa9, 0x34, 0x12, 0xe2, 0x20, 0xa9, 0xff)
	native(t, mc, registers.Bits8)

	step(t, mc)
	test.ExpectEquality(t, mc.Status.AccWidth(), registers.Bits16)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x1234)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.AccWidth(), registers.Bits8)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x12ff)
	test.ExpectSuccess(t, mc.Status.IsNegative())
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin+9))
}

func TestTransfers(t *testing.T) {
	// TCD; TDC
	mc, _ := newCPU(0x5b, 0x7b, 0x5b)

	// the transfer is sixteen bits even in emulation mode
	mc.A.Load(0x8000)
	step(t, mc)
	test.ExpectEquality(t, mc.D.Value(), 0x8000)
	test.ExpectSuccess(t, mc.Status.IsNegative())
	test.ExpectFailure(t, mc.Status.IsZero())

	mc.A.Load(0x0000)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x8000)
	test.ExpectSuccess(t, mc.Status.IsNegative())

	// low byte zero but high byte not. not zero at sixteen bits
	mc.A.Load(0x0100)
	step(t, mc)
	test.ExpectEquality(t, mc.D.Value(), 0x0100)
	test.ExpectFailure(t, mc.Status.IsZero())
	test.ExpectFailure(t, mc.Status.IsNegative())
}

func TestXCE(t *testing.T) {
	// XCE; SEC; XCE
	mc, _ := newCPU(0xfb, 0x38, 0xfb)

	// emulation to native with carry clear
	mc.Status.Clear(registers.Acc8Bit | registers.Index8Bit)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Emulation())
	test.ExpectSuccess(t, mc.Status.IsCarry())
	test.ExpectEquality(t, mc.Status.Value()&0x30, 0x30)

	// native to emulation with carry set
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Emulation())
	test.ExpectFailure(t, mc.Status.IsCarry())
	test.ExpectEquality(t, mc.Status.Value()&0x10, 0x00)
}

func TestUnimplemented(t *testing.T) {
	// STA $2100; STZ $2101; CLC; STA $2102
	mc, _ := newCPU(0x8d, 0x00, 0x21, 0x9c, 0x01, 0x21, 0x18, 0x8d, 0x02, 0x21)
	mc.A.Load(0x1234)
	status := mc.Status.Value()

	logger.Clear()

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin+3))
	test.ExpectEquality(t, mc.LastResult.InstructionData, 0x2100)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin+6))
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin+7))
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin+10))

	// nothing but the PC (and the carry flag from CLC) has changed
	test.ExpectEquality(t, mc.A.Value(), 0x1234)
	test.ExpectEquality(t, mc.Status.Value(), status&^0x01)

	// one warning for each operator, even though STA was executed twice
	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, strings.Count(s.String(), "STA not implemented"), 1)
	test.ExpectEquality(t, strings.Count(s.String(), "STZ not implemented"), 1)
}

func TestUnknownOpcode(t *testing.T) {
	mc, _ := newCPU(0x18, 0xff)
	step(t, mc)

	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "0xff"))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "$00:8001"))

	// PC has not moved
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, origin+1))
	test.ExpectSuccess(t, mc.LastResult.Final)
	test.ExpectEquality(t, mc.LastResult.OpCode, 0xff)

	// Run() ends with the same error
	mc.Reset()
	err = mc.Run()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode))
}

func TestUnmappedRead(t *testing.T) {
	// LDA with operand beyond the end of bank zero
	mc, mem := newCPU()
	mem.putInstructions(0xffff, 0xa9)
	mc.PC.Load(memorymap.NewAddress(0, 0xffff))

	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memorymap.OutOfRange))

	// opcode itself unmapped
	mc.PC.Load(memorymap.NewAddress(1, 0x8000))
	err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memorymap.OutOfRange))
}

func TestStop(t *testing.T) {
	// infinite stream of NOPs
	mem := newMockMem()
	mem.wrap = true
	for i := range mem.internal {
		mem.internal[i] = 0xea
	}
	mc := cpu.NewCPU(mem, memorymap.NewAddress(0, 0x0000))

	// a stop requested before Run() is honoured immediately
	mc.Stop()
	test.ExpectSuccess(t, mc.StopRequested())
	test.ExpectSuccess(t, mc.Run())
	test.ExpectEquality(t, mc.PC.Address(), memorymap.NewAddress(0, 0x0000))

	mc.Reset()
	test.ExpectFailure(t, mc.StopRequested())

	done := make(chan error)
	go func() {
		done <- mc.Run()
	}()

	mc.Stop()

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("cpu did not stop")
	}
}

func TestMemviz(t *testing.T) {
	mc, _ := newCPU(0x18)
	step(t, mc)

	s := &strings.Builder{}
	mc.Memviz(s)
	test.ExpectSuccess(t, strings.Contains(s.String(), "digraph"))
}
