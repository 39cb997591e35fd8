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

package cpu

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/cpu/execution"
	"github.com/jetsetilly/gophersnes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersnes/hardware/cpu/registers"
	"github.com/jetsetilly/gophersnes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersnes/logger"
)

// UnknownOpcode is returned by ExecuteInstruction() when the opcode is not in
// the instruction table. The placeholders are the opcode and the address of
// the opcode.
const UnknownOpcode = "cpu: unknown opcode (%#02x) at %v"

// CPU implements the 65816. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	D      registers.Register
	Status registers.StatusRegister

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// the reset vector is kept so that Reset() can restore the PC
	resetVector memorymap.Address

	// last result. the Final field will be false if no instruction has been
	// executed since the last reset
	LastResult execution.Result

	// unimplemented operators that have already been reported
	unimplemented map[instructions.Operator]bool

	// stop is the only field that can be touched from outside the goroutine
	// that calls ExecuteInstruction()
	stop atomic.Bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is created in the reset state with the program counter set to the
// reset vector.
func NewCPU(mem cpubus.Memory, resetVector memorymap.Address) *CPU {
	mc := &CPU{
		mem:           mem,
		A:             registers.NewRegister(0, "A"),
		D:             registers.NewRegister(0, "D"),
		instructions:  instructions.GetDefinitions(),
		unimplemented: make(map[instructions.Operator]bool),
		resetVector:   resetVector,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.D.Label(), mc.D, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the reset vector.
// Any previous request to stop is forgotten.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC = registers.NewProgramCounter(mc.resetVector)
	mc.A.Load(0)
	mc.D.Load(0)
	mc.Status.Reset()
	mc.stop.Store(false)
}

// Stop requests that Run() returns at the next instruction boundary. It is
// safe to call from any goroutine.
func (mc *CPU) Stop() {
	mc.stop.Store(true)
}

// StopRequested returns true if Stop() has been called since the last reset.
func (mc *CPU) StopRequested() bool {
	return mc.stop.Load()
}

// Run executes instructions until Stop() is called or an error occurs. A
// return value of nil means that the CPU was stopped on request.
func (mc *CPU) Run() error {
	logger.Logf(logger.Debug, "cpu", "running from %v", mc.PC)

	for !mc.stop.Load() {
		if err := mc.ExecuteInstruction(); err != nil {
			return err
		}
	}

	logger.Logf(logger.Debug, "cpu", "stopped at %v", mc.PC)

	return nil
}

// Memviz writes a graph of the CPU registers in dot format.
func (mc *CPU) Memviz(w io.Writer) {
	type snapshot struct {
		PC        memorymap.Address
		A         uint16
		D         uint16
		P         uint8
		Emulation bool
		Last      string
	}

	memviz.Map(w, &snapshot{
		PC:        mc.PC.Address(),
		A:         mc.A.Value(),
		D:         mc.D.Value(),
		P:         mc.Status.Value(),
		Emulation: mc.Status.Emulation(),
		Last:      mc.LastResult.String(),
	})
}

// setTransferFlags sets the zero and negative flags from a register that has
// just been loaded. The width is the width of the transfer.
func (mc *CPU) setTransferFlags(r registers.Register, w registers.Width) {
	mc.Status.SetFlag(registers.Zero, r.IsZero(w))
	mc.Status.SetFlag(registers.Negative, r.IsNegative(w))
}

// ExecuteInstruction steps the CPU forward one instruction. The basic
// process when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operand (if any) according to the definition and the width of the
//     registers at the start of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//  4. advance the PC by the size of the instruction
//
// All errors are fatal.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	mc.LastResult.OpCode = opcode
	mc.LastResult.ByteCount = 1

	defn := mc.instructions[opcode]
	if defn == nil {
		mc.LastResult.Final = true
		return curated.Errorf(UnknownOpcode, opcode, mc.PC)
	}
	mc.LastResult.Defn = defn

	// operand width is decided by the status register before the instruction
	// has any effect. this matters for instructions that change the width
	acc := mc.Status.AccWidth()
	idx := mc.Status.IndexWidth()

	// value is the immediate data for the Immediate addressing mode
	var value uint16

	// address is the address for the Absolute addressing mode
	var address memorymap.Address

	n := defn.OperandBytes(acc, idx)
	operand := mc.PC.Address().Add(1)

	switch defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
		value, err = mc.mem.ReadValue(operand, n)
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		mc.LastResult.InstructionData = value
	case instructions.Absolute:
		address, err = mc.mem.ReadAddr(operand, n)
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		mc.LastResult.InstructionData = uint16(address)
	default:
		return curated.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}
	mc.LastResult.ByteCount += n

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Clc:
		mc.Status.Clear(registers.Carry)

	case instructions.Sec:
		mc.Status.Set(registers.Carry)

	case instructions.Cli:
		mc.Status.Clear(registers.InterruptDisable)

	case instructions.Sei:
		mc.Status.Set(registers.InterruptDisable)

	case instructions.Cld:
		mc.Status.Clear(registers.Decimal)

	case instructions.Sed:
		mc.Status.Set(registers.Decimal)

	case instructions.Clv:
		mc.Status.Clear(registers.Overflow)

	case instructions.Rep:
		mc.Status.Clear(registers.Flag(value))

	case instructions.Sep:
		mc.Status.Set(registers.Flag(value))

	case instructions.Tcd:
		// transfers to and from the direct page register are always sixteen
		// bits
		mc.D.Load(mc.A.Value())
		mc.setTransferFlags(mc.D, registers.Bits16)

	case instructions.Tdc:
		mc.A.Load(mc.D.Value())
		mc.setTransferFlags(mc.A, registers.Bits16)

	case instructions.Lda:
		mc.A.LoadWidth(value, acc)
		mc.setTransferFlags(mc.A, acc)

	case instructions.Xce:
		mc.Status.Exchange()

	case instructions.Sta, instructions.Stz:
		// the write path is not yet emulated. the instruction has been
		// decoded and the PC will be advanced correctly

	default:
		return curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// warn once for each unimplemented operator
	if defn.Unimplemented && !mc.unimplemented[defn.Operator] {
		mc.unimplemented[defn.Operator] = true
		logger.Logf(logger.Warn, "cpu", "%s not implemented (%v)", defn.Operator, mc.LastResult)
	}

	mc.PC.Advance(mc.LastResult.Size())
	mc.LastResult.Final = true

	if logger.Allowed(logger.Trace) {
		logger.Log(logger.Trace, "cpu", mc.LastResult)
	}

	return nil
}
