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

// Package instructions defines the instruction set of the 65816. Only the
// opcodes in the table returned by GetDefinitions() are recognised by the CPU.
//
// Adding an instruction is a matter of adding an Operator, a row to the table
// and a case to the operator switch in the cpu package.
package instructions

import (
	"fmt"

	"github.com/jetsetilly/gophersnes/hardware/cpu/registers"
	"github.com/jetsetilly/gophersnes/hardware/memory/memorymap"
)

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate
	Absolute
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Immediate:
		return "immediate"
	case Absolute:
		return "absolute"
	}
	return "unknown"
}

// OperandSize describes the number of bytes that follow the opcode. Some
// instructions have operands whose size depends on the width of the
// accumulator or index registers at the time of execution.
type OperandSize int

// List of operand sizes.
const (
	NoOperand OperandSize = iota
	Byte
	Word
	AccWidth
	IndexWidth
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "read"
	case Write:
		return "write"
	case RMW:
		return "rmw"
	}
	return "unknown"
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Operand        OperandSize
	Effect         EffectCategory

	// instructions that are decoded correctly but whose effect has not yet
	// been emulated. the program counter is advanced correctly but no other
	// state is changed
	Unimplemented bool
}

// Mnemonic returns the assembler mnemonic for the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// OperandBytes returns the number of bytes in the operand for the specified
// accumulator and index register widths.
func (defn Definition) OperandBytes(acc registers.Width, idx registers.Width) int {
	switch defn.Operand {
	case Byte:
		return 1
	case Word:
		return 2
	case AccWidth:
		return acc.Bytes()
	case IndexWidth:
		return idx.Bytes()
	}
	return 0
}

// Bytes returns the total size of the instruction, including the opcode, for
// the specified accumulator and index register widths.
func (defn Definition) Bytes(acc registers.Width, idx registers.Width) memorymap.Size {
	return memorymap.Size(1 + defn.OperandBytes(acc, idx))
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	s := fmt.Sprintf("%02x %s [mode=%s effect=%s]", defn.OpCode, defn.Mnemonic(), defn.AddressingMode, defn.Effect)
	if defn.Unimplemented {
		s = fmt.Sprintf("%s unimplemented", s)
	}
	return s
}
