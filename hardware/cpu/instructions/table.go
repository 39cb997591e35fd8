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

package instructions

var definitions = []Definition{
	{OpCode: 0x18, Operator: Clc, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0x38, Operator: Sec, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0x58, Operator: Cli, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0x5b, Operator: Tcd, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0x78, Operator: Sei, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0x7b, Operator: Tdc, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0x8d, Operator: Sta, AddressingMode: Absolute, Operand: Word, Effect: Write, Unimplemented: true},
	{OpCode: 0x9c, Operator: Stz, AddressingMode: Absolute, Operand: Word, Effect: Write, Unimplemented: true},
	{OpCode: 0xa9, Operator: Lda, AddressingMode: Immediate, Operand: AccWidth, Effect: Read},
	{OpCode: 0xb8, Operator: Clv, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0xc2, Operator: Rep, AddressingMode: Immediate, Operand: Byte, Effect: Read},
	{OpCode: 0xd8, Operator: Cld, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0xe2, Operator: Sep, AddressingMode: Immediate, Operand: Byte, Effect: Read},
	{OpCode: 0xea, Operator: Nop, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0xf8, Operator: Sed, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
	{OpCode: 0xfb, Operator: Xce, AddressingMode: Implied, Operand: NoOperand, Effect: Read},
}

// GetDefinitions returns the table of instruction definitions indexed by
// opcode. Opcodes that are not recognised have a nil entry.
func GetDefinitions() []*Definition {
	tbl := make([]*Definition, 256)
	for i := range definitions {
		d := definitions[i]
		tbl[d.OpCode] = &d
	}
	return tbl
}
