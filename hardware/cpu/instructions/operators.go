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

// Operator defines which operation is performed by the opcode. Many opcodes
// can perform the same operation with different addressing modes.
type Operator int

// List of operators.
const (
	Nop Operator = iota
	Clc
	Cld
	Cli
	Clv
	Lda
	Rep
	Sec
	Sed
	Sei
	Sep
	Sta
	Stz
	Tcd
	Tdc
	Xce
)

var operatorNames = [...]string{
	Nop: "NOP",
	Clc: "CLC",
	Cld: "CLD",
	Cli: "CLI",
	Clv: "CLV",
	Lda: "LDA",
	Rep: "REP",
	Sec: "SEC",
	Sed: "SED",
	Sei: "SEI",
	Sep: "SEP",
	Sta: "STA",
	Stz: "STZ",
	Tcd: "TCD",
	Tdc: "TDC",
	Xce: "XCE",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[op]
}
