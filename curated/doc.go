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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages that want to expose an error condition to callers
// do so by exporting the pattern as a const string. For example:
//
//	const OutOfRange = "memorymap: address out of range (%v)"
//
//	e := curated.Errorf(OutOfRange, addr)
//
//	if curated.Is(e, OutOfRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("memory: %v", e)
//
//	if curated.Has(f, OutOfRange) {
//		fmt.Println("true")
//	}
//
// In this example a call to Is(f, OutOfRange) would return false because f
// was created with the pattern "memory: %v".
//
// The Error() function normalises the error chain, removing duplicate adjacent
// parts. Chains are thought of as being composed of parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan). A function can therefore wrap an error with its own
// prefix without worrying whether the callee has already done so. The chain
//
//	cpu: cpu: unknown opcode
//
// will be printed as
//
//	cpu: unknown opcode
//
// Curated errors also implement the Unwrap() []error method so that the
// errors.Is() and errors.As() functions in the standard library can see
// through to any error values used as placeholders.
package curated
