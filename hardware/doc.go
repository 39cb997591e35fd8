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

// Package hardware is the base package for the console emulation. The
// Console type assembles the cartridge, the memory model, the memory and the
// CPU, in that order, and runs the CPU on a goroutine of its own.
//
// Run() returns nil only when the CPU was asked to stop, either by a call to
// Stop() or by the cancellation of the context passed to Run(). Any other
// return is an error and should be considered fatal.
package hardware
