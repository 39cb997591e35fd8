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

// Package logger is the central log for the emulator. There is only one
// central log for the entire application and it is accessed through the
// package level functions Log() and Logf().
//
// Every log request is made with a Permission. The Allow permission will
// always result in a new entry. The severity levels Trace, Debug, Info, Warn
// and Error are also permissions and result in a new entry only if the level
// is at or above the minimum level set with SetLevel().
//
//	logger.Logf(logger.Warn, "cpu", "STA not implemented (%v)", addr)
//
// Entries are identified by a tag, usually the name of the package or
// component making the log request. Identical entries made one after another
// are collapsed into a single entry with a repeat count.
//
// Entries can be echoed to an io.Writer as they are made with SetEcho(). An
// echoed entry is written with a timestamp, level, tag and the label of the
// goroutine that made the request. If the echo writer is a terminal then the
// output will be coloured according to the level of the entry.
package logger
