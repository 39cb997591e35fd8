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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes).
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that when specified, puts the
// program into a different mode of operation. The first sub-mode in the list
// is the default and is selected if the first argument is not the name of a
// mode. For simplicity, all sub-mode comparisons are case insensitive.
//
// Once the mode has been decided, NewMode() and Parse() are called again to
// process the arguments for that mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		md.AdditionalHelp("rom file required")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		if len(md.RemainingArgs()) != 1 {
//			md.PrintUsage()
//		}
//	}
//
// Help messages for the "-help" flag are printed to the Output field
// automatically.
package modalflag
