// This file is part of Gopher8088.
//
// Gopher8088 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8088 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8088.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package from the standard library so that
// a command line can be split into modes. Each mode has its own set of flags
// and, optionally, a list of sub-modes.
//
// Arguments are supplied once with NewArgs() and then consumed one layer at a
// time with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "HARTE")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "STEP":
//		md.NewMode()
//		load := md.AddAddress("load", modalflag.Address{Segment: 0x0100}, "load address")
//		...
//	}
//
// The first sub-mode in the list is the default and is selected when the
// next argument does not name a sub-mode. Sub-mode names are case
// insensitive.
//
// Addresses in segment:offset form are common on the 8088 command line and
// have their own flag type. See AddAddress() and ParseAddress().
package modalflag
