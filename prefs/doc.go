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

// Package prefs facilitates the storage of preferential values in the
// Gopher8088 system. It is intended to be used by other packages to store
// the machine configuration: the CPU model, whether bus wait states and DRAM
// refresh are emulated and so on.
//
// The preference types (Bool, Int, String, Generic) are safe to read from a
// different goroutine to the one that sets them.
//
// Values are stored on disk by adding them to a Disk instance:
//
//	dsk, _ := prefs.NewDisk("preferences")
//	var waits prefs.Bool
//	dsk.Add("cpu.waitstates", &waits)
//	dsk.Load()
//
// Values can also be given on the command line. A group is pushed with
// PushCommandLineStack() and any matching key is applied when it is added to
// a Disk instance.
package prefs
