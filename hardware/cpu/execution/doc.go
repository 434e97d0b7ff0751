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

// Package execution tracks the result of instruction execution on the CPU.
// The Result type stores information about each instruction executed: the
// decoded instruction, where it was found, how many cycles it took and how
// it ended.
//
// The Result.IsValid() function can be used to check whether results are
// consistent with the decoded instruction. The CPU package doesn't call this
// function because it would introduce unwanted performance penalties, but
// it's probably okay to use in a debugging or testing context.
package execution
