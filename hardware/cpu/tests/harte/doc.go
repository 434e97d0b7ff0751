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

// Package harte runs the 8088 single-step tests created and maintained by
// Daniel Balsom and Thom Harte.
//
// https://github.com/SingleStepTests/8088
//
// The tests are large and are not included in the repository. The test
// files may be gzipped and are named after the opcode they test, with the
// opcode extension for group instructions. For example:
//
//	00.json.gz
//	F6.6.json.gz
//
// If the 8088.json metadata file is in the same directory, the flags that
// each instruction leaves undefined are masked out before the flags are
// compared.
//
// Each test is run from a reset CPU with the initial registers, memory and
// prefetch queue given in the test. A REP prefixed string instruction is
// run until it completes. The final registers and memory are compared, as
// are the number of cycles and the state of the bus in each cycle.
package harte
