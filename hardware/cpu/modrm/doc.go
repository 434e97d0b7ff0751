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

// Package modrm cracks the ModR/M byte that follows many 8088 opcodes. The
// Table is built once at initialisation and indexed by the byte value. Each
// entry records the addressing mode, whether a displacement follows and the
// microcode lines spent computing the effective address.
//
// Reading the displacement from the prefetch queue is not done here. The
// decoder in the instructions package does that, charging the cycles listed
// in the entry.
package modrm
