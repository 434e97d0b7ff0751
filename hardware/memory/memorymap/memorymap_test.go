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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8088/test"
)

func TestLinear(t *testing.T) {
	test.ExpectEquality(t, memorymap.Linear(0x0000, 0x0000), uint32(0x00000))
	test.ExpectEquality(t, memorymap.Linear(0x1000, 0x0012), uint32(0x10012))
	test.ExpectEquality(t, memorymap.Linear(0xffff, 0x0000), uint32(0xffff0))
	test.ExpectEquality(t, memorymap.Linear(0xffff, 0x0010), uint32(0x00000))
	test.ExpectEquality(t, memorymap.Linear(0xffff, 0xffff), uint32(0x0ffef))

	// exhaustive over a sample of segments
	for s := 0; s <= 0xffff; s += 0x0fff {
		for o := 0; o <= 0xffff; o += 0x00ff {
			v := memorymap.Linear(uint16(s), uint16(o))
			test.ExpectEquality(t, v, uint32((s<<4)+o)&0xfffff, s, o)
		}
	}
}

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x00400), memorymap.Conventional)
	test.ExpectEquality(t, memorymap.MapAddress(0xb8000), memorymap.Video)
	test.ExpectEquality(t, memorymap.MapAddress(0xc8000), memorymap.Adapter)
	test.ExpectEquality(t, memorymap.MapAddress(0xffff0), memorymap.System)
	test.ExpectEquality(t, memorymap.MapAddress(0x1ffff0), memorymap.System)
}
