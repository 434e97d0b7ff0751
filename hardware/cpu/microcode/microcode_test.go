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

package microcode_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/test"
)

func TestString(t *testing.T) {
	test.ExpectEquality(t, microcode.String(0x1e4), "1e4")
	test.ExpectEquality(t, microcode.String(0x003), "003")
	test.ExpectEquality(t, microcode.String(microcode.Jump), "JMP")
	test.ExpectEquality(t, microcode.String(microcode.Return), "RET")
	test.ExpectEquality(t, microcode.String(microcode.Correct), "COR")
	test.ExpectEquality(t, microcode.String(microcode.None), "")
}

func TestNext(t *testing.T) {
	test.ExpectEquality(t, microcode.Next(0x1e4), 0x1e5)
	test.ExpectEquality(t, microcode.Next(microcode.None), microcode.None)
}
