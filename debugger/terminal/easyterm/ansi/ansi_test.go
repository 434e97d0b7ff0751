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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/debugger/terminal/easyterm/ansi"
	"github.com/jetsetilly/gopher8088/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("", "", "", false, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "\033[m")

	s, err = ansi.ColorBuild("red", "normal", "", true, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;49m")

	s, err = ansi.ColorBuild("Green", "blue", "bold", false, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "\033[32;104;1m")

	_, err = ansi.ColorBuild("purple", "", "", false, false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.DimPens["red"], "\033[31;49m")
	test.ExpectEquality(t, ansi.NormalPen, "\033[m")
}

func TestCursor(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(0), "")
	test.ExpectEquality(t, ansi.CursorMove(3), "\033[3C")
	test.ExpectEquality(t, ansi.CursorMove(-2), "\033[2D")
	test.ExpectEquality(t, ansi.CursorPosition(1, 10), "\033[1;10H")
}
