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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/test"
)

// MOV AX,1; INC AX; HLT
var program = []uint8{0xb8, 0x01, 0x00, 0x40, 0xf4}

func writeProgram(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o644))
	return fn
}

func launchString(t *testing.T, args ...string) (string, int) {
	t.Helper()
	var out strings.Builder
	v := launch(context.Background(), args, &out)
	return out.String(), v
}

func TestVersion(t *testing.T) {
	s, v := launchString(t, "-version")
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.Contains(s, "Gopher8088"))
}

func TestParseError(t *testing.T) {
	_, v := launchString(t, "RUN", "-nosuchflag")
	test.ExpectEquality(t, v, exitMode)

	_, v = launchString(t, "RUN")
	test.ExpectEquality(t, v, exitMode)
}

func TestRun(t *testing.T) {
	s, v := launchString(t, "RUN", "-prefs", "cpu.waitstates::false", writeProgram(t))
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.Contains(s, "Paused at halt"), s)
	test.ExpectSuccess(t, strings.Contains(s, "AX=0002"), s)
	test.ExpectSuccess(t, strings.Contains(s, "cycles"), s)
}

func TestRunEndAddress(t *testing.T) {
	s, v := launchString(t, "RUN", "-end", "0100:0003", writeProgram(t))
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.Contains(s, "AX=0001"), s)
}

func TestDump(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "state.dot")
	_, v := launchString(t, "DUMP", "-steps", "2", "-o", fn, writeProgram(t))
	test.ExpectEquality(t, v, exitOkay)

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}

func TestScript(t *testing.T) {
	scr := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(scr, []byte(`
print(cpu.run())
print(string.format("%04x", cpu.reg("ax")))
`), 0o644))

	s, v := launchString(t, "SCRIPT", scr, writeProgram(t))
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectEquality(t, s, "halt\n0002\n")
}

func TestScriptNoProgram(t *testing.T) {
	scr := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(scr, []byte(`
mem.load(0x1000, {0xb8, 0x34, 0x12, 0xf4})
cpu.run()
print(string.format("%04x", cpu.reg("ax")))
`), 0o644))

	s, v := launchString(t, "SCRIPT", scr)
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectEquality(t, s, "1234\n")
}

func TestHarteMissingDirectory(t *testing.T) {
	_, v := launchString(t, "HARTE")
	test.ExpectEquality(t, v, exitMode)
}
