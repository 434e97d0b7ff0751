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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/debugger"
	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/debugger/terminal/easyterm"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/test"
)

// MOV AX,1; INC AX; INC AX; HLT
var program = []uint8{0xb8, 0x01, 0x00, 0x40, 0x40, 0xf4}

func newDebugger(t *testing.T) (*debugger.Debugger, *hardware.Machine, *test.CompareWriter) {
	t.Helper()
	m, err := hardware.NewMachine(nil, hardware.DefaultRAM)
	test.DemandSuccess(t, err)
	m.LoadProgram(program, 0x0100, 0x0000)

	w := &test.CompareWriter{}
	return debugger.NewDebugger(m, w), m, w
}

// keys converts a string to a list of keypresses. a newline is the enter
// key
func keys(s string) []easyterm.Key {
	var k []easyterm.Key
	for _, r := range s {
		if r == '\n' {
			k = append(k, easyterm.Key{Special: easyterm.Enter})
		} else {
			k = append(k, easyterm.Key{Rune: r})
		}
	}
	return k
}

func TestStep(t *testing.T) {
	dbg, m, w := newDebugger(t)

	test.DemandSuccess(t, dbg.Process(keys("s")...))
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(0x0001))
	test.ExpectSuccess(t, strings.Contains(w.String(), "AX 0001"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "0100:0003 INC AX"))

	// enter repeats the step command
	test.DemandSuccess(t, dbg.Process(keys("\n")...))
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(0x0002))

	// rewind
	w.Reset()
	test.DemandSuccess(t, dbg.Process(keys("u")...))
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(0x0001))
	test.ExpectSuccess(t, strings.Contains(w.String(), "AX 0001"))

	state, sub := dbg.State()
	test.ExpectEquality(t, state, govern.Paused)
	test.ExpectEquality(t, sub, govern.Normal)
}

func TestStepCycle(t *testing.T) {
	dbg, m, w := newDebugger(t)

	test.DemandSuccess(t, dbg.Process(keys("c")...))
	test.ExpectSuccess(t, m.CPU.InInstruction())
	test.ExpectSuccess(t, strings.Contains(w.String(), "D:"))

	// complete the instruction one cycle at a time
	for i := 0; i < 100 && m.CPU.InInstruction(); i++ {
		test.DemandSuccess(t, dbg.Process(keys("\n")...))
	}
	test.ExpectFailure(t, m.CPU.InInstruction())
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(0x0001))
	test.ExpectSuccess(t, strings.Contains(w.String(), "MOV AX"))
}

func TestRun(t *testing.T) {
	dbg, m, w := newDebugger(t)

	test.DemandSuccess(t, dbg.Process(keys("r")...))
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(0x0003))
	test.ExpectSuccess(t, strings.Contains(w.String(), govern.PausedAtHalt.String()))

	state, sub := dbg.State()
	test.ExpectEquality(t, state, govern.Paused)
	test.ExpectEquality(t, sub, govern.PausedAtHalt)

	// stepping a halted CPU is not an error
	test.DemandSuccess(t, dbg.Process(keys("s")...))
}

func TestBreakpoint(t *testing.T) {
	dbg, m, w := newDebugger(t)

	test.DemandSuccess(t, dbg.Process(keys("b0100:0004\n")...))
	test.ExpectSuccess(t, strings.Contains(w.String(), "breakpoint set at 0100:0004 (01004)"))

	test.DemandSuccess(t, dbg.Process(keys("r")...))
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(0x0002))
	_, sub := dbg.State()
	test.ExpectEquality(t, sub, govern.PausedAtBreakpoint)

	// continue past the breakpoint
	test.DemandSuccess(t, dbg.Process(keys("r")...))
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(0x0003))
	_, sub = dbg.State()
	test.ExpectEquality(t, sub, govern.PausedAtHalt)

	// a bad address is an error
	test.ExpectFailure(t, dbg.Process(keys("bxyz\n")...))

	// escape cancels the prompt
	k := keys("b01")
	k = append(k, easyterm.Key{Special: easyterm.Escape})
	test.DemandSuccess(t, dbg.Process(k...))

	test.DemandSuccess(t, dbg.Process(keys("k")...))
	test.ExpectSuccess(t, strings.Contains(w.String(), "breakpoints cleared"))
}

func TestMemoryDump(t *testing.T) {
	dbg, _, w := newDebugger(t)

	k := keys("m0100:0001")
	k = append(k, easyterm.Key{Special: easyterm.Backspace})
	k = append(k, keys("0\n")...)
	test.DemandSuccess(t, dbg.Process(k...))
	test.ExpectSuccess(t, strings.Contains(w.String(), "01000 (conventional) RAM 00000-9ffff"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "01000  B8 01 00 40 40 F4"))
}

func TestInterrupt(t *testing.T) {
	dbg, m, w := newDebugger(t)

	dbg.Vector = 0x20
	test.DemandSuccess(t, dbg.Process(keys("i")...))
	test.ExpectEquality(t, m.Interrupts.Pending(), 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "vector 20h"))

	test.DemandSuccess(t, dbg.Process(keys("n")...))
	test.ExpectSuccess(t, m.Interrupts.NMIPending())
	test.DemandSuccess(t, dbg.Process(keys("n")...))
	test.ExpectFailure(t, m.Interrupts.NMIPending())
}

func TestMiscCommands(t *testing.T) {
	dbg, m, w := newDebugger(t)

	test.DemandSuccess(t, dbg.Process(keys("?")...))
	test.ExpectSuccess(t, strings.Contains(w.String(), "step one cycle"))

	w.Reset()
	test.DemandSuccess(t, dbg.Process(keys("Z")...))
	test.ExpectSuccess(t, strings.Contains(w.String(), "unknown command (Z)"))

	w.Reset()
	test.DemandSuccess(t, dbg.Process(keys("d")...))
	test.ExpectSuccess(t, strings.Contains(w.String(), "0100:0000 MOV AX"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "0100:0005 HLT"))

	test.DemandSuccess(t, dbg.Process(keys("ssh")...))
	test.ExpectSuccess(t, strings.Contains(w.String(), "0100:0003 INC AX"))

	// the trace writes every cycle to the output
	w.Reset()
	test.DemandSuccess(t, dbg.Process(keys("ts")...))
	test.ExpectSuccess(t, strings.Count(w.String(), "\n") > 4)
	test.DemandSuccess(t, dbg.Process(keys("t")...))

	test.DemandSuccess(t, dbg.Process(keys("z")...))
	test.ExpectEquality(t, m.CPU.Registers().IP, uint16(0x0000))
	test.ExpectEquality(t, m.CPU.Registers().CS, uint16(0x0100))

	logger.Clear()
	logger.Log(logger.Allow, "test", "marker entry")
	w.Reset()
	test.DemandSuccess(t, dbg.Process(keys("g")...))
	test.ExpectSuccess(t, strings.Contains(w.String(), "marker entry"))

	// no saved state yet
	w.Reset()
	test.DemandSuccess(t, dbg.Process(keys("l")...))
	test.ExpectSuccess(t, strings.Contains(w.String(), "no saved state"))

	test.DemandSuccess(t, dbg.Process(keys("qs")...))
	state, _ := dbg.State()
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(0x0000))
}
