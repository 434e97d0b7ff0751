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

package scripting_test

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/scripting"
	"github.com/jetsetilly/gopher8088/test"
)

// MOV AX,1; INC AX; INC AX; HLT
var program = []uint8{0xb8, 0x01, 0x00, 0x40, 0x40, 0xf4}

func newScript(t *testing.T) (*scripting.Script, *hardware.Machine, *test.CompareWriter) {
	t.Helper()
	m, err := hardware.NewMachine(nil, hardware.DefaultRAM)
	test.DemandSuccess(t, err)
	m.LoadProgram(program, 0x0100, 0x0000)

	w := &test.CompareWriter{}
	scr := scripting.NewScript(m, w)
	t.Cleanup(scr.Close)

	return scr, m, w
}

func TestRegisters(t *testing.T) {
	scr, m, w := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		cpu.setreg("bx", 0x1234)
		cpu.setreg("cl", 0x56)
		cpu.setreg("CH", 0x78)
		print(cpu.reg("bh"), cpu.reg("bl"), cpu.reg("cx"), cpu.reg("cs"))
	`))
	test.ExpectSuccess(t, w.Compare("18\t52\t30806\t256\n"))
	test.ExpectEquality(t, m.CPU.Registers().BX, uint16(0x1234))
	test.ExpectEquality(t, m.CPU.Registers().CX, uint16(0x7856))

	test.ExpectFailure(t, scr.RunString(`cpu.reg("zz")`))
	test.ExpectFailure(t, scr.RunString(`cpu.setreg("ax")`))
}

func TestStep(t *testing.T) {
	scr, m, w := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		local c, s = cpu.step()
		print(c > 0, s, cpu.reg("ax"))
		print(cpu.disasm())
	`))
	test.ExpectSuccess(t, w.Compare("true\tnormal\t1\nINC AX\t1\n"))
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(1))

	w.Reset()
	test.DemandSuccess(t, scr.RunString(`
		while cpu.cycle() do end
		print(cpu.reg("ax"), #cpu.history())
		machine.rewind()
		print(cpu.reg("ax"))
	`))
	test.ExpectSuccess(t, w.Compare("2\t2\n1\n"))
}

func TestRun(t *testing.T) {
	scr, m, w := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		cpu.breakpoint(0x0100, 0x0004)
		print(cpu.run())
		print(cpu.reg("ax"))
		print(cpu.run(), cpu.halted())
		print(cpu.step())
	`))
	// a step while halted still spends the halt cycles
	test.ExpectSuccess(t, w.Compare("breakpoint\n2\nhalt\ttrue\n5\thalt\n"))
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(3))

	// a limited run
	w.Reset()
	m.Reset()
	test.DemandSuccess(t, scr.RunString(`
		cpu.clearbreakpoints()
		print(cpu.run(1), cpu.reg("ax"))
	`))
	test.ExpectSuccess(t, w.Compare("normal\t1\n"))
}

func TestMemory(t *testing.T) {
	scr, m, w := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		mem.poke(0x500, 0xaa)
		print(mem.peek(0x500), mem.peek(0x1000))
		print(mem.load(0x600, {1, 2, 3}), mem.load(0x700, "AB"))
	`))
	test.ExpectSuccess(t, w.Compare("170\t184\n3\t2\n"))
	test.ExpectEquality(t, m.Mem.PeekU8(0x602), uint8(3))
	test.ExpectEquality(t, m.Mem.PeekU8(0x701), uint8('B'))

	test.ExpectFailure(t, scr.RunString(`mem.load(0x600, 5)`))
}

func TestInterrupt(t *testing.T) {
	// STI; JMP $ with a handler for vector 9 at 0000:0400
	scr, m, w := newScript(t)
	m.LoadProgram([]uint8{0xfb, 0xeb, 0xfe}, 0x0100, 0x0000)

	test.DemandSuccess(t, scr.RunString(`
		mem.load(0x0400, {0xbb, 0x55, 0x00, 0xf4})
		mem.load(0x0024, {0x00, 0x04, 0x00, 0x00})
		cpu.run(10)
		machine.interrupt(9)
		print(cpu.run(), cpu.reg("bx"))
	`))
	test.ExpectSuccess(t, w.Compare("halt\t85\n"))
	test.ExpectEquality(t, m.Interrupts.Acks(), 1)
}

func TestCycleHook(t *testing.T) {
	scr, m, w := newScript(t)
	m.LoadProgram([]uint8{0xeb, 0xfe}, 0x0100, 0x0000)

	err := scr.RunString(`
		cpu.oncycle(function(c)
			return c < 50
		end)
		cpu.run()
	`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "stopped by cycle hook"))
	test.ExpectSuccess(t, m.Cycles() >= 50)

	// hook removed
	test.DemandSuccess(t, scr.RunString(`
		cpu.oncycle(nil)
		print(cpu.run(100))
	`))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "normal\n"))
}

func TestSaveRestore(t *testing.T) {
	scr, m, _ := newScript(t)
	fn := filepath.Join(t.TempDir(), "state")

	test.DemandSuccess(t, scr.RunString(fmt.Sprintf(`
		cpu.step()
		machine.save(%q)
		cpu.step()
		machine.restore(%q)
	`, fn, fn)))
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(1))

	test.ExpectFailure(t, scr.RunString(`machine.restore("/nonexistent/state")`))
}

func TestContext(t *testing.T) {
	scr, m, _ := newScript(t)
	m.LoadProgram([]uint8{0xeb, 0xfe}, 0x0100, 0x0000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	scr.SetContext(ctx)

	test.ExpectFailure(t, scr.RunString(`cpu.run()`))
}
