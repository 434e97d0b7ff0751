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

package hardware_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8088/test"
)

func newMachine(t *testing.T, program ...uint8) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(nil, hardware.DefaultRAM)
	test.DemandSuccess(t, err)
	m.LoadProgram(program, 0x0100, 0x0000)
	return m
}

func TestRunToHalt(t *testing.T) {
	m := newMachine(t, 0xb8, 0x01, 0x00, 0x40, 0xf4) // MOV AX,1; INC AX; HLT

	sub, err := m.Run(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sub, govern.PausedAtHalt)
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(2))
	test.ExpectSuccess(t, m.Cycles() > 0)
}

func TestInterrupt(t *testing.T) {
	m := newMachine(t, 0xfb, 0xeb, 0xfe) // STI; JMP $

	// handler for vector 8
	m.Mem.Load(0x0400, []uint8{0xbb, 0x55, 0x00, 0xf4}) // MOV BX,0055; HLT
	m.Mem.Load(0x0020, []uint8{0x00, 0x04, 0x00, 0x00})

	var checks int
	sub, err := m.Run(func() (govern.State, error) {
		checks++
		if checks == 10 {
			m.Interrupts.Raise(8)
		}
		if checks > 1000 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sub, govern.PausedAtHalt)
	test.ExpectEquality(t, m.CPU.Registers().BX, uint16(0x0055))
	test.ExpectEquality(t, m.Interrupts.Acks(), 1)
	test.ExpectEquality(t, m.Interrupts.Pending(), 0)
}

func TestBreakpoint(t *testing.T) {
	m := newMachine(t, 0x40, 0x40, 0x40, 0xf4)
	test.DemandSuccess(t, m.CPU.SetBreakpoint(cpu.BreakExecute, memorymap.Linear(0x0100, 0x0002)))

	sub, err := m.Run(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sub, govern.PausedAtBreakpoint)
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(2))

	m.CPU.ClearBreakpointFlag()
	sub, err = m.Run(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sub, govern.PausedAtHalt)
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(3))
}

func TestRunForCycleCount(t *testing.T) {
	m := newMachine(t, 0xeb, 0xfe) // JMP $

	sub, err := m.RunForCycleCount(1000, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sub, govern.Normal)
	test.ExpectSuccess(t, m.Cycles() >= 1000)
}

func TestCycleHook(t *testing.T) {
	m := newMachine(t, 0xeb, 0xfe) // JMP $

	stop := errors.New("stop")
	var n int
	m.SetCycleHook(func() error {
		n++
		if n == 100 {
			return stop
		}
		return nil
	})

	_, err := m.Run(nil)
	test.ExpectSuccess(t, errors.Is(err, stop))
	test.ExpectSuccess(t, n >= 100)
}

func TestRewind(t *testing.T) {
	m := newMachine(t, 0xb8, 0x01, 0x00, 0x40, 0x40, 0xf4) // MOV AX,1; INC AX; INC AX; HLT

	_, err := m.Step()
	test.DemandSuccess(t, err)
	first := m.CPU.Registers()
	cycles := m.Cycles()

	_, err = m.Step()
	test.DemandSuccess(t, err)

	// stop part way through the third instruction
	test.DemandSuccess(t, m.StepCycle())
	test.ExpectSuccess(t, m.CPU.InInstruction())
	test.ExpectEquality(t, m.RewindAvailable(), 3)

	test.DemandSuccess(t, m.Rewind())
	test.ExpectFailure(t, m.CPU.InInstruction())
	test.DemandSuccess(t, m.Rewind())
	test.ExpectEquality(t, m.CPU.Registers(), first)
	test.ExpectEquality(t, m.Cycles(), cycles)
	test.ExpectEquality(t, m.RewindAvailable(), 1)

	// replay
	_, err = m.Step()
	test.DemandSuccess(t, err)
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(3))

	test.DemandSuccess(t, m.Rewind())
	test.DemandSuccess(t, m.Rewind())
	test.DemandSuccess(t, m.Rewind())
	test.ExpectFailure(t, m.Rewind())
}

func TestRewindCycles(t *testing.T) {
	m := newMachine(t, 0xb8, 0x01, 0x00, 0x40, 0xf4) // MOV AX,1; INC AX; HLT

	// cycle through the first instruction. one state is recorded
	for i := 0; i < 100; i++ {
		test.DemandSuccess(t, m.StepCycle())
		if !m.CPU.InInstruction() {
			break
		}
	}
	test.DemandFailure(t, m.CPU.InInstruction())
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(1))
	test.ExpectEquality(t, m.RewindAvailable(), 1)

	// the next cycle starts and records the second instruction
	test.DemandSuccess(t, m.StepCycle())
	test.ExpectEquality(t, m.RewindAvailable(), 2)

	test.DemandSuccess(t, m.Rewind())
	test.ExpectEquality(t, m.CPU.Registers().AX, uint16(1))
	test.ExpectFailure(t, m.CPU.InInstruction())
}

func TestSaveState(t *testing.T) {
	m := newMachine(t, 0xb8, 0x01, 0x00, 0xa3, 0x00, 0x02, 0x40, 0xa3, 0x02, 0x02, 0xf4) // MOV AX,1; MOV [0200],AX; INC AX; MOV [0202],AX; HLT
	fn := filepath.Join(t.TempDir(), "state")

	_, err := m.Step()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.SaveState(fn))

	sub, err := m.Run(nil)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, sub, govern.PausedAtHalt)
	expected := m.CPU.Registers()
	test.ExpectEquality(t, m.Mem.PeekU8(0x0202), uint8(0x02))

	m.Mem.Poke(0x0200, 0xaa)
	m.Mem.Poke(0x0202, 0xaa)

	test.DemandSuccess(t, m.LoadState(fn))
	test.ExpectEquality(t, m.Mem.PeekU8(0x0200), uint8(0x00))

	sub, err = m.Run(nil)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, sub, govern.PausedAtHalt)
	test.ExpectEquality(t, m.CPU.Registers(), expected)
	test.ExpectEquality(t, m.Mem.PeekU8(0x0200), uint8(0x01))
	test.ExpectEquality(t, m.Mem.PeekU8(0x0202), uint8(0x02))

	test.ExpectFailure(t, m.LoadState(filepath.Join(t.TempDir(), "missing")))
}
