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

package cpu_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/test"
)

const (
	flagCarry     = 0x0001
	flagParity    = 0x0004
	flagAuxCarry  = 0x0010
	flagZero      = 0x0040
	flagSign      = 0x0080
	flagTrap      = 0x0100
	flagInterrupt = 0x0200
	flagOverflow  = 0x0800
)

func TestALUFlags(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0100, 0x01, 0xd8) // ADD AX,BX
	mc := newCPU(t, b, 0x0000, 0x0100)

	setRegisters(mc, func(s *registers.Snapshot) {
		s.AX = 0x8000
		s.BX = 0x8000
	})

	res := step(t, mc)
	test.ExpectEquality(t, res.Outcome, execution.Okay)

	r := mc.Registers()
	test.ExpectEquality(t, r.AX, uint16(0x0000))
	test.ExpectEquality(t, r.IP, uint16(0x0102))
	test.ExpectEquality(t, r.Flags&flagCarry, uint16(flagCarry), "CF")
	test.ExpectEquality(t, r.Flags&flagZero, uint16(flagZero), "ZF")
	test.ExpectEquality(t, r.Flags&flagOverflow, uint16(flagOverflow), "OF")
	test.ExpectEquality(t, r.Flags&flagSign, uint16(0), "SF")
	test.ExpectEquality(t, r.Flags&flagParity, uint16(flagParity), "PF")
	test.ExpectEquality(t, r.Flags&flagAuxCarry, uint16(0), "AF")
}

func TestJccTaken(t *testing.T) {
	run := func(zero bool) (cpu.StepResult, registers.Snapshot) {
		b := newMockBus()
		b.putInstructions(0x1000, 0x0000, 0x74, 0x10) // JE +0x10
		mc := newCPU(t, b, 0x1000, 0x0000)
		setRegisters(mc, func(s *registers.Snapshot) {
			if zero {
				s.Flags |= flagZero
			}
		})
		res := step(t, mc)
		return res, mc.Registers()
	}

	taken, r := run(true)
	test.ExpectEquality(t, taken.Outcome, execution.OkayJump)
	test.ExpectEquality(t, r.IP, uint16(0x0012))
	test.ExpectEquality(t, r.CS, uint16(0x1000))

	notTaken, r := run(false)
	test.ExpectEquality(t, notTaken.Outcome, execution.Okay)
	test.ExpectEquality(t, r.IP, uint16(0x0002))

	test.ExpectSuccess(t, taken.Cycles >= notTaken.Cycles+3, "taken branch restarts prefetch")
}

func TestFarCallReturn(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0000, 0x9a, 0x00, 0x01, 0x00, 0x20) // CALL 2000:0100
	b.putInstructions(0x2000, 0x0100, 0xcb)                         // RETF
	mc := newCPU(t, b, 0x0000, 0x0000)
	setRegisters(mc, func(s *registers.Snapshot) {
		s.SS = 0x0000
		s.SP = 0x8000
	})

	res := step(t, mc)
	test.ExpectEquality(t, res.Outcome, execution.OkayJump)

	r := mc.Registers()
	test.ExpectEquality(t, r.CS, uint16(0x2000))
	test.ExpectEquality(t, r.IP, uint16(0x0100))
	test.ExpectEquality(t, r.SP, uint16(0x7ffc))
	test.ExpectEquality(t, b.word(0x0000, 0x7ffe), uint16(0x0000), "pushed CS")
	test.ExpectEquality(t, b.word(0x0000, 0x7ffc), uint16(0x0005), "pushed IP")

	res = step(t, mc)
	test.ExpectEquality(t, res.Outcome, execution.OkayJump)

	r = mc.Registers()
	test.ExpectEquality(t, r.CS, uint16(0x0000))
	test.ExpectEquality(t, r.IP, uint16(0x0005))
	test.ExpectEquality(t, r.SP, uint16(0x8000))
}

func TestRepMovsb(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0100, []uint8("HELLO")...)
	b.putInstructions(0x0100, 0x0000, 0xf3, 0xa4) // REP MOVSB
	mc := newCPU(t, b, 0x0100, 0x0000)
	setRegisters(mc, func(s *registers.Snapshot) {
		s.DS = 0x0000
		s.SI = 0x0100
		s.ES = 0x0000
		s.DI = 0x0200
		s.CX = 5
	})

	for i := 0; i < 10 && mc.Registers().CX != 0; i++ {
		step(t, mc)
	}

	r := mc.Registers()
	test.ExpectEquality(t, r.CX, uint16(0))
	test.ExpectEquality(t, r.SI, uint16(0x0105))
	test.ExpectEquality(t, r.DI, uint16(0x0205))
	test.ExpectEquality(t, r.IP, uint16(0x0002))
	test.ExpectEquality(t, string(b.mem[0x200:0x205]), "HELLO")
}

func TestRepMovsbInterrupted(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0100, []uint8("HELLO")...)
	b.putInstructions(0x0100, 0x0000, 0xf3, 0xa4) // REP MOVSB
	b.putInstructions(0x0200, 0x0000, 0xcf)       // IRET

	// vector 8 points to the IRET
	b.setWord(0x0000, 0x0020, 0x0000)
	b.setWord(0x0000, 0x0022, 0x0200)

	pic := &mockPIC{vector: 8}
	mc := newCPU(t, b, 0x0100, 0x0000)
	mc.AttachInterruptController(pic)
	setRegisters(mc, func(s *registers.Snapshot) {
		s.DS = 0x0000
		s.SI = 0x0100
		s.ES = 0x0000
		s.DI = 0x0200
		s.CX = 5
		s.SS = 0x0000
		s.SP = 0x8000
		s.Flags |= flagInterrupt
	})

	res := step(t, mc)
	test.ExpectEquality(t, res.Outcome, execution.OkayRep)
	test.ExpectEquality(t, mc.Registers().CX, uint16(4))

	pic.intr = true

	var inHandler bool
	for i := 0; i < 5 && !inHandler; i++ {
		step(t, mc)
		inHandler = mc.Registers().CS == 0x0200
	}
	test.DemandSuccess(t, inHandler, "interrupt taken")
	test.ExpectEquality(t, pic.acks, 1)
	test.ExpectSuccess(t, mc.LastResult.Interrupted)
	test.ExpectEquality(t, mc.LastResult.Vector, uint8(8))

	// the return address is the REP prefix
	r := mc.Registers()
	test.ExpectEquality(t, b.word(r.SS, r.SP), uint16(0x0000), "return IP")
	test.ExpectEquality(t, b.word(r.SS, r.SP+2), uint16(0x0100), "return CS")
	remaining := r.CX
	test.ExpectSuccess(t, remaining > 0 && remaining <= 4, "CX reflects remaining iterations")
	test.ExpectEquality(t, r.SI, 0x0105-remaining)

	// IRET and resume the string instruction
	step(t, mc)
	r = mc.Registers()
	test.ExpectEquality(t, r.CS, uint16(0x0100))
	test.ExpectEquality(t, r.IP, uint16(0x0000))

	for i := 0; i < 10 && mc.Registers().CX != 0; i++ {
		step(t, mc)
	}
	r = mc.Registers()
	test.ExpectEquality(t, r.CX, uint16(0))
	test.ExpectEquality(t, r.IP, uint16(0x0002))
	test.ExpectEquality(t, string(b.mem[0x200:0x205]), "HELLO")
}

func TestDivideByZero(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0100, 0xf6, 0xf1) // DIV CL

	// vector 0 points to 0040:0010
	b.setWord(0x0000, 0x0000, 0x0010)
	b.setWord(0x0000, 0x0002, 0x0040)

	mc := newCPU(t, b, 0x0000, 0x0100)
	setRegisters(mc, func(s *registers.Snapshot) {
		s.AX = 0x0001
		s.CX = 0x0000
		s.SS = 0x0000
		s.SP = 0x8000
		s.Flags |= flagInterrupt
	})

	res := step(t, mc)
	test.ExpectEquality(t, res.Outcome, execution.DivideError)

	r := mc.Registers()
	test.ExpectEquality(t, r.CS, uint16(0x0040))
	test.ExpectEquality(t, r.IP, uint16(0x0010))
	test.ExpectEquality(t, r.SP, uint16(0x7ffa))
	test.ExpectEquality(t, r.Flags&flagInterrupt, uint16(0), "IF")
	test.ExpectEquality(t, r.Flags&flagTrap, uint16(0), "TF")

	test.ExpectEquality(t, b.word(0x0000, 0x7ffe)&flagInterrupt, uint16(flagInterrupt), "pushed flags")
	test.ExpectEquality(t, b.word(0x0000, 0x7ffc), uint16(0x0000), "pushed CS")
	test.ExpectEquality(t, b.word(0x0000, 0x7ffa), uint16(0x0102), "pushed IP")
}

func TestSelfModifyingCode(t *testing.T) {
	b := newMockBus()

	// the write is to an address that has not been fetched. the modified
	// byte is executed
	o := b.putInstructions(0x0000, 0x0000, 0xc6, 0x06, 0x20, 0x00, 0x40) // MOV byte [0020],40
	for o < 0x20 {
		o = b.putInstructions(0x0000, o, 0x90) // NOP
	}
	b.putInstructions(0x0000, 0x20, 0x48) // DEC AX, replaced by INC AX

	mc := newCPU(t, b, 0x0000, 0x0000)
	for mc.Registers().IP <= 0x20 {
		step(t, mc)
	}
	test.ExpectEquality(t, b.mem[0x20], uint8(0x40))
	test.ExpectEquality(t, mc.Registers().AX, uint16(0x0001), "INC AX executed")

	// the DIV gives the BIU time to fill the queue. the write is to a byte
	// that is already in the queue and the original byte is executed
	b = newMockBus()
	o = b.putInstructions(0x0000, 0x0000, 0xf6, 0xf3) // DIV BL
	o = b.putInstructions(0x0000, o, 0xa2, 0x05, 0x00) // MOV [0005],AL
	b.putInstructions(0x0000, o, 0x48)                 // DEC AX

	mc = newCPU(t, b, 0x0000, 0x0000)
	setRegisters(mc, func(s *registers.Snapshot) {
		s.AX = 0x0040
		s.BX = 0x0001
		s.DS = 0x0000
	})

	step(t, mc)
	test.ExpectEquality(t, mc.Registers().AX, uint16(0x0040))
	step(t, mc)
	test.ExpectEquality(t, b.mem[5], uint8(0x40))
	step(t, mc)
	test.ExpectEquality(t, mc.Registers().AX, uint16(0x003f), "DEC AX executed")
}

func TestInstructionBoundary(t *testing.T) {
	b := newMockBus()
	o := uint16(0)
	for o < 0x10 {
		o = b.putInstructions(0x0000, o, 0x90)
	}
	mc := newCPU(t, b, 0x0000, 0x0000)

	for i := 1; i < 0x10; i++ {
		step(t, mc)
		test.ExpectEquality(t, mc.Registers().IP, uint16(i))
		test.ExpectEquality(t, mc.PC()-mc.IP(), uint16(mc.QueueLen()))
		test.ExpectSuccess(t, mc.QueueLen() > 0, "next opcode fetched")
	}
}

func TestResetTwice(t *testing.T) {
	b := newMockBus()
	once := newCPU(t, b, 0xffff, 0x0000)

	twice := newCPU(t, b, 0xffff, 0x0000)
	twice.Reset()

	test.ExpectEquality(t, once.Registers(), twice.Registers())
	test.ExpectEquality(t, once.PC(), twice.PC())
	test.ExpectEquality(t, once.QueueLen(), twice.QueueLen())

	r := once.Registers()
	test.ExpectEquality(t, r.CS, uint16(0xffff))
	test.ExpectEquality(t, r.IP, uint16(0x0000))
	test.ExpectEquality(t, r.Flags, uint16(0xf002))
}

func TestRegistersRoundTrip(t *testing.T) {
	b := newMockBus()
	mc := newCPU(t, b, 0x0000, 0x0000)

	s := registers.Snapshot{
		AX: 0x1234, BX: 0x2345, CX: 0x3456, DX: 0x4567,
		SP: 0x5678, BP: 0x6789, SI: 0x789a, DI: 0x89ab,
		CS: 0x9abc, DS: 0xabcd, SS: 0xbcde, ES: 0xcdef,
		IP: 0x0100, Flags: 0xf0d7,
	}
	mc.SetRegisters(s)
	test.ExpectEquality(t, mc.Registers(), s)
}

func TestSaveLoad(t *testing.T) {
	b := newMockBus()
	o := uint16(0)
	for i := 0; i < 32; i++ {
		o = b.putInstructions(0x0000, o, 0x40, 0x43, 0xd1, 0xe0) // INC AX; INC BX; SHL AX,1
	}
	mc := newCPU(t, b, 0x0000, 0x0000)

	for i := 0; i < 5; i++ {
		step(t, mc)
	}

	var state bytes.Buffer
	test.DemandSuccess(t, mc.Save(&state))

	var expected []registers.Snapshot
	for i := 0; i < 20; i++ {
		step(t, mc)
		expected = append(expected, mc.Registers())
	}

	test.DemandSuccess(t, mc.Load(bytes.NewReader(state.Bytes())))
	for i := 0; i < 20; i++ {
		step(t, mc)
		test.ExpectEquality(t, mc.Registers(), expected[i], i)
	}

	err := mc.Load(bytes.NewReader([]byte("not a state file")))
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidStateFile))

	other := cpu.NewCPU(nil, cpu.Intel8086, b)
	other.Reset()
	err = other.Load(bytes.NewReader(state.Bytes()))
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidStateFile))
}

func TestStepCycle(t *testing.T) {
	program := []uint8{0xb8, 0x34, 0x12, 0x01, 0xc3, 0x43, 0x90, 0x90} // MOV AX,1234; ADD BX,AX; INC BX; NOP; NOP

	b := newMockBus()
	b.putInstructions(0x0000, 0x0000, program...)
	byInstruction := newCPU(t, b, 0x0000, 0x0000)

	cycles := 0
	var last cpu.StepResult
	for i := 0; i < 3; i++ {
		last = step(t, byInstruction)
		cycles += last.Cycles
	}
	test.DemandSuccess(t, last.Cycles > 1)

	b = newMockBus()
	b.putInstructions(0x0000, 0x0000, program...)
	byCycle := newCPU(t, b, 0x0000, 0x0000)

	// stop one cycle short of the end of the third instruction
	for i := 0; i < cycles-1; i++ {
		test.DemandSuccess(t, byCycle.StepCycle())
	}
	test.ExpectSuccess(t, byCycle.InInstruction())
	test.ExpectEquality(t, byCycle.CycleNum(), byInstruction.CycleNum()-1)

	res, err := byCycle.StepInstruction()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, byCycle.InInstruction())
	test.ExpectEquality(t, res.Cycles, last.Cycles)
	test.ExpectEquality(t, byCycle.LastStep().Cycles, last.Cycles)
	test.ExpectEquality(t, byCycle.CycleNum(), byInstruction.CycleNum())
	test.ExpectEquality(t, byCycle.Registers(), byInstruction.Registers())
	test.ExpectEquality(t, byCycle.Registers().BX, uint16(0x1235))
}

func TestStepCycleBoundary(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0000, 0x90, 0x90, 0x90) // NOP; NOP; NOP
	byInstruction := newCPU(t, b, 0x0000, 0x0000)
	nop := step(t, byInstruction)
	test.DemandSuccess(t, nop.Cycles > 0)

	b = newMockBus()
	b.putInstructions(0x0000, 0x0000, 0x90, 0x90, 0x90)
	byCycle := newCPU(t, b, 0x0000, 0x0000)

	// the instruction is complete as soon as its final cycle has run
	n := 0
	for {
		test.DemandSuccess(t, byCycle.StepCycle())
		n++
		if !byCycle.InInstruction() {
			break
		}
		if n > nop.Cycles {
			t.Fatalf("still in instruction after %d cycles", n)
		}
	}
	test.ExpectEquality(t, n, nop.Cycles)
	test.ExpectEquality(t, byCycle.LastStep().Cycles, nop.Cycles)
	test.ExpectEquality(t, byCycle.CycleNum(), byInstruction.CycleNum())
	test.ExpectEquality(t, byCycle.Registers().IP, uint16(0x0001))

	// the next cycle starts the next instruction
	test.DemandSuccess(t, byCycle.StepCycle())
	test.ExpectEquality(t, byCycle.CycleNum(), byInstruction.CycleNum()+1)
}

func TestLockDefersRefresh(t *testing.T) {
	program := []uint8{0xf0, 0x87, 0x07, 0x90, 0x90, 0x90} // LOCK XCHG [BX],AX; NOP; NOP; NOP

	run := func(refreshPeriod int) ([]biu.CycleState, *mockBus, *cpu.CPU) {
		b := newMockBus()
		b.putInstructions(0x0000, 0x0100, program...)
		b.setWord(0x0000, 0x0200, 0x5678)
		mc := newCPU(t, b, 0x0000, 0x0100)
		mc.SetWaitStates(true)
		mc.SetCycleStateCollection(true)
		setRegisters(mc, func(s *registers.Snapshot) {
			s.AX = 0x1234
			s.BX = 0x0200
			s.DS = 0x0000
		})
		if refreshPeriod > 0 {
			mc.SetDRAMRefresh(true, refreshPeriod, false)
		}

		var states []biu.CycleState
		for i := 0; i < 3; i++ {
			step(t, mc)
			states = append(states, mc.CycleStates()...)
		}
		return states, b, mc
	}

	// find the first cycle with LOCK asserted
	reference, _, _ := run(0)
	first := -1
	for i, cs := range reference {
		if cs.Lock {
			first = i
			break
		}
	}
	test.DemandSuccess(t, first >= 2, "LOCK asserted")

	// time the refresh request so that the hold request is made on the
	// first locked cycle
	states, b, mc := run(first - 1)
	test.ExpectEquality(t, b.word(0x0000, 0x0200), uint16(0x1234))
	test.ExpectEquality(t, mc.Registers().AX, uint16(0x5678))

	lastLocked := -1
	var pending bool
	for i, cs := range states {
		if !cs.Lock {
			continue
		}
		lastLocked = i
		if cs.DMA == "Hrq" {
			pending = true
		}
		test.ExpectFailure(t, cs.DMA == "HoldA" || strings.HasPrefix(cs.DMA, "Operating"), i)
	}
	test.DemandSuccess(t, pending, "hold request while locked")

	// the hold is acknowledged once LOCK is released
	granted := -1
	for i, cs := range states {
		if cs.DMA == "HoldA" {
			granted = i
			break
		}
	}
	test.DemandSuccess(t, granted > lastLocked, "hold acknowledged after LOCK")
}

func TestCycleCallback(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0000, 0x90, 0x90)
	mc := newCPU(t, b, 0x0000, 0x0000)

	stop := errors.New("stop")
	count := 0
	mc.SetCycleCallback(func() error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})

	res, err := mc.StepInstruction()
	test.ExpectSuccess(t, errors.Is(err, stop))
	test.ExpectEquality(t, res.Cycles, count)

	mc.SetCycleCallback(nil)
	_, err = mc.StepInstruction()
	test.ExpectSuccess(t, err)
}

func TestBreakpoints(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0000, 0x90, 0x40, 0x90)
	mc := newCPU(t, b, 0x0000, 0x0000)
	test.DemandSuccess(t, mc.SetBreakpoint(cpu.BreakExecute, 0x00001))
	test.ExpectFailure(t, mc.SetBreakpoint(cpu.BreakInterrupt, 0x100))

	res := step(t, mc)
	test.ExpectEquality(t, res.Status, cpu.StepNormal)

	res = step(t, mc)
	test.ExpectEquality(t, res.Status, cpu.StepBreakpointHit)
	test.ExpectEquality(t, len(res.Events), 1)
	test.ExpectEquality(t, res.Events[0].Kind, cpu.EventBreakpointHit)
	test.ExpectEquality(t, mc.Registers().AX, uint16(0))

	// the CPU stays at the breakpoint until the flag is cleared
	res = step(t, mc)
	test.ExpectEquality(t, res.Status, cpu.StepBreakpointHit)

	mc.ClearBreakpointFlag()
	res = step(t, mc)
	test.ExpectEquality(t, res.Status, cpu.StepNormal)
	test.ExpectEquality(t, mc.Registers().AX, uint16(1))

	mc.ClearBreakpoints()
	mc.SetEndAddress(0x00003)
	step(t, mc)
	res = step(t, mc)
	test.ExpectEquality(t, res.Status, cpu.StepProgramEnd)
}

func TestMemAccessBreakpointWord(t *testing.T) {
	for _, model := range []cpu.Model{cpu.Intel8088, cpu.Intel8086} {
		b := newMockBus()
		b.putInstructions(0x0000, 0x0100, 0x89, 0x07, 0x90) // MOV [BX],AX; NOP
		mc := cpu.NewCPU(nil, model, b)
		mc.SetResetVector(0x0000, 0x0100)
		mc.Reset()
		setRegisters(mc, func(s *registers.Snapshot) {
			s.AX = 0x1234
			s.BX = 0x0200
			s.DS = 0x0000
		})

		// the breakpoint is on the high byte of an aligned word
		test.DemandSuccess(t, mc.SetBreakpoint(cpu.BreakMemAccess, 0x00201))

		res := step(t, mc)
		test.ExpectEquality(t, res.Status, cpu.StepNormal, model)
		test.ExpectEquality(t, b.word(0x0000, 0x0200), uint16(0x1234), model)
		var hit bool
		for _, e := range res.Events {
			hit = hit || e.Kind == cpu.EventBreakpointHit
		}
		test.ExpectSuccess(t, hit, model)

		res = step(t, mc)
		test.ExpectEquality(t, res.Status, cpu.StepBreakpointHit, model)
	}
}

func TestOffRails(t *testing.T) {
	b := newMockBus()
	mc := newCPU(t, b, 0x0000, 0x1000)

	var err error
	for i := 0; i < 32 && err == nil; i++ {
		_, err = mc.StepInstruction()
	}
	test.ExpectSuccess(t, curated.Is(err, cpu.CPUHalted))
	test.ExpectSuccess(t, mc.IsHalted())

	var offRails, halted bool
	for _, e := range mc.Events() {
		switch e.Kind {
		case cpu.EventOffRails:
			offRails = true
		case cpu.EventHalted:
			halted = true
		}
	}
	test.ExpectSuccess(t, offRails)
	test.ExpectSuccess(t, halted)
}

func TestHaltWake(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0100, 0xf4, 0x40) // HLT; INC AX
	b.putInstructions(0x0200, 0x0000, 0xcf)       // IRET
	b.setWord(0x0000, 0x0020, 0x0000)
	b.setWord(0x0000, 0x0022, 0x0200)

	pic := &mockPIC{vector: 8}
	mc := newCPU(t, b, 0x0000, 0x0100)
	mc.AttachInterruptController(pic)
	setRegisters(mc, func(s *registers.Snapshot) {
		s.SS = 0x0000
		s.SP = 0x8000
		s.Flags |= flagInterrupt
	})

	step(t, mc)
	test.ExpectSuccess(t, mc.IsHalted())

	res := step(t, mc)
	test.ExpectSuccess(t, res.Halted)
	test.ExpectSuccess(t, mc.IsHalted())

	pic.intr = true
	step(t, mc)
	test.ExpectFailure(t, mc.IsHalted())
	test.ExpectEquality(t, mc.Registers().CS, uint16(0x0200))

	step(t, mc) // IRET
	step(t, mc) // INC AX
	test.ExpectEquality(t, mc.Registers().AX, uint16(1))
}

func TestIntrLevel(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0100, 0x90, 0x90)                   // NOP; NOP
	b.putInstructions(0x0200, 0x0000, 0xfb, 0x90, 0x90, 0x90, 0xcf) // STI; NOP; NOP; NOP; IRET
	b.setWord(0x0000, 0x001c, 0x0000)
	b.setWord(0x0000, 0x001e, 0x0200)

	mc := newCPU(t, b, 0x0000, 0x0100)
	setRegisters(mc, func(s *registers.Snapshot) {
		s.SS = 0x0000
		s.SP = 0x8000
		s.Flags |= flagInterrupt
	})

	mc.SetINTR(true)
	step(t, mc)
	test.DemandSuccess(t, mc.LastResult.Interrupted, "interrupt taken")
	test.ExpectEquality(t, mc.LastResult.Vector, uint8(7))
	test.ExpectEquality(t, mc.Registers().CS, uint16(0x0200))
	sp := mc.Registers().SP

	// the line is still high so the interrupt is taken again once the
	// handler enables interrupts
	var again bool
	for i := 0; i < 4 && !again; i++ {
		step(t, mc)
		again = mc.LastResult.Interrupted
	}
	test.DemandSuccess(t, again, "interrupt taken again")
	r := mc.Registers()
	test.ExpectEquality(t, r.SP, sp-6)
	test.ExpectEquality(t, b.word(r.SS, r.SP+2), uint16(0x0200), "return CS")

	// lowering the line stops any further interrupts
	mc.SetINTR(false)
	for i := 0; i < 5; i++ {
		step(t, mc)
		test.ExpectFailure(t, mc.LastResult.Interrupted)
	}
	test.ExpectEquality(t, mc.Registers().SP, sp)
}

func TestNECUndefined(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0100, 0xd6) // SALC on the 8088, undefined on the V20
	b.setWord(0x0000, 0x0018, 0x0010)
	b.setWord(0x0000, 0x001a, 0x0040)

	mc := cpu.NewCPU(nil, cpu.NecV20, b)
	mc.SetResetVector(0x0000, 0x0100)
	mc.Reset()
	setRegisters(mc, func(s *registers.Snapshot) {
		s.SS = 0x0000
		s.SP = 0x8000
	})

	res := step(t, mc)
	test.ExpectEquality(t, res.Outcome, execution.UndefinedOpcode)
	test.ExpectEquality(t, mc.Registers().CS, uint16(0x0040))
	test.ExpectEquality(t, mc.Registers().IP, uint16(0x0010))

	mc = newCPU(t, b, 0x0000, 0x0100)
	setRegisters(mc, func(s *registers.Snapshot) {
		s.Flags |= flagCarry
	})
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Quirk, execution.SALC)
	test.ExpectEquality(t, mc.Registers().AX&0x00ff, uint16(0x00ff))
}
