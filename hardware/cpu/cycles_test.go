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
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/test"
)

// newCollectingCPU is newCPU() with cycle state collection turned on
func newCollectingCPU(t *testing.T, b *mockBus, cs uint16, ip uint16) *cpu.CPU {
	t.Helper()
	mc := newCPU(t, b, cs, ip)
	mc.SetCycleStateCollection(true)
	return mc
}

// stepStates runs one instruction and checks that there is exactly one cycle
// state for every cycle of the step
func stepStates(t *testing.T, mc *cpu.CPU) (cpu.StepResult, []biu.CycleState) {
	t.Helper()
	res := step(t, mc)
	states := append([]biu.CycleState{}, mc.CycleStates()...)
	test.DemandEquality(t, len(states), res.Cycles, "one state per cycle")
	for i := 1; i < len(states); i++ {
		test.DemandEquality(t, states[i].Cycle, states[i-1].Cycle+1, i)
	}
	return res, states
}

func TestCycleStatesALU(t *testing.T) {
	b := newMockBus()

	// the multiply gives the BIU time to fill the queue so that the ADD
	// runs entirely from prefetched bytes
	b.putInstructions(0x0000, 0x0100,
		0xf6, 0xe3, // MUL BL
		0x01, 0xd8, // ADD AX,BX
		0x90, 0x90, 0x90, 0x90)
	mc := newCollectingCPU(t, b, 0x0000, 0x0100)

	stepStates(t, mc)

	setRegisters(mc, func(s *registers.Snapshot) {
		s.AX = 0x8000
		s.BX = 0x8000
	})

	res, states := stepStates(t, mc)
	test.ExpectEquality(t, res.Cycles, 3)
	test.ExpectEquality(t, mc.Registers().AX, uint16(0x0000))
	test.ExpectEquality(t, mc.Registers().IP, uint16(0x0104))

	// the ModR/M byte is taken from the queue on the first cycle and the
	// next opcode on the last
	test.DemandEquality(t, len(states), 3)
	test.ExpectEquality(t, states[0].QueueOp, biu.Subsequent)
	test.ExpectEquality(t, states[0].QueueByte, uint8(0xd8))
	test.ExpectEquality(t, states[1].QueueOp, biu.Idle)
	test.ExpectEquality(t, states[2].QueueOp, biu.First)
	for i, cs := range states {
		test.ExpectFailure(t, cs.Lock, i)
	}
}

func TestCycleStatesJcc(t *testing.T) {
	run := func(zero bool) (cpu.StepResult, []biu.CycleState) {
		b := newMockBus()
		b.putInstructions(0x1000, 0x0000, 0x74, 0x10) // JE +0x10
		mc := newCollectingCPU(t, b, 0x1000, 0x0000)
		setRegisters(mc, func(s *registers.Snapshot) {
			if zero {
				s.Flags |= flagZero
			}
		})
		return stepStates(t, mc)
	}

	_, notTaken := run(false)
	_, taken := run(true)
	test.ExpectSuccess(t, len(taken) >= len(notTaken)+3)

	// the taken branch flushes the queue and fetches from the target
	var flushed bool
	var target bool
	for _, cs := range taken {
		if cs.QueueOp == biu.Flush {
			flushed = true
		}
		if flushed && cs.StatusLatch == biu.CodeFetch && cs.AddressLatch == 0x10012 {
			target = true
		}
	}
	test.ExpectSuccess(t, flushed, "queue flush")
	test.ExpectSuccess(t, target, "fetch from branch target")

	for _, cs := range notTaken {
		test.ExpectFailure(t, cs.QueueOp == biu.Flush)
	}
}

func TestCycleStatesMovs(t *testing.T) {
	b := newMockBus()
	b.putInstructions(0x0000, 0x0100, []uint8("HI")...)
	b.putInstructions(0x0100, 0x0000, 0xf3, 0xa4) // REP MOVSB
	mc := newCollectingCPU(t, b, 0x0100, 0x0000)
	setRegisters(mc, func(s *registers.Snapshot) {
		s.DS = 0x0000
		s.SI = 0x0100
		s.ES = 0x0000
		s.DI = 0x0200
		s.CX = 2
	})

	for i := uint32(0); i < 2; i++ {
		_, states := stepStates(t, mc)

		read := -1
		write := -1
		for j, cs := range states {
			if read < 0 && cs.StatusLatch == biu.MemRead && cs.AddressLatch == 0x100+i {
				read = j
			}
			if write < 0 && cs.StatusLatch == biu.MemWrite && cs.AddressLatch == 0x200+i {
				write = j
			}
		}
		test.ExpectSuccess(t, read >= 0, "read", i)
		test.ExpectSuccess(t, write > read, "write after read", i)
	}
	test.ExpectEquality(t, string(b.mem[0x200:0x202]), "HI")
	test.ExpectEquality(t, mc.Registers().CX, uint16(0))
}
