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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/dma"
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/queue"
)

// cycle advances the CPU by one T-state without changing the microcode line.
func (mc *CPU) cycle() {
	mc.cycleI(microcode.None)
}

// cycles advances the CPU by n T-states.
func (mc *CPU) cycles(n int) {
	for i := 0; i < n; i++ {
		mc.cycleI(microcode.None)
	}
}

// cyclesI advances the CPU by one T-state for each microcode line.
func (mc *CPU) cyclesI(lines ...uint16) {
	for _, l := range lines {
		mc.cycleI(l)
	}
}

func (mc *CPU) haveWaitStates() bool {
	return mc.busWait > 0 || mc.ioWait > 0 || mc.dmaWait > 0
}

// isLastWait returns true if the current cycle is the one in which the bus
// transfer takes place
func (mc *CPU) isLastWait() bool {
	return (mc.tCycle == biu.T3 || mc.tCycle == biu.Tw) && !mc.haveWaitStates()
}

// cycleI is the T-state engine. the microcode line is recorded for the cycle
// trace only and has no effect on the emulation.
func (mc *CPU) cycleI(line uint16) {
	mc.stepper.cycleStart()

	if line != microcode.None {
		mc.mcPC = line
	}

	if mc.tCycle == biu.Tinit {
		mc.tCycle = biu.T1
	}

	if mc.inInt {
		mc.intElapsed++
	} else {
		mc.instrElapsed++
	}

	// operate the current T-state
	switch mc.busStatusLatch {
	case biu.Passive:
		mc.transferN = 0
		switch mc.fetchState {
		case biu.Delayed:
			if mc.fetchDelay == 0 {
				mc.fetchState = biu.Normal
				mc.biuMakeFetchDecision()
			}
		case biu.PausedFull:
			if mc.queue.HasRoomForFetch() {
				mc.biuMakeFetchDecision()
			}
		}

	case biu.Halt:

	default:
		switch mc.tCycle {
		case biu.Tinit:
			panic("cpu: cannot operate Tinit state")
		case biu.Ti:
			mc.biuMakeFetchDecision()
		case biu.T1:
		case biu.T2:
			mc.operateT2()
		case biu.T3, biu.Tw:
			if mc.isLastWait() {
				mc.biuDoBusTransfer()
				mc.ready = true
			}
		case biu.T4:
			if mc.busStatusLatch == biu.CodeFetch {
				if mc.transferSize == biu.Byte {
					mc.pc += mc.queue.Push8(uint8(mc.dataBus))
				} else {
					mc.pc += mc.queue.Push16(mc.dataBus, mc.queue.Discard())
				}
			}
			if mc.finalTransfer {
				mc.biuMakeFetchDecision()
			}
		}
	}

	mc.recordCycle()

	if mc.cfg.waitStates && mc.cfg.dramRefresh {
		waits := mc.refresh.Tick(dma.Bus{
			Passive:   mc.busStatus == biu.Passive,
			LateCycle: mc.tCycle == biu.T3 || mc.tCycle == biu.Tw || mc.tCycle == biu.T4,
			Lock:      mc.lock,
			BusWait:   mc.busWait,
			IOWait:    mc.ioWait,
		})
		if waits > 0 {
			mc.dmaWait = waits
			mc.ready = false
		}
	}

	if mc.fetchState == biu.Delayed && mc.tCycle != biu.Tw && mc.fetchDelay > 0 {
		mc.fetchDelay--
	}

	mc.advanceTa()
	mc.advanceT()

	mc.lastQueueOp = mc.queueOp
	mc.lastQueueByte = mc.queueByte
	mc.queueOp = biu.Idle

	mc.instrCycle++
	mc.deviceCycles++
	mc.cycleNum++
	if mc.cycleNum&1 == 0 {
		mc.clk0 = !mc.clk0
	}

	if mc.dmaWait > 0 {
		mc.dmaWait--
	}
	if !mc.haveWaitStates() {
		mc.ready = true
	}

	mc.lastQueueLen = mc.queue.Len()

	if mc.cycleCallback != nil {
		if err := mc.cycleCallback(); err != nil && mc.callbackErr == nil {
			mc.callbackErr = err
		}
	}
}

// the 8288 command lines are asserted and wait states are sampled at T2
func (mc *CPU) operateT2() {
	mc.ale = false
	mc.ioWait = 0

	switch mc.busStatusLatch {
	case biu.CodeFetch, biu.MemRead:
		mc.lines.MRDC = true
		mc.busWait = mc.mem.ReadWait(mc.addressLatch, mc.instrElapsed)
	case biu.MemWrite:
		mc.lines.AMWC = true
		mc.busWait = mc.mem.WriteWait(mc.addressLatch, mc.instrElapsed)
	case biu.IORead:
		mc.lines.IORC = true
		mc.ioWait = 1
	case biu.IOWrite:
		mc.lines.AIOWC = true
		mc.ioWait = mc.mem.IOWriteWait(uint16(mc.addressLatch), mc.instrElapsed)
	case biu.InterruptAck:
		mc.lines.INTA = true
		if mc.transferN == 1 {
			mc.lock = true
		}
	}

	if !mc.cfg.waitStates {
		mc.ioWait = 0
		mc.busWait = 0
	}

	if mc.finalTransfer {
		mc.biuMakeFetchDecision()
	}
}

// advanceTa moves the address phase of the next bus cycle along
func (mc *CPU) advanceTa() {
	switch mc.taCycle {
	case biu.Tr:
		mc.taCycle = biu.Ts
	case biu.Ts:
		mc.taCycle = biu.T0
	case biu.T0:
		idle := mc.tCycle == biu.Ti || mc.tCycle == biu.T4
		switch {
		case mc.plStatus == biu.CodeFetch && mc.busPending == biu.NoPending:
			if idle && mc.fetchState != biu.Suspended && mc.fetchState != biu.Halted {
				mc.biuBusBeginFetch()
				mc.taCycle = biu.Td
			}
		case mc.plStatus == biu.CodeFetch && mc.busPending == biu.EULate:
			if idle {
				mc.biuFetchAbort()
			}
		default:
			if idle {
				mc.tCycle = biu.Tinit
				mc.taCycle = biu.Td
			}
		}
	}
}

// advanceT moves the bus cycle to the next T-state
func (mc *CPU) advanceT() {
	switch mc.tCycle {
	case biu.Tinit:
		mc.tCycle = biu.T1
	case biu.Ti, biu.T1:
		switch mc.busStatusLatch {
		case biu.Passive:
		case biu.Halt:
			mc.busStatus = biu.Passive
			mc.busStatusLatch = biu.Passive
			mc.ale = false
			mc.tCycle = biu.Ti
		default:
			if mc.tCycle == biu.Ti {
				mc.tCycle = biu.T1
			} else {
				mc.tCycle = biu.T2
			}
		}
	case biu.T2:
		if mc.haveWaitStates() {
			mc.ready = false
		}
		mc.tCycle = biu.T3
	case biu.T3, biu.Tw:
		if mc.haveWaitStates() {
			if mc.busWait > 0 {
				mc.busWait--
			}
			// IO wait states only drain when no DMA is in progress
			if mc.dmaWait == 0 && mc.ioWait > 0 {
				mc.ioWait--
			}
			mc.tCycle = biu.Tw
		} else {
			mc.biuBusEnd()
			mc.tCycle = biu.T4
		}
	case biu.T4:
		mc.busStatusLatch = biu.Passive
		mc.tCycle = biu.Ti
	}
}

// recordCycle adds the state of the current cycle to the collection and to
// the trace
func (mc *CPU) recordCycle() {
	if !mc.cfg.collectStates && mc.trace == nil {
		return
	}
	cs := mc.cycleState()
	if mc.cfg.collectStates {
		mc.cycleStates = append(mc.cycleStates, cs)
	}
	if mc.trace != nil {
		fmt.Fprintln(mc.trace, cs.String())
	}
}

func (mc *CPU) cycleState() biu.CycleState {
	cs := biu.CycleState{
		Cycle:        mc.cycleNum,
		AddressLatch: mc.addressLatch,
		AddressBus:   mc.addressBus,
		TCycle:       mc.tCycle,
		TaCycle:      mc.taCycle,
		Segment:      mc.busSegment,
		Status:       mc.busStatus,
		StatusLatch:  mc.busStatusLatch,
		ALE:          mc.ale,
		Lines:        mc.lines,
		Ready:        mc.ready,
		Lock:         mc.lock,
		QueueOp:      mc.queueOp,
		QueueByte:    mc.queueByte,
		DataBus:      mc.dataBus,
		DMA:          mc.refresh.Label(),
		Microcode:    mc.mcPC,
	}
	c := mc.queue.Contents()
	cs.QueueLen = len(c)
	copy(cs.Queue[:], c[:min(len(c), queue.MaxSize)])
	return cs
}
