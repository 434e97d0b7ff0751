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
	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
)

// Reset the CPU. Registers are cleared, CS:IP is set to the reset vector and
// the reset microcode sequence is run, leaving the BIU ready to fetch the
// first instruction.
//
// Calling Reset twice has the same effect as calling it once.
func (mc *CPU) Reset() {
	mc.configure()

	if mc.cfg.randomState && mc.instance != nil {
		for i := registers.AX; i <= registers.DI; i++ {
			mc.regs.Set16(i, mc.instance.Random.Uint16(int(i)))
		}
		mc.regs.SetSeg(registers.ES, mc.instance.Random.Uint16(8))
		mc.regs.SetSeg(registers.SS, mc.instance.Random.Uint16(9))
		mc.regs.SetSeg(registers.DS, mc.instance.Random.Uint16(10))
	} else {
		mc.regs.Reset()
	}
	mc.regs.Flags.Reset()
	mc.queue.Flush()

	mc.regs.SetSeg(registers.CS, mc.resetCS)
	mc.pc = mc.resetIP

	mc.addressBus = 0
	mc.addressLatch = 0
	mc.dataBus = 0
	mc.busStatus = biu.Passive
	mc.busStatusLatch = biu.Passive
	mc.busSegment = registers.NoSegment
	mc.busPending = biu.NoPending
	mc.tCycle = biu.Ti
	mc.taCycle = biu.Td
	mc.plStatus = biu.Passive
	mc.plSlot = false
	mc.fetchState = biu.Normal
	mc.fetchDelay = 0
	mc.transferN = 0
	mc.finalTransfer = false
	mc.busWait = 0
	mc.ioWait = 0
	mc.dmaWait = 0
	mc.ale = false
	mc.lines.Clear()
	mc.lock = false
	mc.ready = true

	mc.instrCount = 0
	mc.intCount = 0
	mc.instrCycle = 0
	mc.instrElapsed = 0
	mc.intElapsed = 0
	mc.deviceCycles = 0
	mc.cycleNum = 1

	mc.inRep = false
	mc.repInit = false
	mc.repType = repNone
	mc.reentrant = false
	mc.jumped = false
	mc.halted = false
	mc.reportedHalt = false
	mc.opcode0Count = 0
	mc.interruptInhibit = false
	mc.intrPending = false
	mc.inInt = false
	mc.intTaken = false
	mc.trapSuppressed = false
	mc.trapEnableDelay = 0
	mc.trapDisableDelay = 0
	mc.nmiTriggered = false
	mc.breakpointFlag = false
	mc.skipBreakpoint = false

	mc.queueOp = biu.Idle
	mc.lastQueueOp = biu.Idle
	mc.queueByte = 0
	mc.lastQueueByte = 0
	mc.lastQueueLen = 0

	mc.refresh.Configure(mc.cfg.refreshPeriod, mc.cfg.refreshRetrigger)
	mc.history.reset(mc.cfg.historyLength)
	mc.events = mc.events[:0]
	mc.cycleStates = mc.cycleStates[:0]
	mc.callbackErr = nil
	mc.LastResult.Reset()
	mc.lastStep = StepResult{}
	mc.stepper.stop()
	mc.stepper = nil

	mc.cycle()
	mc.biuFetchSuspend()
	mc.cyclesI(0x1e4, 0x1e5)

	if mc.resetQueue != nil {
		mc.setQueueContents(mc.resetQueue)
	} else {
		mc.biuQueueFlush()
	}

	mc.cyclesI(0x1e6, 0x1e7, 0x1e8)

	// the reset sequence is not part of any instruction
	mc.cycleStates = mc.cycleStates[:0]

	mc.logf("reset to %04x:%04x", mc.regs.CS(), mc.IP())
}

// SetResetVector changes the address of the first instruction executed after
// a reset. Takes effect on the next call to Reset().
func (mc *CPU) SetResetVector(cs uint16, ip uint16) {
	mc.resetCS = cs
	mc.resetIP = ip
}

// SetResetQueue sets the bytes that will be in the prefetch queue after the
// next reset. A nil slice restores the normal empty queue. The bytes must be
// the bytes at the reset vector.
func (mc *CPU) SetResetQueue(q []uint8) {
	if len(q) > mc.queue.Size() {
		q = q[:mc.queue.Size()]
	}
	if q == nil {
		mc.resetQueue = nil
		return
	}
	mc.resetQueue = append([]uint8{}, q...)
}

// SetEndAddress sets the linear address at which StepInstruction() reports
// the end of the program.
func (mc *CPU) SetEndAddress(address uint32) {
	mc.endAddress = address & memorymap.AddressMask
	mc.endAddressSet = true
}

// setQueueContents replaces the queue contents. PC is advanced past the new
// contents so that IP is unchanged
func (mc *CPU) setQueueContents(q []uint8) {
	mc.queue.Flush()
	for _, b := range q {
		mc.pc += mc.queue.Push8(b)
	}
	mc.queueOp = biu.Flush
	mc.fetchState = biu.Normal
	mc.biuFetchStart()
}
