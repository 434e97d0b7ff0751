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
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
)

// fetch delay applied when the queue is at a policy length
const policyDelay = 3

// the number of cycles biuFetchNext will wait for a byte before deciding
// that the BIU has stalled
const fetchTimeout = 20

func (mc *CPU) linear(seg registers.Segment, offset uint16) uint32 {
	return memorymap.Linear(mc.regs.Seg(seg), offset)
}

// biuQueueRead takes a byte from the queue, waiting for the BIU to fill the
// queue if necessary. bytes read by the execution unit, rather than by the
// decoder, advance the microcode line.
func (mc *CPU) biuQueueRead(kind instructions.ReadKind, eu bool) uint8 {
	if mc.fetchState == biu.Delayed && mc.queue.AtPolicyThreshold() {
		mc.fetchDelay = 0
	}

	if b, ok := mc.queue.GetPreload(); ok {
		mc.lastQueueOp = biu.First
		mc.lastQueueByte = b
		mc.mcPC = microcode.Next(mc.mcPC)
		mc.biuFetchOnQueueRead()
		return b
	}

	var b uint8
	if mc.queue.Len() > 0 {
		b = mc.queue.Pop()
		mc.biuFetchOnQueueRead()
	} else {
		for mc.queue.Len() == 0 {
			mc.cycle()
		}
		b = mc.queue.Pop()
	}

	mc.queueByte = b
	if kind == instructions.First {
		mc.queueOp = biu.First
	} else {
		mc.queueOp = biu.Subsequent
	}

	mc.cycle()

	if kind == instructions.Subsequent && eu {
		mc.mcPC = microcode.Next(mc.mcPC)
	}

	return b
}

func (mc *CPU) biuFetchOnQueueRead() {
	if mc.busStatus != biu.Passive || !mc.queue.HasRoomForFetch() {
		return
	}
	switch mc.fetchState {
	case biu.Suspended:
		mc.taCycle = biu.Td
	case biu.PausedFull:
		if mc.tCycle != biu.Ti {
			return
		}
		mc.taCycle = biu.Td
	}
	mc.biuFetchStart()
}

// biuFetchNext reads the first byte of the next instruction into the
// preload slot. not used while a repeated string instruction is in progress
// because the next iteration does not need a new opcode.
func (mc *CPU) biuFetchNext() {
	if mc.inRep {
		return
	}

	if mc.queue.Len() == 0 {
		for timeout := 0; mc.queue.Len() == 0; timeout++ {
			if timeout == fetchTimeout {
				panic("cpu: fetch timeout. bus interface unit has stalled")
			}
			mc.cycle()
			mc.mcPC = microcode.None
		}
	}

	mc.queue.SetPreload()
	mc.queueOp = biu.First
	mc.biuFetchOnQueueRead()
	mc.cycle()
}

func (mc *CPU) biuFetchSuspend() {
	mc.fetchState = biu.Suspended
	if mc.busStatusLatch == biu.CodeFetch {
		mc.biuBusWaitFinish()
	}
	mc.taCycle = biu.Td
	mc.plStatus = biu.Passive
}

func (mc *CPU) biuQueueFlush() {
	mc.queue.Flush()
	mc.queueOp = biu.Flush
	mc.fetchState = biu.Normal
	mc.biuFetchStart()
}

func (mc *CPU) biuMakeFetchDecision() {
	if !mc.queue.HasRoomForFetch() {
		mc.fetchState = biu.PausedFull
		return
	}

	if mc.busPending == biu.EUEarly {
		return
	}

	if mc.fetchState == biu.Suspended || mc.fetchState == biu.Halted {
		return
	}

	if mc.queue.AtPolicyLen() && mc.busStatusLatch == biu.CodeFetch {
		if mc.taCycle == biu.Td {
			if mc.fetchState != biu.Delayed || mc.fetchDelay == 0 {
				mc.fetchState = biu.Delayed
				mc.fetchDelay = policyDelay
			}
		}
	} else if mc.taCycle == biu.Td {
		mc.biuFetchStart()
	}
}

// biuHalt runs the HALT bus cycle
func (mc *CPU) biuHalt() {
	mc.fetchState = biu.Halted
	mc.biuBusWaitFinish()
	if mc.tCycle == biu.T4 {
		mc.cycle()
	}

	mc.tCycle = biu.Ti
	mc.cycle()

	mc.busStatus = biu.Halt
	mc.busStatusLatch = biu.Halt
	mc.busSegment = registers.CS
	mc.tCycle = biu.T1
	mc.ale = true
	mc.dataBus = 0
	mc.transferSize = mc.fetchSize
	mc.operandSize = biu.Operand8
	mc.transferN = 1
	mc.finalTransfer = true
	mc.cycle()
}

// biuInta runs the two interrupt acknowledge bus cycles. the vector is
// placed on the data bus during the second cycle.
func (mc *CPU) biuInta(vector uint8) {
	mc.biuBusBegin(biu.InterruptAck, registers.NoSegment, 0, 0, biu.Byte, biu.Operand16, true)
	mc.biuBusWaitFinish()
	mc.biuBusBegin(biu.InterruptAck, registers.NoSegment, 0, uint16(vector), biu.Byte, biu.Operand16, false)
	mc.biuBusWaitFinish()
}

func (mc *CPU) biuReadU8(seg registers.Segment, offset uint16) uint8 {
	mc.biuBusBegin(biu.MemRead, seg, mc.linear(seg, offset), 0, biu.Byte, biu.Operand8, true)
	mc.biuBusWaitFinish()
	return uint8(mc.dataBus)
}

func (mc *CPU) biuWriteU8(seg registers.Segment, offset uint16, v uint8) {
	mc.biuBusBegin(biu.MemWrite, seg, mc.linear(seg, offset), uint16(v), biu.Byte, biu.Operand8, true)
	mc.biuBusWaitUntilTx()
}

// biuReadU16 reads a word as two byte cycles on the 8088. the 8086 uses a
// single word cycle if the address is even.
func (mc *CPU) biuReadU16(seg registers.Segment, offset uint16) uint16 {
	if mc.fetchSize == biu.Word && offset&1 == 0 {
		mc.biuBusBegin(biu.MemRead, seg, mc.linear(seg, offset), 0, biu.Word, biu.Operand16, true)
		mc.biuBusWaitFinish()
		return mc.dataBus
	}

	mc.biuBusBegin(biu.MemRead, seg, mc.linear(seg, offset), 0, biu.Byte, biu.Operand16, true)
	mc.biuBusWaitFinish()
	w := mc.dataBus & 0x00ff

	mc.biuBusBegin(biu.MemRead, seg, mc.linear(seg, offset+1), 0, biu.Byte, biu.Operand16, false)
	mc.biuBusWaitFinish()
	return w | (mc.dataBus&0x00ff)<<8
}

func (mc *CPU) biuWriteU16(seg registers.Segment, offset uint16, v uint16) {
	if mc.fetchSize == biu.Word && offset&1 == 0 {
		mc.biuBusBegin(biu.MemWrite, seg, mc.linear(seg, offset), v, biu.Word, biu.Operand16, true)
		mc.biuBusWaitUntilTx()
		return
	}

	mc.biuBusBegin(biu.MemWrite, seg, mc.linear(seg, offset), v&0x00ff, biu.Byte, biu.Operand16, true)
	mc.biuBusWaitFinish()
	mc.biuBusBegin(biu.MemWrite, seg, mc.linear(seg, offset+1), v>>8, biu.Byte, biu.Operand16, false)
	mc.biuBusWaitUntilTx()
}

// IO cycles are always byte sized, even on the 8086
func (mc *CPU) biuIOReadU8(port uint16) uint8 {
	mc.biuBusBegin(biu.IORead, registers.NoSegment, uint32(port), 0, biu.Byte, biu.Operand8, true)
	mc.biuBusWaitFinish()
	return uint8(mc.dataBus)
}

func (mc *CPU) biuIOWriteU8(port uint16, v uint8) {
	mc.biuBusBegin(biu.IOWrite, registers.NoSegment, uint32(port), uint16(v), biu.Byte, biu.Operand8, true)
	mc.biuBusWaitUntilTx()
}

func (mc *CPU) biuIOReadU16(port uint16) uint16 {
	mc.biuBusBegin(biu.IORead, registers.NoSegment, uint32(port), 0, biu.Byte, biu.Operand16, true)
	mc.biuBusWaitFinish()
	w := mc.dataBus & 0x00ff
	mc.biuBusBegin(biu.IORead, registers.NoSegment, uint32(port+1), 0, biu.Byte, biu.Operand16, false)
	mc.biuBusWaitFinish()
	return w | (mc.dataBus&0x00ff)<<8
}

func (mc *CPU) biuIOWriteU16(port uint16, v uint16) {
	mc.biuBusBegin(biu.IOWrite, registers.NoSegment, uint32(port), v&0x00ff, biu.Byte, biu.Operand16, true)
	mc.biuBusWaitFinish()
	mc.biuBusBegin(biu.IOWrite, registers.NoSegment, uint32(port+1), v>>8, biu.Byte, biu.Operand16, false)
	mc.biuBusWaitUntilTx()
}

// biuBusWaitFinish cycles until the current bus cycle reaches T4
func (mc *CPU) biuBusWaitFinish() {
	if mc.busStatusLatch == biu.Passive {
		return
	}
	for mc.tCycle != biu.T4 {
		mc.cycle()
	}
}

// biuBusWaitDelay spends any outstanding fetch delay. returns true if there
// was a delay.
func (mc *CPU) biuBusWaitDelay() bool {
	if mc.fetchState != biu.Delayed {
		return false
	}
	if mc.fetchDelay == 0 {
		mc.taCycle = biu.Td
		return true
	}
	mc.cycles(mc.fetchDelay)
	mc.taCycle = biu.Ta
	return true
}

func (mc *CPU) biuBusWaitAddress() {
	for mc.taCycle != biu.Td && mc.taCycle != biu.Ta {
		mc.cycle()
	}
}

// biuBusWaitHalt spends a cycle if a halt bus cycle has just started
func (mc *CPU) biuBusWaitHalt() {
	if mc.busStatusLatch == biu.Passive && mc.tCycle == biu.T1 {
		mc.cycle()
	}
}

// biuBusWaitUntilTx cycles until the data transfer of the current bus cycle
// has happened. used by writes, which do not need to wait for T4
func (mc *CPU) biuBusWaitUntilTx() {
	switch mc.busStatusLatch {
	case biu.MemRead, biu.MemWrite, biu.IORead, biu.IOWrite, biu.CodeFetch:
		for !mc.isLastWait() {
			mc.cycle()
		}
	}
}

// biuBusBegin starts an execution unit bus cycle. code fetches are started
// by biuBusBeginFetch
func (mc *CPU) biuBusBegin(status biu.BusStatus, seg registers.Segment, address uint32, data uint16, size biu.TransferSize, opSize biu.OperandSize, first bool) {
	if status == biu.CodeFetch {
		panic("cpu: code fetch started as an execution unit bus cycle")
	}

	if status.IsMemory() && mc.breakpoints.memAccess(address, size) {
		mc.breakpointFlag = true
		mc.pushEvent(EventBreakpointHit, address)
	}

	abort := false
	switch mc.tCycle {
	case biu.Ti:
		mc.biuAddressStart(status)
	case biu.T1, biu.T2:
		mc.busPending = biu.EUEarly
		mc.biuAddressStart(status)
	default:
		if mc.plStatus == biu.CodeFetch {
			mc.busPending = biu.EULate
			abort = true
		} else if !mc.finalTransfer {
			mc.busPending = biu.EUEarly
		}
	}

	mc.biuBusWaitFinish()
	delayed := mc.biuBusWaitDelay()
	mc.biuBusWaitAddress()

	if delayed || abort {
		mc.biuAddressStart(status)
		mc.biuBusWaitAddress()
	}

	if mc.tCycle == biu.T4 && mc.busStatusLatch != biu.CodeFetch {
		mc.cycle()
	}

	switch {
	case size == biu.Word:
		mc.transferN = 1
		mc.finalTransfer = true
	case first:
		mc.transferN = 1
		mc.finalTransfer = opSize == biu.Operand8
	default:
		mc.transferN = 2
		mc.finalTransfer = true
	}

	// the pipeline status is always reset at T1
	mc.busPending = biu.NoPending
	mc.plStatus = biu.Passive

	mc.busStatus = status
	mc.busStatusLatch = status
	mc.busSegment = seg
	mc.tCycle = biu.Tinit
	mc.addressBus = address
	mc.addressLatch = address
	mc.ale = true
	mc.dataBus = data
	mc.transferSize = size
	mc.operandSize = opSize
}

func (mc *CPU) biuBusEnd() {
	mc.lines.Clear()
}

func (mc *CPU) biuFetchStart() {
	if mc.busPending == biu.EUEarly || mc.plStatus == biu.CodeFetch {
		return
	}
	if mc.fetchState != biu.Delayed {
		mc.fetchState = biu.Normal
		mc.biuAddressStart(biu.CodeFetch)
	}
}

func (mc *CPU) biuAddressStart(status biu.BusStatus) {
	if mc.tCycle != biu.Ti {
		if mc.taCycle != biu.Ta {
			mc.plSlot = !mc.plSlot
		}
	} else {
		mc.plSlot = false
	}

	if mc.taCycle == biu.Ta {
		mc.taCycle = biu.Ts
	} else {
		mc.taCycle = biu.Tr
	}
	mc.plStatus = status
}

func (mc *CPU) biuFetchAbort() {
	mc.taCycle = biu.Ta
}

func (mc *CPU) biuBusBeginFetch() {
	if !mc.queue.HasRoomForFetch() {
		return
	}

	addr := memorymap.Linear(mc.regs.CS(), mc.pc)
	if mc.fetchSize == biu.Word {
		if addr&1 != 0 {
			addr &^= 1
			mc.queue.SetDiscard()
		}
		mc.operandSize = biu.Operand16
	} else {
		mc.operandSize = biu.Operand8
	}

	mc.fetchState = biu.Normal
	mc.plStatus = biu.Passive
	mc.busStatus = biu.CodeFetch
	mc.busStatusLatch = biu.CodeFetch
	mc.busSegment = registers.CS
	mc.tCycle = biu.Tinit
	mc.addressBus = addr
	mc.addressLatch = addr
	mc.ale = true
	mc.dataBus = 0
	mc.transferSize = mc.fetchSize
	mc.transferN = 1
	mc.finalTransfer = true
}

// biuDoBusTransfer moves data between the CPU and the bus. called in the
// last of the T3/Tw states.
func (mc *CPU) biuDoBusTransfer() {
	addr := mc.addressLatch
	port := uint16(addr)

	switch mc.busStatusLatch {
	case biu.CodeFetch:
		if mc.transferSize == biu.Byte {
			b, _ := mc.mem.ReadU8(addr, mc.instrElapsed)
			mc.dataBus = uint16(b)
		} else {
			mc.dataBus, _ = mc.mem.ReadU16(addr, mc.instrElapsed)
		}

	case biu.MemRead:
		if mc.transferSize == biu.Byte {
			b, _ := mc.mem.ReadU8(addr, mc.instrElapsed)
			mc.dataBus = uint16(b)
		} else {
			mc.dataBus, _ = mc.mem.ReadU16(addr, mc.instrElapsed)
		}
		mc.instrElapsed = 0

	case biu.MemWrite:
		mc.lines.MWTC = true
		if mc.transferSize == biu.Byte {
			mc.mem.WriteU8(addr, uint8(mc.dataBus), mc.instrElapsed)
		} else {
			mc.mem.WriteU16(addr, mc.dataBus, mc.instrElapsed)
		}
		mc.instrElapsed = 0

	case biu.IORead:
		mc.lines.IORC = true
		mc.dataBus = uint16(mc.mem.IORead(port, mc.instrElapsed))
		mc.instrElapsed = 0

	case biu.IOWrite:
		mc.lines.IOWC = true
		mc.mem.IOWrite(port, uint8(mc.dataBus), mc.instrElapsed)
		mc.instrElapsed = 0

	case biu.InterruptAck:
		if mc.transferN == 2 {
			mc.lock = false
		}
	}

	mc.busStatus = biu.Passive
	mc.addressBus = (mc.addressBus &^ 0xff) | uint32(mc.dataBus)
}
