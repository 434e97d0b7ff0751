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
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// fixed interrupt vectors
const (
	vectorDivide    = 0
	vectorTrap      = 1
	vectorNMI       = 2
	vectorBreak     = 3
	vectorOverflow  = 4
	vectorUndefined = 6
)

// intrRoutine is the INTR microcode routine shared by every kind of
// interrupt. skipFirst is true if the caller has jumped past the first line.
func (mc *CPU) intrRoutine(vector uint8, skipFirst bool) {
	if mc.breakpoints.interrupt(vector) {
		mc.breakpointFlag = true
		mc.pushEvent(EventBreakpointHit, uint32(vector))
	}

	if !skipFirst {
		mc.cycleI(0x19d)
	}
	mc.cyclesI(0x19e, 0x19f)

	address := uint16(vector) * 4
	ip := mc.biuReadU16(registers.NoSegment, address)
	mc.cycleI(0x1a1)
	cs := mc.biuReadU16(registers.NoSegment, address+2)
	mc.intCount++

	mc.biuFetchSuspend()
	mc.cyclesI(0x1a3, 0x1a4, 0x1a5)
	mc.pushFlags()
	mc.regs.Flags.Interrupt = false
	mc.regs.Flags.Trap = false
	mc.cycleI(0x1a6)
	mc.farcall2(cs, ip)
}

// hwInterrupt runs the interrupt acknowledge cycles before the interrupt
// routine. the vector is placed on the data bus by the second INTA cycle
func (mc *CPU) hwInterrupt(vector uint8) {
	mc.inInt = true
	mc.mcPC = 0x19a
	mc.biuInta(vector)
	mc.biuFetchSuspend()
	mc.cyclesI(0x19b, 0x19c)
	mc.intrRoutine(vector, false)
	mc.inInt = false
}

func (mc *CPU) swInterrupt(vector uint8) {
	mc.intrRoutine(vector, false)
}

// divide error
func (mc *CPU) int0() {
	mc.cyclesI(0x1a7, microcode.Jump)
	mc.intrRoutine(vectorDivide, true)
}

// single step trap
func (mc *CPU) int1() {
	mc.cyclesI(0x198, microcode.Jump)
	mc.intrRoutine(vectorTrap, true)
}

// non-maskable interrupt
func (mc *CPU) int2() {
	mc.cyclesI(0x199, microcode.Jump)
	mc.intrRoutine(vectorNMI, true)
}

// breakpoint instruction
func (mc *CPU) int3() {
	mc.cyclesI(0x1b1, 0x1b2, microcode.Jump)
	mc.intrRoutine(vectorBreak, false)
}

// interruptsEnabled returns true if an INTR can be accepted at the current
// instruction boundary
func (mc *CPU) interruptsEnabled() bool {
	return mc.regs.Flags.Interrupt && !mc.interruptInhibit
}

// trapEnabled returns true if a single step trap should be taken at the
// current instruction boundary. a POPF or IRET that clears TF is still
// trapped. one that sets TF is not
func (mc *CPU) trapEnabled() bool {
	return (mc.regs.Flags.Trap || mc.trapDisableDelay != 0) && !mc.trapSuppressed && mc.trapEnableDelay == 0
}

// resume from the halt state
func (mc *CPU) resume() {
	if !mc.halted {
		return
	}
	mc.cycles(mc.cfg.haltResumeDelay)
	mc.halted = false
	mc.reportedHalt = false
}
