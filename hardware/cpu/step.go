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
	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// StepStatus summarises a call to StepInstruction().
type StepStatus int

// List of valid StepStatus values.
const (
	// an instruction, or one iteration of a repeated string instruction,
	// was executed. also the status when the CPU is halted and waiting for
	// an interrupt
	StepNormal StepStatus = iota

	// the CPU did not execute an instruction because a breakpoint has been
	// reached. call ClearBreakpointFlag() to continue
	StepBreakpointHit

	// the CPU did not execute an instruction because the end address has
	// been reached
	StepProgramEnd
)

var stepStatusNames = [...]string{"Normal", "BreakpointHit", "ProgramEnd"}

func (s StepStatus) String() string {
	if s < StepNormal || s > StepProgramEnd {
		return "??"
	}
	return stepStatusNames[s]
}

// StepResult is returned by StepInstruction().
type StepResult struct {
	Status StepStatus

	// the outcome of the instruction. not meaningful if the status is not
	// StepNormal or if the CPU was halted
	Outcome execution.Outcome

	// the CPU was in the halt state for the entire step
	Halted bool

	// cycles spent, including any interrupt sequence and the fetch of the
	// next instruction's first byte
	Cycles int

	// events raised during the step. the events also remain in the queue
	// drained by Events()
	Events []Event
}

// Error patterns returned by StepInstruction().
const (
	CPUHalted   = "cpu: halted at %05x"
	DecodeError = "cpu: decode error at %05x: %v"
)

// cycles spent in each step while halted. a pending interrupt reduces the
// count so that the CPU wakes on the correct cycle
const (
	haltCycles         = 5
	haltCyclesImminent = 1
)

// the vector used for an INTR when no interrupt controller is attached
const defaultIntrVector = 7

// SetCycleCallback sets the function called at the end of every cycle. The
// first error returned by the callback is returned by StepInstruction() or
// StepCycle() once the instruction has completed. A nil function removes the
// callback.
func (mc *CPU) SetCycleCallback(f func() error) {
	mc.cycleCallback = f
}

// ClearBreakpointFlag allows execution to continue after a breakpoint has
// been hit. The breakpoint itself is not removed but will not trigger again
// until a different instruction has been executed.
func (mc *CPU) ClearBreakpointFlag() {
	mc.breakpointFlag = false
	mc.skipBreakpoint = true
}

// StepInstruction runs the CPU for one instruction, including any interrupt
// taken at the end of the instruction and the fetch of the first byte of the
// next instruction. A repeated string instruction is run for one iteration.
//
// If StepCycle() has started an instruction, the instruction is completed.
func (mc *CPU) StepInstruction() (StepResult, error) {
	if s := mc.stepper; s != nil {
		return mc.finishStepper(s)
	}
	res, err := mc.stepInstruction()
	mc.lastStep = res
	return res, err
}

func (mc *CPU) stepInstruction() (StepResult, error) {
	mc.callbackErr = nil
	events := len(mc.events)

	status, halted, err := mc.step()
	if err == nil && status == StepNormal {
		mc.stepFinish()
	}

	res := StepResult{
		Status:  status,
		Outcome: mc.LastResult.Outcome,
		Halted:  halted,
		Cycles:  mc.instrCycle,
	}
	if len(mc.events) > events {
		res.Events = append([]Event{}, mc.events[events:]...)
	}

	if err == nil {
		err = mc.callbackErr
	}
	mc.callbackErr = nil

	return res, err
}

// step executes the next instruction but does not fetch the next one.
// returns true if the CPU was halted for the entire step
func (mc *CPU) step() (StepStatus, bool, error) {
	mc.instrCycle = 0
	mc.instrElapsed = mc.intElapsed
	mc.cycleStates = mc.cycleStates[:0]
	mc.quirk = execution.NoQuirk
	mc.LastResult.Reset()

	if mc.halted {
		n := haltCycles
		if mc.intrLine() || mc.nmiLine() {
			n = haltCyclesImminent
		}
		mc.cycles(n)
		return StepNormal, true, nil
	}

	if !mc.inRep {
		mc.instrCS = mc.regs.CS()
		mc.instrIP = mc.IP()
		mc.instrAddress = mc.linear(registers.CS, mc.instrIP)

		if mc.endAddressSet && mc.instrAddress == mc.endAddress {
			mc.pushEvent(EventProgramEnd, mc.instrAddress)
			return StepProgramEnd, false, nil
		}

		if mc.breakpointFlag {
			return StepBreakpointHit, false, nil
		}

		if !mc.skipBreakpoint && mc.breakpoints.execute(mc.instrAddress) {
			mc.breakpointFlag = true
			mc.pushEvent(EventBreakpointHit, mc.instrAddress)
			mc.logf("breakpoint at %05x", mc.instrAddress)
			return StepBreakpointHit, false, nil
		}
		mc.skipBreakpoint = false

		ins, err := mc.decoder.Decode(queueReader{mc: mc}, false)
		if err != nil {
			return StepNormal, false, curated.Errorf(DecodeError, mc.instrAddress, err)
		}
		mc.instr = ins
		mc.instr.CS = mc.instrCS
		mc.instr.IP = mc.instrIP
	}

	// the LOCK pin is held from the first bus cycle of the operand until
	// the end of the instruction
	if mc.instr.Prefixes&instructions.PrefixLock != 0 {
		mc.lock = true
	}

	mc.loadOperand()
	outcome := mc.execute()
	mc.lock = false

	if outcome != execution.OkayRep {
		mc.instrCount++
	}

	mc.LastResult = execution.Result{
		Instruction: mc.instr,
		Address:     mc.instrAddress,
		Outcome:     outcome,
		Quirk:       mc.quirk,
	}

	// only valid for a single instruction
	mc.intrPending = false

	if outcome == execution.Halt {
		mc.finalise(false, 0)
		return StepNormal, false, curated.Errorf(CPUHalted, mc.instrAddress)
	}

	return StepNormal, false, nil
}

// stepFinish checks for interrupts at the instruction boundary and fetches
// the first byte of the next instruction
func (mc *CPU) stepFinish() {
	mc.instrElapsed = 0
	mc.intElapsed = 0
	mc.deviceCycles = 0

	var interrupted bool
	var vector uint8

	switch {
	case mc.nmiLine() && !mc.nmiTriggered:
		mc.resume()
		mc.nmiTriggered = true
		mc.int2()
		interrupted = true
		vector = vectorNMI
		mc.biuFetchNext()

	case mc.intrLine() && mc.interruptsEnabled():
		if mc.inRep {
			// the string instruction will see the pending interrupt on its
			// next iteration and rewind to the prefix
			mc.intrPending = true
			break
		}
		mc.resume()
		vector = defaultIntrVector
		if mc.pic != nil {
			vector = mc.pic.AckInterrupt()
		}
		mc.hwInterrupt(vector)
		interrupted = true
		mc.biuFetchNext()

	case mc.trapEnabled():
		mc.resume()
		mc.int1()
		interrupted = true
		vector = vectorTrap
		mc.biuFetchNext()

	case !mc.halted:
		mc.biuFetchNext()
	}

	mc.intTaken = interrupted
	if interrupted {
		mc.intVector = vector
	}

	mc.finalise(interrupted, vector)
}

// finalise the LastResult field and add the instruction to the history
func (mc *CPU) finalise(interrupted bool, vector uint8) {
	if mc.LastResult.Instruction.Definition == nil {
		return
	}

	mc.LastResult.Cycles = mc.instrCycle
	mc.LastResult.Interrupted = interrupted
	mc.LastResult.Vector = vector
	mc.LastResult.Final = true

	if mc.reentrant && !interrupted {
		return
	}

	mc.history.push(HistoryEntry{
		CS:          mc.instrCS,
		IP:          mc.instrIP,
		Cycles:      mc.instrCycle,
		Instruction: mc.instr,
		Jumped:      mc.jumped,
		Interrupted: interrupted,
		Vector:      vector,
	})
}

// Disassemble decodes the instruction at the address without affecting the
// state of the CPU.
func (mc *CPU) Disassemble(address uint32) (instructions.Instruction, error) {
	r := &memoryReader{mc: mc, address: address}
	ins, err := mc.decoder.Decode(r, true)
	if err != nil {
		return ins, curated.Errorf(DecodeError, address, err)
	}
	return ins, nil
}
