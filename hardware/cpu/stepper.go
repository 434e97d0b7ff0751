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
	"iter"
)

// stepper runs an instruction one cycle at a time. the instruction runs in
// a coroutine created by iter.Pull and the cycle engine yields at the start
// of every cycle except the first. the final cycle of an instruction
// therefore returns straight to the completion of the instruction
type stepper struct {
	next  func() (struct{}, bool)
	stopf func()
	yield func(struct{}) bool

	// run to the end of the instruction without yielding
	free bool

	// the first cycle of the instruction has started
	started bool

	done   bool
	result StepResult
	err    error
}

// panic value used to unwind the coroutine when the stepper is stopped
// before the instruction has completed
type stepperStopped struct{}

func (mc *CPU) newStepper() *stepper {
	s := &stepper{}
	s.next, s.stopf = iter.Pull(func(yield func(struct{}) bool) {
		s.yield = yield
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(stepperStopped); ok {
					return
				}
				panic(r)
			}
		}()
		s.result, s.err = mc.stepInstruction()
		s.done = true
	})
	return s
}

// cycleStart is called by the cycle engine before every cycle
func (s *stepper) cycleStart() {
	if s == nil || s.free || s.yield == nil {
		return
	}
	if !s.started {
		s.started = true
		return
	}
	if !s.yield(struct{}{}) {
		panic(stepperStopped{})
	}
}

// stop abandons the instruction. safe to call on a nil stepper
func (s *stepper) stop() {
	if s == nil {
		return
	}
	s.stopf()
}

// StepCycle runs the CPU for exactly one cycle, starting a new instruction
// if necessary. The instruction is completed by the final call to StepCycle()
// or by a call to StepInstruction(). LastResult is valid once the
// instruction has completed.
//
// A breakpoint or the end address stops the CPU before the instruction
// starts. In those cases no cycle is run.
func (mc *CPU) StepCycle() error {
	if mc.stepper == nil {
		mc.stepper = mc.newStepper()
	}
	s := mc.stepper

	if _, ok := s.next(); ok {
		return nil
	}

	mc.stepper = nil
	s.stop()
	mc.lastStep = s.result
	return s.err
}

// finishStepper runs the instruction started by StepCycle() to completion
func (mc *CPU) finishStepper(s *stepper) (StepResult, error) {
	s.free = true
	for {
		if _, ok := s.next(); !ok {
			break
		}
	}
	mc.stepper = nil
	s.stop()
	mc.lastStep = s.result
	return s.result, s.err
}

// LastStep returns the result of the most recently completed instruction.
// Useful with StepCycle(), which does not return the result directly.
func (mc *CPU) LastStep() StepResult {
	return mc.lastStep
}

// InInstruction returns true if StepCycle() has started an instruction that
// has not yet completed.
func (mc *CPU) InInstruction() bool {
	return mc.stepper != nil
}

// Abandon stops an instruction started by StepCycle() without completing
// it. The state of the CPU is left as it was at the end of the last cycle.
func (mc *CPU) Abandon() {
	if s := mc.stepper; s != nil {
		mc.stepper = nil
		s.stop()
	}
}
