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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The returned
// sub-state says why the emulation stopped if it was not stopped by the
// continueCheck() function.
func (m *Machine) Run(continueCheck func() (govern.State, error)) (govern.SubState, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			res, err := m.CPU.StepInstruction()
			if err != nil {
				if curated.Is(err, cpu.CPUHalted) {
					return govern.PausedAtHalt, nil
				}
				return govern.Normal, err
			}

			switch res.Status {
			case cpu.StepBreakpointHit:
				return govern.PausedAtBreakpoint, nil
			case cpu.StepProgramEnd:
				return govern.PausedAtEnd, nil
			}
		case govern.Paused:
		default:
			return govern.Normal, curated.Errorf(MachineError, fmt.Sprintf("unsupported emulation state (%s) in Run() function", state))
		}

		state, err = continueCheck()
		if err != nil {
			return govern.Normal, err
		}
	}

	return govern.Normal, nil
}

// RunForCycleCount runs the emulation for at least the number of cycles.
// The emulation stops at the end of the instruction that reaches the count.
// Useful for performance measurement.
func (m *Machine) RunForCycleCount(numCycles uint64, continueCheck func() (govern.State, error)) (govern.SubState, error) {
	target := m.cycles + numCycles
	return m.Run(func() (govern.State, error) {
		if m.cycles >= target {
			return govern.Ending, nil
		}
		if continueCheck != nil {
			return continueCheck()
		}
		return govern.Running, nil
	})
}
