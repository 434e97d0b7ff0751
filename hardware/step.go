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
	"github.com/jetsetilly/gopher8088/hardware/cpu"
)

// Step runs the CPU for one instruction. The state of the machine before
// the instruction is recorded for Rewind().
func (m *Machine) Step() (cpu.StepResult, error) {
	if !m.CPU.InInstruction() {
		if err := m.record(); err != nil {
			return cpu.StepResult{}, err
		}
	}
	return m.CPU.StepInstruction()
}

// StepCycle runs the CPU for one cycle. The state of the machine is recorded
// for Rewind() when a new instruction is started.
func (m *Machine) StepCycle() error {
	if !m.CPU.InInstruction() {
		if err := m.record(); err != nil {
			return err
		}
	}
	return m.CPU.StepCycle()
}
