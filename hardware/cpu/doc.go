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

// Package cpu emulates the Intel 8088 and 8086, and the NEC V20 and V30 in
// 8086 compatibility mode, at the level of individual bus cycles. The CPU
// is divided in the same way as the real part: the bus interface unit (BIU)
// runs the T-state machine and keeps the prefetch queue full, and the
// execution unit (EU) runs the instruction, spending each cycle on a line of
// microcode. The microcode line is only a label. It is recorded in the cycle
// trace but no microcode program is interpreted.
//
// The CPU requires an instance of the bus.Bus interface. The bus supplies
// the memory and IO spaces and reports the number of wait states for every
// access. See the bus package for details. An interrupt controller can be
// attached with AttachInterruptController().
//
// The bread-and-butter of the CPU type is the StepInstruction() function. It
// runs one instruction, checks for interrupts at the instruction boundary
// and fetches the first byte of the next instruction. A repeated string
// instruction is run for one iteration per call.
//
//	mc := cpu.NewCPU(nil, cpu.Intel8088, mem)
//	mc.Reset()
//
//	for {
//		res, err := mc.StepInstruction()
//		if err != nil {
//			break
//		}
//		fmt.Println(mc.LastResult, res.Cycles)
//	}
//
// StepCycle() runs the CPU for exactly one cycle. The instruction is run in
// a coroutine that is suspended between cycles, so the two step functions
// can be mixed freely. InInstruction() is false as soon as the final cycle of
// the instruction has run.
//
// A function can be called at the end of every cycle with
// SetCycleCallback(). This is how the hardware package keeps devices in step
// with the CPU. An error returned by the callback does not interrupt the
// instruction but is returned once the instruction has completed.
//
// The LastResult field can be inspected for information about the last
// instruction executed. See the execution package for more information.
// The CycleStates() function returns the state of the bus for every cycle of
// the last step, if collection has been enabled.
//
// The state of the CPU can be saved and restored with Save() and Load(),
// between instructions only. The contents of memory are not part of the
// state.
package cpu
