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
	"os"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/instance"
	"github.com/jetsetilly/gopher8088/hardware/memory"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8088/logger"
)

// MachineError is the pattern of errors returned by the Machine type.
const MachineError = "machine: %v"

// DefaultRAM is the amount of conventional memory used when none is
// specified.
const DefaultRAM = 640 * 1024

// Machine is the main container for the emulated components.
type Machine struct {
	Instance *instance.Instance

	CPU        *cpu.CPU
	Mem        *memory.Memory
	Interrupts *InterruptLatch

	// number of cycles since the last reset
	cycles uint64

	// called at the end of every CPU cycle
	cycleHook func() error

	rewind *rewind
}

// NewMachine creates a new machine and everything associated with the
// hardware. The CPU model is taken from the instance's preferences.
func NewMachine(inst *instance.Instance, ram uint32) (*Machine, error) {
	if inst == nil {
		var err error
		inst, err = instance.NewInstance(nil)
		if err != nil {
			return nil, curated.Errorf(MachineError, err)
		}
	}

	model, err := cpu.ParseModel(inst.Prefs.Model.String())
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	m := &Machine{
		Instance:   inst,
		Interrupts: NewInterruptLatch(),
	}

	m.Mem, err = memory.NewMemory(ram)
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	m.CPU = cpu.NewCPU(inst, model, m.Mem)
	m.CPU.AttachInterruptController(m.Interrupts)
	m.CPU.SetCycleCallback(m.cycle)

	m.rewind = newRewind(defaultRewindLength)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s [%s] %s", m.CPU.Model(), m.Mem, m.Instance.Prefs)
}

func (m *Machine) cycle() error {
	m.cycles++
	if m.cycleHook != nil {
		return m.cycleHook()
	}
	return nil
}

// SetCycleHook sets the function called at the end of every CPU cycle. An
// error returned by the hook is returned by the Run() and Step() functions
// at the end of the instruction.
func (m *Machine) SetCycleHook(f func() error) {
	m.cycleHook = f
}

// Cycles returns the number of CPU cycles since the last reset.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// Reset the CPU and the interrupt latch. Memory is not changed.
func (m *Machine) Reset() {
	m.Interrupts.Reset()
	m.CPU.Reset()
	m.cycles = 0
	m.rewind.reset()
}

// LoadProgram copies the program to memory at the segmented address, sets
// the reset vector to the start of the program and resets the machine.
func (m *Machine) LoadProgram(data []uint8, seg uint16, offset uint16) {
	m.Mem.Load(memorymap.Linear(seg, offset), data)
	m.CPU.SetResetVector(seg, offset)
	m.Reset()
	logger.Logf(m.Instance, "machine", "loaded %d bytes at %04x:%04x", len(data), seg, offset)
}

// LoadBinary loads a program from a file. See LoadProgram().
func (m *Machine) LoadBinary(filename string, seg uint16, offset uint16) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(MachineError, err)
	}
	if len(data) == 0 {
		return curated.Errorf(MachineError, fmt.Sprintf("%s is empty", filename))
	}
	m.LoadProgram(data, seg, offset)
	return nil
}

// LoadROM maps the contents of a file as ROM at the origin. The reset vector
// is not changed.
func (m *Machine) LoadROM(filename string, origin uint32) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(MachineError, err)
	}
	if err := m.Mem.MapROM(origin, data); err != nil {
		return curated.Errorf(MachineError, err)
	}
	logger.Logf(m.Instance, "machine", "ROM %s at %05x", filename, origin)
	return nil
}
