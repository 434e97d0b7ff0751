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
	"bytes"
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
)

// the extension of the memory image saved alongside a state file
const memoryImageExt = ".mem"

// State is a copy of the machine. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
//
// Note that mapped devices other than RAM and ROM are not part of the
// snapshot.
type State struct {
	cpu    []byte
	mem    []uint8
	cycles uint64
}

// Snapshot the state of the machine. Returns an error if an instruction is
// in progress.
func (m *Machine) Snapshot() (*State, error) {
	var b bytes.Buffer
	if err := m.CPU.Save(&b); err != nil {
		return nil, err
	}

	s := &State{
		cpu:    b.Bytes(),
		mem:    make([]uint8, memorymap.AddressMask+1),
		cycles: m.cycles,
	}
	for a := range s.mem {
		s.mem[a] = m.Mem.PeekU8(uint32(a))
	}

	return s, nil
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(s *State) error {
	if s == nil {
		panic("machine: cannot plumb in a nil state")
	}

	if err := m.CPU.Load(bytes.NewReader(s.cpu)); err != nil {
		return err
	}
	m.Mem.Load(0, s.mem)
	m.cycles = s.cycles

	return nil
}

// SaveState writes the state of the machine to the named file. The memory
// image is written to a second file with the same name and the .mem
// extension.
func (m *Machine) SaveState(filename string) error {
	s, err := m.Snapshot()
	if err != nil {
		return curated.Errorf(MachineError, err)
	}

	if err := os.WriteFile(filename, s.cpu, 0o644); err != nil {
		return curated.Errorf(MachineError, err)
	}
	if err := os.WriteFile(filename+memoryImageExt, s.mem, 0o644); err != nil {
		return curated.Errorf(MachineError, err)
	}

	return nil
}

// LoadState restores the state of the machine from the files written by
// SaveState().
func (m *Machine) LoadState(filename string) error {
	var s State
	var err error

	s.cpu, err = os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(MachineError, err)
	}
	s.mem, err = os.ReadFile(filename + memoryImageExt)
	if err != nil {
		return curated.Errorf(MachineError, err)
	}
	if len(s.mem) != int(memorymap.AddressMask+1) {
		return curated.Errorf(MachineError, fmt.Sprintf("memory image is %d bytes", len(s.mem)))
	}

	if err := m.Plumb(&s); err != nil {
		return curated.Errorf(MachineError, err)
	}
	m.rewind.reset()

	return nil
}
