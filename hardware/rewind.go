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
	"github.com/jetsetilly/gopher8088/curated"
)

// the number of steps that can be undone
const defaultRewindLength = 16

// rewind is a ring of the states recorded before each step
type rewind struct {
	steps []*State
	next  int
	count int
}

func newRewind(n int) *rewind {
	return &rewind{steps: make([]*State, n)}
}

func (r *rewind) reset() {
	clear(r.steps)
	r.next = 0
	r.count = 0
}

func (r *rewind) push(s *State) {
	if len(r.steps) == 0 {
		return
	}
	r.steps[r.next] = s
	r.next = (r.next + 1) % len(r.steps)
	r.count = min(r.count+1, len(r.steps))
}

func (r *rewind) pop() *State {
	if r.count == 0 {
		return nil
	}
	r.next = (r.next - 1 + len(r.steps)) % len(r.steps)
	r.count--
	s := r.steps[r.next]
	r.steps[r.next] = nil
	return s
}

// record the state of the machine before a step
func (m *Machine) record() error {
	s, err := m.Snapshot()
	if err != nil {
		return err
	}
	m.rewind.push(s)
	return nil
}

// RewindAvailable returns the number of steps that can be undone.
func (m *Machine) RewindAvailable() int {
	return m.rewind.count
}

// Rewind undoes the most recent call to Step(), or the instruction started
// by StepCycle(). An instruction in progress is abandoned.
func (m *Machine) Rewind() error {
	s := m.rewind.pop()
	if s == nil {
		return curated.Errorf(MachineError, "nothing to rewind")
	}
	m.CPU.Abandon()
	return m.Plumb(s)
}
