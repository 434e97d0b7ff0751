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

package dma

import "fmt"

// State of the DMA handshake.
type State int

// List of valid State values. Operating is qualified by the Scheduler's
// operating count.
const (
	Idle State = iota
	Dreq
	Hrq
	HoldA
	Operating
	End
)

var stateNames = [...]string{"Idle", "Dreq", "Hrq", "HoldA", "Operating", "End"}

func (s State) String() string {
	if s < Idle || s > End {
		return "??"
	}
	return stateNames[s]
}

// number of wait states inserted into the CPU bus cycle by a refresh
const refreshWaits = 7

// Bus is the view of the CPU bus needed by the Scheduler.
type Bus struct {
	// the bus status is passive
	Passive bool

	// the T-state is T3, Tw or T4
	LateCycle bool

	// the CPU is asserting LOCK
	Lock bool

	// outstanding wait states for memory and IO bus cycles
	BusWait int
	IOWait  int
}

// Scheduler is the DRAM refresh scheduler.
type Scheduler struct {
	State State

	// count of cycles in the Operating state
	Count int

	// refresh period in CPU cycles and the current counter
	Period    int
	Counter   int
	Retrigger bool

	// terminal count reached
	TC bool

	// DMA control lines
	DREQ bool
	DACK bool
	HOLDA bool
	AEN  bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(period int, retrigger bool) *Scheduler {
	s := &Scheduler{}
	s.Configure(period, retrigger)
	return s
}

func (s *Scheduler) String() string {
	return fmt.Sprintf("%s counter=%d", s.Label(), s.Counter)
}

// Label returns the state of the scheduler as shown in the cycle trace.
func (s *Scheduler) Label() string {
	if s.State == Operating {
		return fmt.Sprintf("%s(%d)", s.State, s.Count)
	}
	return s.State.String()
}

// Configure the refresh period and retrigger mode. The scheduler is reset.
func (s *Scheduler) Configure(period int, retrigger bool) {
	if period < 1 {
		period = 1
	}
	s.Period = period
	s.Retrigger = retrigger
	s.Reset()
}

// Reset the scheduler to the idle state with a full counter.
func (s *Scheduler) Reset() {
	s.State = Idle
	s.Count = 0
	s.Counter = s.Period
	s.TC = false
	s.DREQ = false
	s.DACK = false
	s.HOLDA = false
	s.AEN = false
}

// Tick advances the scheduler by one CPU cycle. The return value is the
// number of DMA wait states that the CPU must insert, which is non-zero for
// only one cycle of each refresh.
func (s *Scheduler) Tick(b Bus) int {
	if s.Counter > 0 {
		s.Counter--
	}
	if s.Counter == 0 && !s.TC {
		s.TC = true
		s.DREQ = !s.HOLDA
		if s.Retrigger {
			s.TC = false
			s.Counter = s.Period
		}
	}

	waits := 0

	switch s.State {
	case Idle:
		if s.DREQ {
			s.State = Dreq
		}
	case Dreq:
		s.State = Hrq
	case Hrq:
		// LOCK prevents the hold acknowledge
		if (b.Passive || b.LateCycle) && !b.Lock {
			s.State = HoldA
			s.HOLDA = true
		}
	case HoldA:
		if b.BusWait < 2 && b.IOWait < 2 {
			s.State = Operating
			s.Count = 0
			s.AEN = true
		}
	case Operating:
		s.Count++
		switch s.Count {
		case 1:
			waits = refreshWaits
		case 2:
			s.DREQ = false
			s.DACK = true
		case 4:
			s.HOLDA = false
		case 5:
			s.AEN = false
			s.DACK = false
			s.State = Idle
			s.Count = 0
		}
	case End:
		s.State = Idle
	}

	return waits
}
