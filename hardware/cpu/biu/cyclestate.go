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

package biu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/queue"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// CycleState is a record of the CPU pins and internal bus state for a
// single cycle.
type CycleState struct {
	// cycle number since reset
	Cycle uint64

	// address latched at T1 and the current state of the address bus
	AddressLatch uint32
	AddressBus   uint32

	TCycle  TCycle
	TaCycle TaCycle

	// segment used for the bus cycle
	Segment registers.Segment

	// bus status and the latched status
	Status      BusStatus
	StatusLatch BusStatus

	ALE   bool
	Lines Lines
	Ready bool
	Lock  bool

	QueueOp   QueueOp
	QueueByte uint8
	QueueLen  int
	Queue     [queue.MaxSize]uint8

	DataBus uint16

	// label of the DMA state
	DMA string

	// microcode line executing in the cycle
	Microcode uint16
}

// QueueContents returns the valid part of the Queue field.
func (cs CycleState) QueueContents() []uint8 {
	return cs.Queue[:cs.QueueLen]
}

// String returns a single line description of the cycle, suitable for a
// cycle trace.
func (cs CycleState) String() string {
	s := strings.Builder{}

	ale := ' '
	if cs.ALE {
		ale = 'A'
	}
	ready := ' '
	if !cs.Ready {
		ready = 'W'
	}
	lock := ' '
	if cs.Lock {
		lock = 'L'
	}

	fmt.Fprintf(&s, "%08d %05X:%c %s %-4s %s %s %c%c [%s] ",
		cs.Cycle, cs.AddressLatch, ale, cs.Segment, cs.StatusLatch, cs.TCycle, cs.TaCycle,
		ready, lock, cs.Lines)

	if cs.Status.IsMemory() || cs.Status.IsIO() || cs.Status == InterruptAck {
		fmt.Fprintf(&s, "D:%04X ", cs.DataBus)
	} else {
		s.WriteString("D:---- ")
	}

	fmt.Fprintf(&s, "%s", cs.QueueOp)
	if cs.QueueOp == First || cs.QueueOp == Subsequent {
		fmt.Fprintf(&s, " %02X", cs.QueueByte)
	} else {
		s.WriteString(" --")
	}

	fmt.Fprintf(&s, " %d [", cs.QueueLen)
	for i, b := range cs.QueueContents() {
		if i > 0 {
			s.WriteRune(' ')
		}
		fmt.Fprintf(&s, "%02X", b)
	}
	s.WriteRune(']')

	fmt.Fprintf(&s, " %-12s %s", cs.DMA, microcode.String(cs.Microcode))

	return strings.TrimRight(s.String(), " ")
}
