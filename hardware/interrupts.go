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

// InterruptLatch is a minimal interrupt controller. Interrupt requests are
// queued and acknowledged in the order they were raised. The NMI line is
// level triggered and the CPU latches the rising edge.
type InterruptLatch struct {
	pending []uint8
	nmi     bool

	// number of interrupts acknowledged since the last reset
	acks int
}

// NewInterruptLatch is the preferred method of initialisation for the
// InterruptLatch type.
func NewInterruptLatch() *InterruptLatch {
	return &InterruptLatch{}
}

// Reset drops all pending interrupts and lowers the NMI line.
func (l *InterruptLatch) Reset() {
	l.pending = l.pending[:0]
	l.nmi = false
	l.acks = 0
}

// Raise requests an interrupt with the vector.
func (l *InterruptLatch) Raise(vector uint8) {
	l.pending = append(l.pending, vector)
}

// SetNMI sets the level of the NMI line.
func (l *InterruptLatch) SetNMI(v bool) {
	l.nmi = v
}

// Pending returns the number of interrupts that have not been acknowledged.
func (l *InterruptLatch) Pending() int {
	return len(l.pending)
}

// Acks returns the number of interrupts acknowledged since the last reset.
func (l *InterruptLatch) Acks() int {
	return l.acks
}

// IntrPending implements the bus.InterruptController interface.
func (l *InterruptLatch) IntrPending() bool {
	return len(l.pending) > 0
}

// NMIPending implements the bus.InterruptController interface.
func (l *InterruptLatch) NMIPending() bool {
	return l.nmi
}

// AckInterrupt implements the bus.InterruptController interface.
func (l *InterruptLatch) AckInterrupt() uint8 {
	if len(l.pending) == 0 {
		// a spurious interrupt. the 8259 returns IRQ7
		return 0x0f
	}
	v := l.pending[0]
	l.pending = l.pending[1:]
	l.acks++
	return v
}
