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

package queue

import (
	"fmt"
	"strings"
)

// MaxSize is the largest queue supported.
const MaxSize = 6

// Queue is the prefetch queue. The zero value is not usable; use NewQueue().
type Queue struct {
	size      int
	fetchSize int

	policyLen0 int
	policyLen1 int

	len   int
	back  int
	front int
	q     [MaxSize]uint8

	preload    uint8
	hasPreload bool

	// the low byte of the next word fetch should be discarded
	discard bool
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(size int, fetchSize int) *Queue {
	q := &Queue{}
	q.SetSize(size, fetchSize)
	return q
}

// SetSize changes the size of the queue and the size of each fetch. The
// queue is flushed.
func (q *Queue) SetSize(size int, fetchSize int) {
	if size > MaxSize || size < 1 {
		panic(fmt.Sprintf("queue: illegal size %d", size))
	}
	if fetchSize != 1 && fetchSize != 2 {
		panic(fmt.Sprintf("queue: illegal fetch size %d", fetchSize))
	}

	q.size = size
	q.fetchSize = fetchSize
	if fetchSize == 1 {
		q.policyLen0 = size - 1
		q.policyLen1 = size - 1
	} else {
		q.policyLen0 = size - 2
		q.policyLen1 = size - 3
	}
	q.Flush()
}

// String returns the contents of the queue, including the preload byte, as
// a string of hex digits.
func (q *Queue) String() string {
	var s strings.Builder
	if q.hasPreload {
		s.WriteString(fmt.Sprintf("%02X", q.preload))
	}
	for i := 0; i < q.len; i++ {
		s.WriteString(fmt.Sprintf("%02X", q.q[(q.back+i)%q.size]))
	}
	return s.String()
}

// Size returns the capacity of the queue.
func (q *Queue) Size() int {
	return q.size
}

// FetchSize returns the number of bytes in each code fetch.
func (q *Queue) FetchSize() int {
	return q.fetchSize
}

// AtPolicyLen returns true if the queue is at one of the lengths that delay
// a code fetch.
func (q *Queue) AtPolicyLen() bool {
	return q.len == q.policyLen0 || q.len == q.policyLen1
}

// AtPolicyThreshold returns true if the queue is at the length at which a
// delayed fetch is allowed to proceed.
func (q *Queue) AtPolicyThreshold() bool {
	return q.len == q.policyLen1
}

// HasRoomForFetch returns true if there is space for another fetch.
func (q *Queue) HasRoomForFetch() bool {
	return q.len <= q.size-q.fetchSize
}

// Len returns the number of bytes in the queue, not counting the preload
// byte.
func (q *Queue) Len() int {
	return q.len
}

// LenP returns the number of bytes in the queue including the preload byte.
func (q *Queue) LenP() int {
	if q.hasPreload {
		return q.len + 1
	}
	return q.len
}

// IsFull returns true if the queue is at capacity.
func (q *Queue) IsFull() bool {
	return q.len == q.size
}

// HasPreload returns true if there is a byte in the preload slot.
func (q *Queue) HasPreload() bool {
	return q.hasPreload
}

// GetPreload empties the preload slot and returns its contents. The boolean
// is false if the slot was already empty.
func (q *Queue) GetPreload() (uint8, bool) {
	if !q.hasPreload {
		return 0, false
	}
	q.hasPreload = false
	return q.preload, true
}

// SetPreload moves the byte at the head of the queue into the preload slot.
func (q *Queue) SetPreload() {
	if q.len == 0 {
		panic("queue: preload with empty queue")
	}
	q.preload = q.Pop()
	q.hasPreload = true
}

// SetDiscard marks the low byte of the next word push for discarding.
func (q *Queue) SetDiscard() {
	q.discard = true
}

// Discard returns true if the low byte of the next word push should be
// discarded.
func (q *Queue) Discard() bool {
	return q.discard
}

// Push8 adds a byte to the queue. Returns the number of bytes pushed.
func (q *Queue) Push8(v uint8) uint16 {
	if q.len >= q.size {
		panic("queue: overrun")
	}
	q.q[q.front] = v
	q.front = (q.front + 1) % q.size
	q.len++
	return 1
}

// Push16 adds a word to the queue. If a0 is true only the high byte is
// pushed. Returns the number of bytes pushed.
func (q *Queue) Push16(v uint16, a0 bool) uint16 {
	if q.fetchSize != 2 {
		panic("queue: word push to byte queue")
	}
	q.discard = false
	if a0 {
		return q.Push8(uint8(v >> 8))
	}
	q.Push8(uint8(v))
	q.Push8(uint8(v >> 8))
	return 2
}

// Pop removes the byte at the head of the queue.
func (q *Queue) Pop() uint8 {
	if q.len == 0 {
		panic("queue: underrun")
	}
	v := q.q[q.back]
	q.back = (q.back + 1) % q.size
	q.len--
	return v
}

// Peek returns the byte at position i without removing it. Position zero is
// the head of the queue. The preload byte is not included.
func (q *Queue) Peek(i int) uint8 {
	if i >= q.len {
		panic("queue: peek beyond end of queue")
	}
	return q.q[(q.back+i)%q.size]
}

// Flush empties the queue and the preload slot.
func (q *Queue) Flush() {
	q.len = 0
	q.back = 0
	q.front = 0
	q.hasPreload = false
	q.preload = 0
	q.discard = false
}

// Contents returns a copy of the queue contents in order, not including the
// preload byte.
func (q *Queue) Contents() []uint8 {
	c := make([]uint8, q.len)
	for i := range c {
		c[i] = q.q[(q.back+i)%q.size]
	}
	return c
}
