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

package queue_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu/queue"
	"github.com/jetsetilly/gopher8088/test"
)

func TestQueue8088(t *testing.T) {
	q := queue.NewQueue(4, 1)
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectSuccess(t, q.HasRoomForFetch())

	for i := range 4 {
		test.ExpectEquality(t, q.Push8(uint8(i+1)), uint16(1))
	}
	test.ExpectSuccess(t, q.IsFull())
	test.ExpectFailure(t, q.HasRoomForFetch())
	test.ExpectEquality(t, q.String(), "01020304")

	test.ExpectEquality(t, q.Pop(), uint8(1))
	test.ExpectSuccess(t, q.HasRoomForFetch())
	test.ExpectSuccess(t, q.AtPolicyLen())
	test.ExpectSuccess(t, q.AtPolicyThreshold())

	q.SetPreload()
	test.ExpectEquality(t, q.Len(), 2)
	test.ExpectEquality(t, q.LenP(), 3)
	test.ExpectEquality(t, q.String(), "020304")

	v, ok := q.GetPreload()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(2))
	_, ok = q.GetPreload()
	test.ExpectFailure(t, ok)
}

func TestQueue8086(t *testing.T) {
	q := queue.NewQueue(6, 2)
	test.ExpectEquality(t, q.Push16(0x2211, false), uint16(2))
	test.ExpectEquality(t, q.Push16(0x4433, true), uint16(1))
	test.ExpectEquality(t, q.String(), "112244")

	// policy lengths for a word fetching queue are size-2 and size-3
	test.ExpectSuccess(t, q.AtPolicyLen())
	test.ExpectSuccess(t, q.AtPolicyThreshold())
	q.Push8(0x55)
	test.ExpectSuccess(t, q.AtPolicyLen())
	test.ExpectFailure(t, q.AtPolicyThreshold())

	// room for a word only while two bytes are free
	test.ExpectSuccess(t, q.HasRoomForFetch())
	q.Push8(0x66)
	test.ExpectFailure(t, q.HasRoomForFetch())
}

func TestFlush(t *testing.T) {
	q := queue.NewQueue(4, 1)
	q.Push8(0x90)
	q.Push8(0x90)
	q.SetPreload()
	q.Flush()
	test.ExpectEquality(t, q.Len(), 0)
	test.ExpectEquality(t, q.LenP(), 0)
	test.ExpectFailure(t, q.HasPreload())
	test.ExpectEquality(t, len(q.Contents()), 0)
}

func TestWrap(t *testing.T) {
	q := queue.NewQueue(4, 1)
	for i := range 10 {
		q.Push8(uint8(i))
		q.Push8(uint8(i + 100))
		test.ExpectEquality(t, q.Pop(), uint8(i), i)
		test.ExpectEquality(t, q.Pop(), uint8(i+100), i)
	}
	test.ExpectEquality(t, q.Len(), 0)
}

func TestPanics(t *testing.T) {
	q := queue.NewQueue(4, 1)

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()

	q.Pop()
}
