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

package dma_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu/dma"
	"github.com/jetsetilly/gopher8088/test"
)

func TestRefreshSequence(t *testing.T) {
	s := dma.NewScheduler(4, true)
	idle := dma.Bus{Passive: true}

	// three cycles of countdown
	for i := 0; i < 3; i++ {
		test.ExpectEquality(t, s.Tick(idle), 0)
		test.ExpectEquality(t, s.State, dma.Idle)
	}

	// counter reaches zero and DREQ is raised. state changes on the same
	// cycle
	test.ExpectEquality(t, s.Tick(idle), 0)
	test.ExpectSuccess(t, s.DREQ)
	test.ExpectEquality(t, s.State, dma.Dreq)
	test.ExpectEquality(t, s.Counter, 4)

	test.ExpectEquality(t, s.Tick(idle), 0)
	test.ExpectEquality(t, s.State, dma.Hrq)

	test.ExpectEquality(t, s.Tick(idle), 0)
	test.ExpectEquality(t, s.State, dma.HoldA)
	test.ExpectSuccess(t, s.HOLDA)

	test.ExpectEquality(t, s.Tick(idle), 0)
	test.ExpectEquality(t, s.State, dma.Operating)
	test.ExpectSuccess(t, s.AEN)

	test.ExpectEquality(t, s.Tick(idle), 7)
	test.ExpectEquality(t, s.Label(), "Operating(1)")

	test.ExpectEquality(t, s.Tick(idle), 0)
	test.ExpectSuccess(t, s.DACK)
	test.ExpectFailure(t, s.DREQ)

	s.Tick(idle)
	s.Tick(idle)
	test.ExpectFailure(t, s.HOLDA)

	s.Tick(idle)
	test.ExpectEquality(t, s.State, dma.Idle)
	test.ExpectFailure(t, s.AEN)
	test.ExpectFailure(t, s.DACK)
}

func TestLockPreventsHold(t *testing.T) {
	s := dma.NewScheduler(1, false)
	locked := dma.Bus{Passive: true, Lock: true}

	s.Tick(locked)
	test.ExpectEquality(t, s.State, dma.Dreq)
	s.Tick(locked)
	test.ExpectEquality(t, s.State, dma.Hrq)

	for i := 0; i < 10; i++ {
		s.Tick(locked)
		test.ExpectEquality(t, s.State, dma.Hrq)
		test.ExpectFailure(t, s.HOLDA)
	}

	s.Tick(dma.Bus{LateCycle: true})
	test.ExpectEquality(t, s.State, dma.HoldA)
}

func TestHoldWaitsForBus(t *testing.T) {
	s := dma.NewScheduler(1, false)
	busy := dma.Bus{}

	s.Tick(busy)
	s.Tick(busy)
	test.ExpectEquality(t, s.State, dma.Hrq)

	// bus is in T1 or T2 so no hold acknowledge
	s.Tick(busy)
	test.ExpectEquality(t, s.State, dma.Hrq)

	s.Tick(dma.Bus{LateCycle: true, BusWait: 3})
	test.ExpectEquality(t, s.State, dma.HoldA)

	// too many wait states outstanding
	s.Tick(dma.Bus{LateCycle: true, BusWait: 2})
	test.ExpectEquality(t, s.State, dma.HoldA)

	s.Tick(dma.Bus{LateCycle: true, BusWait: 1})
	test.ExpectEquality(t, s.State, dma.Operating)
}

func TestNoRetrigger(t *testing.T) {
	s := dma.NewScheduler(2, false)
	idle := dma.Bus{Passive: true}

	s.Tick(idle)
	s.Tick(idle)
	test.ExpectSuccess(t, s.TC)
	test.ExpectEquality(t, s.Counter, 0)

	// run through the refresh. no second request is made
	for i := 0; i < 20; i++ {
		s.Tick(idle)
	}
	test.ExpectEquality(t, s.State, dma.Idle)
	test.ExpectFailure(t, s.DREQ)
}
