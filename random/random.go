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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed = int64(time.Now().Nanosecond())

// Clock is the source of emulation time for the Random type.
type Clock interface {
	CycleNum() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// nil clock is allowed and treated as a clock that never advances.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// SetClock changes the emulation clock. Used when the clock is created after
// the Random instance.
func (rnd *Random) SetClock(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) rand() *rand.Rand {
	var t int64
	if rnd.clock != nil {
		t = int64(rnd.clock.CycleNum())
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(t))
	}
	return rand.New(rand.NewSource(baseSeed + t))
}

// Intn returns a non-negative random number in the half-open interval [0,n)
// for the current emulation time.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Uint16 returns a random 16-bit value for the current emulation time.
// Successive calls at the same emulation time return different values when
// an index is supplied.
func (rnd *Random) Uint16(index int) uint16 {
	r := rnd.rand()
	for i := 0; i < index; i++ {
		r.Int63()
	}
	return uint16(r.Intn(0x10000))
}
