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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/hardware"
)

// PerformanceError is the error pattern for the performance package.
const PerformanceError = "performance: %v"

// ClockRate of the 8088 in the IBM PC, in Hz.
const ClockRate = 4772727

// sentinel error returned by the Run() loop
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the machine for the
// duration. The machine should be loaded with a program that does not halt.
// A halted CPU ends the measurement early.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf(PerformanceError, "duration must be positive")
	}

	var startCycles uint64
	var elapsed time.Duration

	runner := func() error {
		startCycles = m.Cycles()
		start := time.Now()
		deadline := start.Add(duration)

		// the clock is only checked every PerformanceBrake instructions
		var brake int

		_, err := m.Run(func() (govern.State, error) {
			brake++
			if brake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			brake = 0
			if time.Now().After(deadline) {
				return govern.Ending, timedOut
			}
			return govern.Running, nil
		})

		elapsed = time.Since(start)

		return err
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	cycles := m.Cycles() - startCycles
	mhz, accuracy := CalcMHz(cycles, elapsed)
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy)

	return nil
}

// CalcMHz takes the number of cycles and the duration and returns the
// effective clock rate in MHz and that rate as a percentage of ClockRate.
func CalcMHz(cycles uint64, duration time.Duration) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / duration.Seconds()
	return hz / 1000000, 100 * hz / ClockRate
}
