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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/performance"
	"github.com/jetsetilly/gopher8088/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = performance.ParseProfileString("cpu, Trace")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcMHz(t *testing.T) {
	mhz, acc := performance.CalcMHz(performance.ClockRate, time.Second)
	test.ExpectApproximate(t, mhz, 4.772727, 0.00001)
	test.ExpectApproximate(t, acc, 100.0, 0.00001)

	mhz, acc = performance.CalcMHz(1000000, 2*time.Second)
	test.ExpectApproximate(t, mhz, 0.5, 0.00001)
	test.ExpectApproximate(t, acc, 10.476, 0.001)

	mhz, acc = performance.CalcMHz(100, 0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, acc, 0.0)
}

func TestCheck(t *testing.T) {
	m, err := hardware.NewMachine(nil, hardware.DefaultRAM)
	test.DemandSuccess(t, err)
	m.LoadProgram([]uint8{0xeb, 0xfe}, 0x0100, 0x0000) // JMP $

	w := &test.CompareWriter{}
	test.DemandSuccess(t, performance.Check(w, performance.ProfileNone, m, 50*time.Millisecond))
	test.ExpectSuccess(t, strings.Contains(w.String(), "MHz"))
	test.ExpectSuccess(t, m.Cycles() > 0)

	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, m, 0))
}
