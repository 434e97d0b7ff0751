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

package biu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/test"
)

func TestNames(t *testing.T) {
	test.ExpectEquality(t, biu.CodeFetch.String(), "CODE")
	test.ExpectEquality(t, biu.Halt.String(), "HALT")
	test.ExpectEquality(t, biu.Tw.String(), "Tw")
	test.ExpectEquality(t, biu.Tinit.String(), "Tx")
	test.ExpectEquality(t, biu.Td.String(), "Td")
	test.ExpectEquality(t, biu.PausedFull.String(), "PausedFull")
	test.ExpectEquality(t, biu.EULate.String(), "EuLate")
	test.ExpectEquality(t, biu.Subsequent.String(), "S")
	test.ExpectEquality(t, biu.Idle.String(), "-")

	test.ExpectSuccess(t, biu.MemWrite.IsMemory())
	test.ExpectFailure(t, biu.IORead.IsMemory())
	test.ExpectSuccess(t, biu.IOWrite.IsIO())
}

func TestLines(t *testing.T) {
	var l biu.Lines
	test.ExpectEquality(t, l.String(), "... ... .")
	l.MRDC = true
	l.INTA = true
	test.ExpectEquality(t, l.String(), "R.. ... I")
	l.Clear()
	test.ExpectEquality(t, l, biu.Lines{})
}

func TestCycleStateString(t *testing.T) {
	cs := biu.CycleState{
		Cycle:        12,
		AddressLatch: 0xffff0,
		TCycle:       biu.T3,
		TaCycle:      biu.Td,
		Segment:      registers.CS,
		Status:       biu.CodeFetch,
		StatusLatch:  biu.CodeFetch,
		Ready:        true,
		QueueOp:      biu.First,
		QueueByte:    0xea,
		QueueLen:     2,
		Queue:        [6]uint8{0x00, 0x01},
		DataBus:      0x00ea,
		DMA:          "Idle",
		Microcode:    microcode.None,
	}
	cs.Lines.MRDC = true

	s := cs.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "00000012 FFFF0:  CS CODE T3 Td"))
	test.ExpectSuccess(t, strings.Contains(s, "[R.. ... .]"))
	test.ExpectSuccess(t, strings.Contains(s, "D:00EA"))
	test.ExpectSuccess(t, strings.Contains(s, "F EA 2 [00 01]"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "Idle"))

	test.ExpectEquality(t, len(cs.QueueContents()), 2)
}
