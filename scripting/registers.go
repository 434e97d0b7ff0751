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

package scripting

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

func stepStatus(res cpu.StepResult) string {
	if res.Halted {
		return "halt"
	}
	switch res.Status {
	case cpu.StepBreakpointHit:
		return "breakpoint"
	case cpu.StepProgramEnd:
		return "end"
	}
	return "normal"
}

func subStateName(sub govern.SubState) string {
	switch sub {
	case govern.PausedAtBreakpoint:
		return "breakpoint"
	case govern.PausedAtEnd:
		return "end"
	case govern.PausedAtHalt:
		return "halt"
	}
	return "normal"
}

// the 16 bit registers by lowercase name
func register16(r *registers.Snapshot, name string) *uint16 {
	switch name {
	case "ax":
		return &r.AX
	case "bx":
		return &r.BX
	case "cx":
		return &r.CX
	case "dx":
		return &r.DX
	case "sp":
		return &r.SP
	case "bp":
		return &r.BP
	case "si":
		return &r.SI
	case "di":
		return &r.DI
	case "cs":
		return &r.CS
	case "ds":
		return &r.DS
	case "ss":
		return &r.SS
	case "es":
		return &r.ES
	case "ip":
		return &r.IP
	case "flags":
		return &r.Flags
	}
	return nil
}

// the 8 bit registers are the low and high halves of the general purpose
// registers. the second return value is the shift of the half
func register8(r *registers.Snapshot, name string) (*uint16, int) {
	if len(name) != 2 {
		return nil, 0
	}
	p := register16(r, name[:1]+"x")
	if p == nil {
		return nil, 0
	}
	switch name[1] {
	case 'l':
		return p, 0
	case 'h':
		return p, 8
	}
	return nil, 0
}

func getRegister(r *registers.Snapshot, name string) (uint16, error) {
	name = strings.ToLower(name)
	if p := register16(r, name); p != nil {
		return *p, nil
	}
	if p, shift := register8(r, name); p != nil {
		return (*p >> shift) & 0xff, nil
	}
	return 0, fmt.Errorf("unknown register (%s)", name)
}

func setRegister(r *registers.Snapshot, name string, v uint16) error {
	name = strings.ToLower(name)
	if p := register16(r, name); p != nil {
		*p = v
		return nil
	}
	if p, shift := register8(r, name); p != nil {
		*p = (*p &^ (0xff << shift)) | ((v & 0xff) << shift)
		return nil
	}
	return fmt.Errorf("unknown register (%s)", name)
}
