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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/modalflag"
	"github.com/jetsetilly/gopher8088/paths"
)

// number of instructions shown by the disassemble command
const disasmLength = 8

// number of bytes shown by the memory dump command
const dumpLength = 0x80

func (dbg *Debugger) step() error {
	res, err := dbg.m.Step()
	if err != nil {
		if curated.Is(err, cpu.CPUHalted) {
			dbg.state = govern.Paused
			dbg.subState = govern.PausedAtHalt
			dbg.print(dbg.styleNotice("halted. raise an interrupt or NMI to continue\n"))
			return nil
		}
		return err
	}

	dbg.state = govern.Paused
	dbg.subState = govern.Normal

	switch res.Status {
	case cpu.StepBreakpointHit:
		dbg.subState = govern.PausedAtBreakpoint
		dbg.m.CPU.ClearBreakpointFlag()
		dbg.print(dbg.styleNotice("breakpoint\n"))
		return dbg.showRegisters()
	case cpu.StepProgramEnd:
		dbg.subState = govern.PausedAtEnd
		dbg.print(dbg.styleNotice("end of program\n"))
		return dbg.showRegisters()
	}

	if res.Halted {
		dbg.print(dbg.styleNotice(fmt.Sprintf("halted (%d cycles)\n", res.Cycles)))
		return nil
	}

	dbg.print(fmt.Sprintf("%s\n", dbg.m.CPU.LastResult))
	return dbg.showRegisters()
}

func (dbg *Debugger) stepCycle() error {
	if err := dbg.m.StepCycle(); err != nil {
		return err
	}

	if cs := dbg.m.CPU.CycleStates(); len(cs) > 0 && !dbg.trace {
		dbg.print(fmt.Sprintf("%s\n", cs[len(cs)-1]))
	}

	dbg.state = govern.Paused

	if !dbg.m.CPU.InInstruction() {
		switch dbg.m.CPU.LastStep().Status {
		case cpu.StepBreakpointHit:
			dbg.subState = govern.PausedAtBreakpoint
			dbg.m.CPU.ClearBreakpointFlag()
			dbg.print(dbg.styleNotice("breakpoint\n"))
		case cpu.StepProgramEnd:
			dbg.subState = govern.PausedAtEnd
			dbg.print(dbg.styleNotice("end of program\n"))
		default:
			dbg.subState = govern.Normal
			dbg.print(fmt.Sprintf("%s\n", dbg.m.CPU.LastResult))
		}
	}

	return nil
}

func (dbg *Debugger) run() error {
	dbg.state = govern.Running
	dbg.subState = govern.Normal

	// a breakpoint at the current address would stop the emulation
	// immediately
	dbg.m.CPU.ClearBreakpointFlag()

	var n int
	sub, err := dbg.m.Run(func() (govern.State, error) {
		n++
		if n%hardware.PerformanceBrake != 0 {
			return govern.Running, nil
		}
		select {
		case <-dbg.input:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	})

	dbg.state = govern.Paused
	dbg.subState = sub

	if err != nil {
		return err
	}

	switch sub {
	case govern.Normal:
		dbg.print(dbg.styleNotice("stopped\n"))
	case govern.PausedAtBreakpoint:
		dbg.m.CPU.ClearBreakpointFlag()
		dbg.print(dbg.styleNotice(fmt.Sprintf("%s\n", sub)))
	default:
		dbg.print(dbg.styleNotice(fmt.Sprintf("%s\n", sub)))
	}

	return dbg.showRegisters()
}

func (dbg *Debugger) rewind() error {
	if dbg.m.RewindAvailable() == 0 {
		dbg.print(dbg.styleNotice("nothing to rewind\n"))
		return nil
	}
	if err := dbg.m.Rewind(); err != nil {
		return err
	}
	dbg.subState = govern.Normal
	return dbg.showRegisters()
}

func (dbg *Debugger) showRegisters() error {
	r := dbg.m.CPU.Registers()
	s := strings.Builder{}

	fmt.Fprintf(&s, "%s %04X  %s %04X  %s %04X  %s %04X\n",
		dbg.styleLabel("AX"), r.AX, dbg.styleLabel("BX"), r.BX,
		dbg.styleLabel("CX"), r.CX, dbg.styleLabel("DX"), r.DX)
	fmt.Fprintf(&s, "%s %04X  %s %04X  %s %04X  %s %04X\n",
		dbg.styleLabel("SP"), r.SP, dbg.styleLabel("BP"), r.BP,
		dbg.styleLabel("SI"), r.SI, dbg.styleLabel("DI"), r.DI)
	fmt.Fprintf(&s, "%s %04X  %s %04X  %s %04X  %s %04X\n",
		dbg.styleLabel("CS"), r.CS, dbg.styleLabel("DS"), r.DS,
		dbg.styleLabel("SS"), r.SS, dbg.styleLabel("ES"), r.ES)
	fmt.Fprintf(&s, "%s %04X  %s %s  %s %d  %s %d\n",
		dbg.styleLabel("IP"), r.IP, dbg.styleLabel("FL"), flagString(r.Flags),
		dbg.styleLabel("Q"), dbg.m.CPU.QueueLen(), dbg.styleLabel("CYC"), dbg.m.Cycles())

	dbg.print(s.String())

	return dbg.showNext()
}

// the instruction at CS:IP
func (dbg *Debugger) showNext() error {
	r := dbg.m.CPU.Registers()
	addr := linear(r.CS, r.IP)
	ins, err := dbg.m.CPU.Disassemble(addr)
	if err != nil {
		return err
	}
	dbg.print(fmt.Sprintf("%s %s\n", dbg.styleAddress(fmt.Sprintf("%04X:%04X", r.CS, r.IP)), ins))
	return nil
}

func (dbg *Debugger) showHistory() error {
	h := dbg.m.CPU.History()
	if len(h) == 0 {
		dbg.print(dbg.styleNotice("no history\n"))
		return nil
	}
	s := strings.Builder{}
	for _, e := range h {
		s.WriteString(e.String())
		s.WriteRune('\n')
	}
	dbg.print(s.String())
	return nil
}

func (dbg *Debugger) disassemble() error {
	r := dbg.m.CPU.Registers()
	ip := r.IP
	for range disasmLength {
		ins, err := dbg.m.CPU.Disassemble(linear(r.CS, ip))
		if err != nil {
			return err
		}
		dbg.print(fmt.Sprintf("%s %s\n", dbg.styleAddress(fmt.Sprintf("%04X:%04X", r.CS, ip)), ins))
		ip += uint16(ins.Size)
	}
	return nil
}

func (dbg *Debugger) dumpMemory() error {
	s, ok := dbg.readLine("address: ")
	if !ok || s == "" {
		return nil
	}
	a, err := modalflag.ParseAddress(s)
	if err != nil {
		return err
	}

	base := a.Linear()
	b := strings.Builder{}

	label := "unmapped"
	if dev := dbg.m.Mem.Device(base); dev != nil {
		label = dev.Label()
	}
	fmt.Fprintf(&b, "%s %s\n", memorymap.Summary(base), label)

	for row := uint32(0); row < dumpLength; row += 16 {
		fmt.Fprintf(&b, "%s ", dbg.styleAddress(fmt.Sprintf("%05X", (base+row)&0xfffff)))
		for col := uint32(0); col < 16; col++ {
			fmt.Fprintf(&b, " %02X", dbg.m.Mem.PeekU8((base+row+col)&0xfffff))
		}
		b.WriteRune('\n')
	}
	dbg.print(b.String())

	return nil
}

func (dbg *Debugger) setBreakpoint() error {
	s, ok := dbg.readLine("break at: ")
	if !ok || s == "" {
		return nil
	}
	a, err := modalflag.ParseAddress(s)
	if err != nil {
		return err
	}
	if err := dbg.m.CPU.SetBreakpoint(cpu.BreakExecute, a.Linear()); err != nil {
		return err
	}
	dbg.print(dbg.styleNotice(fmt.Sprintf("breakpoint set at %s (%05X)\n", a, a.Linear())))
	return nil
}

func (dbg *Debugger) clearBreakpoints() error {
	dbg.m.CPU.ClearBreakpoints()
	dbg.print(dbg.styleNotice("breakpoints cleared\n"))
	return nil
}

func (dbg *Debugger) raiseInterrupt() error {
	dbg.m.Interrupts.Raise(dbg.Vector)
	dbg.print(dbg.styleNotice(fmt.Sprintf("INTR raised with vector %02Xh\n", dbg.Vector)))
	return nil
}

func (dbg *Debugger) toggleNMI() error {
	dbg.nmi = !dbg.nmi
	dbg.m.Interrupts.SetNMI(dbg.nmi)
	if dbg.nmi {
		dbg.print(dbg.styleNotice("NMI high\n"))
	} else {
		dbg.print(dbg.styleNotice("NMI low\n"))
	}
	return nil
}

func (dbg *Debugger) toggleTrace() error {
	dbg.trace = !dbg.trace
	if dbg.trace {
		dbg.m.CPU.SetTrace(dbg.out)
		dbg.print(dbg.styleNotice("cycle trace on\n"))
	} else {
		dbg.m.CPU.SetTrace(nil)
		dbg.print(dbg.styleNotice("cycle trace off\n"))
	}
	return nil
}

func (dbg *Debugger) saveState() error {
	fn, err := paths.ResourcePath("states", paths.UniqueFilename("state", dbg.m.CPU.Model().String()))
	if err != nil {
		return err
	}
	if err := dbg.m.SaveState(fn); err != nil {
		return err
	}
	dbg.savedState = fn
	dbg.print(dbg.styleNotice(fmt.Sprintf("state saved to %s\n", fn)))
	return nil
}

func (dbg *Debugger) loadState() error {
	if dbg.savedState == "" {
		dbg.print(dbg.styleNotice("no saved state\n"))
		return nil
	}
	if err := dbg.m.LoadState(dbg.savedState); err != nil {
		return err
	}
	dbg.subState = govern.Normal
	dbg.print(dbg.styleNotice(fmt.Sprintf("state loaded from %s\n", dbg.savedState)))
	return dbg.showRegisters()
}

// number of log entries shown by the log command
const logLength = 10

func (dbg *Debugger) showLog() error {
	logger.Tail(dbg.out, logLength)
	return nil
}

func (dbg *Debugger) reset() error {
	dbg.m.Reset()
	dbg.m.CPU.SetCycleStateCollection(true)
	dbg.nmi = false
	dbg.state = govern.Paused
	dbg.subState = govern.Normal
	dbg.print(dbg.styleNotice("reset\n"))
	return dbg.showRegisters()
}
