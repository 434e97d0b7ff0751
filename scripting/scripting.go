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
	"context"
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8088/logger"
)

// ScriptError is the error pattern for errors returned by a script.
const ScriptError = "scripting: %v"

// Script is a Lua interpreter connected to a machine.
type Script struct {
	L   *lua.LState
	m   *hardware.Machine
	out io.Writer

	// lua function called at the end of every CPU cycle
	onCycle *lua.LFunction
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(m *hardware.Machine, out io.Writer) *Script {
	scr := &Script{
		L:   lua.NewState(),
		m:   m,
		out: out,
	}

	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))
	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))

	scr.L.SetGlobal("cpu", scr.table(map[string]lua.LGFunction{
		"reg":              scr.reg,
		"setreg":           scr.setReg,
		"step":             scr.step,
		"cycle":            scr.cycle,
		"run":              scr.run,
		"cycles":           scr.cycles,
		"breakpoint":       scr.breakpoint,
		"clearbreakpoints": scr.clearBreakpoints,
		"disasm":           scr.disasm,
		"history":          scr.history,
		"halted":           scr.halted,
		"oncycle":          scr.setOnCycle,
		"model":            scr.model,
	}))

	scr.L.SetGlobal("mem", scr.table(map[string]lua.LGFunction{
		"peek": scr.peek,
		"poke": scr.poke,
		"load": scr.load,
	}))

	scr.L.SetGlobal("machine", scr.table(map[string]lua.LGFunction{
		"interrupt": scr.interrupt,
		"nmi":       scr.nmi,
		"reset":     scr.reset,
		"rewind":    scr.rewind,
		"save":      scr.save,
		"restore":   scr.restore,
	}))

	return scr
}

func (scr *Script) table(fns map[string]lua.LGFunction) *lua.LTable {
	t := scr.L.NewTable()
	for k, f := range fns {
		scr.L.SetField(t, k, scr.L.NewFunction(f))
	}
	return t
}

// Close the interpreter. The cycle hook installed by the script is removed.
func (scr *Script) Close() {
	if scr.onCycle != nil {
		scr.m.SetCycleHook(nil)
		scr.onCycle = nil
	}
	scr.L.Close()
}

// SetContext sets the context of the interpreter. A cancelled context stops
// the script.
func (scr *Script) SetContext(ctx context.Context) {
	scr.L.SetContext(ctx)
}

// RunString runs the Lua source code.
func (scr *Script) RunString(src string) error {
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile runs the Lua source file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// raise a Go error as a lua error. the function does not return
func (scr *Script) raise(err error) int {
	scr.L.RaiseError("%v", err)
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, n)
	for i := 1; i <= n; i++ {
		s[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := L.CheckString(1)
	r := scr.m.CPU.Registers()
	v, err := getRegister(&r, name)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) setReg(L *lua.LState) int {
	name := L.CheckString(1)
	v := L.CheckInt(2)
	r := scr.m.CPU.Registers()
	if err := setRegister(&r, name, uint16(v)); err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	scr.m.CPU.SetRegisters(r)
	return 0
}

// step returns the number of cycles and the stop reason
func (scr *Script) step(L *lua.LState) int {
	res, err := scr.m.Step()
	if err != nil {
		if curated.Is(err, cpu.CPUHalted) {
			L.Push(lua.LNumber(res.Cycles))
			L.Push(lua.LString("halt"))
			return 2
		}
		return scr.raise(err)
	}
	L.Push(lua.LNumber(res.Cycles))
	L.Push(lua.LString(stepStatus(res)))
	return 2
}

func (scr *Script) cycle(L *lua.LState) int {
	if err := scr.m.StepCycle(); err != nil {
		return scr.raise(err)
	}
	L.Push(lua.LBool(scr.m.CPU.InInstruction()))
	return 1
}

// run takes an optional limit on the number of instructions. the result is
// the reason the emulation stopped
func (scr *Script) run(L *lua.LState) int {
	limit := L.OptInt(1, 0)

	scr.m.CPU.ClearBreakpointFlag()

	var n int
	sub, err := scr.m.Run(func() (govern.State, error) {
		n++
		if limit > 0 && n >= limit {
			return govern.Ending, nil
		}
		if ctx := L.Context(); ctx != nil && n%hardware.PerformanceBrake == 0 {
			if ctx.Err() != nil {
				return govern.Ending, ctx.Err()
			}
		}
		return govern.Running, nil
	})
	if err != nil {
		return scr.raise(err)
	}

	L.Push(lua.LString(subStateName(sub)))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.Cycles()))
	return 1
}

// breakpoint takes a segment and offset
func (scr *Script) breakpoint(L *lua.LState) int {
	seg := L.CheckInt(1)
	off := L.CheckInt(2)
	if err := scr.m.CPU.SetBreakpoint(cpu.BreakExecute, memorymap.Linear(uint16(seg), uint16(off))); err != nil {
		return scr.raise(err)
	}
	return 0
}

func (scr *Script) clearBreakpoints(L *lua.LState) int {
	scr.m.CPU.ClearBreakpoints()
	return 0
}

// disasm takes an optional segment and offset. the default is CS:IP. the
// result is the instruction string and its size
func (scr *Script) disasm(L *lua.LState) int {
	r := scr.m.CPU.Registers()
	seg := L.OptInt(1, int(r.CS))
	off := L.OptInt(2, int(r.IP))
	ins, err := scr.m.CPU.Disassemble(memorymap.Linear(uint16(seg), uint16(off)))
	if err != nil {
		return scr.raise(err)
	}
	L.Push(lua.LString(ins.String()))
	L.Push(lua.LNumber(ins.Size))
	return 2
}

func (scr *Script) history(L *lua.LState) int {
	t := L.NewTable()
	for _, h := range scr.m.CPU.History() {
		t.Append(lua.LString(h.String()))
	}
	L.Push(t)
	return 1
}

func (scr *Script) halted(L *lua.LState) int {
	L.Push(lua.LBool(scr.m.CPU.IsHalted()))
	return 1
}

func (scr *Script) model(L *lua.LState) int {
	L.Push(lua.LString(scr.m.CPU.Model().String()))
	return 1
}

// the lua function is called with the cycle number. returning false stops
// the emulation. a nil argument removes the hook
func (scr *Script) setOnCycle(L *lua.LState) int {
	if L.Get(1) == lua.LNil {
		scr.onCycle = nil
		scr.m.SetCycleHook(nil)
		return 0
	}

	scr.onCycle = L.CheckFunction(1)
	scr.m.SetCycleHook(func() error {
		err := L.CallByParam(lua.P{Fn: scr.onCycle, NRet: 1, Protect: true}, lua.LNumber(scr.m.Cycles()))
		if err != nil {
			return curated.Errorf(ScriptError, err)
		}
		ret := L.Get(-1)
		L.Pop(1)
		if ret == lua.LFalse {
			return curated.Errorf(ScriptError, "stopped by cycle hook")
		}
		return nil
	})
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	addr := L.CheckInt(1)
	L.Push(lua.LNumber(scr.m.Mem.PeekU8(uint32(addr) & 0xfffff)))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	addr := L.CheckInt(1)
	v := L.CheckInt(2)
	scr.m.Mem.Poke(uint32(addr)&0xfffff, uint8(v))
	return 0
}

// load takes an address and either a string of bytes or a table of values
func (scr *Script) load(L *lua.LState) int {
	addr := uint32(L.CheckInt(1)) & 0xfffff

	var data []uint8
	switch v := L.Get(2).(type) {
	case lua.LString:
		data = []uint8(string(v))
	case *lua.LTable:
		v.ForEach(func(_ lua.LValue, b lua.LValue) {
			if n, ok := b.(lua.LNumber); ok {
				data = append(data, uint8(n))
			}
		})
	default:
		L.ArgError(2, "string or table expected")
		return 0
	}

	scr.m.Mem.Load(addr, data)
	L.Push(lua.LNumber(len(data)))
	return 1
}

func (scr *Script) interrupt(L *lua.LState) int {
	scr.m.Interrupts.Raise(uint8(L.CheckInt(1)))
	return 0
}

func (scr *Script) nmi(L *lua.LState) int {
	scr.m.Interrupts.SetNMI(L.CheckBool(1))
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.m.Reset()
	return 0
}

func (scr *Script) rewind(L *lua.LState) int {
	if err := scr.m.Rewind(); err != nil {
		return scr.raise(err)
	}
	return 0
}

func (scr *Script) save(L *lua.LState) int {
	if err := scr.m.SaveState(L.CheckString(1)); err != nil {
		return scr.raise(err)
	}
	return 0
}

func (scr *Script) restore(L *lua.LState) int {
	if err := scr.m.LoadState(L.CheckString(1)); err != nil {
		return scr.raise(err)
	}
	return 0
}
