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

package harte

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/hardware/instance"
	"github.com/jetsetilly/gopher8088/hardware/memory"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8088/logger"
)

// the number of iterations of a repeated string instruction before the test
// is abandoned
const maxRepeats = 0x20000

// FailReason is the first check that a test failed.
type FailReason int

// List of valid FailReason values.
const (
	ExecutionError FailReason = iota
	RegMismatch
	CycleMismatch
	MemMismatch
)

func (r FailReason) String() string {
	switch r {
	case ExecutionError:
		return "execution error"
	case RegMismatch:
		return "register mismatch"
	case CycleMismatch:
		return "cycle mismatch"
	case MemMismatch:
		return "memory mismatch"
	}
	return "unknown"
}

// Failure describes a test that has failed or raised a warning.
type Failure struct {
	Idx    int
	Name   string
	Reason FailReason
	Detail string
}

func (f Failure) String() string {
	return fmt.Sprintf("%05d %s: %s: %s", f.Idx, f.Name, f.Reason, f.Detail)
}

// Result summarises the tests in one file.
type Result struct {
	Filename string

	Passed  int
	Skipped int

	// a test with a cycle count that is out by one is a warning
	Warned []Failure
	Failed  []Failure

	// cycles spent by the CPU for all tests
	Cycles int
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d passed, %d failed, %d warnings, %d skipped",
		filepath.Base(r.Filename), r.Passed, len(r.Failed), len(r.Warned), r.Skipped)
}

// Runner runs test files.
type Runner struct {
	Model    cpu.Model
	Metadata Metadata

	// compare the bus state of every cycle as well as the number of cycles
	CheckCycles bool

	// stop a file at the first failure
	StopOnFailure bool
}

// NewRunner is the preferred method of initialisation for the Runner type.
// The metadata file is loaded from the directory if it exists.
func NewRunner(model cpu.Model, dir string) (*Runner, error) {
	r := &Runner{
		Model:       model,
		CheckCycles: true,
	}
	if dir != "" {
		fn := filepath.Join(dir, MetadataFilename)
		if _, err := os.Stat(fn); err == nil {
			md, err := LoadMetadata(fn)
			if err != nil {
				return nil, err
			}
			r.Metadata = md
		}
	}
	return r, nil
}

// ListTestFiles returns the test files in a directory, sorted by name.
func ListTestFiles(dir string) ([]string, error) {
	d, err := os.ReadDir(dir)
	if err != nil {
		return nil, curated.Errorf(TestFileError, dir, err)
	}

	var files []string
	for _, e := range d {
		if e.Type().IsRegular() && IsTestFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

// RunFiles runs the test files concurrently. Each file is run with its own
// CPU and memory. At most workers files are run at once, or one per file if
// workers is less than one. The results are in the same order as the files.
func (r *Runner) RunFiles(ctx context.Context, filenames []string, workers int) ([]Result, error) {
	results := make([]Result, len(filenames))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, fn := range filenames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.RunFile(fn)
			if err != nil {
				return err
			}
			results[i] = res
			logger.Log(logger.Allow, "harte", res.String())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunFile loads and runs the tests in the named file.
func (r *Runner) RunFile(filename string) (Result, error) {
	opcode, ext, ok := OpcodeFromFilename(filename)
	if !ok {
		return Result{}, curated.Errorf(TestFileError, filename, "not a test file")
	}

	tests, err := LoadFile(filename)
	if err != nil {
		return Result{}, err
	}

	res := r.RunTests(opcode, ext, tests)
	res.Filename = filename
	return res, nil
}

// RunTests runs tests for the opcode. The extension is -1 if the opcode is
// not a group instruction.
func (r *Runner) RunTests(opcode uint8, ext int, tests []Test) Result {
	var res Result

	if r.Metadata.Skip(opcode, ext) {
		res.Skipped = len(tests)
		return res
	}

	mem, err := memory.NewMemory(memorymap.AddressMask + 1)
	if err != nil {
		panic(err)
	}

	// the test suite was captured without wait states or DRAM refresh
	inst, err := instance.NewInstance(nil)
	if err != nil {
		panic(err)
	}
	inst.Label = instance.Harte
	inst.Normalise()
	inst.Prefs.WaitStates.Set(false)
	inst.Prefs.CollectCycleStates.Set(true)

	mc := cpu.NewCPU(inst, r.Model, mem)

	t := tester{
		mc:    mc,
		mem:   mem,
		mask:  r.Metadata.FlagsMask(opcode, ext),
		stack: opcode == 0xf6 || opcode == 0xf7 || opcode == 0xd4,
	}

	for i, tst := range tests {
		f, warning := t.run(tst, r.CheckCycles)
		res.Cycles += t.cycles
		if f == nil {
			res.Passed++
			continue
		}

		f.Idx = i
		f.Name = tst.Name
		if warning {
			res.Warned = append(res.Warned, *f)
			continue
		}

		res.Failed = append(res.Failed, *f)
		if r.StopOnFailure {
			break
		}
	}

	return res
}

type tester struct {
	mc  *cpu.CPU
	mem *memory.Memory

	// mask of the flags defined by the instruction
	mask uint16

	// the instruction can push the flags during a divide error. the undefined
	// flags on the stack are masked in the same way as the flags register
	stack bool

	// cycle states collected over all steps of the current test
	states []biu.CycleState
	cycles int
}

// run a single test. the returned failure is nil if the test passed
func (t *tester) run(tst Test, checkCycles bool) (*Failure, bool) {
	mc := t.mc

	cs := uint16(0)
	ip := uint16(0)
	if tst.Initial.Regs.CS != nil {
		cs = *tst.Initial.Regs.CS
	}
	if tst.Initial.Regs.IP != nil {
		ip = *tst.Initial.Regs.IP
	}

	mc.SetResetVector(cs, ip)
	mc.SetResetQueue(tst.Initial.Queue)
	mc.Reset()

	s := mc.Registers()
	tst.Initial.Regs.Apply(&s)
	mc.SetRegisters(s)

	for _, e := range tst.Initial.RAM {
		t.mem.Poke(e.Address, e.Value)
	}

	t.states = t.states[:0]
	t.cycles = 0

	for n := 0; ; n++ {
		res, err := mc.StepInstruction()
		t.cycles += res.Cycles
		t.states = append(t.states, mc.CycleStates()...)
		if err != nil {
			if curated.Is(err, cpu.CPUHalted) {
				break
			}
			return &Failure{Reason: ExecutionError, Detail: err.Error()}, false
		}
		if !mc.InRep() {
			break
		}
		if n > maxRepeats {
			return &Failure{Reason: ExecutionError, Detail: "string instruction did not complete"}, false
		}
	}

	// expected registers are the initial registers updated with the final
	// registers
	var expected registers.Snapshot
	tst.Initial.Regs.Apply(&expected)
	tst.Final.Regs.Apply(&expected)

	got := mc.Registers()
	if f := t.compareRegisters(expected, got); f != nil {
		return f, false
	}

	if checkCycles {
		if f, warning := t.compareCycles(tst.Cycles); f != nil {
			return f, warning
		}
	}

	return t.compareMemory(tst.Final.RAM, got), false
}

func (t *tester) compareRegisters(expected registers.Snapshot, got registers.Snapshot) *Failure {
	expected.Flags &= t.mask
	got.Flags &= t.mask

	if expected == got {
		return nil
	}

	var diff []string
	e := expected
	g := got
	pairs := []struct {
		name string
		e, g uint16
	}{
		{"AX", e.AX, g.AX}, {"BX", e.BX, g.BX}, {"CX", e.CX, g.CX}, {"DX", e.DX, g.DX},
		{"CS", e.CS, g.CS}, {"SS", e.SS, g.SS}, {"DS", e.DS, g.DS}, {"ES", e.ES, g.ES},
		{"SP", e.SP, g.SP}, {"BP", e.BP, g.BP}, {"SI", e.SI, g.SI}, {"DI", e.DI, g.DI},
		{"IP", e.IP, g.IP}, {"Flags", e.Flags, g.Flags},
	}
	for _, p := range pairs {
		if p.e != p.g {
			diff = append(diff, fmt.Sprintf("%s expected %04x got %04x", p.name, p.e, p.g))
		}
	}

	return &Failure{Reason: RegMismatch, Detail: strings.Join(diff, ", ")}
}

// normalise the CPU's cycle states in the same way as the test data. the
// cycles before the first byte of the instruction is read are dropped
func (t *tester) normalise() []biu.CycleState {
	start := slices.IndexFunc(t.states, func(cs biu.CycleState) bool {
		return cs.QueueOp == biu.First
	})
	if start < 0 {
		return nil
	}
	states := t.states[start:]
	for i := range states {
		if states[i].TCycle == biu.Tinit || (states[i].TCycle == biu.T1 && states[i].Status == biu.Passive) {
			states[i].TCycle = biu.Ti
		}
	}
	return states
}

func (t *tester) compareCycles(cycles []Cycle) (*Failure, bool) {
	if len(cycles) == 0 {
		return nil, false
	}

	states := t.normalise()

	if len(states) != len(cycles) {
		f := &Failure{
			Reason: CycleMismatch,
			Detail: fmt.Sprintf("expected %d cycles got %d", len(cycles), len(states)),
		}
		d := len(states) - len(cycles)
		return f, d == 1 || d == -1
	}

	for i, c := range cycles {
		s := states[i]

		tstate := c.TState
		if tstate == "T1" && c.Status == "PASV" {
			tstate = "Ti"
		}

		var diff []string
		if c.ALE != s.ALE {
			diff = append(diff, "ALE")
		}
		if c.ALE && c.Address != s.AddressBus {
			diff = append(diff, fmt.Sprintf("address %05x", s.AddressBus))
		}
		if c.Status != s.Status.String() {
			diff = append(diff, fmt.Sprintf("status %s", s.Status))
		}
		if tstate != s.TCycle.String() {
			diff = append(diff, fmt.Sprintf("T-state %s", s.TCycle))
		}
		if c.QueueOp != s.QueueOp.String() {
			diff = append(diff, fmt.Sprintf("queue op %s", s.QueueOp))
		} else if c.QueueOp != "-" && c.QueueByte != s.QueueByte {
			diff = append(diff, fmt.Sprintf("queue byte %02x", s.QueueByte))
		}

		if len(diff) > 0 {
			return &Failure{
				Reason: CycleMismatch,
				Detail: fmt.Sprintf("cycle %d (%s): %s", i, c, strings.Join(diff, ", ")),
			}, false
		}
	}

	return nil, false
}

func (t *tester) compareMemory(ram []RAMEntry, final registers.Snapshot) *Failure {
	// location of the flags pushed by an interrupt
	flags := memorymap.Linear(final.SS, final.SP+4)

	for _, e := range ram {
		expected := e.Value
		got := t.mem.PeekU8(e.Address)

		if t.stack {
			switch e.Address {
			case flags:
				expected &= uint8(t.mask)
				got &= uint8(t.mask)
			case (flags + 1) & memorymap.AddressMask:
				expected &= uint8(t.mask >> 8)
				got &= uint8(t.mask >> 8)
			}
		}

		if expected != got {
			return &Failure{
				Reason: MemMismatch,
				Detail: fmt.Sprintf("%05x expected %02x got %02x", e.Address, expected, got),
			}
		}
	}
	return nil
}
