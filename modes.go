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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger"
	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/debugger/terminal/easyterm"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/hardware/cpu/tests/harte"
	"github.com/jetsetilly/gopher8088/hardware/instance"
	"github.com/jetsetilly/gopher8088/hardware/preferences"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/modalflag"
	"github.com/jetsetilly/gopher8088/paths"
	"github.com/jetsetilly/gopher8088/performance"
	"github.com/jetsetilly/gopher8088/prefs"
	"github.com/jetsetilly/gopher8088/scripting"
)

// name of the preferences file in the resource directory
const prefsFile = "preferences"

// testsFailed is returned by the HARTE mode when one or more tests fail. the
// program exits with a different value to other errors
type testsFailed int

func (n testsFailed) Error() string {
	return fmt.Sprintf("%d tests failed", int(n))
}

// the flags common to all modes that create a machine
type machineFlags struct {
	model    *string
	prefs    *string
	ram      *int
	load     *modalflag.Address
	end      *string
	rom      *string
	romStart *string
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	return &machineFlags{
		model:    md.AddString("model", "", "CPU model: 8088, 8086, V20, V30 (default from preferences)"),
		prefs:    md.AddString("prefs", "", "preferences for this run (eg. \"cpu.waitstates::false; cpu.historylength::64\")"),
		ram:      md.AddInt("ram", hardware.DefaultRAM/1024, "conventional memory in KB"),
		load:     md.AddAddress("load", modalflag.Address{Segment: 0x0100}, "load address of the program and the reset vector"),
		end:      md.AddString("end", "", "program end address. execution stops when CS:IP reaches it"),
		rom:      md.AddString("rom", "", "ROM image. the reset vector is FFFF:0000 unless a program is also loaded"),
		romStart: md.AddString("romstart", "", "origin of the ROM image (default: the image ends at FFFFF)"),
	}
}

// newMachine creates a machine as described by the flags. the program file
// may be empty if a ROM has been specified.
func (f *machineFlags) newMachine(label instance.Label, program string) (*hardware.Machine, error) {
	if program == "" && *f.rom == "" {
		return nil, fmt.Errorf("a program or a ROM is required")
	}

	prefs.PushCommandLineStack(*f.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}()

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}
	p, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}
	if *f.model != "" {
		if err := p.Model.Set(*f.model); err != nil {
			return nil, err
		}
	}

	inst, err := instance.NewInstance(p)
	if err != nil {
		return nil, err
	}
	inst.Label = label

	m, err := hardware.NewMachine(inst, uint32(*f.ram)*1024)
	if err != nil {
		return nil, err
	}

	if *f.rom != "" {
		origin := uint32(0)
		if *f.romStart != "" {
			a, err := modalflag.ParseAddress(*f.romStart)
			if err != nil {
				return nil, err
			}
			origin = a.Linear()
		} else {
			info, err := os.Stat(*f.rom)
			if err != nil {
				return nil, err
			}
			origin = uint32(0x100000 - info.Size())
		}
		if err := m.LoadROM(*f.rom, origin); err != nil {
			return nil, err
		}
		if program == "" {
			m.CPU.SetResetVector(0xffff, 0x0000)
			m.Reset()
		}
	}

	if program != "" {
		if err := m.LoadBinary(program, f.load.Segment, f.load.Offset); err != nil {
			return nil, err
		}
	}

	if *f.end != "" {
		a, err := modalflag.ParseAddress(*f.end)
		if err != nil {
			return nil, err
		}
		m.CPU.SetEndAddress(a.Linear())
	}

	return m, nil
}

// the single program argument. empty if there is no argument
func programArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func printMachine(output io.Writer, m *hardware.Machine) {
	fmt.Fprintf(output, "%s\n", m.CPU.Registers())
	fmt.Fprintf(output, "%d cycles\n", m.Cycles())
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	mf := addMachineFlags(md)
	cycles := md.AddUint64("cycles", 0, "stop after this many cycles (0 for no limit)")
	trace := md.AddBool("trace", false, "print a cycle trace")
	profile := md.AddString("profile", "none", "run through the profiler: CPU, MEM, TRACE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	program, err := programArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, err := mf.newMachine(instance.Main, program)
	if err != nil {
		return err
	}

	if *trace {
		m.CPU.SetTrace(output)
	}

	var brake int
	continueCheck := func() (govern.State, error) {
		brake++
		if brake >= hardware.PerformanceBrake {
			brake = 0
			if ctx.Err() != nil {
				return govern.Ending, nil
			}
		}
		return govern.Running, nil
	}

	var sub govern.SubState
	err = performance.RunProfiler(prf, "run", func() error {
		var err error
		if *cycles > 0 {
			sub, err = m.RunForCycleCount(*cycles, continueCheck)
		} else {
			sub, err = m.Run(continueCheck)
		}
		return err
	})
	if err != nil {
		return err
	}

	if sub != govern.Normal {
		fmt.Fprintln(output, sub)
	}
	printMachine(output, m)

	return nil
}

func step(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	mf := addMachineFlags(md)
	color := md.AddBool("color", true, "colour output")
	brk := md.AddString("break", "", "execution breakpoint")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%s mode requires a terminal", md)
	}

	program, err := programArg(md)
	if err != nil {
		return err
	}

	m, err := mf.newMachine(instance.Main, program)
	if err != nil {
		return err
	}

	if *brk != "" {
		a, err := modalflag.ParseAddress(*brk)
		if err != nil {
			return err
		}
		if err := m.CPU.SetBreakpoint(cpu.BreakExecute, a.Linear()); err != nil {
			return err
		}
	}

	var tm easyterm.Terminal
	if err := tm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer tm.CleanUp()

	width := tm.Geometry().Cols
	if width == 0 {
		width, _, err = term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width = 80
		}
	}
	fmt.Fprintf(output, "%s\n%s\n", m, strings.Repeat("-", width))

	dbg := debugger.NewDebugger(m, &tm)
	dbg.SetColor(*color)

	return dbg.Start(&tm)
}

func harteTests(ctx context.Context, md *modalflag.Modes, output io.Writer, defaultWorkers int) error {
	md.NewMode()
	model := md.AddString("model", "8088", "CPU model: 8088, 8086, V20, V30")
	workers := md.AddInt("workers", defaultWorkers, "number of test files to run concurrently")
	noCycles := md.AddBool("nocycles", false, "do not compare bus cycles")
	stop := md.AddBool("stop", false, "stop each file at the first failure")
	verbose := md.AddBool("verbose", false, "print every failure")
	md.AdditionalHelp("arguments are test directories or test files. the metadata file is read from\nthe directory of the first argument")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("%s mode requires a test directory", md)
	}

	mdl, err := cpu.ParseModel(*model)
	if err != nil {
		return err
	}

	var files []string
	var metadataDir string
	for _, a := range md.RemainingArgs() {
		info, err := os.Stat(a)
		if err != nil {
			return err
		}
		if info.IsDir() {
			l, err := harte.ListTestFiles(a)
			if err != nil {
				return err
			}
			files = append(files, l...)
			if metadataDir == "" {
				metadataDir = a
			}
		} else {
			files = append(files, a)
			if metadataDir == "" {
				metadataDir = filepath.Dir(a)
			}
		}
	}

	r, err := harte.NewRunner(mdl, metadataDir)
	if err != nil {
		return err
	}
	r.CheckCycles = !*noCycles
	r.StopOnFailure = *stop

	start := time.Now()
	results, err := r.RunFiles(ctx, files, *workers)
	if err != nil {
		return err
	}

	var passed, failed, warned, skipped, cycles int
	for _, res := range results {
		fmt.Fprintln(output, res)
		if *verbose {
			for _, f := range res.Failed {
				fmt.Fprintf(output, "  %s\n", f)
			}
			for _, f := range res.Warned {
				fmt.Fprintf(output, "  (warning) %s\n", f)
			}
		}
		passed += res.Passed
		failed += len(res.Failed)
		warned += len(res.Warned)
		skipped += res.Skipped
		cycles += res.Cycles
	}

	fmt.Fprintf(output, "%d files: %d passed, %d failed, %d warnings, %d skipped (%d cycles in %.2fs)\n",
		len(results), passed, failed, warned, skipped, cycles, time.Since(start).Seconds())

	if failed > 0 {
		return testsFailed(failed)
	}
	return nil
}

// the part of the machine state drawn by the DUMP mode
type dumpState struct {
	Model       string
	Registers   registers.Snapshot
	QueueLen    int
	Halted      bool
	Cycles      uint64
	History     []cpu.HistoryEntry
	CycleStates []biu.CycleState
}

func dump(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	mf := addMachineFlags(md)
	steps := md.AddInt("steps", 1, "number of instructions to execute before drawing")
	out := md.AddString("o", "", "output file for the graphviz dot file (default stdout)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	program, err := programArg(md)
	if err != nil {
		return err
	}

	m, err := mf.newMachine(instance.Main, program)
	if err != nil {
		return err
	}
	m.CPU.SetCycleStateCollection(true)

	for i := 0; i < *steps; i++ {
		r, err := m.Step()
		if err != nil {
			if curated.Is(err, cpu.CPUHalted) {
				break // for loop
			}
			return err
		}
		if r.Status == cpu.StepProgramEnd || r.Halted {
			break // for loop
		}
	}

	s := &dumpState{
		Model:       m.CPU.Model().String(),
		Registers:   m.CPU.Registers(),
		QueueLen:    m.CPU.QueueLen(),
		Halted:      m.CPU.IsHalted(),
		Cycles:      m.Cycles(),
		History:     m.CPU.History(),
		CycleStates: m.CPU.CycleStates(),
	}

	w := output
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, s)

	return nil
}

func script(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	mf := addMachineFlags(md)
	md.AdditionalHelp("arguments are the Lua script and an optional program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var program string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("%s mode requires a script", md)
	case 1:
	case 2:
		program = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// a script without a program or ROM starts with an empty machine. the
	// script can load a program with mem.load()
	var m *hardware.Machine
	if program == "" && *mf.rom == "" {
		inst, err := instance.NewInstance(nil)
		if err != nil {
			return err
		}
		if *mf.model != "" {
			if err := inst.Prefs.Model.Set(*mf.model); err != nil {
				return err
			}
		}
		m, err = hardware.NewMachine(inst, uint32(*mf.ram)*1024)
		if err != nil {
			return err
		}
		m.CPU.SetResetVector(mf.load.Segment, mf.load.Offset)
		m.Reset()
	} else {
		m, err = mf.newMachine(instance.Main, program)
		if err != nil {
			return err
		}
	}

	scr := scripting.NewScript(m, output)
	defer scr.Close()
	scr.SetContext(ctx)

	return scr.RunFile(md.GetArg(0))
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	mf := addMachineFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run through the profiler: CPU, MEM, TRACE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	program, err := programArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, err := mf.newMachine(instance.Main, program)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, m, *duration)
}
