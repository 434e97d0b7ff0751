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

package cpu

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/dma"
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/cpu/queue"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/hardware/instance"
	"github.com/jetsetilly/gopher8088/hardware/memory/bus"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8088/hardware/preferences"
	"github.com/jetsetilly/gopher8088/logger"
)

// Model is the variant of the CPU being emulated.
type Model int

// List of valid Model values. The NEC parts are emulated in 8086
// compatibility mode only.
const (
	Intel8088 Model = iota
	Intel8086
	NecV20
	NecV30
)

func (m Model) String() string {
	switch m {
	case Intel8086:
		return "8086"
	case NecV20:
		return "V20"
	case NecV30:
		return "V30"
	}
	return "8088"
}

// UnknownModel is returned by ParseModel.
const UnknownModel = "cpu: unknown model (%s)"

// ParseModel returns the Model named by the string. The names are the same
// as those used by the cpu.model preference.
func ParseModel(s string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "8088":
		return Intel8088, nil
	case "8086":
		return Intel8086, nil
	case "V20":
		return NecV20, nil
	case "V30":
		return NecV30, nil
	}
	return Intel8088, curated.Errorf(UnknownModel, s)
}

// the 8086 and V30 have a 16 bit data bus and a six byte queue
func (m Model) wordBus() bool {
	return m == Intel8086 || m == NecV30
}

func (m Model) nec() bool {
	return m == NecV20 || m == NecV30
}

// the default location of the first instruction after a reset
const (
	resetCS = 0xffff
	resetIP = 0x0000
)

// preference values copied into the CPU on reset. a nil instance leaves the
// defaults in place
type config struct {
	waitStates       bool
	dramRefresh      bool
	refreshPeriod    int
	refreshRetrigger bool
	collectStates    bool
	historyLength    int
	offRails         bool
	offRailsLimit    int
	haltResumeDelay  int
	harrisInhibit    bool
	randomState      bool
}

func defaultConfig() config {
	return config{
		waitStates:       true,
		refreshPeriod:    preferences.DefaultRefreshPeriod,
		refreshRetrigger: true,
		historyLength:    preferences.DefaultHistoryLength,
		offRails:         true,
		offRailsLimit:    preferences.DefaultOffRailsLimit,
		haltResumeDelay:  preferences.DefaultHaltResumeDelay,
	}
}

// CPU implements the 8088 and its relatives. The bus interface unit and the
// execution unit share the one structure. Both run on the single thread that
// calls the step functions.
type CPU struct {
	instance *instance.Instance
	model    Model
	cfg      config

	mem bus.Bus
	pic bus.InterruptController

	decoder *instructions.Decoder

	regs registers.File

	// the BIU's program counter. it points to the next byte to be fetched
	// into the queue, not the next byte to be executed. see IP()
	pc    uint16
	queue *queue.Queue

	// bus interface unit
	tCycle         biu.TCycle
	taCycle        biu.TaCycle
	busStatus      biu.BusStatus
	busStatusLatch biu.BusStatus
	plStatus       biu.BusStatus
	plSlot         bool
	busPending     biu.BusPending
	busSegment     registers.Segment
	addressBus     uint32
	addressLatch   uint32
	dataBus        uint16
	transferSize   biu.TransferSize
	fetchSize      biu.TransferSize
	operandSize    biu.OperandSize
	transferN      int
	finalTransfer  bool
	fetchState     biu.FetchState
	fetchDelay     int
	ale            bool
	lines          biu.Lines
	ready          bool
	lock           bool
	busWait        int
	ioWait         int
	dmaWait        int
	queueOp        biu.QueueOp
	lastQueueOp    biu.QueueOp
	queueByte      uint8
	lastQueueByte  uint8
	lastQueueLen   int
	clk0           bool

	refresh *dma.Scheduler

	// execution unit
	mcPC         uint16
	instr        instructions.Instruction
	instrAddress uint32
	instrCS      uint16
	instrIP      uint16
	lastEA       uint16
	eaOpr        uint16
	quirk        execution.Quirk

	halted       bool
	reportedHalt bool

	inRep     bool
	repInit   bool
	repType   repType
	reentrant bool
	jumped    bool

	trapSuppressed   bool
	trapEnableDelay  int
	trapDisableDelay int

	interruptInhibit bool
	intrPending      bool
	inInt            bool
	intTaken         bool
	intVector        uint8

	// interrupt lines for hosts without an interrupt controller
	intr         bool
	nmi          bool
	nmiTriggered bool

	opcode0Count int

	// cycle counters. cycleNum is the number of cycles since reset
	cycleNum     uint64
	instrCycle   int
	instrElapsed int
	intElapsed   int
	deviceCycles int
	instrCount   uint64
	intCount     uint64

	// reset configuration. the reset queue is kept until it is replaced so
	// that a second reset is the same as the first
	resetCS    uint16
	resetIP    uint16
	resetQueue []uint8

	endAddress    uint32
	endAddressSet bool

	// debugging
	breakpoints    breakpoints
	breakpointFlag bool
	skipBreakpoint bool
	events         []Event
	history        history
	cycleStates    []biu.CycleState
	trace          io.Writer

	// LastResult is the result of the most recent call to StepInstruction.
	// Fields are only guaranteed to be valid if Final is true
	LastResult execution.Result

	// called after every cycle. the first error is held until the end of
	// the instruction
	cycleCallback func() error
	callbackErr   error

	// per-cycle stepping
	stepper  *stepper
	lastStep StepResult
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// instance can be nil, in which case the default preferences are used. The
// CPU must be Reset() before use.
func NewCPU(inst *instance.Instance, model Model, mem bus.Bus) *CPU {
	dec, err := instructions.NewDecoder()
	if err != nil {
		panic(err)
	}

	mc := &CPU{
		instance: inst,
		model:    model,
		cfg:      defaultConfig(),
		mem:      mem,
		decoder:  dec,
		resetCS:  resetCS,
		resetIP:  resetIP,
	}

	if model.wordBus() {
		mc.queue = queue.NewQueue(6, 2)
		mc.fetchSize = biu.Word
	} else {
		mc.queue = queue.NewQueue(4, 1)
		mc.fetchSize = biu.Byte
	}

	mc.configure()
	mc.refresh = dma.NewScheduler(mc.cfg.refreshPeriod, mc.cfg.refreshRetrigger)
	mc.endAddress = memorymap.AddressMask

	if inst != nil {
		inst.Random.SetClock(mc)
	}

	return mc
}

// configure copies the hardware preferences into the CPU
func (mc *CPU) configure() {
	if mc.instance == nil || mc.instance.Prefs == nil {
		return
	}
	p := mc.instance.Prefs
	mc.cfg = config{
		waitStates:       p.WaitStates.Get().(bool),
		dramRefresh:      p.DRAMRefresh.Get().(bool),
		refreshPeriod:    p.RefreshPeriod.Get().(int),
		refreshRetrigger: p.RefreshRetrigger.Get().(bool),
		collectStates:    p.CollectCycleStates.Get().(bool),
		historyLength:    p.HistoryLength.Get().(int),
		offRails:         p.OffRails.Get().(bool),
		offRailsLimit:    p.OffRailsLimit.Get().(int),
		haltResumeDelay:  p.HaltResumeDelay.Get().(int),
		harrisInhibit:    p.HarrisInhibit.Get().(bool),
		randomState:      p.RandomState.Get().(bool),
	}
}

// Plumb a new bus into the CPU.
func (mc *CPU) Plumb(mem bus.Bus) {
	mc.mem = mem
}

// AttachInterruptController connects the INTR and NMI inputs to an interrupt
// controller. The SetINTR() and SetNMI() functions are ignored while a
// controller is attached. A nil argument detaches the controller.
func (mc *CPU) AttachInterruptController(pic bus.InterruptController) {
	mc.pic = pic
}

// SetINTR sets the level of the maskable interrupt input. The input is level
// triggered and the CPU never clears it. The host must lower the line once the
// interrupt has been serviced or the interrupt will be taken again as soon as
// interrupts are enabled.
func (mc *CPU) SetINTR(v bool) {
	mc.intr = v
}

// SetNMI sets the level of the non-maskable interrupt input. The CPU
// responds to the rising edge.
func (mc *CPU) SetNMI(v bool) {
	if !v {
		mc.nmiTriggered = false
	}
	mc.nmi = v
}

func (mc *CPU) intrLine() bool {
	if mc.pic != nil {
		return mc.pic.IntrPending()
	}
	return mc.intr
}

func (mc *CPU) nmiLine() bool {
	if mc.pic != nil {
		nmi := mc.pic.NMIPending()
		if !nmi {
			mc.nmiTriggered = false
		}
		return nmi
	}
	return mc.nmi
}

// Model returns the variant of the CPU.
func (mc *CPU) Model() Model {
	return mc.model
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s IP=%04x", mc.regs.String(), mc.IP())
}

// CycleNum implements the random.Clock interface.
func (mc *CPU) CycleNum() uint64 {
	return mc.cycleNum
}

// IP returns the address of the next instruction to be executed. This is
// the BIU's program counter corrected for the bytes in the queue.
func (mc *CPU) IP() uint16 {
	return mc.pc - uint16(mc.queue.LenP())
}

// PC returns the BIU's program counter.
func (mc *CPU) PC() uint16 {
	return mc.pc
}

// QueueLen returns the number of bytes in the queue, including any byte
// already taken by the execution unit for the next instruction.
func (mc *CPU) QueueLen() int {
	return mc.queue.LenP()
}

// LastEA returns the offset of the most recent effective address
// calculation.
func (mc *CPU) LastEA() uint16 {
	return mc.lastEA
}

// InRep returns true if a repeated string instruction is in progress. The
// next call to StepInstruction() will continue the instruction.
func (mc *CPU) InRep() bool {
	return mc.inRep
}

// IsHalted returns true if the CPU has executed a HLT and has not resumed.
func (mc *CPU) IsHalted() bool {
	return mc.halted
}

// Registers returns a copy of the architectural registers.
func (mc *CPU) Registers() registers.Snapshot {
	return mc.regs.Snapshot(mc.IP())
}

// SetRegisters sets the architectural registers. The prefetch queue is
// flushed if CS or IP change, in the same way as a far jump.
func (mc *CPU) SetRegisters(s registers.Snapshot) {
	cs := mc.regs.CS()
	ip := mc.regs.Restore(s)
	if cs != s.CS || ip != mc.IP() {
		mc.pc = ip
		mc.biuQueueFlush()
	}
}

// SetTrace sets the destination of the cycle trace. A nil writer disables
// tracing.
func (mc *CPU) SetTrace(w io.Writer) {
	mc.trace = w
}

// CycleStates returns the cycle states collected since the start of the
// current instruction. Empty unless the cpu.collectcyclestates preference
// is set.
func (mc *CPU) CycleStates() []biu.CycleState {
	return mc.cycleStates
}

// SetCycleStateCollection overrides the collection preference. Used by test
// harnesses that need cycle states regardless of the preferences.
func (mc *CPU) SetCycleStateCollection(on bool) {
	mc.cfg.collectStates = on
}

// SetWaitStates overrides the wait state preference.
func (mc *CPU) SetWaitStates(on bool) {
	mc.cfg.waitStates = on
}

// SetDRAMRefresh overrides the DRAM refresh preferences. The refresh
// scheduler is restarted with a full counter. Refresh only has an effect when
// wait states are enabled.
func (mc *CPU) SetDRAMRefresh(on bool, period int, retrigger bool) {
	mc.cfg.dramRefresh = on
	mc.cfg.refreshPeriod = period
	mc.cfg.refreshRetrigger = retrigger
	mc.refresh.Configure(period, retrigger)
}

func (mc *CPU) logf(detail string, args ...any) {
	if mc.instance == nil {
		logger.Logf(logger.Allow, "cpu", detail, args...)
		return
	}
	logger.Logf(mc.instance, "cpu", detail, args...)
}
