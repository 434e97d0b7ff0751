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
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// Error patterns returned by Save() and Load().
const (
	InvalidStateFile = "cpu: state file: %v"
	CannotSaveState  = "cpu: cannot save state: %v"
)

// the first line of every state file
const (
	stateHeader  = "gopher8088 cpu state"
	stateVersion = 1
)

const stateSep = " :: "

// a tagged line in the state file. each line has one or more values
type stateField struct {
	tag    string
	values []any
}

// stateFields lists the parts of the CPU that are written to a state file.
// the register file and the queue are handled separately
func (mc *CPU) stateFields() []stateField {
	r := mc.refresh
	return []stateField{
		{"pc", []any{&mc.pc}},
		{"bus", []any{&mc.tCycle, &mc.taCycle, &mc.busStatus, &mc.busStatusLatch, &mc.plStatus, &mc.plSlot, &mc.busPending, &mc.busSegment}},
		{"address", []any{&mc.addressBus, &mc.addressLatch, &mc.dataBus}},
		{"transfer", []any{&mc.transferSize, &mc.operandSize, &mc.transferN, &mc.finalTransfer}},
		{"fetch", []any{&mc.fetchState, &mc.fetchDelay}},
		{"pins", []any{&mc.ale, &mc.ready, &mc.lock, &mc.clk0}},
		{"lines", []any{&mc.lines.MRDC, &mc.lines.AMWC, &mc.lines.MWTC, &mc.lines.IORC, &mc.lines.AIOWC, &mc.lines.IOWC, &mc.lines.INTA}},
		{"waits", []any{&mc.busWait, &mc.ioWait, &mc.dmaWait}},
		{"queueop", []any{&mc.queueOp, &mc.lastQueueOp, &mc.queueByte, &mc.lastQueueByte, &mc.lastQueueLen}},
		{"dma", []any{&r.State, &r.Count, &r.Period, &r.Counter, &r.Retrigger, &r.TC, &r.DREQ, &r.DACK, &r.HOLDA, &r.AEN}},
		{"instr", []any{&mc.instrAddress, &mc.instrCS, &mc.instrIP, &mc.lastEA, &mc.eaOpr, &mc.mcPC}},
		{"halt", []any{&mc.halted, &mc.reportedHalt}},
		{"rep", []any{&mc.inRep, &mc.repInit, &mc.repType, &mc.reentrant, &mc.jumped}},
		{"trap", []any{&mc.trapSuppressed, &mc.trapEnableDelay, &mc.trapDisableDelay}},
		{"intr", []any{&mc.interruptInhibit, &mc.intrPending, &mc.intr, &mc.nmi, &mc.nmiTriggered}},
		{"offrails", []any{&mc.opcode0Count}},
		{"counts", []any{&mc.cycleNum, &mc.instrCount, &mc.intCount}},
	}
}

func formatStateValue(v any) string {
	e := reflect.ValueOf(v).Elem()
	if e.Kind() == reflect.Bool {
		return strconv.FormatBool(e.Bool())
	}
	return fmt.Sprintf("%d", e.Interface())
}

// Save writes the state of the CPU to the writer. The state can only be
// saved between instructions.
func (mc *CPU) Save(w io.Writer) error {
	if mc.stepper != nil {
		return curated.Errorf(CannotSaveState, "instruction in progress")
	}

	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "%s%s%d\n", stateHeader, stateSep, stateVersion)
	fmt.Fprintf(b, "model%s%s\n", stateSep, mc.model)

	s := mc.regs.Snapshot(mc.IP())
	fmt.Fprintf(b, "regs%s%d %d %d %d %d %d %d %d %d %d %d %d %d\n", stateSep,
		s.AX, s.BX, s.CX, s.DX, s.SP, s.BP, s.SI, s.DI, s.CS, s.DS, s.SS, s.ES, s.Flags)

	fmt.Fprintf(b, "queue%s%s\n", stateSep, formatQueue(mc.queue.Contents()))
	if p, ok := mc.peekPreload(); ok {
		fmt.Fprintf(b, "preload%s%d\n", stateSep, p)
	}

	for _, f := range mc.stateFields() {
		vals := make([]string, len(f.values))
		for i, v := range f.values {
			vals[i] = formatStateValue(v)
		}
		fmt.Fprintf(b, "%s%s%s\n", f.tag, stateSep, strings.Join(vals, " "))
	}

	if err := b.Flush(); err != nil {
		return curated.Errorf(CannotSaveState, err)
	}
	return nil
}

func formatQueue(q []uint8) string {
	if len(q) == 0 {
		return "-"
	}
	s := make([]string, len(q))
	for i, v := range q {
		s[i] = strconv.Itoa(int(v))
	}
	return strings.Join(s, " ")
}

// peekPreload returns the preload byte without taking it
func (mc *CPU) peekPreload() (uint8, bool) {
	p, ok := mc.queue.GetPreload()
	if ok {
		mc.restorePreload(p)
	}
	return p, ok
}

// restorePreload puts the byte back into the preload slot. the queue
// contents are preserved
func (mc *CPU) restorePreload(p uint8) {
	c := mc.queue.Contents()
	mc.queue.Flush()
	mc.queue.Push8(p)
	mc.queue.SetPreload()
	for _, b := range c {
		mc.queue.Push8(b)
	}
}

// Load restores the state of the CPU from a file created by Save(). The
// model of the CPU must match the model in the file. Memory is not part of
// the state.
func (mc *CPU) Load(r io.Reader) error {
	lines := make(map[string]string)
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		tag, val, ok := strings.Cut(l, stateSep)
		if !ok {
			return curated.Errorf(InvalidStateFile, fmt.Sprintf("malformed line (%s)", l))
		}
		if first {
			if tag != stateHeader {
				return curated.Errorf(InvalidStateFile, "not a state file")
			}
			if v, err := strconv.Atoi(val); err != nil || v != stateVersion {
				return curated.Errorf(InvalidStateFile, fmt.Sprintf("unsupported version (%s)", val))
			}
			first = false
			continue
		}
		lines[tag] = val
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf(InvalidStateFile, err)
	}
	if first {
		return curated.Errorf(InvalidStateFile, "empty file")
	}

	if m, err := ParseModel(lines["model"]); err != nil || m != mc.model {
		return curated.Errorf(InvalidStateFile, fmt.Sprintf("model mismatch (%s)", lines["model"]))
	}

	mc.Abandon()

	var s registers.Snapshot
	if _, err := fmt.Sscan(lines["regs"], &s.AX, &s.BX, &s.CX, &s.DX, &s.SP, &s.BP, &s.SI, &s.DI,
		&s.CS, &s.DS, &s.SS, &s.ES, &s.Flags); err != nil {
		return curated.Errorf(InvalidStateFile, fmt.Sprintf("regs: %v", err))
	}

	var q []uint8
	if v := lines["queue"]; v != "-" {
		for _, f := range strings.Fields(v) {
			b, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return curated.Errorf(InvalidStateFile, fmt.Sprintf("queue: %v", err))
			}
			q = append(q, uint8(b))
		}
	}
	if len(q) > mc.queue.Size() {
		return curated.Errorf(InvalidStateFile, "queue: too many bytes")
	}

	var preload uint8
	hasPreload := false
	if v, ok := lines["preload"]; ok {
		b, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return curated.Errorf(InvalidStateFile, fmt.Sprintf("preload: %v", err))
		}
		preload = uint8(b)
		hasPreload = true
	}

	mc.stepper.stop()
	mc.stepper = nil

	for _, f := range mc.stateFields() {
		v, ok := lines[f.tag]
		if !ok {
			return curated.Errorf(InvalidStateFile, fmt.Sprintf("missing %s", f.tag))
		}
		if _, err := fmt.Sscan(v, f.values...); err != nil {
			return curated.Errorf(InvalidStateFile, fmt.Sprintf("%s: %v", f.tag, err))
		}
	}

	mc.regs.Restore(s)
	mc.queue.Flush()
	for _, b := range q {
		mc.queue.Push8(b)
	}
	if hasPreload {
		mc.restorePreload(preload)
	}

	// a repeated string instruction is decoded again from memory
	if mc.inRep {
		ins, err := mc.decoder.Decode(&memoryReader{mc: mc, address: mc.instrAddress}, true)
		if err != nil {
			return curated.Errorf(InvalidStateFile, err)
		}
		mc.instr = ins
		mc.instr.CS = mc.instrCS
		mc.instr.IP = mc.instrIP
	}

	mc.events = mc.events[:0]
	mc.cycleStates = mc.cycleStates[:0]
	mc.breakpointFlag = false
	mc.skipBreakpoint = false
	mc.callbackErr = nil
	mc.LastResult.Reset()
	mc.lastStep = StepResult{}

	mc.logf("state loaded at %04x:%04x", mc.regs.CS(), mc.IP())
	return nil
}
