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

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
)

// BreakpointKind is the type of value a breakpoint is set on.
type BreakpointKind int

// List of valid BreakpointKind values.
const (
	// linear address of the first byte of an instruction
	BreakExecute BreakpointKind = iota

	// linear address of a byte read or written by an instruction. code
	// fetches are not checked
	BreakMemAccess

	// interrupt vector number
	BreakInterrupt
)

func (k BreakpointKind) String() string {
	switch k {
	case BreakExecute:
		return "execute"
	case BreakMemAccess:
		return "memory"
	case BreakInterrupt:
		return "interrupt"
	}
	return "unknown"
}

// InvalidBreakpoint is returned by SetBreakpoint.
const InvalidBreakpoint = "cpu: breakpoint: %s"

type breakpoints struct {
	exec   map[uint32]bool
	mem    map[uint32]bool
	vector [256]bool
}

func (bp *breakpoints) execute(address uint32) bool {
	return bp.exec[address]
}

// memAccess checks every byte covered by the bus transfer
func (bp *breakpoints) memAccess(address uint32, size biu.TransferSize) bool {
	if bp.mem[address&memorymap.AddressMask] {
		return true
	}
	return size == biu.Word && bp.mem[(address+1)&memorymap.AddressMask]
}

func (bp *breakpoints) interrupt(vector uint8) bool {
	return bp.vector[vector]
}

// SetBreakpoint adds a breakpoint. Addresses are masked to 20 bits.
// Interrupt breakpoints take a vector number.
func (mc *CPU) SetBreakpoint(kind BreakpointKind, value uint32) error {
	bp := &mc.breakpoints
	switch kind {
	case BreakExecute:
		if bp.exec == nil {
			bp.exec = make(map[uint32]bool)
		}
		bp.exec[value&memorymap.AddressMask] = true
	case BreakMemAccess:
		if bp.mem == nil {
			bp.mem = make(map[uint32]bool)
		}
		bp.mem[value&memorymap.AddressMask] = true
	case BreakInterrupt:
		if value > 0xff {
			return curated.Errorf(InvalidBreakpoint, fmt.Sprintf("vector %d out of range", value))
		}
		bp.vector[value] = true
	default:
		return curated.Errorf(InvalidBreakpoint, fmt.Sprintf("unknown kind %d", kind))
	}
	return nil
}

// ClearBreakpoints removes all breakpoints of every kind.
func (mc *CPU) ClearBreakpoints() {
	mc.breakpoints = breakpoints{}
	mc.breakpointFlag = false
}

// EventKind is the type of an Event.
type EventKind int

// List of valid EventKind values.
const (
	// the CPU has halted with interrupts disabled. only an NMI or a reset
	// will wake it
	EventHalted EventKind = iota

	// a breakpoint has been reached. the address is the linear address of
	// the instruction or memory access, or the interrupt vector
	EventBreakpointHit

	// the address set with SetEndAddress() has been reached
	EventProgramEnd

	// too many consecutive 0x00 opcodes have been executed
	EventOffRails
)

var eventNames = [...]string{"Halted", "BreakpointHit", "ProgramEnd", "OffRails"}

func (k EventKind) String() string {
	if k < EventHalted || k > EventOffRails {
		return "unknown"
	}
	return eventNames[k]
}

// Event is something the host might want to know about that happened during
// a step.
type Event struct {
	Kind    EventKind
	Address uint32
}

func (e Event) String() string {
	return fmt.Sprintf("%s @ %05x", e.Kind, e.Address)
}

func (mc *CPU) pushEvent(kind EventKind, address uint32) {
	mc.events = append(mc.events, Event{Kind: kind, Address: address})
}

// Events drains the event queue.
func (mc *CPU) Events() []Event {
	if len(mc.events) == 0 {
		return nil
	}
	e := make([]Event, len(mc.events))
	copy(e, mc.events)
	mc.events = mc.events[:0]
	return e
}

// HistoryEntry is a record of an executed instruction.
type HistoryEntry struct {
	CS          uint16
	IP          uint16
	Cycles      int
	Instruction instructions.Instruction
	Jumped      bool
	Interrupted bool
	Vector      uint8
}

func (h HistoryEntry) String() string {
	s := fmt.Sprintf("%04x:%04x %-24s %3d", h.CS, h.IP, h.Instruction, h.Cycles)
	if h.Jumped {
		s = fmt.Sprintf("%s J", s)
	}
	if h.Interrupted {
		s = fmt.Sprintf("%s INT %02xh", s, h.Vector)
	}
	return s
}

// history is a ring of the most recently executed instructions
type history struct {
	entries []HistoryEntry
	next    int
	full    bool
}

func (h *history) reset(n int) {
	if n < 0 {
		n = 0
	}
	if cap(h.entries) >= n {
		h.entries = h.entries[:n]
	} else {
		h.entries = make([]HistoryEntry, n)
	}
	h.next = 0
	h.full = false
}

func (h *history) push(e HistoryEntry) {
	if len(h.entries) == 0 {
		return
	}
	h.entries[h.next] = e
	h.next++
	if h.next >= len(h.entries) {
		h.next = 0
		h.full = true
	}
}

// oldest entry first
func (h *history) list() []HistoryEntry {
	if !h.full {
		return append([]HistoryEntry{}, h.entries[:h.next]...)
	}
	l := make([]HistoryEntry, 0, len(h.entries))
	l = append(l, h.entries[h.next:]...)
	return append(l, h.entries[:h.next]...)
}

// History returns the most recently executed instructions, oldest first. The
// length of the history is set by the cpu.history preference.
func (mc *CPU) History() []HistoryEntry {
	return mc.history.list()
}
