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

package biu

import "fmt"

// BusStatus is the status decoded from the S0 to S2 lines. It is latched at
// T1 and held until T4.
type BusStatus int

// List of valid BusStatus values.
const (
	Passive BusStatus = iota
	CodeFetch
	MemRead
	MemWrite
	IORead
	IOWrite
	InterruptAck
	Halt
)

var statusNames = [...]string{"PASV", "CODE", "MEMR", "MEMW", "IOR", "IOW", "INTA", "HALT"}

func (s BusStatus) String() string {
	if s < Passive || s > Halt {
		return "????"
	}
	return statusNames[s]
}

// IsMemory returns true for the bus status values that address memory.
func (s BusStatus) IsMemory() bool {
	return s == CodeFetch || s == MemRead || s == MemWrite
}

// IsIO returns true for the bus status values that address the IO space.
func (s BusStatus) IsIO() bool {
	return s == IORead || s == IOWrite
}

// TCycle is the state of the bus cycle.
type TCycle int

// List of valid TCycle values. Tinit is the state of a bus cycle that has
// been started but not yet clocked.
const (
	Tinit TCycle = iota
	Ti
	T1
	T2
	T3
	Tw
	T4
)

var tcycleNames = [...]string{"Tx", "Ti", "T1", "T2", "T3", "Tw", "T4"}

func (t TCycle) String() string {
	if t < Tinit || t > T4 {
		return "T?"
	}
	return tcycleNames[t]
}

// TaCycle is the state of the address phase of a bus request.
type TaCycle int

// List of valid TaCycle values.
const (
	Tr TaCycle = iota
	Ts
	T0
	Td
	Ta
)

var tacycleNames = [...]string{"Tr", "Ts", "T0", "Td", "Ta"}

func (t TaCycle) String() string {
	if t < Tr || t > Ta {
		return "T?"
	}
	return tacycleNames[t]
}

// FetchState is the state of the prefetch logic.
type FetchState int

// List of valid FetchState values. The Delayed state is qualified by a
// count of the number of cycles remaining.
const (
	Normal FetchState = iota
	Suspended
	Halted
	Delayed
	PausedFull
)

var fetchNames = [...]string{"Normal", "Suspended", "Halted", "Delayed", "PausedFull"}

func (f FetchState) String() string {
	if f < Normal || f > PausedFull {
		return "??"
	}
	return fetchNames[f]
}

// BusPending indicates that the execution unit has requested the bus. An
// early request prevents a code fetch from starting. A late request aborts
// a code fetch that has already been scheduled.
type BusPending int

// List of valid BusPending values.
const (
	NoPending BusPending = iota
	EUEarly
	EULate
)

func (p BusPending) String() string {
	switch p {
	case EUEarly:
		return "EuEarly"
	case EULate:
		return "EuLate"
	}
	return "None"
}

// QueueOp is the queue operation signalled on the QS0 and QS1 lines.
type QueueOp int

// List of valid QueueOp values.
const (
	Idle QueueOp = iota
	First
	Subsequent
	Flush
)

// String returns the single character used by the cycle trace.
func (q QueueOp) String() string {
	switch q {
	case First:
		return "F"
	case Subsequent:
		return "S"
	case Flush:
		return "E"
	}
	return "-"
}

// TransferSize is the width of a bus transfer.
type TransferSize int

// List of valid TransferSize values.
const (
	Byte TransferSize = iota
	Word
)

func (s TransferSize) String() string {
	if s == Word {
		return "word"
	}
	return "byte"
}

// OperandSize is the width of the operand that the bus transfer is part
// of. A 16 bit operand on an 8 bit bus takes two transfers.
type OperandSize int

// List of valid OperandSize values.
const (
	Operand8 OperandSize = iota
	Operand16
)

// Lines are the command outputs of the 8288 bus controller.
type Lines struct {
	// memory read command
	MRDC bool

	// advanced and normal memory write commands
	AMWC bool
	MWTC bool

	// IO read command
	IORC bool

	// advanced and normal IO write commands
	AIOWC bool
	IOWC  bool

	// interrupt acknowledge
	INTA bool
}

// Clear all command lines.
func (l *Lines) Clear() {
	*l = Lines{}
}

// String returns the command lines as a compact string of three columns:
// memory read and write, IO read and write, and interrupt acknowledge.
func (l Lines) String() string {
	chr := func(b bool, c byte) byte {
		if b {
			return c
		}
		return '.'
	}
	return fmt.Sprintf("%c%c%c %c%c%c %c",
		chr(l.MRDC, 'R'), chr(l.AMWC, 'A'), chr(l.MWTC, 'W'),
		chr(l.IORC, 'R'), chr(l.AIOWC, 'A'), chr(l.IOWC, 'W'),
		chr(l.INTA, 'I'))
}
