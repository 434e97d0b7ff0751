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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/curated"
)

// PortDevice is a device in the IO space.
type PortDevice interface {
	IORead(port uint16) uint8
	IOWrite(port uint16, data uint8)
}

type portRange struct {
	first uint16
	last  uint16
	dev   PortDevice
}

// MapPorts attaches a device to a range of IO ports. Ranges must not
// overlap.
func (mem *Memory) MapPorts(first uint16, last uint16, dev PortDevice) error {
	if last < first {
		return curated.Errorf(MappingError, fmt.Sprintf("port range %04x-%04x is inverted", first, last))
	}
	for _, p := range mem.ports {
		if first <= p.last && last >= p.first {
			return curated.Errorf(MappingError, fmt.Sprintf("port range %04x-%04x overlaps %04x-%04x", first, last, p.first, p.last))
		}
	}
	mem.ports = append(mem.ports, portRange{first: first, last: last, dev: dev})
	return nil
}

// SetIOWriteWait sets the number of wait states for every IO write.
func (mem *Memory) SetIOWriteWait(wait int) {
	mem.ioWriteWait = wait
}

func (mem *Memory) port(port uint16) PortDevice {
	for _, p := range mem.ports {
		if port >= p.first && port <= p.last {
			return p.dev
		}
	}
	return nil
}

// IORead implements the bus.IO interface.
func (mem *Memory) IORead(port uint16, _ int) uint8 {
	if dev := mem.port(port); dev != nil {
		return dev.IORead(port)
	}
	return 0xff
}

// IOWrite implements the bus.IO interface.
func (mem *Memory) IOWrite(port uint16, data uint8, _ int) {
	if dev := mem.port(port); dev != nil {
		dev.IOWrite(port, data)
	}
}

// IOWriteWait implements the bus.IO interface.
func (mem *Memory) IOWriteWait(_ uint16, _ int) int {
	return mem.ioWriteWait
}

// Latch is a PortDevice that stores the last byte written to each of its
// ports. Useful as a stand-in for simple output hardware and for tests.
type Latch struct {
	values map[uint16]uint8
}

// NewLatch is the preferred method of initialisation for the Latch type.
func NewLatch() *Latch {
	return &Latch{values: make(map[uint16]uint8)}
}

// IORead implements the PortDevice interface. Ports that have never been
// written to read as 0xff.
func (l *Latch) IORead(port uint16) uint8 {
	if v, ok := l.values[port]; ok {
		return v
	}
	return 0xff
}

// IOWrite implements the PortDevice interface.
func (l *Latch) IOWrite(port uint16, data uint8) {
	l.values[port] = data
}
