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

package memorymap

import "fmt"

// Area represents the different conventional areas of the IBM PC address
// space. The areas are only a naming convention; any device can be mapped
// anywhere.
type Area int

func (a Area) String() string {
	switch a {
	case Conventional:
		return "conventional"
	case Video:
		return "video"
	case Adapter:
		return "adapter"
	case System:
		return "system"
	}

	return "undefined"
}

// List of valid Area values.
const (
	Undefined Area = iota
	Conventional
	Video
	Adapter
	System
)

// The origin and memory top for each area of memory.
const (
	OriginConventional = uint32(0x00000)
	MemtopConventional = uint32(0x9ffff)
	OriginVideo        = uint32(0xa0000)
	MemtopVideo        = uint32(0xbffff)
	OriginAdapter      = uint32(0xc0000)
	MemtopAdapter      = uint32(0xeffff)
	OriginSystem       = uint32(0xf0000)
	MemtopSystem       = uint32(0xfffff)
)

// AddressMask limits an address to the 20 bit physical address space.
const AddressMask = uint32(0xfffff)

// PageShift and PageSize define the granularity of the device table.
const (
	PageShift = 12
	PageSize  = 1 << PageShift
	NumPages  = (AddressMask + 1) >> PageShift
)

// MapAddress returns the area that an address belongs to.
func MapAddress(address uint32) Area {
	address &= AddressMask
	switch {
	case address <= MemtopConventional:
		return Conventional
	case address <= MemtopVideo:
		return Video
	case address <= MemtopAdapter:
		return Adapter
	}
	return System
}

// Linear returns the physical address of a segment:offset pair.
func Linear(segment uint16, offset uint16) uint32 {
	return ((uint32(segment) << 4) + uint32(offset)) & AddressMask
}

// Summary returns a single line description of an address.
func Summary(address uint32) string {
	return fmt.Sprintf("%05x (%s)", address&AddressMask, MapAddress(address))
}
