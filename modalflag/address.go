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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a segment:offset pair. It satisfies the flag.Value interface.
type Address struct {
	Segment uint16
	Offset  uint16
}

func (a Address) String() string {
	return fmt.Sprintf("%04X:%04X", a.Segment, a.Offset)
}

// Linear returns the 20 bit physical address.
func (a Address) Linear() uint32 {
	return ((uint32(a.Segment) << 4) + uint32(a.Offset)) & 0xfffff
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAddress parses a string of the form "ssss:oooo". The digits are
// hexadecimal and may have a trailing 'h'. A string without a colon is taken
// to be an offset in segment zero.
func ParseAddress(s string) (Address, error) {
	parse := func(v string) (uint16, error) {
		v = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(v)), "h")
		v = strings.TrimPrefix(v, "0x")
		n, err := strconv.ParseUint(v, 16, 16)
		if err != nil {
			return 0, fmt.Errorf("modalflag: address: %q is not a 16 bit hex value", v)
		}
		return uint16(n), nil
	}

	seg, off, found := strings.Cut(s, ":")
	if !found {
		o, err := parse(seg)
		return Address{Offset: o}, err
	}

	sv, err := parse(seg)
	if err != nil {
		return Address{}, err
	}
	ov, err := parse(off)
	if err != nil {
		return Address{}, err
	}
	return Address{Segment: sv, Offset: ov}, nil
}
