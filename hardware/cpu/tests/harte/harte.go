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
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// TestFileError is returned when a test file cannot be read.
const TestFileError = "harte: %s: %v"

// Regs is the register state of a test. In the final state of a test only
// the registers that have changed are present.
type Regs struct {
	AX    *uint16 `json:"ax"`
	BX    *uint16 `json:"bx"`
	CX    *uint16 `json:"cx"`
	DX    *uint16 `json:"dx"`
	CS    *uint16 `json:"cs"`
	SS    *uint16 `json:"ss"`
	DS    *uint16 `json:"ds"`
	ES    *uint16 `json:"es"`
	SP    *uint16 `json:"sp"`
	BP    *uint16 `json:"bp"`
	SI    *uint16 `json:"si"`
	DI    *uint16 `json:"di"`
	IP    *uint16 `json:"ip"`
	Flags *uint16 `json:"flags"`
}

// fields pairs each register in Regs with the same register in a Snapshot
func (r *Regs) fields(s *registers.Snapshot) []struct {
	name string
	test *uint16
	cpu  *uint16
} {
	return []struct {
		name string
		test *uint16
		cpu  *uint16
	}{
		{"AX", r.AX, &s.AX}, {"BX", r.BX, &s.BX}, {"CX", r.CX, &s.CX}, {"DX", r.DX, &s.DX},
		{"CS", r.CS, &s.CS}, {"SS", r.SS, &s.SS}, {"DS", r.DS, &s.DS}, {"ES", r.ES, &s.ES},
		{"SP", r.SP, &s.SP}, {"BP", r.BP, &s.BP}, {"SI", r.SI, &s.SI}, {"DI", r.DI, &s.DI},
		{"IP", r.IP, &s.IP}, {"Flags", r.Flags, &s.Flags},
	}
}

// Apply copies the registers that are present to the snapshot.
func (r *Regs) Apply(s *registers.Snapshot) {
	for _, f := range r.fields(s) {
		if f.test != nil {
			*f.cpu = *f.test
		}
	}
}

// RAMEntry is a single byte of memory.
type RAMEntry struct {
	Address uint32
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint32
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw[1] > 0xff {
		return fmt.Errorf("memory value %d for address %05x is not a byte", raw[1], raw[0])
	}
	r.Address = raw[0]
	r.Value = uint8(raw[1])
	return nil
}

// State is the initial or final state of a test.
type State struct {
	Regs  Regs       `json:"regs"`
	RAM   []RAMEntry `json:"ram"`
	Queue []uint8    `json:"queue"`
}

// Cycle is the state of the bus for one cycle of a test.
type Cycle struct {
	ALE       bool
	Address   uint32
	Segment   string
	Memory    string
	IO        string
	Data      uint16
	Status    string
	TState    string
	QueueOp   string
	QueueByte uint8
}

func (c Cycle) String() string {
	ale := ' '
	if c.ALE {
		ale = 'A'
	}
	return fmt.Sprintf("%05X:%c %s %s %s %-4s %s %s %02X", c.Address, ale, c.Segment,
		c.Memory, c.IO, c.Status, c.TState, c.QueueOp, c.QueueByte)
}

// UnmarshalJSON accepts cycles with and without the BHE field.
func (c *Cycle) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch len(raw) {
	case 10:
	case 11:
		// drop BHE. it has no meaning on an 8 bit bus
		raw = append(raw[:5], raw[6:]...)
	default:
		return fmt.Errorf("unexpected number of fields in cycle (%d)", len(raw))
	}

	num := func(i int) (uint32, error) {
		switch v := raw[i].(type) {
		case float64:
			return uint32(v), nil
		case string:
			if v == "--" {
				return 0, nil
			}
			n, err := strconv.ParseUint(v, 16, 32)
			return uint32(n), err
		}
		return 0, fmt.Errorf("field %d of cycle is not a number", i)
	}
	str := func(i int) (string, error) {
		if s, ok := raw[i].(string); ok {
			return s, nil
		}
		return "", fmt.Errorf("field %d of cycle is not a string", i)
	}

	var err error
	var v uint32

	if v, err = num(0); err != nil {
		return err
	}
	c.ALE = v != 0
	if c.Address, err = num(1); err != nil {
		return err
	}
	if c.Segment, err = str(2); err != nil {
		return err
	}
	if c.Memory, err = str(3); err != nil {
		return err
	}
	if c.IO, err = str(4); err != nil {
		return err
	}
	if v, err = num(5); err != nil {
		return err
	}
	c.Data = uint16(v)
	if c.Status, err = str(6); err != nil {
		return err
	}
	if c.TState, err = str(7); err != nil {
		return err
	}
	if c.QueueOp, err = str(8); err != nil {
		return err
	}
	if v, err = num(9); err != nil {
		return err
	}
	c.QueueByte = uint8(v)

	return nil
}

// Test is a single test from a test file.
type Test struct {
	Name    string  `json:"name"`
	Bytes   []uint8 `json:"bytes"`
	Initial State   `json:"initial"`
	Final   State   `json:"final"`
	Cycles  []Cycle `json:"cycles"`
	Hash    string  `json:"hash"`
	Idx     int     `json:"idx"`
}

func (d *Test) UnmarshalJSON(data []byte) error {
	// alias type to avoid recursion
	type norecurse Test

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Test(tmp)
	return nil
}

// Decode the tests in a test file. The file may be gzipped.
func Decode(r io.Reader, gzipped bool) ([]Test, error) {
	if gzipped {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}

	var tests []Test
	if err := json.NewDecoder(r).Decode(&tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// LoadFile reads the tests in the named file.
func LoadFile(filename string) ([]Test, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(TestFileError, filename, err)
	}
	defer f.Close()

	tests, err := Decode(f, strings.HasSuffix(filename, ".gz"))
	if err != nil {
		return nil, curated.Errorf(TestFileError, filename, err)
	}
	return tests, nil
}

// IsTestFile returns true if the filename looks like the name of a test
// file.
func IsTestFile(filename string) bool {
	_, _, ok := OpcodeFromFilename(filename)
	return ok
}

// OpcodeFromFilename returns the opcode and the group extension of a test
// file. The extension is -1 if the test is not for a group instruction.
func OpcodeFromFilename(filename string) (uint8, int, bool) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, ".gz")
	base, ok := strings.CutSuffix(base, ".json")
	if !ok {
		return 0, 0, false
	}

	op, ext, group := strings.Cut(base, ".")
	if len(op) != 2 {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(op, 16, 8)
	if err != nil {
		return 0, 0, false
	}
	if !group {
		return uint8(v), -1, true
	}

	e, err := strconv.ParseUint(ext, 10, 3)
	if err != nil {
		return 0, 0, false
	}
	return uint8(v), int(e), true
}
