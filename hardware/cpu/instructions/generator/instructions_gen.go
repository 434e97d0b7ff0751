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

//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the 8088. The\n" +
	"// 256 opcodes are followed by the extensions for each opcode group\n" +
	"func GetDefinitions() ([]*Definition, error) {\n" +
	"return []*Definition{"

const trailingBoilerPlate = "}, nil\n}"

const numDefinitions = 256 + instructions.NumGroups*8

func parseHex(s string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, bits)
}

func parseCSV() ([]*instructions.Definition, error) {
	// open file
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%s)", err)
	}
	defer df.Close()

	// treat the file as a CSV file
	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true
	csvr.FieldsPerRecord = 8

	deftable := make([]*instructions.Definition, numDefinitions)

	line := 0
	for {
		// loop through file until EOF is reached
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := parseHex(rec[0], 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.Opcode = uint8(n)

		// field: group number
		defn.Group, err = strconv.Atoi(rec[1])
		if err != nil || defn.Group < 0 || defn.Group > instructions.NumGroups {
			return nil, fmt.Errorf("invalid group for %#02x (%s) [line %d]", defn.Opcode, rec[1], line)
		}

		// field: group extension. a dash for opcode rows
		if rec[2] != "-" {
			defn.Extension, err = strconv.Atoi(rec[2])
			if err != nil || defn.Extension < 0 || defn.Extension > 7 {
				return nil, fmt.Errorf("invalid extension for %#02x (%s) [line %d]", defn.Opcode, rec[2], line)
			}
		}

		// field: group decode flags
		n, err = parseHex(rec[3], 16)
		if err != nil {
			return nil, fmt.Errorf("invalid flags for %#02x (%s) [line %d]", defn.Opcode, rec[3], line)
		}
		defn.Flags = uint16(n)

		// field: microcode entry point
		n, err = parseHex(rec[4], 16)
		if err != nil {
			return nil, fmt.Errorf("invalid microcode address for %#02x (%s) [line %d]", defn.Opcode, rec[4], line)
		}
		defn.Microcode = uint16(n)

		// field: mnemonic
		defn.Mnemonic, err = instructions.ParseMnemonic(rec[5])
		if err != nil {
			return nil, fmt.Errorf("%w [line %d]", err, line)
		}

		// fields: operand templates
		defn.Operand1, err = instructions.ParseTemplate(rec[6])
		if err != nil {
			return nil, fmt.Errorf("%w [line %d]", err, line)
		}
		defn.Operand2, err = instructions.ParseTemplate(rec[7])
		if err != nil {
			return nil, fmt.Errorf("%w [line %d]", err, line)
		}

		// group rows go after the opcode rows
		if rec[2] != "-" && defn.Group == 0 {
			return nil, fmt.Errorf("extension given for non-group opcode %#02x [line %d]", defn.Opcode, line)
		}

		idx := defn.Index()
		if deftable[idx] != nil {
			return nil, fmt.Errorf("duplicate definition for %s [line %d]", defn, line)
		}
		deftable[idx] = &defn
	}

	return deftable, nil
}

func printSummary(deftable []*instructions.Definition) {
	missing := 0
	for i, defn := range deftable {
		if defn == nil {
			fmt.Printf("missing definition at index %d\n", i)
			missing++
		}
	}
	fmt.Printf("%d definitions, %d missing\n", len(deftable), missing)
}

func literal(defn *instructions.Definition) string {
	if defn == nil {
		return "nil"
	}
	return fmt.Sprintf("&Definition{Opcode: %#02x, Group: %d, Extension: %d, Flags: %#04x, Microcode: %#03x, Mnemonic: %s, Operand1: %s, Operand2: %s}",
		defn.Opcode, defn.Group, defn.Extension, defn.Flags, defn.Microcode,
		constName(defn.Mnemonic.String()), templateConst(defn.Operand1), templateConst(defn.Operand2))
}

func constName(s string) string {
	if s == "(invalid)" {
		return "Invalid"
	}
	return s
}

func templateConst(t instructions.Template) string {
	if t.IsFixed8() || t.IsFixed16() || t.IsFixedSegment() {
		return "Fixed" + t.String()
	}
	return t.String()
}

func main() {
	// parse definitions files
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	printSummary(deftable)

	var output strings.Builder
	output.WriteString(leadingBoilerPlate)
	for _, defn := range deftable {
		output.WriteString("\n")
		output.WriteString(literal(defn))
		output.WriteString(",")
	}
	output.WriteString(trailingBoilerPlate)

	// format code using standard Go formatted
	formattedOutput, err := format.Source([]byte(output.String()))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// create output file (over-writing) if it already exists
	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(formattedOutput)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
