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
	"encoding/json"
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8088/curated"
)

// MetadataFilename is the name of the metadata file in the test directory.
const MetadataFilename = "8088.json"

// OpcodeInfo is the metadata for an opcode, or for one extension of a group
// opcode.
type OpcodeInfo struct {
	Status    string                `json:"status"`
	FlagsMask *uint16               `json:"flags-mask"`
	Reg       map[string]OpcodeInfo `json:"reg"`
}

// Metadata is the contents of the metadata file, keyed by opcode.
type Metadata map[string]OpcodeInfo

// LoadMetadata reads the metadata file. Older metadata files are a map of
// opcodes. Newer files put the map in the opcodes field.
func LoadMetadata(filename string) (Metadata, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(TestFileError, filename, err)
	}

	var wrapped struct {
		Opcodes Metadata `json:"opcodes"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Opcodes) > 0 {
		return wrapped.Opcodes, nil
	}

	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, curated.Errorf(TestFileError, filename, err)
	}
	return md, nil
}

func (md Metadata) lookup(opcode uint8, ext int) (OpcodeInfo, bool) {
	if md == nil {
		return OpcodeInfo{}, false
	}
	info, ok := md[fmt.Sprintf("%02X", opcode)]
	if !ok {
		return OpcodeInfo{}, false
	}
	if ext >= 0 && info.Reg != nil {
		if r, ok := info.Reg[fmt.Sprintf("%X", ext)]; ok {
			return r, true
		}
	}
	return info, true
}

// FlagsMask returns the mask of the flags that are defined after the
// instruction. All flags are defined if there is no metadata.
func (md Metadata) FlagsMask(opcode uint8, ext int) uint16 {
	info, ok := md.lookup(opcode, ext)
	if !ok || info.FlagsMask == nil {
		return 0xffff
	}
	return *info.FlagsMask
}

// Skip returns true if the opcode should not be tested. Undefined opcodes
// and prefixes are not tested.
func (md Metadata) Skip(opcode uint8, ext int) bool {
	info, ok := md.lookup(opcode, ext)
	if !ok {
		return false
	}
	return info.Status == "undefined" || info.Status == "prefix"
}
