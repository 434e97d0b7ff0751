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

package registers

import "fmt"

// Snapshot is a copy of the architectural registers. It is the type used to
// get and set the registers of the CPU from outside the cpu package. The
// field names match the keys used by the single-step JSON test files.
type Snapshot struct {
	AX    uint16 `json:"ax"`
	BX    uint16 `json:"bx"`
	CX    uint16 `json:"cx"`
	DX    uint16 `json:"dx"`
	SP    uint16 `json:"sp"`
	BP    uint16 `json:"bp"`
	SI    uint16 `json:"si"`
	DI    uint16 `json:"di"`
	CS    uint16 `json:"cs"`
	DS    uint16 `json:"ds"`
	SS    uint16 `json:"ss"`
	ES    uint16 `json:"es"`
	IP    uint16 `json:"ip"`
	Flags uint16 `json:"flags"`
}

func (s Snapshot) String() string {
	return fmt.Sprintf("AX=%04x BX=%04x CX=%04x DX=%04x SP=%04x BP=%04x SI=%04x DI=%04x CS=%04x DS=%04x SS=%04x ES=%04x IP=%04x FLAGS=%04x",
		s.AX, s.BX, s.CX, s.DX, s.SP, s.BP, s.SI, s.DI, s.CS, s.DS, s.SS, s.ES, s.IP, s.Flags)
}

// Snapshot returns a copy of the register file. The IP value is supplied by
// the caller.
func (f *File) Snapshot(ip uint16) Snapshot {
	return Snapshot{
		AX:    f.gpr[AX],
		BX:    f.gpr[BX],
		CX:    f.gpr[CX],
		DX:    f.gpr[DX],
		SP:    f.gpr[SP],
		BP:    f.gpr[BP],
		SI:    f.gpr[SI],
		DI:    f.gpr[DI],
		CS:    f.seg[CS],
		DS:    f.seg[DS],
		SS:    f.seg[SS],
		ES:    f.seg[ES],
		IP:    ip,
		Flags: f.Flags.Value(),
	}
}

// Restore sets the register file from the snapshot. The IP value is
// returned for the caller to deal with.
func (f *File) Restore(s Snapshot) uint16 {
	f.gpr[AX] = s.AX
	f.gpr[BX] = s.BX
	f.gpr[CX] = s.CX
	f.gpr[DX] = s.DX
	f.gpr[SP] = s.SP
	f.gpr[BP] = s.BP
	f.gpr[SI] = s.SI
	f.gpr[DI] = s.DI
	f.seg[CS] = s.CS
	f.seg[DS] = s.DS
	f.seg[SS] = s.SS
	f.seg[ES] = s.ES
	f.Flags.FromValue(s.Flags)
	return s.IP
}
