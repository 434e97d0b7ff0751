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

// Package preferences groups the preference values that configure the
// emulated hardware. The values are shared between the machine and the CPU
// through the instance package.
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/prefs"
)

// list of CPU models accepted by the Model preference.
var Models = []string{"8088", "8086", "V20", "V30"}

// default values
const (
	DefaultModel           = "8088"
	DefaultRefreshPeriod   = 72
	DefaultHistoryLength   = 32
	DefaultHaltResumeDelay = 4
	DefaultOffRailsLimit   = 8
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk  *prefs.Disk
	path string

	// CPU model. one of the values in the Models list
	Model prefs.String

	// emulate bus wait states. the DMA scheduler only runs when wait states
	// are enabled
	WaitStates prefs.Bool

	// DRAM refresh simulation. the refresh period is in CPU cycles. if
	// retrigger is true the refresh counter reloads after reaching zero
	DRAMRefresh      prefs.Bool
	RefreshPeriod    prefs.Int
	RefreshRetrigger prefs.Bool

	// record a CycleState for every T-cycle of the current instruction
	CollectCycleStates prefs.Bool

	// number of instructions kept in the instruction history. zero disables
	// the history
	HistoryLength prefs.Int

	// raise an event if too many consecutive 0x00 opcodes are executed
	OffRails      prefs.Bool
	OffRailsLimit prefs.Int

	// the number of cycles taken for the CPU to resume from a halt
	HaltResumeDelay prefs.Int

	// the Harris 80C88 does not inhibit interrupts after a load of a segment
	// register other than SS
	HarrisInhibit prefs.Bool

	// registers are randomised on reset rather than being zeroed
	RandomState prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("model=%s waits=%v refresh=%v/%d", p.Model.String(), p.WaitStates.Get(), p.DRAMRefresh.Get(), p.RefreshPeriod.Get())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the preferences are never loaded
// from or saved to disk.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{path: path}
	p.SetDefaults()

	p.Model.SetHookPre(func(v prefs.Value) error {
		m := strings.ToUpper(v.(string))
		for _, n := range Models {
			if m == n {
				return nil
			}
		}
		return fmt.Errorf("preferences: unknown CPU model %q", v)
	})

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]prefs.Pref{
		"cpu.model":              &p.Model,
		"cpu.waitstates":         &p.WaitStates,
		"cpu.dramrefresh":        &p.DRAMRefresh,
		"cpu.refreshperiod":      &p.RefreshPeriod,
		"cpu.refreshretrigger":   &p.RefreshRetrigger,
		"cpu.collectcyclestates": &p.CollectCycleStates,
		"cpu.historylength":      &p.HistoryLength,
		"cpu.offrails":           &p.OffRails,
		"cpu.offrailslimit":      &p.OffRailsLimit,
		"cpu.haltresumedelay":    &p.HaltResumeDelay,
		"cpu.harrisinhibit":      &p.HarrisInhibit,
		"cpu.randomstate":        &p.RandomState,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	if path != "" {
		if err := p.dsk.Load(); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Model.Set(DefaultModel)
	p.WaitStates.Set(true)
	p.DRAMRefresh.Set(false)
	p.RefreshPeriod.Set(DefaultRefreshPeriod)
	p.RefreshRetrigger.Set(true)
	p.CollectCycleStates.Set(false)
	p.HistoryLength.Set(DefaultHistoryLength)
	p.OffRails.Set(true)
	p.OffRailsLimit.Set(DefaultOffRailsLimit)
	p.HaltResumeDelay.Set(DefaultHaltResumeDelay)
	p.HarrisInhibit.Set(false)
	p.RandomState.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.path == "" {
		return nil
	}
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.path == "" {
		return nil
	}
	return p.dsk.Save()
}
