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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8088/prefs"
	"github.com/jetsetilly/gopher8088/test"
)

func readFile(t *testing.T, fn string) string {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(data)
}

func TestBoolAndInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Int
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("42"))
	test.ExpectFailure(t, x.Set("forty two"))
	test.ExpectFailure(t, v.Set(1.0))

	test.DemandSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\ntest :: true\ntestB :: false\ntestC :: 42\n")

	// reload into a new set of values
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v2 prefs.Bool
	var x2 prefs.Int
	test.ExpectSuccess(t, dsk2.Add("test", &v2))
	test.ExpectSuccess(t, dsk2.Add("testC", &x2))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, v2.Get().(bool), true)
	test.ExpectEquality(t, x2.Get().(int), 42)

	// saving the second disk preserves the entry it did not add
	test.DemandSuccess(t, dsk2.Save())
	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\ntest :: true\ntestB :: false\ntestC :: 42\n")
}

func TestString(t *testing.T) {
	var s prefs.String
	test.ExpectEquality(t, s.String(), "")
	test.ExpectSuccess(t, s.Set("hello world"))
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "hello")
	test.ExpectSuccess(t, s.Set(12345678))
	test.ExpectEquality(t, s.String(), "12345")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, seen, 10)
}

func TestGeneric(t *testing.T) {
	var w, h int
	g := prefs.NewGeneric(
		func(v prefs.Value) error {
			w = len(v.(string))
			h = w * 2
			return nil
		},
		func() prefs.Value {
			return w + h
		},
	)
	test.ExpectSuccess(t, g.Set("abc"))
	test.ExpectEquality(t, g.String(), "9")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("cpu.model::8086; cpu.waitstates::false; unused::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("cpu.model")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "8086")

	// values are consumed when read
	ok, _ = prefs.GetCommandLinePref("cpu.model")
	test.ExpectFailure(t, ok)

	// adding to a disk picks up the command line value
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	var waits prefs.Bool
	waits.Set(true)
	test.ExpectSuccess(t, dsk.Add("cpu.waitstates", &waits))
	test.ExpectEquality(t, waits.Get().(bool), false)

	// the value on disk does not override the command line
	waits.Set(true)
	test.DemandSuccess(t, dsk.Save())
	waits.Set(false)
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, waits.Get().(bool), false)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
