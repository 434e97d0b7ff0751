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

// Package test bundles helper functions that remove common boilerplate from
// package tests.
//
// The Expect functions report a failure with t.Errorf() and return false so
// that the caller can decide whether to continue. The Demand functions call
// t.Fatalf() instead.
//
// Every function accepts an optional list of tags. The tags are printed at
// the start of the failure message and are useful for identifying which
// iteration of a table driven test failed:
//
//	for i, c := range cases {
//		test.ExpectEquality(t, f(c.in), c.out, i, c.in)
//	}
//
// A nil value is considered a success by ExpectSuccess() and a failure by
// ExpectFailure(). This matches how errors are used in Go.
//
// The RingWriter and CappedWriter types implement io.Writer and are used to
// capture output for later comparison.
package test
