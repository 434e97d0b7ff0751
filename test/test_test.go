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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8088/test"
)

func TestExpect(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectApproximate(t, 10, 11, 0.1)
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "")

	r.Write([]byte("abcde"))
	test.ExpectEquality(t, r.String(), "abcde")
	r.Write([]byte("fgh"))
	test.ExpectEquality(t, r.String(), "abcdefgh")
	r.Write([]byte("ij"))
	test.ExpectEquality(t, r.String(), "abcdefghij")
	r.Write([]byte("kl"))
	test.ExpectEquality(t, r.String(), "cdefghijkl")
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
}

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(6)
	test.DemandSuccess(t, err)
	c.Write([]byte("abcd"))
	test.ExpectEquality(t, c.String(), "abcd")
	n, _ := c.Write([]byte("efgh"))
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, c.String(), "abcdef")
	c.Reset()
	test.ExpectEquality(t, c.String(), "")
}

func TestCompareWriter(t *testing.T) {
	var c test.CompareWriter
	c.Write([]byte("cycle 1\n"))
	c.Write([]byte("cycle 2\n"))
	test.ExpectSuccess(t, c.Compare("cycle 1\ncycle 2\n"))
	c.Reset()
	test.ExpectSuccess(t, c.Compare(""))
}
