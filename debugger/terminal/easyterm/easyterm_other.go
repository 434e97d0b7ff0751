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

//go:build !unix

package easyterm

import (
	"fmt"
	"io"
	"os"
)

// Geometry is the size of the output terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is not available on this platform. Output is still written but
// Initialise() always fails.
type Terminal struct {
	output io.Writer
}

// Initialise always returns an error on this platform.
func (pt *Terminal) Initialise(input, output *os.File) error {
	pt.output = output
	return fmt.Errorf("easyterm: terminal not available on this platform")
}

func (pt *Terminal) CleanUp() {
}

func (pt *Terminal) Print(s string, a ...any) {
	if pt.output != nil {
		fmt.Fprintf(pt.output, s, a...)
	}
}

func (pt *Terminal) Write(p []byte) (int, error) {
	if pt.output == nil {
		return len(p), nil
	}
	return pt.output.Write(p)
}

func (pt *Terminal) UpdateGeometry() error {
	return nil
}

func (pt *Terminal) Geometry() Geometry {
	return Geometry{}
}

func (pt *Terminal) CanonicalMode() {
}

func (pt *Terminal) RawMode() {
}

func (pt *Terminal) CBreakMode() {
}

func (pt *Terminal) Flush() error {
	return nil
}

func (pt *Terminal) ReadKey() (Key, error) {
	return Key{}, io.EOF
}

func SuspendProcess() error {
	return nil
}
