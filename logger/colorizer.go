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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/gopher8088/debugger/terminal/easyterm/ansi"
)

// Colorizer wraps an io.Writer. The first line of every write is printed
// normally and any subsequent lines are dimmed. Useful with SetEcho() when
// log details carry a multi-line cycle trace.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	n, err := io.WriteString(c.out, l[0]+"\n")
	if err != nil || len(l) == 1 {
		return n, err
	}

	m, err := io.WriteString(c.out, ansi.DimPens["red"])
	n += m
	if err != nil {
		return n, err
	}
	defer io.WriteString(c.out, ansi.NormalPen)

	for _, s := range l[1:] {
		m, err := io.WriteString(c.out, s+"\n")
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
