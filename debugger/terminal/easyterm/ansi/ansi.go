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

// Package ansi defines the ANSI control sequences used to colour the output
// of the stepper and the log.
package ansi

import (
	"fmt"
	"strings"
)

var colours = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

var attributes = map[string]int{
	"BOLD":      1,
	"DIM":       2,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
}

// ColorBuild creates the SGR sequence for the pen and paper colours and the
// attribute. Any of the strings may be empty.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var params []string

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		if brightPen {
			c += 90
		} else {
			c += 30
		}
		params = append(params, fmt.Sprint(c))
	}

	if paper != "" {
		c, ok := colours[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown paper (%s)", paper)
		}
		if brightPaper {
			c += 100
		} else {
			c += 40
		}
		params = append(params, fmt.Sprint(c))
	}

	if attribute != "" && strings.ToUpper(attribute) != "NORMAL" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		params = append(params, fmt.Sprint(a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(params, ";")), nil
}

func mustBuild(pen, paper, attribute string, bright bool) string {
	s, err := ColorBuild(pen, paper, attribute, bright, false)
	if err != nil {
		panic(err)
	}
	return s
}

// Pens are bright colours for text.
var Pens = map[string]string{}

// DimPens are the normal intensity colours for text.
var DimPens = map[string]string{}

// PenStyles are attributes for text.
var PenStyles = map[string]string{
	"bold":      mustBuild("", "", "bold", false),
	"underline": mustBuild("", "", "underline", false),
	"inverse":   mustBuild("", "", "inverse", false),
}

// NormalPen resets all colours and attributes.
var NormalPen = mustBuild("", "", "", false)

func init() {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c] = mustBuild(c, "normal", "", true)
		DimPens[c] = mustBuild(c, "normal", "", false)
	}
}

// Control sequences for cursor and screen manipulation.
const (
	ClearLine     = "\033[2K"
	ClearScreen   = "\033[2J"
	CursorHome    = "\033[H"
	CursorStore   = "\033[s"
	CursorRestore = "\033[u"
	CursorHide    = "\033[?25l"
	CursorShow    = "\033[?25h"
)

// CursorMove is the sequence to move the cursor n characters forward
// (positive numbers) or backward (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

// CursorPosition is the sequence to move the cursor to the row and column.
// Both values count from one.
func CursorPosition(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}
