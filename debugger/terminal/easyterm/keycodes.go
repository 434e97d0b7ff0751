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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3  // end-of-text character
	KeyEOF            = 4  // end-of-transmission character
	KeySuspend        = 26 // substitute character
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 8
	KeyDelete         = 127
)

// list of ASCII codes that can follow KeyEsc
const (
	EscCursor = '['
	EscSS3    = 'O'
)

// list of codes that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorEnd      = 'F'
	CursorHome     = 'H'
)

// Special identifies a key that has no printable character.
type Special int

// List of valid Special values.
const (
	NoSpecial Special = iota
	Up
	Down
	Left
	Right
	Home
	End
	Enter
	Escape
	Backspace
	Tab
	Interrupt
	Suspend
	EOF
	Unknown
)

var specialNames = [...]string{"", "Up", "Down", "Left", "Right", "Home", "End",
	"Enter", "Escape", "Backspace", "Tab", "Interrupt", "Suspend", "EOF", "Unknown"}

func (s Special) String() string {
	if s < NoSpecial || s > Unknown {
		return "Unknown"
	}
	return specialNames[s]
}

// Key is a single decoded keypress. Rune is zero if Special is not NoSpecial.
type Key struct {
	Rune    rune
	Special Special
}

func (k Key) String() string {
	if k.Special != NoSpecial {
		return k.Special.String()
	}
	return string(k.Rune)
}

// DecodeKey interprets the bytes read from a terminal in raw mode as a
// single keypress. Only the first key is decoded if more than one is
// present.
func DecodeKey(b []byte) Key {
	if len(b) == 0 {
		return Key{Special: Unknown}
	}

	switch b[0] {
	case KeyEsc:
		if len(b) == 1 {
			return Key{Special: Escape}
		}
		if len(b) >= 3 && (b[1] == EscCursor || b[1] == EscSS3) {
			switch b[2] {
			case CursorUp:
				return Key{Special: Up}
			case CursorDown:
				return Key{Special: Down}
			case CursorForward:
				return Key{Special: Right}
			case CursorBackward:
				return Key{Special: Left}
			case CursorHome:
				return Key{Special: Home}
			case CursorEnd:
				return Key{Special: End}
			}
		}
		return Key{Special: Unknown}
	case KeyCarriageReturn, KeyLineFeed:
		return Key{Special: Enter}
	case KeyBackspace, KeyDelete:
		return Key{Special: Backspace}
	case KeyTab:
		return Key{Special: Tab}
	case KeyInterrupt:
		return Key{Special: Interrupt}
	case KeySuspend:
		return Key{Special: Suspend}
	case KeyEOF:
		return Key{Special: EOF}
	}

	r := []rune(string(b))
	if len(r) == 0 || r[0] < ' ' {
		return Key{Special: Unknown}
	}
	return Key{Rune: r[0]}
}
