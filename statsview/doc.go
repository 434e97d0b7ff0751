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

// Package statsview offers a local HTTP server showing runtime statistics of
// the emulator process. The server is only compiled in when the statsview
// build tag is present:
//
//	go build -tags statsview .
//
// Without the tag, Available() returns false and Launch() writes a short
// message saying so.
//
// When launched, graphical statistics are viewable at:
//
//	localhost:18088/debug/statsview
//
// And standard pprof statistics at:
//
//	localhost:18088/debug/pprof/
package statsview
