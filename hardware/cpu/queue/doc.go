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

// Package queue implements the prefetch queue of the Bus Interface Unit.
//
// The 8088 has a four byte queue and fetches one byte at a time. The 8086
// has a six byte queue and fetches a word at a time. The byte at the head of
// the queue can be moved into the preload slot, where it waits for the
// Execution Unit to begin the next instruction.
//
// The policy lengths are the queue lengths at which the BIU delays the start
// of a new code fetch.
//
// Overrunning or underrunning the queue is a programming error and causes a
// panic.
package queue
