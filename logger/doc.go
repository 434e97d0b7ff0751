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

// Package logger is the central repository for log entries. Entries are
// added with Log() or Logf() and the log can be written to any io.Writer.
//
// Every logging call takes a Permission. Code running inside the emulation
// passes its own environment so that logging can be suppressed, for example
// when a test harness is running thousands of instructions a second. Code
// with no environment uses logger.Allow.
//
// The package level functions log to a single central logger. Packages that
// need a private log can create one with NewLogger().
package logger
