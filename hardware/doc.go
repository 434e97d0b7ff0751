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

// Package hardware is the base package for the 8088 machine emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the sub-components.
//
//	    Machine
//	       |
//	       +-- CPU ---- bus ---- Memory ---- RAM, ROM, devices
//	       |              \
//	       |               \---- IO ports
//	       |
//	       +-- InterruptLatch (INTR and NMI)
//
// The Run() function runs the CPU as quickly as possible, checking with the
// continue check function after every instruction. The Step() and
// StepCycle() functions run a single instruction or cycle and record the
// state of the machine so that the step can be undone with Rewind().
package hardware
