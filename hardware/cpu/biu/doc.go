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

// Package biu contains the types that describe the state of the Bus
// Interface Unit of the 8088. The BIU itself is implemented in the cpu
// package because it shares so much state with the execution unit.
//
// Two cycle counters are of interest. The T-cycle is the state of the bus
// cycle proper (T1 to T4 with optional wait states Tw, and the idle state
// Ti). The Ta-cycle models the address phase that leads up to T1: a bus
// request is raised (Tr), scheduled (Ts), waits for the current bus cycle
// (T0), and is then ready to begin (Td) or aborted (Ta).
//
// The CycleState type records everything about a single cycle and is what
// the cycle trace is made of.
package biu
