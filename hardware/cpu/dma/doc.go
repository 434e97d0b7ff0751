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

// Package dma simulates the DRAM refresh DMA cycle of the IBM PC. Channel 0
// of the 8237 is triggered by channel 1 of the 8253 timer at a fixed period.
// Each refresh cycle takes the bus away from the CPU for a short time and
// the effect of that on CPU timing is what the Scheduler models.
//
// The Scheduler is ticked once per CPU cycle. It is told about the state of
// the CPU bus through the Bus type and it returns the number of wait states
// that the CPU must insert.
package dma
