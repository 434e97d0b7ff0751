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

package test

import (
	"fmt"
	"strings"
)

// RingWriter is an implementation of io.Writer that keeps only the most
// recent bytes written to it. Used to capture the tail of a cycle trace.
type RingWriter struct {
	buffer  []byte
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{buffer: make([]byte, size)}, nil
}

func (r *RingWriter) String() string {
	if r.wrapped {
		var s strings.Builder
		s.Write(r.buffer[r.cursor:])
		s.Write(r.buffer[:r.cursor])
		return s.String()
	}
	return string(r.buffer[:r.cursor])
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.wrapped = false
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	n := len(p)
	size := len(r.buffer)

	// only the tail of an oversized write can survive
	if n >= size {
		copy(r.buffer, p[n-size:])
		r.cursor = 0
		r.wrapped = true
		return n, nil
	}

	c := copy(r.buffer[r.cursor:], p)
	if c < n {
		copy(r.buffer, p[c:])
		r.wrapped = true
	}
	r.cursor = (r.cursor + n) % size
	if r.cursor == 0 && n > 0 {
		r.wrapped = true
	}

	return n, nil
}

// CappedWriter is an implementation of io.Writer that stops buffering once a
// predefined size is reached. Used to capture the head of a cycle trace.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (r *CappedWriter) String() string {
	return string(r.buffer)
}

// Reset empties the buffer.
func (r *CappedWriter) Reset() {
	r.buffer = r.buffer[:0]
}

// Write implements the io.Writer interface. Writes beyond the cap are
// discarded but still reported as written so that callers do not treat the
// writer as broken.
func (r *CappedWriter) Write(p []byte) (int, error) {
	remaining := r.size - len(r.buffer)
	if remaining > len(p) {
		remaining = len(p)
	}
	r.buffer = append(r.buffer, p[:remaining]...)
	return len(p), nil
}

// CompareWriter is an implementation of io.Writer that buffers everything
// written to it for comparison with an expected string.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (c *CompareWriter) Write(p []byte) (int, error) {
	c.buffer = append(c.buffer, p...)
	return len(p), nil
}

// Reset empties the buffer.
func (c *CompareWriter) Reset() {
	c.buffer = c.buffer[:0]
}

// Compare buffered output with the expected string.
func (c *CompareWriter) Compare(s string) bool {
	return s == string(c.buffer)
}

func (c *CompareWriter) String() string {
	return string(c.buffer)
}
