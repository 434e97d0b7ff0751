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

// Package curated wraps the plain Go error type. Curated errors are created
// with Errorf(), which takes a formatting pattern and placeholder values in
// the same way as fmt.Errorf().
//
// The pattern differentiates curated errors. Is() checks whether an error was
// created with a given pattern:
//
//	e := curated.Errorf("cpu: halted at %04x:%04x", cs, ip)
//
//	if curated.Is(e, "cpu: halted at %04x:%04x") {
//		fmt.Println("true")
//	}
//
// Has() is similar but searches the whole chain of curated errors, formed by
// using a curated error as a placeholder value:
//
//	f := curated.Errorf("step: %v", e)
//
//	curated.Has(f, "cpu: halted at %04x:%04x") // true
//	curated.Is(f, "cpu: halted at %04x:%04x")  // false
//
// IsAny() answers whether the error was created by Errorf() at all. We think
// of the difference as being 'expected' and 'unexpected' errors.
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts are removed. Parts are separated by the sub-string ": ", so
// wrapping "cpu: halted" in "cpu: %v" prints as "cpu: halted" and not "cpu:
// cpu: halted".
//
// Curated errors also implement Unwrap() so that the errors.Is() and
// errors.As() functions of the standard library see through them.
package curated
