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

// Package paths contains functions to prepare paths for Gopher8088 resources.
//
// The ResourcePath() function returns the correct path to the resource
// directory or file specified in the arguments. It handles the creation of
// directories as required.
//
// Development builds place resources in a directory in the current working
// directory. Builds with the release tag place resources in the user's
// configuration directory.
package paths
