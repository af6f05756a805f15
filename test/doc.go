// This file is part of SC2Scroll.
//
// SC2Scroll is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SC2Scroll is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SC2Scroll.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles a handful of functions useful in conjunction with the
// standard go test harness.
//
// The two "Expected" functions test the argument for a success or failure
// condition suitable for its type. For errors that means nil or non-nil.
// Note that a nil argument is interpreted as a success, because of how Go
// errors work, and so causes ExpectedFailure to fail.
//
// The Equate() function compares like-typed variables for equality. Some
// types (eg. uint16) can be compared against int literals for convenience.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture and compare output.
package test
