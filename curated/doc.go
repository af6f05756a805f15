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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function:
//
//	e := curated.Errorf("layout: too many banks (%d)", n)
//
// The pattern string doubles as the error's identity. The Is() function
// checks whether an error was created with a specific pattern:
//
//	if curated.Is(e, "layout: too many banks (%d)") {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain. IsAny() says whether the error is curated at
// all, which for this project distinguishes expected build errors from
// unexpected ones.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts, so errors can be wrapped freely at every return site
// without the final message stuttering.
//
// Sentinel patterns are stored as const strings in the package that returns
// them. For example, cartridge.CapacityExceeded.
package curated
