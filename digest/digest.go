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

// Package digest produces a cryptographic hash of rendered frames. The
// hash can be compared against a previously recorded value: if it differs
// then the renderer's output has changed. The headless viewer and the
// package tests use this instead of a display.
package digest

// Digest implementations return a cryptographic hash of everything fed to
// them since the last reset.
type Digest interface {
	Hash() string
	ResetDigest()
}
