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

// Package viewer is the runtime half of the cartridge: the scroll state
// machine and the frame renderer. It is driven by a simple poll loop,
//
//	read input -> Scroll.Handle() -> Renderer.Render() -> repeat
//
// which is what both the SDL preview and the headless runner do, and what
// the Z80 viewer on a real cartridge does.
//
// The renderer never reports errors. Anything that could go wrong at
// render time (a tile row outside the image, a read outside the bank
// window) is made unreachable by the scroll state machine's clamping and
// the cartridge layout's alignment invariant. A violation panics.
package viewer
