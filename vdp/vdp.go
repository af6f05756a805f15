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

// Package vdp models the display side of the MSX1 VDP in SCREEN 2, as seen
// by the frame renderer: a video memory accepting sub-row writes. The
// package also provides VRAM, a concrete implementation with the real
// SCREEN 2 table layout and RGBA rasterisation for the preview window and
// for frame digests.
package vdp

// VideoMemory is the renderer's only way of putting pixels on screen. One
// call writes one output pixel row: a pattern byte and a color byte per
// tile column.
type VideoMemory interface {
	WriteSubRow(y int, pattern []uint8, color []uint8)
}
