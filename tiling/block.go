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

// Package tiling converts palette-mapped bitmaps into display-ready tile
// blocks.
//
// A Block holds the display data for one tile row of one image: a pattern
// region followed by a color region. Within each region, tile t's byte for
// pixel line L is at offset t*8+L. This is the layout of the VDP's pattern
// generator and color tables and must not change: blocks are copied to
// video memory without rearrangement.
//
// The block is also the unit of placement in the banked cartridge store. A
// block is never split across a bank boundary. See the cartridge package.
package tiling

import "github.com/msxtools/sc2scroll/screen2"

// RegionSize is the size of the pattern region and of the color region of a
// Block.
const RegionSize = screen2.TileHeight * screen2.TileColumns

// BlockSize is the total size of a Block: pattern region plus color region.
const BlockSize = 2 * RegionSize

// Block is the display data for one tile row: 8 pixel lines of 32 tiles,
// pattern bytes then color bytes.
type Block [BlockSize]uint8

// pattern byte offset for a tile column and pixel line.
func patternOffset(tileCol, line int) int {
	return tileCol*screen2.TileHeight + line
}

// color byte offset for a tile column and pixel line.
func colorOffset(tileCol, line int) int {
	return RegionSize + tileCol*screen2.TileHeight + line
}

// SetStrip stores the pattern/color byte pair for a tile column and pixel
// line.
func (blk *Block) SetStrip(tileCol, line int, pattern, color uint8) {
	blk[patternOffset(tileCol, line)] = pattern
	blk[colorOffset(tileCol, line)] = color
}

// Strip returns the pattern/color byte pair for a tile column and pixel
// line.
func (blk *Block) Strip(tileCol, line int) (uint8, uint8) {
	return blk[patternOffset(tileCol, line)], blk[colorOffset(tileCol, line)]
}

// SubRow copies the sub-row record for a pixel line into the pattern and
// color slices, one byte per tile column. Both slices must be at least
// screen2.TileColumns long.
//
// The bytes of a sub-row are not adjacent in the block. They are strided by
// tile, which is why they are gathered rather than sliced.
func (blk *Block) SubRow(line int, pattern, color []uint8) {
	for t := 0; t < screen2.TileColumns; t++ {
		pattern[t] = blk[patternOffset(t, line)]
		color[t] = blk[colorOffset(t, line)]
	}
}
