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

package vdp

import (
	"fmt"

	"github.com/msxtools/sc2scroll/screen2"
)

// SCREEN 2 VRAM table addresses.
const (
	PatternBase = 0x0000
	NameBase    = 0x1800
	ColorBase   = 0x2000
)

// vramSize covers the three tables this project touches.
const vramSize = 0x3800

// bytes per tile row in the pattern and color tables.
const tileRowSize = screen2.TileColumns * screen2.TileHeight

// VRAM is the VDP's video memory with the fixed SCREEN 2 layout: pattern
// generator table at 0x0000, name table at 0x1800, color table at 0x2000.
//
// Within the pattern and color tables, tile t's byte for pixel line L of
// tile row r is at r*256 + t*8 + L.
type VRAM struct {
	data [vramSize]uint8
}

// NewVRAM returns VRAM with the name table initialised to the identity
// layout: each third of the screen names characters 0 to 255 in row-major
// order. With that arrangement the pattern and color tables read as a
// linear frame buffer and the viewer never touches the name table again.
func NewVRAM() *VRAM {
	v := &VRAM{}
	for i := 0; i < 3*256; i++ {
		v.data[NameBase+i] = uint8(i & 0xff)
	}
	return v
}

// WriteSubRow implements the VideoMemory interface.
func (v *VRAM) WriteSubRow(y int, pattern []uint8, color []uint8) {
	if y < 0 || y >= screen2.VisiblePixelRows {
		panic(fmt.Sprintf("sub-row write at row %d (visible rows 0 to %d)", y, screen2.VisiblePixelRows-1))
	}

	row := y / screen2.TileHeight
	line := y % screen2.TileHeight

	o := row*tileRowSize + line
	for t := 0; t < screen2.TileColumns; t++ {
		v.data[PatternBase+o] = pattern[t]
		v.data[ColorBase+o] = color[t]
		o += screen2.TileHeight
	}
}

// Poke writes a byte at a VRAM address. Used by tests.
func (v *VRAM) Poke(address int, value uint8) {
	v.data[address] = value
}

// Peek reads a byte at a VRAM address.
func (v *VRAM) Peek(address int) uint8 {
	return v.data[address]
}

// Pixel returns the palette code (0..15) shown at the screen coordinate.
func (v *VRAM) Pixel(x, y int) uint8 {
	row := y / screen2.TileHeight
	line := y % screen2.TileHeight
	t := x / screen2.TileWidth

	o := row*tileRowSize + t*screen2.TileHeight + line
	pattern := v.data[PatternBase+o]
	color := v.data[ColorBase+o]

	if pattern&(0x80>>(x%screen2.TileWidth)) != 0 {
		return color >> 4
	}
	return color & 0x0f
}

// PixelIndex is Pixel() translated to a palette index (0..14). Palette code
// 0 (transparent) reads as index 0 (black).
func (v *VRAM) PixelIndex(x, y int) uint8 {
	code := v.Pixel(x, y)
	if code == 0 {
		return 0
	}
	return code - 1
}

// Rasterize writes the visible frame as RGBA bytes into pix, which must be
// at least screen2.Width * screen2.VisiblePixelRows * 4 bytes.
func (v *VRAM) Rasterize(pix []byte) {
	i := 0
	for y := 0; y < screen2.VisiblePixelRows; y++ {
		for x := 0; x < screen2.Width; x++ {
			c := screen2.CodeColor(v.Pixel(x, y))
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
			i += 4
		}
	}
}
