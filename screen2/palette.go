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

package screen2

import "image/color"

// Palette is the MSX1 palette. Entry i corresponds to palette code i+1.
// Code 0 (transparent) has no entry.
var Palette = [NumPaletteEntries]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // black
	{R: 0x3e, G: 0xb8, B: 0x49, A: 0xff}, // medium green
	{R: 0x74, G: 0xd0, B: 0x7d, A: 0xff}, // light green
	{R: 0x59, G: 0x55, B: 0xe0, A: 0xff}, // dark blue
	{R: 0x80, G: 0x76, B: 0xf1, A: 0xff}, // light blue
	{R: 0xb9, G: 0x5e, B: 0x51, A: 0xff}, // dark red
	{R: 0x65, G: 0xdb, B: 0xef, A: 0xff}, // cyan
	{R: 0xdb, G: 0x65, B: 0x59, A: 0xff}, // medium red
	{R: 0xff, G: 0x89, B: 0x7d, A: 0xff}, // light red
	{R: 0xcc, G: 0xc3, B: 0x5e, A: 0xff}, // dark yellow
	{R: 0xde, G: 0xd0, B: 0x87, A: 0xff}, // light yellow
	{R: 0x3a, G: 0xa2, B: 0x41, A: 0xff}, // dark green
	{R: 0xb7, G: 0x66, B: 0xb5, A: 0xff}, // magenta
	{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}, // gray
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white
}

// ClosestIndex returns the palette index (0..14) nearest to the color, by
// squared distance in RGB space.
func ClosestIndex(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	cr := int(r >> 8)
	cg := int(g >> 8)
	cb := int(b >> 8)

	best := 0
	bestDist := -1
	for i, p := range Palette {
		dr := cr - int(p.R)
		dg := cg - int(p.G)
		db := cb - int(p.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	return uint8(best)
}

// CodeColor returns the RGBA value for a palette code (1..15). Code 0 is
// drawn as black, which is what most televisions show for transparent.
func CodeColor(code uint8) color.RGBA {
	if code == 0 || code > NumPaletteEntries {
		return Palette[0]
	}
	return Palette[code-1]
}
