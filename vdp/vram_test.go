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

package vdp_test

import (
	"testing"

	"github.com/msxtools/sc2scroll/screen2"
	"github.com/msxtools/sc2scroll/test"
	"github.com/msxtools/sc2scroll/vdp"
)

func TestNameTable(t *testing.T) {
	v := vdp.NewVRAM()

	// identity layout in all three thirds
	test.Equate(t, v.Peek(vdp.NameBase), 0)
	test.Equate(t, v.Peek(vdp.NameBase+255), 255)
	test.Equate(t, v.Peek(vdp.NameBase+256), 0)
	test.Equate(t, v.Peek(vdp.NameBase+2*256+32), 32)
}

func TestWriteSubRow(t *testing.T) {
	v := vdp.NewVRAM()

	pattern := make([]uint8, screen2.TileColumns)
	color := make([]uint8, screen2.TileColumns)
	for i := range pattern {
		pattern[i] = 0xf0
		color[i] = 0x51 // code 5 on code 1
	}

	// row 9 is tile row 1, line 1
	v.WriteSubRow(9, pattern, color)

	test.Equate(t, v.Peek(vdp.PatternBase+256+1), 0xf0)
	test.Equate(t, v.Peek(vdp.ColorBase+256+1), 0x51)

	// left 4 pixels of each tile show the foreground, right 4 the
	// background
	test.Equate(t, v.Pixel(0, 9), 5)
	test.Equate(t, v.Pixel(3, 9), 5)
	test.Equate(t, v.Pixel(4, 9), 1)
	test.Equate(t, v.Pixel(255, 9), 1)

	// neighbouring lines untouched
	test.Equate(t, v.Peek(vdp.PatternBase+256), 0)
	test.Equate(t, v.Peek(vdp.PatternBase+256+2), 0)
}
