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

package screen2_test

import (
	"testing"

	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/screen2"
	"github.com/msxtools/sc2scroll/test"
)

func TestEncodeStrip(t *testing.T) {
	// two colors. index 4 (code 5) on index 1 (code 2)
	strip := []uint8{4, 1, 1, 4, 4, 4, 1, 1}
	pattern, color, err := screen2.EncodeStrip(strip)
	test.ExpectedSuccess(t, err)
	test.Equate(t, pattern, 0x9c)
	test.Equate(t, color, 0x52)

	// single color strip. all pattern bits set, fg == bg
	strip = []uint8{7, 7, 7, 7, 7, 7, 7, 7}
	pattern, color, err = screen2.EncodeStrip(strip)
	test.ExpectedSuccess(t, err)
	test.Equate(t, pattern, 0xff)
	test.Equate(t, color, 0x88)
}

func TestEncodeStripTooManyColors(t *testing.T) {
	strip := []uint8{0, 1, 2, 0, 0, 0, 0, 0}
	_, _, err := screen2.EncodeStrip(strip)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, screen2.TwoColorRule))
}

func TestStripRoundTrip(t *testing.T) {
	strips := [][]uint8{
		{4, 1, 1, 4, 4, 4, 1, 1},
		{0, 14, 0, 14, 0, 14, 0, 14},
		{3, 3, 3, 3, 3, 3, 3, 3},
		{0, 0, 0, 0, 0, 0, 0, 1},
	}

	decoded := make([]uint8, screen2.TileWidth)
	for _, strip := range strips {
		pattern, color, err := screen2.EncodeStrip(strip)
		test.ExpectedSuccess(t, err)

		screen2.DecodeStrip(pattern, color, decoded)
		for i := range strip {
			test.Equate(t, int(decoded[i]), int(strip[i]))
		}
	}
}

func TestClosestIndex(t *testing.T) {
	// exact palette entries map to themselves
	for i, c := range screen2.Palette {
		test.Equate(t, int(screen2.ClosestIndex(c)), i)
	}
}
