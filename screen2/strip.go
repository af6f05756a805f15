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

import "github.com/msxtools/sc2scroll/curated"

// TwoColorRule is returned by EncodeStrip when a strip uses more than two
// palette indices. The quantizer is responsible for never letting this
// happen; hitting it means the input was not properly quantized.
const TwoColorRule = "screen2: more than two colors in 8 pixel strip: %v"

// EncodeStrip converts an 8x1 strip of palette indices into a pattern byte
// and a color byte. The higher palette index becomes the foreground, the
// lower the background. The leftmost pixel is the most significant pattern
// bit.
func EncodeStrip(strip []uint8) (uint8, uint8, error) {
	min := strip[0]
	max := strip[0]
	for _, idx := range strip[1:] {
		if idx < min {
			min = idx
		}
		if idx > max {
			max = idx
		}
	}

	var pattern uint8
	for _, idx := range strip {
		pattern <<= 1
		if idx == max {
			pattern |= 0x01
		} else if idx != min {
			return 0, 0, curated.Errorf(TwoColorRule, strip)
		}
	}

	// palette codes are index+1. a single color strip encodes with
	// foreground and background set to the same code and all pattern bits
	// set
	color := (max+1)<<4 | (min + 1)

	return pattern, color, nil
}

// DecodeStrip is the inverse of EncodeStrip. It writes the 8 palette
// indices described by the pattern/color byte pair into strip.
func DecodeStrip(pattern, color uint8, strip []uint8) {
	fg := color >> 4
	bg := color & 0x0f

	// codes back to indices. code 0 never appears in encoder output but
	// guard against underflow anyway
	if fg > 0 {
		fg--
	}
	if bg > 0 {
		bg--
	}

	for i := 0; i < TileWidth; i++ {
		if pattern&(0x80>>i) != 0 {
			strip[i] = fg
		} else {
			strip[i] = bg
		}
	}
}
