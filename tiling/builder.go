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

package tiling

import (
	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/screen2"
)

// error patterns returned by Build().
const (
	InvalidDimensions = "tiling: invalid dimensions: %v"
	BadStrip          = "tiling: tile row %d, column %d, line %d: %v"
)

// maximum number of tile rows in a single image. the cartridge catalog
// stores the row count in two bytes.
const MaxTileRows = 0xffff

// Build slices an image into one Block per tile row. The image height must
// be a non-zero multiple of the tile height; the image width is fixed by
// the screen2.Image type.
//
// Build is a pure function of the pixel data.
func Build(img *screen2.Image) ([]Block, error) {
	if img.Height <= 0 || img.Height%screen2.TileHeight != 0 {
		return nil, curated.Errorf(InvalidDimensions,
			curated.Errorf("height %d is not a multiple of %d", img.Height, screen2.TileHeight))
	}
	if len(img.Pixels) != screen2.Width*img.Height {
		return nil, curated.Errorf(InvalidDimensions,
			curated.Errorf("pixel data length %d does not match height %d", len(img.Pixels), img.Height))
	}
	if img.TileRows() > MaxTileRows {
		return nil, curated.Errorf(InvalidDimensions,
			curated.Errorf("%d tile rows does not fit the catalog", img.TileRows()))
	}

	blocks := make([]Block, img.TileRows())

	for r := 0; r < img.TileRows(); r++ {
		for line := 0; line < screen2.TileHeight; line++ {
			for c := 0; c < screen2.TileColumns; c++ {
				pattern, color, err := screen2.EncodeStrip(img.Strip(r, c, line))
				if err != nil {
					return nil, curated.Errorf(BadStrip, r, c, line, err)
				}
				blocks[r].SetStrip(c, line, pattern, color)
			}
		}
	}

	return blocks, nil
}
