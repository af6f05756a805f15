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

// Package screen2 describes the fixed geometry and color rules of the MSX1
// VDP in SCREEN 2 (the "Graphic 2" mode of the TMS9918).
//
// The display is a grid of 8x8 pixel tiles, 32 tiles across and 24 tile
// rows down. Each pixel line of each tile is described by two bytes: a
// pattern byte (one bit per pixel) and a color byte (foreground color code
// in the high nibble, background in the low nibble). A pixel line can
// therefore show at most two colors. Palette codes run from 1 to 15; code 0
// is transparent and is never produced by this package.
//
// Pixel values throughout the package are palette indices in the range
// 0..14, ie. palette code minus one. This matches how the external
// quantizer delivers its output.
package screen2

// Fixed geometry of SCREEN 2. The display width is not negotiable: the
// whole project assumes images are exactly TileColumns tiles wide.
const (
	TileWidth   = 8
	TileHeight  = 8
	TileColumns = 32

	// Width of the display and of every source image, in pixels.
	Width = TileColumns * TileWidth

	// the number of tile rows and pixel rows visible at once
	VisibleTileRows  = 24
	VisiblePixelRows = VisibleTileRows * TileHeight
)

// NumPaletteEntries is the number of usable colors. Palette code 0
// (transparent) is excluded.
const NumPaletteEntries = 15

// Image is a palette-mapped bitmap, Width pixels wide. Pixel values are
// palette indices (0..14), stored row-major.
type Image struct {
	Height int
	Pixels []uint8
}

// NewImage allocates an Image of the specified height. The height does not
// need to be a multiple of TileHeight at this point; the tiling stage
// enforces that.
func NewImage(height int) *Image {
	return &Image{
		Height: height,
		Pixels: make([]uint8, Width*height),
	}
}

// TileRows the image occupies. Meaningless if the height is not a multiple
// of TileHeight.
func (img *Image) TileRows() int {
	return img.Height / TileHeight
}

// Pixel returns the palette index at the coordinate.
func (img *Image) Pixel(x, y int) uint8 {
	return img.Pixels[y*Width+x]
}

// SetPixel sets the palette index at the coordinate.
func (img *Image) SetPixel(x, y int, idx uint8) {
	img.Pixels[y*Width+x] = idx
}

// Strip returns the 8x1 pixel strip for the tile coordinate and pixel line.
// The returned slice aliases the image data.
func (img *Image) Strip(tileRow, tileCol, line int) []uint8 {
	o := (tileRow*TileHeight+line)*Width + tileCol*TileWidth
	return img.Pixels[o : o+TileWidth]
}
