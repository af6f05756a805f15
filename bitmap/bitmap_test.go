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

package bitmap_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/msxtools/sc2scroll/bitmap"
	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/screen2"
	"github.com/msxtools/sc2scroll/test"
)

func uniformRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPrepareExactWidth(t *testing.T) {
	white := screen2.Palette[14]
	src := uniformRGBA(screen2.Width, 10, white)

	dst, err := bitmap.Prepare(src, bitmap.Options{})
	test.ExpectedSuccess(t, err)

	// height rounded up to a whole number of tile rows
	test.Equate(t, dst.Bounds().Dx(), screen2.Width)
	test.Equate(t, dst.Bounds().Dy(), 16)

	// padding at the bottom, picture at the top
	test.Equate(t, dst.RGBAAt(0, 9) == white, true)
	test.Equate(t, dst.RGBAAt(0, 10) == color.RGBA{}, true)
}

func TestPrepareWidthErrors(t *testing.T) {
	_, err := bitmap.Prepare(uniformRGBA(300, 8, screen2.Palette[0]), bitmap.Options{})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, bitmap.WrongWidth))

	_, err = bitmap.Prepare(uniformRGBA(100, 8, screen2.Palette[0]), bitmap.Options{})
	test.ExpectedFailure(t, err)
}

func TestPrepareCrop(t *testing.T) {
	// a 300 wide image with a white band where the crop should land
	white := screen2.Palette[14]
	black := screen2.Palette[0]
	src := uniformRGBA(300, 8, black)
	for y := 0; y < 8; y++ {
		for x := 22; x < 278; x++ {
			src.SetRGBA(x, y, white)
		}
	}

	dst, err := bitmap.Prepare(src, bitmap.Options{Oversize: bitmap.OversizeCrop})
	test.ExpectedSuccess(t, err)
	test.Equate(t, dst.Bounds().Dx(), screen2.Width)
	test.Equate(t, dst.RGBAAt(0, 0) == white, true)
	test.Equate(t, dst.RGBAAt(screen2.Width-1, 0) == white, true)
}

func TestPrepareShrink(t *testing.T) {
	src := uniformRGBA(512, 64, screen2.Palette[5])

	dst, err := bitmap.Prepare(src, bitmap.Options{Oversize: bitmap.OversizeShrink})
	test.ExpectedSuccess(t, err)
	test.Equate(t, dst.Bounds().Dx(), screen2.Width)
	test.Equate(t, dst.Bounds().Dy(), 32)
}

func TestPreparePad(t *testing.T) {
	white := screen2.Palette[14]
	black := screen2.Palette[0]
	src := uniformRGBA(100, 8, white)

	dst, err := bitmap.Prepare(src, bitmap.Options{
		Background: black,
		Undersize:  bitmap.UndersizePad,
	})
	test.ExpectedSuccess(t, err)

	// centered: 78 columns of background either side
	test.Equate(t, dst.RGBAAt(0, 0) == black, true)
	test.Equate(t, dst.RGBAAt(78, 0) == white, true)
	test.Equate(t, dst.RGBAAt(177, 0) == white, true)
	test.Equate(t, dst.RGBAAt(178, 0) == black, true)
}

func TestConcatVertical(t *testing.T) {
	a := uniformRGBA(screen2.Width, 8, screen2.Palette[1])
	b := uniformRGBA(screen2.Width, 16, screen2.Palette[5])

	dst, err := bitmap.ConcatVertical([]*image.RGBA{a, b})
	test.ExpectedSuccess(t, err)
	test.Equate(t, dst.Bounds().Dy(), 24)
	test.Equate(t, dst.RGBAAt(0, 7) == screen2.Palette[1], true)
	test.Equate(t, dst.RGBAAt(0, 8) == screen2.Palette[5], true)

	_, err = bitmap.ConcatVertical(nil)
	test.ExpectedFailure(t, err)
}

func TestToScreen2(t *testing.T) {
	src := uniformRGBA(screen2.Width, 8, screen2.Palette[6])
	src.SetRGBA(3, 2, screen2.Palette[13])

	img := bitmap.ToScreen2(src)
	test.Equate(t, img.Height, 8)
	test.Equate(t, img.Pixel(0, 0), 6)
	test.Equate(t, img.Pixel(3, 2), 13)
}
