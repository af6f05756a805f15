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

// Package bitmap turns PNG files into display mode images. It handles the
// geometry only: widening, cropping and padding to the fixed display
// width. Color reduction to the fixed palette is a straight
// nearest-entry lookup. Anything cleverer (quantization, dithering)
// belongs in an external tool.
package bitmap

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/screen2"
)

// Errors returned while loading and preparing images.
const (
	LoadError  = "bitmap: %v: %v"
	WrongWidth = "bitmap: image is %d pixels wide, want %d"
	NoImages   = "bitmap: no images to concatenate"
)

// Oversize says what to do with images wider than the display.
type Oversize int

// Shrinking preserves the aspect ratio. Cropping keeps the middle of the
// image.
const (
	OversizeError Oversize = iota
	OversizeShrink
	OversizeCrop
)

// Undersize says what to do with images narrower than the display.
type Undersize int

// Padding centers the image on the background color.
const (
	UndersizeError Undersize = iota
	UndersizePad
)

// Options for Prepare.
type Options struct {
	Background color.RGBA
	Oversize   Oversize
	Undersize  Undersize
}

// Load a PNG file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, curated.Errorf(LoadError, path, err)
	}
	return img, nil
}

// Prepare makes an image exactly the display width and a whole number of
// tile rows tall. Height padding always goes at the bottom so the top of
// the picture stays at scroll offset zero.
func Prepare(src image.Image, opts Options) (*image.RGBA, error) {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()

	if w > screen2.Width {
		switch opts.Oversize {
		case OversizeShrink:
			h = h * screen2.Width / w
			if h < 1 {
				h = 1
			}
			shrunk := image.NewRGBA(image.Rect(0, 0, screen2.Width, h))
			draw.CatmullRom.Scale(shrunk, shrunk.Bounds(), src, b, draw.Src, nil)
			src = shrunk
			b = shrunk.Bounds()
			w = screen2.Width

		case OversizeCrop:
			left := (w - screen2.Width) / 2
			b = image.Rect(b.Min.X+left, b.Min.Y, b.Min.X+left+screen2.Width, b.Max.Y)
			w = screen2.Width

		default:
			return nil, curated.Errorf(WrongWidth, w, screen2.Width)
		}
	}

	if w < screen2.Width && opts.Undersize != UndersizePad {
		return nil, curated.Errorf(WrongWidth, w, screen2.Width)
	}

	// round the height up to a whole number of tile rows
	ph := (h + screen2.TileHeight - 1) / screen2.TileHeight * screen2.TileHeight

	dst := image.NewRGBA(image.Rect(0, 0, screen2.Width, ph))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{opts.Background}, image.Point{}, draw.Src)

	// centered horizontally, top aligned vertically
	left := (screen2.Width - w) / 2
	draw.Draw(dst, image.Rect(left, 0, left+w, h), src, b.Min, draw.Src)

	return dst, nil
}

// ConcatVertical stacks prepared images into one tall image. Every input
// must already be the display width.
func ConcatVertical(images []*image.RGBA) (*image.RGBA, error) {
	if len(images) == 0 {
		return nil, curated.Errorf(NoImages)
	}

	th := 0
	for _, img := range images {
		if img.Bounds().Dx() != screen2.Width {
			return nil, curated.Errorf(WrongWidth, img.Bounds().Dx(), screen2.Width)
		}
		th += img.Bounds().Dy()
	}

	dst := image.NewRGBA(image.Rect(0, 0, screen2.Width, th))
	y := 0
	for _, img := range images {
		h := img.Bounds().Dy()
		draw.Draw(dst, image.Rect(0, y, screen2.Width, y+h), img, img.Bounds().Min, draw.Src)
		y += h
	}
	return dst, nil
}

// ToScreen2 maps every pixel to its nearest palette entry. The image must
// have been through Prepare.
func ToScreen2(src *image.RGBA) *screen2.Image {
	b := src.Bounds()
	img := screen2.NewImage(b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < screen2.Width; x++ {
			img.SetPixel(x, y, screen2.ClosestIndex(src.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return img
}
