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

package viewer

import (
	"fmt"

	"github.com/msxtools/sc2scroll/cartridge"
	"github.com/msxtools/sc2scroll/screen2"
	"github.com/msxtools/sc2scroll/tiling"
	"github.com/msxtools/sc2scroll/vdp"
)

// Renderer paints the visible window from the banked store. It owns the
// bank window (ie. the page register) for the duration of the program:
// nothing else touches it.
type Renderer struct {
	cat cartridge.Catalog
	wdw *cartridge.Window
	mem vdp.VideoMemory

	// sub-row gather buffers, reused every row
	pattern [screen2.TileColumns]uint8
	color   [screen2.TileColumns]uint8
}

// NewRenderer over a store and catalog, writing to the video memory.
func NewRenderer(store *cartridge.BlockStore, cat cartridge.Catalog, mem vdp.VideoMemory) *Renderer {
	return &Renderer{
		cat: cat,
		wdw: store.NewWindow(),
		mem: mem,
	}
}

// Render one frame: the visible_px consecutive source pixel rows starting
// at the scroll offset. Rows are written in increasing order; the bank
// window is switched at most once per row, and only when the row's block
// lives in a different bank than the previous one.
func (rnd *Renderer) Render(sc *Scroll) {
	rnd.RenderAt(sc.Image(), sc.Offset())
}

// RenderAt is Render with an explicit image and offset. The offset must
// already be clamped: a tile row outside the image is a contract violation
// and panics. Images shorter than the screen are drawn at the top with the
// remaining rows blanked.
func (rnd *Renderer) RenderAt(image int, offset int) {
	ent := rnd.cat[image]
	bankSize := rnd.wdw.BankSize()

	rows := screen2.VisiblePixelRows
	if pr := ent.PixelRows() - offset; pr < rows {
		rows = pr
	}

	for y := 0; y < rows; y++ {
		absRow := offset + y
		tileRow := absRow / screen2.TileHeight
		line := absRow % screen2.TileHeight

		if tileRow < 0 || tileRow >= ent.TileRows {
			panic(fmt.Sprintf("tile row %d rendered for an image of %d rows", tileRow, ent.TileRows))
		}

		// the block's absolute position in the store, split into the bank
		// and the offset inside the window
		addr := ent.BaseBank*bankSize + ent.BaseOffset + tileRow*tiling.BlockSize
		bank := addr / bankSize
		blockOffset := addr % bankSize

		// the page register write must land before the reads for this row
		if bank != rnd.wdw.Bank() {
			rnd.wdw.Select(bank)
		}

		for t := 0; t < screen2.TileColumns; t++ {
			o := blockOffset + t*screen2.TileHeight + line
			rnd.pattern[t] = rnd.wdw.Read(o)
			rnd.color[t] = rnd.wdw.Read(o + tiling.RegionSize)
		}

		rnd.mem.WriteSubRow(y, rnd.pattern[:], rnd.color[:])
	}

	// transparent sub-rows below a short image
	if rows < screen2.VisiblePixelRows {
		for t := range rnd.pattern {
			rnd.pattern[t] = 0
			rnd.color[t] = 0
		}
		for y := rows; y < screen2.VisiblePixelRows; y++ {
			rnd.mem.WriteSubRow(y, rnd.pattern[:], rnd.color[:])
		}
	}
}
