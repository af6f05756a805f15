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

package cartridge

import (
	"fmt"

	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/logger"
	"github.com/msxtools/sc2scroll/tiling"
)

// CapacityExceeded is returned by Layout() when the images require more
// banks than the backing store can address.
const CapacityExceeded = "layout: %d banks required but the store has room for %d"

// Layout concatenates the block sequences of every image into a BlockStore
// with the standard ASCII16 geometry, and returns the catalog describing
// where each image landed.
func Layout(images [][]tiling.Block) (*BlockStore, Catalog, error) {
	return LayoutSized(images, BankSize, MaxBanks)
}

// LayoutSized is Layout with explicit store geometry. The bank size must be
// a multiple of the block size; anything else would force a block to
// straddle a bank boundary sooner or later, and a straddled block cannot be
// rendered.
func LayoutSized(images [][]tiling.Block, bankSize int, maxBanks int) (*BlockStore, Catalog, error) {
	if bankSize <= 0 || bankSize%tiling.BlockSize != 0 {
		panic(fmt.Sprintf("bank size %d is not a multiple of the block size %d", bankSize, tiling.BlockSize))
	}

	arena := make([]byte, 0, bankSize)
	cat := make(Catalog, 0, len(images))

	// the running byte cursor into the banked address space. always equal
	// to len(arena) except momentarily when padding is due
	cursor := 0

	// pad the arena with the fill byte up to the cursor
	pad := func() {
		for len(arena) < cursor {
			arena = append(arena, FillByte)
		}
	}

	for i, blocks := range images {
		// an image that does not fit in the remainder of the current bank
		// starts at the next bank boundary. its blocks stay contiguous
		// either way
		need := len(blocks) * tiling.BlockSize
		if rem := bankSize - cursor%bankSize; need > rem && rem != bankSize {
			cursor += rem
		}

		ent := Entry{
			TileRows:   len(blocks),
			BaseBank:   cursor / bankSize,
			BaseOffset: cursor % bankSize,
		}

		for b := range blocks {
			// no block may straddle a bank boundary
			if cursor/bankSize != (cursor+tiling.BlockSize-1)/bankSize {
				cursor += bankSize - cursor%bankSize
			}
			pad()
			arena = append(arena, blocks[b][:]...)
			cursor += tiling.BlockSize
		}

		logger.Logf("layout", "image #%d: %s", i, ent)
		cat = append(cat, ent)
	}

	// round the arena up to a whole number of banks
	numBanks := (cursor + bankSize - 1) / bankSize
	if numBanks > maxBanks {
		return nil, nil, curated.Errorf(CapacityExceeded, numBanks, maxBanks)
	}
	cursor = numBanks * bankSize
	pad()

	return NewBlockStore(arena, bankSize), cat, nil
}
