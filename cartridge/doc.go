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

// Package cartridge lays tile blocks out across the banked address space of
// an ASCII16 MegaROM and assembles the final cartridge image.
//
// The backing store is a flat byte arena addressed through a bank window:
// only one bank is visible at a time and a page register selects which.
// TileBlocks are placed back to back by Layout(), which maintains two
// invariants:
//
//   - no block ever straddles a bank boundary. the block is the unit that
//     is bank-switched as a whole during rendering
//   - an image's blocks are contiguous, so a block's address is always
//     base_bank*bank_size + base_offset + tile_row*block_size
//
// An image that does not fit in the remainder of the current bank is moved
// up to the next bank boundary. The gap is filled with FillByte. Filler is
// never addressed by a valid scroll position but it is visible in raw dumps
// of the ROM, which is why the fill value is fixed and documented here
// rather than left to chance.
//
// The catalog produced alongside the store is the only way the runtime
// locates image data. Consumers never address the store by raw file offset.
package cartridge
