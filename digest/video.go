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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/msxtools/sc2scroll/screen2"
)

// pattern byte followed by color byte for each column of a sub-row
const subRowSize = 2 * screen2.TileColumns

// Video implements the vdp.VideoMemory interface. It accumulates the
// sub-rows of a frame and on NewFrame() folds them into a SHA-1 value
// chained with the value of the previous frame, so the hash after N frames
// fingerprints the whole sequence and not just the last picture.
//
// The use of SHA-1 is fine for this application because this is not a
// cryptographic task.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is ready to use as a renderer target straight away.
func NewVideo() *Video {
	dig := &Video{}

	// room at the head of the frame data for the previous frame's digest
	dig.pixels = make([]byte, len(dig.digest)+screen2.VisiblePixelRows*subRowSize)

	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frames = 0
}

// Frames folded into the hash so far.
func (dig *Video) Frames() int {
	return dig.frames
}

// WriteSubRow implements the vdp.VideoMemory interface.
func (dig *Video) WriteSubRow(y int, pattern []uint8, color []uint8) {
	if y < 0 || y >= screen2.VisiblePixelRows {
		panic(fmt.Sprintf("sub-row write at row %d (visible rows 0 to %d)", y, screen2.VisiblePixelRows-1))
	}

	i := len(dig.digest) + y*subRowSize
	copy(dig.pixels[i:], pattern[:screen2.TileColumns])
	copy(dig.pixels[i+screen2.TileColumns:], color[:screen2.TileColumns])
}

// NewFrame folds the accumulated frame into the digest. Call once per
// rendered frame, after the frame's sub-rows have been written.
func (dig *Video) NewFrame() {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the frame data
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
