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
	"strings"

	"github.com/msxtools/sc2scroll/screen2"
)

// StartPosition says where the viewer places the scroll offset when an
// image is first shown.
type StartPosition int

// valid StartPosition values.
const (
	StartAtTop StartPosition = iota
	StartAtBottom
)

func (sp StartPosition) String() string {
	if sp == StartAtBottom {
		return "bottom"
	}
	return "top"
}

// Entry records where one image lives in the BlockStore. Read-only once the
// layout has been built.
type Entry struct {
	// number of tile rows (ie. blocks) in the image
	TileRows int

	// the bank and the offset within that bank of the image's first block
	BaseBank   int
	BaseOffset int

	// where the viewer starts when the image is selected
	StartAt StartPosition
}

// PixelRows in the image.
func (ent Entry) PixelRows() int {
	return ent.TileRows * screen2.TileHeight
}

func (ent Entry) String() string {
	return fmt.Sprintf("rows=%d bank=%d offset=%#04x start=%s",
		ent.TileRows, ent.BaseBank, ent.BaseOffset, ent.StartAt)
}

// Catalog is the per-image metadata for every image in a BlockStore, in
// layout order.
type Catalog []Entry

func (cat Catalog) String() string {
	s := strings.Builder{}
	for i, ent := range cat {
		s.WriteString(fmt.Sprintf("image #%d: %s\n", i, ent))
	}
	return s.String()
}
