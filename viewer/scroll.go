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
)

// Policy says whether an image can be scrolled at all.
type Policy int

// The first image of a cartridge is the title card and is Pinned: it stays
// at offset 0 whatever the scroll events say. Every other image is Free.
// Keeping this as an explicit per-image tag means the rule lives here and
// nowhere else.
const (
	Free Policy = iota
	Pinned
)

// Scroll is the viewer's state machine: the current image and the pixel
// row aligned with the top of the screen. Nothing mutates the state except
// the methods of this type.
type Scroll struct {
	cat      cartridge.Catalog
	policies []Policy

	image  int
	offset int
}

// NewScroll for a catalog. Initial state is image 0 at its start position.
func NewScroll(cat cartridge.Catalog) *Scroll {
	if len(cat) == 0 {
		panic("scroll state over an empty catalog")
	}

	sc := &Scroll{
		cat:      cat,
		policies: make([]Policy, len(cat)),
	}
	for i := range sc.policies {
		sc.policies[i] = Free
	}
	sc.policies[0] = Pinned

	sc.SetImage(0)
	return sc
}

// Image currently selected.
func (sc *Scroll) Image() int {
	return sc.image
}

// Offset of the source pixel row at the top of the screen.
func (sc *Scroll) Offset() int {
	return sc.offset
}

// NumImages in the catalog.
func (sc *Scroll) NumImages() int {
	return len(sc.cat)
}

// Policy of the current image.
func (sc *Scroll) Policy() Policy {
	return sc.policies[sc.image]
}

func (sc *Scroll) String() string {
	return fmt.Sprintf("image %d offset %d", sc.image, sc.offset)
}

// maxOffset of the current image. Zero for images shorter than the screen.
func (sc *Scroll) maxOffset() int {
	m := sc.cat[sc.image].PixelRows() - screen2.VisiblePixelRows
	if m < 0 {
		m = 0
	}
	return m
}

// SetImage selects an image, clamping to the catalog, and resets the
// offset to the image's start position. Pinned images always start at the
// top.
func (sc *Scroll) SetImage(image int) {
	if image < 0 {
		image = 0
	}
	if image >= len(sc.cat) {
		image = len(sc.cat) - 1
	}
	sc.image = image

	if sc.policies[image] == Free && sc.cat[image].StartAt == cartridge.StartAtBottom {
		sc.offset = sc.maxOffset()
	} else {
		sc.offset = 0
	}
}

// Handle one input event.
func (sc *Scroll) Handle(ev Event) {
	switch ev {
	case NextImage:
		sc.SetImage(sc.image + 1)

	case PrevImage:
		sc.SetImage(sc.image - 1)

	case ScrollUp:
		if sc.policies[sc.image] == Pinned {
			return
		}
		if sc.offset > 0 {
			sc.offset--
		}

	case ScrollDown:
		if sc.policies[sc.image] == Pinned {
			return
		}
		if sc.offset < sc.maxOffset() {
			sc.offset++
		}
	}
}

// Clamp the offset to the valid range for the current image. Called after
// the offset has been set from outside knowledge (eg. a requested start
// row); the event handlers never need it.
func (sc *Scroll) Clamp() {
	if sc.policies[sc.image] == Pinned {
		sc.offset = 0
		return
	}
	if sc.offset < 0 {
		sc.offset = 0
	}
	if m := sc.maxOffset(); sc.offset > m {
		sc.offset = m
	}
}

// SetOffset requests a scroll position directly. The offset is clamped the
// same way a run of scroll events would be.
func (sc *Scroll) SetOffset(offset int) {
	sc.offset = offset
	sc.Clamp()
}
