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

package viewer_test

import (
	"testing"

	"github.com/msxtools/sc2scroll/cartridge"
	"github.com/msxtools/sc2scroll/test"
	"github.com/msxtools/sc2scroll/viewer"
)

// a catalog of images with the given tile row counts. placement fields are
// irrelevant to scroll state and left at zero.
func testCatalog(tileRows ...int) cartridge.Catalog {
	cat := make(cartridge.Catalog, len(tileRows))
	for i, r := range tileRows {
		cat[i] = cartridge.Entry{TileRows: r}
	}
	return cat
}

func TestScrollClamping(t *testing.T) {
	// image 1 is 27 tile rows (216px) so the scrollable range is 0 to 24
	sc := viewer.NewScroll(testCatalog(24, 27))
	sc.SetImage(1)

	// a long, uneven event sequence. whatever the order, the offset must
	// stay inside the valid range
	events := []viewer.Event{}
	for i := 0; i < 40; i++ {
		events = append(events, viewer.ScrollDown)
	}
	for i := 0; i < 5; i++ {
		events = append(events, viewer.ScrollUp)
	}
	for i := 0; i < 60; i++ {
		events = append(events, viewer.ScrollDown, viewer.ScrollDown, viewer.ScrollUp)
	}

	for _, ev := range events {
		sc.Handle(ev)
		if sc.Offset() < 0 || sc.Offset() > 24 {
			t.Fatalf("offset %d outside [0, 24] after %v", sc.Offset(), ev)
		}
	}

	// the trailing triple is down-down-up against the upper clamp, so the
	// sequence settles one short of it
	test.Equate(t, sc.Offset(), 23)
}

func TestScrollShortImage(t *testing.T) {
	// an image shorter than the screen never scrolls
	sc := viewer.NewScroll(testCatalog(24, 5))
	sc.SetImage(1)

	for i := 0; i < 10; i++ {
		sc.Handle(viewer.ScrollDown)
	}
	test.Equate(t, sc.Offset(), 0)
}

func TestPinnedFirstImage(t *testing.T) {
	// image 0 is pinned even when it is tall enough to scroll
	sc := viewer.NewScroll(testCatalog(30, 30))

	test.Equate(t, int(sc.Policy()), int(viewer.Pinned))

	for i := 0; i < 100; i++ {
		sc.Handle(viewer.ScrollDown)
	}
	test.Equate(t, sc.Offset(), 0)

	sc.SetOffset(17)
	test.Equate(t, sc.Offset(), 0)

	// the same image shape at index 1 scrolls freely
	sc.SetImage(1)
	test.Equate(t, int(sc.Policy()), int(viewer.Free))
	sc.Handle(viewer.ScrollDown)
	test.Equate(t, sc.Offset(), 1)
}

func TestImageSelectionClamping(t *testing.T) {
	sc := viewer.NewScroll(testCatalog(24, 24, 24))

	sc.Handle(viewer.PrevImage)
	test.Equate(t, sc.Image(), 0)

	sc.Handle(viewer.NextImage)
	sc.Handle(viewer.NextImage)
	sc.Handle(viewer.NextImage)
	sc.Handle(viewer.NextImage)
	test.Equate(t, sc.Image(), 2)
}

func TestImageChangeResetsOffset(t *testing.T) {
	sc := viewer.NewScroll(testCatalog(24, 27, 27))
	sc.SetImage(1)
	sc.SetOffset(20)
	test.Equate(t, sc.Offset(), 20)

	sc.Handle(viewer.NextImage)
	test.Equate(t, sc.Image(), 2)
	test.Equate(t, sc.Offset(), 0)
}

func TestStartAtBottom(t *testing.T) {
	cat := testCatalog(24, 27)
	cat[1].StartAt = cartridge.StartAtBottom

	sc := viewer.NewScroll(cat)
	sc.SetImage(1)
	test.Equate(t, sc.Offset(), 24)
}

// a requested offset of 33 against a scrollable range of 24 must land on
// 24, not wrap or error.
func TestSetOffsetClamp(t *testing.T) {
	sc := viewer.NewScroll(testCatalog(24, 27))
	sc.SetImage(1)

	sc.SetOffset(33)
	test.Equate(t, sc.Offset(), 24)

	sc.SetOffset(-3)
	test.Equate(t, sc.Offset(), 0)
}
