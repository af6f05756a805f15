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

	"github.com/msxtools/sc2scroll/test"
	"github.com/msxtools/sc2scroll/viewer"
)

func TestAutoAdvanceWraps(t *testing.T) {
	sc := viewer.NewScroll(testCatalog(24, 24, 24))

	// advance level 8 changes image every frame
	aut := viewer.NewAutoPilot(sc, 8, 0)

	for _, want := range []int{1, 2, 0, 1} {
		test.Equate(t, aut.Frame(), true)
		test.Equate(t, sc.Image(), want)
	}
}

func TestAutoAdvanceInterval(t *testing.T) {
	sc := viewer.NewScroll(testCatalog(24, 24))

	// advance level 7 changes image every 60 frames
	aut := viewer.NewAutoPilot(sc, 7, 0)

	for i := 0; i < 59; i++ {
		test.Equate(t, aut.Frame(), false)
	}
	test.Equate(t, sc.Image(), 0)

	test.Equate(t, aut.Frame(), true)
	test.Equate(t, sc.Image(), 1)
}

func TestAutoScrollBounce(t *testing.T) {
	// image 1 scrolls over a range of 0 to 24
	sc := viewer.NewScroll(testCatalog(24, 27))
	sc.SetImage(1)

	// scroll level 9: one pixel row per frame, 30 frames at an edge
	aut := viewer.NewAutoPilot(sc, 0, 9)

	// down one row per frame until the bottom edge
	for i := 1; i <= 24; i++ {
		aut.Frame()
		test.Equate(t, sc.Offset(), i)
	}

	// lingering at the edge
	for i := 0; i < 30; i++ {
		aut.Frame()
		test.Equate(t, sc.Offset(), 24)
	}

	// back up again, all the way to the top
	aut.Frame()
	test.Equate(t, sc.Offset(), 23)
	for i := 0; i < 23; i++ {
		aut.Frame()
	}
	test.Equate(t, sc.Offset(), 0)
}

func TestAutoScrollEdgeAdvance(t *testing.T) {
	sc := viewer.NewScroll(testCatalog(24, 27, 27))
	sc.SetImage(1)

	aut := viewer.NewAutoPilot(sc, 0, 9)
	aut.EdgeAdvance = true

	// scroll to the bottom, wait out the edge pause, then the pilot moves
	// to the next image instead of turning around
	for i := 0; i < 24+30; i++ {
		aut.Frame()
	}
	test.Equate(t, sc.Image(), 2)
	test.Equate(t, sc.Offset(), 0)
}

func TestAutoScrollPinned(t *testing.T) {
	// image 0 is tall enough to scroll but pinned
	sc := viewer.NewScroll(testCatalog(30, 30))

	aut := viewer.NewAutoPilot(sc, 0, 9)
	for i := 0; i < 100; i++ {
		test.Equate(t, aut.Frame(), false)
	}
	test.Equate(t, sc.Offset(), 0)
}

func TestAutoDisabled(t *testing.T) {
	sc := viewer.NewScroll(testCatalog(24, 27))
	sc.SetImage(1)

	aut := viewer.NewAutoPilot(sc, 0, 0)
	for i := 0; i < 1000; i++ {
		test.Equate(t, aut.Frame(), false)
	}
	test.Equate(t, sc.Image(), 1)
	test.Equate(t, sc.Offset(), 0)
}
