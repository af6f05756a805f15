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

// AutoAdvanceIntervals is the frame count between automatic image changes,
// indexed by advance level. Level 0 disables automatic advancing.
var AutoAdvanceIntervals = []int{
	0,
	180 * 60,
	60 * 60,
	30 * 60,
	10 * 60,
	5 * 60,
	3 * 60,
	1 * 60,
	1,
}

// AutoScrollIntervals is the frame count between automatic scroll steps,
// indexed by scroll level. Level 0 disables automatic scrolling.
var AutoScrollIntervals = []int{
	0,
	30,
	26,
	22,
	18,
	14,
	10,
	6,
	2,
	1,
}

// AutoScrollEdgeWait is how many frames the auto pilot lingers at the top
// or bottom of an image before turning around (or advancing), indexed by
// scroll level.
var AutoScrollEdgeWait = []int{
	0,
	300,
	266,
	232,
	198,
	164,
	130,
	96,
	60,
	30,
}

// AutoPilot drives a Scroll without user input. A frame based state
// machine: every call to Frame() is one video frame.
//
// Two independent timers run at once. The advance timer changes to the
// next image at a fixed interval, wrapping at the end of the catalog. The
// scroll timer moves the offset one pixel row at a time, bouncing between
// the top and bottom edges with a configurable pause at each end. When
// EdgeAdvance is set, reaching the bottom edge advances to the next image
// instead of turning around.
//
// Pinned images can still be advanced past but are never scrolled.
type AutoPilot struct {
	sc *Scroll

	// levels index the interval tables. Zero disables the timer.
	advanceLevel int
	scrollLevel  int

	// EdgeAdvance moves on to the next image when the bottom of the
	// current one has been reached, rather than scrolling back up.
	EdgeAdvance bool

	advanceCtr int
	scrollCtr  int
	edgeWait   int
	dir        int
}

// NewAutoPilot for a scroll state. Levels index AutoAdvanceIntervals and
// AutoScrollIntervals respectively; out of range levels are clamped.
func NewAutoPilot(sc *Scroll, advanceLevel int, scrollLevel int) *AutoPilot {
	aut := &AutoPilot{
		sc:           sc,
		advanceLevel: clampLevel(advanceLevel, len(AutoAdvanceIntervals)),
		scrollLevel:  clampLevel(scrollLevel, len(AutoScrollIntervals)),
	}
	aut.Restart()
	return aut
}

func clampLevel(lvl int, n int) int {
	if lvl < 0 {
		return 0
	}
	if lvl >= n {
		return n - 1
	}
	return lvl
}

// Restart both timers. Call after the image has been changed by user
// input so the pilot does not carry stale counters into the new image.
func (aut *AutoPilot) Restart() {
	aut.advanceCtr = AutoAdvanceIntervals[aut.advanceLevel]
	aut.scrollCtr = AutoScrollIntervals[aut.scrollLevel]
	aut.edgeWait = 0
	aut.dir = 1
}

// Frame advances the pilot by one video frame. Returns true if the scroll
// state changed and the screen should be redrawn.
func (aut *AutoPilot) Frame() bool {
	changed := false

	if aut.frameAdvance() {
		changed = true
	}
	if aut.frameScroll() {
		changed = true
	}

	return changed
}

func (aut *AutoPilot) frameAdvance() bool {
	if AutoAdvanceIntervals[aut.advanceLevel] == 0 {
		return false
	}

	aut.advanceCtr--
	if aut.advanceCtr > 0 {
		return false
	}

	aut.nextImage()
	return true
}

func (aut *AutoPilot) nextImage() {
	aut.sc.SetImage((aut.sc.Image() + 1) % aut.sc.NumImages())
	aut.Restart()
}

func (aut *AutoPilot) frameScroll() bool {
	if AutoScrollIntervals[aut.scrollLevel] == 0 {
		return false
	}
	if aut.sc.Policy() == Pinned {
		return false
	}
	if aut.sc.maxOffset() == 0 {
		return false
	}

	// lingering at an edge
	if aut.edgeWait > 0 {
		aut.edgeWait--
		if aut.edgeWait > 0 {
			return false
		}
		if aut.dir > 0 && aut.EdgeAdvance {
			aut.nextImage()
			return true
		}
		aut.dir = -aut.dir
		aut.scrollCtr = AutoScrollIntervals[aut.scrollLevel]
		return false
	}

	aut.scrollCtr--
	if aut.scrollCtr > 0 {
		return false
	}
	aut.scrollCtr = AutoScrollIntervals[aut.scrollLevel]

	if aut.dir > 0 {
		aut.sc.Handle(ScrollDown)
	} else {
		aut.sc.Handle(ScrollUp)
	}

	if aut.atEdge() {
		aut.edgeWait = AutoScrollEdgeWait[aut.scrollLevel]
	}

	return true
}

// atEdge in the direction of travel.
func (aut *AutoPilot) atEdge() bool {
	if aut.dir > 0 {
		return aut.sc.Offset() >= aut.sc.maxOffset()
	}
	return aut.sc.Offset() <= 0
}
