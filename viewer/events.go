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

// Event is a logical input event. The mapping from physical keys is the
// frontend's business.
type Event int

// the four input events the viewer responds to.
const (
	NoEvent Event = iota
	NextImage
	PrevImage
	ScrollUp
	ScrollDown
)

func (ev Event) String() string {
	switch ev {
	case NextImage:
		return "next image"
	case PrevImage:
		return "previous image"
	case ScrollUp:
		return "scroll up"
	case ScrollDown:
		return "scroll down"
	}
	return "no event"
}
