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

package preview

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/msxtools/sc2scroll/viewer"
)

// service the SDL event queue. Returns whether the user has quit and
// whether the auto pilot should restart its timers because of manual
// input.
func (pre *Preview) service() (quit bool, restart bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				continue
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				quit = true
			case sdl.K_SPACE, sdl.K_RIGHT:
				pre.sc.Handle(viewer.NextImage)
				restart = true
			case sdl.K_LEFT:
				pre.sc.Handle(viewer.PrevImage)
				restart = true
			}
		}
	}

	// scrolling repeats while the key is held, one pixel row per frame
	keys := sdl.GetKeyboardState()
	if keys[sdl.SCANCODE_UP] != 0 {
		pre.sc.Handle(viewer.ScrollUp)
		restart = true
	}
	if keys[sdl.SCANCODE_DOWN] != 0 {
		pre.sc.Handle(viewer.ScrollDown)
		restart = true
	}

	return quit, restart
}
