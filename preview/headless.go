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
	"fmt"
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/msxtools/sc2scroll/cartridge"
	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/digest"
	"github.com/msxtools/sc2scroll/limiter"
	"github.com/msxtools/sc2scroll/viewer"
)

// TerminalError is how problems with the controlling terminal are
// reported.
const TerminalError = "terminal: %v"

// HeadlessOptions for a windowless run.
type HeadlessOptions struct {
	AdvanceLevel int
	ScrollLevel  int
	EdgeAdvance  bool

	// run this many frames flat out and return, instead of pacing to the
	// frame rate and listening on the terminal. the frame digest written
	// on completion makes scripted runs comparable
	NumFrames int
}

// RunHeadless plays a cartridge without a display. Frames are rendered
// into a chained digest; the hash is written to output when the run ends.
//
// With NumFrames at zero the run is interactive: the terminal is put into
// cbreak mode and j/k scroll, space and p change image, q quits.
func RunHeadless(rom *cartridge.ROM, opts HeadlessOptions, output io.Writer) error {
	dig := digest.NewVideo()
	sc := viewer.NewScroll(rom.Catalog)
	rnd := viewer.NewRenderer(rom.Store, rom.Catalog, dig)
	aut := viewer.NewAutoPilot(sc, opts.AdvanceLevel, opts.ScrollLevel)
	aut.EdgeAdvance = opts.EdgeAdvance

	if opts.NumFrames > 0 {
		for i := 0; i < opts.NumFrames; i++ {
			aut.Frame()
			rnd.Render(sc)
			dig.NewFrame()
		}
		fmt.Fprintf(output, "%d frames, digest %s\n", dig.Frames(), dig.Hash())
		return nil
	}

	// interactive: single keystrokes without line buffering
	var saved unix.Termios
	if err := termios.Tcgetattr(os.Stdin.Fd(), &saved); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	cbreak := saved
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &cbreak); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	defer termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &saved)

	keys := make(chan byte)
	go func() {
		b := make([]byte, 1)
		for {
			if n, err := os.Stdin.Read(b); err != nil || n == 0 {
				close(keys)
				return
			}
			keys <- b[0]
		}
	}()

	lmtr := limiter.NewFPSLimiter(framesPerSecond)

	for {
		lmtr.Wait()

		select {
		case k, ok := <-keys:
			if !ok || k == 'q' {
				fmt.Fprintf(output, "%d frames, digest %s\n", dig.Frames(), dig.Hash())
				return nil
			}
			switch k {
			case 'k':
				sc.Handle(viewer.ScrollUp)
				aut.Restart()
			case 'j':
				sc.Handle(viewer.ScrollDown)
				aut.Restart()
			case ' ', 'n':
				sc.Handle(viewer.NextImage)
				aut.Restart()
			case 'p':
				sc.Handle(viewer.PrevImage)
				aut.Restart()
			}
		default:
		}

		aut.Frame()
		rnd.Render(sc)
		dig.NewFrame()
	}
}
