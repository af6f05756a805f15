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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. The viewer loops use it to pace themselves to the frame rate
// of the machine being mimicked:
//
//	fps := limiter.NewFPSLimiter(60)
//	for {
//		fps.Wait()
//		renderFrame()
//	}
package limiter

import (
	"time"
)

// only any good if base performance of the machine is well above the
// required rate.

// FPSLimiter triggers at a steady frames per second.
type FPSLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FPSLimiter.
func NewFPSLimiter(framesPerSecond int) *FPSLimiter {
	lim := &FPSLimiter{}
	lim.SetLimit(framesPerSecond)

	lim.tick = make(chan bool)

	// run ticker concurrently
	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjusted)
			nt := time.Now()

			// correct for the drift of the previous frame
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the rate at which the limiter triggers.
func (lim *FPSLimiter) SetLimit(framesPerSecond int) {
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
}

// Wait blocks until the next trigger.
func (lim *FPSLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if the trigger has already happened and false if
// it is still to come.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
