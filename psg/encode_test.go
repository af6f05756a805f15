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

package psg

import (
	"testing"

	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/test"
)

// 600Hz sample rate at 60fps gives ten samples per frame: small enough to
// reason about by hand.
func testPCM() []float32 {
	data := make([]float32, 0, 30)

	// frame 1: silence
	for i := 0; i < 10; i++ {
		data = append(data, 0)
	}

	// frames 2 and 3: a square wave flipping sign every sample. nine
	// crossings per frame, so 270Hz
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			data = append(data, 1000)
		} else {
			data = append(data, -1000)
		}
	}

	return data
}

func TestEncodePCM(t *testing.T) {
	stm, err := encodePCM(testPCM(), 600, EncodeOptions{FPS: 60})
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, stm.Validate())
	test.Equate(t, stm.NumFrames(), 3)

	ply, err := NewPlayer(stm)
	test.ExpectedSuccess(t, err)

	// silent frame: mixer initialised, volume zero
	ply.StepFrame()
	test.Equate(t, ply.Register(7), 0xbe)
	test.Equate(t, ply.Register(8), 0)
	test.Equate(t, ply.Volume() == 0, true)

	// loud frame: full volume, period 1789772/(16*270) = 414
	ply.StepFrame()
	test.Equate(t, ply.Register(8), 15)
	test.Equate(t, ply.Register(0), 414&0xff)
	test.Equate(t, ply.Register(1), 414>>8)

	// the third frame is identical to the second: nothing to write
	test.Equate(t, []byte(stm)[len(stm)-2], 0)
}

func TestEncodePCMTruncation(t *testing.T) {
	// a long clip of alternating loud and silent frames so every frame
	// carries at least one register write
	data := make([]float32, 0, 6000)
	for f := 0; f < 600; f++ {
		for i := 0; i < 10; i++ {
			if f%2 == 0 {
				data = append(data, 1000)
			} else {
				data = append(data, 0)
			}
		}
	}

	stm, err := encodePCM(data, 600, EncodeOptions{FPS: 60, MaxBytes: 64})
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, stm.Validate())
	if len(stm) > 64 {
		t.Fatalf("stream of %d bytes exceeds the 64 byte limit", len(stm))
	}
}

func TestEncodePCMNoAudio(t *testing.T) {
	_, err := encodePCM(nil, 600, EncodeOptions{})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, NoAudio))
}
