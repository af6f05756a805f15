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

	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/psg"
)

const sampleFreq = 22050

// amplitude of the square wave at full register volume. kept well under
// half scale so the output is not painful
const fullScale = 40

// sound queues a square wave synthesised from the player's channel A
// registers. The real sound generator has three channels and a noise
// source but the encoder only ever writes channel A.
type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// buffer refilled and queued every video frame
	buffer []uint8

	// square wave phase, carried across frames
	phase float32

	// fractional sample count carried across frames
	remainder int
}

func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(sampleFreq / framesPerSecond),
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}
	snd.spec = actualSpec

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// frame synthesises and queues one video frame's worth of samples.
func (snd *sound) frame(ply *psg.Player) {
	n := (sampleFreq + snd.remainder) / framesPerSecond
	snd.remainder = (sampleFreq + snd.remainder) % framesPerSecond

	if cap(snd.buffer) < n {
		snd.buffer = make([]uint8, n)
	}
	snd.buffer = snd.buffer[:n]

	freq := ply.ToneFreq()
	amp := uint8(ply.Volume() * fullScale)

	for i := range snd.buffer {
		snd.buffer[i] = snd.spec.Silence
		if amp > 0 && freq > 0 {
			snd.phase += freq / sampleFreq
			if snd.phase >= 1 {
				snd.phase -= 1
			}
			if snd.phase < 0.5 {
				snd.buffer[i] = snd.spec.Silence + amp
			} else {
				snd.buffer[i] = snd.spec.Silence - amp
			}
		}
	}

	_ = sdl.QueueAudio(snd.id, snd.buffer)
}

func (snd *sound) destroy() {
	sdl.CloseAudioDevice(snd.id)
}
