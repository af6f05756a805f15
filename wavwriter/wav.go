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

// Package wavwriter renders a cartridge's register stream to a WAV file,
// using the same square wave approximation the preview window plays. Note
// that audio data is buffered in memory in its entirety before being
// written to disk. It is a proofing tool: listen to what the encoder made
// of the music without loading the cartridge anywhere.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/logger"
	"github.com/msxtools/sc2scroll/psg"
)

// WriteError is how problems writing the file are reported.
const WriteError = "wavwriter: %v"

const sampleFreq = 22050

// amplitude of the square wave at full register volume, in 16 bit sample
// units
const fullScale = 8000

// WriteStream plays the register stream once through and writes the
// result. fps is the rate the stream was encoded for.
func WriteStream(filename string, stm psg.Stream, fps int) (rerr error) {
	ply, err := psg.NewPlayer(stm)
	if err != nil {
		return err
	}

	if fps <= 0 {
		fps = 60
	}

	frames := stm.NumFrames()
	data := make([]int, 0, frames*(sampleFreq/fps))

	var phase float32
	remainder := 0

	for i := 0; i < frames; i++ {
		ply.StepFrame()

		freq := ply.ToneFreq()
		amp := int(ply.Volume() * fullScale)

		n := (sampleFreq + remainder) / fps
		remainder = (sampleFreq + remainder) % fps

		for s := 0; s < n; s++ {
			v := 0
			if amp > 0 && freq > 0 {
				phase += freq / sampleFreq
				if phase >= 1 {
					phase -= 1
				}
				if phase < 0.5 {
					v = amp
				} else {
					v = -amp
				}
			}
			data = append(data, v)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, 16, 1, 1)
	defer func() {
		if err := enc.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}()

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleFreq},
		Data:           data,
		SourceBitDepth: 16,
	}

	logger.Logf("wavwriter", "writing %d frames of audio to %s", frames, filename)
	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WriteError, err)
	}

	return nil
}
