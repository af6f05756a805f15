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
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/logger"
)

// Encoding errors.
const (
	NotAValidWAV = "psg: wav: %v"
	NotAValidMP3 = "psg: mp3: %v"
	NoAudio      = "psg: no audio samples to encode"
)

// EncodeOptions for the audio to register stream conversion.
type EncodeOptions struct {
	// video frames per second of the target machine's interrupt. the
	// stream advances one record per interrupt. zero means 60.
	FPS int

	// stop adding frames once the stream (including the loop marker)
	// would exceed this many bytes. zero means no limit.
	MaxBytes int
}

// EncodeWAV converts a WAV recording to a register stream. Stereo files
// use the left channel only.
func EncodeWAV(r io.ReadSeeker, opts EncodeOptions) (Stream, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, curated.Errorf(NotAValidWAV, "not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(NotAValidWAV, err)
	}
	floatBuf := buf.AsFloat32Buffer()

	// copy first channel only of the data stream
	data := make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans))
	for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
		data = append(data, floatBuf.Data[i])
	}

	return encodePCM(data, float64(dec.SampleRate), opts)
}

// EncodeMP3 converts an MP3 recording to a register stream, left channel
// only.
func EncodeMP3(r io.Reader, opts EncodeOptions) (Stream, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(NotAValidMP3, err)
	}

	// the decoded stream is always 16bit little-endian, 2 channels
	data := make([]float32, 0)

	err = nil
	chunk := make([]byte, 4096)
	for err != io.EOF {
		var chunkLen int
		chunkLen, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return nil, curated.Errorf(NotAValidMP3, err)
		}

		// index increment of 4: two bytes per sample per channel and we
		// only want the left channel
		for i := 0; i+1 < chunkLen; i += 4 {
			f := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			data = append(data, float32(f))
		}
	}

	return encodePCM(data, float64(dec.SampleRate()), opts)
}

// encodePCM reduces a mono PCM clip to one register record per video
// frame. The reduction is deliberately crude: the frame's peak amplitude
// sets the channel A volume and the zero crossing count sets the channel A
// tone period. Registers are only written when their value changes.
func encodePCM(data []float32, sampleRate float64, opts EncodeOptions) (Stream, error) {
	if len(data) == 0 || sampleRate <= 0 {
		return nil, curated.Errorf(NoAudio)
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}

	samplesPerFrame := int(sampleRate) / fps
	if samplesPerFrame < 1 {
		samplesPerFrame = 1
	}

	// clip peak for volume normalisation
	var clipPeak float32
	for _, s := range data {
		if a := abs32(s); a > clipPeak {
			clipPeak = a
		}
	}
	if clipPeak == 0 {
		clipPeak = 1
	}

	bld := Builder{}
	frames := 0
	lastVol := -1
	lastFine := -1
	lastCoarse := -1

	for start := 0; start < len(data); start += samplesPerFrame {
		end := start + samplesPerFrame
		if end > len(data) {
			end = len(data)
		}
		frame := data[start:end]

		var framePeak float32
		crossings := 0
		for i, s := range frame {
			if a := abs32(s); a > framePeak {
				framePeak = a
			}
			if i > 0 && (s < 0) != (frame[i-1] < 0) {
				crossings++
			}
		}

		vol := int(15*framePeak/clipPeak + 0.5)

		writes := []Write{}
		if start == 0 {
			// tone on channel A only; everything else masked
			writes = append(writes, Write{Register: 7, Data: 0xbe})
		}
		if vol != lastVol {
			writes = append(writes, Write{Register: 8, Data: uint8(vol)})
			lastVol = vol
		}

		// two crossings per cycle
		freq := float64(crossings) * float64(fps) / 2
		if vol > 0 && freq > 0 {
			period := int(clock / (16 * freq))
			if period < 1 {
				period = 1
			}
			if period > 0xfff {
				period = 0xfff
			}

			if fine := period & 0xff; fine != lastFine {
				writes = append(writes, Write{Register: 0, Data: uint8(fine)})
				lastFine = fine
			}
			if coarse := period >> 8; coarse != lastCoarse {
				writes = append(writes, Write{Register: 1, Data: uint8(coarse)})
				lastCoarse = coarse
			}
		}

		if opts.MaxBytes > 0 && bld.Len()+1+2*len(writes) > opts.MaxBytes {
			logger.Logf("psg", "stream truncated to %d bytes (%d frames)", opts.MaxBytes, frames)
			break
		}

		if err := bld.AddFrame(writes); err != nil {
			return nil, err
		}
		frames++
	}

	return bld.Stream(), nil
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
