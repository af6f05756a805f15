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

// Package psg works with PSG register streams: the background music format
// of the cartridge. A stream is a flat byte sequence, one record per video
// frame:
//
//	count            number of register writes this frame (0 for none)
//	reg, data        repeated count times
//
// A count byte of 0xff is the loop marker: playback returns to the start
// of the stream, consuming the frame. The stream is read by an interrupt
// handler on the target machine so the format stays byte-oriented and
// stateless.
package psg

import (
	"fmt"

	"github.com/msxtools/sc2scroll/curated"
)

// LoopMarker in place of a count byte sends playback back to the start of
// the stream.
const LoopMarker = 0xff

// MaxWritesPerFrame leaves the loop marker out of the valid count range.
const MaxWritesPerFrame = 0xfe

// NumRegisters in the sound generator.
const NumRegisters = 16

// Errors for stream construction and validation.
const (
	BadStream     = "psg: malformed stream: %v"
	TooManyWrites = "psg: %d register writes in one frame (max %d)"
	StreamTooBig  = "psg: stream of %d bytes does not fit in %d"
)

// Write is one register write within a frame record.
type Write struct {
	Register uint8
	Data     uint8
}

// Stream is the wire form of a register stream, including the terminating
// loop marker.
type Stream []byte

// NumFrames in the stream, not counting the frame consumed by the loop
// marker.
func (stm Stream) NumFrames() int {
	n := 0
	i := 0
	for i < len(stm) {
		ct := stm[i]
		if ct == LoopMarker {
			break
		}
		n++
		i += 1 + 2*int(ct)
	}
	return n
}

// Validate walks the stream and checks that every frame record is complete
// and that the stream ends with a loop marker.
func (stm Stream) Validate() error {
	i := 0
	for i < len(stm) {
		ct := stm[i]
		if ct == LoopMarker {
			if i != len(stm)-1 {
				return curated.Errorf(BadStream, fmt.Sprintf("%d trailing bytes after the loop marker", len(stm)-i-1))
			}
			return nil
		}

		i += 1 + 2*int(ct)
		if i > len(stm) {
			return curated.Errorf(BadStream, "truncated frame record")
		}
	}
	return curated.Errorf(BadStream, "no loop marker")
}

// TrimStream extracts a stream embedded at the start of a larger buffer:
// the frame records up to and including the first loop marker. The walk
// follows the count bytes, so a data byte of 0xff inside a record is not
// mistaken for the marker.
func TrimStream(data []byte) (Stream, error) {
	i := 0
	for i < len(data) {
		if data[i] == LoopMarker {
			return Stream(data[: i+1 : i+1]), nil
		}
		i += 1 + 2*int(data[i])
	}
	return nil, curated.Errorf(BadStream, "no loop marker")
}

// Builder accumulates frame records and terminates the stream on demand.
// The zero value is ready to use.
type Builder struct {
	data []byte
}

// AddFrame appends one frame record. An empty write list is fine, it
// encodes as a single zero byte.
func (bld *Builder) AddFrame(writes []Write) error {
	if len(writes) > MaxWritesPerFrame {
		return curated.Errorf(TooManyWrites, len(writes), MaxWritesPerFrame)
	}

	bld.data = append(bld.data, uint8(len(writes)))
	for _, w := range writes {
		bld.data = append(bld.data, w.Register, w.Data)
	}
	return nil
}

// Len of the stream as built so far, including the loop marker yet to be
// written.
func (bld *Builder) Len() int {
	return len(bld.data) + 1
}

// Stream returns the record sequence terminated with the loop marker. The
// builder is left as it was: Stream can be called again, including after
// further AddFrame() calls.
func (bld *Builder) Stream() Stream {
	stm := make(Stream, 0, len(bld.data)+1)
	stm = append(stm, bld.data...)
	return append(stm, LoopMarker)
}
