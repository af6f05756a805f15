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

// the sound generator runs at half the system clock
const clock = 3579545 / 2

// Player steps through a register stream one frame at a time, mirroring
// the register file as it goes. It reproduces the behavior of the target
// machine's interrupt handler: a loop marker consumes the frame and the
// next StepFrame() starts over from the top of the stream.
type Player struct {
	stream Stream
	pos    int
	regs   [NumRegisters]uint8
	looped int
}

// NewPlayer validates the stream before stepping through it.
func NewPlayer(stream Stream) (*Player, error) {
	if err := stream.Validate(); err != nil {
		return nil, err
	}
	return &Player{stream: stream}, nil
}

// StepFrame applies the register writes of the next frame record.
func (ply *Player) StepFrame() {
	ct := ply.stream[ply.pos]
	ply.pos++

	if ct == LoopMarker {
		ply.pos = 0
		ply.looped++
		return
	}

	for i := 0; i < int(ct); i++ {
		reg := ply.stream[ply.pos] & 0x0f
		ply.regs[reg] = ply.stream[ply.pos+1]
		ply.pos += 2
	}
}

// Register value as of the last StepFrame().
func (ply *Player) Register(reg int) uint8 {
	return ply.regs[reg&0x0f]
}

// Looped counts how often playback has returned to the top of the stream.
func (ply *Player) Looped() int {
	return ply.looped
}

// ToneFreq of channel A in Hz, derived from the period registers. Zero
// when the period is zero.
func (ply *Player) ToneFreq() float32 {
	period := int(ply.regs[1]&0x0f)<<8 | int(ply.regs[0])
	if period == 0 {
		return 0
	}
	return float32(clock) / float32(16*period)
}

// Volume of channel A as a fraction of full scale.
func (ply *Player) Volume() float32 {
	if ply.regs[7]&0x01 != 0 {
		// tone A is masked in the mixer
		return 0
	}
	return float32(ply.regs[8]&0x0f) / 15.0
}
