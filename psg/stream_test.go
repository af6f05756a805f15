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

package psg_test

import (
	"testing"

	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/psg"
	"github.com/msxtools/sc2scroll/test"
)

func TestStreamBuilder(t *testing.T) {
	bld := psg.Builder{}

	err := bld.AddFrame([]psg.Write{
		{Register: 7, Data: 0xbe},
		{Register: 8, Data: 0x0f},
	})
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, bld.AddFrame(nil))

	stm := bld.Stream()
	test.ExpectedSuccess(t, stm.Validate())
	test.Equate(t, stm.NumFrames(), 2)
	test.Equate(t, []byte(stm), []byte{0x02, 0x07, 0xbe, 0x08, 0x0f, 0x00, 0xff})
}

func TestStreamBuilderReuse(t *testing.T) {
	bld := psg.Builder{}
	test.ExpectedSuccess(t, bld.AddFrame([]psg.Write{{Register: 8, Data: 0x0f}}))

	// the builder survives Stream(). no double termination
	one := bld.Stream()
	two := bld.Stream()
	test.ExpectedSuccess(t, one.Validate())
	test.ExpectedSuccess(t, two.Validate())
	test.Equate(t, []byte(two), []byte(one))

	// and it can keep accumulating frames
	test.ExpectedSuccess(t, bld.AddFrame(nil))
	three := bld.Stream()
	test.ExpectedSuccess(t, three.Validate())
	test.Equate(t, three.NumFrames(), 2)
	test.ExpectedSuccess(t, one.Validate())
}

func TestTrimStream(t *testing.T) {
	// a stream at the head of a filler-padded bank
	buf := []byte{0x01, 0x08, 0x0f, 0x00, 0xff, 0xff, 0xff, 0xff}
	stm, err := psg.TrimStream(buf)
	test.ExpectedSuccess(t, err)
	test.Equate(t, []byte(stm), []byte{0x01, 0x08, 0x0f, 0x00, 0xff})
	test.ExpectedSuccess(t, stm.Validate())

	// a 0xff data byte is not the loop marker
	buf = []byte{0x01, 0x00, 0xff, 0xff, 0xff}
	stm, err = psg.TrimStream(buf)
	test.ExpectedSuccess(t, err)
	test.Equate(t, []byte(stm), []byte{0x01, 0x00, 0xff, 0xff})

	// no marker at all
	_, err = psg.TrimStream([]byte{0x00, 0x00, 0x00})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, psg.BadStream))
}

func TestStreamValidate(t *testing.T) {
	// truncated frame record
	err := psg.Stream([]byte{0x02, 0x07, 0xbe}).Validate()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, psg.BadStream))

	// no loop marker
	err = psg.Stream([]byte{0x00}).Validate()
	test.ExpectedFailure(t, err)

	// bytes after the loop marker
	err = psg.Stream([]byte{0x00, 0xff, 0x00}).Validate()
	test.ExpectedFailure(t, err)

	// smallest valid stream
	test.ExpectedSuccess(t, psg.Stream([]byte{0xff}).Validate())
}

func TestPlayer(t *testing.T) {
	bld := psg.Builder{}
	test.ExpectedSuccess(t, bld.AddFrame([]psg.Write{
		{Register: 7, Data: 0xbe},
		{Register: 8, Data: 0x0a},
	}))
	test.ExpectedSuccess(t, bld.AddFrame([]psg.Write{
		{Register: 8, Data: 0x05},
	}))

	ply, err := psg.NewPlayer(bld.Stream())
	test.ExpectedSuccess(t, err)

	ply.StepFrame()
	test.Equate(t, ply.Register(8), 0x0a)

	ply.StepFrame()
	test.Equate(t, ply.Register(8), 0x05)

	// the loop marker consumes a frame without changing any register
	ply.StepFrame()
	test.Equate(t, ply.Register(8), 0x05)
	test.Equate(t, ply.Looped(), 1)

	// and the sequence repeats
	ply.StepFrame()
	test.Equate(t, ply.Register(8), 0x0a)
}

func TestPlayerRejectsBadStream(t *testing.T) {
	_, err := psg.NewPlayer(psg.Stream([]byte{0x05}))
	test.ExpectedFailure(t, err)
}

func TestPlayerToneAndVolume(t *testing.T) {
	bld := psg.Builder{}
	test.ExpectedSuccess(t, bld.AddFrame([]psg.Write{
		{Register: 7, Data: 0xbe},
		{Register: 8, Data: 15},
		{Register: 0, Data: 0xfe},
		{Register: 1, Data: 0x01},
	}))

	ply, err := psg.NewPlayer(bld.Stream())
	test.ExpectedSuccess(t, err)
	ply.StepFrame()

	// period 0x1fe = 510: 1789772 / (16*510) = 219.3Hz
	f := ply.ToneFreq()
	if f < 219 || f > 220 {
		t.Fatalf("tone frequency %f outside expected range", f)
	}
	test.Equate(t, ply.Volume() == 1.0, true)
}
