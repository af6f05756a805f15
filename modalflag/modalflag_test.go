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

package modalflag_test

import (
	"testing"

	"github.com/msxtools/sc2scroll/modalflag"
	"github.com/msxtools/sc2scroll/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, len(md.RemainingArgs()), 0)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"play", "scroll.rom"})
	md.AddSubModes("BUILD", "PLAY", "INFO")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "PLAY")

	// mode name has been consumed
	md.NewMode()
	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.GetArg(0), "scroll.rom")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"scroll.rom"})
	md.AddSubModes("BUILD", "PLAY")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))

	// first sub-mode is the default
	test.Equate(t, md.Mode(), "BUILD")
	test.Equate(t, md.GetArg(0), "scroll.rom")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-fillbyte", "0", "scroll.rom"})

	fill := md.AddInt("fillbyte", 255, "fill byte for unused areas")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, *fill, 0)
	test.Equate(t, md.GetArg(0), "scroll.rom")
}
