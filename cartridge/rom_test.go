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

package cartridge_test

import (
	"testing"

	"github.com/msxtools/sc2scroll/cartridge"
	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/psg"
	"github.com/msxtools/sc2scroll/test"
	"github.com/msxtools/sc2scroll/tiling"
)

func TestROMRoundTrip(t *testing.T) {
	store, cat, err := cartridge.Layout([][]tiling.Block{numberedBlocks(5), numberedBlocks(40)})
	test.ExpectedSuccess(t, err)

	cat[1].StartAt = cartridge.StartAtBottom

	data, err := cartridge.AssembleROM(store, cat, cartridge.ROMOptions{})
	test.ExpectedSuccess(t, err)

	// MSX cartridge header
	test.Equate(t, data[0], int('A'))
	test.Equate(t, data[1], int('B'))

	rom, err := cartridge.ParseROM(data)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(rom.Catalog), 2)
	test.Equate(t, rom.Catalog[0].TileRows, 5)
	test.Equate(t, rom.Catalog[1].TileRows, 40)
	test.Equate(t, rom.Catalog[1].StartAt == cartridge.StartAtBottom, true)
	test.Equate(t, rom.BGM == nil, true)

	// the parsed catalog's banks are absolute. with no BGM the data banks
	// start at bank 1
	test.Equate(t, rom.Catalog[0].BaseBank, cat[0].BaseBank+1)
	test.Equate(t, rom.Catalog[1].BaseBank, cat[1].BaseBank+1)

	// block data is reachable through a window using the parsed catalog
	wdw := rom.Store.NewWindow()
	ent := rom.Catalog[0]
	wdw.Select(ent.BaseBank)
	test.Equate(t, wdw.Read(ent.BaseOffset), 1)
	test.Equate(t, wdw.Read(ent.BaseOffset+tiling.BlockSize), 2)
}

func TestROMWithBGM(t *testing.T) {
	store, cat, err := cartridge.Layout([][]tiling.Block{numberedBlocks(1)})
	test.ExpectedSuccess(t, err)

	bgm := []byte{0x01, 0x08, 0x0f, 0x00, 0xff}
	data, err := cartridge.AssembleROM(store, cat, cartridge.ROMOptions{BGM: bgm, BGMFPS: 60})
	test.ExpectedSuccess(t, err)

	rom, err := cartridge.ParseROM(data)
	test.ExpectedSuccess(t, err)

	test.Equate(t, rom.BGMFPS, 60)

	// the parsed stream is trimmed at the loop marker, not the whole bank
	test.Equate(t, rom.BGM, bgm)

	// and it is directly playable
	ply, err := psg.NewPlayer(psg.Stream(rom.BGM))
	test.ExpectedSuccess(t, err)
	ply.StepFrame()
	test.Equate(t, ply.Register(8), 0x0f)

	// data banks start at bank 2 when a BGM bank is present
	test.Equate(t, rom.Catalog[0].BaseBank, 2)
}

func TestROMNotAScrollROM(t *testing.T) {
	_, err := cartridge.ParseROM(make([]byte, 100))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.NotAScrollROM))

	// a bank of filler has no header
	_, err = cartridge.ParseROM(make([]byte, cartridge.BankSize))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.NotAScrollROM))
}

func TestROMCatalogWithoutTerminator(t *testing.T) {
	// a file that passes the header and info block checks but whose
	// catalog region never presents a terminator byte. the parser must
	// error out, not read past the end of the bank
	data := make([]byte, cartridge.BankSize)
	data[0] = 'A'
	data[1] = 'B'
	copy(data[0x2ff0:], "SCRL")
	data[0x2ff0+5] = 1

	_, err := cartridge.ParseROM(data)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.NotAScrollROM))
}

func TestROMTooManyImages(t *testing.T) {
	// the info block stores the image count in one byte
	images := make([][]tiling.Block, cartridge.MaxImages+1)
	for i := range images {
		images[i] = numberedBlocks(1)
	}

	store, cat, err := cartridge.Layout(images)
	test.ExpectedSuccess(t, err)

	_, err = cartridge.AssembleROM(store, cat, cartridge.ROMOptions{})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.TooManyImages))
}

func TestROMBootCodeTooBig(t *testing.T) {
	store, cat, err := cartridge.Layout([][]tiling.Block{numberedBlocks(1)})
	test.ExpectedSuccess(t, err)

	_, err = cartridge.AssembleROM(store, cat, cartridge.ROMOptions{BootCode: make([]byte, 0x3000)})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.BootCodeTooBig))
}
