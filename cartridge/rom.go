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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/logger"
	"github.com/msxtools/sc2scroll/psg"
)

// layout of the boot bank (bank 0 of the ROM, mapped at 0x4000):
//
//	0x0000  MSX cartridge header. "AB" + INIT vector
//	0x0010  boot code
//	0x2ff0  info block: magic, image count, BGM bank and rate
//	0x3000  catalog table. one entry per image + terminator
const (
	bootCodeOffset = 0x0010
	infoOffset     = 0x2ff0
	catalogOffset  = 0x3000
)

// the info block magic. a cartridge without it was not produced by this
// tool and cannot be viewed or inspected.
const infoMagic = "SCRL"

// catalog entries are 8 bytes on the ROM:
//
//	0     base bank (absolute ROM bank)
//	1,2   tile row count, little-endian
//	3     start position. 0xff for bottom, 0x00 for top
//	4,5   base offset in bank, little-endian
//	6,7   reserved
//
// the table ends with four 0xff bytes. an entry can never begin with 0xff
// because bank 0 is always the boot bank.
const (
	catalogEntrySize      = 8
	catalogTerminatorSize = 4
)

// MaxImages per cartridge. The info block stores the image count in one
// byte.
const MaxImages = 255

// error patterns returned by AssembleROM() and ParseROM().
const (
	BootCodeTooBig = "rom: boot code is %d bytes. it must fit in %d"
	BGMTooBig      = "rom: BGM stream is %d bytes. it must fit in one bank"
	TooManyImages  = "rom: %d images. the catalog holds %d at most"
	NotAScrollROM  = "rom: not a scroll cartridge: %v"
)

// DefaultBootCode is the placeholder used when no boot code is supplied:
// interrupts off, halt. A real machine shows a steady (blank) screen. The
// packaging collaborator supplies the actual Z80 viewer.
var DefaultBootCode = []byte{0xf3, 0x76, 0x18, 0xfd}

// ROMOptions for AssembleROM. The zero value is usable.
type ROMOptions struct {
	// boot code blob placed at bootCodeOffset. DefaultBootCode if empty
	BootCode []byte

	// PSG register stream, one bank at most. no BGM bank if empty
	BGM []byte

	// BGM playback rate in frames per second. either 30 or 60
	BGMFPS int
}

// ROM is a parsed scroll cartridge.
type ROM struct {
	Data    []byte
	Store   *BlockStore
	Catalog Catalog

	// BGM stream bytes, nil if the cartridge carries no BGM
	BGM    []byte
	BGMFPS int
}

func (rom *ROM) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d banks (%dk)\n", rom.Store.NumBanks(), len(rom.Data)/1024))
	s.WriteString(fmt.Sprintf("%d images\n", len(rom.Catalog)))
	s.WriteString(rom.Catalog.String())
	if rom.BGM != nil {
		s.WriteString(fmt.Sprintf("BGM: %d bytes at %dfps\n", len(rom.BGM), rom.BGMFPS))
	}
	return s.String()
}

// AssembleROM wraps a laid-out BlockStore and its Catalog into an ASCII16
// MegaROM image: boot bank, optional BGM bank, then the store's data banks.
//
// The catalog entries written to the ROM carry absolute bank numbers, ie.
// the store-relative BaseBank shifted past the boot and BGM banks. The
// Catalog passed in is not modified.
func AssembleROM(store *BlockStore, cat Catalog, opts ROMOptions) ([]byte, error) {
	if store.BankSize() != BankSize {
		panic(fmt.Sprintf("store bank size %#x does not match the ASCII16 window %#x", store.BankSize(), BankSize))
	}

	boot := opts.BootCode
	if len(boot) == 0 {
		boot = DefaultBootCode
	}
	if len(boot) > infoOffset-bootCodeOffset {
		return nil, curated.Errorf(BootCodeTooBig, len(boot), infoOffset-bootCodeOffset)
	}
	if len(opts.BGM) > BankSize {
		return nil, curated.Errorf(BGMTooBig, len(opts.BGM))
	}
	if len(cat) > MaxImages {
		return nil, curated.Errorf(TooManyImages, len(cat), MaxImages)
	}

	// data banks follow the boot bank and the BGM bank, if there is one
	dataBase := 1
	bgmBank := 0
	if len(opts.BGM) > 0 {
		bgmBank = 1
		dataBase = 2
	}

	totalBanks := dataBase + store.NumBanks()
	if totalBanks > MaxBanks {
		return nil, curated.Errorf(CapacityExceeded, totalBanks, MaxBanks)
	}

	rom := make([]byte, totalBanks*BankSize)
	for i := range rom {
		rom[i] = FillByte
	}

	// MSX cartridge header. INIT points at the boot code
	const romBase = 0x4000
	rom[0] = 'A'
	rom[1] = 'B'
	rom[2] = byte((romBase + bootCodeOffset) & 0xff)
	rom[3] = byte((romBase + bootCodeOffset) >> 8)
	for i := 4; i < bootCodeOffset; i++ {
		rom[i] = 0x00
	}

	copy(rom[bootCodeOffset:], boot)

	// info block
	copy(rom[infoOffset:], infoMagic)
	rom[infoOffset+4] = 0x01 // format version
	rom[infoOffset+5] = byte(len(cat))
	rom[infoOffset+6] = byte(bgmBank)
	rom[infoOffset+7] = byte(opts.BGMFPS)

	// catalog table
	o := catalogOffset
	for _, ent := range cat {
		rom[o+0] = byte(ent.BaseBank + dataBase)
		rom[o+1] = byte(ent.TileRows & 0xff)
		rom[o+2] = byte(ent.TileRows >> 8)
		if ent.StartAt == StartAtBottom {
			rom[o+3] = 0xff
		} else {
			rom[o+3] = 0x00
		}
		rom[o+4] = byte(ent.BaseOffset & 0xff)
		rom[o+5] = byte(ent.BaseOffset >> 8)
		rom[o+6] = 0x00
		rom[o+7] = 0x00
		o += catalogEntrySize
	}
	for i := 0; i < catalogTerminatorSize; i++ {
		rom[o+i] = 0xff
	}

	// BGM bank
	if bgmBank > 0 {
		copy(rom[bgmBank*BankSize:], opts.BGM)
	}

	// data banks
	copy(rom[dataBase*BankSize:], store.Bytes())

	logger.Logf("rom", "%d banks. boot code %d bytes. %d images", totalBanks, len(boot), len(cat))

	return rom, nil
}

// ParseROM reads a cartridge image produced by AssembleROM. The returned
// ROM's Store spans the whole file, so the Catalog's bank numbers can be
// used with a Window directly.
func ParseROM(data []byte) (*ROM, error) {
	if len(data) < BankSize || len(data)%BankSize != 0 {
		return nil, curated.Errorf(NotAScrollROM,
			curated.Errorf("%d bytes is not a whole number of banks", len(data)))
	}
	if data[0] != 'A' || data[1] != 'B' {
		return nil, curated.Errorf(NotAScrollROM, curated.Errorf("no cartridge header"))
	}
	if string(data[infoOffset:infoOffset+4]) != infoMagic {
		return nil, curated.Errorf(NotAScrollROM, curated.Errorf("no info block"))
	}

	numImages := int(data[infoOffset+5])
	bgmBank := int(data[infoOffset+6])
	bgmFPS := int(data[infoOffset+7])

	cat := make(Catalog, 0, numImages)
	o := catalogOffset
	for {
		// the walk never leaves the boot bank. a file with no terminator
		// byte is not one of ours
		if o+catalogEntrySize > BankSize {
			return nil, curated.Errorf(NotAScrollROM, curated.Errorf("catalog table has no terminator"))
		}
		if data[o] == 0xff {
			break
		}
		ent := Entry{
			BaseBank:   int(data[o+0]),
			TileRows:   int(data[o+1]) | int(data[o+2])<<8,
			BaseOffset: int(data[o+4]) | int(data[o+5])<<8,
		}
		if data[o+3] == 0xff {
			ent.StartAt = StartAtBottom
		}
		if ent.BaseBank >= len(data)/BankSize {
			return nil, curated.Errorf(NotAScrollROM,
				curated.Errorf("catalog entry %d points beyond the ROM", len(cat)))
		}
		cat = append(cat, ent)
		o += catalogEntrySize
	}

	if len(cat) != numImages {
		return nil, curated.Errorf(NotAScrollROM,
			curated.Errorf("info block says %d images, catalog has %d", numImages, len(cat)))
	}
	if len(cat) == 0 {
		return nil, curated.Errorf(NotAScrollROM, curated.Errorf("no images"))
	}

	rom := &ROM{
		Data:    data,
		Store:   NewBlockStore(data, BankSize),
		Catalog: cat,
		BGMFPS:  bgmFPS,
	}

	// the BGM stream occupies the head of its bank, the rest is filler.
	// trim at the loop marker so the player sees a valid stream
	if bgmBank > 0 {
		if bgmBank >= len(data)/BankSize {
			return nil, curated.Errorf(NotAScrollROM,
				curated.Errorf("BGM bank %d points beyond the ROM", bgmBank))
		}
		stm, err := psg.TrimStream(rom.Store.Bank(bgmBank))
		if err != nil {
			return nil, curated.Errorf(NotAScrollROM, err)
		}
		rom.BGM = stm
	}

	return rom, nil
}
