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

package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/msxtools/sc2scroll/bitmap"
	"github.com/msxtools/sc2scroll/cartridge"
	"github.com/msxtools/sc2scroll/logger"
	"github.com/msxtools/sc2scroll/modalflag"
	"github.com/msxtools/sc2scroll/preview"
	"github.com/msxtools/sc2scroll/psg"
	"github.com/msxtools/sc2scroll/statsview"
	"github.com/msxtools/sc2scroll/tiling"
	"github.com/msxtools/sc2scroll/version"
	"github.com/msxtools/sc2scroll/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("BUILD", "PLAY", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "BUILD":
		err = build(md)

	case "PLAY":
		err = play(md)

	case "INFO":
		err = info(md)

	case "VERSION":
		ver, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// parse a color of the form #rrggbb.
func parseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("not a #rrggbb color: %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("not a #rrggbb color: %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

func build(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("o", "out.rom", "output file")
	background := md.AddString("background", "#000000", "background color for padding")
	oversize := md.AddString("oversize", "error", "how to handle images that are too wide: error, shrink, crop")
	undersize := md.AddString("undersize", "error", "how to handle images that are too narrow: error, pad")
	startAt := md.AddString("start", "top", "initial scroll position of scrollable images: top, bottom")
	bgm := md.AddString("bgm", "", "background music file (wav or mp3)")
	bgmFPS := md.AddInt("bgmfps", 30, "background music playback rate")
	boot := md.AddString("boot", "", "file containing replacement boot code")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("no image files specified")
	}

	opts := bitmap.Options{}
	opts.Background, err = parseColor(*background)
	if err != nil {
		return err
	}

	switch *oversize {
	case "error":
		opts.Oversize = bitmap.OversizeError
	case "shrink":
		opts.Oversize = bitmap.OversizeShrink
	case "crop":
		opts.Oversize = bitmap.OversizeCrop
	default:
		return fmt.Errorf("unknown oversize mode: %s", *oversize)
	}

	switch *undersize {
	case "error":
		opts.Undersize = bitmap.UndersizeError
	case "pad":
		opts.Undersize = bitmap.UndersizePad
	default:
		return fmt.Errorf("unknown undersize mode: %s", *undersize)
	}

	var start cartridge.StartPosition
	switch *startAt {
	case "top":
		start = cartridge.StartAtTop
	case "bottom":
		start = cartridge.StartAtBottom
	default:
		return fmt.Errorf("unknown start position: %s", *startAt)
	}

	// tile every image
	blocks := make([][]tiling.Block, 0, len(md.RemainingArgs()))
	for _, path := range md.RemainingArgs() {
		src, err := bitmap.Load(path)
		if err != nil {
			return err
		}

		prepared, err := bitmap.Prepare(src, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		blk, err := tiling.Build(bitmap.ToScreen2(prepared))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		logger.Logf("build", "%s: %d tile rows", path, len(blk))
		blocks = append(blocks, blk)
	}

	store, cat, err := cartridge.Layout(blocks)
	if err != nil {
		return err
	}
	for i := range cat {
		cat[i].StartAt = start
	}

	romOpts := cartridge.ROMOptions{BGMFPS: *bgmFPS}

	if *boot != "" {
		romOpts.BootCode, err = os.ReadFile(*boot)
		if err != nil {
			return err
		}
	}

	if *bgm != "" {
		romOpts.BGM, err = encodeBGM(*bgm, *bgmFPS)
		if err != nil {
			return err
		}
	}

	data, err := cartridge.AssembleROM(store, cat, romOpts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		return err
	}

	fmt.Printf("%s: %d images, %d banks, %dk\n", *output, len(cat), len(data)/cartridge.BankSize, len(data)/1024)
	return nil
}

func encodeBGM(path string, fps int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// the stream must fit in the single bank reserved for it
	opts := psg.EncodeOptions{FPS: fps, MaxBytes: cartridge.BankSize}

	var stm psg.Stream
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stm, err = psg.EncodeWAV(f, opts)
	case ".mp3":
		stm, err = psg.EncodeMP3(f, opts)
	default:
		return nil, fmt.Errorf("unsupported music format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	logger.Logf("build", "%s: %d music frames", path, stm.NumFrames())
	return []byte(stm), nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddFloat64("scale", 2.0, "window scaling")
	advance := md.AddInt("auto", 0, "auto advance level (0 to 8)")
	scroll := md.AddInt("autoscroll", 0, "auto scroll level (0 to 9)")
	edge := md.AddBool("edgeadvance", false, "advance at the bottom edge when auto scrolling")
	sound := md.AddBool("sound", true, "play background music if the cartridge has any")
	headless := md.AddBool("headless", false, "run without a window, controlled from the terminal")
	frames := md.AddInt("frames", 0, "with -headless: render this many frames and print the digest")
	stats := md.AddBool("stats", false, "launch statistics server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not available in this build")
		}
	}

	rom, err := loadROM(md)
	if err != nil {
		return err
	}

	if *headless {
		return preview.RunHeadless(rom, preview.HeadlessOptions{
			AdvanceLevel: *advance,
			ScrollLevel:  *scroll,
			EdgeAdvance:  *edge,
			NumFrames:    *frames,
		}, os.Stdout)
	}

	pre, err := preview.NewPreview(rom, preview.Options{
		Scale:        float32(*scale),
		AdvanceLevel: *advance,
		ScrollLevel:  *scroll,
		EdgeAdvance:  *edge,
		Sound:        *sound,
	})
	if err != nil {
		return err
	}

	return pre.Run()
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	viz := md.AddString("viz", "", "write a graphviz dot file describing the cartridge")
	wavOut := md.AddString("wav", "", "render the cartridge's music stream to a wav file")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	rom, err := loadROM(md)
	if err != nil {
		return err
	}

	fmt.Print(rom.String())

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()

		memviz.Map(f, &rom.Catalog)
		fmt.Printf("catalog graph written to %s\n", *viz)
	}

	if *wavOut != "" {
		if len(rom.BGM) == 0 {
			return fmt.Errorf("cartridge has no music stream")
		}
		if err := wavwriter.WriteStream(*wavOut, psg.Stream(rom.BGM), rom.BGMFPS); err != nil {
			return err
		}
		fmt.Printf("music stream written to %s\n", *wavOut)
	}

	return nil
}

func loadROM(md *modalflag.Modes) (*cartridge.ROM, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("no cartridge file specified")
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md.String())
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	return cartridge.ParseROM(data)
}
