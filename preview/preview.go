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

	"github.com/msxtools/sc2scroll/cartridge"
	"github.com/msxtools/sc2scroll/curated"
	"github.com/msxtools/sc2scroll/limiter"
	"github.com/msxtools/sc2scroll/logger"
	"github.com/msxtools/sc2scroll/psg"
	"github.com/msxtools/sc2scroll/screen2"
	"github.com/msxtools/sc2scroll/vdp"
	"github.com/msxtools/sc2scroll/viewer"
)

// SDLError is how problems in the SDL layer are reported.
const SDLError = "sdl: %v"

const pixelDepth = 4
const framesPerSecond = 60

// Options for the preview window.
type Options struct {
	// window scaling. 1.0 is a native size window, which is tiny on a
	// modern desktop
	Scale float32

	// auto pilot levels, indexing the interval tables in the viewer
	// package. zero disables
	AdvanceLevel int
	ScrollLevel  int
	EdgeAdvance  bool

	// play the cartridge's register stream, if it has one
	Sound bool
}

// Preview plays a parsed cartridge in an SDL window.
type Preview struct {
	opts Options

	vram *vdp.VRAM
	sc   *viewer.Scroll
	rnd  *viewer.Renderer
	aut  *viewer.AutoPilot
	snd  *sound

	// the register stream player steps at the cartridge's rate, which may
	// be half the frame rate
	ply     *psg.Player
	bgmFPS  int
	bgmTick int

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array we copy to the texture every frame
	pixels []byte

	lmtr *limiter.FPSLimiter
}

// NewPreview sets up SDL and the render pipeline for a parsed cartridge.
func NewPreview(rom *cartridge.ROM, opts Options) (*Preview, error) {
	if opts.Scale <= 0 {
		opts.Scale = 2.0
	}

	pre := &Preview{
		opts: opts,
		vram: vdp.NewVRAM(),
	}

	pre.sc = viewer.NewScroll(rom.Catalog)
	pre.rnd = viewer.NewRenderer(rom.Store, rom.Catalog, pre.vram)
	pre.aut = viewer.NewAutoPilot(pre.sc, opts.AdvanceLevel, opts.ScrollLevel)
	pre.aut.EdgeAdvance = opts.EdgeAdvance

	pre.pixels = make([]byte, screen2.Width*screen2.VisiblePixelRows*pixelDepth)

	var err error

	if err = sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	pre.window, err = sdl.CreateWindow("SC2Scroll",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	pre.renderer, err = sdl.CreateRenderer(pre.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// texture is the same size as the pixel array. scaling is applied by
	// the renderer to fit it to the window
	pre.texture, err = pre.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(screen2.Width), int32(screen2.VisiblePixelRows))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	pre.window.SetSize(int32(float32(screen2.Width)*opts.Scale),
		int32(float32(screen2.VisiblePixelRows)*opts.Scale))
	if err = pre.renderer.SetScale(opts.Scale, opts.Scale); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	if opts.Sound && len(rom.BGM) > 0 {
		pre.ply, err = psg.NewPlayer(psg.Stream(rom.BGM))
		if err != nil {
			return nil, err
		}
		pre.bgmFPS = rom.BGMFPS
		if pre.bgmFPS <= 0 {
			pre.bgmFPS = framesPerSecond
		}

		pre.snd, err = newSound()
		if err != nil {
			return nil, err
		}
	}

	pre.lmtr = limiter.NewFPSLimiter(framesPerSecond)

	logger.Logf("preview", "%d images, %d banks", len(rom.Catalog), rom.Store.NumBanks())

	return pre, nil
}

// Run shows the window and blocks until the user quits.
func (pre *Preview) Run() error {
	pre.window.Show()

	for {
		pre.lmtr.Wait()

		quit, restart := pre.service()
		if quit {
			return pre.destroy()
		}
		if restart {
			pre.aut.Restart()
		}

		pre.aut.Frame()
		pre.frame()
	}
}

// one frame of video and sound.
func (pre *Preview) frame() {
	pre.rnd.Render(pre.sc)
	pre.vram.Rasterize(pre.pixels)

	_ = pre.texture.Update(nil, pre.pixels, screen2.Width*pixelDepth)
	_ = pre.renderer.Copy(pre.texture, nil, nil)
	pre.renderer.Present()

	if pre.ply != nil {
		// the stream may run at half the frame rate
		pre.bgmTick += pre.bgmFPS
		if pre.bgmTick >= framesPerSecond {
			pre.bgmTick -= framesPerSecond
			pre.ply.StepFrame()
		}
		pre.snd.frame(pre.ply)
	}
}

func (pre *Preview) destroy() error {
	if pre.snd != nil {
		pre.snd.destroy()
	}
	pre.texture.Destroy()
	pre.renderer.Destroy()
	pre.window.Destroy()
	sdl.Quit()
	return nil
}
