// Package gui runs the emulator driver loop in an ebiten window.
// It paces the machine, forwards keypad state and presents the
// framebuffer, keeping the core free of any presentation concerns.
package gui

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Beeper gates the tone of the audio collaborator. The caller owns the
// beeper and closes it after the driver loop returns.
type Beeper interface {
	SetActive(active bool)
	Close() error
}

// keypad maps the 16 logical CHIP-8 keys 0x0-0xF to physical keys,
// the classic left-hand block layout:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   ->   q w e r
//	7 8 9 E        a s d f
//	A 0 B F        z x c v
var keypad = [chip8.NumKeys]ebiten.Key{
	ebiten.KeyX,
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyQ,
	ebiten.KeyW,
	ebiten.KeyE,
	ebiten.KeyA,
	ebiten.KeyS,
	ebiten.KeyD,
	ebiten.KeyZ,
	ebiten.KeyC,
	ebiten.KeyDigit4,
	ebiten.KeyR,
	ebiten.KeyF,
	ebiten.KeyV,
}

// Window is the emulator frontend, implementing ebiten.Game.
type Window struct {
	ctx    context.Context
	logger *log.Logger

	machine *chip8.Chip8
	beeper  Beeper
	rom     []byte

	stepsPerFrame int
	fullscreen    bool

	frame []byte // RGBA framebuffer presented by Draw
}

// New creates the frontend for a loaded machine. rom is kept for the
// restart key, which reloads the program from scratch.
func New(ctx context.Context, logger *log.Logger, machine *chip8.Chip8,
	beeper Beeper, rom []byte, opts options.Program) *Window {

	w := &Window{
		ctx:           ctx,
		logger:        logger,
		machine:       machine,
		beeper:        beeper,
		rom:           rom,
		stepsPerFrame: opts.Clock / ebiten.TPS(),
		frame:         make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4),
	}
	if w.stepsPerFrame < 1 {
		w.stepsPerFrame = 1
	}
	w.repaint()
	return w
}

// Run opens the window and blocks until the emulation ends.
func Run(ctx context.Context, logger *log.Logger, machine *chip8.Chip8,
	beeper Beeper, rom []byte, opts options.Program) error {

	w := New(ctx, logger, machine, beeper, rom, opts)

	ebiten.SetWindowSize(chip8.DisplayWidth*opts.Scale, chip8.DisplayHeight*opts.Scale)
	ebiten.SetWindowTitle("retrochip8")

	return ebiten.RunGame(w)
}

// Update runs one frame worth of emulation: it processes control keys,
// forwards the keypad state, steps the machine and gates the beeper.
// Called by ebiten at 60Hz.
func (w *Window) Update() error {
	if w.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		w.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		w.fullscreen = !w.fullscreen
		ebiten.SetFullscreen(w.fullscreen)
	}

	// keypad indexes are always below chip8.NumKeys, SetKey can not fail here
	for key, physical := range keypad {
		_ = w.machine.SetKey(uint8(key), ebiten.IsKeyPressed(physical))
	}

	for i := 0; i < w.stepsPerFrame; i++ {
		w.machine.Step()
	}
	w.beeper.SetActive(w.machine.SoundActive())

	if w.machine.DrawFlag() {
		w.repaint()
		w.machine.ClearDrawFlag()
	}
	return nil
}

// Draw presents the last painted frame. Called by ebiten after Update.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.frame)
}

// Layout reports the logical screen size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth, chip8.DisplayHeight
}

// restart reloads the ROM, resetting the whole machine state.
func (w *Window) restart() {
	if err := w.machine.Load(w.rom); err != nil {
		w.logger.Error("Restart failed", log.Err(err))
		return
	}
	w.repaint()
	w.logger.Info("Machine restarted")
}

// repaint converts the packed 1-bit display into RGBA pixels.
func (w *Window) repaint() {
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			var value byte
			if w.machine.Pixel(x, y) {
				value = 0xFF
			}

			offset := (y*chip8.DisplayWidth + x) * 4
			w.frame[offset] = value
			w.frame[offset+1] = value
			w.frame[offset+2] = value
			w.frame[offset+3] = 0xFF
		}
	}
}
