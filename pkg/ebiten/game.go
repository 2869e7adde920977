// Package ebiten runs the VM inside an ebiten game loop. Ebiten calls Update
// at 60 ticks per second, which gives the frame pacing of the timers.
package ebiten

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mnafees/chopper/v2/internal"
	"github.com/mnafees/chopper/v2/internal/runner"
	"github.com/mnafees/chopper/v2/internal/snapshot"
)

// keys maps keypad codes 0x0 through 0xF to keyboard keys, see package
// keypad for the layout
var keys = [16]ebiten.Key{
	ebiten.KeyX, ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyA,
	ebiten.KeyS, ebiten.KeyD, ebiten.KeyZ, ebiten.KeyC,
	ebiten.Key4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

// Game implements ebiten.Game for a runner session
type Game struct {
	ctx     context.Context
	session *runner.Session
	scale   int

	screen *ebiten.Image // reused 64x32 canvas
	pixels []byte
	dirty  bool
}

// NewGame returns a game for session that stops when ctx is cancelled
func NewGame(ctx context.Context, session *runner.Session) *Game {
	g := &Game{
		ctx:     ctx,
		session: session,
		scale:   session.Config.Display.Scale,
		pixels:  make([]byte, internal.ScreenWidth*internal.ScreenHeight*4),
		dirty:   true,
	}
	fb := session.VM.Display()
	snapshot.RGBA(g.pixels, &fb, session.Palette)
	return g
}

// Update forwards the keyboard state and runs one frame
func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	vm := g.session.VM
	for code, key := range keys {
		switch {
		case inpututil.IsKeyJustPressed(key):
			vm.SetKey(uint8(code), true)
		case inpututil.IsKeyJustReleased(key):
			vm.SetKey(uint8(code), false)
		}
	}

	frame, err := g.session.Frame()
	if err != nil {
		return err
	}
	if frame.Redraw {
		fb := g.session.Present()
		snapshot.RGBA(g.pixels, &fb, g.session.Palette)
		g.dirty = true
	}
	return nil
}

// Draw scales the CHIP-8 display onto the window
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(internal.ScreenWidth, internal.ScreenHeight)
	}
	if g.dirty {
		g.screen.WritePixels(g.pixels)
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.screen, op)
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(_, _ int) (int, int) {
	return internal.ScreenWidth * g.scale, internal.ScreenHeight * g.scale
}

// Run opens the window and blocks until it is closed. A VM fault is
// returned, closing the window is not an error.
func Run(ctx context.Context, session *runner.Session, title string) error {
	game := NewGame(ctx, session)
	ebiten.SetWindowSize(internal.ScreenWidth*game.scale, internal.ScreenHeight*game.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(internal.TimerFrequency)

	err := ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
