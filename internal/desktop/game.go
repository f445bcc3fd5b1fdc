// Package desktop runs a session in an ebiten window.
package desktop

import (
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/spaceshooter/internal/loop"
	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/sprite"
	"github.com/tomz197/spaceshooter/internal/timer"
)

// Debug font glyph size used by ebitenutil.DebugPrintAt.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

const scoreBoxStroke = 5

var (
	colorBackground = color.RGBA{R: 58, G: 46, B: 63, A: 255}
	colorText       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// Game adapts a Session to ebiten.Game. Update steps the session once per
// tick; Draw presents the frame composed by the last Update.
type Game struct {
	session *loop.Session
	clock   timer.Clock
	log     *log.Logger

	started bool
	frame   loop.Frame
	images  map[*sprite.Image]*ebiten.Image
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps s. The session is started on the first Update.
func NewGame(s *loop.Session, clock timer.Clock, logger *log.Logger) *Game {
	if clock == nil {
		clock = timer.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session: s,
		clock:   clock,
		log:     logger,
		images:  make(map[*sprite.Image]*ebiten.Image),
	}
}

// Run opens the window and blocks until it closes.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.ViewWidth, config.ViewHeight)
	ebiten.SetWindowTitle("Space Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// Update implements ebiten.Game. After game over the last frame stays on
// screen until the player quits.
func (g *Game) Update() error {
	now := g.clock.Now()
	if !g.started {
		g.session.Start(now)
		g.started = true
	}

	in := readInput()
	if g.session.State() == loop.StateStopped {
		if in.Quit {
			return ebiten.Termination
		}
		return nil
	}

	g.session.Step(now, in)
	g.frame = g.session.Frame(now)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	for _, v := range g.frame.Visuals {
		src, geo := placement(v)
		op := &ebiten.DrawImageOptions{GeoM: geo}
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.image(src), op)
	}

	score := strconv.Itoa(g.frame.Score)
	text, box := loop.ScoreLayout(g.frame.View, float64(len(score)*glyphWidth), glyphHeight)
	ebitenutil.DebugPrintAt(screen, score, int(text.X), int(text.Y))
	vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), scoreBoxStroke, colorText, true)

	if g.frame.Over {
		msg := "GAME OVER - press Q to quit"
		ebitenutil.DebugPrintAt(screen, msg, (config.ViewWidth-len(msg)*glyphWidth)/2, config.ViewHeight/2)
	}
}

// Layout implements ebiten.Game. The logical view is fixed; ebiten scales it.
func (g *Game) Layout(int, int) (int, int) {
	return config.ViewWidth, config.ViewHeight
}

// image returns the GPU image for im, uploading it on first use.
func (g *Game) image(im *sprite.Image) *ebiten.Image {
	if img, ok := g.images[im]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(toRGBA(im))
	g.images[im] = img
	g.log.Debug("Uploaded sprite", "w", im.W, "h", im.H, "cached", len(g.images)+1)
	return img
}

// placement picks the image to draw and its transform. Rotated bitmaps are
// drawn from their unrotated source with a GPU rotation so edges stay smooth;
// the result is centred on the visual's rectangle either way.
func placement(v object.Visual) (*sprite.Image, ebiten.GeoM) {
	src := v.Image
	angle := 0.0
	if src.Source != nil {
		angle = src.Angle
		src = src.Source
	}

	c := v.Rect.Center()
	var geo ebiten.GeoM
	geo.Translate(-float64(src.W)/2, -float64(src.H)/2)
	// Sprite angles are counter-clockwise on screen; ebiten's y axis points down
	geo.Rotate(-angle * math.Pi / 180)
	geo.Translate(c.X, c.Y)
	return src, geo
}

// toRGBA converts a bitmap to an image with transparent background.
func toRGBA(im *sprite.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, im.W, im.H))
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			if im.Opaque(x, y) {
				out.SetRGBA(x, y, im.Color)
			}
		}
	}
	return out
}
