// Package render presents session frames on a terminal.
package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/tomz197/spaceshooter/internal/draw"
	"github.com/tomz197/spaceshooter/internal/loop"
	"github.com/tomz197/spaceshooter/internal/loop/config"
)

// Render resolution limits. Larger terminals get a centred, bordered canvas.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 84
)

const gameOverText = "GAME OVER"

var colorText = color.RGBA{R: 240, G: 240, B: 240, A: 255}

// Options configures a Terminal.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Default: draw.DefaultTermSizeFunc
}

// Terminal draws frames with half-block characters. It implements loop.Renderer.
type Terminal struct {
	w        io.Writer
	canvas   *draw.Canvas
	out      *draw.ChunkWriter
	sizeFunc draw.TermSizeFunc

	cols, rows int // Last seen terminal size
}

var _ loop.Renderer = (*Terminal)(nil)

// NewTerminal creates a renderer writing to w.
func NewTerminal(w io.Writer, opts Options) *Terminal {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	return &Terminal{
		w:        w,
		canvas:   draw.NewScaledCanvas(0, 0, config.ViewWidth, config.ViewHeight),
		out:      draw.NewChunkWriter(w, 0, 0),
		sizeFunc: sizeFunc,
	}
}

// Begin prepares the terminal: alternate screen, hidden cursor.
func (t *Terminal) Begin() {
	draw.EnterAltScreen(t.w)
	draw.HideCursor(t.w)
	draw.ClearScreen(t.w)
}

// End restores the terminal.
func (t *Terminal) End() {
	draw.ClearScreen(t.w)
	draw.ShowCursor(t.w)
	draw.ExitAltScreen(t.w)
}

// Present draws f and flushes it in one write burst.
func (t *Terminal) Present(f loop.Frame) error {
	if err := t.updateScreen(); err != nil {
		return err
	}

	t.canvas.Clear()
	for _, v := range f.Visuals {
		t.canvas.Blit(v.Image, v.Rect)
	}

	score := strconv.Itoa(f.Score)
	cellW, cellH := t.canvas.CellSize()
	text, box := loop.ScoreLayout(f.View, float64(len(score))*cellW, cellH)
	t.canvas.StrokeRect(box, colorText)

	draw.ClearScreen(t.out)
	if err := t.canvas.RenderBorder(t.out); err != nil {
		return err
	}
	if err := t.canvas.Render(t.out); err != nil {
		return err
	}

	// Text overlays go after the canvas so they sit on top
	t.out.SetColor(colorText)
	col, row := t.canvas.LogicalToTerminal(text.X, text.Y)
	t.out.WriteAt(col, row, score)
	if f.Over {
		col, row = t.canvas.LogicalToTerminal(f.View.W/2, f.View.H/2)
		t.out.WriteAt(col-len(gameOverText)/2, row, gameOverText)
	}
	t.out.ResetColor()

	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// updateScreen tracks terminal resizes, clamping to the max render resolution.
func (t *Terminal) updateScreen() error {
	cols, rows, err := t.sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if cols == t.cols && rows == t.rows {
		return nil
	}
	t.cols, t.rows = cols, rows

	t.canvas.Fit(min(cols, MaxTermWidth), min(rows, MaxTermHeight))
	offCol := t.canvas.OffsetCol() + (cols-min(cols, MaxTermWidth))/2
	offRow := t.canvas.OffsetRow() + (rows-min(rows, MaxTermHeight))/2
	t.canvas.SetOffset(offCol, offRow)
	t.out.SetOffset(offCol, offRow)
	return nil
}
