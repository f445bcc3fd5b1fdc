package draw

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/sprite"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game code draws in logical coordinates; the canvas scales them to terminal pixels.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x], A == 0 means unset

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area inside a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Buffer for batching render output
	numBuf    [20]byte        // Scratch buffer for allocation-free integer formatting
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the terminal dimensions the canvas covers.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Fit sizes the canvas to the largest area of a cols×rows terminal that keeps
// the logical aspect ratio, and centres it. Sub-pixels are treated as square.
func (c *Canvas) Fit(cols, rows int) {
	w := cols
	h := int(math.Floor(float64(w) * c.logicalHeight / c.logicalWidth / 2))
	if h > rows {
		h = rows
		w = int(math.Floor(float64(h) * 2 * c.logicalWidth / c.logicalHeight))
	}
	c.Resize(w, h)
	c.SetOffset((cols-w)/2, (rows-h)/2)
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// pixel returns the pixel at terminal coordinates and whether it is set.
func (c *Canvas) pixel(x, y int) (color.RGBA, bool) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}, false
	}
	p := c.pixels[y*c.termWidth+x]
	return p, p.A != 0
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col color.RGBA) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)), col)
}

// Blit draws im stretched over rect (logical coordinates). Each covered
// terminal pixel samples the nearest image pixel at its centre; transparent
// pixels leave the canvas untouched.
func (c *Canvas) Blit(im *sprite.Image, rect physics.Rect) {
	if im == nil || im.W == 0 || im.H == 0 || rect.W <= 0 || rect.H <= 0 {
		return
	}

	x0 := max(int(math.Floor(rect.X*c.scaleX)), 0)
	x1 := min(int(math.Ceil(rect.Right()*c.scaleX)), c.termWidth)
	y0 := max(int(math.Floor(rect.Y*c.scaleY)), 0)
	y1 := min(int(math.Ceil(rect.Bottom()*c.scaleY)), c.subPixelHeight)

	kx := float64(im.W) / rect.W
	ky := float64(im.H) / rect.H

	for py := y0; py < y1; py++ {
		ly := (float64(py)+0.5)/c.scaleY - rect.Y
		sy := int(math.Floor(ly * ky))
		for px := x0; px < x1; px++ {
			lx := (float64(px)+0.5)/c.scaleX - rect.X
			sx := int(math.Floor(lx * kx))
			if im.Opaque(sx, sy) {
				c.setPixel(px, py, im.Color)
			}
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 physics.Vec, col color.RGBA) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// StrokeRect outlines rect (logical coordinates).
func (c *Canvas) StrokeRect(r physics.Rect, col color.RGBA) {
	tl := physics.Vec{X: r.X, Y: r.Y}
	tr := physics.Vec{X: r.Right(), Y: r.Y}
	br := physics.Vec{X: r.Right(), Y: r.Bottom()}
	bl := physics.Vec{X: r.X, Y: r.Bottom()}
	c.DrawLine(tl, tr, col)
	c.DrawLine(tr, br, col)
	c.DrawLine(br, bl, col)
	c.DrawLine(bl, tl, col)
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to w using half-block characters in 24-bit colour.
// Empty cells are skipped, so the caller clears the screen first.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12) // Estimate ~12 bytes per cell

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			top, hasTop := c.pixel(col, row*2)
			bottom, hasBottom := c.pixel(col, row*2+1)

			switch {
			case hasTop && hasBottom && top == bottom:
				c.cell(row, col, BlockFull, top, nil)
			case hasTop && hasBottom:
				c.cell(row, col, BlockUpperHalf, top, &bottom)
			case hasTop:
				c.cell(row, col, BlockUpperHalf, top, nil)
			case hasBottom:
				c.cell(row, col, BlockLowerHalf, bottom, nil)
			}
		}
	}
	c.renderBuf.WriteString("\033[0m")

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// cell appends one positioned, coloured character. bg is optional.
func (c *Canvas) cell(row, col int, ch rune, fg color.RGBA, bg *color.RGBA) {
	b := &c.renderBuf
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
	b.WriteByte('H')
	c.writeColor("38", fg)
	if bg != nil {
		c.writeColor("48", *bg)
	} else {
		b.WriteString("\033[49m")
	}
	b.WriteRune(ch)
}

func (c *Canvas) writeColor(layer string, col color.RGBA) {
	b := &c.renderBuf
	b.WriteString("\033[")
	b.WriteString(layer)
	b.WriteString(";2;")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col.R), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col.G), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col.B), 10))
	b.WriteByte('m')
}

// RenderBorder draws a box border around the canvas area when the terminal
// is larger than the canvas on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder

	if hasV {
		line := strings.Repeat("─", c.termWidth)
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			// No horizontal borders, side bars span full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// CellSize returns the logical size of one terminal cell.
func (c *Canvas) CellSize() (w, h float64) {
	if c.scaleX == 0 || c.scaleY == 0 {
		return 0, 0
	}
	return 1 / c.scaleX, 2 / c.scaleY
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
