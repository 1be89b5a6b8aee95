package draw

import (
	"math"
	"sort"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate in world units.
type Point struct {
	X, Y float64
}

// BlockUpperHalf is drawn in every cell: the foreground colour paints the top
// sub-pixel and the background colour the bottom one.
const BlockUpperHalf = '▀'

// Canvas is a colour buffer with 2x vertical resolution using half-block
// characters. It maps world coordinates (y up) onto terminal sub-pixels.
type Canvas struct {
	termWidth      int              // Actual terminal columns
	termHeight     int              // Actual terminal rows
	subPixelHeight int              // termHeight * 2
	pixels         []colorful.Color // Flat slice: [y * termWidth + x]

	// World rectangle shown on the canvas
	left, right float64
	bottom, top float64
	scaleX      float64 // termWidth / world width
	scaleY      float64 // (termHeight*2) / world height

	// Reusable buffers to reduce allocations
	scaledBuf       []Point
	intersectionBuf []float64
	numBuf          [20]byte
}

// NewCanvas creates a canvas for the given terminal dimensions showing the
// world rectangle [left, right] x [bottom, top].
func NewCanvas(termWidth, termHeight int, left, right, bottom, top float64) *Canvas {
	c := &Canvas{left: left, right: right, bottom: bottom, top: top}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the world rectangle.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]colorful.Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / (c.right - c.left)
	c.scaleY = float64(subPixelHeight) / (c.top - c.bottom)
}

// Clear fills every pixel with bg.
func (c *Canvas) Clear(bg colorful.Color) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// toPixel converts world coordinates to (fractional) pixel coordinates.
func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	return (x - c.left) * c.scaleX, (c.top - y) * c.scaleY
}

func (c *Canvas) setPixel(x, y int, col colorful.Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// At returns the pixel colour at sub-pixel (x, y).
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return colorful.Color{}
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills the world-space rectangle. At least one pixel is set so
// small entities never vanish on a small terminal.
func (c *Canvas) FillRect(minX, minY, maxX, maxY float64, col colorful.Color) {
	x0, y0 := c.toPixel(minX, maxY)
	x1, y1 := c.toPixel(maxX, minY)

	px0, px1 := int(math.Floor(x0)), int(math.Ceil(x1))-1
	py0, py1 := int(math.Floor(y0)), int(math.Ceil(y1))-1
	px1 = max(px1, px0)
	py1 = max(py1, py0)

	for y := py0; y <= py1; y++ {
		for x := px0; x <= px1; x++ {
			c.setPixel(x, y, col)
		}
	}
}

// FillPolygon fills a world-space polygon using the scanline algorithm.
func (c *Canvas) FillPolygon(points []Point, col colorful.Color) {
	if len(points) < 3 {
		return
	}

	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i].X, scaled[i].Y = c.toPixel(p.X, p.Y)
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			a, b := intersections[i], intersections[i+1]
			x0, x1 := int(math.Ceil(a-0.5)), int(math.Floor(b-0.5))
			if x1 < x0 {
				// Span narrower than a pixel centre: keep one pixel.
				x0 = int(math.Floor((a + b) / 2))
				x1 = x0
			}
			for x := x0; x <= x1; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// Render writes the canvas using truecolour half-blocks. Colour sequences
// are only emitted when they change from the previous cell.
func (c *Canvas) Render(cw *ChunkWriter) {
	var lastFg, lastBg colorful.Color
	for row := 0; row < c.termHeight; row++ {
		cw.MoveCursor(1, row+1)
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			fg := c.pixels[topOffset+col]
			bg := c.pixels[bottomOffset+col]
			if col == 0 || fg != lastFg {
				c.writeColor(cw, "38", fg)
				lastFg = fg
			}
			if col == 0 || bg != lastBg {
				c.writeColor(cw, "48", bg)
				lastBg = bg
			}
			cw.WriteRune(BlockUpperHalf)
		}
	}
	cw.WriteString(resetColor)
}

const resetColor = "\033[0m"

// writeColor appends an SGR truecolour sequence; layer is "38" (fg) or "48" (bg).
func (c *Canvas) writeColor(cw *ChunkWriter, layer string, col colorful.Color) {
	r, g, b := col.Clamped().RGB255()
	cw.WriteString("\033[")
	cw.WriteString(layer)
	cw.WriteString(";2;")
	cw.Write(strconv.AppendUint(c.numBuf[:0], uint64(r), 10))
	cw.WriteByte(';')
	cw.Write(strconv.AppendUint(c.numBuf[:0], uint64(g), 10))
	cw.WriteByte(';')
	cw.Write(strconv.AppendUint(c.numBuf[:0], uint64(b), 10))
	cw.WriteByte('m')
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// WorldToPixel converts world coordinates to integer sub-pixel coordinates.
func (c *Canvas) WorldToPixel(x, y float64) (px, py int) {
	fx, fy := c.toPixel(x, y)
	return int(math.Floor(fx)), int(math.Floor(fy))
}
