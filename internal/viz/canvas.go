package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/linprimer/internal/scene"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const blank = rune(0x2800)

var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells. Each cell remembers the colour of the
// last dot set in it, and may instead hold a text glyph (axis labels).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]scene.Color
	text          [][]bool
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]scene.Color, h),
		text:   make([][]bool, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]scene.Color, w)
		c.text[i] = make([]bool, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// CanvasFor sizes a canvas of cols cells so that its braille pixels keep
// the scene's aspect ratio.
func CanvasFor(s scene.Scene, cols int) *Canvas {
	rows := cols / 2
	if s.Width > 0 && s.Height > 0 {
		rows = cols * s.Height / (2 * s.Width)
	}
	return NewCanvas(cols, rows)
}

// PixelSize is the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set sets a pixel at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) { c.SetColor(x, y, c.colorAt(x, y)) }

func (c *Canvas) colorAt(x, y int) scene.Color {
	if row, col, ok := c.cell(x, y); ok {
		return c.Colors[row][col]
	}
	return 0
}

func (c *Canvas) SetColor(x, y int, color scene.Color) {
	row, col, ok := c.cell(x, y)
	if !ok || c.text[row][col] {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = color
}

func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok || c.text[row][col] {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Text writes s starting at cell (col, row). Dots drawn later do not
// overwrite it.
func (c *Canvas) Text(col, row int, s string, color scene.Color) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.Width {
			c.Grid[row][col] = r
			c.Colors[row][col] = color
			c.text[row][col] = true
		}
		col++
	}
}

// IsText reports whether cell (col, row) holds a text glyph rather than dots.
func (c *Canvas) IsText(col, row int) bool {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return false
	}
	return c.text[row][col]
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = 0
			c.text[i][j] = false
		}
	}
}

// Empty reports whether nothing has been drawn.
func (c *Canvas) Empty() bool {
	for i := range c.Grid {
		for _, r := range c.Grid[i] {
			if r != blank {
				return false
			}
		}
	}
	return true
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color scene.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetColor(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// String returns the canvas without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render returns the canvas coloured through the theme. Runs of cells
// sharing a colour are styled together.
func (c *Canvas) Render(t Theme) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j] == c.Colors[i][start] {
				continue
			}
			run := string(row[start:j])
			if c.Colors[i][start] == 0 {
				b.WriteString(run)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(t.Tint(c.Colors[i][start])).Render(run))
			}
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
