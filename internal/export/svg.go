// Package export writes rendered scenes and recorded readouts as SVG.
package export

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/san-kum/linprimer/internal/scene"
	"github.com/san-kum/linprimer/internal/viz"
)

const DefaultBackground = "#0a0a0a"

// Options controls SVG output. Scale is the size of one braille dot in
// pixels.
type Options struct {
	Scale      float64
	Background string
	Theme      viz.Theme
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 4
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Theme.Name == "" {
		o.Theme = viz.ThemeChalkboard
	}
	return o
}

// Braille dot-to-bit mapping
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type dot struct{ cx, cy float64 }

// CanvasToSVG converts a braille canvas to SVG. Dots are grouped by the
// colour the theme draws them in; text cells become <text> elements.
func CanvasToSVG(canvas *viz.Canvas, opts Options) string {
	if canvas == nil {
		return ""
	}
	opts = opts.withDefaults()
	scale := opts.Scale

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, opts.Background)

	dots := make(map[string][]dot)
	var labels strings.Builder
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			fill := string(opts.Theme.Tint(canvas.Colors[row][col]))
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			if canvas.IsText(col, row) {
				fmt.Fprintf(&labels, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="%.1f">%s</text>
`, baseX, baseY+scale*3, fill, scale*3, html.EscapeString(string(r)))
				continue
			}
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						dots[fill] = append(dots[fill], dot{
							cx: baseX + float64(dx)*scale + scale/2,
							cy: baseY + float64(dy)*scale + scale/2,
						})
					}
				}
			}
		}
	}

	fills := make([]string, 0, len(dots))
	for fill := range dots {
		fills = append(fills, fill)
	}
	slices.Sort(fills)

	radius := scale * 0.4
	for _, fill := range fills {
		fmt.Fprintf(&sb, "<g fill=%q>\n", fill)
		for _, d := range dots[fill] {
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, d.cx, d.cy, radius)
		}
		sb.WriteString("</g>\n")
	}
	sb.WriteString(labels.String())
	sb.WriteString("</svg>")
	return sb.String()
}

// SceneToSVG renders s onto a canvas cols cells wide and converts it.
func SceneToSVG(s scene.Scene, cols int, opts Options) string {
	c := viz.CanvasFor(s, cols)
	viz.RenderScene(c, s, true)
	return CanvasToSVG(c, opts)
}

// SeriesToSVG plots ys against their index as a single polyline.
func SeriesToSVG(ys []float64, width, height int, strokeColor string) string {
	if len(ys) < 2 {
		return ""
	}

	minX, maxX := 0.0, float64(len(ys)-1)
	minY, maxY := slices.Min(ys), slices.Max(ys)

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX := maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, DefaultBackground, strokeColor)

	for i, y := range ys {
		px := (float64(i) - minX) / rangeX * float64(width)
		py := float64(height) - (y-minY)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", px, py)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", px, py)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
