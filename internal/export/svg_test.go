package export

import (
	"strings"
	"testing"

	"github.com/san-kum/linprimer/internal/scene"
	"github.com/san-kum/linprimer/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.SetColor(0, 0, scene.Red)
	c.SetColor(1, 0, scene.Red)
	c.Text(2, 1, "x", scene.Blue)

	svg := CanvasToSVG(c, Options{Scale: 2})

	for _, want := range []string{
		`width="16" height="16"`,
		`fill="#0a0a0a"`,
		`<g fill="#ff0000">`,
		`fill="#0000ff" font-family="monospace"`,
		`>x</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("svg not closed")
	}
}

func TestCanvasToSVGMonoTheme(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.SetColor(0, 0, scene.Red)

	svg := CanvasToSVG(c, Options{Theme: viz.ThemeRetro, Background: "#000000"})
	if !strings.Contains(svg, `<g fill="#00ff00">`) {
		t.Error("mono theme should paint dots in its primary colour")
	}
	if strings.Contains(svg, "#ff0000") {
		t.Error("mono theme leaked the node colour")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if CanvasToSVG(nil, Options{}) != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestSceneToSVG(t *testing.T) {
	s := scene.New().XAxis().Blankable().Build()
	svg := SceneToSVG(s, 40, Options{})
	if !strings.Contains(svg, `<g fill="#ff0000">`) {
		t.Error("x axis should be drawn in red")
	}
	if !strings.Contains(svg, ">x</text>") {
		t.Error("axis label missing")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("a single point is not a series")
	}

	svg := SeriesToSVG([]float64{0, 1, 0}, 100, 50, "#00ffff")
	if !strings.Contains(svg, `stroke="#00ffff"`) {
		t.Error("stroke colour missing")
	}
	if strings.Count(svg, " L") != 2 {
		t.Errorf("expected 2 line segments in %s", svg)
	}
}
