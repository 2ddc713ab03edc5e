package lesson

import (
	"github.com/san-kum/linprimer/internal/scene"
	"github.com/san-kum/linprimer/internal/tex"
)

// Summary is the one-line listing of a section.
type Summary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Animations int    `json:"animations"`
}

// Document is a section flattened to plain data.
type Document struct {
	Summary
	Blocks []BlockDocument `json:"blocks"`
}

// BlockDocument carries whichever fields its kind uses. Animated blocks
// carry their first frame.
type BlockDocument struct {
	Kind      BlockKind    `json:"kind"`
	Text      string       `json:"text,omitempty"`
	Math      *tex.Node    `json:"math,omitempty"`
	Scene     *scene.Scene `json:"scene,omitempty"`
	Animation *int         `json:"animation,omitempty"`
	Caption   string       `json:"caption,omitempty"`
	Readouts  []Readout    `json:"readouts,omitempty"`
}

func (s *Section) Summary() Summary {
	return Summary{ID: s.ID, Title: s.Title, Animations: len(s.animations)}
}

func (s *Section) Document() Document {
	doc := Document{Summary: s.Summary(), Blocks: make([]BlockDocument, 0, len(s.Blocks))}
	for _, b := range s.Blocks {
		d := BlockDocument{Kind: b.Kind()}
		switch b := b.(type) {
		case Prose:
			d.Text = b.Text
		case Math:
			n := b.Node
			d.Math = &n
		case Matrices:
			n := b.Node()
			d.Math = &n
		case Static:
			sc := b.Scene
			d.Scene = &sc
		case Animated:
			f := b.New().Frame()
			idx := b.Index
			d.Scene, d.Animation, d.Caption, d.Readouts = &f.Scene, &idx, b.Caption, f.Readouts
		}
		doc.Blocks = append(doc.Blocks, d)
	}
	return doc
}

// Summaries lists every section.
func Summaries() []Summary {
	out := make([]Summary, 0, len(catalog()))
	for _, s := range catalog() {
		out = append(out, s.Summary())
	}
	return out
}
