// Package lesson holds the primer's content: eleven sections of prose,
// typeset matrices and scenes, some of them animated.
//
// Every animation is built fresh on request, so two viewers of the same
// section never share state.
package lesson

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/san-kum/linprimer/internal/anim"
	"github.com/san-kum/linprimer/internal/scene"
)

var (
	ErrUnknownSection = errors.New("lesson: unknown section")
	ErrNoAnimation    = errors.New("lesson: no such animation")
)

// Readout is one numeric caption printed beside a drawing. Value is the
// number a recorder stores; Text is what the reader sees.
type Readout struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// Frame is what an animation renders on every tick.
type Frame struct {
	Scene    scene.Scene `json:"scene"`
	Readouts []Readout   `json:"readouts,omitempty"`
}

// Player is a running animation. Every anim.Driver rendering a Frame
// satisfies it, whatever its state type.
type Player interface {
	anim.Animator
	Tick() (Frame, error)
	Frame() Frame
	Advance(n int) (Frame, error)
	Reset()
}

// Animation is a recipe for a Player.
type Animation struct {
	Caption string
	build   func() Player
}

// New builds an independent player at tick 0.
func (a Animation) New() Player { return a.build() }

// Section is one chapter of the primer.
type Section struct {
	ID     string
	Title  string
	Blocks []Block

	animations []Animation
}

func newSection(id, title string, blocks ...Block) *Section {
	s := &Section{ID: id, Title: title, Blocks: blocks}
	for i, b := range blocks {
		if a, ok := b.(Animated); ok {
			a.Index = len(s.animations)
			s.Blocks[i] = a
			s.animations = append(s.animations, a.Animation)
		}
	}
	return s
}

func (s *Section) NumAnimations() int { return len(s.animations) }

// Animations lists the section's animations in page order.
func (s *Section) Animations() []Animation {
	return append([]Animation(nil), s.animations...)
}

// Animation builds a fresh player for the i-th animation of the section.
func (s *Section) Animation(i int) (Player, error) {
	if i < 0 || i >= len(s.animations) {
		return nil, fmt.Errorf("%w: %s has %d, asked for %d", ErrNoAnimation, s.ID, len(s.animations), i)
	}
	return s.animations[i].New(), nil
}

// AnimationName is the label hosts and metrics use for an animation.
func AnimationName(sectionID string, i int) string {
	return sectionID + "/" + strconv.Itoa(i)
}

var catalog = sync.OnceValue(func() []*Section {
	return []*Section{
		spacesSection(),
		vectorsSection(),
		matricesSection(),
		independenceSection(),
		subspacesSection(),
		spansSection(),
		basisSection(),
		eroSection(),
		rowSpaceSection(),
		columnSpaceSection(),
		nullSpaceSection(),
	}
})

// Catalog lists every section in reading order.
func Catalog() []*Section {
	return append([]*Section(nil), catalog()...)
}

func Lookup(id string) (*Section, error) {
	for _, s := range catalog() {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
}

// IDs returns the section ids in reading order.
func IDs() []string {
	ids := make([]string, 0, len(catalog()))
	for _, s := range catalog() {
		ids = append(ids, s.ID)
	}
	return ids
}
