//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const sparsenessStep = 0.05

type statsProvider interface {
	Generation() int
	Population() int
}

// Overlay draws run stats and the parameter snapshot on top of the
// simulation view.
type Overlay struct {
	sim     core.Sim
	visible bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Update handles overlay keys: H toggles visibility, '[' and ']' adjust
// the sparseness tunable and reseed the board.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}

	delta := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		delta = -sparsenessStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		delta = sparsenessStep
	}
	if delta == 0 {
		return
	}

	setter, ok := o.sim.(core.FloatParameterSetter)
	if !ok {
		return
	}
	provider, ok := o.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, p := range provider.Parameters().Params {
		if p.Key != "sparseness" {
			continue
		}
		current, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return
		}
		if setter.SetFloatParameter("sparseness", current+delta) {
			o.sim.Reset(0)
		}
		return
	}
}

// Draw renders the stat lines in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	y := 16

	line := o.sim.Name()
	if stats, ok := o.sim.(statsProvider); ok {
		line = fmt.Sprintf("%s  gen %d  pop %d", line, stats.Generation(), stats.Population())
	}
	text.Draw(screen, line, face, 8, y, color.RGBA{R: 90, G: 220, B: 90, A: 255})

	if provider, ok := o.sim.(core.ParameterProvider); ok {
		for _, p := range provider.Parameters().Params {
			y += 14
			text.Draw(screen, fmt.Sprintf("%s: %s", p.Label, p.Value), face, 8, y,
				color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
}
