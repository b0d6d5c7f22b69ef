package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-dozer/config"
	"github.com/lixenwraith/space-dozer/engine"
	"github.com/lixenwraith/space-dozer/entity"
)

// Surface is the slice of the terminal the renderer draws through
type Surface interface {
	Size() (cols, rows int)
	SetCursor(x, y int)
	DrawGlyph(glyph string, style tcell.Style)
	Erase(x, y int)
	Clear()
	Refresh()
}

// Layers lists kinds in draw order; later layers win a shared cell
var Layers = [...]entity.Kind{entity.Rock, entity.Dirt, entity.Warpgate, entity.Alien, entity.Dozer}

type sprite struct {
	glyph string
	style tcell.Style
}

// Renderer draws a world onto a surface
type Renderer struct {
	surface  Surface
	sprites  [len(entity.Kinds)]sprite
	headings [len(entity.Directions)]string
}

// NewRenderer resolves glyphs and colours once from settings
func NewRenderer(surface Surface, settings config.Settings) *Renderer {
	r := &Renderer{surface: surface}
	for _, k := range entity.Kinds {
		style := tcell.StyleDefault
		if name, ok := settings.Colors[k.String()]; ok {
			style = style.Foreground(tcell.GetColor(name))
		}
		r.sprites[k] = sprite{glyph: settings.Glyph(k), style: style}
	}
	for _, d := range entity.Directions {
		if g, ok := settings.HeadingGlyph(d); ok {
			r.headings[d] = g
		}
	}
	return r
}

// Render wipes the surface and redraws every live entity, layer by layer
func (r *Renderer) Render(w *engine.World) {
	r.surface.Clear()

	for _, list := range [][]*entity.Entity{w.Rocks, w.Dirts, w.Warpgates, w.Aliens} {
		for _, e := range list {
			r.draw(e)
		}
	}
	r.draw(w.Dozer)

	r.surface.Refresh()
}

// Erase blanks the cell a dead entity was drawn on
func (r *Renderer) Erase(pos entity.Position) {
	r.surface.Erase(pos.X, pos.Y)
}

func (r *Renderer) draw(e *entity.Entity) {
	if !e.Alive() {
		return
	}
	s := r.sprites[e.Kind]
	glyph := s.glyph
	if e.Kind == entity.Dozer {
		if d, ok := e.Heading(); ok && r.headings[d] != "" {
			glyph = r.headings[d]
		}
	}
	r.surface.SetCursor(e.Pos.X, e.Pos.Y)
	r.surface.DrawGlyph(glyph, s.style)
}
