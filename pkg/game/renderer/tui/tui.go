// Package tui renders a layout as text, optionally coloured for terminals.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/gookit/color"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/renderer"
)

// Icons used when a theme tile has no glyph of its own
const (
	IconFloor = "·"
	IconWall  = "▒"
	IconVoid  = " "
)

// Glyphs for well-known theme tiles
var tileGlyphs = map[string]string{
	"floor": IconFloor,
	"wall":  IconWall,
	"stone": "░",
	"brick": "▓",
}

// Painter keeps the last painted layout and prints it as text, north up.
// Overlays replace the glyph at a grid cell, e.g. to show the start or markers.
type Painter struct {
	Color bool

	view  world.View
	theme renderer.Theme

	colorFloor   color.Style
	colorWall    color.Style
	colorOverlay color.Style
}

// New creates a text painter
func New(useColor bool) *Painter {
	return &Painter{
		Color:        useColor,
		colorFloor:   color.Style{color.FgGray},
		colorWall:    color.Style{color.FgBlue},
		colorOverlay: color.Style{color.FgGreen, color.OpBold},
	}
}

// Paint remembers the layout for later printing. The offset does not affect
// text output, which is always in grid coordinates.
func (p *Painter) Paint(_ context.Context, view world.View, theme renderer.Theme, _ world.Point) error {
	p.view = view
	p.theme = theme
	return nil
}

// Lines renders the painted layout, one string per row, top row first
func (p *Painter) Lines(overlays map[world.Point]string) []string {
	if p.view == nil {
		return nil
	}

	lines := make([]string, 0, p.view.Height())
	for y := p.view.Height() - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < p.view.Width(); x++ {
			if icon, ok := overlays[world.Point{X: x, Y: y}]; ok {
				sb.WriteString(p.style(p.colorOverlay, icon))
				continue
			}
			sb.WriteString(p.glyph(renderer.Classify(p.view, x, y)))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Print writes the rendered layout to w
func (p *Painter) Print(w io.Writer, overlays map[world.Point]string) error {
	for _, line := range p.Lines(overlays) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (p *Painter) glyph(kind renderer.TileKind) string {
	switch kind {
	case renderer.TileFloor:
		return p.style(p.colorFloor, glyphFor(p.theme.FloorTile, IconFloor))
	case renderer.TileWall:
		return p.style(p.colorWall, glyphFor(p.theme.WallTile, IconWall))
	default:
		return IconVoid
	}
}

func (p *Painter) style(s color.Style, text string) string {
	if !p.Color {
		return text
	}
	return s.Sprint(text)
}

// glyphFor maps a theme tile to a glyph. Single character tiles are used as is.
func glyphFor(tile, fallback string) string {
	if g, ok := tileGlyphs[tile]; ok {
		return g
	}
	if len([]rune(tile)) == 1 {
		return tile
	}
	return fallback
}
