package tui

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/renderer"
)

func TestLinesNorthUp(t *testing.T) {
	g := world.NewGrid(5, 4)
	g.CarveCell(2, 1, 1)

	p := New(false)
	require.NoError(t, p.Paint(context.Background(), g, renderer.Theme{FloorTile: "floor", WallTile: "wall"}, world.Point{}))

	want := []string{
		"     ",
		" ▒▒▒ ",
		" ▒·▒ ",
		" ▒▒▒ ",
	}
	assert.Equal(t, want, p.Lines(nil))
}

func TestOverlaysReplaceGlyphs(t *testing.T) {
	g := world.NewGrid(3, 3)
	g.CarveCell(1, 1, 1)

	p := New(false)
	require.NoError(t, p.Paint(context.Background(), g, renderer.Theme{FloorTile: "#", WallTile: "X"}, world.Point{}))

	lines := p.Lines(map[world.Point]string{{X: 1, Y: 1}: "@"})
	assert.Equal(t, []string{"XXX", "X@X", "XXX"}, lines)

	var buf bytes.Buffer
	require.NoError(t, p.Print(&buf, nil))
	assert.Equal(t, "XXX\nX#X\nXXX\n", buf.String())
}

func TestLinesBeforePaint(t *testing.T) {
	assert.Nil(t, New(false).Lines(nil))
}

func TestGlyphFor(t *testing.T) {
	assert.Equal(t, IconFloor, glyphFor("floor", "?"))
	assert.Equal(t, "#", glyphFor("#", "?"))
	assert.Equal(t, "?", glyphFor("granite", "?"))
}
