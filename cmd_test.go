package main

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/errors"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/dungeon"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/levelgen"
	"dungeongen/pkg/game/placement"
	"dungeongen/pkg/game/renderer"
)

func TestPrintModules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printModules(&buf, generator.NewRegistry(), levelgen.NewRegistry()))

	out := buf.String()
	assert.Contains(t, out, "Room placers: start-hub")
	assert.Contains(t, out, "Corridor connectors: l-shaped")
	assert.Contains(t, out, "Post-processors: breakables, special-rooms")
}

func TestBuildOrchestratorUnknownModule(t *testing.T) {
	preset := config.DefaultPreset()
	preset.Modules.Connector = "spiral"

	_, err := buildOrchestrator(&preset, renderer.NewTileMap(), placement.NewRecorder(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestOverlaysMarkStartAndSpecials(t *testing.T) {
	res, err := dungeon.GenerateDefault(t.Context(), config.Default())
	require.NoError(t, err)

	marks := overlays(res.Dungeon, res.Placements)
	assert.Equal(t, "@", marks[res.Dungeon.StartCell()])

	var boss, trophy int
	for _, m := range marks {
		switch m {
		case "B":
			boss++
		case "T":
			trophy++
		}
	}
	assert.Equal(t, 1, boss)
	assert.Equal(t, 1, trophy)
	_, ok := marks[world.Point{X: -1, Y: -1}]
	assert.False(t, ok)
}

func TestPrintSummary(t *testing.T) {
	res, err := dungeon.GenerateDefault(t.Context(), config.Default())
	require.NoError(t, err)

	rec := placement.NewRecorder()
	for _, req := range res.Placements {
		require.NoError(t, rec.Place(t.Context(), req))
	}
	breakables := len(rec.ByArchetype(levelgen.DefaultBreakables.Archetype))

	var buf bytes.Buffer
	printSummary(&buf, res.Dungeon, rec)

	assert.Contains(t, buf.String(), "Dungeon "+res.Dungeon.ID)
	assert.Contains(t, buf.String(), fmt.Sprintf("Placements: %d (%d breakables)", len(res.Placements), breakables))
}

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid config", errors.InvalidArgument("width must be at least 8"), 2},
		{"unknown module", errors.NotFoundf("no connector named %q", "spiral"), 2},
		{"missing module", errors.FailedPrecondition("painter is required"), 3},
		{"wrapped precondition", errors.Wrap(errors.FailedPrecondition("theme is required"), "setup failed"), 3},
		{"plain error", stderrors.New("disk full"), 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCode(tc.err))
		})
	}
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(io.Discard, "debug")
	assert.NoError(t, err)

	_, err = newLogger(io.Discard, "loud")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	presetPath := filepath.Join(dir, "small.yaml")
	dumpPath := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(presetPath, []byte("generation:\n  width: 40\n  height: 24\n  room_size_min: 4\n  room_size_max: 6\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{
		"generate",
		"--preset", presetPath,
		"--seed", "cli-test",
		"--rooms", "5",
		"--color", "never",
		"--dump", dumpPath,
	})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 24)
	for _, line := range lines[:24] {
		assert.Len(t, []rune(line), 40)
	}
	assert.Contains(t, out.String(), "Seed: ")
	assert.Contains(t, out.String(), "(string)")
	assert.Contains(t, out.String(), "Map dump written to "+dumpPath)

	_, err := os.Stat(dumpPath)
	assert.NoError(t, err)
}
