// Package main is the entry point for the dungeongen command
package main

import (
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"dungeongen/pkg/errors"
)

var rootCmd = &cobra.Command{
	Use:   "dungeongen",
	Short: "Seeded 2D dungeon generator",
	Long:  `dungeongen builds grid dungeons from a seed: a start room, randomly placed rooms, L-shaped corridors and decorations.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, gotext.Get("Error: %v", err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps a failed run to a process status: 2 for bad input,
// 3 for a setup the orchestrator cannot run, 1 for everything else.
func exitCode(err error) int {
	switch {
	case errors.IsInvalidArgument(err), errors.IsNotFound(err):
		return 2
	case errors.IsFailedPrecondition(err):
		return 3
	default:
		return 1
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(modulesCmd)
}
