package main

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/difficulty"
	"github.com/vancomm/minesweeper/internal/mines"
)

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper server and terminal player",
	Long: `minesweeper serves the browser game and its JSON/WebSocket API,
or plays a game right in the terminal.

Serve the page from ./web on port 8080
	minesweeper serve --static ./web

Play an expert-sized game
	minesweeper play --difficulty hard
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, playCmd)
	mines.Log = log
}

func loadPresets(path string) (difficulty.Presets, error) {
	return difficulty.LoadFile(path)
}
