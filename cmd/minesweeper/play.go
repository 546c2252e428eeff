package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/difficulty"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/ui"
)

var playOptions struct {
	difficulty string
	field      string
	presets    string
	seed       uint64
	verbose    bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Commands, one per line:

	o ROW COL   open a cell
	f ROW COL   toggle a flag
	c ROW COL   chord around a number
	n           new game
	d NAME      switch difficulty
	r           resign
	q           quit
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Setup(log, logging.Options{Development: playOptions.verbose}); err != nil {
			return err
		}
		presets, err := loadPresets(playOptions.presets)
		if err != nil {
			return err
		}
		name := playOptions.difficulty
		if playOptions.field != "" {
			params, err := mines.ParseSeed(playOptions.field)
			if err != nil {
				return err
			}
			custom := difficulty.Preset{
				Name:      "custom",
				Width:     params.Width,
				Height:    params.Height,
				MineCount: params.MineCount,
			}
			presets = append(difficulty.Presets{custom}, presets...)
			name = custom.Name
		}

		page, err := ui.NewPage(ui.PageOptions{
			Presets:    presets,
			Difficulty: name,
			Rand:       mines.NewRand(playOptions.seed),
			Logger:     log,
		})
		if err != nil {
			return err
		}
		return play(cmd.InOrStdin(), cmd.OutOrStdout(), page)
	},
}

func init() {
	f := playCmd.Flags()
	f.StringVarP(&playOptions.difficulty, "difficulty", "d", "", "difficulty preset name")
	f.StringVar(&playOptions.field, "field", "", "custom field as WIDTH:HEIGHT:MINES")
	f.StringVar(&playOptions.presets, "presets", "", "YAML file with difficulty presets")
	f.Uint64Var(&playOptions.seed, "seed", 0, "seed mine placement (0 picks a random seed)")
	f.BoolVarP(&playOptions.verbose, "verbose", "v", false, "debug logging")
}

func play(in io.Reader, out io.Writer, page *ui.Page) error {
	render(out, page)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			return nil
		}
		if line == "" {
			continue
		}
		if err := commands.Execute(page, line); err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		render(out, page)
	}
	return scanner.Err()
}

func render(out io.Writer, page *ui.Page) {
	v := page.View()
	fmt.Fprintf(out, "%s %dx%d  mines left: %d  time: %ds",
		v.Difficulty, v.Width, v.Height, v.MinesLeft, page.Timer.Seconds())
	if best, ok := v.BestResult.(ui.BestResultView); ok && best.Seconds != nil {
		fmt.Fprintf(out, "  best: %ds", *best.Seconds)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, v.Grid.ToString(v.Width))
	if alert, ok := v.Alert.(ui.AlertView); ok && !alert.Hidden {
		fmt.Fprintln(out, alert.Text)
	}
}
