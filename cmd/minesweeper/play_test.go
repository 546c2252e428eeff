package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/difficulty"
	"github.com/vancomm/minesweeper/internal/ui"
)

func newTestPage(t *testing.T) *ui.Page {
	t.Helper()
	logger, _ := test.NewNullLogger()
	page, err := ui.NewPage(ui.PageOptions{
		Presets: difficulty.Presets{{Name: "tiny", Width: 3, Height: 2, MineCount: 1}},
		Rand:    rand.New(rand.NewPCG(1, 2)),
		Logger:  logger,
	})
	require.NoError(t, err)
	return page
}

func TestPlay(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("f 1 2\n\nbogus\nr\nq\no 0 0\n")

	require.NoError(t, play(in, &out, newTestPage(t)))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "tiny 3x2  mines left: 1  time: 0s\n# # # \n# # # \n"), text)
	assert.Contains(t, text, "# # F \n")
	assert.Contains(t, text, `error: unknown command: "bogus"`)
	assert.Contains(t, text, "Game over\n")
	assert.Equal(t, 3, strings.Count(text, "tiny 3x2"), "commands after q are not run")
}

func TestPlayEOF(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, play(strings.NewReader("o 0 0"), &out, newTestPage(t)))
	assert.Equal(t, 2, strings.Count(out.String(), "tiny 3x2"))
}
