package difficulty_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/difficulty"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestDefaults(t *testing.T) {
	ps := difficulty.Defaults()
	require.NoError(t, ps.Validate())

	assert.Equal(t, []string{"easy", "normal", "hard"}, ps.Names())
	assert.Equal(t, difficulty.Easy, ps.Default())

	hard, err := ps.Lookup("hard")
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Width: 30, Height: 16, MineCount: 99}, hard.Params())

	normal, err := ps.Lookup("normal")
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Width: 16, Height: 16, MineCount: 40}, normal.Params())

	_, err = ps.Lookup("insane")
	assert.ErrorIs(t, err, difficulty.ErrUnknown)
}

func TestLoad(t *testing.T) {
	ps, err := difficulty.Load(strings.NewReader(`
presets:
  - name: tiny
    width: 5
    height: 5
    mine_count: 3
  - name: easy
    width: 9
    height: 9
    mine_count: 10
`))
	require.NoError(t, err)

	assert.Equal(t, difficulty.Presets{
		{Name: "tiny", Width: 5, Height: 5, MineCount: 3},
		difficulty.Easy,
	}, ps)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "presets: []"},
		{"too many mines", "presets:\n  - {name: x, width: 2, height: 2, mine_count: 4}"},
		{"duplicate", "presets:\n  - {name: x, width: 2, height: 2, mine_count: 1}\n  - {name: x, width: 3, height: 3, mine_count: 1}"},
		{"no name", "presets:\n  - {width: 2, height: 2, mine_count: 1}"},
		{"malformed", "presets: {"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := difficulty.Load(strings.NewReader(test.yaml))
			assert.Error(t, err)
		})
	}

	_, err := difficulty.Load(strings.NewReader(tests[1].yaml))
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestLoadFile(t *testing.T) {
	ps, err := difficulty.LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, difficulty.Defaults(), ps)

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"presets:\n  - {name: big, width: 50, height: 50, mine_count: 500}\n",
	), 0o644))

	ps, err = difficulty.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"big"}, ps.Names())

	_, err = difficulty.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
