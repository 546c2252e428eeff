package mines

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField(t *testing.T) {
	f, err := NewField(9, 9, 10)
	require.NoError(t, err)

	assert.Len(t, f.Cells, 81)
	assert.False(t, f.Placed())
	for _, c := range f.Cells {
		assert.Equal(t, Cell{Contents: Empty}, c)
	}
	assert.Equal(t, 71, f.SafeCount())
}

func TestNewFieldInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name                     string
		width, height, mineCount int
	}{
		{"zero width", 0, 9, 1},
		{"negative height", 9, -1, 1},
		{"negative mines", 9, 9, -1},
		{"no free cell", 3, 3, 9},
		{"too many mines", 3, 3, 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := NewField(test.width, test.height, test.mineCount)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)

			var ce ConfigurationError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, test.mineCount, ce.MineCount)
		})
	}
}

func TestNeighbors(t *testing.T) {
	f, err := NewField(3, 3, 0)
	require.NoError(t, err)

	corner := slices.Collect(f.Neighbors(Point{0, 0}))
	assert.ElementsMatch(t, []Point{{0, 1}, {1, 0}, {1, 1}}, corner)

	edge := slices.Collect(f.Neighbors(Point{1, 2}))
	assert.ElementsMatch(t, []Point{{0, 1}, {0, 2}, {1, 1}, {2, 1}, {2, 2}}, edge)

	assert.Len(t, slices.Collect(f.Neighbors(Point{1, 1})), 8)
}

func TestNewFieldWithMines(t *testing.T) {
	_, err := NewFieldWithMines(3, 3, Point{0, 0}, Point{0, 0})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.EqualError(t, err, "invalid field configuration: duplicate mine at 0 0")
	var ce ConfigurationError
	assert.False(t, errors.As(err, &ce))

	_, err = NewFieldWithMines(3, 3, Point{5, 5})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	f, err := NewFieldWithMines(3, 3, Point{1, 1})
	require.NoError(t, err)
	assert.True(t, f.Placed())
	assert.Equal(t, 1, f.CountMines())
}

func TestParseSeed(t *testing.T) {
	p, err := ParseSeed("30:16:99")
	require.NoError(t, err)
	assert.Equal(t, Params{Width: 30, Height: 16, MineCount: 99}, *p)
	assert.Equal(t, "30:16:99", p.Seed())

	_, err = ParseSeed("30:16")
	assert.Error(t, err)

	p, err = ParseSeed("3:3:9")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, p)
}
