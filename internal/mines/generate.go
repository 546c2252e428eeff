package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// NewRand returns a PCG-backed source for mine placement. A zero seed picks
// a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// PlaceMines lays exactly MineCount mines on distinct cells chosen uniformly
// from every cell except excluded. Cells are drawn at random and skipped when
// already mined or excluded until the quota is met.
func (f *Field) PlaceMines(excluded Point, r *rand.Rand) error {
	if f.placed {
		return ErrMinesPlaced
	}
	if !f.InBounds(excluded) {
		return ErrInvalidCoordinate
	}

	skip := f.index(excluded)
	for placed := 0; placed < f.MineCount; {
		i := r.IntN(len(f.Cells))
		if i == skip || f.Cells[i].Contents.IsMine() {
			continue
		}
		f.Cells[i].Contents = Mine
		placed++
	}
	f.placed = true
	return nil
}

// ComputeNumbers stores, for every cell that is not a mine, the number of
// mines among its neighbours.
func (f *Field) ComputeNumbers() {
	for i := range f.Cells {
		if f.Cells[i].Contents.IsMine() {
			continue
		}
		var n Contents
		for p := range f.Neighbors(f.point(i)) {
			if f.At(p).Contents.IsMine() {
				n++
			}
		}
		f.Cells[i].Contents = n
	}
}
