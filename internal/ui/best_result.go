package ui

import "github.com/vancomm/minesweeper/internal/records"

// BestResult shows the best time for the current difficulty.
type BestResult struct {
	Base

	tracker    *records.Tracker
	difficulty string
}

type BestResultView struct {
	Difficulty string `json:"difficulty"`
	Seconds    *int   `json:"seconds"` // nil until the first win
}

func NewBestResult(tracker *records.Tracker) *BestResult {
	if tracker == nil {
		tracker = records.NewTracker()
	}
	return &BestResult{tracker: tracker}
}

func (b *BestResult) SetDifficulty(name string) {
	b.difficulty = name
}

func (b *BestResult) UpdateBestResult(seconds int) bool {
	return b.tracker.Update(b.difficulty, seconds)
}

func (b *BestResult) View() any {
	v := BestResultView{Difficulty: b.difficulty}
	if s, ok := b.tracker.Best(b.difficulty); ok {
		v.Seconds = &s
	}
	return v
}
