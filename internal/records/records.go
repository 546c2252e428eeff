package records

// Tracker keeps the best (lowest) winning time per difficulty. A difficulty
// without a win has no record; 0 seconds is a valid record.
type Tracker struct {
	best map[string]int
}

func NewTracker() *Tracker {
	return &Tracker{best: make(map[string]int)}
}

// Update records a win and reports whether it set a new best time.
func (t *Tracker) Update(difficulty string, seconds int) bool {
	if seconds < 0 {
		return false
	}
	if best, ok := t.best[difficulty]; ok && best <= seconds {
		return false
	}
	t.best[difficulty] = seconds
	return true
}

func (t *Tracker) Best(difficulty string) (seconds int, ok bool) {
	seconds, ok = t.best[difficulty]
	return
}
