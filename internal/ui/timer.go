package ui

import "time"

type Clock func() time.Time

// Timer counts whole seconds of play between Start and Stop.
type Timer struct {
	Base

	now     Clock
	started time.Time
	elapsed time.Duration
	running bool
}

type TimerView struct {
	Seconds int  `json:"seconds"`
	Running bool `json:"running"`
}

func NewTimer(now Clock) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now}
}

func (t *Timer) Start() {
	if t.running {
		return
	}
	t.started = t.now()
	t.running = true
}

func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.elapsed += t.now().Sub(t.started)
	t.running = false
}

func (t *Timer) Clean() {
	t.elapsed = 0
	if t.running {
		t.started = t.now()
	}
}

func (t *Timer) Running() bool {
	return t.running
}

func (t *Timer) Seconds() int {
	d := t.elapsed
	if t.running {
		d += t.now().Sub(t.started)
	}
	return int(d / time.Second)
}

func (t *Timer) View() any {
	return TimerView{Seconds: t.Seconds(), Running: t.running}
}
