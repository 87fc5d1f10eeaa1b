package simon

import (
	"testing"
	"time"
)

func TestPlaybackPulsesInOrder(t *testing.T) {
	tm := &Timer{}
	p := NewPlayback(tm, 800*time.Millisecond, 100*time.Millisecond)
	seq := []Color{Red, Red, Blue}

	done := false
	p.Start(seq, func() { done = true })

	tests := []struct {
		at  time.Duration
		lit []Color
	}{
		{0, []Color{Red}},
		{799 * time.Millisecond, []Color{Red}},
		{800 * time.Millisecond, nil}, // gap between the two reds
		{900 * time.Millisecond, []Color{Red}},
		{1700 * time.Millisecond, nil},
		{1800 * time.Millisecond, []Color{Blue}},
	}

	var now time.Duration
	for _, tc := range tests {
		tm.Advance(tc.at - now)
		now = tc.at
		lit := p.Lit()
		if len(lit) != len(tc.lit) || (len(lit) == 1 && lit[0] != tc.lit[0]) {
			t.Errorf("at %v lit = %v, expected %v", tc.at, lit, tc.lit)
		}
	}

	if done {
		t.Fatal("playback finished before the last pulse released")
	}
	tm.Advance(p.Duration(len(seq)) - now)
	if !done || p.Active() {
		t.Errorf("playback should be done at %v", p.Duration(len(seq)))
	}
	if len(p.Lit()) != 0 {
		t.Errorf("nothing should be lit after playback, got %v", p.Lit())
	}
}

func TestPlaybackDuration(t *testing.T) {
	p := NewPlayback(&Timer{}, 800*time.Millisecond, 0)
	if p.Duration(0) != 0 {
		t.Error("empty sequence should take no time")
	}
	if p.Duration(5) != 4*time.Second {
		t.Errorf("Duration(5) = %v, expected 800ms x 5", p.Duration(5))
	}
}

func TestPlaybackRestartCancelsOutstandingPulse(t *testing.T) {
	tm := &Timer{}
	p := NewPlayback(tm, 800*time.Millisecond, 0)

	firstDone := false
	p.Start([]Color{Red, Green}, func() { firstDone = true })
	tm.Advance(400 * time.Millisecond)

	secondDone := false
	p.Start([]Color{Blue}, func() { secondDone = true })

	// The first run's release was due at 800ms; it must not touch the new run.
	tm.Advance(500 * time.Millisecond)
	if lit := p.Lit(); len(lit) != 1 || lit[0] != Blue {
		t.Errorf("lit = %v, expected [blue]", lit)
	}
	if p.Index() != 0 {
		t.Errorf("Index() = %d, expected 0", p.Index())
	}

	tm.Advance(300 * time.Millisecond)
	if firstDone {
		t.Error("cancelled playback reported completion")
	}
	if !secondDone {
		t.Error("new playback should complete 800ms after it started")
	}
}

func TestPlaybackStop(t *testing.T) {
	tm := &Timer{}
	p := NewPlayback(tm, 800*time.Millisecond, 0)

	done := false
	p.Start([]Color{Yellow}, func() { done = true })
	p.Stop()
	tm.Advance(time.Second)

	if done || p.Active() || len(p.Lit()) != 0 {
		t.Errorf("stopped playback still running: done=%v active=%v lit=%v", done, p.Active(), p.Lit())
	}
	if tm.Pending() {
		t.Error("Stop() should cancel the pending pulse")
	}
}
