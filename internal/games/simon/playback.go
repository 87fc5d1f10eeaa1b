package simon

import "time"

// Playback replays a sequence one pad at a time: light, hold, release,
// optional dark gap, next pad. Pulse i+1 starts only after pulse i released.
type Playback struct {
	timer *Timer
	hold  time.Duration
	gap   time.Duration

	seq    []Color
	index  int
	lit    []Color
	active bool
	onDone func()

	// run identifies the current replay; continuations from an older run
	// are dropped.
	run uint64
}

// NewPlayback creates a playback driven by timer.
func NewPlayback(timer *Timer, hold, gap time.Duration) *Playback {
	return &Playback{
		timer: timer,
		hold:  hold,
		gap:   gap,
	}
}

// Start replays seq from the beginning and calls onDone after the last pulse.
// Any replay in progress is cancelled first.
func (p *Playback) Start(seq []Color, onDone func()) {
	p.Stop()
	p.run++
	p.seq = append([]Color(nil), seq...)
	p.index = 0
	p.active = true
	p.onDone = onDone
	p.pulse()
}

// Stop cancels the replay. Nothing scheduled by it will fire afterwards.
func (p *Playback) Stop() {
	if p.active {
		p.timer.Stop()
	}
	p.run++
	p.active = false
	p.lit = nil
	p.onDone = nil
}

// Active reports whether a replay is in progress.
func (p *Playback) Active() bool {
	return p.active
}

// Index returns the position of the pulse being played.
func (p *Playback) Index() int {
	return p.index
}

// Lit returns the colors currently lit.
func (p *Playback) Lit() []Color {
	return append([]Color(nil), p.lit...)
}

// Duration returns the total replay time for a sequence of length n.
func (p *Playback) Duration(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n)*p.hold + time.Duration(n-1)*p.gap
}

func (p *Playback) pulse() {
	if p.index >= len(p.seq) {
		p.finish()
		return
	}
	p.lit = append(p.lit, p.seq[p.index])
	p.schedule(p.hold, p.release)
}

func (p *Playback) release() {
	c := p.seq[p.index]
	kept := p.lit[:0]
	for _, v := range p.lit {
		if v != c {
			kept = append(kept, v)
		}
	}
	p.lit = kept
	p.index++

	if p.gap > 0 && p.index < len(p.seq) {
		p.schedule(p.gap, p.pulse)
		return
	}
	p.pulse()
}

func (p *Playback) finish() {
	done := p.onDone
	p.active = false
	p.lit = nil
	p.onDone = nil
	if done != nil {
		done()
	}
}

func (p *Playback) schedule(d time.Duration, step func()) {
	run := p.run
	p.timer.Schedule(d, func() {
		if run != p.run {
			return
		}
		step()
	})
}
