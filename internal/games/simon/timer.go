package simon

import "time"

// Timer is the single owned timer handle of a session, running on a logical
// clock that only moves when Advance is called.
//
// At most one continuation is pending. Schedule replaces it, so the previous
// continuation is cancelled and can never fire.
type Timer struct {
	now      time.Duration
	deadline time.Duration
	fn       func()
	gen      uint64
}

// Schedule arms the timer to run fn once d has elapsed, cancelling any
// pending continuation. Negative delays are treated as zero.
func (t *Timer) Schedule(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	t.gen++
	t.deadline = t.now + d
	t.fn = fn
}

// Stop cancels the pending continuation.
// Returns true if one was pending.
func (t *Timer) Stop() bool {
	pending := t.fn != nil
	t.fn = nil
	t.gen++
	return pending
}

// Pending reports whether a continuation is armed.
func (t *Timer) Pending() bool {
	return t.fn != nil
}

// Remaining returns the time left until the pending continuation fires.
func (t *Timer) Remaining() time.Duration {
	if t.fn == nil {
		return 0
	}
	return t.deadline - t.now
}

// Now returns the logical clock.
func (t *Timer) Now() time.Duration {
	return t.now
}

// Generation changes every time the timer is re-armed or stopped.
func (t *Timer) Generation() uint64 {
	return t.gen
}

// Advance moves the clock forward by dt and fires every continuation that
// falls due, in order. A continuation may re-arm the timer; the new deadline
// is measured from the moment it fired, not from the end of dt.
// Returns the number of continuations fired.
func (t *Timer) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := t.now + dt
	fired := 0

	for t.fn != nil && t.deadline <= target {
		fn := t.fn
		t.fn = nil
		t.now = t.deadline
		fn()
		fired++
	}

	t.now = target
	return fired
}
