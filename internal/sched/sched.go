// Package sched provides a cooperative, single-threaded timer loop driven by a
// virtual clock. Callbacks run only inside Advance, one at a time, in due-time
// order, so they never interleave with the caller's own per-frame work.
package sched

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// Loop owns the virtual clock and the queue of armed timers.
// It is not safe for concurrent use.
type Loop struct {
	now   float64
	seq   uint64
	queue *binaryheap.Heap
}

// entry is a queued arming of a timer. Stale entries (gen mismatch) are
// skipped when popped.
type entry struct {
	timer *Timer
	gen   uint64
	at    float64
	seq   uint64
}

func byDueTime(a, b interface{}) int {
	ea := a.(entry)
	eb := b.(entry)
	switch {
	case ea.at < eb.at:
		return -1
	case ea.at > eb.at:
		return 1
	case ea.seq < eb.seq:
		return -1
	case ea.seq > eb.seq:
		return 1
	default:
		return 0
	}
}

// New creates a loop with its clock at zero.
func New() *Loop {
	return &Loop{queue: binaryheap.NewWith(byDueTime)}
}

// Now returns the current virtual time in seconds.
func (l *Loop) Now() float64 {
	return l.now
}

// AfterFunc arms a one-shot timer that calls fn once delay seconds from now.
func (l *Loop) AfterFunc(delay float64, fn func()) *Timer {
	t := &Timer{loop: l, fn: fn}
	t.arm(delay)
	return t
}

// Advance moves the clock forward by dt, running every timer that falls due
// on the way. While a callback runs, Now reports that timer's due time.
// Timers armed by callbacks fire in the same Advance if they fall due before
// the new time. Returns the number of callbacks run.
func (l *Loop) Advance(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	target := l.now + dt
	fired := 0

	for {
		v, ok := l.queue.Peek()
		if !ok {
			break
		}
		e := v.(entry)
		if e.at > target {
			break
		}
		l.queue.Pop()

		t := e.timer
		if t.gen != e.gen || !t.armed {
			continue
		}
		t.armed = false
		if e.at > l.now {
			l.now = e.at
		}
		t.fn()
		fired++
	}

	l.now = target
	return fired
}

// Timer is a restartable one-shot timer on a Loop.
type Timer struct {
	loop  *Loop
	fn    func()
	gen   uint64
	at    float64
	armed bool
}

func (t *Timer) arm(delay float64) {
	if delay < 0 {
		delay = 0
	}
	t.gen++
	t.armed = true
	t.at = t.loop.now + delay
	t.loop.seq++
	t.loop.queue.Push(entry{timer: t, gen: t.gen, at: t.at, seq: t.loop.seq})
}

// Reset re-arms the timer to fire delay seconds from the loop's current time,
// replacing any pending firing. It is safe to call from the timer's own
// callback.
func (t *Timer) Reset(delay float64) {
	t.arm(delay)
}

// Stop disarms the timer. Returns true if a pending firing was cancelled.
func (t *Timer) Stop() bool {
	if !t.armed {
		return false
	}
	t.armed = false
	t.gen++
	return true
}

// Armed reports whether the timer is waiting to fire.
func (t *Timer) Armed() bool {
	return t.armed
}

// Due returns the virtual time of the pending firing. Meaningless unless Armed.
func (t *Timer) Due() float64 {
	return t.at
}
