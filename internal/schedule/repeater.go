package schedule

import (
	"sync"
	"time"
)

// Repeater fires onTick a fixed number of times, one interval apart, then
// calls onDone once. Each tick is scheduled only after the previous one ran,
// so a slow callback delays the rest of the sequence instead of piling up.
type Repeater struct {
	clock    Clock
	interval time.Duration
	count    int
	onTick   func(n int)
	onDone   func()

	mu      sync.Mutex
	fired   int
	timer   Timer
	running bool
	stopped bool
}

// NewRepeater prepares a repeater; nothing is scheduled until Start.
// onTick receives the 1-based tick number. onDone may be nil.
func NewRepeater(clock Clock, interval time.Duration, count int, onTick func(n int), onDone func()) *Repeater {
	if clock == nil {
		clock = RealClock{}
	}
	return &Repeater{
		clock:    clock,
		interval: interval,
		count:    count,
		onTick:   onTick,
		onDone:   onDone,
	}
}

// Start schedules the first tick one interval from now. Calling Start on a
// repeater that already started does nothing.
func (r *Repeater) Start() {
	r.mu.Lock()
	if r.running || r.stopped || r.fired > 0 {
		r.mu.Unlock()
		return
	}
	if r.count <= 0 {
		r.stopped = true
		r.mu.Unlock()
		if r.onDone != nil {
			r.onDone()
		}
		return
	}
	r.running = true
	r.timer = r.clock.AfterFunc(r.interval, r.fire)
	r.mu.Unlock()
}

func (r *Repeater) fire() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.fired++
	n := r.fired
	last := n >= r.count
	if last {
		r.running = false
		r.timer = nil
	}
	r.mu.Unlock()

	r.onTick(n)

	if last {
		if r.onDone != nil {
			r.onDone()
		}
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		r.timer = r.clock.AfterFunc(r.interval, r.fire)
	}
}

// Stop cancels the remaining ticks; onDone is not called. It reports whether
// any tick was still pending. A tick whose callback is already running when
// Stop is called still completes.
func (r *Repeater) Stop() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	if !r.running {
		return false
	}
	r.running = false
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	return true
}

// Running reports whether ticks are still pending.
func (r *Repeater) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Fired returns how many ticks have run so far.
func (r *Repeater) Fired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fired
}
