// Package picker implements the random selection engine: it owns the raw
// input text and the selection state machine, and drives the cycling
// animation that precedes every pick.
//
//	Idle --Pick(nonempty)--> Animating --(ticks elapse)--> Resolved
//	Idle --Pick(empty)--> EmptyInputError
//	Resolved/EmptyInputError --Pick--> Animating|EmptyInputError
//	any --Reset--> Idle
//	any --LoadSample--> Idle (with the sample list as input)
package picker

import (
	"math/rand/v2"
	"sync"
	"time"

	"randompick/internal/errors"
	"randompick/internal/locale"
	"randompick/internal/log"
	"randompick/internal/schedule"

	"github.com/google/uuid"
)

// Defaults for the animation.
const (
	DefaultTicks    = 20
	DefaultInterval = 100 * time.Millisecond
)

// ErrAnimating is returned by Pick while a round is still cycling.
var ErrAnimating = errors.NewKind("pick already in progress", errors.PickInProgress)

// State is the selection state.
type State int

const (
	Idle State = iota
	Animating
	Resolved
	EmptyInputError
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	case Resolved:
		return "resolved"
	case EmptyInputError:
		return "empty_input"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of everything a front end needs to render.
type Snapshot struct {
	State State
	Input string
	// Display is the current candidate while Animating, the final pick when
	// Resolved, the empty-input message on EmptyInputError and "" when Idle.
	Display string
	Tick    int
	Ticks   int
	Items   int
	Round   string
}

// Source is the subset of *rand.Rand the engine draws from.
type Source interface {
	IntN(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the real clock, typically with a schedule.FakeClock.
func WithClock(c schedule.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithSource replaces the time-seeded PCG source.
func WithSource(s Source) Option {
	return func(e *Engine) { e.rng = s }
}

// WithTicks sets how many candidates are shown before the final pick.
func WithTicks(n int) Option {
	return func(e *Engine) { e.ticks = n }
}

// WithInterval sets the delay between candidates.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = d }
}

// WithExclude drops items matching any of the glob patterns before picking.
func WithExclude(patterns ...string) Option {
	return func(e *Engine) { e.excludePatterns = patterns }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine is safe for concurrent use. Ticks arrive on timer goroutines;
// observers are called outside the state lock, one change at a time, in the
// order the changes happened.
type Engine struct {
	loc             *locale.Locale
	clock           schedule.Clock
	rng             Source
	ticks           int
	interval        time.Duration
	excludePatterns []string
	exclude         *Exclusion
	logger          *log.Logger

	mu       sync.Mutex
	input    string
	state    State
	display  string
	tick     int
	round    string
	items    []string
	repeater *schedule.Repeater

	notifyMu  sync.Mutex
	nextObsID int
	observers []observer
}

type observer struct {
	id int
	fn func(Snapshot)
}

// New creates an engine in the Idle state with empty input.
func New(loc *locale.Locale, opts ...Option) (*Engine, error) {
	if loc == nil {
		return nil, errors.NewKind("picker: nil locale", errors.InvalidConfig)
	}
	now := uint64(time.Now().UnixNano())
	e := &Engine{
		loc:      loc,
		clock:    schedule.RealClock{},
		rng:      rand.New(rand.NewPCG(now, now>>32)),
		ticks:    DefaultTicks,
		interval: DefaultInterval,
		logger:   log.LogWithFields(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.ticks < 1 {
		return nil, errors.NewConfigError("ticks must be >= 1", "ticks", errors.InvalidConfig, nil)
	}
	if e.interval <= 0 {
		return nil, errors.NewConfigError("interval must be > 0", "interval", errors.InvalidConfig, nil)
	}
	ex, err := NewExclusion(e.excludePatterns...)
	if err != nil {
		return nil, err
	}
	e.exclude = ex
	return e, nil
}

// Locale returns the string set the engine was built with.
func (e *Engine) Locale() *locale.Locale {
	return e.loc
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Subscribe registers fn to be called after every state change and returns
// a function that removes it. fn runs while the engine serializes
// notifications, so it must not call back into the engine; hand the
// snapshot off instead.
func (e *Engine) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()
	e.nextObsID++
	id := e.nextObsID
	e.observers = append(e.observers, observer{id: id, fn: fn})
	return func() {
		e.notifyMu.Lock()
		defer e.notifyMu.Unlock()
		for i, o := range e.observers {
			if o.id == id {
				e.observers = append(e.observers[:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

// SetInput replaces the raw input text. It never changes the selection
// state, and an animating round keeps the items it started with.
func (e *Engine) SetInput(text string) {
	e.mu.Lock()
	if e.input == text {
		e.mu.Unlock()
		return
	}
	e.input = text
	e.publishLocked()
}

// LoadSample replaces the input with the locale's sample list and clears
// the selection.
func (e *Engine) LoadSample() {
	e.mu.Lock()
	e.clearLocked()
	e.input = e.loc.SampleText()
	e.logger.With(log.F("items", len(e.loc.Samples))).Debug("sample list loaded")
	e.publishLocked()
}

// Reset clears the input and the selection.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.clearLocked()
	e.input = ""
	e.logger.Debug("reset")
	e.publishLocked()
}

// Close stops an animating round, leaving the engine Idle.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.state != Animating {
		e.mu.Unlock()
		return
	}
	e.clearLocked()
	e.publishLocked()
}

// Pick starts a round over the current input. With no usable items it moves
// straight to EmptyInputError. While a round is animating it returns
// ErrAnimating and changes nothing.
func (e *Engine) Pick() error {
	e.mu.Lock()
	if e.state == Animating {
		e.mu.Unlock()
		return ErrAnimating
	}

	items := e.exclude.Apply(ParseItems(e.input))
	if len(items) == 0 {
		e.state = EmptyInputError
		e.display = e.loc.Strings.EmptyInput
		e.tick = 0
		e.round = ""
		e.items = nil
		e.logger.Debug("pick on empty input")
		e.publishLocked()
		return nil
	}

	round := uuid.NewString()
	e.state = Animating
	e.items = items
	e.round = round
	e.tick = 0
	rep := schedule.NewRepeater(e.clock, e.interval, e.ticks,
		func(n int) { e.advance(round, n) },
		func() { e.resolve(round) },
	)
	e.repeater = rep
	e.logger.With(log.F("round", round), log.F("items", len(items)), log.F("ticks", e.ticks)).Debug("pick started")
	e.publishLocked()

	rep.Start()
	return nil
}

func (e *Engine) advance(round string, n int) {
	e.mu.Lock()
	if e.round != round || e.state != Animating {
		e.mu.Unlock()
		return
	}
	e.tick = n
	e.display = e.items[e.rng.IntN(len(e.items))]
	e.publishLocked()
}

func (e *Engine) resolve(round string) {
	e.mu.Lock()
	if e.round != round || e.state != Animating {
		e.mu.Unlock()
		return
	}
	e.state = Resolved
	e.display = e.items[e.rng.IntN(len(e.items))]
	e.repeater = nil
	e.logger.With(log.F("round", round), log.F("pick", e.display)).Debug("pick resolved")
	e.publishLocked()
}

// clearLocked stops any running round and returns to Idle.
func (e *Engine) clearLocked() {
	if e.repeater != nil {
		if e.repeater.Stop() {
			e.logger.With(log.F("round", e.round), log.F("tick", e.tick)).Debug("round cancelled")
		}
		e.repeater = nil
	}
	e.state = Idle
	e.display = ""
	e.tick = 0
	e.round = ""
	e.items = nil
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		State:   e.state,
		Input:   e.input,
		Display: e.display,
		Tick:    e.tick,
		Ticks:   e.ticks,
		Items:   len(e.items),
		Round:   e.round,
	}
}

// publishLocked must be called with e.mu held; it releases it. notifyMu is
// taken before mu is released so notifications keep the order of changes.
func (e *Engine) publishLocked() {
	snap := e.snapshotLocked()
	e.notifyMu.Lock()
	e.mu.Unlock()
	defer e.notifyMu.Unlock()
	for _, o := range e.observers {
		o.fn(snap)
	}
}
