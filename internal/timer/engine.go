package timer

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const TickInterval = time.Second

// Hooks are invoked outside the engine lock, so they may call back into the
// engine. OnComplete fires exactly once per finished countdown; Close waits
// for it to return, so OnComplete must not call Close.
type Hooks struct {
	OnComplete       func(State)
	OnSourceAcquired func()
	OnSourceReleased func()
}

type EngineParams struct {
	Clock        Clock
	TickInterval time.Duration
	Hooks        Hooks
}

// Engine owns a timer State. All mutation goes through its command methods.
// While running it holds exactly one tick source, obtained from the Clock.
type Engine struct {
	mu       sync.Mutex
	state    State
	closed   bool
	clock    Clock
	interval time.Duration
	hooks    Hooks

	source     *tickSource
	generation uint64
	completing sync.WaitGroup
}

type tickSource struct {
	generation uint64
	ticker     Ticker
	stop       chan struct{}
	done       chan struct{}
}

func NewEngine(params EngineParams) *Engine {
	clock := params.Clock
	if clock == nil {
		clock = SystemClock
	}
	interval := params.TickInterval
	if interval <= 0 {
		interval = TickInterval
	}

	return &Engine{
		state:    DefaultState(),
		clock:    clock,
		interval: interval,
		hooks:    params.Hooks,
	}
}

func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Start() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return fmt.Errorf("%w: engine closed", ErrInvalidCommand)
	}
	if e.state.Running {
		e.mu.Unlock()
		return nil
	}
	if e.state.Mode == ModeCountdown && e.state.Value == 0 {
		e.mu.Unlock()
		return fmt.Errorf("%w: countdown exhausted, reset or set a duration first", ErrInvalidCommand)
	}

	prev := e.detachSourceLocked()
	e.state.Running = true
	e.attachSourceLocked()
	e.mu.Unlock()

	e.release(prev, true)
	if e.hooks.OnSourceAcquired != nil {
		e.hooks.OnSourceAcquired()
	}
	return nil
}

func (e *Engine) Pause() {
	e.mu.Lock()
	if !e.state.Running {
		e.mu.Unlock()
		return
	}
	e.state.Running = false
	src := e.detachSourceLocked()
	e.mu.Unlock()

	e.release(src, true)
}

func (e *Engine) Reset() {
	e.mu.Lock()
	e.state.Running = false
	if e.state.Mode == ModeStopwatch {
		e.state.Value = 0
	} else {
		e.state.Value = e.state.CountdownDuration
	}
	src := e.detachSourceLocked()
	e.mu.Unlock()

	e.release(src, true)
}

// SetMode switches between stopwatch and countdown and resyncs Value to the
// new mode's starting point. A running timer keeps running on a fresh tick
// source, unless it switches to a countdown of zero seconds, which stops it.
func (e *Engine) SetMode(mode Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: unknown mode [%s]", ErrInvalidConfiguration, mode)
	}

	e.mu.Lock()
	if e.state.Mode == mode {
		e.mu.Unlock()
		return nil
	}

	e.state.Mode = mode
	if mode == ModeStopwatch {
		e.state.Value = 0
	} else {
		e.state.Value = e.state.CountdownDuration
	}

	if !e.state.Running {
		e.mu.Unlock()
		return nil
	}

	prev := e.detachSourceLocked()
	rearmed := e.state.Value > 0 || mode == ModeStopwatch
	if rearmed {
		e.attachSourceLocked()
	} else {
		e.state.Running = false
	}
	e.mu.Unlock()

	e.release(prev, true)
	if rearmed && e.hooks.OnSourceAcquired != nil {
		e.hooks.OnSourceAcquired()
	}
	return nil
}

func (e *Engine) SetCountdownDuration(seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("%w: negative duration %d", ErrInvalidConfiguration, seconds)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Running {
		return fmt.Errorf("%w: cannot change duration while running", ErrInvalidCommand)
	}

	e.state.CountdownDuration = seconds
	if e.state.Mode == ModeCountdown {
		e.state.Value = seconds
	}
	return nil
}

// ApplyPreset configures a paused countdown of the preset's length,
// whatever the engine was doing before.
func (e *Engine) ApplyPreset(p Preset) error {
	if p.Seconds < 0 {
		return fmt.Errorf("%w: negative preset duration %d", ErrInvalidConfiguration, p.Seconds)
	}

	e.mu.Lock()
	src := e.detachSourceLocked()
	e.state = State{
		Mode:              ModeCountdown,
		Value:             p.Seconds,
		Running:           false,
		CountdownDuration: p.Seconds,
	}
	e.mu.Unlock()

	e.release(src, true)
	return nil
}

func (e *Engine) ApplyPresetByName(name string) error {
	p, err := FindPreset(name)
	if err != nil {
		return err
	}
	return e.ApplyPreset(p)
}

// Tick advances the timer by one second. It is what the engine's own tick
// source calls, and does nothing while the timer is paused.
func (e *Engine) Tick() {
	e.tick(0)
}

// Close releases the tick source for good; the engine cannot be started again.
// It returns once a completion hook already in flight has returned.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.state.Running = false
	src := e.detachSourceLocked()
	e.mu.Unlock()

	e.release(src, true)
	e.completing.Wait()
}

// tick with a non-zero generation comes from a tick source and is dropped
// unless that source is still the active one.
func (e *Engine) tick(generation uint64) {
	e.mu.Lock()
	if generation != 0 && (e.source == nil || e.source.generation != generation) {
		e.mu.Unlock()
		return
	}
	if !e.state.Running {
		e.mu.Unlock()
		return
	}

	if e.state.Mode == ModeStopwatch {
		e.state.Value++
		e.mu.Unlock()
		return
	}

	if e.state.Value > 1 {
		e.state.Value--
		e.mu.Unlock()
		return
	}

	e.state.Value = 0
	e.state.Running = false
	src := e.detachSourceLocked()
	completed := e.state
	e.completing.Add(1)
	e.mu.Unlock()
	defer e.completing.Done()

	// may run on the source's own goroutine, so do not wait for it here
	e.release(src, false)

	log.Tracef("countdown of %d seconds completed", completed.CountdownDuration)
	if e.hooks.OnComplete != nil {
		e.hooks.OnComplete(completed)
	}
}

func (e *Engine) attachSourceLocked() {
	e.generation++
	src := &tickSource{
		generation: e.generation,
		ticker:     e.clock.NewTicker(e.interval),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	e.source = src
	go e.run(src)
}

func (e *Engine) detachSourceLocked() *tickSource {
	src := e.source
	if src == nil {
		return nil
	}
	e.source = nil
	src.ticker.Stop()
	close(src.stop)
	return src
}

func (e *Engine) release(src *tickSource, wait bool) {
	if src == nil {
		return
	}
	if wait {
		<-src.done
	}
	if e.hooks.OnSourceReleased != nil {
		e.hooks.OnSourceReleased()
	}
}

func (e *Engine) run(src *tickSource) {
	defer close(src.done)
	for {
		select {
		case <-src.stop:
			return
		case <-src.ticker.C():
			e.tick(src.generation)
		}
	}
}
