package timer

import (
	"sync"
	"time"
)

// Ticker is the tick source handed out by a Clock.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock lets the engine obtain tick sources without depending on wall time,
// so tests can drive the scheduler deterministically.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the default Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (st *systemTicker) C() <-chan time.Time {
	return st.t.C
}

func (st *systemTicker) Stop() {
	st.t.Stop()
}

// FakeClock is a manually advanced Clock. Advance fires every live ticker
// whose period elapsed, delivering ticks one by one.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (fc *FakeClock) Now() time.Time {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.now
}

func (fc *FakeClock) NewTicker(d time.Duration) Ticker {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	ft := &fakeTicker{
		c:       make(chan time.Time),
		stopped: make(chan struct{}),
		period:  d,
		next:    fc.now.Add(d),
	}
	fc.tickers = append(fc.tickers, ft)
	return ft
}

// ActiveTickers returns the number of tickers not stopped yet.
func (fc *FakeClock) ActiveTickers() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	active := 0
	for _, ft := range fc.tickers {
		if !ft.isStopped() {
			active++
		}
	}
	return active
}

// Advance moves the clock forward by d. Each due tick is sent synchronously,
// so it returns only after every tick was received or its ticker stopped.
func (fc *FakeClock) Advance(d time.Duration) {
	fc.mu.Lock()
	target := fc.now.Add(d)
	fc.mu.Unlock()

	for {
		fc.mu.Lock()
		var due *fakeTicker
		for _, ft := range fc.tickers {
			if ft.isStopped() {
				continue
			}
			if !ft.next.After(target) && (due == nil || ft.next.Before(due.next)) {
				due = ft
			}
		}
		if due == nil {
			fc.now = target
			fc.pruneLocked()
			fc.mu.Unlock()
			return
		}
		fc.now = due.next
		due.next = due.next.Add(due.period)
		tickAt := fc.now
		fc.mu.Unlock()

		select {
		case due.c <- tickAt:
		case <-due.stopped:
		}
	}
}

func (fc *FakeClock) pruneLocked() {
	live := fc.tickers[:0]
	for _, ft := range fc.tickers {
		if !ft.isStopped() {
			live = append(live, ft)
		}
	}
	fc.tickers = live
}

type fakeTicker struct {
	c        chan time.Time
	stopped  chan struct{}
	stopOnce sync.Once
	period   time.Duration
	next     time.Time
}

func (ft *fakeTicker) C() <-chan time.Time {
	return ft.c
}

func (ft *fakeTicker) Stop() {
	ft.stopOnce.Do(func() {
		close(ft.stopped)
	})
}

func (ft *fakeTicker) isStopped() bool {
	select {
	case <-ft.stopped:
		return true
	default:
		return false
	}
}
