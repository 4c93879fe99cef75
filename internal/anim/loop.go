// Package anim drives the per-frame callback chain of an animation.
package anim

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrRunning = errors.New("anim: loop already running")

const eventBuffer = 256

// Loop calls a frame function repeatedly on the goroutine that called Run.
// Events posted from other goroutines run on that same goroutine between
// frames, so frame state never needs locking.
type Loop struct {
	interval time.Duration
	events   chan func()
	frames   atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewLoop returns a loop targeting fps frames per second. fps <= 0 runs
// frames back to back, for hosts that throttle on their own.
func NewLoop(fps int) *Loop {
	l := &Loop{events: make(chan func(), eventBuffer)}
	if fps > 0 {
		l.interval = time.Second / time.Duration(fps)
	}
	return l
}

// Run blocks, calling frame once per tick until ctx ends or Stop is called.
// It returns ctx.Err() when the context ended the loop and nil after Stop.
func (l *Loop) Run(ctx context.Context, frame func()) error {
	l.mu.Lock()
	if l.cancel != nil {
		l.mu.Unlock()
		return ErrRunning
	}
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.cancel = nil
		l.mu.Unlock()
		cancel()
	}()

	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		l.drain()
		if runCtx.Err() != nil {
			return ctx.Err()
		}

		frame()
		l.frames.Add(1)

		if tick != nil && !l.wait(runCtx, tick) {
			return ctx.Err()
		}
	}
}

// wait runs posted events until the next tick. It returns false when ctx ends first.
func (l *Loop) wait(ctx context.Context, tick <-chan time.Time) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case fn := <-l.events:
			fn()
		case <-tick:
			return true
		}
	}
}

// Stop ends a running loop after its current frame. It is a no-op when the
// loop is not running and does not affect a later Run; callers racing Run
// should cancel its context instead.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

// Post queues fn to run on the loop goroutine before the next frame. It
// reports false when the queue is full and fn was dropped.
func (l *Loop) Post(fn func()) bool {
	select {
	case l.events <- fn:
		return true
	default:
		return false
	}
}

// Frames counts the frames run across every Run.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.events:
			fn()
		default:
			return
		}
	}
}
