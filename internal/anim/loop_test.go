package anim

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestLoopStopFromFrame(t *testing.T) {
	l := NewLoop(0)
	count := 0
	err := l.Run(context.Background(), func() {
		count++
		if count == 10 {
			l.Stop()
		}
	})
	if err != nil {
		t.Fatalf("Run returned %v after Stop", err)
	}
	if count != 10 || l.Frames() != 10 {
		t.Errorf("expected 10 frames, got count=%d Frames()=%d", count, l.Frames())
	}
	if l.Running() {
		t.Error("loop still reports running")
	}
}

func TestLoopContextCancel(t *testing.T) {
	l := NewLoop(200)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Run(ctx, func() {})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if l.Frames() == 0 {
		t.Error("expected at least one frame before the deadline")
	}
}

func TestLoopPostRunsBeforeNextFrame(t *testing.T) {
	l := NewLoop(0)
	var order []string

	l.Post(func() { order = append(order, "event") })
	frames := 0
	err := l.Run(context.Background(), func() {
		frames++
		order = append(order, "frame")
		if frames == 1 {
			l.Post(func() { order = append(order, "event2") })
		}
		if frames == 2 {
			l.Stop()
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"event", "frame", "event2", "frame"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestLoopRejectsSecondRun(t *testing.T) {
	l := NewLoop(100)
	started := make(chan struct{})
	var once sync.Once
	done := make(chan error)

	go func() {
		done <- l.Run(context.Background(), func() { once.Do(func() { close(started) }) })
	}()
	<-started

	if err := l.Run(context.Background(), func() {}); !errors.Is(err, ErrRunning) {
		t.Errorf("second Run = %v, want ErrRunning", err)
	}

	l.Stop()
	if err := <-done; err != nil {
		t.Errorf("first Run returned %v", err)
	}

	// stopped loops can be restarted
	n := 0
	if err := l.Run(context.Background(), func() {
		n++
		l.Stop()
	}); err != nil || n != 1 {
		t.Errorf("restart: err=%v frames=%d", err, n)
	}
}

func TestLoopPostFromOtherGoroutine(t *testing.T) {
	l := NewLoop(500)
	counter := 0
	var wg sync.WaitGroup

	go func() {
		for i := 0; i < 50; i++ {
			wg.Add(1)
			for !l.Post(func() { counter++; wg.Done() }) {
				time.Sleep(time.Millisecond)
			}
		}
		wg.Wait()
		l.Post(l.Stop)
	}()

	if err := l.Run(context.Background(), func() {}); err != nil {
		t.Fatal(err)
	}
	if counter != 50 {
		t.Errorf("expected 50 events handled, got %d", counter)
	}
}

func TestStopWhenIdle(t *testing.T) {
	l := NewLoop(60)
	l.Stop()
	if l.Running() {
		t.Error("idle loop reports running")
	}
}

func TestLoopCancelledBeforeRun(t *testing.T) {
	l := NewLoop(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, func() {}) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		l.Stop()
		t.Fatal("Run ignored a context cancelled before it started")
	}
	if l.Frames() != 0 {
		t.Errorf("frames = %d, want 0", l.Frames())
	}
}

func TestLoopStopDoesNotCarryOver(t *testing.T) {
	l := NewLoop(0)
	l.Stop()

	frames := 0
	err := l.Run(context.Background(), func() {
		frames++
		if frames == 3 {
			l.Stop()
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3; an idle Stop must not end a later Run", frames)
	}
}
