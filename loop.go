package marquee

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is roughly one display refresh at 60 Hz.
const DefaultFrameInterval = time.Second / 60

// Loop runs frame callbacks and posted work on a single goroutine.
//
// Hosts without their own game loop (terminals, headless renderers) use it
// to get the single-threaded model boards rely on: input handlers are Posted
// and run between frames, never concurrently with one.
type Loop struct {
	cancel context.CancelFunc
	posted chan func()
	done   chan struct{}
	once   sync.Once
}

// StartLoop starts calling frame every interval until ctx is cancelled or
// Stop is called. A non-positive interval means DefaultFrameInterval.
func StartLoop(ctx context.Context, interval time.Duration, frame func(now time.Time)) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	l := &Loop{
		cancel: cancel,
		posted: make(chan func(), 64),
		done:   make(chan struct{}),
	}
	go l.run(ctx, interval, frame)
	return l
}

func (l *Loop) run(ctx context.Context, interval time.Duration, frame func(time.Time)) {
	defer close(l.done)

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.posted:
			fn()
		case now := <-tick.C:
			if frame != nil {
				frame(now)
			}
		}
	}
}

// Post queues fn to run on the loop goroutine between frames. It reports
// false if the loop has already stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.posted <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Stop cancels the loop and waits for the goroutine to exit. Safe to call
// more than once.
func (l *Loop) Stop() {
	l.once.Do(l.cancel)
	<-l.done
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
