package countdown

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Tier string

const (
	TierComfortable Tier = "comfortable"
	TierWarning     Tier = "warning"
	TierCritical    Tier = "critical"
)

const defaultInterval = time.Second

type Option func(*Timer)

// WithInterval changes the wall-clock time between two ticks. Every tick
// still takes one second off the remaining time.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// Timer counts down whole seconds and calls onExpire once when it hits zero.
type Timer struct {
	mu        sync.Mutex
	total     int
	remaining int
	interval  time.Duration
	onExpire  func()
	expired   bool
	cancel    context.CancelFunc
}

func New(duration time.Duration, onExpire func(), opts ...Option) *Timer {
	seconds := wholeSeconds(duration)
	t := &Timer{
		total:     seconds,
		remaining: seconds,
		interval:  defaultInterval,
		onExpire:  onExpire,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins ticking in the background. It does nothing while the timer
// is already running or once it has expired; use Reset to run it again.
func (t *Timer) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil || t.expired || t.remaining <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	go t.run(ctx)
}

func (t *Timer) run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !t.advance(ctx) {
				return
			}
		}
	}
}

// Tick takes one second off the remaining time.
func (t *Timer) Tick() {
	t.advance(context.Background())
}

func (t *Timer) advance(ctx context.Context) bool {
	t.mu.Lock()
	if ctx.Err() != nil || t.expired || t.remaining <= 0 {
		t.mu.Unlock()
		return false
	}

	t.remaining--
	if t.remaining > 0 {
		t.mu.Unlock()
		return true
	}

	t.expired = true
	t.stopLocked()
	onExpire := t.onExpire
	t.mu.Unlock()

	if onExpire != nil {
		onExpire()
	}
	return false
}

// Expire forces the timer to zero without calling onExpire.
func (t *Timer) Expire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.remaining = 0
	t.expired = true
	t.stopLocked()
}

func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
}

// Reset stops the timer and refills it with a fresh duration.
func (t *Timer) Reset(duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.total = wholeSeconds(duration)
	t.remaining = t.total
	t.expired = false
}

// wholeSeconds rounds d up so that any positive window lasts at least one
// tick.
func wholeSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

func (t *Timer) stopLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

func (t *Timer) Expired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.expired
}

func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Duration(t.remaining) * time.Second
}

// Display renders the remaining time as mm:ss.
func (t *Timer) Display() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Format(time.Duration(t.remaining) * time.Second)
}

func Format(d time.Duration) string {
	seconds := int(d / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Tier reports how urgent the remaining time is: above 60% is comfortable,
// 30% to 60% is a warning, below 30% is critical.
func (t *Timer) Tier() Tier {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case t.total <= 0:
		return TierCritical
	case t.remaining*100 > t.total*60:
		return TierComfortable
	case t.remaining*100 >= t.total*30:
		return TierWarning
	default:
		return TierCritical
	}
}
