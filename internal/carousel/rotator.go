// Package carousel cycles an index over a fixed-length list, either on a
// timer or through explicit next/previous/jump navigation.
package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultInterval is how long each testimonial stays on screen.
const DefaultInterval = 5 * time.Second

// ErrOutOfRange is returned by Jump for an index outside [0, n).
var ErrOutOfRange = errors.New("carousel: index out of range")

// Advance returns the index after i, wrapping from n-1 to 0.
func Advance(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (Clamp(i, n) + 1) % n
}

// Retreat returns the index before i, wrapping from 0 to n-1.
func Retreat(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (Clamp(i, n) - 1 + n) % n
}

// Clamp folds any integer into [0, n) using modulo arithmetic.
func Clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Rotator holds the current index for a list of n items.
// It is safe for concurrent use; the timer goroutine and manual
// navigation share the same index.
type Rotator struct {
	mu       sync.Mutex
	n        int
	idx      int
	interval time.Duration

	out  chan int
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// New returns a rotator positioned at 0.
func New(n int, interval time.Duration) (*Rotator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("carousel: need at least one item, got %d", n)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("carousel: interval must be positive, got %s", interval)
	}
	return &Rotator{n: n, interval: interval}, nil
}

// Index returns the current position.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.idx
}

// Next moves forward one step and returns the new index.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idx = Advance(r.idx, r.n)
	return r.idx
}

// Prev moves back one step and returns the new index.
func (r *Rotator) Prev() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idx = Retreat(r.idx, r.n)
	return r.idx
}

// Jump sets the index directly. The index is unchanged on error.
func (r *Rotator) Jump(i int) (int, error) {
	if i < 0 || i >= r.n {
		return r.Index(), fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, r.n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idx = i
	return r.idx, nil
}

// Start launches the timer. Every interval the index advances exactly one
// step and the new value is sent on the returned channel. The channel is
// closed once ctx is done or Stop is called. Calling Start again returns the
// channel of the running timer.
func (r *Rotator) Start(ctx context.Context) <-chan int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.out != nil {
		return r.out
	}
	r.out = make(chan int)
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	go r.run(ctx, r.out, r.stop, r.done)
	return r.out
}

func (r *Rotator) run(ctx context.Context, out chan<- int, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer close(out)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			idx := r.Next()
			select {
			case out <- idx:
			case <-ctx.Done():
				return
			case <-stop:
				return
			}
		}
	}
}

// Stop cancels the timer and waits for its goroutine to exit. It is safe to
// call more than once, and before Start.
func (r *Rotator) Stop() {
	r.mu.Lock()
	stop, done := r.stop, r.done
	r.mu.Unlock()
	if stop == nil {
		return
	}
	r.once.Do(func() { close(stop) })
	<-done
}
