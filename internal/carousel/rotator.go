package carousel

import (
	"sync"
	"time"
)

// DefaultRotationInterval is how long each slide is shown before the
// carousel advances automatically.
const DefaultRotationInterval = 4 * time.Second

// Rotator cycles through a slide deck on a fixed interval. Automatic
// rotation only runs while the deck holds more than one slide; manual
// navigation is always available and does not disturb the timer. All
// methods are safe for concurrent use.
type Rotator struct {
	mu       sync.Mutex
	slides   []Slide
	index    int
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
	running  bool

	// rotate records that Start was called and Stop was not, independent
	// of whether the deck is currently big enough to rotate. A deck swap
	// re-checks it so rotation can begin once slides arrive.
	rotate bool
}

// NewRotator creates a rotator over the given slides. A non-positive
// interval falls back to DefaultRotationInterval. The rotator starts
// stopped; call Start to begin automatic rotation.
func NewRotator(slides []Slide, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultRotationInterval
	}
	return &Rotator{
		slides:   slides,
		interval: interval,
	}
}

// Start begins automatic rotation. On a deck of one slide or fewer no timer
// is acquired yet, but the request is remembered and rotation begins as soon
// as Replace swaps in a larger deck.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rotate = true
	r.startLocked()
}

func (r *Rotator) startLocked() {
	if r.running || len(r.slides) <= 1 {
		return
	}

	r.ticker = time.NewTicker(r.interval)
	r.done = make(chan struct{})
	r.running = true

	go r.run(r.ticker, r.done)
}

func (r *Rotator) run(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			r.Next()
		case <-done:
			return
		}
	}
}

// Stop halts automatic rotation and releases the timer. The current slide
// position is kept.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rotate = false
	r.stopLocked()
}

func (r *Rotator) stopLocked() {
	if !r.running {
		return
	}
	r.ticker.Stop()
	close(r.done)
	r.running = false
}

// Replace swaps in a new slide deck and resets the position to the first
// slide. When rotation has been requested via Start, the timer is
// re-established against the new deck so it gets a full interval before
// advancing, even when the previous deck was too small to rotate.
func (r *Rotator) Replace(slides []Slide) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()

	r.slides = slides
	r.index = 0

	if r.rotate {
		r.startLocked()
	}
}

// Next advances to the following slide, wrapping to the first after the last.
func (r *Rotator) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.slides) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.slides)
}

// Previous moves to the preceding slide, wrapping to the last before the first.
func (r *Rotator) Previous() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.slides) == 0 {
		return
	}
	r.index = (r.index - 1 + len(r.slides)) % len(r.slides)
}

// Select jumps straight to the slide at position i. Out-of-range positions
// are ignored. Like Next and Previous it does not disturb the timer.
func (r *Rotator) Select(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i < 0 || i >= len(r.slides) {
		return
	}
	r.index = i
}

// Current returns the slide at the present position. The second return is
// false when the deck is empty.
func (r *Rotator) Current() (Slide, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.slides) == 0 {
		return Slide{}, false
	}
	return r.slides[r.index], true
}

// Slides returns a copy of the deck.
func (r *Rotator) Slides() []Slide {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Slide, len(r.slides))
	copy(out, r.slides)
	return out
}

// Index returns the present slide position.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Len returns the number of slides in the deck.
func (r *Rotator) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slides)
}

// Running reports whether automatic rotation is active.
func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}
